// Package exiftool drives the exiftool collaborator.
//
// Writes (renaming, timestamp shifts, timezone stamping, date-based
// organization) go through the command runner so they echo, honor dry-run,
// and leave exiftool's _original backups behind for the cleanup pass. Reads
// (offset detection) use a resident stay-open process instead, which answers
// repeated extraction requests without a fork per file.
package exiftool
