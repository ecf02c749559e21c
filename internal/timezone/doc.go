// Package timezone provides the fixed city catalog used to stamp timezone
// metadata on images, plus signed UTC-offset parsing and formatting.
//
// Each city maps to the numeric code the metadata editor expects for its
// TimeZoneCity tag and to the signed HH:MM offset written into the
// OffsetTime family of tags. All timezone knowledge lives here so workflows
// and the CLI share one table.
package timezone
