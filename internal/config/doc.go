// Package config loads, normalizes, and validates photo-process settings.
//
// It supplies repository defaults, reads the optional TOML file, expands user
// paths (including tilde shortcuts), and lowercases suffix lists. The root
// command overlays flag values on the loaded Config and passes the result by
// value to every workflow; nothing in the repository reads configuration from
// ambient state.
package config
