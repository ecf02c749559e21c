// Package logging assembles the structured slog loggers used across the CLI.
//
// It owns the pretty and JSON handlers, centralizes level parsing, and
// exposes context-aware helpers so workflow code automatically tags log
// lines with the active operation. Structured records go to stderr; stdout
// stays reserved for command echo and external tool output.
//
// Prefer these constructors over hand-rolled slog setup so every component
// emits records with the same shape.
package logging
