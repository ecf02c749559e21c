package timezone

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseOffset converts a signed HH:MM offset string (the form stored in
// OffsetTime tags, e.g. "+05:30" or "-08:00") into signed minutes.
func ParseOffset(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty offset")
	}

	sign := 1
	if strings.HasPrefix(s, "-") {
		sign = -1
	}
	s = strings.TrimLeft(s, "+-")

	parts := strings.Split(s, ":")
	if len(parts) < 2 {
		return 0, fmt.Errorf("invalid offset format %q", s)
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid offset hours %q: %w", parts[0], err)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid offset minutes %q: %w", parts[1], err)
	}

	return sign * (hours*60 + minutes), nil
}

// FormatOffset renders signed minutes as a signed HH:MM offset string.
// Zero formats as "+00:00".
func FormatOffset(minutes int) string {
	sign := "+"
	if minutes < 0 {
		sign = "-"
		minutes = -minutes
	}
	return fmt.Sprintf("%s%02d:%02d", sign, minutes/60, minutes%60)
}

// InvertOffset flips the sign of a signed HH:MM offset string. Shifting
// timestamps by the inverted offset brings zone-local times back to UTC.
func InvertOffset(s string) (string, error) {
	minutes, err := ParseOffset(s)
	if err != nil {
		return "", err
	}
	return FormatOffset(-minutes), nil
}
