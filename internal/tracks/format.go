package tracks

import (
	"path/filepath"
	"strings"
)

// Format identifies the track file formats the tool understands. It is a
// closed set: every consumer switches over all three values.
type Format int

const (
	// FormatUnknown marks extensions no collaborator can handle.
	FormatUnknown Format = iota
	// FormatGPX is the native exchange format; canonical files are GPX.
	FormatGPX
	// FormatTCX is the fitness-device format the converter re-encodes.
	FormatTCX
)

// DetectFormat maps a path to its track format by extension,
// case-insensitively. All format dispatch goes through this one function.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gpx":
		return FormatGPX
	case ".tcx":
		return FormatTCX
	default:
		return FormatUnknown
	}
}

func (f Format) String() string {
	switch f {
	case FormatGPX:
		return "gpx"
	case FormatTCX:
		return "tcx"
	default:
		return "unknown"
	}
}
