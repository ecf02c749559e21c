package exiftool

import (
	"fmt"
	"os/exec"
	"strings"

	gexiftool "github.com/barasher/go-exiftool"

	"github.com/gbagnoli/photo-process/internal/services"
	"github.com/gbagnoli/photo-process/internal/timezone"
)

const (
	tagDaylightSavings    = "DaylightSavings"
	tagTimeZone           = "TimeZone"
	tagOffsetTimeOriginal = "OffsetTimeOriginal"
)

// Offset is a detected camera-side UTC offset.
type Offset struct {
	// Value is the signed HH:MM offset.
	Value string
	// DST reports whether the camera flagged daylight savings.
	DST bool
}

// Reader answers metadata queries through a resident exiftool process.
// Callers must Close it to reap the process.
type Reader struct {
	et *gexiftool.Exiftool
}

// NewReader starts a stay-open exiftool. The binary may be a bare name
// resolved on PATH or an explicit path.
func NewReader(binary string) (*Reader, error) {
	path, err := exec.LookPath(binary)
	if err != nil {
		return nil, services.Wrap(services.ErrNotFound, "exiftool", "lookup", "", err)
	}
	et, err := gexiftool.NewExiftool(gexiftool.SetExiftoolBinaryPath(path))
	if err != nil {
		return nil, services.Wrap(services.ErrExternalTool, "exiftool", "start", "stay-open process", err)
	}
	return &Reader{et: et}, nil
}

// Close reaps the resident process.
func (r *Reader) Close() error {
	return r.et.Close()
}

// DetectOffset derives the UTC offset a file was captured at from its
// timezone tag family.
func (r *Reader) DetectOffset(file string) (Offset, error) {
	metas := r.et.ExtractMetadata(file)
	if len(metas) == 0 {
		return Offset{}, services.Wrap(services.ErrExternalTool, "exiftool", "read",
			fmt.Sprintf("no metadata returned for %s", file), nil)
	}
	meta := metas[0]
	if meta.Err != nil {
		return Offset{}, services.Wrap(services.ErrExternalTool, "exiftool", "read", file, meta.Err)
	}
	return offsetFromTags(
		tagString(meta, tagOffsetTimeOriginal),
		tagString(meta, tagTimeZone),
		tagString(meta, tagDaylightSavings),
		file,
	)
}

func tagString(meta gexiftool.FileMetadata, key string) string {
	value, err := meta.GetString(key)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(value)
}

// offsetFromTags applies the detection precedence: OffsetTimeOriginal is
// authoritative when present; otherwise TimeZone, advanced an hour when the
// DaylightSavings tag reads "On"; otherwise the file carries no offset.
func offsetFromTags(offsetTimeOriginal, timeZone, daylight, file string) (Offset, error) {
	dst := daylight == "On"
	if offsetTimeOriginal != "" {
		return Offset{Value: offsetTimeOriginal, DST: dst}, nil
	}
	if timeZone != "" {
		minutes, err := timezone.ParseOffset(timeZone)
		if err != nil {
			return Offset{}, fmt.Errorf("timezone tag %q in %s: %w", timeZone, file, err)
		}
		if dst {
			minutes += 60
		}
		return Offset{Value: timezone.FormatOffset(minutes), DST: dst}, nil
	}
	return Offset{}, fmt.Errorf("no timezone offset recorded in %s", file)
}
