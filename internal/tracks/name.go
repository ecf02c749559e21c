package tracks

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	gogpx "github.com/tkrajina/gpxgo/gpx"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// AggregateName is the sentinel filename of the merged track file. A file
// carrying this name is already canonical and is never renamed or re-merged
// into itself.
const AggregateName = "all_activities.gpx"

const timestampLayout = "2006-01-02.15:04:05"

// AggregatePath returns the aggregate track path for a target directory.
func AggregatePath(dir string) string {
	return filepath.Join(dir, AggregateName)
}

// CanonicalName computes the destination path a track file should live at.
//
// Non-GPX paths map to the same path with a .gpx extension (conversion is
// the converter's job, naming happens here). The aggregate file is already
// canonical. Everything else is parsed: the destination combines the
// recording start time with the first track's name as
// "YYYY-MM-DD.HH:MM:SS_{name}.gpx" in the source's directory.
func CanonicalName(path string) (string, error) {
	if DetectFormat(path) != FormatGPX {
		ext := filepath.Ext(path)
		stem := strings.TrimSuffix(filepath.Base(path), ext)
		return filepath.Join(filepath.Dir(path), stem+".gpx"), nil
	}

	if filepath.Base(path) == AggregateName {
		return path, nil
	}

	doc, err := gogpx.ParseFile(path)
	if err != nil {
		return "", fmt.Errorf("parse track file %s: %w", path, err)
	}
	if len(doc.Tracks) == 0 {
		return "", fmt.Errorf("track file %s contains no tracks", path)
	}

	start, err := startTime(doc)
	if err != nil {
		return "", fmt.Errorf("track file %s: %w", path, err)
	}

	name := strings.TrimSpace(doc.Tracks[0].Name)
	if name == "" {
		name = titleFromStem(path)
	}
	name = strings.ReplaceAll(name, "/", "-")

	filename := fmt.Sprintf("%s_%s.gpx", start.UTC().Format(timestampLayout), name)
	return filepath.Join(filepath.Dir(path), filename), nil
}

// startTime prefers the document metadata timestamp and falls back to the
// first recorded point.
func startTime(doc *gogpx.GPX) (time.Time, error) {
	if doc.Time != nil && !doc.Time.IsZero() {
		return *doc.Time, nil
	}
	for _, track := range doc.Tracks {
		for _, segment := range track.Segments {
			for _, point := range segment.Points {
				if !point.Timestamp.IsZero() {
					return point.Timestamp, nil
				}
			}
		}
	}
	return time.Time{}, fmt.Errorf("no start time recorded")
}

// titleFromStem turns an unnamed track's file stem into a displayable track
// name ("2023-05-01_morning_ride" stays recognizable as "2023 05 01 Morning
// Ride" rather than leaking an empty name into the canonical filename).
func titleFromStem(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	cleaned := strings.Builder{}
	prevSpace := false
	for _, r := range base {
		switch {
		case unicode.IsLetter(r) || unicode.IsNumber(r):
			cleaned.WriteRune(r)
			prevSpace = false
		case unicode.IsSpace(r) || r == '-' || r == '_' || r == '.':
			if !prevSpace {
				cleaned.WriteRune(' ')
				prevSpace = true
			}
		}
	}
	title := strings.TrimSpace(cleaned.String())
	if title == "" {
		return "Track"
	}
	return cases.Title(language.Und).String(title)
}
