// Package garmin drives the garmin CLI, which talks to Garmin Connect for
// activity listings and GPX downloads. Listing and auth checks capture
// output; downloads run in the foreground like every other collaborator.
package garmin

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/gbagnoli/photo-process/internal/runner"
)

// loggedInMarker is the line fragment `garmin auth status` prints for an
// authenticated session.
const loggedInMarker = "Status: Logged in"

// Activity is one row of the activity listing.
type Activity struct {
	ID   string
	Date time.Time
}

// Client builds and dispatches garmin invocations.
type Client struct {
	binary string
	run    *runner.Runner
}

// New constructs a garmin client.
func New(binary string, run *runner.Runner) (*Client, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		return nil, errors.New("garmin binary required")
	}
	if run == nil {
		return nil, errors.New("runner required")
	}
	return &Client{binary: binary, run: run}, nil
}

// LoggedIn reports whether the CLI holds an authenticated session.
func (c *Client) LoggedIn(ctx context.Context) (bool, error) {
	out, err := c.run.Output(ctx, c.binary, "auth", "status")
	if err != nil {
		return false, err
	}
	return strings.Contains(out, loggedInMarker), nil
}

// ListActivities fetches one page of the activity listing, most recent
// first. start is the zero-based offset into the full history.
func (c *Client) ListActivities(ctx context.Context, limit, start int) ([]Activity, error) {
	out, err := c.run.Output(ctx, c.binary,
		"activities", "list",
		"--limit", strconv.Itoa(limit),
		"--start", strconv.Itoa(start),
	)
	if err != nil {
		return nil, err
	}
	return parseActivities(out), nil
}

// Download fetches a single activity as GPX at dest.
func (c *Client) Download(ctx context.Context, id, dest string) error {
	return c.run.Run(ctx, c.binary,
		"activities", "download",
		"-t", "gpx",
		"-o", dest,
		id,
	)
}

// parseActivities reads the tabular listing: header lines (starting "ID")
// and rule lines (starting "-") are skipped, and each remaining row
// contributes its first two whitespace-separated columns as ID and date.
// Rows whose date column does not parse as YYYY-MM-DD are ignored.
func parseActivities(out string) []Activity {
	var activities []Activity
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "ID") || strings.HasPrefix(line, "-") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		date, err := time.Parse("2006-01-02", fields[1])
		if err != nil {
			continue
		}
		activities = append(activities, Activity{ID: fields[0], Date: date})
	}
	return activities
}
