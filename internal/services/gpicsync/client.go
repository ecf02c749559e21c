// Package gpicsync drives the gpicsync correlator, which matches photo
// timestamps against GPX track points and writes GPS tags.
package gpicsync

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/gbagnoli/photo-process/internal/runner"
)

// Client builds and dispatches gpicsync invocations.
type Client struct {
	binary string
	run    *runner.Runner
}

// New constructs a gpicsync client.
func New(binary string, run *runner.Runner) (*Client, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		return nil, errors.New("gpicsync binary required")
	}
	if run == nil {
		return nil, errors.New("runner required")
	}
	return &Client{binary: binary, run: run}, nil
}

// Correlate geotags the images under dir against a GPX track. Track points
// are recorded in UTC, so images are expected to be UTC-normalized; a photo
// matches the nearest point within timerange seconds.
func (c *Client) Correlate(ctx context.Context, gpxPath, dir string, timerange int) error {
	return c.run.Run(ctx, c.binary,
		"-g", gpxPath,
		"-z", "UTC",
		"-d", dir,
		"--time-range", strconv.Itoa(timerange),
	)
}
