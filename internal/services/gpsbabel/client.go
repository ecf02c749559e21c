// Package gpsbabel drives the gpsbabel collaborator for track conversion
// and merging. It satisfies the track canonicalizer's Converter interface.
package gpsbabel

import (
	"context"
	"errors"
	"strings"

	"github.com/gbagnoli/photo-process/internal/runner"
)

// Client builds and dispatches gpsbabel invocations.
type Client struct {
	binary string
	run    *runner.Runner
}

// New constructs a gpsbabel client.
func New(binary string, run *runner.Runner) (*Client, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		return nil, errors.New("gpsbabel binary required")
	}
	if run == nil {
		return nil, errors.New("runner required")
	}
	return &Client{binary: binary, run: run}, nil
}

// Convert re-encodes a TCX source into a GPX file at dest. The source is
// left in place.
func (c *Client) Convert(ctx context.Context, src, dest string) error {
	return c.run.Run(ctx, c.binary, "-i", "gtrnctr", "-f", src, "-o", "gpx", "-F", dest)
}

// Merge combines GPX inputs into a single GPX document at dest.
func (c *Client) Merge(ctx context.Context, inputs []string, dest string) error {
	if len(inputs) == 0 {
		return errors.New("no track files to merge")
	}
	args := []string{"-i", "gpx"}
	for _, input := range inputs {
		args = append(args, "-f", input)
	}
	args = append(args, "-o", "gpx", "-F", dest)
	return c.run.Run(ctx, c.binary, args...)
}
