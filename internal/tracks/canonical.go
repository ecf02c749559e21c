package tracks

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/gbagnoli/photo-process/internal/fileutil"
	"github.com/gbagnoli/photo-process/internal/logging"
	"github.com/gbagnoli/photo-process/internal/services"
)

// Converter re-encodes and merges track files. The gpsbabel client satisfies
// it; tests substitute fakes.
type Converter interface {
	// Convert re-encodes a TCX source into a GPX file at dest.
	Convert(ctx context.Context, src, dest string) error
	// Merge combines GPX inputs into a single GPX file at dest.
	Merge(ctx context.Context, inputs []string, dest string) error
}

// Canonicalizer moves, converts, and merges track files into their canonical
// locations.
type Canonicalizer struct {
	conv   Converter
	logger *slog.Logger
	dryRun bool
}

// NewCanonicalizer wires a canonicalizer. A nil logger is replaced with a
// no-op one.
func NewCanonicalizer(conv Converter, logger *slog.Logger, dryRun bool) *Canonicalizer {
	return &Canonicalizer{
		conv:   conv,
		logger: logging.NewComponentLogger(logger, "tracks"),
		dryRun: dryRun,
	}
}

// Canonicalize ensures a track file ends up at its canonical .gpx path and
// returns that path.
//
// GPX files already at their canonical name are untouched; misnamed GPX
// files are moved into place; TCX files are re-encoded by the converter with
// the source left intact; anything else is an unknown-format error.
func (c *Canonicalizer) Canonicalize(ctx context.Context, path string) (string, error) {
	if c.dryRun {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			// The file may be the product of an earlier step this dry run
			// only echoed. Naming it requires its metadata, so report and
			// keep the original path.
			c.logger.Info("would rename track file from its metadata", logging.String("path", path))
			return path, nil
		}
	}

	dest, err := CanonicalName(path)
	if err != nil {
		return "", err
	}

	switch DetectFormat(path) {
	case FormatGPX:
		if path != dest {
			c.logger.Info("renaming track file",
				logging.String("from", path),
				logging.String("to", dest),
			)
			if !c.dryRun {
				if err := fileutil.MoveFile(path, dest); err != nil {
					return "", fmt.Errorf("move track file: %w", err)
				}
			}
		}
	case FormatTCX:
		if err := c.conv.Convert(ctx, path, dest); err != nil {
			return "", err
		}
	default:
		return "", services.Wrap(services.ErrUnknownFormat, "", "canonicalize",
			fmt.Sprintf("unknown format %q", extOf(path)), nil)
	}

	return dest, nil
}

// MergeAll combines canonicalized track files into the aggregate file for
// dir and returns the aggregate path. Inputs already named as the aggregate
// are skipped so the merge never feeds on its own output; a stale aggregate
// is deleted best-effort before the converter writes the new one.
func (c *Canonicalizer) MergeAll(ctx context.Context, files []string, dir string) (string, error) {
	dest := AggregatePath(dir)

	inputs := make([]string, 0, len(files))
	for _, f := range files {
		if isAggregate(f) {
			continue
		}
		inputs = append(inputs, f)
	}

	// Merging zero inputs would delete the aggregate and write nothing.
	// Keep the existing file.
	if len(inputs) == 0 {
		return dest, nil
	}

	if !c.dryRun {
		_ = os.Remove(dest)
	}
	if err := c.conv.Merge(ctx, inputs, dest); err != nil {
		return "", err
	}
	return dest, nil
}
