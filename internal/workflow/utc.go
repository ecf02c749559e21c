package workflow

import (
	"context"

	"github.com/gbagnoli/photo-process/internal/config"
	"github.com/gbagnoli/photo-process/internal/logging"
	"github.com/gbagnoli/photo-process/internal/services"
	"github.com/gbagnoli/photo-process/internal/timezone"
)

// ShiftToUTC detects the timezone recorded under each path and shifts the
// images back to UTC by the inverted offset, clearing the timezone tags.
// Paths whose detection failed are skipped with a warning.
func ShiftToUTC(ctx context.Context, ts *Toolset, cfg config.Config, paths []string) error {
	ctx = services.WithOperation(ctx, "shift-to-utc")
	detections := DetectTimezone(ctx, ts, cfg, paths)
	if len(detections) == 0 {
		ts.Logger.Info("no images found")
		return nil
	}
	return shiftDetectionsToUTC(ctx, ts, detections, true)
}

// shiftDetectionsToUTC moves every detection's images back to UTC by the
// inverse of its recorded offset. resetTZ additionally clears the timezone
// tags; the composed pipeline keeps them because set-time restamps the tag
// family afterwards.
func shiftDetectionsToUTC(ctx context.Context, ts *Toolset, detections []Detection, resetTZ bool) error {
	logger := logging.WithContext(ctx, ts.Logger)
	for _, det := range detections {
		if det.Err != nil {
			logger.Warn("skipping path, offset detection failed",
				logging.String("path", det.Path),
				logging.Error(det.Err),
			)
			continue
		}
		by, err := timezone.InvertOffset(det.Offset)
		if err != nil {
			logger.Warn("skipping path, unusable offset",
				logging.String("path", det.Path),
				logging.String("offset", det.Offset),
				logging.Error(err),
			)
			continue
		}
		logger.Info("shifting to UTC",
			logging.String("path", det.Path),
			logging.String("offset", det.Offset),
			logging.Bool("dst", det.DST),
			logging.String("shift", by),
		)
		if err := ts.ExifTool.Shift(ctx, by, resetTZ, det.Images); err != nil {
			return err
		}
	}
	return nil
}
