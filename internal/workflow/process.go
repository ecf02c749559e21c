package workflow

import (
	"context"

	"github.com/gbagnoli/photo-process/internal/config"
	"github.com/gbagnoli/photo-process/internal/logging"
	"github.com/gbagnoli/photo-process/internal/services"
)

// Process runs the full import pipeline over the images directory: detect
// recorded timezones, shift everything back to UTC, optionally organize into
// per-day directories and download the matching activity tracks, geotag,
// stamp the configured timezone, and rename by date.
func Process(ctx context.Context, ts *Toolset, cfg config.Config, organize bool) error {
	ctx = services.WithOperation(ctx, "process")
	logger := logging.WithContext(ctx, ts.Logger)

	logger.Info("scanning for images and track files", logging.String("dir", cfg.ImagesDir))
	detections := DetectTimezone(ctx, ts, cfg, nil)
	if len(detections) == 0 {
		logger.Info("no images found")
		return nil
	}

	// Timezone tags survive the UTC shift here: set-time restamps the whole
	// tag family at the end of the pipeline.
	if err := shiftDetectionsToUTC(ctx, ts, detections, false); err != nil {
		return err
	}

	var haveRange bool
	if organize {
		if err := Organize(ctx, ts, cfg, nil); err != nil {
			return err
		}
		start, end, ok, err := ts.ExifTool.DateRange(ctx, cfg.ImagesDir)
		if err != nil {
			return err
		}
		haveRange = ok
		if ok {
			logger.Info("detected date range",
				logging.String("start", start.Format(dayLayout)),
				logging.String("end", end.Format(dayLayout)),
			)
			if err := DownloadTracks(ctx, ts, cfg, cfg.ImagesDir, start, end); err != nil {
				return err
			}
		}
	}

	media, err := ScanMedia(cfg.ImagesDir, cfg.Suffixes)
	if err != nil {
		return err
	}
	if len(media.Images) == 0 {
		logger.Info("no images found after organization")
		return nil
	}

	switch {
	case len(media.Tracks) > 0:
		if err := Geotag(ctx, ts, cfg, media.Tracks); err != nil {
			return err
		}
	case ts.Run.DryRun() && organize && haveRange:
		// The tracks only exist once the download really runs.
		logger.Info("would geotag images using downloaded track files")
	default:
		logger.Info("no track files found, skipping geotag")
	}

	logger.Info("setting time and timezone", logging.String("timezone", cfg.Timezone))
	if err := setTimePaths(ctx, ts, cfg, media.Images); err != nil {
		return err
	}
	return renameFiles(ctx, ts, cfg, media.Images)
}
