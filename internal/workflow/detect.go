package workflow

import (
	"context"

	"github.com/gbagnoli/photo-process/internal/config"
	"github.com/gbagnoli/photo-process/internal/logging"
	"github.com/gbagnoli/photo-process/internal/services"
)

// Detection is the per-path result of a timezone scan: the images found
// beneath the path and the offset read from the first one. A detection that
// failed carries its error instead of an offset.
type Detection struct {
	Path   string
	Images []string
	Offset string
	DST    bool
	Err    error
}

// DetectTimezone scans each path (default: the configured images directory)
// for images and reads the timezone offset recorded on the first image found
// beneath it. Unreadable paths are skipped with a warning; paths without
// images are dropped. Results keep the order of the input paths.
func DetectTimezone(ctx context.Context, ts *Toolset, cfg config.Config, paths []string) []Detection {
	ctx = services.WithOperation(ctx, "detect-timezone")
	if len(paths) == 0 {
		paths = []string{cfg.ImagesDir}
	}
	logger := logging.WithContext(ctx, ts.Logger)

	detections := make([]Detection, 0, len(paths))
	for _, path := range paths {
		media, err := ScanMedia(path, cfg.Suffixes)
		if err != nil {
			logger.Warn("skipping unreadable path",
				logging.String("path", path),
				logging.Error(err),
			)
			continue
		}
		if len(media.Images) == 0 {
			continue
		}
		det := Detection{Path: path, Images: media.Images}
		offset, err := ts.Detector.DetectOffset(media.Images[0])
		if err != nil {
			det.Err = err
		} else {
			det.Offset = offset.Value
			det.DST = offset.DST
		}
		detections = append(detections, det)
	}
	return detections
}
