package workflow

import (
	"context"

	"github.com/gbagnoli/photo-process/internal/config"
	"github.com/gbagnoli/photo-process/internal/services"
)

// Geotag correlates the images directory against the given GPS track files.
// Each track is canonicalized first; multiple tracks are merged into the
// aggregate file and the correlation runs against that. Backup files are
// swept afterwards.
func Geotag(ctx context.Context, ts *Toolset, cfg config.Config, gpsFiles []string) error {
	ctx = services.WithOperation(ctx, "geotag")
	if len(gpsFiles) == 0 {
		return services.Wrap(services.ErrUsage, "", "geotag", "no gps files provided", nil)
	}

	canonical := make([]string, 0, len(gpsFiles))
	for _, f := range gpsFiles {
		path, err := ts.Tracks.Canonicalize(ctx, f)
		if err != nil {
			return err
		}
		canonical = append(canonical, path)
	}

	gpx := canonical[0]
	if len(canonical) > 1 {
		merged, err := ts.Tracks.MergeAll(ctx, canonical, cfg.ImagesDir)
		if err != nil {
			return err
		}
		gpx = merged
	}

	if err := ts.GPicSync.Correlate(ctx, gpx, cfg.ImagesDir, cfg.Timerange); err != nil {
		return err
	}
	return Cleanup(ctx, ts, cfg)
}
