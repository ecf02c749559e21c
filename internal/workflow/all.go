package workflow

import (
	"context"

	"github.com/gbagnoli/photo-process/internal/config"
)

// All runs the classic import sequence: geotag against the given tracks,
// stamp the configured timezone, rename by date. The first failure aborts
// the rest.
func All(ctx context.Context, ts *Toolset, cfg config.Config, gpsFiles []string) error {
	if err := Geotag(ctx, ts, cfg, gpsFiles); err != nil {
		return err
	}
	if err := SetTime(ctx, ts, cfg); err != nil {
		return err
	}
	return Rename(ctx, ts, cfg)
}
