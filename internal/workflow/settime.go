package workflow

import (
	"context"
	"fmt"

	"github.com/gbagnoli/photo-process/internal/config"
	"github.com/gbagnoli/photo-process/internal/services"
)

// SetTime shifts the images directory's timestamps out of UTC into the
// configured timezone and stamps the timezone tag family, then sweeps backup
// files.
func SetTime(ctx context.Context, ts *Toolset, cfg config.Config) error {
	ctx = services.WithOperation(ctx, "set-time")
	return setTimePaths(ctx, ts, cfg, []string{cfg.ImagesDir})
}

func setTimePaths(ctx context.Context, ts *Toolset, cfg config.Config, paths []string) error {
	city, ok := cfg.City()
	if !ok {
		return services.Wrap(services.ErrConfiguration, "", "set-time",
			fmt.Sprintf("unknown timezone %q", cfg.Timezone), nil)
	}
	if err := ts.ExifTool.SetTime(ctx, city, cfg.DST, paths); err != nil {
		return err
	}
	return Cleanup(ctx, ts, cfg)
}
