package workflow

import (
	"context"
	"strings"

	"github.com/gbagnoli/photo-process/internal/config"
	"github.com/gbagnoli/photo-process/internal/services"
)

// Shift moves AllDates on the given images by an "[+|-]HH[:MM]" amount,
// optionally clearing every timezone tag, then sweeps backup files.
func Shift(ctx context.Context, ts *Toolset, cfg config.Config, by string, resetTZ bool, images []string) error {
	ctx = services.WithOperation(ctx, "shift")
	if strings.TrimSpace(by) == "" {
		return services.Wrap(services.ErrUsage, "", "shift", "empty shift pattern", nil)
	}
	if len(images) == 0 {
		return services.Wrap(services.ErrUsage, "", "shift", "no images provided", nil)
	}
	if err := ts.ExifTool.Shift(ctx, by, resetTZ, images); err != nil {
		return err
	}
	return Cleanup(ctx, ts, cfg)
}
