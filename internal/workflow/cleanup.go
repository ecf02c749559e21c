package workflow

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gbagnoli/photo-process/internal/config"
	"github.com/gbagnoli/photo-process/internal/logging"
)

// Cleanup removes the "*_original" backup files exiftool leaves at the top
// level of the images directory. The scan is deliberately non-recursive.
// Under dry-run each candidate is reported and kept.
func Cleanup(ctx context.Context, ts *Toolset, cfg config.Config) error {
	matches, err := filepath.Glob(filepath.Join(cfg.ImagesDir, "*_original"))
	if err != nil {
		return fmt.Errorf("scan backup files: %w", err)
	}
	logger := logging.WithContext(ctx, ts.Logger)
	for _, path := range matches {
		if ts.Run.DryRun() {
			logger.Info("would remove backup file", logging.String("path", path))
			continue
		}
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("remove backup file: %w", err)
		}
		logger.Debug("removed backup file", logging.String("path", path))
	}
	return nil
}
