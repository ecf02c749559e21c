package workflow

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gbagnoli/photo-process/internal/config"
	"github.com/gbagnoli/photo-process/internal/fileutil"
	"github.com/gbagnoli/photo-process/internal/logging"
	"github.com/gbagnoli/photo-process/internal/services"
)

// Organize moves every image under the given directories (default: the
// configured images directory) into per-day subdirectories named after its
// DateTimeOriginal, then prunes the directories the moves emptied.
func Organize(ctx context.Context, ts *Toolset, cfg config.Config, dirs []string) error {
	ctx = services.WithOperation(ctx, "organize")
	if len(dirs) == 0 {
		dirs = []string{cfg.ImagesDir}
	}
	for _, dir := range dirs {
		if err := organizeDir(ctx, ts, cfg, dir); err != nil {
			return err
		}
	}
	return nil
}

func organizeDir(ctx context.Context, ts *Toolset, cfg config.Config, dir string) error {
	if _, err := os.Stat(dir); err != nil {
		return services.Wrap(services.ErrNotFound, "", "organize",
			fmt.Sprintf("directory %s", dir), err)
	}
	logger := logging.WithContext(ctx, ts.Logger)

	media, err := ScanMedia(dir, cfg.Suffixes)
	if err != nil {
		return err
	}
	if len(media.Images) == 0 {
		logger.Info("no images found", logging.String("dir", dir))
		return nil
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", dir, err)
	}
	if err := ts.ExifTool.OrganizeByDate(ctx, abs, media.Images); err != nil {
		return err
	}

	// Under dry-run no files moved, so there is nothing to prune and a sweep
	// would delete directories that were already empty.
	if ts.Run.DryRun() {
		return nil
	}
	return fileutil.RemoveEmptyDirs(dir, func(path string) {
		logger.Info("removed empty directory", logging.String("path", path))
	})
}
