package workflow

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/gbagnoli/photo-process/internal/config"
	"github.com/gbagnoli/photo-process/internal/logging"
	"github.com/gbagnoli/photo-process/internal/services"
)

// Rename normalizes the images directory: uppercase extensions are
// lowercased, permissions reset to 0644, and every file renamed after its
// DateTimeOriginal. Backup files are swept afterwards.
func Rename(ctx context.Context, ts *Toolset, cfg config.Config) error {
	ctx = services.WithOperation(ctx, "rename")
	if err := normalizeExtensions(ctx, ts, cfg); err != nil {
		return err
	}
	if err := chmodTree(ctx, ts, cfg); err != nil {
		return err
	}
	if err := ts.ExifTool.RenameByDate(ctx, []string{cfg.ImagesDir}); err != nil {
		return err
	}
	return Cleanup(ctx, ts, cfg)
}

// renameFiles is the explicit-file form the composed pipeline uses once
// organization has nested images in per-day directories; the directory form
// only reaches the top level. Extensions are lowercased in place because the
// files no longer sit where the suffix globs look.
func renameFiles(ctx context.Context, ts *Toolset, cfg config.Config, images []string) error {
	images = lowercaseExtensions(ctx, ts, images)
	if err := chmodTree(ctx, ts, cfg); err != nil {
		return err
	}
	if err := ts.ExifTool.RenameByDate(ctx, images); err != nil {
		return err
	}
	return Cleanup(ctx, ts, cfg)
}

// normalizeExtensions lowercases configured-suffix extensions through the
// external rename utility, one glob-expanded batch per suffix. On darwin the
// rename goes through a "_" temporary suffix because the default filesystem
// treats both cases as the same name.
func normalizeExtensions(ctx context.Context, ts *Toolset, cfg config.Config) error {
	for _, suffix := range cfg.Suffixes {
		upper := strings.ToUpper(suffix)
		matches, err := filepath.Glob(filepath.Join(cfg.ImagesDir, "*."+upper))
		if err != nil {
			return fmt.Errorf("scan *.%s: %w", upper, err)
		}
		if len(matches) == 0 {
			continue
		}
		if runtime.GOOS == "darwin" {
			expr := fmt.Sprintf(`s/\.%s$/.%s_/`, upper, suffix)
			if err := ts.Run.RunFiles(ctx, cfg.Tools.Rename, []string{expr}, matches); err != nil {
				return err
			}
			temp := make([]string, len(matches))
			for i, m := range matches {
				temp[i] = strings.TrimSuffix(m, "."+upper) + "." + suffix + "_"
			}
			expr = fmt.Sprintf(`s/\.%s_$/.%s/`, suffix, suffix)
			if err := ts.Run.RunFiles(ctx, cfg.Tools.Rename, []string{expr}, temp); err != nil {
				return err
			}
			continue
		}
		expr := fmt.Sprintf(`s/\.%s$/.%s/`, upper, suffix)
		if err := ts.Run.RunFiles(ctx, cfg.Tools.Rename, []string{expr}, matches); err != nil {
			return err
		}
	}
	return nil
}

// chmodTree resets file permissions across the whole images tree.
func chmodTree(ctx context.Context, ts *Toolset, cfg config.Config) error {
	return ts.Run.Run(ctx, cfg.Tools.Find,
		cfg.ImagesDir, "-type", "f", "-exec", "chmod", "0644", "{}", "+")
}

// lowercaseExtensions renames files whose extension carries uppercase
// characters directly on the filesystem and returns the updated paths. A
// failed rename is reported and the original path kept so the pipeline can
// continue with the files it has.
func lowercaseExtensions(ctx context.Context, ts *Toolset, images []string) []string {
	logger := logging.WithContext(ctx, ts.Logger)
	out := make([]string, 0, len(images))
	for _, img := range images {
		ext := strings.TrimPrefix(filepath.Ext(img), ".")
		lower := strings.ToLower(ext)
		if ext == lower {
			out = append(out, img)
			continue
		}
		dest := strings.TrimSuffix(img, ext) + lower
		if ts.Run.DryRun() {
			logger.Info("would lowercase extension",
				logging.String("from", img),
				logging.String("to", dest),
			)
			out = append(out, dest)
			continue
		}
		if err := os.Rename(img, dest); err != nil {
			logger.Warn("extension rename failed",
				logging.String("path", img),
				logging.Error(err),
			)
			out = append(out, img)
			continue
		}
		out = append(out, dest)
	}
	return out
}
