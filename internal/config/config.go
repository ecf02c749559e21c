package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/sys/unix"

	"github.com/gbagnoli/photo-process/internal/timezone"
)

//go:embed sample_config.toml
var sampleConfig string

// Tools names the external binaries the workflows shell out to. Values may
// be bare names resolved on PATH or explicit paths.
type Tools struct {
	ExifTool string `toml:"exiftool"`
	GPSBabel string `toml:"gpsbabel"`
	GPicSync string `toml:"gpicsync"`
	Rename   string `toml:"rename"`
	Find     string `toml:"find"`
	Garmin   string `toml:"garmin"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all settings for one invocation. The root command
// resolves it once (defaults, then file, then flags) and passes it by value;
// nothing mutates it afterwards.
type Config struct {
	// ImagesDir is the directory holding the camera import. Workflows
	// default to operating on it.
	ImagesDir string `toml:"images_dir"`
	// Timezone is a city name from the timezone catalog.
	Timezone string `toml:"timezone"`
	// DST marks the camera clock as observing daylight savings.
	DST bool `toml:"dst"`
	// Timerange is the correlation window in seconds for geotagging.
	Timerange int `toml:"timerange"`
	// Suffixes are the media extensions, lowercase without dots.
	Suffixes []string `toml:"suffixes"`
	// DryRun echoes external commands without executing them. Flag-only.
	DryRun  bool    `toml:"-"`
	Tools   Tools   `toml:"tools"`
	Logging Logging `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration
// file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/photo-process/config.toml")
}

// Load locates, parses, and validates a configuration file. A missing file
// is not an error: the returned config then carries pure defaults, with
// exists reporting which case occurred.
func Load(path string) (*Config, string, bool, error) {
	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	cfg := Default()
	if exists {
		raw, err := os.ReadFile(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("read config: %w", err)
		}
		if err := toml.Unmarshal(raw, &cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}
	return &cfg, resolvedPath, exists, nil
}

// resolveConfigPath picks the file Load reads. An explicit path wins whether
// or not it exists yet; otherwise the default location and a project-local
// photo-process.toml are probed in that order.
func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		if _, err := os.Stat(expanded); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}
	projectPath, err := filepath.Abs("photo-process.toml")
	if err != nil {
		return "", false, err
	}

	for _, candidate := range []string{defaultPath, projectPath} {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true, nil
		}
	}
	return defaultPath, false, nil
}

// City resolves the configured timezone against the catalog.
func (c *Config) City() (timezone.City, bool) {
	return timezone.Lookup(c.Timezone)
}

// ValidateImagesDir checks that the images directory exists, is a directory,
// and is writable and searchable. It runs after flag overlay, since flags
// may replace the loaded value.
func (c *Config) ValidateImagesDir() error {
	info, err := os.Stat(c.ImagesDir)
	if err != nil {
		return fmt.Errorf("images directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("images directory %q is not a directory", c.ImagesDir)
	}
	if err := unix.Access(c.ImagesDir, unix.W_OK|unix.X_OK); err != nil {
		return fmt.Errorf("images directory %q is not writable: %w", c.ImagesDir, err)
	}
	return nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	switch {
	case pathValue == "~":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		pathValue = home
	case strings.HasPrefix(pathValue, "~/"):
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		pathValue = filepath.Join(home, pathValue[2:])
	}
	absolute, err := filepath.Abs(filepath.Clean(pathValue))
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", pathValue, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
