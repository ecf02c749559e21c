package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeImagesDir(); err != nil {
		return err
	}
	c.Timezone = strings.TrimSpace(c.Timezone)
	if c.Timezone == "" {
		c.Timezone = defaultTimezone
	}
	c.Suffixes = NormalizeSuffixes(c.Suffixes)
	if len(c.Suffixes) == 0 {
		c.Suffixes = Default().Suffixes
	}
	c.normalizeTools()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizeImagesDir() error {
	if strings.TrimSpace(c.ImagesDir) == "" {
		c.ImagesDir = defaultImagesDir
	}
	expanded, err := expandPath(c.ImagesDir)
	if err != nil {
		return fmt.Errorf("images_dir: %w", err)
	}
	c.ImagesDir = expanded
	return nil
}

func (c *Config) normalizeTools() {
	defaults := Default().Tools
	c.Tools.ExifTool = toolOrDefault(c.Tools.ExifTool, defaults.ExifTool)
	c.Tools.GPSBabel = toolOrDefault(c.Tools.GPSBabel, defaults.GPSBabel)
	c.Tools.GPicSync = toolOrDefault(c.Tools.GPicSync, defaults.GPicSync)
	c.Tools.Rename = toolOrDefault(c.Tools.Rename, defaults.Rename)
	c.Tools.Find = toolOrDefault(c.Tools.Find, defaults.Find)
	c.Tools.Garmin = toolOrDefault(c.Tools.Garmin, defaults.Garmin)
}

func toolOrDefault(value, fallback string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback
	}
	return value
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}

// NormalizeSuffixes lowercases extension values and strips dots and
// whitespace, dropping empties and duplicates. The CLI uses it on the
// comma-separated --suffix flag; Load uses it on file values.
func NormalizeSuffixes(values []string) []string {
	normalized := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, value := range values {
		suffix := strings.ToLower(strings.Trim(strings.TrimSpace(value), "."))
		if suffix == "" {
			continue
		}
		if _, ok := seen[suffix]; ok {
			continue
		}
		seen[suffix] = struct{}{}
		normalized = append(normalized, suffix)
	}
	return normalized
}
