package config

import (
	"errors"
	"fmt"

	"github.com/gbagnoli/photo-process/internal/timezone"
)

// Validate ensures the configuration is usable. It runs at load time and
// again after flag overlay, since flags may introduce invalid values.
func (c *Config) Validate() error {
	if c.Timerange <= 0 {
		return errors.New("timerange must be positive (seconds)")
	}
	if len(c.Suffixes) == 0 {
		return errors.New("suffixes must include at least one extension")
	}
	if _, ok := timezone.Lookup(c.Timezone); !ok {
		return fmt.Errorf("unknown timezone city %q (run 'photo-process timezones' for the catalog)", c.Timezone)
	}
	if err := c.validateTools(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateTools() error {
	for _, tool := range []struct {
		key   string
		value string
	}{
		{"tools.exiftool", c.Tools.ExifTool},
		{"tools.gpsbabel", c.Tools.GPSBabel},
		{"tools.gpicsync", c.Tools.GPicSync},
		{"tools.rename", c.Tools.Rename},
		{"tools.find", c.Tools.Find},
		{"tools.garmin", c.Tools.Garmin},
	} {
		if tool.value == "" {
			return fmt.Errorf("%s must be set", tool.key)
		}
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "pretty", "json":
	default:
		return fmt.Errorf("logging.format %q is not one of pretty, json", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level %q is not one of debug, info, warn, error", c.Logging.Level)
	}
	return nil
}
