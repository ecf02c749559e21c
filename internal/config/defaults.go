package config

const (
	defaultImagesDir = "."
	defaultTimezone  = "Dublin"
	defaultTimerange = 10
	defaultLogFormat = "pretty"
	defaultLogLevel  = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		ImagesDir: defaultImagesDir,
		Timezone:  defaultTimezone,
		Timerange: defaultTimerange,
		Suffixes:  []string{"jpg", "mp4"},
		Tools: Tools{
			ExifTool: "exiftool",
			GPSBabel: "gpsbabel",
			GPicSync: "gpicsync",
			Rename:   "rename",
			Find:     "find",
			Garmin:   "garmin",
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
