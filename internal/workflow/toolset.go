package workflow

import (
	"errors"
	"io"
	"log/slog"
	"sync"

	"github.com/gbagnoli/photo-process/internal/config"
	"github.com/gbagnoli/photo-process/internal/logging"
	"github.com/gbagnoli/photo-process/internal/runner"
	"github.com/gbagnoli/photo-process/internal/services/exiftool"
	"github.com/gbagnoli/photo-process/internal/services/garmin"
	"github.com/gbagnoli/photo-process/internal/services/gpicsync"
	"github.com/gbagnoli/photo-process/internal/services/gpsbabel"
	"github.com/gbagnoli/photo-process/internal/tracks"
)

// OffsetDetector reads the timezone offset recorded in an image's metadata.
// The exiftool stay-open reader satisfies it; tests substitute fakes.
type OffsetDetector interface {
	DetectOffset(file string) (exiftool.Offset, error)
}

// Toolset bundles the collaborators every workflow operation shares.
type Toolset struct {
	Run      *runner.Runner
	ExifTool *exiftool.Client
	GPSBabel *gpsbabel.Client
	GPicSync *gpicsync.Client
	Garmin   *garmin.Client
	Tracks   *tracks.Canonicalizer
	Detector OffsetDetector
	Logger   *slog.Logger
}

// NewToolset wires the tool clients for a configuration. The offset detector
// opens its exiftool process lazily, so operations that never read metadata
// do not spawn it.
func NewToolset(cfg config.Config, logger *slog.Logger, run *runner.Runner) (*Toolset, error) {
	if run == nil {
		return nil, errors.New("runner required")
	}
	et, err := exiftool.New(cfg.Tools.ExifTool, run)
	if err != nil {
		return nil, err
	}
	gb, err := gpsbabel.New(cfg.Tools.GPSBabel, run)
	if err != nil {
		return nil, err
	}
	gp, err := gpicsync.New(cfg.Tools.GPicSync, run)
	if err != nil {
		return nil, err
	}
	gm, err := garmin.New(cfg.Tools.Garmin, run)
	if err != nil {
		return nil, err
	}
	return &Toolset{
		Run:      run,
		ExifTool: et,
		GPSBabel: gb,
		GPicSync: gp,
		Garmin:   gm,
		Tracks:   tracks.NewCanonicalizer(gb, logger, run.DryRun()),
		Detector: &lazyDetector{binary: cfg.Tools.ExifTool},
		Logger:   logging.NewComponentLogger(logger, "workflow"),
	}, nil
}

// Close releases the stay-open reader when a detection opened it.
func (t *Toolset) Close() error {
	if closer, ok := t.Detector.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// lazyDetector defers opening the exiftool reader until the first detection.
type lazyDetector struct {
	binary string
	once   sync.Once
	reader *exiftool.Reader
	err    error
}

func (d *lazyDetector) DetectOffset(file string) (exiftool.Offset, error) {
	d.once.Do(func() {
		d.reader, d.err = exiftool.NewReader(d.binary)
	})
	if d.err != nil {
		return exiftool.Offset{}, d.err
	}
	return d.reader.DetectOffset(file)
}

func (d *lazyDetector) Close() error {
	if d.reader == nil {
		return nil
	}
	return d.reader.Close()
}
