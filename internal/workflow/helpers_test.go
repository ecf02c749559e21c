package workflow

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gbagnoli/photo-process/internal/config"
	"github.com/gbagnoli/photo-process/internal/runner"
	"github.com/gbagnoli/photo-process/internal/services/exiftool"
)

type execCall struct {
	binary string
	args   []string
}

// fakeExecutor records dispatched commands. Captured reads pop canned
// outputs in FIFO order; onRun lets a test simulate a tool's side effects.
type fakeExecutor struct {
	runs    []execCall
	reads   []execCall
	outputs []string
	onRun   func(binary string, args []string) error
	runErr  error
	readErr error
}

func (f *fakeExecutor) Run(_ context.Context, binary string, args []string) error {
	f.runs = append(f.runs, execCall{binary: binary, args: args})
	if f.onRun != nil {
		if err := f.onRun(binary, args); err != nil {
			return err
		}
	}
	return f.runErr
}

func (f *fakeExecutor) Output(_ context.Context, binary string, args []string) (string, error) {
	f.reads = append(f.reads, execCall{binary: binary, args: args})
	if f.readErr != nil {
		return "", f.readErr
	}
	if len(f.outputs) == 0 {
		return "", nil
	}
	out := f.outputs[0]
	f.outputs = f.outputs[1:]
	return out, nil
}

// fakeDetector serves canned offsets per image path.
type fakeDetector struct {
	offsets map[string]exiftool.Offset
	errs    map[string]error
	calls   []string
}

func (f *fakeDetector) DetectOffset(file string) (exiftool.Offset, error) {
	f.calls = append(f.calls, file)
	if err, ok := f.errs[file]; ok {
		return exiftool.Offset{}, err
	}
	if off, ok := f.offsets[file]; ok {
		return off, nil
	}
	return exiftool.Offset{}, fmt.Errorf("no offset staged for %s", file)
}

func testConfig(t *testing.T) config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.ImagesDir = t.TempDir()
	return cfg
}

func newTestToolset(t *testing.T, cfg config.Config, dryRun bool, exec *fakeExecutor) *Toolset {
	t.Helper()
	run := runner.New(nil, dryRun, runner.WithExecutor(exec), runner.WithEchoWriter(io.Discard))
	ts, err := NewToolset(cfg, nil, run)
	if err != nil {
		t.Fatalf("NewToolset failed: %v", err)
	}
	return ts
}

func writeFile(t *testing.T, path string) string {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte("data"), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

const gpxTemplate = `<?xml version="1.0" encoding="UTF-8"?>
<gpx version="1.1" creator="test" xmlns="http://www.topografix.com/GPX/1/1">
  <metadata><time>%s</time></metadata>
  <trk><name>%s</name><trkseg>
    <trkpt lat="53.35" lon="-6.26"><time>%s</time></trkpt>
  </trkseg></trk>
</gpx>
`

// writeCanonicalTrack writes a GPX file already at the canonical name its
// content produces, so canonicalization treats it as settled.
func writeCanonicalTrack(t *testing.T, dir, trackName, stamp string) string {
	t.Helper()
	start, err := time.Parse(time.RFC3339, stamp)
	if err != nil {
		t.Fatalf("parse stamp %q: %v", stamp, err)
	}
	name := fmt.Sprintf("%s_%s.gpx", start.UTC().Format("2006-01-02.15:04:05"), trackName)
	path := filepath.Join(dir, name)
	content := fmt.Sprintf(gpxTemplate, stamp, trackName, stamp)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write track %s: %v", path, err)
	}
	return path
}

// trackContent renders GPX content for tests that create files through tool
// side effects.
func trackContent(trackName, stamp string) string {
	return fmt.Sprintf(gpxTemplate, stamp, trackName, stamp)
}
