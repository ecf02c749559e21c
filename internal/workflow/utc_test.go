package workflow

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/gbagnoli/photo-process/internal/services/exiftool"
)

func TestShiftToUTCInvertsOffset(t *testing.T) {
	cfg := testConfig(t)
	exec := &fakeExecutor{}
	ts := newTestToolset(t, cfg, false, exec)

	img := writeFile(t, filepath.Join(cfg.ImagesDir, "a.jpg"))
	ts.Detector = &fakeDetector{offsets: map[string]exiftool.Offset{
		img: {Value: "+02:00", DST: false},
	}}

	if err := ShiftToUTC(context.Background(), ts, cfg, nil); err != nil {
		t.Fatalf("ShiftToUTC failed: %v", err)
	}

	want := []execCall{{cfg.Tools.ExifTool, []string{
		"-AllDates-=0:0:0 02:00:0",
		"-overwrite_original",
		"-OffSetTime=",
		"-OffSetTimeOriginal=",
		"-OffSetTimeDigitized=",
		"-Timezone=",
		"-TimezoneCity=",
		img,
	}}}
	if !reflect.DeepEqual(exec.runs, want) {
		t.Errorf("runs = %v, want %v", exec.runs, want)
	}
}

func TestShiftToUTCSkipsFailedDetections(t *testing.T) {
	cfg := testConfig(t)
	exec := &fakeExecutor{}
	ts := newTestToolset(t, cfg, false, exec)

	dirA := t.TempDir()
	dirB := t.TempDir()
	imgA := writeFile(t, filepath.Join(dirA, "a.jpg"))
	imgB := writeFile(t, filepath.Join(dirB, "b.jpg"))

	ts.Detector = &fakeDetector{
		offsets: map[string]exiftool.Offset{imgB: {Value: "-05:00"}},
		errs:    map[string]error{imgA: errors.New("no timezone offset")},
	}

	if err := ShiftToUTC(context.Background(), ts, cfg, []string{dirA, dirB}); err != nil {
		t.Fatalf("ShiftToUTC failed: %v", err)
	}

	if len(exec.runs) != 1 {
		t.Fatalf("runs = %v, want a single shift", exec.runs)
	}
	args := exec.runs[0].args
	if args[0] != "-AllDates+=0:0:0 05:00:0" {
		t.Errorf("shift argument = %s, want inverted -05:00", args[0])
	}
	if args[len(args)-1] != imgB {
		t.Errorf("shift target = %s, want %s", args[len(args)-1], imgB)
	}
}

func TestShiftToUTCNoImages(t *testing.T) {
	cfg := testConfig(t)
	exec := &fakeExecutor{}
	ts := newTestToolset(t, cfg, false, exec)
	ts.Detector = &fakeDetector{}

	if err := ShiftToUTC(context.Background(), ts, cfg, nil); err != nil {
		t.Fatalf("ShiftToUTC failed: %v", err)
	}
	if len(exec.runs) != 0 {
		t.Errorf("unexpected commands: %v", exec.runs)
	}
}
