package workflow

import (
	"path/filepath"
	"reflect"
	"testing"
)

func TestScanMediaClassifiesByExtension(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.JPG"))
	writeFile(t, filepath.Join(dir, "b.jpg"))
	writeFile(t, filepath.Join(dir, "c.mp4"))
	writeFile(t, filepath.Join(dir, "d.gpx"))
	writeFile(t, filepath.Join(dir, "e.txt"))
	writeFile(t, filepath.Join(dir, "sub", "f.jpg"))
	writeFile(t, filepath.Join(dir, "sub", "g.GPX"))

	media, err := ScanMedia(dir, []string{"jpg", "mp4"})
	if err != nil {
		t.Fatalf("ScanMedia failed: %v", err)
	}

	wantImages := []string{
		filepath.Join(dir, "a.JPG"),
		filepath.Join(dir, "b.jpg"),
		filepath.Join(dir, "c.mp4"),
		filepath.Join(dir, "sub", "f.jpg"),
	}
	if !reflect.DeepEqual(media.Images, wantImages) {
		t.Errorf("images = %v, want %v", media.Images, wantImages)
	}

	wantTracks := []string{
		filepath.Join(dir, "d.gpx"),
		filepath.Join(dir, "sub", "g.GPX"),
	}
	if !reflect.DeepEqual(media.Tracks, wantTracks) {
		t.Errorf("tracks = %v, want %v", media.Tracks, wantTracks)
	}
}

func TestScanMediaFileRoot(t *testing.T) {
	dir := t.TempDir()
	img := writeFile(t, filepath.Join(dir, "solo.jpg"))

	media, err := ScanMedia(img, []string{"jpg"})
	if err != nil {
		t.Fatalf("ScanMedia failed: %v", err)
	}
	if len(media.Images) != 1 || media.Images[0] != img {
		t.Errorf("images = %v, want just %s", media.Images, img)
	}
}

func TestScanMediaMissingRoot(t *testing.T) {
	if _, err := ScanMedia(filepath.Join(t.TempDir(), "absent"), []string{"jpg"}); err == nil {
		t.Fatal("expected error for missing root")
	}
}
