package workflow

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// Media holds the files a recursive scan found, split into configured-suffix
// images and GPX track files.
type Media struct {
	Images []string
	Tracks []string
}

// ScanMedia walks root recursively and classifies files by extension,
// case-insensitively: .gpx files are tracks, configured suffixes are images.
// A root that is itself a file is classified directly. WalkDir's lexical
// order keeps the results deterministic.
func ScanMedia(root string, suffixes []string) (Media, error) {
	wanted := make(map[string]struct{}, len(suffixes))
	for _, s := range suffixes {
		wanted[s] = struct{}{}
	}

	var media Media
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
		if ext == "gpx" {
			media.Tracks = append(media.Tracks, path)
			return nil
		}
		if _, ok := wanted[ext]; ok {
			media.Images = append(media.Images, path)
		}
		return nil
	})
	if err != nil {
		return Media{}, err
	}
	return media, nil
}
