// Package tracks owns GPS track file handling: the closed format set, the
// canonical naming scheme derived from embedded track metadata, and the
// canonicalize/merge steps the geotagging workflows sequence.
package tracks

import (
	"path/filepath"
	"strings"
)

func extOf(path string) string {
	return strings.ToLower(filepath.Ext(path))
}

func isAggregate(path string) bool {
	return filepath.Base(path) == AggregateName
}
