package deps

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/gbagnoli/photo-process/internal/config"
)

// Requirement defines an external tool the workflows shell out to.
type Requirement struct {
	Name        string
	Command     string
	Description string
	Optional    bool
}

// Status is the check result for one requirement.
type Status struct {
	Name        string
	Command     string
	Description string
	Optional    bool
	Available   bool
	Detail      string
}

// Requirements builds the dependency list for a configuration's tool table.
// Garmin is optional because only track downloads need it.
func Requirements(tools config.Tools) []Requirement {
	return []Requirement{
		{Name: "ExifTool", Command: tools.ExifTool, Description: "metadata reads and writes"},
		{Name: "GPSBabel", Command: tools.GPSBabel, Description: "track conversion and merging"},
		{Name: "GPicSync", Command: tools.GPicSync, Description: "GPX geotag correlation"},
		{Name: "Rename", Command: tools.Rename, Description: "batch file renaming"},
		{Name: "Find", Command: tools.Find, Description: "permission normalization"},
		{Name: "Garmin", Command: tools.Garmin, Description: "activity downloads (download-gpx, process --organize)", Optional: true},
	}
}

// CheckBinaries resolves every requirement against PATH and reports one
// status per entry, in input order.
func CheckBinaries(requirements []Requirement) []Status {
	statuses := make([]Status, len(requirements))
	for i, req := range requirements {
		statuses[i] = check(req)
	}
	return statuses
}

func check(req Requirement) Status {
	status := Status{
		Name:        req.Name,
		Command:     strings.TrimSpace(req.Command),
		Description: strings.TrimSpace(req.Description),
		Optional:    req.Optional,
	}
	if status.Command == "" {
		status.Detail = "command not configured"
		return status
	}
	if _, err := exec.LookPath(status.Command); err != nil {
		status.Detail = fmt.Sprintf("binary %q not found", status.Command)
		return status
	}
	status.Available = true
	return status
}
