package style

import (
	"github.com/pterm/pterm"
)

// Status of a namespace in a run
type Status string

const (
	StatusDone     Status = "done"     // files written
	StatusPlanned  Status = "planned"  // dry run
	StatusConflict Status = "conflict" // asset tree conflict
	StatusEmpty    Status = "empty"    // nothing to generate
)

// NamespaceStatus derives the status of a namespace row
func NamespaceStatus(files int, conflict, dryRun bool) Status {
	switch {
	case conflict:
		return StatusConflict
	case files == 0:
		return StatusEmpty
	case dryRun:
		return StatusPlanned
	default:
		return StatusDone
	}
}

// StatusStyle returns the pterm style of a status badge
func StatusStyle(status Status) *pterm.Style {
	switch status {
	case StatusDone:
		return pterm.NewStyle(pterm.BgGreen, pterm.FgWhite)
	case StatusPlanned:
		return pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	case StatusConflict:
		return pterm.NewStyle(pterm.BgRed, pterm.FgWhite, pterm.Bold)
	default:
		return pterm.NewStyle(pterm.FgGray)
	}
}

// Badge renders a padded status label
func Badge(status Status) string {
	return StatusStyle(status).Sprint(" " + string(status) + " ")
}
