package style

import (
	"strings"

	"github.com/pterm/pterm"
)

// Status is the display state of one install attempt
type Status string

const (
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
	StatusRejected  Status = "rejected"
	StatusSkipped   Status = "skipped"
)

// StatusStyle returns the appropriate pterm style for a status
func StatusStyle(status Status) *pterm.Style {
	switch status {
	case StatusSucceeded:
		return pterm.NewStyle(pterm.BgGreen, pterm.FgWhite)
	case StatusFailed:
		return pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	case StatusRejected:
		return pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	case StatusSkipped:
		return pterm.NewStyle(pterm.FgCyan)
	default:
		return pterm.NewStyle(pterm.FgGray)
	}
}

// Badge renders status as an upper-case label. Without rich output the
// label is bracketed instead of colored.
func Badge(status Status, rich bool) string {
	label := strings.ToUpper(string(status))
	if !rich {
		return "[" + label + "]"
	}
	return StatusStyle(status).Sprint(" " + label + " ")
}
