package style

import (
	"github.com/arthur-debert/wifiprof/pkg/types"
	"github.com/charmbracelet/lipgloss"
)

// Base styles
var (
	TitleStyle   = lipgloss.NewStyle().Foreground(HeadingColor).Bold(true)
	NormalStyle  = lipgloss.NewStyle().Foreground(TextColor)
	MutedStyle   = lipgloss.NewStyle().Foreground(MutedColor)
	SuccessStyle = lipgloss.NewStyle().Foreground(SuccessColor).Bold(true)
	ErrorStyle   = lipgloss.NewStyle().Foreground(ErrorColor).Bold(true)
	WarningStyle = lipgloss.NewStyle().Foreground(WarningColor).Bold(true)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(0, 1)
)

// Kind styles
var (
	PSKStyle       = lipgloss.NewStyle().Foreground(PSKColor).Bold(true)
	EAPStyle       = lipgloss.NewStyle().Foreground(EAPColor).Bold(true)
	PasspointStyle = lipgloss.NewStyle().Foreground(PasspointColor).Bold(true)
)

// Indicators
var (
	SuccessIndicator = SuccessStyle.Render("✓")
	ErrorIndicator   = ErrorStyle.Render("✗")
	WarningIndicator = WarningStyle.Render("!")
)

// KindStyle returns the style used to print a join strategy
func KindStyle(kind types.Kind) lipgloss.Style {
	switch kind {
	case types.KindPSK:
		return PSKStyle
	case types.KindEAP:
		return EAPStyle
	case types.KindPasspoint:
		return PasspointStyle
	default:
		return MutedStyle
	}
}

// Indent pads s by level steps of two spaces
func Indent(s string, level int) string {
	return lipgloss.NewStyle().PaddingLeft(level * 2).Render(s)
}
