package tui

import "github.com/charmbracelet/lipgloss"

// Chrome colors for the frame around the plot.
var (
	textFg    = lipgloss.Color("#E6E6E6")
	mutedFg   = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}
	accentFg  = lipgloss.Color("#7C3AED")
	warnFg    = lipgloss.Color("#F59E0B")
	frameLine = lipgloss.Color("#243141")
)

// Canvas colors are plain hex strings since they go through plot.Blend.
// canvasBg is what point opacity blends toward.
const (
	canvasBg = "#0B0F14"
	axisCol  = "#6B7280"
	labelCol = "#E6E6E6"
)

var (
	appStyle   = lipgloss.NewStyle().Foreground(textFg)
	titleStyle = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	valueStyle = appStyle.Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(mutedFg)
	warnStyle  = lipgloss.NewStyle().Foreground(warnFg)

	// overlays: pickers, the record table and the summary popup
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(frameLine).
			Padding(0, 1)
)
