package tui

import "github.com/charmbracelet/lipgloss"

// ---------------------------------------------------------------------------
// Catppuccin Mocha palette, trimmed to the colors the views use
// https://catppuccin.com/palette
// ---------------------------------------------------------------------------

const (
	colorPink     lipgloss.Color = "#f5c2e7"
	colorRed      lipgloss.Color = "#f38ba8"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorTeal     lipgloss.Color = "#94e2d5"
	colorLavender lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext1 lipgloss.Color = "#bac2de"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorSurface1 lipgloss.Color = "#45475a"
	colorSurface0 lipgloss.Color = "#313244"
	colorMantle   lipgloss.Color = "#181825"
)

const (
	colorAccent  = colorPink
	colorFocus   = colorLavender
	colorSuccess = colorGreen
	colorError   = colorRed
	colorWarning = colorYellow
	colorInfo    = colorTeal
)

var (
	titleStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)

	introStyle = lipgloss.NewStyle().Foreground(colorSubtext0).Italic(true)

	sectionStyle = lipgloss.NewStyle().Foreground(colorInfo).Bold(true)

	focusedSectionStyle = lipgloss.NewStyle().Foreground(colorFocus).Bold(true).Underline(true)

	tableBorderStyle = lipgloss.NewStyle().Foreground(colorSurface1)

	tableHeaderStyle = lipgloss.NewStyle().
				Foreground(colorSubtext0).
				Bold(true).
				Padding(0, 1)

	cellStyle = lipgloss.NewStyle().Foreground(colorText).Padding(0, 1)

	selectedCellStyle = lipgloss.NewStyle().
				Foreground(colorMantle).
				Background(colorFocus).
				Padding(0, 1)

	selectedRowStyle = lipgloss.NewStyle().
				Foreground(colorText).
				Background(colorSurface0).
				Padding(0, 1)

	totalRowStyle = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true).Padding(0, 1)

	cursorStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)

	labelStyle = lipgloss.NewStyle().Foreground(colorSubtext1)

	valueStyle = lipgloss.NewStyle().Foreground(colorText).Bold(true)

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Padding(0, 1)

	navBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface1).
			Padding(0, 1)

	statusStyle     = lipgloss.NewStyle().Foreground(colorSubtext0)
	statusErrStyle  = lipgloss.NewStyle().Foreground(colorError).Bold(true)
	statusWarnStyle = lipgloss.NewStyle().Foreground(colorWarning)

	langBadgeStyle = lipgloss.NewStyle().
			Foreground(colorMantle).
			Background(colorAccent).
			Bold(true).
			Padding(0, 1)
)
