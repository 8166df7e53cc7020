package ui

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	ColorBase    = lipgloss.Color("#1D1A22")
	ColorSurface = lipgloss.Color("#2B2633")
	ColorMuted   = lipgloss.Color("#8A8095")
	ColorText    = lipgloss.Color("#E4DDEE")
	ColorAccent  = lipgloss.Color("#F28C52")
	ColorGreen   = lipgloss.Color("#a6e3a1")
	ColorRed     = lipgloss.Color("#f38ba8")
	ColorYellow  = lipgloss.Color("#f9e2af")
)

// Styles
var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true).
			Padding(0, 1)

	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true).
			Padding(0, 1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(ColorMuted)

	CardStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(ColorAccent).
			Padding(1, 3)

	InertCardStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(ColorMuted).
			Foreground(ColorMuted).
			Padding(0, 2)

	LikeBadgeStyle = lipgloss.NewStyle().
			Foreground(ColorGreen).
			Bold(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(ColorGreen).
			Padding(0, 1)

	PassBadgeStyle = lipgloss.NewStyle().
			Foreground(ColorRed).
			Bold(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(ColorRed).
			Padding(0, 1)

	SelectedRowStyle = lipgloss.NewStyle().
				Foreground(ColorBase).
				Background(ColorAccent)

	NormalRowStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorAccent)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorRed).
			Padding(0, 1)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorGreen).
			Padding(0, 1)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	PanelStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(ColorMuted).
			Padding(1, 2)

	BreadcrumbStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	BreadcrumbActiveStyle = lipgloss.NewStyle().
				Foreground(ColorAccent)

	EmptyStateStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true).
			Padding(2, 4)

	TotalsLabelStyle = lipgloss.NewStyle().
				Foreground(ColorMuted)

	TotalsValueStyle = lipgloss.NewStyle().
				Foreground(ColorText)

	GrandTotalStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)
)
