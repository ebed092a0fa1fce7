package theme

import "github.com/charmbracelet/lipgloss"

// Main UI styles
var (
	HelpLabelStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	HelpShortcutStyle = lipgloss.NewStyle().
				Foreground(ColorHighlight).
				Bold(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(1, 0)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)
)

// Dialog header styles
var (
	AppNameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	TaglineStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	VersionStyle = lipgloss.NewStyle().
			Foreground(ColorVersion)
)

// Help screen styles
var (
	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	HelpGroupStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHelpGroup).
			MarginTop(1)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true).
			Width(25)
)

// Status bar styles
var (
	DirtyStyle = lipgloss.NewStyle().
			Foreground(ColorDirty).
			Bold(true)

	HistoryAvailableStyle = lipgloss.NewStyle().
				Foreground(ColorHistoryAvailable).
				Bold(true)

	HistoryUnavailableStyle = lipgloss.NewStyle().
				Foreground(ColorDimmed)

	TooltipStyle = lipgloss.NewStyle().
			Foreground(ColorTooltip).
			Background(ColorTooltipBg).
			Padding(0, 1)

	UpdateStyle = lipgloss.NewStyle().
			Foreground(ColorUpdate)

	PaneTitleStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Bold(true)

	PaneTitleFocusedStyle = lipgloss.NewStyle().
				Foreground(ColorHintKey).
				Bold(true)
)

// Error style
var ErrorStyle = lipgloss.NewStyle().
	Foreground(ColorError).
	Bold(true)

// Command palette styles
var (
	DimmedStyle = lipgloss.NewStyle().
			Foreground(ColorDimmed)

	ScrollIndicatorStyle = lipgloss.NewStyle().
				Foreground(ColorScrollIndicator)

	PaletteBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.Border{Top: "─", Bottom: "─"}).
				BorderForeground(ColorMuted).
				Padding(0, 1)

	PaletteDescStyle = lipgloss.NewStyle().
				Foreground(ColorSubtle)

	FilterPromptStyle = lipgloss.NewStyle().
				Foreground(ColorHintKey)

	FilterCursorStyle = lipgloss.NewStyle().
				Foreground(ColorSpinner)

	PaletteTitleStyle = lipgloss.NewStyle().
				Foreground(ColorSecondary).
				Bold(true)

	PaletteItemSelectedStyle = lipgloss.NewStyle().
					Foreground(ColorHighlight).
					Background(ColorPaletteSelected).
					Bold(true)

	PaletteItemStyle = lipgloss.NewStyle().
				Foreground(ColorNormal)

	PaletteShortcutStyle = lipgloss.NewStyle().
				Foreground(ColorHighlight).
				Bold(true)
)

// Value legend styles, matching the cells pane highlighting
var (
	LinkLegendStyle = lipgloss.NewStyle().
			Foreground(ColorLink).
			Underline(true)

	LinkInvalidLegendStyle = lipgloss.NewStyle().
				Foreground(ColorLinkInvalid).
				Background(ColorLinkInvalidBg)

	ModifiedLegendStyle = lipgloss.NewStyle().
				Foreground(ColorModified).
				Background(ColorModifiedBg).
				Bold(true)
)
