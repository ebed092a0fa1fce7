package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "99" // Purple - app name, titles
	ColorSecondary Color = "86" // Cyan - subtitles
)

// UI semantic colors
const (
	ColorError     Color = "196" // Bright red
	ColorHighlight Color = "255" // White - emphasis
	ColorMuted     Color = "241" // Gray - secondary text
	ColorNormal    Color = "250" // Default text
	ColorSubtle    Color = "245" // Light gray - labels
	ColorVersion   Color = "240" // Dark gray
)

// Accent colors
const (
	ColorHelpGroup Color = "141" // Purple
	ColorHintKey   Color = "226" // Yellow
	ColorSpinner   Color = "205" // Pink
)

// Grid colors
const (
	ColorGridHeader       Color = "252"
	ColorGridHeaderBg     Color = "237"
	ColorGridSelected     Color = "255"
	ColorGridSelectedBg   Color = "25"  // Blue - focused selection
	ColorGridInactiveBg   Color = "239" // Gray - selection in an unfocused grid
	ColorGridRowBg        Color = "236" // Selected row, other cells
	ColorGridScrollThumb  Color = "246"
	ColorGridScrollTrack  Color = "236"
	ColorLink             Color = "39"  // Accent blue - valid link
	ColorLinkInvalidBg    Color = "218" // Pink - invalid link / table with errors
	ColorLinkInvalid      Color = "52"
	ColorModified         Color = "94"  // Brown
	ColorModifiedBg       Color = "223" // Peach
	ColorTooltip          Color = "230"
	ColorTooltipBg        Color = "238"
	ColorDirty            Color = "214" // Orange - unsaved changes marker
	ColorUpdate           Color = "46"  // Green - update available
	ColorHistoryAvailable Color = "255"
)

// Command palette colors
const (
	ColorDimmed          Color = "240"
	ColorPaletteSelected Color = "237"
	ColorScrollIndicator Color = "245"
)
