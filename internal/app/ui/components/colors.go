package components

import "github.com/charmbracelet/lipgloss"

// Color palette for the UI with semantic naming
const (
	// Foreground colors - text and elements
	FgPrimary = lipgloss.Color("#7D56F4") // Purple - primary/focus color
	FgAccent  = lipgloss.Color("#EC4899") // Pink - accent, matches the card gradient end
	FgMuted   = lipgloss.Color("7")       // Light gray - muted elements
	FgBorder  = lipgloss.Color("8")       // Gray - borders and help text

	// Status colors
	FgStatusError    = lipgloss.Color("9") // Red - failed fetches
	FgStatusDisabled = lipgloss.Color("8") // Gray - disabled buttons
)

// AdviceTextColor is the adaptive color for the advice text
var AdviceTextColor = lipgloss.AdaptiveColor{Light: "#4C1D95", Dark: "#EDE9FE"}
