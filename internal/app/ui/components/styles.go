package components

import "github.com/charmbracelet/lipgloss"

// Common styles shared across UI components
var (
	// AppContainerStyle wraps the whole application
	AppContainerStyle = lipgloss.NewStyle().
				Padding(1, 2)

	// CardStyle for the outer advice card
	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(FgPrimary).
			Padding(0, 2)

	// TitleStyle for the card title
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(FgPrimary)

	// SubtitleStyle for the card description
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(FgMuted)

	// SearchStyle for the search input box
	SearchStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(FgBorder).
			Padding(0, 1)

	// SearchFocusedStyle for the search input box while typing
	SearchFocusedStyle = SearchStyle.
				BorderForeground(FgAccent)

	// AdviceStyle for the advice text
	AdviceStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(AdviceTextColor)

	// PlaceholderStyle for loading and empty-state messages
	PlaceholderStyle = lipgloss.NewStyle().
				Foreground(FgMuted).
				Italic(true)

	// ButtonStyle for enabled navigation buttons
	ButtonStyle = lipgloss.NewStyle().
			Foreground(FgPrimary).
			Bold(true)

	// ButtonDisabledStyle for buttons that would be a no-op
	ButtonDisabledStyle = lipgloss.NewStyle().
				Foreground(FgStatusDisabled)

	// StatusStyle for the result position label
	StatusStyle = lipgloss.NewStyle().
			Foreground(FgMuted)

	// ErrorStyle for error messages
	ErrorStyle = lipgloss.NewStyle().
			Foreground(FgStatusError)

	// HelpStyle for help text
	HelpStyle = lipgloss.NewStyle().
			Foreground(FgBorder)

	// SpinnerStyle for loading spinners
	SpinnerStyle = lipgloss.NewStyle().
			Foreground(FgPrimary)

	// IDStyle for the slip number shown in plain output
	IDStyle = lipgloss.NewStyle().
		Foreground(FgAccent)
)
