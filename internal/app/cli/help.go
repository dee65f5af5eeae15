package cli

import (
	"github.com/charmbracelet/lipgloss"
)

// renderHelp renders the usage overview shown by help
func renderHelp() string {
	usageSection := sectionHeader.Render("Usage:")
	usage := lipgloss.JoinVertical(
		lipgloss.Left,
		bodyMedium.Render("  "+commandName.Render("adviceslip")+"                        Browse advice in the TUI"),
		bodyMedium.Render("  "+commandName.Render("adviceslip random")+"                 Print one random slip"),
		bodyMedium.Render("  "+commandName.Render("adviceslip search <query...>")+"      Print every matching slip"),
		bodyMedium.Render("  "+commandName.Render("adviceslip init [--force]")+"         Generate adviceslip.yaml"),
		bodyMedium.Render("  "+commandName.Render("adviceslip version")+"                Show version"),
		bodyMedium.Render("  "+commandName.Render("adviceslip help")+"                   Show help"),
	)

	flagsSection := sectionHeader.Render("Flags:")
	flags := lipgloss.JoinVertical(
		lipgloss.Left,
		bodyMedium.Render("  "+commandName.Render("--no-ui")+"                           Print a random slip instead of the TUI"),
		bodyMedium.Render("  "+commandName.Render("--json")+"                            Print slips as JSON"),
	)

	examplesSection := sectionHeader.Render("Examples:")
	examples := lipgloss.JoinVertical(
		lipgloss.Left,
		bodyMedium.Render("  "+exampleCode.Render("adviceslip search love")+"            Slips mentioning love"),
		bodyMedium.Render("  "+exampleCode.Render("adviceslip search --json cat")+"      Pipe results into jq"),
		bodyMedium.Render("  "+exampleCode.Render("ADVICE_LOGGING_LEVEL=debug adviceslip random")+"  Trace the request"),
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		RenderTitle(),
		usageSection,
		usage,
		flagsSection,
		flags,
		examplesSection,
		examples,
	) + "\n"
}
