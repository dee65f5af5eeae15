package components

import (
	"math/rand/v2"

	"github.com/charmbracelet/lipgloss"
)

// Tip styles
var (
	tipKeyStyle  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#909090", Dark: "#626262"})
	tipDescStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#B2B2B2", Dark: "#4A4A4A"})
)

func tipKey(k string) string  { return tipKeyStyle.Render(k) }
func tipDesc(d string) string { return tipDescStyle.Render(d) }

// Tips contains helpful hints displayed in the footer
var Tips = []string{
	tipDesc("Press ") + tipKey("/") + tipDesc(" to search for advice"),
	tipDesc("Press ") + tipKey("r") + tipDesc(" to go back to random advice"),
	tipDesc("Use ") + tipKey("h/l") + tipDesc(" or arrows to page through results"),
	tipDesc("Print one slip without the TUI using ") + tipKey("adviceslip random"),
	tipDesc("Search from the shell with ") + tipKey("adviceslip search love"),
	tipDesc("Pipe results into jq with ") + tipKey("adviceslip search --json cat"),
}

// RandomTip returns one of the tips
func RandomTip() string {
	//nolint:gosec // weak random is fine for picking a footer hint
	return Tips[rand.IntN(len(Tips))]
}
