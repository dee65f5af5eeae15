package slips

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"adviceslip/internal/app/navigation"
	"adviceslip/internal/app/ui/components"
	"adviceslip/internal/config"
)

// Button labels
const (
	prevLabel   = "← prev"
	nextLabel   = "next →"
	randomLabel = "↻ random"
)

// View renders the UI
func (m Model) View() string {
	if !m.ui.ready {
		return "Initializing…"
	}

	vm := m.nav.View()

	sections := []string{
		m.renderHeader(),
		m.renderSearch(),
		m.renderCard(vm),
		m.renderButtons(vm),
		m.renderStatus(vm),
		m.renderHelp(),
		m.renderTip(),
	}

	return components.AppContainerStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

// renderHeader renders the title line with the version and the subtitle
func (m Model) renderHeader() string {
	title := components.TitleStyle.Render(Title) + " " + components.HelpStyle.Render(fmt.Sprintf("v%s", config.Version))

	return lipgloss.JoinVertical(lipgloss.Left, title, components.SubtitleStyle.Render(Subtitle), "")
}

// renderSearch renders the search box
func (m Model) renderSearch() string {
	style := components.SearchStyle
	if m.ui.search.Focused() {
		style = components.SearchFocusedStyle
	}

	return style.Width(m.cardWidth()).Render(m.ui.search.View())
}

// renderCard renders the advice card, shifted while a slide transition runs
func (m Model) renderCard(vm navigation.ViewModel) string {
	width := m.cardWidth()
	inner := width - components.CardChromeWidth

	var body string

	switch {
	case vm.Loading:
		body = m.ui.spinner.View() + " " + components.PlaceholderStyle.Render(navigation.LoadingText)
	case vm.NoResults, !vm.HasItem:
		body = components.PlaceholderStyle.Width(inner).Render(vm.DisplayText)
	default:
		heading := components.StatusStyle.Render(fmt.Sprintf("ADVICE #%d", vm.ItemID))
		text := components.AdviceStyle.Width(inner).Render(fmt.Sprintf("“%s”", vm.DisplayText))
		body = lipgloss.JoinVertical(lipgloss.Left, heading, "", text)
	}

	card := components.CardStyle.
		Width(width).
		Height(components.CardTextHeight).
		Render(body)

	if m.ui.animate && m.ui.slide.IsActive() {
		card = components.Shift(card, m.ui.slide.Offset(), lipgloss.Width(card))
	}

	return card
}

// renderButtons renders prev, random and next with their enablement
func (m Model) renderButtons(vm navigation.ViewModel) string {
	canPrev, canRandom, canNext := buttonStates(vm)

	buttons := []string{
		renderButton(prevLabel, canPrev),
		renderButton(randomLabel, canRandom),
		renderButton(nextLabel, canNext),
	}

	return lipgloss.PlaceHorizontal(m.cardWidth(), lipgloss.Center, strings.Join(buttons, "   "))
}

// buttonStates decides which buttons are enabled. In random mode prev and next fetch a new
// slip, in search mode they follow the cursor bounds. Nothing is enabled while loading.
func buttonStates(vm navigation.ViewModel) (canPrev, canRandom, canNext bool) {
	if vm.Loading {
		return false, false, false
	}

	if vm.Mode == navigation.ModeSearch {
		return vm.CanGoPrev, true, vm.CanGoNext
	}

	return true, true, true
}

// renderButton styles a button label as enabled or disabled
func renderButton(label string, enabled bool) string {
	if enabled {
		return components.ButtonStyle.Render(label)
	}

	return components.ButtonDisabledStyle.Render(label)
}

// renderStatus renders the result position and the last error, if any
func (m Model) renderStatus(vm navigation.ViewModel) string {
	parts := make([]string, 0, 3)

	if vm.ResultPositionLabel != nil {
		parts = append(parts, components.StatusStyle.Render(*vm.ResultPositionLabel))
	}

	if m.state.query != "" && vm.Mode == navigation.ModeSearch {
		parts = append(parts, components.StatusStyle.Render(fmt.Sprintf("for %q", m.state.query)))
	}

	if vm.Error != "" {
		parts = append(parts, components.ErrorStyle.Render(vm.Error))
	}

	return strings.Join(parts, " ")
}

// renderHelp renders the help text with keybindings
func (m Model) renderHelp() string {
	return components.HelpStyle.Render(m.ui.help.View(m.ui.keys))
}

// renderTip renders the footer hint
func (m Model) renderTip() string {
	return m.ui.tip
}
