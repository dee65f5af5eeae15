package slips

import (
	"github.com/charmbracelet/bubbles/key"

	"adviceslip/internal/app/ui/components"
)

// KeyMap defines the key bindings for the slips view
type KeyMap struct {
	components.KeyMap
	Prev    key.Binding
	Next    key.Binding
	Refresh key.Binding
	Search  key.Binding
	Submit  key.Binding
	Cancel  key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		KeyMap: components.DefaultKeyMap(),
		Prev: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "random"),
		),
		Search: key.NewBinding(
			key.WithKeys("/", "tab"),
			key.WithHelp("/", "search"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "submit"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Refresh, k.Search, k.Help, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next, k.Refresh},
		{k.Search, k.Submit, k.Cancel},
		{k.Help, k.Quit, k.ForceQuit},
	}
}
