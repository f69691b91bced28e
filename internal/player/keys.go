package player

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/rileyhilliard/pagedots/internal/pagecontrol"
)

// KeyMap holds the player's own bindings on top of the page control's.
type KeyMap struct {
	Control  pagecontrol.KeyMap
	AutoPlay key.Binding
	Rewind   key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the default player bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Control: pagecontrol.DefaultKeyMap(),
		AutoPlay: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "autoplay"),
		),
		Rewind: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "rewind"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return append(k.Control.ShortHelp(), k.AutoPlay, k.Rewind, k.Quit)
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return append(k.Control.FullHelp(), []key.Binding{k.AutoPlay, k.Rewind, k.Quit})
}
