package components

import "charm.land/bubbles/v2/key"

// KeyMap holds the bindings shared by menus and choice lists.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Back   key.Binding
	Pick   []key.Binding
}

// DefaultKeyMap returns arrow/vim navigation with 1-4 as direct picks.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Pick: []key.Binding{
			key.NewBinding(key.WithKeys("1", "a")),
			key.NewBinding(key.WithKeys("2", "b")),
			key.NewBinding(key.WithKeys("3", "c")),
			key.NewBinding(key.WithKeys("4", "d")),
		},
	}
}

// Keys is the key map used by the components in this package.
var Keys = DefaultKeyMap()
