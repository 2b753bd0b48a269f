package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathbird/internal/ui/layout"
)

// Screen is one page of the game shown beneath the shared header.
type Screen interface {
	// Init runs when the screen is pushed and again each time it becomes
	// active after the screen above it is popped. Screens that show game
	// state re-read it here.
	Init() tea.Cmd

	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the content area only; the header and footer are drawn
	// by the app.
	View(width, height int) string

	// Title names the screen in the header.
	Title() string
}

// KeyHintProvider is implemented by screens that describe their own keys
// in the footer.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// Hints returns s's own key hints, or fallback when it has none.
func Hints(s Screen, fallback []layout.KeyHint) []layout.KeyHint {
	if p, ok := s.(KeyHintProvider); ok {
		if hints := p.KeyHints(); len(hints) > 0 {
			return hints
		}
	}
	return fallback
}
