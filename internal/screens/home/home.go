package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathbird/internal/router"
	"github.com/abhisek/mathbird/internal/screen"
	"github.com/abhisek/mathbird/internal/screens/history"
	"github.com/abhisek/mathbird/internal/screens/play"
	"github.com/abhisek/mathbird/internal/session"
	"github.com/abhisek/mathbird/internal/store"
	"github.com/abhisek/mathbird/internal/ui/components"
	"github.com/abhisek/mathbird/internal/ui/layout"
)

// HomeScreen is the main menu.
type HomeScreen struct {
	game  play.Game
	menu  components.Menu
	state session.GameState
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a HomeScreen. sessions may be nil, which disables the history
// entry.
func New(g play.Game, sessions store.SessionRepo) *HomeScreen {
	items := []components.MenuItem{
		{Label: "PLAY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: play.New(g)}
			}
		}},
		{Label: "HISTORY", Disabled: sessions == nil, Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(sessions)}
			}
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		game:  g,
		menu:  components.NewMenu(items),
		state: g.State(),
	}
}

// Init refreshes the displayed stats; it runs again whenever the player
// returns to this screen.
func (h *HomeScreen) Init() tea.Cmd {
	h.state = h.game.State()
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; add back header and footer.
	compact := layout.IsCompactHeight(height + 6)
	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, renderTitle(cw, compact))
	if !compact {
		sections = append(sections, renderMascot(h.state, cw))
	}
	sections = append(sections, renderStatsBar(h.state, cw, compact))
	sections = append(sections, h.menu.View(cw))

	return components.CabinetFrame(strings.Join(sections, "\n\n"), width, height)
}
