package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathbird/internal/router"
	"github.com/abhisek/mathbird/internal/screen"
	"github.com/abhisek/mathbird/internal/session"
	"github.com/abhisek/mathbird/internal/ui/layout"
	"github.com/abhisek/mathbird/internal/ui/theme"
)

// maxStars is the top reward tier.
const maxStars = 3

// SummaryScreen displays the result of a completed session.
type SummaryScreen struct {
	result        session.SessionResult
	state         session.GameState
	encouragement string
	next          func() screen.Screen
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a SummaryScreen. next builds the screen shown when the player
// chooses to keep playing; it may be nil.
func New(result session.SessionResult, state session.GameState, next func() screen.Screen) *SummaryScreen {
	s := &SummaryScreen{
		result: result,
		state:  state,
		next:   next,
	}
	if result.Transition != session.TransitionLevelUp {
		s.encouragement = session.EncouragementMessage(nil)
	}
	return s
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Session Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Play again"},
		{Key: "Esc", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter":
			if s.next == nil {
				return s, func() tea.Msg { return router.PopScreenMsg{} }
			}
			next := s.next()
			return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	r := s.result
	var b strings.Builder
	b.WriteString("\n")

	headline, detail := s.headline()
	b.WriteString(theme.Centered(width).
		Foreground(theme.Primary).
		Bold(true).
		Render(headline))
	b.WriteString("\n")
	b.WriteString(theme.Centered(width).
		Foreground(theme.Text).
		Render(detail))
	b.WriteString("\n\n")

	b.WriteString(theme.Centered(width).
		Foreground(theme.Star).
		Bold(true).
		Render(renderStars(r.Rewards.Stars)))
	b.WriteString("\n")
	b.WriteString(theme.Centered(width).
		Foreground(theme.Text).
		Render(r.Rewards.Message))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 50)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	stats := []string{
		fmt.Sprintf("Questions: %d    Correct: %d    Accuracy: %.0f%%",
			r.QuestionsAnswered, r.CorrectAnswers, r.Accuracy),
		fmt.Sprintf("Score: %d    Avg time: %.1fs    Best streak: %d",
			r.Score, r.AverageResponseTime/1000, r.MaxStreak),
		fmt.Sprintf("Total stars: %d    Lifetime score: %d",
			s.state.Stars, s.state.LifetimeScore),
	}
	for _, line := range stats {
		b.WriteString(theme.Centered(width).Foreground(theme.Text).Render(line))
		b.WriteString("\n")
	}

	if s.encouragement != "" {
		b.WriteString("\n")
		b.WriteString(theme.Centered(width).Inherit(theme.Hint).Render(s.encouragement))
	}

	return b.String()
}

// headline returns the title and subtitle for the transition.
func (s *SummaryScreen) headline() (string, string) {
	r := s.result
	switch r.Transition {
	case session.TransitionLevelUp:
		return "Level up!", fmt.Sprintf("You reached level %d", r.LevelAfter)
	case session.TransitionLevelDown:
		return "Keep going!", fmt.Sprintf("Let's warm up on level %d", r.LevelAfter)
	default:
		return "Session complete!", fmt.Sprintf("Let's try level %d again", r.LevelAfter)
	}
}

// renderStars draws filled and empty stars out of maxStars.
func renderStars(n int) string {
	n = min(max(n, 0), maxStars)
	return strings.Repeat("★ ", n) + strings.Repeat("☆ ", maxStars-n)
}
