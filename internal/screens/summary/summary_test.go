package summary

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathbird/internal/router"
	"github.com/abhisek/mathbird/internal/screen"
	"github.com/abhisek/mathbird/internal/session"
)

// stubScreen is a minimal screen for testing.
type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "next" }
func (s *stubScreen) Title() string                           { return "Next" }

func testResult(t session.Transition) session.SessionResult {
	r := session.SessionResult{
		Transition:          t,
		LevelBefore:         3,
		LevelAfter:          3,
		QuestionsAnswered:   20,
		CorrectAnswers:      11,
		Accuracy:            55,
		Score:               240,
		AverageResponseTime: 4200,
		MaxStreak:           4,
		Rewards:             session.Rewards{Stars: 1, Message: "Good effort! Practice makes perfect!"},
	}
	switch t {
	case session.TransitionLevelUp:
		r.LevelAfter = 4
		r.Rewards = session.Rewards{Stars: 3, Message: "Perfect! You're a math superstar!"}
	case session.TransitionLevelDown:
		r.LevelAfter = 2
	}
	return r
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(testResult(session.TransitionLevelUp), session.NewGameState(), nil)
	if s.Title() != "Session Summary" {
		t.Errorf("Title = %q, want %q", s.Title(), "Session Summary")
	}
}

func TestSummaryScreen_Headlines(t *testing.T) {
	tests := []struct {
		transition session.Transition
		want       []string
	}{
		{session.TransitionLevelUp, []string{"Level up!", "level 4", "★ ★ ★"}},
		{session.TransitionLevelRepeat, []string{"Session complete!", "level 3 again", "★ ☆ ☆"}},
		{session.TransitionLevelDown, []string{"Keep going!", "level 2"}},
	}
	for _, tt := range tests {
		t.Run(string(tt.transition), func(t *testing.T) {
			view := New(testResult(tt.transition), session.NewGameState(), nil).View(80, 24)
			for _, w := range tt.want {
				if !strings.Contains(view, w) {
					t.Errorf("view missing %q", w)
				}
			}
			if !strings.Contains(view, "Accuracy: 55%") {
				t.Error("view missing accuracy")
			}
		})
	}
}

func TestSummaryScreen_EncouragementOnlyWithoutLevelUp(t *testing.T) {
	up := New(testResult(session.TransitionLevelUp), session.NewGameState(), nil)
	if up.encouragement != "" {
		t.Errorf("unexpected encouragement on level up: %q", up.encouragement)
	}

	repeat := New(testResult(session.TransitionLevelRepeat), session.NewGameState(), nil)
	if repeat.encouragement == "" {
		t.Error("expected an encouragement message on repeat")
	}
}

func TestSummaryScreen_EnterPlaysAgain(t *testing.T) {
	s := New(testResult(session.TransitionLevelUp), session.NewGameState(),
		func() screen.Screen { return &stubScreen{} })

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on Enter")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	if msg.Screen.Title() != "Next" {
		t.Errorf("replaced with %q, want Next", msg.Screen.Title())
	}
}

func TestSummaryScreen_EscGoesHome(t *testing.T) {
	s := New(testResult(session.TransitionLevelUp), session.NewGameState(), nil)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected a command on Esc")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg on Esc")
	}
}

func TestSummaryScreen_KeyHints(t *testing.T) {
	s := New(testResult(session.TransitionLevelUp), session.NewGameState(), nil)
	if len(s.KeyHints()) != 2 {
		t.Errorf("KeyHints length = %d, want 2", len(s.KeyHints()))
	}
}
