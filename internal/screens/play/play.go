package play

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathbird/internal/config"
	"github.com/abhisek/mathbird/internal/game"
	"github.com/abhisek/mathbird/internal/problemgen"
	"github.com/abhisek/mathbird/internal/router"
	"github.com/abhisek/mathbird/internal/screen"
	"github.com/abhisek/mathbird/internal/screens/summary"
	"github.com/abhisek/mathbird/internal/session"
	"github.com/abhisek/mathbird/internal/ui/components"
	"github.com/abhisek/mathbird/internal/ui/layout"
)

// Game is the part of the game host the play screen drives.
type Game interface {
	State() session.GameState
	Config() config.Config
	NextQuestion() (problemgen.Question, error)
	Answer(ctx context.Context, q problemgen.Question, choice int, responseTime time.Duration) (game.AnswerOutcome, error)
}

// PlayScreen asks questions until the session completes.
type PlayScreen struct {
	game Game
	now  func() time.Time

	question  *problemgen.Question
	choices   components.MultiChoice
	startedAt time.Time

	outcome            *game.AnswerOutcome
	showingFeedback    bool
	showingQuitConfirm bool
	errMsg             string
}

var _ screen.Screen = (*PlayScreen)(nil)
var _ screen.KeyHintProvider = (*PlayScreen)(nil)

// New creates a PlayScreen for g.
func New(g Game) *PlayScreen {
	return &PlayScreen{
		game: g,
		now:  time.Now,
	}
}

func (p *PlayScreen) Init() tea.Cmd {
	return p.nextQuestion()
}

func (p *PlayScreen) Title() string {
	return "Play"
}

func (p *PlayScreen) KeyHints() []layout.KeyHint {
	switch {
	case p.errMsg != "":
		return []layout.KeyHint{{Key: "any key", Description: "Back"}}
	case p.showingQuitConfirm:
		return []layout.KeyHint{
			{Key: "Y", Description: "Leave"},
			{Key: "N", Description: "Keep going"},
		}
	case p.showingFeedback:
		return []layout.KeyHint{{Key: "any key", Description: "Continue"}}
	}
	return []layout.KeyHint{
		{Key: "1-4", Description: "Answer"},
		{Key: "↑↓", Description: "Move"},
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Leave"},
	}
}

func (p *PlayScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case questionReadyMsg:
		return p.handleQuestionReady(msg)
	case tea.KeyMsg:
		return p.handleKey(msg)
	}
	return p, nil
}

func (p *PlayScreen) View(width, height int) string {
	switch {
	case p.errMsg != "":
		return renderError(width, p.errMsg)
	case p.showingQuitConfirm:
		return renderQuitConfirm(width)
	case p.question == nil:
		return renderLoading(width)
	case p.showingFeedback:
		return p.renderFeedback(width)
	}
	return p.renderQuestion(width)
}

// nextQuestion asks the game for a question asynchronously.
func (p *PlayScreen) nextQuestion() tea.Cmd {
	g := p.game
	return func() tea.Msg {
		q, err := g.NextQuestion()
		return questionReadyMsg{Question: q, Err: err}
	}
}

func (p *PlayScreen) handleQuestionReady(msg questionReadyMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		p.errMsg = msg.Err.Error()
		return p, nil
	}
	q := msg.Question
	p.question = &q
	p.choices = components.NewMultiChoice(q.Choices, q.CorrectIndex())
	p.startedAt = p.now()
	p.outcome = nil
	p.showingFeedback = false
	return p, nil
}

func (p *PlayScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if p.errMsg != "" {
		return p, popCmd
	}

	if p.showingQuitConfirm {
		switch key {
		case "y", "Y":
			// Every answer is already saved; the session resumes next time.
			return p, popCmd
		case "n", "N", "esc":
			p.showingQuitConfirm = false
		}
		return p, nil
	}

	if p.showingFeedback {
		return p.handleFeedbackDone()
	}

	if key == "esc" {
		p.showingQuitConfirm = true
		return p, nil
	}

	if p.question == nil {
		return p, nil
	}

	p.choices, _ = p.choices.Update(msg)
	if p.choices.Submitted {
		return p.submitAnswer()
	}
	return p, nil
}

// submitAnswer records the chosen value and shows feedback.
func (p *PlayScreen) submitAnswer() (screen.Screen, tea.Cmd) {
	choice, ok := p.choices.Chosen()
	if !ok || p.question == nil {
		return p, nil
	}

	elapsed := p.now().Sub(p.startedAt)
	out, err := p.game.Answer(context.Background(), *p.question, choice, elapsed)
	if err != nil {
		p.errMsg = err.Error()
		return p, nil
	}

	p.outcome = &out
	p.showingFeedback = true
	return p, nil
}

func (p *PlayScreen) handleFeedbackDone() (screen.Screen, tea.Cmd) {
	p.showingFeedback = false

	if p.outcome != nil && p.outcome.Session != nil {
		g := p.game
		next := func() screen.Screen { return New(g) }
		sum := summary.New(*p.outcome.Session, p.outcome.State, next)
		return p, func() tea.Msg { return router.ReplaceScreenMsg{Screen: sum} }
	}

	p.question = nil
	return p, p.nextQuestion()
}

func popCmd() tea.Msg {
	return router.PopScreenMsg{}
}
