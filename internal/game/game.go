// Package game owns the live GameState: it hands out questions, folds
// answers in, and persists every transition before exposing it.
package game

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/abhisek/mathbird/internal/config"
	"github.com/abhisek/mathbird/internal/problemgen"
	"github.com/abhisek/mathbird/internal/session"
	"github.com/abhisek/mathbird/internal/store"
)

// ErrStaleQuestion is returned when an answer does not belong to the
// question most recently handed out.
var ErrStaleQuestion = errors.New("answer does not match the pending question")

// AnswerOutcome is what the host shows after an answer.
type AnswerOutcome struct {
	Answer session.AnswerResult

	// Session is set when this answer completed the session.
	Session *session.SessionResult

	State session.GameState
}

// Game serialises all reads and writes of the player's state.
type Game struct {
	cfg      config.Config
	gen      problemgen.Generator
	states   store.StateRepo
	sessions store.SessionRepo

	mu      sync.Mutex
	state   session.GameState
	pending *problemgen.Question
	now     func() time.Time
}

// New creates a Game holding the default state. Call Load to restore
// persisted progress. sessions may be nil to skip session history.
func New(cfg config.Config, gen problemgen.Generator, states store.StateRepo, sessions store.SessionRepo) *Game {
	return &Game{
		cfg:      cfg,
		gen:      gen,
		states:   states,
		sessions: sessions,
		state:    session.NewGameState(),
		now:      time.Now,
	}
}

// Config returns the configuration the game runs with.
func (g *Game) Config() config.Config {
	return g.cfg
}

// Load restores the persisted state.
func (g *Game) Load(ctx context.Context) error {
	s, err := g.states.Load(ctx)
	if err != nil {
		return fmt.Errorf("load game state: %w", err)
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.state = s.Normalize()
	g.pending = nil
	return nil
}

// State returns a copy of the current state.
func (g *Game) State() session.GameState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state.Clone()
}

// NextQuestion generates a question for the current level and recent
// history. It replaces any question still pending.
func (g *Game) NextQuestion() (problemgen.Question, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	q, err := g.gen.Generate(g.state.CurrentLevel, g.state.LastQuestionTypes)
	if err != nil {
		return problemgen.Question{}, fmt.Errorf("generate question: %w", err)
	}
	g.pending = &q
	return q, nil
}

// Answer records choice for q. When the answer completes the session the
// level transition is applied and a session record is appended. Nothing is
// published unless the new state was saved. A failure to append the session
// record is reported on stderr and does not fail the answer.
func (g *Game) Answer(ctx context.Context, q problemgen.Question, choice int, responseTime time.Duration) (AnswerOutcome, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.pending == nil || g.pending.ID != q.ID {
		return AnswerOutcome{}, ErrStaleQuestion
	}

	next, res := session.RecordAnswer(g.state, g.cfg, session.AnswerInput{
		Question:       q,
		Choice:         choice,
		ResponseTimeMs: responseTime.Milliseconds(),
	})
	out := AnswerOutcome{Answer: res}

	if session.IsSessionComplete(next, g.cfg) {
		completed, result := session.CompleteSession(next, g.cfg)
		next = completed
		out.Session = &result
	}

	if err := g.states.Save(ctx, next); err != nil {
		return AnswerOutcome{}, fmt.Errorf("save game state: %w", err)
	}
	g.state = next
	g.pending = nil

	// The level change is already committed; a lost history row must not
	// hide the summary.
	if out.Session != nil && g.sessions != nil {
		if err := g.sessions.Append(ctx, g.sessionRecord(*out.Session)); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to record session: %v\n", err)
		}
	}

	out.State = g.state.Clone()
	return out, nil
}

// Reset clears persisted progress and restores the default state.
func (g *Game) Reset(ctx context.Context) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.states.Clear(ctx); err != nil {
		return fmt.Errorf("reset game state: %w", err)
	}
	g.state = session.NewGameState()
	g.pending = nil
	return nil
}

func (g *Game) sessionRecord(r session.SessionResult) store.SessionRecord {
	return store.SessionRecord{
		CompletedAt:       g.now(),
		LevelBefore:       r.LevelBefore,
		LevelAfter:        r.LevelAfter,
		Transition:        string(r.Transition),
		QuestionsAnswered: r.QuestionsAnswered,
		CorrectAnswers:    r.CorrectAnswers,
		Accuracy:          r.Accuracy,
		Score:             r.Score,
		Stars:             r.Rewards.Stars,
		AvgResponseMs:     r.AverageResponseTime,
	}
}
