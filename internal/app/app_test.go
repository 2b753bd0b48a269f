package app

import (
	"context"
	"fmt"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathbird/internal/config"
	"github.com/abhisek/mathbird/internal/game"
	"github.com/abhisek/mathbird/internal/problemgen"
	"github.com/abhisek/mathbird/internal/router"
	"github.com/abhisek/mathbird/internal/session"
)

type oneGenerator struct{ n int }

func (g *oneGenerator) Generate(level int, _ []problemgen.Operator) (problemgen.Question, error) {
	g.n++
	return problemgen.Question{
		ID: fmt.Sprintf("q-%d", g.n), Operand1: 2, Operand2: 2, Operator: problemgen.OpAdd,
		CorrectAnswer: 4, Choices: []int{4, 5, 6, 7}, Difficulty: problemgen.DifficultyForLevel(level),
	}, nil
}

type memStates struct{ s session.GameState }

func (m *memStates) Load(context.Context) (session.GameState, error) { return session.NewGameState(), nil }
func (m *memStates) Save(_ context.Context, s session.GameState) error {
	m.s = s
	return nil
}
func (m *memStates) Clear(context.Context) error { return nil }

func testModel() AppModel {
	g := game.New(config.DefaultConfig(), &oneGenerator{}, &memStates{}, nil)
	return newAppModel(Options{Game: g})
}

// drive applies msg and any navigation messages its command produces.
func drive(m tea.Model, msg tea.Msg) tea.Model {
	m, cmd := m.Update(msg)
	if cmd == nil {
		return m
	}
	switch next := cmd().(type) {
	case router.PushScreenMsg, router.PopScreenMsg, router.ReplaceScreenMsg:
		m, cmd = m.Update(next)
		if cmd != nil {
			m, _ = m.Update(cmd())
		}
	}
	return m
}

func TestAppModel_TooSmall(t *testing.T) {
	var m tea.Model = testModel()
	m, _ = m.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	if !strings.Contains(m.(AppModel).render(), "Terminal too small") {
		t.Error("expected minimum-size message")
	}
}

func TestAppModel_HomeHeader(t *testing.T) {
	var m tea.Model = testModel()
	m, _ = m.Update(tea.WindowSizeMsg{Width: 100, Height: 34})
	view := m.(AppModel).render()
	for _, want := range []string{"Mathbird", "Home", "Lv 1"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestAppModel_PlayFlow(t *testing.T) {
	var m tea.Model = testModel()
	m, _ = m.Update(tea.WindowSizeMsg{Width: 100, Height: 34})

	m = drive(m, tea.KeyPressMsg{Code: tea.KeyEnter})
	am := m.(AppModel)
	if am.router.Depth() != 2 || am.router.Active().Title() != "Play" {
		t.Fatalf("expected play screen on top, got %q at depth %d", am.router.Active().Title(), am.router.Depth())
	}
	if !strings.Contains(am.render(), "2 + 2 = ?") {
		t.Error("expected the question to be shown")
	}

	m = drive(m, tea.KeyPressMsg{Code: '1', Text: "1"})
	if m.(AppModel).game.State().SessionCorrectAnswers != 1 {
		t.Error("expected the answer to be recorded")
	}
}

func TestAppModel_CtrlCQuits(t *testing.T) {
	var m tea.Model = testModel()
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}
