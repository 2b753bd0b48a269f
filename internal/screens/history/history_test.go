package history

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathbird/internal/router"
	"github.com/abhisek/mathbird/internal/store"
)

// mockSessionRepo implements store.SessionRepo for testing.
type mockSessionRepo struct {
	records []store.SessionRecord
	err     error
	limit   int
}

func (m *mockSessionRepo) Append(_ context.Context, rec store.SessionRecord) error {
	m.records = append(m.records, rec)
	return nil
}

func (m *mockSessionRepo) Recent(_ context.Context, limit int) ([]store.SessionRecord, error) {
	m.limit = limit
	return m.records, m.err
}

func testRecords() []store.SessionRecord {
	at := time.Date(2026, 2, 3, 16, 30, 0, 0, time.UTC)
	return []store.SessionRecord{
		{CompletedAt: at, LevelBefore: 2, LevelAfter: 3, Transition: "level_up",
			QuestionsAnswered: 20, CorrectAnswers: 18, Accuracy: 90, Score: 410, Stars: 3, AvgResponseMs: 2100},
		{CompletedAt: at.Add(-time.Hour), LevelBefore: 2, LevelAfter: 2, Transition: "level_repeat",
			QuestionsAnswered: 20, CorrectAnswers: 10, Accuracy: 50, Score: 190, Stars: 1, AvgResponseMs: 5300},
	}
}

func load(t *testing.T, s *HistoryScreen) {
	t.Helper()
	s.Update(s.Init()())
	if !s.loaded {
		t.Fatal("expected history to be loaded")
	}
}

func TestHistoryScreen_ListsSessions(t *testing.T) {
	repo := &mockSessionRepo{records: testRecords()}
	s := New(repo)
	load(t, s)

	if repo.limit != historyLimit {
		t.Errorf("limit = %d, want %d", repo.limit, historyLimit)
	}
	view := s.View(100, 24)
	for _, want := range []string{"Feb 03 16:30", "Lv 2 → 3", "410 pts", "★★★"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestHistoryScreen_Empty(t *testing.T) {
	s := New(&mockSessionRepo{})
	load(t, s)
	if !strings.Contains(s.View(80, 24), "No sessions yet") {
		t.Error("expected empty-state message")
	}
}

func TestHistoryScreen_Error(t *testing.T) {
	s := New(&mockSessionRepo{err: errors.New("db locked")})
	load(t, s)
	if !strings.Contains(s.View(80, 24), "db locked") {
		t.Error("expected error message")
	}
}

func TestHistoryScreen_ExpandDetails(t *testing.T) {
	s := New(&mockSessionRepo{records: testRecords()})
	load(t, s)

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	if s.selected != 1 || !s.expanded[1] {
		t.Fatalf("expected second row expanded, selected=%d", s.selected)
	}
	if !strings.Contains(s.View(100, 24), "Repeat level · 10/20 correct") {
		t.Error("expected expanded details for the second session")
	}
}

func TestHistoryScreen_EscPops(t *testing.T) {
	s := New(&mockSessionRepo{})
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected a command on Esc")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}
