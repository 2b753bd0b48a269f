package session

import (
	"encoding/json"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathbird/internal/config"
	"github.com/abhisek/mathbird/internal/problemgen"
)

func testConfig() config.Config {
	cfg := config.DefaultConfig()
	cfg.Session.QuestionsPerSession = 10
	return cfg
}

func addQuestion(a, b int) problemgen.Question {
	return problemgen.Question{
		ID:            "q",
		Operand1:      a,
		Operand2:      b,
		Operator:      problemgen.OpAdd,
		CorrectAnswer: a + b,
		Choices:       []int{a + b, a + b + 1, a + b + 2, a + b + 3},
		Difficulty:    1,
	}
}

// play answers n questions, the first correct of them correctly.
func play(s GameState, cfg config.Config, n, correct int, responseMs int64) GameState {
	for i := 0; i < n; i++ {
		q := addQuestion(2, 3)
		choice := q.CorrectAnswer
		if i >= correct {
			choice = q.CorrectAnswer + 1
		}
		s, _ = RecordAnswer(s, cfg, AnswerInput{Question: q, Choice: choice, ResponseTimeMs: responseMs})
	}
	return s
}

func TestNewGameState(t *testing.T) {
	s := NewGameState()
	assert.Equal(t, 1, s.CurrentLevel)
	assert.Zero(t, s.Score)
	assert.Zero(t, s.LifetimeScore)
	assert.Zero(t, s.Stars)
	assert.Zero(t, s.MaxStreak)
	assert.NotNil(t, s.UniqueOperatorsUsed)
	assert.Empty(t, s.UniqueOperatorsUsed)
	assert.NotNil(t, s.LastQuestionTypes)
	assert.Empty(t, s.LastQuestionTypes)
}

func TestGameStateJSONRoundTrip(t *testing.T) {
	populated := NewGameState()
	populated.CurrentLevel = 4
	populated.Score = 120
	populated.LifetimeScore = 900
	populated.QuestionsAnswered = 60
	populated.CorrectAnswers = 45
	populated.SessionQuestionsAnswered = 7
	populated.SessionCorrectAnswers = 5
	populated.AverageResponseTime = 2345.5
	populated.CurrentStreak = 2
	populated.MaxStreak = 9
	populated.UniqueOperatorsUsed = NewOperatorSet(problemgen.OpSubtract, problemgen.OpAdd)
	populated.Stars = 11
	populated.LastQuestionTypes = []problemgen.Operator{problemgen.OpAdd, problemgen.OpSubtract, problemgen.OpAdd}

	for name, s := range map[string]GameState{"default": NewGameState(), "populated": populated} {
		t.Run(name, func(t *testing.T) {
			b, err := json.Marshal(s)
			require.NoError(t, err)

			var got GameState
			require.NoError(t, json.Unmarshal(b, &got))
			assert.Equal(t, s, got)
		})
	}
}

func TestOperatorSetMarshalsSorted(t *testing.T) {
	b, err := json.Marshal(NewOperatorSet(problemgen.OpMultiply, problemgen.OpAdd))
	require.NoError(t, err)
	assert.JSONEq(t, `["add","multiply"]`, string(b))
}

func TestCloneIsIndependent(t *testing.T) {
	s := NewGameState()
	s.UniqueOperatorsUsed = NewOperatorSet(problemgen.OpAdd)
	s.LastQuestionTypes = []problemgen.Operator{problemgen.OpAdd}

	c := s.Clone()
	c.UniqueOperatorsUsed[problemgen.OpSubtract] = struct{}{}
	c.LastQuestionTypes[0] = problemgen.OpMultiply

	assert.False(t, s.UniqueOperatorsUsed.Has(problemgen.OpSubtract))
	assert.Equal(t, problemgen.OpAdd, s.LastQuestionTypes[0])
}

func TestNormalize(t *testing.T) {
	s := GameState{
		CurrentLevel:      0,
		LastQuestionTypes: []problemgen.Operator{"add", "bogus", "add", "subtract", "add", "subtract", "multiply"},
	}
	n := s.Normalize()
	assert.Equal(t, 1, n.CurrentLevel)
	assert.NotNil(t, n.UniqueOperatorsUsed)
	assert.Equal(t, []problemgen.Operator{"add", "subtract", "add", "subtract", "multiply"}, n.LastQuestionTypes)
}

func TestAccuracy(t *testing.T) {
	assert.Zero(t, Accuracy(NewGameState()))

	s := NewGameState()
	s.SessionQuestionsAnswered = 4
	s.SessionCorrectAnswers = 3
	assert.Equal(t, 75.0, Accuracy(s))
	assert.Zero(t, LifetimeAccuracy(s))
}

func TestRecordAnswer_Correct(t *testing.T) {
	cfg := testConfig()
	s := NewGameState()
	q := addQuestion(2, 3)

	next, res := RecordAnswer(s, cfg, AnswerInput{Question: q, Choice: 5, ResponseTimeMs: 1500})

	assert.True(t, res.Correct)
	assert.Equal(t, 5, res.CorrectAnswer)
	assert.Equal(t, 1, res.Streak)
	// base 10 + time (5-1)*2 + streak 0 + variety 5
	assert.Equal(t, 23, res.Points.Total())

	assert.Equal(t, 23, next.Score)
	assert.Equal(t, 1, next.SessionQuestionsAnswered)
	assert.Equal(t, 1, next.SessionCorrectAnswers)
	assert.Equal(t, 1, next.QuestionsAnswered)
	assert.Equal(t, 1, next.CorrectAnswers)
	assert.Equal(t, 1, next.CurrentStreak)
	assert.Equal(t, 1, next.MaxStreak)
	assert.Equal(t, 1500.0, next.AverageResponseTime)
	assert.True(t, next.UniqueOperatorsUsed.Has(problemgen.OpAdd))
	assert.Equal(t, []problemgen.Operator{problemgen.OpAdd}, next.LastQuestionTypes)

	// The input is untouched.
	assert.Equal(t, NewGameState(), s)
}

func TestRecordAnswer_WrongResetsStreakKeepsMax(t *testing.T) {
	cfg := testConfig()
	s := play(NewGameState(), cfg, 4, 4, 1000)
	require.Equal(t, 4, s.CurrentStreak)

	next, res := RecordAnswer(s, cfg, AnswerInput{Question: addQuestion(1, 1), Choice: 3, ResponseTimeMs: 1000})
	assert.False(t, res.Correct)
	assert.Zero(t, res.Points.Total())
	assert.Zero(t, next.CurrentStreak)
	assert.Equal(t, 4, next.MaxStreak)
	assert.Equal(t, s.Score, next.Score)
	assert.Equal(t, 5, next.SessionQuestionsAnswered)
	assert.Equal(t, 4, next.SessionCorrectAnswers)
}

func TestRecordAnswer_RunningMean(t *testing.T) {
	cfg := testConfig()
	s := NewGameState()
	for _, ms := range []int64{1000, 2000, 6000} {
		s, _ = RecordAnswer(s, cfg, AnswerInput{Question: addQuestion(1, 2), Choice: 3, ResponseTimeMs: ms})
	}
	assert.InDelta(t, 3000.0, s.AverageResponseTime, 1e-9)
}

func TestRecordAnswer_HistoryBounded(t *testing.T) {
	cfg := testConfig()
	s := NewGameState()
	ops := []problemgen.Operator{
		problemgen.OpAdd, problemgen.OpSubtract, problemgen.OpMultiply,
		problemgen.OpAdd, problemgen.OpSubtract, problemgen.OpMultiply, problemgen.OpAdd,
	}
	for _, op := range ops {
		q := addQuestion(4, 2)
		q.Operator = op
		q.CorrectAnswer = op.Apply(4, 2)
		s, _ = RecordAnswer(s, cfg, AnswerInput{Question: q, Choice: q.CorrectAnswer})
	}
	assert.Equal(t, ops[len(ops)-HistoryLimit:], s.LastQuestionTypes)
	assert.Len(t, s.UniqueOperatorsUsed, 3)
}

func TestRecordAnswer_VarietyBonusGrows(t *testing.T) {
	cfg := testConfig()
	s := NewGameState()

	sub := problemgen.Question{Operand1: 5, Operand2: 2, Operator: problemgen.OpSubtract, CorrectAnswer: 3, Difficulty: 1}
	s, first := RecordAnswer(s, cfg, AnswerInput{Question: sub, Choice: 3, ResponseTimeMs: 9000})
	_, second := RecordAnswer(s, cfg, AnswerInput{Question: addQuestion(1, 1), Choice: 2, ResponseTimeMs: 9000})

	assert.Equal(t, 5, first.Points.Variety)
	assert.Equal(t, 10, second.Points.Variety)
}

func TestIsSessionComplete_Boundary(t *testing.T) {
	cfg := testConfig()
	s := play(NewGameState(), cfg, 9, 9, 1000)
	assert.False(t, IsSessionComplete(s, cfg))
	assert.Equal(t, TransitionContinue, Evaluate(s, cfg))

	s = play(s, cfg, 1, 1, 1000)
	assert.True(t, IsSessionComplete(s, cfg))
}

func TestPerfectSessionLevelsUpWithThreeStars(t *testing.T) {
	cfg := testConfig()
	s := play(NewGameState(), cfg, 10, 10, 0)

	assert.True(t, ShouldLevelUp(s, cfg))
	assert.False(t, ShouldReduceDifficulty(s, cfg))
	assert.Equal(t, 3, CalculateSessionRewards(s, cfg).Stars)
	assert.Equal(t, TransitionLevelUp, Evaluate(s, cfg))
}

func TestEvaluate(t *testing.T) {
	cfg := testConfig() // level up at 60%, reduce below 40%
	tests := []struct {
		correct int
		want    Transition
	}{
		{10, TransitionLevelUp},
		{6, TransitionLevelUp},
		{5, TransitionLevelRepeat},
		{4, TransitionLevelRepeat},
		{3, TransitionLevelDown},
		{0, TransitionLevelDown},
	}
	for _, tt := range tests {
		s := play(NewGameState(), cfg, 10, tt.correct, 2000)
		assert.Equal(t, tt.want, Evaluate(s, cfg), "%d/10 correct", tt.correct)
	}
}

func TestShouldLevelUp_RequiresExactCompletion(t *testing.T) {
	cfg := testConfig()
	s := play(NewGameState(), cfg, 11, 11, 0)
	assert.True(t, IsSessionComplete(s, cfg))
	assert.False(t, ShouldLevelUp(s, cfg))
}

func TestSessionPastLengthRepeatsLevel(t *testing.T) {
	// 11 answered under the default length, then the length is lowered.
	s := play(NewGameState(), config.DefaultConfig(), 11, 11, 1000)
	s.CurrentLevel = 4

	cfg := config.DefaultConfig()
	config.ApplyEnv(&cfg, func(name string) string {
		if name == config.EnvPrefix+"QUESTIONS_PER_SESSION" {
			return "10"
		}
		return ""
	})
	require.Equal(t, 10, cfg.Session.QuestionsPerSession)

	assert.True(t, IsSessionComplete(s, cfg))
	assert.False(t, ShouldLevelUp(s, cfg))
	assert.Equal(t, TransitionLevelRepeat, Evaluate(s, cfg))

	next, res := CompleteSession(s, cfg)
	assert.Equal(t, TransitionLevelRepeat, res.Transition)
	assert.Equal(t, 11, res.QuestionsAnswered)
	assert.Equal(t, 4, next.CurrentLevel)
	assert.Equal(t, 3, res.Rewards.Stars)
	assert.Zero(t, next.SessionQuestionsAnswered)
}

func TestCalculateSessionRewards(t *testing.T) {
	cfg := testConfig()
	tests := []struct {
		correct int
		stars   int
		message string
	}{
		{10, 3, messagePerfect},
		{9, 3, messagePerfect},
		{8, 2, messageGreat},
		{7, 2, messageGreat},
		{6, 1, messageGood},
		{0, 1, messageGood},
	}
	for _, tt := range tests {
		s := play(NewGameState(), cfg, 10, tt.correct, 2000)
		r := CalculateSessionRewards(s, cfg)
		assert.Equal(t, tt.stars, r.Stars, "%d/10 correct", tt.correct)
		assert.Equal(t, tt.message, r.Message)
	}

	cfg.Rewards.Good.Accuracy = 50
	s := play(NewGameState(), cfg, 10, 2, 2000)
	assert.Equal(t, Rewards{Stars: 0, Message: messageEncouragement}, CalculateSessionRewards(s, cfg))
}

func TestCompleteSession_LevelUp(t *testing.T) {
	cfg := testConfig()
	s := play(NewGameState(), cfg, 10, 10, 0)
	s.LifetimeScore = 100
	s.Stars = 4
	sessionScore := s.Score

	next, res := CompleteSession(s, cfg)

	assert.Equal(t, TransitionLevelUp, res.Transition)
	assert.Equal(t, 1, res.LevelBefore)
	assert.Equal(t, 2, res.LevelAfter)
	assert.Equal(t, 100.0, res.Accuracy)
	assert.Equal(t, sessionScore, res.Score)
	assert.Equal(t, 3, res.Rewards.Stars)

	assert.Equal(t, 2, next.CurrentLevel)
	assert.Equal(t, 100+sessionScore, next.LifetimeScore)
	assert.Equal(t, 7, next.Stars)
	assert.Zero(t, next.Score)
	assert.Zero(t, next.SessionQuestionsAnswered)
	assert.Zero(t, next.SessionCorrectAnswers)
	assert.Zero(t, next.AverageResponseTime)
	assert.Empty(t, next.UniqueOperatorsUsed)

	// Streaks, history and lifetime counters carry over.
	assert.Equal(t, 10, next.CurrentStreak)
	assert.Equal(t, 10, next.MaxStreak)
	assert.Equal(t, 10, next.QuestionsAnswered)
	assert.Len(t, next.LastQuestionTypes, HistoryLimit)
}

func TestCompleteSession_LevelDownNeverBelowOne(t *testing.T) {
	cfg := testConfig()

	s := play(NewGameState(), cfg, 10, 1, 2000)
	s.CurrentLevel = 4
	next, res := CompleteSession(s, cfg)
	assert.Equal(t, TransitionLevelDown, res.Transition)
	assert.Equal(t, 3, next.CurrentLevel)

	s = play(NewGameState(), cfg, 10, 1, 2000)
	next, res = CompleteSession(s, cfg)
	assert.Equal(t, TransitionLevelDown, res.Transition)
	assert.Equal(t, 1, next.CurrentLevel)
}

func TestCompleteSession_RepeatKeepsLevel(t *testing.T) {
	cfg := testConfig()
	s := play(NewGameState(), cfg, 10, 5, 2000)
	s.CurrentLevel = 3

	next, res := CompleteSession(s, cfg)
	assert.Equal(t, TransitionLevelRepeat, res.Transition)
	assert.Equal(t, 3, next.CurrentLevel)
	assert.Equal(t, 1, res.Rewards.Stars)
	assert.Equal(t, 1, next.Stars)
	assert.Zero(t, next.SessionQuestionsAnswered)
}

func TestCompleteSession_InProgressIsNoop(t *testing.T) {
	cfg := testConfig()
	s := play(NewGameState(), cfg, 3, 3, 2000)

	next, res := CompleteSession(s, cfg)
	assert.Equal(t, TransitionContinue, res.Transition)
	assert.Equal(t, s, next)
	assert.Zero(t, res.Rewards.Stars)
}

func TestEncouragementMessage(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	for i := 0; i < 20; i++ {
		assert.Contains(t, encouragingMessages, EncouragementMessage(r))
	}
	assert.Contains(t, encouragingMessages, EncouragementMessage(nil))
}
