package session

import (
	"github.com/abhisek/mathbird/internal/config"
	"github.com/abhisek/mathbird/internal/problemgen"
	"github.com/abhisek/mathbird/internal/scoring"
)

// AnswerInput is one submitted answer.
type AnswerInput struct {
	Question       problemgen.Question
	Choice         int
	ResponseTimeMs int64
}

// AnswerResult describes the effect of one answer.
type AnswerResult struct {
	Correct       bool
	CorrectAnswer int
	Points        scoring.Points
	Streak        int
}

// RecordAnswer folds one answer into s and returns the updated copy. The
// streak and unique-operator counts used for scoring include this answer.
func RecordAnswer(s GameState, cfg config.Config, in AnswerInput) (GameState, AnswerResult) {
	next := s.Normalize()
	q := in.Question
	correct := q.IsCorrect(in.Choice)
	responseMs := max(in.ResponseTimeMs, 0)

	next.SessionQuestionsAnswered++
	next.QuestionsAnswered++
	if correct {
		next.SessionCorrectAnswers++
		next.CorrectAnswers++
		next.CurrentStreak++
		next.MaxStreak = max(next.MaxStreak, next.CurrentStreak)
	} else {
		next.CurrentStreak = 0
	}

	// Running mean over the session's answers.
	n := float64(next.SessionQuestionsAnswered)
	next.AverageResponseTime += (float64(responseMs) - next.AverageResponseTime) / n

	next.UniqueOperatorsUsed[q.Operator] = struct{}{}
	next.LastQuestionTypes = appendHistory(next.LastQuestionTypes, q.Operator)

	points := scoring.Breakdown(cfg.Scoring, scoring.Input{
		Correct:         correct,
		ResponseTimeMs:  responseMs,
		Difficulty:      q.Difficulty,
		Streak:          next.CurrentStreak,
		UniqueOperators: len(next.UniqueOperatorsUsed),
	})
	next.Score += points.Total()

	return next, AnswerResult{
		Correct:       correct,
		CorrectAnswer: q.CorrectAnswer,
		Points:        points,
		Streak:        next.CurrentStreak,
	}
}

// appendHistory appends op keeping at most HistoryLimit entries.
func appendHistory(history []problemgen.Operator, op problemgen.Operator) []problemgen.Operator {
	history = append(history, op)
	if n := len(history); n > HistoryLimit {
		history = history[n-HistoryLimit:]
	}
	return history
}
