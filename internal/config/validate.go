package config

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError lists every configuration field that violates a
// precondition of the game engine.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid config: %s", strings.Join(e.Problems, "; "))
}

// ErrInvalidConfig is matched by every *ValidationError via errors.Is.
var ErrInvalidConfig = errors.New("invalid config")

func (e *ValidationError) Is(target error) bool { return target == ErrInvalidConfig }

// Validate checks the preconditions the generator and session engine rely
// on. With every MaxNumber >= 1 the operand pair (1, 1) always satisfies
// the result <= 2*maxNumber bound, so generation terminates.
func (c Config) Validate() error {
	var problems []string
	add := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	if c.Session.QuestionsPerSession < 1 {
		add("questionsPerSession must be >= 1, got %d", c.Session.QuestionsPerSession)
	}

	for _, p := range []struct {
		name string
		v    float64
	}{
		{"minAccuracy", c.LevelUp.MinAccuracy},
		{"minAccuracyForReduction", c.LevelUp.MinAccuracyForReduction},
		{"perfect.accuracy", c.Rewards.Perfect.Accuracy},
		{"great.accuracy", c.Rewards.Great.Accuracy},
		{"good.accuracy", c.Rewards.Good.Accuracy},
	} {
		if p.v < 0 || p.v > 100 {
			add("%s must be within [0, 100], got %g", p.name, p.v)
		}
	}
	if c.LevelUp.MinAccuracyForReduction > c.LevelUp.MinAccuracy {
		add("minAccuracyForReduction (%g) must not exceed minAccuracy (%g)",
			c.LevelUp.MinAccuracyForReduction, c.LevelUp.MinAccuracy)
	}

	if c.Scoring.StreakBonusInterval < 1 {
		add("streakBonusInterval must be >= 1, got %d", c.Scoring.StreakBonusInterval)
	}

	for _, t := range []struct {
		name string
		v    int
	}{
		{"difficulty.easy.maxNumber", c.Difficulty.Easy.MaxNumber},
		{"difficulty.medium.maxNumber", c.Difficulty.Medium.MaxNumber},
		{"difficulty.hard.maxNumber", c.Difficulty.Hard.MaxNumber},
		{"difficulty.expert.maxNumber", c.Difficulty.Expert.MaxNumber},
		{"difficulty.multiplication.maxNumber", c.Difficulty.Multiplication.MaxNumber},
	} {
		if t.v < 1 {
			add("%s must be >= 1, got %d", t.name, t.v)
		}
	}

	if c.Operators.SubtractionMinLevel < 1 {
		add("subtractionMinLevel must be >= 1, got %d", c.Operators.SubtractionMinLevel)
	}
	if c.Operators.MultiplicationMinLevel < c.Operators.SubtractionMinLevel {
		add("multiplicationMinLevel (%d) must be >= subtractionMinLevel (%d)",
			c.Operators.MultiplicationMinLevel, c.Operators.SubtractionMinLevel)
	}
	if c.Operators.RecentWindow < 0 {
		add("operators.recentWindow must be >= 0, got %d", c.Operators.RecentWindow)
	}
	if c.Generation.MaxAttempts < 1 {
		add("generation.maxAttempts must be >= 1, got %d", c.Generation.MaxAttempts)
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}
