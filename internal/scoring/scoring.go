// Package scoring computes points for a single answer.
package scoring

import "github.com/abhisek/mathbird/internal/config"

// Input describes one answered question.
type Input struct {
	Correct         bool
	ResponseTimeMs  int64
	Difficulty      int
	Streak          int // consecutive correct answers, including this one
	UniqueOperators int // distinct operators seen this session, including this one
}

// Points is the per-component breakdown of a score.
type Points struct {
	Base    int
	Time    int
	Streak  int
	Variety int
}

// Total returns the sum of all components.
func (p Points) Total() int {
	return p.Base + p.Time + p.Streak + p.Variety
}

// Breakdown returns the score components for in. An incorrect answer is
// worth nothing. Negative inputs are treated as 0.
func Breakdown(cfg config.ScoringConfig, in Input) Points {
	if !in.Correct {
		return Points{}
	}

	seconds := int(max(in.ResponseTimeMs, 0) / 1000)
	streak := max(in.Streak, 0)

	var p Points
	p.Base = cfg.BaseMultiplier * max(in.Difficulty, 0)
	p.Time = max(0, cfg.TimeBonusThreshold-seconds) * cfg.TimeBonusPerSecond
	if cfg.StreakBonusInterval > 0 {
		p.Streak = (streak / cfg.StreakBonusInterval) * cfg.StreakBonusAmount
	}
	p.Variety = max(in.UniqueOperators, 0) * cfg.VarietyBonusPerOperator

	p.Base = max(p.Base, 0)
	p.Time = max(p.Time, 0)
	p.Streak = max(p.Streak, 0)
	p.Variety = max(p.Variety, 0)
	return p
}

// Score returns the total points for in.
func Score(cfg config.ScoringConfig, in Input) int {
	return Breakdown(cfg, in).Total()
}
