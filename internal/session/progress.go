package session

import "github.com/abhisek/mathbird/internal/config"

// Transition is the outcome of evaluating the session counters.
type Transition string

const (
	// TransitionContinue means the session is still in progress.
	TransitionContinue Transition = "continue"

	// TransitionLevelUp advances to the next level.
	TransitionLevelUp Transition = "level_up"

	// TransitionLevelDown drops one level (never below 1).
	TransitionLevelDown Transition = "level_down"

	// TransitionLevelRepeat keeps the level; accuracy fell between the
	// reduction and level-up thresholds.
	TransitionLevelRepeat Transition = "level_repeat"
)

// DisplayName returns a human-readable label for the transition.
func (t Transition) DisplayName() string {
	switch t {
	case TransitionContinue:
		return "In progress"
	case TransitionLevelUp:
		return "Level up"
	case TransitionLevelDown:
		return "Level down"
	case TransitionLevelRepeat:
		return "Repeat level"
	default:
		return string(t)
	}
}

// IsSessionComplete reports whether the session has reached its length.
func IsSessionComplete(s GameState, cfg config.Config) bool {
	return s.SessionQuestionsAnswered >= cfg.Session.QuestionsPerSession
}

// ShouldLevelUp reports whether a session that is exactly complete reached
// the level-up accuracy.
func ShouldLevelUp(s GameState, cfg config.Config) bool {
	return s.SessionQuestionsAnswered == cfg.Session.QuestionsPerSession &&
		Accuracy(s) >= cfg.LevelUp.MinAccuracy
}

// ShouldReduceDifficulty reports whether a complete session fell below the
// reduction accuracy.
func ShouldReduceDifficulty(s GameState, cfg config.Config) bool {
	return IsSessionComplete(s, cfg) &&
		Accuracy(s) < cfg.LevelUp.MinAccuracyForReduction
}

// Evaluate classifies the current session counters.
func Evaluate(s GameState, cfg config.Config) Transition {
	switch {
	case !IsSessionComplete(s, cfg):
		return TransitionContinue
	case ShouldLevelUp(s, cfg):
		return TransitionLevelUp
	case ShouldReduceDifficulty(s, cfg):
		return TransitionLevelDown
	default:
		return TransitionLevelRepeat
	}
}

// SessionResult summarises a completed session. It is computed from the
// counters before they are reset.
type SessionResult struct {
	Transition          Transition
	Rewards             Rewards
	LevelBefore         int
	LevelAfter          int
	QuestionsAnswered   int
	CorrectAnswers      int
	Accuracy            float64
	Score               int
	AverageResponseTime float64
	MaxStreak           int
}

// CompleteSession applies the session-boundary transition to s: score
// folds into the lifetime score, reward stars accumulate, session counters
// and the operator set reset, and the level changes per Evaluate. It
// returns s unchanged and a TransitionContinue result if the session is
// still in progress.
func CompleteSession(s GameState, cfg config.Config) (GameState, SessionResult) {
	next := s.Normalize()
	transition := Evaluate(next, cfg)
	result := SessionResult{
		Transition:          transition,
		LevelBefore:         next.CurrentLevel,
		LevelAfter:          next.CurrentLevel,
		QuestionsAnswered:   next.SessionQuestionsAnswered,
		CorrectAnswers:      next.SessionCorrectAnswers,
		Accuracy:            Accuracy(next),
		Score:               next.Score,
		AverageResponseTime: next.AverageResponseTime,
		MaxStreak:           next.MaxStreak,
	}
	if transition == TransitionContinue {
		return next, result
	}

	result.Rewards = CalculateSessionRewards(next, cfg)

	switch transition {
	case TransitionLevelUp:
		next.CurrentLevel++
	case TransitionLevelDown:
		next.CurrentLevel = max(1, next.CurrentLevel-1)
	}
	result.LevelAfter = next.CurrentLevel

	next.LifetimeScore += next.Score
	next.Stars += result.Rewards.Stars
	next = ResetSession(next)

	return next, result
}

// ResetSession returns a copy of s with the per-session fields cleared.
func ResetSession(s GameState) GameState {
	next := s.Clone()
	next.Score = 0
	next.SessionQuestionsAnswered = 0
	next.SessionCorrectAnswers = 0
	next.AverageResponseTime = 0
	next.UniqueOperatorsUsed = OperatorSet{}
	return next
}
