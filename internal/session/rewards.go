package session

import (
	"math/rand/v2"

	"github.com/abhisek/mathbird/internal/config"
)

// Rewards is the star tier awarded at session completion.
type Rewards struct {
	Stars   int
	Message string
}

const (
	messagePerfect       = "Perfect! You're a math superstar!"
	messageGreat         = "Great job! Keep up the good work!"
	messageGood          = "Good effort! Practice makes perfect!"
	messageEncouragement = "Keep practicing! You'll get better!"
)

// CalculateSessionRewards tiers the session accuracy into 0-3 stars.
func CalculateSessionRewards(s GameState, cfg config.Config) Rewards {
	acc := Accuracy(s)
	r := cfg.Rewards
	switch {
	case acc >= r.Perfect.Accuracy:
		return Rewards{Stars: 3, Message: messagePerfect}
	case acc >= r.Great.Accuracy:
		return Rewards{Stars: 2, Message: messageGreat}
	case acc >= r.Good.Accuracy:
		return Rewards{Stars: 1, Message: messageGood}
	default:
		return Rewards{Stars: 0, Message: messageEncouragement}
	}
}

var encouragingMessages = []string{
	"Don't give up! You're learning and getting better!",
	"Practice makes perfect! Let's try again!",
	"Every mistake is a chance to learn! Ready for another round?",
	"You've got this! Let's tackle this level again!",
	"Keep going! Success is just around the corner!",
}

// EncouragementMessage picks a message for a session that did not level
// up. A nil r uses the global source.
func EncouragementMessage(r *rand.Rand) string {
	if r == nil {
		return encouragingMessages[rand.IntN(len(encouragingMessages))]
	}
	return encouragingMessages[r.IntN(len(encouragingMessages))]
}
