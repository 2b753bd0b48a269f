package session

import (
	"encoding/json"
	"slices"

	"github.com/abhisek/mathbird/internal/problemgen"
)

// HistoryLimit is the number of recent operators kept in
// GameState.LastQuestionTypes.
const HistoryLimit = 5

// OperatorSet is a set of operators. It serialises as a JSON array in
// operator display order.
type OperatorSet map[problemgen.Operator]struct{}

// NewOperatorSet returns a set holding ops.
func NewOperatorSet(ops ...problemgen.Operator) OperatorSet {
	s := make(OperatorSet, len(ops))
	for _, op := range ops {
		s[op] = struct{}{}
	}
	return s
}

// Has reports whether op is in the set.
func (s OperatorSet) Has(op problemgen.Operator) bool {
	_, ok := s[op]
	return ok
}

// Sorted returns the members in operator display order.
func (s OperatorSet) Sorted() []problemgen.Operator {
	out := make([]problemgen.Operator, 0, len(s))
	for _, op := range problemgen.AllOperators() {
		if s.Has(op) {
			out = append(out, op)
		}
	}
	return out
}

// Clone returns an independent copy of the set; nil becomes empty.
func (s OperatorSet) Clone() OperatorSet {
	return NewOperatorSet(s.Sorted()...)
}

func (s OperatorSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Sorted())
}

func (s *OperatorSet) UnmarshalJSON(b []byte) error {
	var ops []problemgen.Operator
	if err := json.Unmarshal(b, &ops); err != nil {
		return err
	}
	*s = NewOperatorSet(ops...)
	return nil
}

// GameState is the persisted player record. Transition functions take a
// GameState and return an updated copy; they never mutate their argument.
type GameState struct {
	CurrentLevel int `json:"currentLevel"`

	// Score accumulates points within the current session.
	Score int `json:"score"`

	// LifetimeScore is the total folded in from every completed session.
	LifetimeScore int `json:"lifetimeScore"`

	// QuestionsAnswered and CorrectAnswers are lifetime counters.
	QuestionsAnswered int `json:"questionsAnswered"`
	CorrectAnswers    int `json:"correctAnswers"`

	SessionQuestionsAnswered int `json:"sessionQuestionsAnswered"`
	SessionCorrectAnswers    int `json:"sessionCorrectAnswers"`

	// AverageResponseTime is the running mean in milliseconds over the
	// current session.
	AverageResponseTime float64 `json:"averageResponseTime"`

	CurrentStreak int `json:"currentStreak"`
	MaxStreak     int `json:"maxStreak"`

	// UniqueOperatorsUsed holds the operators seen in the current session.
	UniqueOperatorsUsed OperatorSet `json:"uniqueOperatorsUsed"`

	// Stars is the lifetime reward total.
	Stars int `json:"stars"`

	// LastQuestionTypes holds up to HistoryLimit operators, most recent last.
	LastQuestionTypes []problemgen.Operator `json:"lastQuestionTypes"`
}

// NewGameState returns the default state: level 1, every counter zero and
// empty collections.
func NewGameState() GameState {
	return GameState{
		CurrentLevel:        1,
		UniqueOperatorsUsed: OperatorSet{},
		LastQuestionTypes:   []problemgen.Operator{},
	}
}

// Clone returns a deep copy of s.
func (s GameState) Clone() GameState {
	c := s
	c.UniqueOperatorsUsed = s.UniqueOperatorsUsed.Clone()
	c.LastQuestionTypes = slices.Clone(s.LastQuestionTypes)
	if c.LastQuestionTypes == nil {
		c.LastQuestionTypes = []problemgen.Operator{}
	}
	return c
}

// Normalize returns a copy of s with nil collections replaced by empty
// ones, unknown operators and excess history dropped, and the level
// clamped to at least 1.
func (s GameState) Normalize() GameState {
	c := s.Clone()
	if c.CurrentLevel < 1 {
		c.CurrentLevel = 1
	}
	c.LastQuestionTypes = slices.DeleteFunc(c.LastQuestionTypes, func(op problemgen.Operator) bool {
		return !op.Valid()
	})
	if n := len(c.LastQuestionTypes); n > HistoryLimit {
		c.LastQuestionTypes = c.LastQuestionTypes[n-HistoryLimit:]
	}
	for op := range c.UniqueOperatorsUsed {
		if !op.Valid() {
			delete(c.UniqueOperatorsUsed, op)
		}
	}
	return c
}

// Accuracy returns the session accuracy as a percentage (0-100). It is 0
// when no question has been answered.
func Accuracy(s GameState) float64 {
	if s.SessionQuestionsAnswered <= 0 {
		return 0
	}
	return float64(s.SessionCorrectAnswers) / float64(s.SessionQuestionsAnswered) * 100
}

// LifetimeAccuracy returns the lifetime accuracy as a percentage.
func LifetimeAccuracy(s GameState) float64 {
	if s.QuestionsAnswered <= 0 {
		return 0
	}
	return float64(s.CorrectAnswers) / float64(s.QuestionsAnswered) * 100
}
