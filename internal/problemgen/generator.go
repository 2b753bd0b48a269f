package problemgen

import (
	mathrand "math/rand"
	"math/rand/v2"
	"slices"

	"github.com/google/uuid"
	"github.com/mroth/weightedrand/v2"

	"github.com/abhisek/mathbird/internal/config"
)

// MaxDifficulty is the highest difficulty tier.
const MaxDifficulty = 5

// Generator produces questions for a level.
type Generator interface {
	// Generate returns a question for level, steering away from the
	// operators in recent (most-recent-last). A nil or empty recent slice
	// means no history.
	Generate(level int, recent []Operator) (Question, error)
}

// ArithmeticGenerator implements Generator with random operands drawn from
// the configured difficulty table.
type ArithmeticGenerator struct {
	cfg config.Config
	rng *rand.Rand

	// pick feeds weightedrand, which only accepts a math/rand v1 source.
	// It is seeded from rng so one seed fixes every draw.
	pick *mathrand.Rand
}

var _ Generator = (*ArithmeticGenerator)(nil)

// New creates an ArithmeticGenerator seeded from the runtime's entropy.
func New(cfg config.Config) *ArithmeticGenerator {
	return NewWithSource(cfg, rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// NewWithSource creates an ArithmeticGenerator drawing from src, for
// reproducible sequences.
func NewWithSource(cfg config.Config, src rand.Source) *ArithmeticGenerator {
	rng := rand.New(src)
	return &ArithmeticGenerator{
		cfg:  cfg,
		rng:  rng,
		pick: mathrand.New(mathrand.NewSource(int64(rng.Uint64()))),
	}
}

// DifficultyForLevel maps a level to its difficulty tier:
// min(5, ceil(level/2)). Levels below 1 are treated as 1.
func DifficultyForLevel(level int) int {
	if level < 1 {
		level = 1
	}
	return min(MaxDifficulty, (level+1)/2)
}

// MaxNumberFor returns the operand bound for a difficulty tier.
func MaxNumberFor(difficulty int, cfg config.Config) int {
	switch {
	case difficulty <= 2:
		return cfg.Difficulty.Easy.MaxNumber
	case difficulty == 3:
		return cfg.Difficulty.Medium.MaxNumber
	case difficulty == 4:
		return cfg.Difficulty.Hard.MaxNumber
	default:
		return cfg.Difficulty.Expert.MaxNumber
	}
}

// EligibleOperators returns the operators unlocked at level.
func EligibleOperators(level int, cfg config.Config) []Operator {
	ops := []Operator{OpAdd}
	if level >= cfg.Operators.SubtractionMinLevel {
		ops = append(ops, OpSubtract)
	}
	if level >= cfg.Operators.MultiplicationMinLevel {
		ops = append(ops, OpMultiply)
	}
	return ops
}

// DistractorRange is the maximum distance of a wrong choice from the
// correct answer for a difficulty tier.
func DistractorRange(difficulty int) int {
	if difficulty <= 2 {
		return 5
	}
	return 10
}

func (g *ArithmeticGenerator) Generate(level int, recent []Operator) (Question, error) {
	if level < 1 {
		level = 1
	}
	difficulty := DifficultyForLevel(level)
	maxNumber := MaxNumberFor(difficulty, g.cfg)
	op := g.pickOperator(EligibleOperators(level, g.cfg), recent)

	a, b, answer, err := g.operands(op, level, maxNumber)
	if err != nil {
		return Question{}, err
	}

	choices, err := g.choices(op, level, answer, difficulty)
	if err != nil {
		return Question{}, err
	}

	return Question{
		ID:            uuid.NewString(),
		Operand1:      a,
		Operand2:      b,
		Operator:      op,
		CorrectAnswer: answer,
		Choices:       choices,
		Difficulty:    difficulty,
	}, nil
}

// pickOperator prefers an eligible operator absent from the last
// RecentWindow entries of recent, falling back to a uniform pick over all
// eligible operators when every one was used recently.
func (g *ArithmeticGenerator) pickOperator(eligible, recent []Operator) Operator {
	if len(eligible) == 1 {
		return eligible[0]
	}

	window := recent
	if w := g.cfg.Operators.RecentWindow; len(window) > w {
		window = window[len(window)-w:]
	}

	choices := make([]weightedrand.Choice[Operator, int], 0, len(eligible))
	for _, op := range eligible {
		weight := 1
		if slices.Contains(window, op) {
			weight = 0
		}
		choices = append(choices, weightedrand.NewChoice(op, weight))
	}

	chooser, err := weightedrand.NewChooser(choices...)
	if err != nil {
		// Every eligible operator is recent.
		return eligible[g.rng.IntN(len(eligible))]
	}
	return chooser.PickSource(g.pick)
}

// operands draws an operand pair for op, retrying while the result exceeds
// 2*maxNumber.
func (g *ArithmeticGenerator) operands(op Operator, level, maxNumber int) (a, b, answer int, err error) {
	limit := 2 * maxNumber
	for attempt := 0; attempt < g.cfg.Generation.MaxAttempts; attempt++ {
		a = g.between(1, maxNumber)
		b = g.between(1, maxNumber)

		switch op {
		case OpSubtract:
			if a < b {
				a, b = b, a
			}
		case OpMultiply:
			mul := g.cfg.Difficulty.Multiplication.MaxNumber
			a = g.between(1, mul)
			b = g.between(1, mul)
		}

		answer = op.Apply(a, b)
		if answer <= limit {
			return a, b, answer, nil
		}
	}
	return 0, 0, 0, &GenerationError{
		Stage:     "operands",
		Operator:  op,
		Level:     level,
		MaxNumber: maxNumber,
		Attempts:  g.cfg.Generation.MaxAttempts,
	}
}

// choices builds NumChoices distinct non-negative options around answer
// and shuffles them.
func (g *ArithmeticGenerator) choices(op Operator, level, answer, difficulty int) ([]int, error) {
	spread := DistractorRange(difficulty)
	choices := []int{answer}
	for attempt := 0; len(choices) < NumChoices; attempt++ {
		if attempt >= g.cfg.Generation.MaxAttempts {
			return nil, &GenerationError{
				Stage:     "choices",
				Operator:  op,
				Level:     level,
				MaxNumber: MaxNumberFor(difficulty, g.cfg),
				Attempts:  attempt,
			}
		}
		c := answer + g.between(-spread, spread)
		if c < 0 || slices.Contains(choices, c) {
			continue
		}
		choices = append(choices, c)
	}

	// rand.Shuffle is a Fisher-Yates shuffle.
	g.rng.Shuffle(len(choices), func(i, j int) {
		choices[i], choices[j] = choices[j], choices[i]
	})
	return choices, nil
}

// between returns a uniform integer in [lo, hi].
func (g *ArithmeticGenerator) between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + g.rng.IntN(hi-lo+1)
}
