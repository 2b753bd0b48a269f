package problemgen

import (
	"errors"
	"fmt"
)

// ErrUnsatisfiable is matched by every *GenerationError via errors.Is.
var ErrUnsatisfiable = errors.New("question generation unsatisfiable")

// GenerationError indicates the generator exhausted its retry budget. It
// points at a configuration that cannot produce a valid question.
type GenerationError struct {
	Stage     string // "operands" or "choices"
	Operator  Operator
	Level     int
	MaxNumber int
	Attempts  int
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generate %s for %s at level %d (maxNumber %d): gave up after %d attempts",
		e.Stage, e.Operator, e.Level, e.MaxNumber, e.Attempts)
}

func (e *GenerationError) Is(target error) bool { return target == ErrUnsatisfiable }
