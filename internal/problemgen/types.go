package problemgen

import (
	"fmt"
	"slices"
)

// Operator is an arithmetic operation a question can use.
type Operator string

const (
	OpAdd      Operator = "add"
	OpSubtract Operator = "subtract"
	OpMultiply Operator = "multiply"

	// OpDivide is reserved; the generator never produces it.
	OpDivide Operator = "divide"
)

// AllOperators returns every operator in display order.
func AllOperators() []Operator {
	return []Operator{OpAdd, OpSubtract, OpMultiply, OpDivide}
}

// Valid reports whether op is a known operator.
func (op Operator) Valid() bool {
	switch op {
	case OpAdd, OpSubtract, OpMultiply, OpDivide:
		return true
	default:
		return false
	}
}

// Symbol returns the math symbol for the operator.
func (op Operator) Symbol() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSubtract:
		return "-"
	case OpMultiply:
		return "×"
	case OpDivide:
		return "÷"
	default:
		return "?"
	}
}

// DisplayName returns a human-readable label for the operator.
func (op Operator) DisplayName() string {
	switch op {
	case OpAdd:
		return "Addition"
	case OpSubtract:
		return "Subtraction"
	case OpMultiply:
		return "Multiplication"
	case OpDivide:
		return "Division"
	default:
		return string(op)
	}
}

// Apply computes a op b. Division by zero yields 0.
func (op Operator) Apply(a, b int) int {
	switch op {
	case OpSubtract:
		return a - b
	case OpMultiply:
		return a * b
	case OpDivide:
		if b == 0 {
			return 0
		}
		return a / b
	default:
		return a + b
	}
}

// NumChoices is the number of answer options on every question.
const NumChoices = 4

// Question is a generated multiple-choice arithmetic question. Treat it as
// an immutable value once generated.
type Question struct {
	// ID is an opaque unique token.
	ID string

	Operand1 int
	Operand2 int
	Operator Operator

	// CorrectAnswer is Operand1 Operator Operand2.
	CorrectAnswer int

	// Choices holds NumChoices distinct non-negative values in presentation
	// order, CorrectAnswer exactly once.
	Choices []int

	// Difficulty is the 1-5 tier derived from the level.
	Difficulty int
}

// Text renders the question prompt, e.g. "7 + 5".
func (q Question) Text() string {
	return fmt.Sprintf("%d %s %d", q.Operand1, q.Operator.Symbol(), q.Operand2)
}

// IsCorrect reports whether choice is the correct answer.
func (q Question) IsCorrect(choice int) bool {
	return choice == q.CorrectAnswer
}

// CorrectIndex returns the index of the correct answer in Choices, or -1.
func (q Question) CorrectIndex() int {
	return slices.Index(q.Choices, q.CorrectAnswer)
}
