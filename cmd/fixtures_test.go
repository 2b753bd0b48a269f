package cmd

import "github.com/abhisek/mathbird/internal/problemgen"

// fixedQuestion always asks 6 + 5 with the answer second.
type fixedQuestion struct{}

func (fixedQuestion) Generate(level int, _ []problemgen.Operator) (problemgen.Question, error) {
	return problemgen.Question{
		ID:            "fixed",
		Operand1:      6,
		Operand2:      5,
		Operator:      problemgen.OpAdd,
		CorrectAnswer: 11,
		Choices:       []int{9, 11, 12, 14},
		Difficulty:    problemgen.DifficultyForLevel(level),
	}, nil
}
