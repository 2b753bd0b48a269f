package cmd

import (
	"bufio"
	"fmt"
	"io"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/abhisek/mathbird/internal/config"
	"github.com/abhisek/mathbird/internal/problemgen"
	"github.com/abhisek/mathbird/internal/session"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Print generated questions for a level (no database)",
	Long: `Generate questions for a level and print them, or answer them with --quiz.

This is a stateless tool: nothing is read from or written to the database.
Useful for checking how difficulty and operator mix change with the level.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().Int("level", 1, "Level to generate questions for")
	previewCmd.Flags().Int("count", 5, "Number of questions to generate")
	previewCmd.Flags().Uint64("seed", 0, "Random seed for repeatable output (0 picks one)")
	previewCmd.Flags().Bool("quiz", false, "Answer each question interactively")
}

func runPreview(cmd *cobra.Command, args []string) error {
	level, _ := cmd.Flags().GetInt("level")
	count, _ := cmd.Flags().GetInt("count")
	seed, _ := cmd.Flags().GetUint64("seed")
	quiz, _ := cmd.Flags().GetBool("quiz")

	if level < 1 {
		return fmt.Errorf("invalid level %d: must be at least 1", level)
	}
	if count < 1 {
		return fmt.Errorf("invalid count %d: must be at least 1", count)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var gen *problemgen.ArithmeticGenerator
	if seed != 0 {
		gen = problemgen.NewWithSource(cfg, rand.NewPCG(seed, seed))
	} else {
		gen = problemgen.New(cfg)
	}

	out := cmd.OutOrStdout()
	difficulty := problemgen.DifficultyForLevel(level)
	fmt.Fprintf(out, "Level %d: difficulty %d, numbers up to %d, operators: %s\n\n",
		level, difficulty, problemgen.MaxNumberFor(difficulty, cfg),
		operatorNames(problemgen.EligibleOperators(level, cfg)))

	if quiz {
		return previewQuiz(out, cmd.InOrStdin(), cfg, gen, level, count)
	}
	return previewList(out, gen, level, count)
}

func previewList(w io.Writer, gen problemgen.Generator, level, count int) error {
	var recent []problemgen.Operator
	for i := 1; i <= count; i++ {
		q, err := gen.Generate(level, recent)
		if err != nil {
			return fmt.Errorf("question %d: %w", i, err)
		}
		recent = appendRecent(recent, q.Operator)

		fmt.Fprintf(w, "%2d) %-10s choices %v  answer %d\n",
			i, q.Text(), q.Choices, q.CorrectAnswer)
	}
	return nil
}

// previewQuiz plays count questions against an in-memory state.
func previewQuiz(w io.Writer, r io.Reader, cfg config.Config, gen problemgen.Generator, level, count int) error {
	state := session.NewGameState()
	state.CurrentLevel = level
	scanner := bufio.NewScanner(r)

	for i := 1; i <= count; i++ {
		q, err := gen.Generate(state.CurrentLevel, state.LastQuestionTypes)
		if err != nil {
			return fmt.Errorf("question %d: %w", i, err)
		}

		fmt.Fprintf(w, "── Question %d/%d ──\n", i, count)
		fmt.Fprintf(w, "%s = ?\n", q.Text())
		for j, c := range q.Choices {
			fmt.Fprintf(w, "  %d) %d\n", j+1, c)
		}

		fmt.Fprint(w, "\nYour answer (1-4): ")
		if !scanner.Scan() {
			fmt.Fprintln(w, "\n(input closed)")
			break
		}
		choice, ok := parseChoice(scanner.Text(), q.Choices)
		if !ok {
			fmt.Fprintln(w, "(skipped)")
			fmt.Fprintln(w)
			continue
		}

		var res session.AnswerResult
		state, res = session.RecordAnswer(state, cfg, session.AnswerInput{Question: q, Choice: choice})
		if res.Correct {
			fmt.Fprintf(w, "✓ Correct! +%d\n\n", res.Points.Total())
		} else {
			fmt.Fprintf(w, "✗ Wrong. %s = %d\n\n", q.Text(), res.CorrectAnswer)
		}
	}

	fmt.Fprintf(w, "── Summary: %d/%d correct, %d points ──\n",
		state.SessionCorrectAnswers, state.SessionQuestionsAnswered, state.Score)
	return nil
}

// parseChoice accepts a 1-based option number. Anything else is skipped.
func parseChoice(input string, choices []int) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || n < 1 || n > len(choices) {
		return 0, false
	}
	return choices[n-1], true
}

func appendRecent(recent []problemgen.Operator, op problemgen.Operator) []problemgen.Operator {
	recent = append(recent, op)
	if len(recent) > session.HistoryLimit {
		recent = recent[len(recent)-session.HistoryLimit:]
	}
	return recent
}

func operatorNames(ops []problemgen.Operator) string {
	names := make([]string, len(ops))
	for i, op := range ops {
		names[i] = op.DisplayName()
	}
	return strings.Join(names, ", ")
}
