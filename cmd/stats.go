package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/abhisek/mathbird/internal/config"
	"github.com/abhisek/mathbird/internal/session"
	"github.com/abhisek/mathbird/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show progress and recent sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		state, err := st.StateRepo().Load(ctx)
		if err != nil {
			return fmt.Errorf("load game state: %w", err)
		}
		records, err := st.SessionRepo().Recent(ctx, limit)
		if err != nil {
			return fmt.Errorf("load sessions: %w", err)
		}

		printStats(cmd.OutOrStdout(), cfg, state, records)
		return nil
	},
}

func init() {
	statsCmd.Flags().Int("limit", 10, "Number of recent sessions to list (0 for all)")
}

func printStats(w io.Writer, cfg config.Config, s session.GameState, records []store.SessionRecord) {
	fmt.Fprintf(w, "Level:           %d\n", s.CurrentLevel)
	fmt.Fprintf(w, "Stars:           %d\n", s.Stars)
	fmt.Fprintf(w, "Lifetime score:  %d\n", s.LifetimeScore)
	fmt.Fprintf(w, "Answered:        %d (%.0f%% correct)\n", s.QuestionsAnswered, session.LifetimeAccuracy(s))
	fmt.Fprintf(w, "Best streak:     %d\n", s.MaxStreak)

	if s.SessionQuestionsAnswered > 0 {
		fmt.Fprintf(w, "Current session: %d/%d answered, %d correct, score %d\n",
			s.SessionQuestionsAnswered, cfg.Session.QuestionsPerSession,
			s.SessionCorrectAnswers, s.Score)
	}

	if len(records) == 0 {
		fmt.Fprintln(w, "\nNo completed sessions yet.")
		return
	}

	fmt.Fprintln(w, "\nRecent sessions:")
	for _, r := range records {
		fmt.Fprintf(w, "  %s  level %d -> %d  %-12s  %2d/%-2d  %3.0f%%  %4d pts  %s\n",
			r.CompletedAt.Format("2006-01-02 15:04"),
			r.LevelBefore, r.LevelAfter,
			session.Transition(r.Transition).DisplayName(),
			r.CorrectAnswers, r.QuestionsAnswered,
			r.Accuracy, r.Score,
			strings.Repeat("*", r.Stars))
	}
}
