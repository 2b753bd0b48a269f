package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/abhisek/mathbird/internal/game"
	"github.com/abhisek/mathbird/internal/problemgen"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Erase all progress and session history",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		out := cmd.OutOrStdout()

		if !yes {
			fmt.Fprint(out, "This erases your level, stars and history. Type 'yes' to continue: ")
			scanner := bufio.NewScanner(cmd.InOrStdin())
			if !scanner.Scan() || strings.TrimSpace(strings.ToLower(scanner.Text())) != "yes" {
				fmt.Fprintln(out, "Reset cancelled.")
				return nil
			}
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		g := game.New(cfg, problemgen.New(cfg), st.StateRepo(), st.SessionRepo())
		if err := g.Reset(cmd.Context()); err != nil {
			return fmt.Errorf("reset progress: %w", err)
		}
		fmt.Fprintln(out, "Progress reset. Back to level 1.")
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
}
