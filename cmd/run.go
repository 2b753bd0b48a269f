package cmd

import (
	"fmt"

	"github.com/abhisek/mathbird/internal/app"
	"github.com/abhisek/mathbird/internal/game"
	"github.com/abhisek/mathbird/internal/problemgen"
	"github.com/spf13/cobra"
)

// runApp opens the store, restores progress, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	sessions := st.SessionRepo()
	g := game.New(cfg, problemgen.New(cfg), st.StateRepo(), sessions)
	if err := g.Load(ctx); err != nil {
		return fmt.Errorf("restore progress: %w", err)
	}

	return app.Run(app.Options{
		Game:     g,
		Sessions: sessions,
	})
}
