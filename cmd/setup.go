package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/vidya/internal/profile"
	"github.com/abhisek/vidya/internal/store"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Rerun onboarding (keeps progress and XP)",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}

		profile.NewService(st.KV()).Reset()
		st.Close()

		// Relaunch the app; with the profile cleared it starts at the
		// onboarding wizard.
		return runApp(cmd)
	},
}
