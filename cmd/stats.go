package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/vidya/internal/mistakes"
	"github.com/abhisek/vidya/internal/progress"
	"github.com/abhisek/vidya/internal/store"
	"github.com/abhisek/vidya/internal/xp"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show XP, streak and per-chapter progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		kv := st.KV()
		state := xp.NewService(kv).Current()
		current, needed := state.LevelProgress()

		fmt.Printf("Level %d   %d XP total (%d/%d into this level)\n",
			state.Level(), state.XP, current, needed)
		fmt.Printf("Streak: %d day(s)   Open mistakes: %d\n\n",
			state.Streak, mistakes.NewLedger(kv).Count())

		snap := progress.NewService(kv).Snapshot()
		if len(snap) == 0 {
			fmt.Println("No chapters tracked yet. Play a quiz round to get started!")
			return nil
		}

		subjects := make([]string, 0, len(snap))
		for subject := range snap {
			subjects = append(subjects, subject)
		}
		sort.Strings(subjects)

		fmt.Printf("%-16s  %-28s  %8s  %s\n", "Subject", "Chapter", "Correct", "Status")
		fmt.Println(strings.Repeat("─", 70))
		for _, subject := range subjects {
			chapters := make([]string, 0, len(snap[subject]))
			for chapter := range snap[subject] {
				chapters = append(chapters, chapter)
			}
			sort.Strings(chapters)

			for _, chapter := range chapters {
				cs := snap[subject][chapter]
				fmt.Printf("%-16s  %-28s  %4d/%-3d  %s\n",
					truncate(subject, 16), truncate(chapter, 28),
					cs.CorrectAnswers, cs.TotalAttempts, cs.Status)
			}
		}
		return nil
	},
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
