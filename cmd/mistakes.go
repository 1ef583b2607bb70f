package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/vidya/internal/mistakes"
	"github.com/abhisek/vidya/internal/store"
)

var mistakesCmd = &cobra.Command{
	Use:   "mistakes",
	Short: "List open mistakes from the vault",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		ledger, closeStore, err := openLedger(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		entries := ledger.ForRevision(limit)
		if len(entries) == 0 {
			fmt.Println("Vault clear! No mistakes to fix.")
			return nil
		}

		fmt.Printf("%d open mistake(s)\n\n", ledger.Count())
		for _, m := range entries {
			fmt.Printf("%s  [%s]\n", m.ID, m.Subject)
			fmt.Printf("  Q: %s\n", m.Question)
			fmt.Printf("  your answer: %s   correct: %s\n", m.UserAnswer, m.CorrectAnswer)
			fmt.Printf("  missed %d time(s), last on %s\n\n",
				m.Attempts, m.Timestamp.Local().Format("2006-01-02"))
		}
		fmt.Println("Resolve with: vidya mistakes resolve <id>")
		return nil
	},
}

var mistakesResolveCmd = &cobra.Command{
	Use:   "resolve <id>",
	Short: "Mark a mistake as fixed and remove it from the vault",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := strings.TrimSpace(args[0])

		ledger, closeStore, err := openLedger(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		before := ledger.Count()
		ledger.Resolve(id)
		if ledger.Count() == before {
			return fmt.Errorf("no mistake with ID %q", id)
		}

		fmt.Printf("Resolved. %d mistake(s) left.\n", ledger.Count())
		return nil
	},
}

func openLedger(cmd *cobra.Command) (*mistakes.Ledger, func(), error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}
	return mistakes.NewLedger(st.KV()), func() { st.Close() }, nil
}

func init() {
	mistakesCmd.Flags().IntP("limit", "n", 20, "Number of mistakes to show")
	mistakesCmd.AddCommand(mistakesResolveCmd)
}
