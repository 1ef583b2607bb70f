package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/vidya/internal/gate"
	"github.com/abhisek/vidya/internal/llm"
	"github.com/abhisek/vidya/internal/profile"
	"github.com/abhisek/vidya/internal/store"
	"github.com/abhisek/vidya/internal/tutor"
)

var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Ask the tutor a one-shot doubt",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doubt := strings.TrimSpace(strings.Join(args, " "))

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		p := profile.NewService(st.KV()).Current()

		if result := gate.Validate(doubt, gate.Context{Grade: string(p.Grade), Board: p.Board}); !result.Valid {
			fmt.Println(result.RejectionMessage)
			return nil
		}

		ctx := cmd.Context()
		provider, err := llm.NewProviderFromEnv(ctx, st.Events())
		if err != nil {
			return fmt.Errorf("LLM provider: %w", err)
		}

		answer, err := tutor.NewSolver(provider).Solve(ctx, tutor.Input{
			Doubt:    doubt,
			Grade:    string(p.Grade),
			Board:    p.Board,
			Language: string(p.Language),
		})
		if err != nil {
			fmt.Println(tutor.FriendlyMessage(err))
			return nil
		}

		fmt.Println(answer)
		return nil
	},
}
