package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/vidya/internal/app"
	"github.com/abhisek/vidya/internal/llm"
	"github.com/abhisek/vidya/internal/mission"
	"github.com/abhisek/vidya/internal/mistakes"
	"github.com/abhisek/vidya/internal/profile"
	"github.com/abhisek/vidya/internal/progress"
	"github.com/abhisek/vidya/internal/quiz"
	"github.com/abhisek/vidya/internal/screens/home"
	"github.com/abhisek/vidya/internal/store"
	"github.com/abhisek/vidya/internal/tutor"
	"github.com/abhisek/vidya/internal/xp"
)

// runApp opens the store, builds the services, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	return app.Run(buildDeps(cmd.Context(), st))
}

// buildDeps assembles the service graph. The LLM provider is optional;
// without one the quiz runs on the local question bank and the tutor
// stays locked.
func buildDeps(ctx context.Context, st *store.Store) home.Deps {
	if ctx == nil {
		ctx = context.Background()
	}

	kv := st.KV()
	profiles := profile.NewService(kv)
	prog := progress.NewService(kv)

	deps := home.Deps{
		Profiles: profiles,
		Progress: prog,
		Mistakes: mistakes.NewLedger(kv),
		Missions: mission.NewPlanner(kv, prog, profiles),
		XP:       xp.NewService(kv),
	}

	provider, err := llm.NewProviderFromEnv(ctx, st.Events())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "The doubt solver will be locked; quizzes run on the local question bank.")
		deps.Quiz = quiz.NewBatchService(nil)
		return deps
	}

	deps.Quiz = quiz.NewBatchService(quiz.NewGenerator(provider))
	deps.Solver = tutor.NewSolver(provider)
	return deps
}
