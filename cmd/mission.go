package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/abhisek/vidya/internal/mission"
	"github.com/abhisek/vidya/internal/profile"
	"github.com/abhisek/vidya/internal/progress"
	"github.com/abhisek/vidya/internal/store"
)

var missionCmd = &cobra.Command{
	Use:   "mission",
	Short: "Show today's mission",
	RunE: func(cmd *cobra.Command, args []string) error {
		planner, closeStore, err := openPlanner(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		printMission(planner.Today(cmd.Context()))
		return nil
	},
}

var missionDoneCmd = &cobra.Command{
	Use:   "done <task-number>",
	Short: "Mark a mission task as done (1 or 2)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid task number %q", args[0])
		}

		planner, closeStore, err := openPlanner(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		ctx := cmd.Context()
		m := planner.Today(ctx)
		if n < 1 || n > len(m.Tasks) {
			return fmt.Errorf("task number must be between 1 and %d", len(m.Tasks))
		}

		planner.CompleteTask(ctx, m.Tasks[n-1].ID)
		printMission(planner.Today(ctx))
		return nil
	},
}

func openPlanner(cmd *cobra.Command) (*mission.Planner, func(), error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}

	kv := st.KV()
	profiles := profile.NewService(kv)
	prog := progress.NewService(kv)

	return mission.NewPlanner(kv, prog, profiles), func() { st.Close() }, nil
}

func printMission(m mission.Mission) {
	fmt.Printf("%s  (%s)\n\n", m.Title, m.Date)
	for i, task := range m.Tasks {
		check := "[ ]"
		if task.Done {
			check = "[x]"
		}
		fmt.Printf("  %d. %s %s\n", i+1, check, task.Description)
	}
	fmt.Println()
	if m.Completed {
		fmt.Println("Mission complete! See you tomorrow.")
	} else {
		fmt.Println("Mark tasks with: vidya mission done <n>")
	}
}

func init() {
	missionCmd.AddCommand(missionDoneCmd)
}
