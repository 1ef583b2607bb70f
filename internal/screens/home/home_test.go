package home

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/vidya/internal/mission"
	"github.com/abhisek/vidya/internal/mistakes"
	"github.com/abhisek/vidya/internal/profile"
	"github.com/abhisek/vidya/internal/progress"
	"github.com/abhisek/vidya/internal/quiz"
	"github.com/abhisek/vidya/internal/store"
	"github.com/abhisek/vidya/internal/xp"
)

func newTestDeps(t *testing.T) Deps {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "vidya.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	kv := st.KV()
	profiles := profile.NewService(kv)
	profiles.SetGrade("6")
	prog := progress.NewService(kv)

	return Deps{
		Profiles: profiles,
		Progress: prog,
		Mistakes: mistakes.NewLedger(kv),
		Missions: mission.NewPlanner(kv, prog, profiles),
		XP:       xp.NewService(kv),
		Quiz:     quiz.NewBatchService(nil),
	}
}

func captureMistakes(ledger *mistakes.Ledger, n int) {
	for i := 0; i < n; i++ {
		ledger.Capture(mistakes.CaptureInput{
			Question:      "What is " + strings.Repeat("x", i+1) + "?",
			UserAnswer:    "a",
			CorrectAnswer: "b",
			Subject:       "Mathematics",
		})
	}
}

func TestMenuShowsAllEntries(t *testing.T) {
	h := New(newTestDeps(t))

	view := h.View(120, 40)
	for _, label := range []string{"QUIZ ARCADE", "ASK TUTOR", "DAILY MISSION", "MISTAKE VAULT", "MY PROGRESS", "EXIT"} {
		if !strings.Contains(view, label) {
			t.Errorf("view missing menu entry %q", label)
		}
	}
}

func TestLockedTutorShowsBanner(t *testing.T) {
	h := New(newTestDeps(t))

	if !strings.Contains(h.View(120, 40), "LLM API key") {
		t.Error("home without a provider should point at the missing API key")
	}
}

func TestMascotAlertsOnPilingMistakes(t *testing.T) {
	deps := newTestDeps(t)
	captureMistakes(deps.Mistakes, 5)

	h := New(deps)
	if h.mascotVariant != MascotAlert {
		t.Errorf("expected alert mascot with 5 open mistakes, got %v", h.mascotVariant)
	}
}

func TestMascotCelebratesCompletedMission(t *testing.T) {
	deps := newTestDeps(t)
	ctx := context.Background()
	for _, task := range deps.Missions.Today(ctx).Tasks {
		deps.Missions.CompleteTask(ctx, task.ID)
	}

	h := New(deps)
	if h.mascotVariant != MascotCelebrating {
		t.Errorf("expected celebrating mascot, got %v", h.mascotVariant)
	}
}

func TestStatsRefreshOnUpdate(t *testing.T) {
	deps := newTestDeps(t)
	h := New(deps)

	deps.XP.AwardAnswer(context.Background(), true, 10)
	captureMistakes(deps.Mistakes, 1)

	h.Update(tea.KeyPressMsg{Code: 'j', Text: "j"})

	want := deps.XP.Current()
	if h.level != want.Level() || h.streak != want.Streak {
		t.Errorf("stats not refreshed: level %d streak %d", h.level, h.streak)
	}
	if h.openMistakes != 1 {
		t.Errorf("open mistakes not refreshed: %d", h.openMistakes)
	}
}
