package mission

import (
	"path/filepath"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	missioncore "github.com/abhisek/vidya/internal/mission"
	"github.com/abhisek/vidya/internal/profile"
	"github.com/abhisek/vidya/internal/progress"
	"github.com/abhisek/vidya/internal/store"
)

func newTestMission(t *testing.T) *MissionScreen {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "vidya.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	profiles := profile.NewService(st.KV())
	profiles.SetGrade("6")
	prog := progress.NewService(st.KV())
	planner := missioncore.NewPlanner(st.KV(), prog, profiles)

	return New(planner)
}

func enter() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: tea.KeyEnter}
}

func key(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestShowsTodaysTasks(t *testing.T) {
	s := newTestMission(t)

	if len(s.today.Tasks) != 2 {
		t.Fatalf("expected a two-task mission, got %d", len(s.today.Tasks))
	}
	if s.today.Completed {
		t.Error("fresh mission should not be completed")
	}

	view := s.View(80, 24)
	for _, task := range s.today.Tasks {
		if !strings.Contains(view, task.Description) {
			t.Errorf("view missing task %q", task.Description)
		}
	}
}

func TestEnterCompletesSelectedTask(t *testing.T) {
	s := newTestMission(t)

	s.Update(enter())
	if !s.today.Tasks[0].Done {
		t.Error("first task should be done after enter")
	}
	if s.today.Completed {
		t.Error("mission should not complete with one task left")
	}

	s.Update(key('j'))
	s.Update(enter())
	if !s.today.Tasks[1].Done {
		t.Error("second task should be done after enter")
	}
	if !s.today.Completed {
		t.Error("mission should complete once both tasks are done")
	}
	if !strings.Contains(s.View(80, 24), "Mission complete") {
		t.Error("completed mission should celebrate in the view")
	}
}

func TestCompletingDoneTaskIsNoOp(t *testing.T) {
	s := newTestMission(t)

	s.Update(enter())
	s.Update(enter())

	if s.today.Completed {
		t.Error("re-completing the same task must not finish the mission")
	}
	if s.today.Tasks[1].Done {
		t.Error("second task should still be open")
	}
}

func TestCursorStaysInBounds(t *testing.T) {
	s := newTestMission(t)

	s.Update(key('k'))
	if s.cursor != 0 {
		t.Errorf("cursor moved above the list: %d", s.cursor)
	}

	s.Update(key('j'))
	s.Update(key('j'))
	s.Update(key('j'))
	if s.cursor != len(s.today.Tasks)-1 {
		t.Errorf("cursor moved past the list: %d", s.cursor)
	}
}
