// Package mission renders the daily two-task study plan and lets the
// student check tasks off.
package mission

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/vidya/internal/mission"
	"github.com/abhisek/vidya/internal/screen"
	"github.com/abhisek/vidya/internal/ui/layout"
	"github.com/abhisek/vidya/internal/ui/theme"
)

// MissionScreen shows today's mission with its tasks and completion
// state.
type MissionScreen struct {
	planner *mission.Planner
	today   mission.Mission
	cursor  int
}

// New creates the mission screen, generating today's plan if needed.
func New(planner *mission.Planner) *MissionScreen {
	return &MissionScreen{
		planner: planner,
		today:   planner.Today(context.Background()),
	}
}

// Init implements screen.Screen.
func (s *MissionScreen) Init() tea.Cmd {
	return nil
}

// Title implements screen.Screen.
func (s *MissionScreen) Title() string {
	return "Daily Mission"
}

// KeyHints implements screen.KeyHintProvider.
func (s *MissionScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "navigate"},
		{Key: "enter", Description: "mark done"},
		{Key: "esc", Description: "back"},
	}
}

// Update implements screen.Screen.
func (s *MissionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(s.today.Tasks)-1 {
			s.cursor++
		}
	case "enter", " ":
		if s.cursor < len(s.today.Tasks) {
			s.planner.CompleteTask(context.Background(), s.today.Tasks[s.cursor].ID)
			s.today = s.planner.Today(context.Background())
		}
	}

	return s, nil
}

// View implements screen.Screen.
func (s *MissionScreen) View(width, height int) string {
	var b strings.Builder

	title := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(s.today.Title)
	date := lipgloss.NewStyle().Foreground(theme.TextDim).Render(s.today.Date)
	b.WriteString("  " + title + "\n")
	b.WriteString("  " + date + "\n\n")

	for i, task := range s.today.Tasks {
		b.WriteString("  " + s.renderTask(task, i == s.cursor) + "\n\n")
	}

	if s.today.Completed {
		done := lipgloss.NewStyle().Foreground(theme.Success).Bold(true).
			Render("Mission complete! See you tomorrow. 🎉")
		b.WriteString("  " + done + "\n")
	} else {
		hint := lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
			Render("Finish both tasks to complete today's mission.")
		b.WriteString("  " + hint + "\n")
	}

	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Center, b.String())
}

func (s *MissionScreen) renderTask(task mission.Task, selected bool) string {
	check := "[ ]"
	if task.Done {
		check = "[✓]"
	}

	line := fmt.Sprintf("%s %s", check, task.Description)

	style := theme.Unselected
	switch {
	case task.Done:
		style = lipgloss.NewStyle().Foreground(theme.Success)
	case selected:
		style = theme.Selected
	}

	if selected {
		return style.Render("▸ " + line)
	}
	return style.Render("  " + line)
}
