// Package progressmap renders per-chapter mastery as a color-coded
// table grouped by subject.
package progressmap

import (
	"fmt"
	"image/color"
	"sort"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/vidya/internal/progress"
	"github.com/abhisek/vidya/internal/screen"
	"github.com/abhisek/vidya/internal/ui/components"
	"github.com/abhisek/vidya/internal/ui/layout"
	"github.com/abhisek/vidya/internal/ui/theme"
)

// ProgressMapScreen is a read-only view over the progress map.
type ProgressMapScreen struct {
	snapshot progress.Map
	subjects []string
}

// New creates the progress map screen from the current snapshot.
func New(prog *progress.Service) *ProgressMapScreen {
	snap := prog.Snapshot()

	subjects := make([]string, 0, len(snap))
	for subject := range snap {
		subjects = append(subjects, subject)
	}
	sort.Strings(subjects)

	return &ProgressMapScreen{snapshot: snap, subjects: subjects}
}

// Init implements screen.Screen.
func (s *ProgressMapScreen) Init() tea.Cmd {
	return nil
}

// Title implements screen.Screen.
func (s *ProgressMapScreen) Title() string {
	return "My Progress"
}

// KeyHints implements screen.KeyHintProvider.
func (s *ProgressMapScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "esc", Description: "back"}}
}

// Update implements screen.Screen.
func (s *ProgressMapScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return s, nil
}

// View implements screen.Screen.
func (s *ProgressMapScreen) View(width, height int) string {
	if len(s.subjects) == 0 {
		empty := lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
			Render("Nothing tracked yet. Play a quiz round to light this up!")
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, empty)
	}

	var b strings.Builder
	for _, subject := range s.subjects {
		b.WriteString(s.renderSubject(subject))
		b.WriteString("\n")
	}
	b.WriteString("  " + s.renderLegend() + "\n")

	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Center, b.String())
}

func (s *ProgressMapScreen) renderSubject(subject string) string {
	var b strings.Builder

	header := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(subject)
	b.WriteString("  " + header + "\n")

	chapters := make([]string, 0, len(s.snapshot[subject]))
	for chapter := range s.snapshot[subject] {
		chapters = append(chapters, chapter)
	}
	sort.Strings(chapters)

	for _, chapter := range chapters {
		stats := s.snapshot[subject][chapter]
		accuracy := ""
		bar := ""
		if stats.TotalAttempts > 0 {
			accuracy = fmt.Sprintf("%d/%d", stats.CorrectAnswers, stats.TotalAttempts)
			pct := float64(stats.CorrectAnswers) / float64(stats.TotalAttempts)
			bar = components.NewProgressBar("", pct, false, 16).View()
		}
		b.WriteString(fmt.Sprintf("    %s %-28s %-7s %s  %s\n",
			statusDot(stats.Status), chapter, accuracy, bar, statusLabel(stats.Status)))
	}

	return b.String()
}

func (s *ProgressMapScreen) renderLegend() string {
	parts := []string{
		statusDot(progress.StatusWeak) + " weak",
		statusDot(progress.StatusImproving) + " improving",
		statusDot(progress.StatusStrong) + " strong",
		statusDot(progress.StatusNotStarted) + " not started",
	}
	return lipgloss.NewStyle().Foreground(theme.TextDim).Render(strings.Join(parts, "   "))
}

func statusDot(st progress.Status) string {
	return lipgloss.NewStyle().Foreground(statusColor(st)).Render("●")
}

func statusLabel(st progress.Status) string {
	return lipgloss.NewStyle().Foreground(statusColor(st)).Render(string(st))
}

func statusColor(st progress.Status) color.Color {
	switch st {
	case progress.StatusWeak:
		return theme.Error
	case progress.StatusImproving:
		return theme.ArcadeYellow
	case progress.StatusStrong:
		return theme.Success
	default:
		return theme.TextDim
	}
}
