// Package vault lists captured mistakes and lets the student mark them
// as fixed.
package vault

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/vidya/internal/mistakes"
	"github.com/abhisek/vidya/internal/screen"
	"github.com/abhisek/vidya/internal/ui/layout"
	"github.com/abhisek/vidya/internal/ui/theme"
)

const visibleMistakes = 20

// VaultScreen browses the mistake ledger, most recent first.
type VaultScreen struct {
	ledger  *mistakes.Ledger
	entries []mistakes.Mistake
	cursor  int
}

// New creates the vault screen with the current ledger contents.
func New(ledger *mistakes.Ledger) *VaultScreen {
	return &VaultScreen{
		ledger:  ledger,
		entries: ledger.ForRevision(visibleMistakes),
	}
}

// Init implements screen.Screen.
func (s *VaultScreen) Init() tea.Cmd {
	return nil
}

// Title implements screen.Screen.
func (s *VaultScreen) Title() string {
	return "Mistake Vault"
}

// KeyHints implements screen.KeyHintProvider.
func (s *VaultScreen) KeyHints() []layout.KeyHint {
	if len(s.entries) == 0 {
		return []layout.KeyHint{{Key: "esc", Description: "back"}}
	}
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "navigate"},
		{Key: "enter", Description: "got it now"},
		{Key: "esc", Description: "back"},
	}
}

// Update implements screen.Screen.
func (s *VaultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
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
		if s.cursor < len(s.entries)-1 {
			s.cursor++
		}
	case "enter":
		s.resolveSelected()
	}

	return s, nil
}

// resolveSelected removes the highlighted mistake from the ledger. The
// removal is permanent; the question re-enters the vault only if it is
// answered wrong again.
func (s *VaultScreen) resolveSelected() {
	if s.cursor >= len(s.entries) {
		return
	}

	s.ledger.Resolve(s.entries[s.cursor].ID)
	s.entries = s.ledger.ForRevision(visibleMistakes)

	if s.cursor >= len(s.entries) && s.cursor > 0 {
		s.cursor--
	}
}

// View implements screen.Screen.
func (s *VaultScreen) View(width, height int) string {
	if len(s.entries) == 0 {
		empty := lipgloss.NewStyle().Foreground(theme.Success).Bold(true).
			Render("Vault clear! No mistakes to fix. 🌟")
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, empty)
	}

	var b strings.Builder

	count := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).
		Render(fmt.Sprintf("%d to fix", s.ledger.Count()))
	b.WriteString("  " + count + "\n\n")

	for i, m := range s.entries {
		b.WriteString(s.renderEntry(m, i == s.cursor))
	}

	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Center, b.String())
}

func (s *VaultScreen) renderEntry(m mistakes.Mistake, selected bool) string {
	marker := "  "
	qStyle := theme.Unselected
	if selected {
		marker = "▸ "
		qStyle = theme.Selected
	}

	subject := lipgloss.NewStyle().Foreground(theme.Secondary).
		Render(fmt.Sprintf("[%s]", m.Subject))

	line := fmt.Sprintf("  %s%s %s\n", marker, subject, qStyle.Render(m.Question))
	if !selected {
		return line
	}

	detail := lipgloss.NewStyle().Foreground(theme.TextDim)
	answers := fmt.Sprintf("      your answer: %s   correct: %s",
		detail.Render(m.UserAnswer),
		lipgloss.NewStyle().Foreground(theme.Success).Render(m.CorrectAnswer))
	meta := detail.Render(fmt.Sprintf("      missed %s", pluralAttempts(m.Attempts)))

	return line + answers + "\n" + meta + "\n"
}

func pluralAttempts(n int) string {
	if n == 1 {
		return "1 time"
	}
	return fmt.Sprintf("%d times", n)
}
