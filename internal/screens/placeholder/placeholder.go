// Package placeholder shows a locked-feature screen for features that
// need an LLM API key to work.
package placeholder

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/vidya/internal/screen"
	"github.com/abhisek/vidya/internal/ui/theme"
)

// PlaceholderScreen tells the student how to unlock an LLM-backed
// feature.
type PlaceholderScreen struct {
	title string
}

var _ screen.Screen = (*PlaceholderScreen)(nil)

// New creates a locked-feature screen with the given title.
func New(title string) *PlaceholderScreen {
	return &PlaceholderScreen{title: title}
}

func (p *PlaceholderScreen) Init() tea.Cmd {
	return nil
}

func (p *PlaceholderScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return p, nil
}

func (p *PlaceholderScreen) View(width, height int) string {
	heading := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true).
		Render("🔒 " + p.title + " needs an AI tutor")
	body := lipgloss.NewStyle().Foreground(theme.Text).
		Render("Set one of VIDYA_OPENAI_API_KEY,\nVIDYA_ANTHROPIC_API_KEY or VIDYA_GEMINI_API_KEY\nand restart to unlock this feature.\n\nQuizzes work offline in the meantime!")

	content := lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(heading + "\n\n" + body)

	return content
}

func (p *PlaceholderScreen) Title() string {
	return p.title
}
