package chat

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/vidya/internal/gate"
	"github.com/abhisek/vidya/internal/llm"
	"github.com/abhisek/vidya/internal/profile"
	"github.com/abhisek/vidya/internal/progress"
	"github.com/abhisek/vidya/internal/screen"
	"github.com/abhisek/vidya/internal/tutor"
	"github.com/abhisek/vidya/internal/ui/components"
	"github.com/abhisek/vidya/internal/ui/layout"
	"github.com/abhisek/vidya/internal/ui/theme"
)

const greetingReply = "Hello! What would you like to learn today? Ask me anything from your textbook. 😊"

// message is one rendered chat bubble.
type message struct {
	fromUser bool
	text     string
}

type streamStartMsg struct {
	ch  <-chan llm.Chunk
	err error
}

type chunkMsg struct {
	text string
	err  error
	done bool
}

type thinkingTickMsg time.Time

// ChatScreen is the doubt-solving conversation with the AI tutor.
type ChatScreen struct {
	solver   *tutor.Solver
	profiles *profile.Service
	progress *progress.Service

	input    components.TextInput
	messages []message
	history  []llm.Message

	streaming bool
	waiting   bool
	ticks     int
	stream    <-chan llm.Chunk
}

var _ screen.Screen = (*ChatScreen)(nil)
var _ screen.KeyHintProvider = (*ChatScreen)(nil)

// New creates a ChatScreen. The solver must be non-nil.
func New(solver *tutor.Solver, profiles *profile.Service, prog *progress.Service) *ChatScreen {
	return &ChatScreen{
		solver:   solver,
		profiles: profiles,
		progress: prog,
		input:    components.NewTextInput("Ask your doubt...", 280),
	}
}

func (c *ChatScreen) Init() tea.Cmd {
	return c.input.Init()
}

func (c *ChatScreen) Title() string {
	return "Ask Tutor"
}

func (c *ChatScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Send"},
		{Key: "Esc", Description: "Back"},
	}
}

func (c *ChatScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case streamStartMsg:
		return c.handleStreamStart(msg)

	case chunkMsg:
		return c.handleChunk(msg)

	case thinkingTickMsg:
		if !c.waiting {
			return c, nil
		}
		c.ticks++
		return c, thinkingTick()

	case tea.KeyMsg:
		if msg.String() == "enter" && !c.streaming && !c.waiting {
			return c, c.submit()
		}
		var cmd tea.Cmd
		c.input, cmd = c.input.Update(msg)
		return c, cmd
	}

	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return c, cmd
}

// submit runs the subject gate and, if the doubt passes, starts a
// streamed tutor reply. Greetings get a canned response without
// spending an LLM call.
func (c *ChatScreen) submit() tea.Cmd {
	text := strings.TrimSpace(c.input.Value())
	if text == "" {
		return nil
	}
	c.input.Clear()
	c.messages = append(c.messages, message{fromUser: true, text: text})

	if gate.IsGreeting(text) {
		c.messages = append(c.messages, message{fromUser: false, text: greetingReply})
		return nil
	}

	p := c.profiles.Current()
	result := gate.Validate(text, gate.Context{
		Grade: string(p.Grade),
		Board: p.Board,
	})
	if !result.Valid {
		c.messages = append(c.messages, message{fromUser: false, text: result.RejectionMessage})
		return nil
	}

	// The exchange enters history only once accepted by the gate.
	history := append([]llm.Message(nil), c.history...)
	c.history = append(c.history, llm.Message{Role: llm.RoleUser, Content: text})

	in := tutor.Input{
		Doubt:    text,
		Grade:    string(p.Grade),
		Board:    p.Board,
		Language: string(p.Language),
		History:  history,
	}

	c.waiting = true
	solver := c.solver
	return tea.Batch(
		func() tea.Msg {
			ch, err := solver.SolveStream(context.Background(), in)
			return streamStartMsg{ch: ch, err: err}
		},
		thinkingTick(),
	)
}

func (c *ChatScreen) handleStreamStart(msg streamStartMsg) (screen.Screen, tea.Cmd) {
	c.waiting = false
	if msg.err != nil {
		c.messages = append(c.messages, message{fromUser: false, text: tutor.FriendlyMessage(msg.err)})
		// The failed turn stays out of history.
		c.history = c.history[:len(c.history)-1]
		return c, nil
	}

	c.streaming = true
	c.stream = msg.ch
	c.messages = append(c.messages, message{fromUser: false})
	return c, readChunk(msg.ch)
}

func (c *ChatScreen) handleChunk(msg chunkMsg) (screen.Screen, tea.Cmd) {
	last := len(c.messages) - 1

	if msg.err != nil {
		c.streaming = false
		c.messages[last].text = tutor.FriendlyMessage(msg.err)
		c.history = c.history[:len(c.history)-1]
		return c, nil
	}

	if msg.done {
		c.streaming = false
		c.history = append(c.history, llm.Message{Role: llm.RoleAssistant, Content: c.messages[last].text})
		return c, nil
	}

	c.messages[last].text += msg.text
	return c, readChunk(c.stream)
}

func readChunk(ch <-chan llm.Chunk) tea.Cmd {
	return func() tea.Msg {
		chunk, ok := <-ch
		if !ok {
			return chunkMsg{done: true}
		}
		return chunkMsg{text: chunk.Text, err: chunk.Err}
	}
}

func thinkingTick() tea.Cmd {
	return tea.Tick(300*time.Millisecond, func(t time.Time) tea.Msg {
		return thinkingTickMsg(t)
	})
}

func (c *ChatScreen) View(width, height int) string {
	var b strings.Builder

	bubbleWidth := min(width-8, 70)
	userStyle := lipgloss.NewStyle().
		Width(bubbleWidth).
		Foreground(theme.Text).
		Background(theme.BgCard).
		Padding(0, 1)
	tutorStyle := lipgloss.NewStyle().
		Width(bubbleWidth).
		Foreground(theme.Text).
		Padding(0, 1)
	nameStyle := lipgloss.NewStyle().Foreground(theme.TextDim).Bold(true)

	if len(c.messages) == 0 {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Italic(true).
			Render("Stuck on something? Ask away!"))
		b.WriteString("\n")
	}

	// Show only as many messages as fit above the input line.
	visible := c.messages
	maxMessages := max((height-4)/4, 2)
	if len(visible) > maxMessages {
		visible = visible[len(visible)-maxMessages:]
	}

	for _, m := range visible {
		b.WriteString("\n")
		if m.fromUser {
			b.WriteString("  " + nameStyle.Render("You"))
			b.WriteString("\n")
			b.WriteString("  " + userStyle.Render(m.text))
		} else {
			b.WriteString("  " + nameStyle.Render("Tutor"))
			b.WriteString("\n")
			text := m.text
			if text == "" && c.streaming {
				text = "…"
			}
			b.WriteString("  " + tutorStyle.Render(text))
		}
		b.WriteString("\n")
	}

	if c.waiting {
		dots := strings.Repeat(".", c.ticks%4)
		b.WriteString("\n  " + theme.Hint.Render("Tutor is thinking"+dots))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render("  " + strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n")
	b.WriteString("  " + c.input.View())

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
