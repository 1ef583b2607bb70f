package chat

import (
	"path/filepath"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/vidya/internal/llm"
	"github.com/abhisek/vidya/internal/profile"
	"github.com/abhisek/vidya/internal/progress"
	"github.com/abhisek/vidya/internal/store"
	"github.com/abhisek/vidya/internal/tutor"
)

func newTestChat(t *testing.T) (*ChatScreen, *llm.MockProvider) {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "vidya.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	profiles := profile.NewService(st.KV())
	profiles.SetGrade("7")
	prog := progress.NewService(st.KV())

	mock := llm.NewMockProvider()
	solver := tutor.NewSolver(mock)

	return New(solver, profiles, prog), mock
}

func send(c *ChatScreen, text string) tea.Cmd {
	c.input.Model.SetValue(text)
	_, cmd := c.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	return cmd
}

// chunks builds a closed stream delivering the given texts in order.
func chunks(texts ...string) <-chan llm.Chunk {
	ch := make(chan llm.Chunk, len(texts))
	for _, t := range texts {
		ch <- llm.Chunk{Text: t}
	}
	close(ch)
	return ch
}

func lastMessage(c *ChatScreen) message {
	return c.messages[len(c.messages)-1]
}

func TestGreetingShortCircuits(t *testing.T) {
	c, mock := newTestChat(t)

	cmd := send(c, "hello")
	if cmd != nil {
		t.Error("greeting should not start a stream")
	}
	if len(c.messages) != 2 {
		t.Fatalf("expected user + canned reply, got %d messages", len(c.messages))
	}
	if !strings.Contains(lastMessage(c).text, "learn today") {
		t.Errorf("expected canned greeting reply, got %q", lastMessage(c).text)
	}
	if mock.CallCount() != 0 {
		t.Errorf("greeting must not reach the provider, got %d calls", mock.CallCount())
	}
	if len(c.history) != 0 {
		t.Error("greetings must stay out of history")
	}
}

func TestOffTopicRejectedInline(t *testing.T) {
	c, mock := newTestChat(t)

	cmd := send(c, "tell me the latest ipl match score")
	if cmd != nil {
		t.Error("rejected doubt should not start a stream")
	}
	if lastMessage(c).fromUser {
		t.Fatal("expected a tutor-side rejection message")
	}
	if lastMessage(c).text == "" {
		t.Error("rejection message should not be empty")
	}
	if mock.CallCount() != 0 {
		t.Errorf("rejected doubt must not reach the provider, got %d calls", mock.CallCount())
	}
	if len(c.history) != 0 {
		t.Error("rejected doubts must stay out of history")
	}
}

func TestEmptyInputIgnored(t *testing.T) {
	c, _ := newTestChat(t)

	cmd := send(c, "   ")
	if cmd != nil {
		t.Error("blank input should do nothing")
	}
	if len(c.messages) != 0 {
		t.Errorf("expected no messages, got %d", len(c.messages))
	}
}

func TestValidDoubtEntersWaitingState(t *testing.T) {
	c, _ := newTestChat(t)

	cmd := send(c, "What is photosynthesis?")
	if cmd == nil {
		t.Fatal("valid doubt should start the stream")
	}
	if !c.waiting {
		t.Error("screen should be waiting for the stream to open")
	}
	if len(c.history) != 1 || c.history[0].Role != llm.RoleUser {
		t.Fatalf("expected the doubt in history, got %+v", c.history)
	}
}

func TestStreamedReplyAssembles(t *testing.T) {
	c, _ := newTestChat(t)
	send(c, "What is photosynthesis?")

	_, cmd := c.Update(streamStartMsg{ch: chunks("Plants ", "make ", "food.")})
	if c.waiting {
		t.Error("waiting should end once the stream opens")
	}
	if !c.streaming {
		t.Error("screen should be streaming")
	}

	for cmd != nil {
		msg := cmd()
		_, cmd = c.Update(msg)
	}

	if c.streaming {
		t.Error("streaming should end when the channel closes")
	}
	if got := lastMessage(c).text; got != "Plants make food." {
		t.Errorf("assembled reply = %q", got)
	}
	if len(c.history) != 2 || c.history[1].Role != llm.RoleAssistant {
		t.Fatalf("expected user + assistant history, got %+v", c.history)
	}
	if c.history[1].Content != "Plants make food." {
		t.Errorf("history content = %q", c.history[1].Content)
	}
}

func TestStreamStartErrorShowsFriendlyMessage(t *testing.T) {
	c, _ := newTestChat(t)
	send(c, "What is photosynthesis?")

	rateErr := &llm.ErrRateLimit{}
	c.Update(streamStartMsg{err: rateErr})

	if lastMessage(c).fromUser {
		t.Fatal("expected a tutor-side error message")
	}
	if lastMessage(c).text != tutor.FriendlyMessage(rateErr) {
		t.Errorf("expected friendly rate-limit message, got %q", lastMessage(c).text)
	}
	if len(c.history) != 0 {
		t.Error("failed turn should be rolled back from history")
	}
}

func TestMidStreamErrorReplacesPartialReply(t *testing.T) {
	c, _ := newTestChat(t)
	send(c, "What is photosynthesis?")

	c.Update(streamStartMsg{ch: chunks("partial")})
	c.Update(chunkMsg{text: "partial"})
	c.Update(chunkMsg{err: &llm.ErrProviderUnavailable{}})

	if c.streaming {
		t.Error("streaming should stop on error")
	}
	if !strings.Contains(lastMessage(c).text, tutor.FriendlyMessage(&llm.ErrProviderUnavailable{})) {
		t.Errorf("expected friendly error, got %q", lastMessage(c).text)
	}
	if len(c.history) != 0 {
		t.Error("failed turn should be rolled back from history")
	}
}
