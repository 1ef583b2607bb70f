package tutor

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/vidya/internal/llm"
	"github.com/abhisek/vidya/internal/progress"
)

func TestSolve_BuildsChapterScopedPrompt(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`A fraction is part of a whole.`)},
	)
	solver := NewSolver(mock)

	answer, err := solver.Solve(context.Background(), Input{
		Doubt:    "what is a fraction?",
		Grade:    "6",
		Board:    "Maharashtra State Board",
		Language: "en",
		Subject:  "Mathematics",
		Chapter:  "Fractions",
		ChapterStats: &progress.ChapterStats{
			TotalAttempts:  25,
			CorrectAnswers: 8,
			Status:         progress.StatusWeak,
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if answer != "A fraction is part of a whole." {
		t.Fatalf("unexpected answer: %q", answer)
	}

	system := mock.Calls[0].System
	for _, want := range []string{
		`CHAPTER "Fractions"`,
		"STUDENT STATUS: Weak",
		"extra patient",
		"ONLY the chapter",
		"Grade 6",
	} {
		if !strings.Contains(system, want) {
			t.Fatalf("system prompt missing %q:\n%s", want, system)
		}
	}
}

func TestSolve_CoachingFollowsStatus(t *testing.T) {
	tests := []struct {
		status progress.Status
		want   string
	}{
		{progress.StatusWeak, "extra patient"},
		{progress.StatusImproving, "Encourage them"},
		{progress.StatusStrong, "Congratulate them"},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			mock := llm.NewMockProvider(
				llm.MockResponse{Content: json.RawMessage(`ok`)},
			)
			solver := NewSolver(mock)

			_, err := solver.Solve(context.Background(), Input{
				Doubt:        "help",
				Grade:        "7",
				Subject:      "Science",
				Chapter:      "Motion",
				ChapterStats: &progress.ChapterStats{TotalAttempts: 30, CorrectAnswers: 20, Status: tt.status},
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !strings.Contains(mock.Calls[0].System, tt.want) {
				t.Fatalf("status %s: prompt missing %q", tt.status, tt.want)
			}
		})
	}
}

func TestSolve_SubjectScopeWithoutChapter(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`ok`)},
	)
	solver := NewSolver(mock)

	_, err := solver.Solve(context.Background(), Input{
		Doubt:   "explain photosynthesis",
		Grade:   "7",
		Subject: "Science",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	system := mock.Calls[0].System
	if !strings.Contains(system, `SUBJECT "Science" (Full Syllabus)`) {
		t.Fatalf("expected subject scope, got:\n%s", system)
	}
	if strings.Contains(system, "STRICT RULE") {
		t.Fatal("subject scope should not carry the chapter-only rule")
	}
}

func TestSolve_HistoryTruncatedToTen(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`ok`)},
	)
	solver := NewSolver(mock)

	history := make([]llm.Message, 14)
	for i := range history {
		role := llm.RoleUser
		if i%2 == 1 {
			role = llm.RoleAssistant
		}
		history[i] = llm.Message{Role: role, Content: strings.Repeat("m", i+1)}
	}

	_, err := solver.Solve(context.Background(), Input{Doubt: "next", Grade: "6", History: history})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	msgs := mock.Calls[0].Messages
	if len(msgs) != 11 { // 10 history + the doubt
		t.Fatalf("expected 11 messages, got %d", len(msgs))
	}
	if msgs[0].Content != history[4].Content {
		t.Fatal("expected the oldest four history messages to be dropped")
	}
	if msgs[10].Content != "next" {
		t.Fatalf("doubt should be the final message, got %q", msgs[10].Content)
	}
}

func TestSolveStream_DeliversChunks(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`first the numerator, then the denominator`)},
	)
	solver := NewSolver(mock)

	ch, err := solver.SolveStream(context.Background(), Input{Doubt: "how do I read 3/4?", Grade: "6"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var full string
	for chunk := range ch {
		if chunk.Err != nil {
			t.Fatalf("unexpected chunk error: %v", chunk.Err)
		}
		full += chunk.Text
	}
	if full != "first the numerator, then the denominator" {
		t.Fatalf("reassembled stream mismatch: %q", full)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Category
	}{
		{"rate limit", &llm.ErrRateLimit{}, CategoryRateLimited},
		{"quota", &llm.ErrQuotaExhausted{Err: errors.New("402")}, CategoryQuotaExhausted},
		{"unavailable", &llm.ErrProviderUnavailable{}, CategoryGeneric},
		{"plain", errors.New("boom"), CategoryGeneric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.err); got != tt.want {
				t.Fatalf("Classify = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFriendlyMessage_DistinctPerCategory(t *testing.T) {
	rate := FriendlyMessage(&llm.ErrRateLimit{})
	quota := FriendlyMessage(&llm.ErrQuotaExhausted{})
	generic := FriendlyMessage(errors.New("boom"))

	if rate == quota || quota == generic || rate == generic {
		t.Fatal("each error category needs its own message")
	}
}
