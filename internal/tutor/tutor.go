package tutor

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhisek/vidya/internal/llm"
	"github.com/abhisek/vidya/internal/progress"
)

// maxHistory caps how many prior chat messages travel with each doubt.
const maxHistory = 10

// Input carries one doubt plus the student context that shapes the
// tutor's answer.
type Input struct {
	// Doubt is the free-text question. The subject gate has already
	// accepted it before it reaches the tutor.
	Doubt string

	Grade    string
	Board    string
	Language string

	// Subject and Chapter scope the tutoring session. Chapter implies
	// Subject; both may be empty for general help.
	Subject string
	Chapter string

	// ChapterStats, when present, lets the tutor adapt its coaching to
	// the student's mastery of the chapter.
	ChapterStats *progress.ChapterStats

	// CurrentQuestion is the quiz question on screen, if any.
	CurrentQuestion string

	// History is the prior conversation, oldest first. Only the last
	// ten messages are forwarded.
	History []llm.Message
}

// Solver answers student doubts through the LLM provider.
type Solver struct {
	provider llm.Provider
}

// NewSolver creates a Solver on the given provider.
func NewSolver(provider llm.Provider) *Solver {
	return &Solver{provider: provider}
}

// Solve answers a doubt in one shot.
func (s *Solver) Solve(ctx context.Context, in Input) (string, error) {
	ctx = llm.WithPurpose(ctx, "doubt-solver")

	resp, err := s.provider.Generate(ctx, s.buildRequest(in))
	if err != nil {
		return "", err
	}
	return string(resp.Content), nil
}

// SolveStream answers a doubt as an incremental text stream. Falls back
// to a single-chunk stream when the provider cannot stream.
func (s *Solver) SolveStream(ctx context.Context, in Input) (<-chan llm.Chunk, error) {
	ctx = llm.WithPurpose(ctx, "doubt-solver")

	if sp, ok := s.provider.(llm.StreamProvider); ok {
		return sp.Stream(ctx, s.buildRequest(in))
	}

	resp, err := s.provider.Generate(ctx, s.buildRequest(in))
	if err != nil {
		return nil, err
	}
	ch := make(chan llm.Chunk, 1)
	ch <- llm.Chunk{Text: string(resp.Content)}
	close(ch)
	return ch, nil
}

func (s *Solver) buildRequest(in Input) llm.Request {
	history := in.History
	if len(history) > maxHistory {
		history = history[len(history)-maxHistory:]
	}

	messages := make([]llm.Message, 0, len(history)+1)
	messages = append(messages, history...)
	messages = append(messages, llm.Message{Role: llm.RoleUser, Content: in.Doubt})

	return llm.Request{
		System:      buildSystemPrompt(in),
		Messages:    messages,
		MaxTokens:   1024,
		Temperature: 0.7,
	}
}

// buildSystemPrompt assembles the tutor persona, the chapter or subject
// scope, and mastery-aware coaching guidance.
func buildSystemPrompt(in Input) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are a friendly and expert AI Tutor for a Grade %s student studying under the %s board. Language: %s.\n",
		in.Grade, in.Board, in.Language)

	switch {
	case in.Chapter != "":
		fmt.Fprintf(&b, "\nCONTEXT: CHAPTER %q (%s)\n", in.Chapter, in.Subject)
		if in.ChapterStats != nil {
			st := in.ChapterStats
			fmt.Fprintf(&b, "STUDENT STATUS: %s (Attempts: %d, Correct: %d)\n",
				st.Status, st.TotalAttempts, st.CorrectAnswers)
			switch st.Status {
			case progress.StatusWeak:
				b.WriteString("COACHING: The student is struggling with this chapter. Be extra patient, break down concepts into very small steps, and provide easier examples.\n")
			case progress.StatusImproving:
				b.WriteString("COACHING: The student is improving. Encourage them and slowly introduce slightly harder concepts.\n")
			case progress.StatusStrong:
				b.WriteString("COACHING: The student has mastered this chapter! Congratulate them and feel free to discuss advanced applications or suggest moving to the next chapter.\n")
			}
		}
		fmt.Fprintf(&b, "STRICT RULE: You are currently teaching ONLY the chapter %q.\n", in.Chapter)
		b.WriteString("- Do NOT explain concepts from other chapters or advanced topics not in this chapter.\n")
		b.WriteString("- If the student asks a question that belongs to a different chapter, politely DECLINE to answer directly.\n")
		b.WriteString("- Instead, explain that the concept belongs to another chapter and ask if they would like to switch contexts.\n")
		fmt.Fprintf(&b, "- Use specific terminology and examples from the %s syllabus for %q.\n", in.Board, in.Chapter)
		fmt.Fprintf(&b, "- Focus on step-by-step explanations suitable for Grade %s.\n", in.Grade)

	case in.Subject != "":
		fmt.Fprintf(&b, "\nCONTEXT: SUBJECT %q (Full Syllabus)\n", in.Subject)
		fmt.Fprintf(&b, "- You may answer questions from ANY chapter in the %s syllabus for Grade %s.\n", in.Subject, in.Grade)
		b.WriteString("- Keep explanations simple, exam-focused, and age-appropriate.\n")
		fmt.Fprintf(&b, "- If a concept is too advanced (e.g., from Class 11/12), briefly mention it's for higher classes and stick to the Grade %s level explanation.\n", in.Grade)

	default:
		fmt.Fprintf(&b, "\nCONTEXT: General Learning (Grade %s)\n", in.Grade)
		b.WriteString("- Help the student with their studies across subjects.\n")
	}

	if in.CurrentQuestion != "" {
		fmt.Fprintf(&b, "\nCURRENT ACTIVITY: The student is looking at this question: %q\n", in.CurrentQuestion)
	}

	fmt.Fprintf(&b, `
GENERAL RULES:
1. Explain concepts in SIMPLE language appropriate for Grade %s
2. Use REAL-WORLD EXAMPLES and STORIES to make concepts memorable
3. Keep explanations concise but thorough
4. Use bullet points for key concepts
5. Provide 1-2 practice examples when relevant or asked
6. Be encouraging, supportive, and never discourage the student
7. Do NOT hallucinate syllabus content. If unsure, ask clarifying questions.

Format your responses with:
- **Bold** for important terms
- Bullet points for lists
- Clear paragraph breaks
- Simple language suitable for the student's grade level

Keep responses under 400 words unless the topic requires more detail.`, in.Grade)

	return b.String()
}
