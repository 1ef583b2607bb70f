package quiz

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/abhisek/vidya/internal/llm"
)

// Generator produces question batches at an adapted difficulty.
type Generator interface {
	// Generate requests a question batch for the given input. The
	// difficulty in the result is adapted from the input's performance
	// window before the questions are authored.
	Generate(ctx context.Context, input GenerateInput) (*Batch, error)
}

// LLMGenerator implements Generator using an LLM provider.
type LLMGenerator struct {
	provider llm.Provider
}

// NewGenerator creates an LLM-backed Generator.
func NewGenerator(provider llm.Provider) *LLMGenerator {
	return &LLMGenerator{provider: provider}
}

// batchOutput is the raw LLM response before ID assignment.
type batchOutput struct {
	Questions []struct {
		Question     string   `json:"question"`
		Options      []string `json:"options"`
		CorrectIndex int      `json:"correctIndex"`
		Explanation  string   `json:"explanation"`
		Difficulty   int      `json:"difficulty"`
	} `json:"questions"`
}

func (g *LLMGenerator) Generate(ctx context.Context, input GenerateInput) (*Batch, error) {
	ctx = llm.WithPurpose(ctx, "question-gen")

	adjusted := NextDifficulty(input.Difficulty, input.Performance)

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(input, adjusted)},
		},
		Schema:      BatchSchema,
		MaxTokens:   2048,
		Temperature: 0.7,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("question generation failed: %w", err)
	}

	var raw batchOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("parse question batch: %w", err)
	}
	if len(raw.Questions) == 0 {
		return nil, fmt.Errorf("question batch is empty")
	}

	questions := make([]Question, 0, len(raw.Questions))
	for _, q := range raw.Questions {
		if len(q.Options) != 4 || q.CorrectIndex < 0 || q.CorrectIndex > 3 {
			return nil, fmt.Errorf("malformed question in batch: %q", q.Question)
		}
		difficulty := q.Difficulty
		if difficulty == 0 {
			difficulty = adjusted
		}
		questions = append(questions, Question{
			ID:           uuid.NewString(),
			Text:         q.Question,
			Options:      q.Options,
			CorrectIndex: q.CorrectIndex,
			Explanation:  q.Explanation,
			Difficulty:   difficulty,
		})
	}

	return &Batch{
		Questions:          questions,
		AdjustedDifficulty: adjusted,
		Analysis: Analysis{
			Accuracy:         input.Performance.Accuracy() * 100,
			DifficultyChange: adjusted - input.Difficulty,
		},
	}, nil
}
