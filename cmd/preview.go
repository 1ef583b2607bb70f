package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/vidya/internal/llm"
	"github.com/abhisek/vidya/internal/quiz"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview LLM-generated quiz questions (no database)",
	Long: `Generate and interactively answer questions for a subject.

This is a stateless developer tool — no database, no progress tracking,
no XP. Useful for evaluating question quality per subject and difficulty.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().String("subject", "", "Subject to generate questions for (required)")
	previewCmd.Flags().String("topic", "General Practice", "Chapter or topic within the subject")
	previewCmd.Flags().Int("difficulty", 5, "Difficulty level 1-10")
	previewCmd.Flags().Int("count", 5, "Number of questions to generate")
	previewCmd.Flags().Int("grade", 6, "Grade level for the content")
	_ = previewCmd.MarkFlagRequired("subject")
}

func runPreview(cmd *cobra.Command, args []string) error {
	subject, _ := cmd.Flags().GetString("subject")
	topic, _ := cmd.Flags().GetString("topic")
	difficulty, _ := cmd.Flags().GetInt("difficulty")
	count, _ := cmd.Flags().GetInt("count")
	grade, _ := cmd.Flags().GetInt("grade")

	if difficulty < 1 || difficulty > 10 {
		return fmt.Errorf("difficulty must be between 1 and 10, got %d", difficulty)
	}

	// No EventRepo — logging skipped for the stateless tool.
	ctx := context.Background()
	provider, err := llm.NewProviderFromEnv(ctx, nil)
	if err != nil {
		return fmt.Errorf("LLM provider: %w", err)
	}

	gen := quiz.NewGenerator(provider)
	batch, err := gen.Generate(ctx, quiz.GenerateInput{
		Subject:    subject,
		Topic:      topic,
		Difficulty: difficulty,
		Count:      count,
		Grade:      fmt.Sprintf("%d", grade),
	})
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	fmt.Printf("Subject: %s — %s (grade %d, difficulty %d)\n",
		subject, topic, grade, batch.AdjustedDifficulty)
	fmt.Printf("Generated %d questions.\n\n", len(batch.Questions))

	scanner := bufio.NewScanner(os.Stdin)
	var correct int

	for i, q := range batch.Questions {
		fmt.Printf("── Question %d/%d ──\n", i+1, len(batch.Questions))
		fmt.Println(q.Text)
		for j, opt := range q.Options {
			fmt.Printf("  %d) %s\n", j+1, opt)
		}

		fmt.Print("\nYour answer (1-4): ")
		if !scanner.Scan() {
			fmt.Println("\n(input closed)")
			break
		}
		answer := strings.TrimSpace(scanner.Text())
		if answer == "" {
			fmt.Print("(skipped)\n\n")
			continue
		}

		if answer == fmt.Sprintf("%d", q.CorrectIndex+1) {
			correct++
			fmt.Println("✓ Correct!")
		} else {
			fmt.Printf("✗ Wrong. Answer: %s\n", q.Options[q.CorrectIndex])
		}
		if q.Explanation != "" {
			fmt.Printf("Explanation: %s\n", q.Explanation)
		}
		fmt.Println()
	}

	fmt.Printf("── Summary: %d/%d correct ──\n", correct, len(batch.Questions))
	return nil
}
