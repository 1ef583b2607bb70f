package quiz

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are an educational quiz generator for a game-based learning app targeting school students in India. Always respond with valid JSON only.`

// gradeDescriptions gives the LLM syllabus context per grade.
var gradeDescriptions = map[string]string{
	"6":  "Class 6 (Ages 11-12): Maharashtra Board (SSC). Algebra basics, ratio/proportion, cell biology, physics intro",
	"7":  "Class 7 (Ages 12-13): Maharashtra Board (SSC). Linear equations, geometry proofs, chemistry basics, motion",
	"8":  "Class 8 (Ages 13-14): Maharashtra Board (SSC). Quadratic equations, trigonometry basics, atoms, force/pressure",
	"9":  "Class 9 (Ages 14-15): Maharashtra Board (SSC). Science part 1 & 2, Geometry, Algebra, History/Civics/Geography",
	"10": "Class 10 (Ages 15-16): Maharashtra Board (SSC). Board Exam preparation, Advanced Algebra/Geometry, Carbon compounds, Electric current",
}

var languageInstructions = map[string]string{
	"en": "Generate all content in English.",
	"hi": "Generate all content in Hindi (Devanagari script). Questions, options, and explanations must be in Hindi.",
	"mr": "Generate all content in Marathi (Devanagari script). Questions, options, and explanations must be in Marathi.",
}

// buildUserMessage constructs the generation prompt from the input and
// the already-adjusted difficulty.
func buildUserMessage(input GenerateInput, adjusted int) string {
	accuracy := input.Performance.Accuracy()

	var b strings.Builder

	lang := languageInstructions[input.Language]
	if lang == "" {
		lang = languageInstructions["en"]
	}
	b.WriteString(lang)
	b.WriteString("\n\nStudent Context:\n")

	if input.Grade != "" {
		desc := gradeDescriptions[input.Grade]
		if desc == "" {
			desc = "Class " + input.Grade
		}
		fmt.Fprintf(&b, "- Grade Level: %s\n", desc)
	}
	if input.Board == "maharashtra_state_board" {
		b.WriteString("- Curriculum: Follow Maharashtra State Board (SSC) syllabus and curriculum standards.\n")
	}

	fmt.Fprintf(&b, "\nSubject: %s\n", input.Subject)
	if input.Topic != "" {
		fmt.Fprintf(&b, "Topic: %s\n", input.Topic)
	}
	fmt.Fprintf(&b, "Difficulty Level: %d/10\n", adjusted)
	fmt.Fprintf(&b, "Number of Questions: %d\n", input.Count)

	b.WriteString("\nStudent Performance Context:\n")
	fmt.Fprintf(&b, "- Recent Accuracy: %.0f%%\n", accuracy*100)
	fmt.Fprintf(&b, "- Average Response Time: %.1fs\n", input.Performance.AverageResponseTime)
	if accuracy > 0.8 {
		b.WriteString("- Student is performing well, provide slightly harder questions\n")
	}
	if accuracy < 0.5 {
		b.WriteString("- Student is struggling, provide supportive questions with clear concepts\n")
	}

	fmt.Fprintf(&b, `
Generate %d multiple-choice questions following these rules:
1. Each question should have exactly 4 options
2. Questions MUST be appropriate for the student's grade level
3. Make questions engaging and relatable to students
4. Include a brief explanation for the correct answer
5. For Mathematics: include arithmetic, algebra, geometry based on grade and difficulty
6. For Science: include physics, chemistry, biology concepts appropriate for the grade`, input.Count)

	return b.String()
}
