package quiz

import (
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"
)

// mathOperations are the arithmetic operators used by the procedural
// battery. Multiplication only appears above difficulty 3.
var mathOperations = []string{"+", "-", "×"}

// FallbackQuestions produces a batch of pre-authored questions for the
// given subject and difficulty, without any remote call. Math questions
// are generated procedurally; other subjects sample from a curated pool.
func FallbackQuestions(subject string, difficulty, count int) []Question {
	return fallbackQuestions(globalRand{}, subject, difficulty, count)
}

// source abstracts the random stream so tests can run deterministically.
type source interface {
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

func fallbackQuestions(rng source, subject string, difficulty, count int) []Question {
	if count <= 0 {
		return nil
	}
	if subject == "Mathematics" {
		return mathBattery(rng, difficulty, count)
	}
	return curatedBattery(rng, subject, difficulty, count)
}

// mathBattery generates arithmetic questions with three near-miss
// distractors each.
func mathBattery(rng source, difficulty, count int) []Question {
	questions := make([]Question, 0, count)

	opRange := 2
	if difficulty > 3 {
		opRange = 3
	}
	maxNum := 10 + difficulty*5
	if maxNum > 50 {
		maxNum = 50
	}

	for range count {
		op := mathOperations[rng.IntN(opRange)]

		var a, b, answer int
		switch op {
		case "+":
			a = rng.IntN(maxNum) + 1
			b = rng.IntN(maxNum) + 1
			answer = a + b
		case "-":
			a = rng.IntN(maxNum) + 10
			bound := min(a, maxNum)
			b = rng.IntN(bound) + 1
			answer = a - b
		case "×":
			a = rng.IntN(12) + 1
			b = rng.IntN(12) + 1
			answer = a * b
		}

		options, correct := buildOptions(rng, answer)

		questions = append(questions, Question{
			ID:           uuid.NewString(),
			Text:         fmt.Sprintf("%d %s %d = ?", a, op, b),
			Options:      options,
			CorrectIndex: correct,
			Explanation:  fmt.Sprintf("%d %s %d equals %d", a, op, b, answer),
			Difficulty:   difficulty,
		})
	}

	return questions
}

// buildOptions produces the answer plus three distinct positive
// near-miss distractors, shuffled, returning the correct index.
func buildOptions(rng source, answer int) ([]string, int) {
	wrong := make(map[int]struct{}, 3)
	for len(wrong) < 3 {
		offset := rng.IntN(10) - 5
		if offset == 0 {
			offset = 1
		}
		candidate := answer + offset
		if candidate != answer && candidate > 0 {
			wrong[candidate] = struct{}{}
		}
	}

	values := make([]int, 0, 4)
	values = append(values, answer)
	for w := range wrong {
		values = append(values, w)
	}
	shuffleInts(rng, values)

	options := make([]string, len(values))
	correct := 0
	for i, v := range values {
		options[i] = fmt.Sprintf("%d", v)
		if v == answer {
			correct = i
		}
	}
	return options, correct
}

// curatedBattery samples without replacement from the fixed pool for
// the subject, shuffling each question's option order.
func curatedBattery(rng source, subject string, difficulty, count int) []Question {
	pool := curatedPool(subject)
	if count > len(pool) {
		count = len(pool)
	}

	picks := make([]int, len(pool))
	for i := range picks {
		picks[i] = i
	}
	shuffleInts(rng, picks)

	questions := make([]Question, 0, count)
	for _, idx := range picks[:count] {
		entry := pool[idx]

		order := make([]int, len(entry.options))
		for i := range order {
			order[i] = i
		}
		shuffleInts(rng, order)

		options := make([]string, len(order))
		correct := 0
		for i, o := range order {
			options[i] = entry.options[o]
			if o == entry.correct {
				correct = i
			}
		}

		questions = append(questions, Question{
			ID:           uuid.NewString(),
			Text:         entry.text,
			Options:      options,
			CorrectIndex: correct,
			Explanation:  entry.explanation,
			Difficulty:   difficulty,
		})
	}

	return questions
}

func shuffleInts(rng source, s []int) {
	for i := len(s) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}

type curatedEntry struct {
	text        string
	options     []string
	correct     int
	explanation string
}

// curatedPool returns the pre-authored question pool for a subject.
// Subjects without a dedicated pool fall back to the science pool.
func curatedPool(subject string) []curatedEntry {
	if pool, ok := curatedPools[subject]; ok {
		return pool
	}
	return curatedPools["Science"]
}

var curatedPools = map[string][]curatedEntry{
	"Science": {
		{
			text:        "What is the chemical symbol for water?",
			options:     []string{"H2O", "CO2", "NaCl", "O2"},
			correct:     0,
			explanation: "Water is made of 2 hydrogen atoms and 1 oxygen atom: H2O",
		},
		{
			text:        "What planet is known as the Red Planet?",
			options:     []string{"Venus", "Mars", "Jupiter", "Saturn"},
			correct:     1,
			explanation: "Mars appears red due to iron oxide (rust) on its surface",
		},
		{
			text:        "What is the powerhouse of the cell?",
			options:     []string{"Nucleus", "Mitochondria", "Ribosome", "Cytoplasm"},
			correct:     1,
			explanation: "Mitochondria produce energy (ATP) for the cell",
		},
		{
			text:        "What force keeps planets in orbit around the Sun?",
			options:     []string{"Magnetism", "Friction", "Gravity", "Electricity"},
			correct:     2,
			explanation: "Gravity is the force of attraction between masses",
		},
		{
			text:        "What gas do plants absorb from the air?",
			options:     []string{"Oxygen", "Nitrogen", "Carbon Dioxide", "Hydrogen"},
			correct:     2,
			explanation: "Plants use CO2 for photosynthesis to make food",
		},
	},
	"English": {
		{
			text:        "Which word is a noun?",
			options:     []string{"Quickly", "Happiness", "Run", "Bright"},
			correct:     1,
			explanation: "Happiness names a feeling, so it is a noun",
		},
		{
			text:        "What is the plural of 'child'?",
			options:     []string{"Childs", "Childes", "Children", "Childrens"},
			correct:     2,
			explanation: "Child has the irregular plural 'children'",
		},
		{
			text:        "Which sentence uses the correct verb form?",
			options:     []string{"She go to school", "She goes to school", "She going school", "She gone to school"},
			correct:     1,
			explanation: "A singular subject takes 'goes' in the present tense",
		},
		{
			text:        "What is the opposite of 'ancient'?",
			options:     []string{"Old", "Modern", "Antique", "Aged"},
			correct:     1,
			explanation: "Modern means belonging to the present time",
		},
		{
			text:        "Which of these is a synonym for 'happy'?",
			options:     []string{"Gloomy", "Joyful", "Angry", "Tired"},
			correct:     1,
			explanation: "Joyful means full of happiness",
		},
	},
}
