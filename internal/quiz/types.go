package quiz

// Question is a single multiple-choice quiz question ready for display.
type Question struct {
	// ID uniquely identifies the question within a session.
	ID string `json:"id"`

	// Text is the question prompt shown to the student.
	Text string `json:"question"`

	// Options holds exactly 4 answer choices.
	Options []string `json:"options"`

	// CorrectIndex is the index into Options of the correct answer.
	CorrectIndex int `json:"correctIndex"`

	// Explanation is a brief justification shown after answering.
	Explanation string `json:"explanation"`

	// Difficulty is the 1-10 level this question was produced at.
	Difficulty int `json:"difficulty"`
}

// Performance is a rolling window of recent answer outcomes used to
// adapt difficulty.
type Performance struct {
	CorrectAnswers int `json:"correctAnswers"`
	TotalAnswers   int `json:"totalAnswers"`

	// AverageResponseTime is the mean seconds per answer in the window.
	AverageResponseTime float64 `json:"averageResponseTime"`
}

// Accuracy returns the fraction of correct answers, or 0.5 as a neutral
// prior when the window is empty.
func (p Performance) Accuracy() float64 {
	if p.TotalAnswers <= 0 {
		return 0.5
	}
	return float64(p.CorrectAnswers) / float64(p.TotalAnswers)
}

// GenerateInput holds all context needed to request a question batch.
type GenerateInput struct {
	Subject     string
	Topic       string
	Difficulty  int
	Performance Performance
	Count       int

	// Grade, Board and Language localize the generated content.
	// Optional; empty values are omitted from the prompt.
	Grade    string
	Board    string
	Language string
}

// Batch is an ordered set of generated questions plus the difficulty
// analysis that produced them.
type Batch struct {
	Questions          []Question
	AdjustedDifficulty int
	Analysis           Analysis
}

// Analysis summarizes how performance shifted the difficulty.
type Analysis struct {
	// Accuracy is the window accuracy as a percentage (0-100).
	Accuracy float64

	// DifficultyChange is adjusted minus requested, in levels.
	DifficultyChange int
}
