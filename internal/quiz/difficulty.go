package quiz

const (
	// MinDifficulty and MaxDifficulty bound the 1-10 difficulty scale.
	MinDifficulty = 1
	MaxDifficulty = 10

	// speedBonusSeconds is the response-time threshold below which a
	// fast, accurate student earns an extra difficulty step.
	speedBonusSeconds = 5.0
)

// NextDifficulty computes the adjusted difficulty for the next question
// batch from the requested level and the student's recent performance.
//
// Accuracy above 0.8 raises the level by one, below 0.5 lowers it by
// one; both comparisons are strict, so exactly 0.8 or 0.5 leaves the
// level unchanged. Answering fast (under 5s average) with accuracy
// above 0.7 adds an independent step on top. The result is clamped to
// [1, 10].
func NextDifficulty(requested int, perf Performance) int {
	accuracy := perf.Accuracy()

	adjusted := requested
	if accuracy > 0.8 {
		adjusted++
	} else if accuracy < 0.5 {
		adjusted--
	}

	if accuracy > 0.7 && perf.AverageResponseTime < speedBonusSeconds {
		adjusted++
	}

	return clampDifficulty(adjusted)
}

func clampDifficulty(d int) int {
	if d < MinDifficulty {
		return MinDifficulty
	}
	if d > MaxDifficulty {
		return MaxDifficulty
	}
	return d
}
