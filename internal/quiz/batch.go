package quiz

import (
	"context"
	"sync"
)

// BatchService hands out question batches with zero perceived latency.
// Every round starts on a locally generated fallback battery; a remote
// generation runs concurrently and replaces the battery only if it
// lands before the student has moved past the first question. Remote
// failures are swallowed; the fallback simply continues.
type BatchService struct {
	gen Generator
}

// NewBatchService creates a BatchService. gen may be nil, in which case
// rounds run purely on the local fallback.
func NewBatchService(gen Generator) *BatchService {
	return &BatchService{gen: gen}
}

// Round is one quiz round's question sequence. Safe for use from a
// single consumer; the remote upgrade happens on a background goroutine
// guarded by the round's mutex.
type Round struct {
	mu         sync.Mutex
	questions  []Question
	index      int
	difficulty int
	upgraded   bool
}

// Start begins a round: the fallback battery is available immediately
// and a remote generation is kicked off in the background.
func (s *BatchService) Start(ctx context.Context, input GenerateInput) *Round {
	adjusted := NextDifficulty(input.Difficulty, input.Performance)

	r := &Round{
		questions:  FallbackQuestions(input.Subject, adjusted, input.Count),
		difficulty: adjusted,
	}

	if s.gen != nil {
		go func() {
			batch, err := s.gen.Generate(ctx, input)
			if err != nil {
				return
			}
			r.mu.Lock()
			defer r.mu.Unlock()
			// Only upgrade while the student is still on question 0.
			if r.index > 0 {
				return
			}
			r.questions = batch.Questions
			r.difficulty = batch.AdjustedDifficulty
			r.upgraded = true
		}()
	}

	return r
}

// Current returns the question at the round's cursor, or false when the
// round is exhausted.
func (r *Round) Current() (Question, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.index >= len(r.questions) {
		return Question{}, false
	}
	return r.questions[r.index], true
}

// Advance moves the cursor past the current question. Once the cursor
// leaves question 0 the round is pinned; a late remote result is
// discarded.
func (r *Round) Advance() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.index < len(r.questions) {
		r.index++
	}
}

// Len reports the number of questions in the round.
func (r *Round) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.questions)
}

// Difficulty reports the adapted difficulty the round is running at.
func (r *Round) Difficulty() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.difficulty
}

// Upgraded reports whether the remote batch replaced the fallback.
func (r *Round) Upgraded() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.upgraded
}
