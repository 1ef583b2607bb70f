package quiz

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

// stubGenerator lets tests control the remote generation outcome and timing.
type stubGenerator struct {
	mu      sync.Mutex
	batch   *Batch
	err     error
	release chan struct{} // when non-nil, Generate blocks until closed
	calls   int
}

func (s *stubGenerator) Generate(ctx context.Context, input GenerateInput) (*Batch, error) {
	s.mu.Lock()
	s.calls++
	release := s.release
	s.mu.Unlock()

	if release != nil {
		select {
		case <-release:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if s.err != nil {
		return nil, s.err
	}
	return s.batch, nil
}

func remoteBatch() *Batch {
	return &Batch{
		Questions: []Question{
			{ID: "r1", Text: "remote q1", Options: []string{"a", "b", "c", "d"}, CorrectIndex: 0, Difficulty: 6},
			{ID: "r2", Text: "remote q2", Options: []string{"a", "b", "c", "d"}, CorrectIndex: 1, Difficulty: 6},
		},
		AdjustedDifficulty: 6,
	}
}

func waitUpgraded(t *testing.T, r *Round) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if r.Upgraded() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("round never upgraded")
}

func TestBatch_FallbackAvailableImmediately(t *testing.T) {
	gen := &stubGenerator{release: make(chan struct{})} // remote never finishes
	defer close(gen.release)

	svc := NewBatchService(gen)
	r := svc.Start(context.Background(), GenerateInput{Subject: "Mathematics", Difficulty: 5, Count: 5})

	if r.Len() != 5 {
		t.Fatalf("expected 5 fallback questions, got %d", r.Len())
	}
	if _, ok := r.Current(); !ok {
		t.Fatal("expected a current question without waiting")
	}
	if r.Upgraded() {
		t.Fatal("round should not be upgraded while remote is pending")
	}
}

func TestBatch_UpgradeAppliedBeforeFirstAdvance(t *testing.T) {
	gen := &stubGenerator{batch: remoteBatch()}
	svc := NewBatchService(gen)

	r := svc.Start(context.Background(), GenerateInput{Subject: "Mathematics", Difficulty: 5, Count: 5})
	waitUpgraded(t, r)

	q, ok := r.Current()
	if !ok {
		t.Fatal("expected a current question")
	}
	if q.Text != "remote q1" {
		t.Fatalf("expected remote question after upgrade, got %q", q.Text)
	}
	if r.Difficulty() != 6 {
		t.Fatalf("expected upgraded difficulty 6, got %d", r.Difficulty())
	}
}

func TestBatch_LateUpgradeDiscardedAfterAdvance(t *testing.T) {
	gen := &stubGenerator{batch: remoteBatch(), release: make(chan struct{})}
	svc := NewBatchService(gen)

	r := svc.Start(context.Background(), GenerateInput{Subject: "Mathematics", Difficulty: 5, Count: 5})
	first, _ := r.Current()
	r.Advance() // student moves on; the round is now pinned

	close(gen.release) // remote finally lands
	time.Sleep(20 * time.Millisecond)

	if r.Upgraded() {
		t.Fatal("late remote result should be discarded")
	}
	q, ok := r.Current()
	if !ok {
		t.Fatal("expected a current question")
	}
	if q.Text == "remote q1" || q.Text == first.Text {
		// The cursor advanced past the first fallback question and the
		// remote batch must not have replaced the sequence.
		if q.Text == "remote q1" {
			t.Fatalf("remote question appeared after advance: %q", q.Text)
		}
	}
}

func TestBatch_RemoteFailureSwallowed(t *testing.T) {
	gen := &stubGenerator{err: errors.New("network down")}
	svc := NewBatchService(gen)

	r := svc.Start(context.Background(), GenerateInput{Subject: "Science", Difficulty: 3, Count: 3})
	time.Sleep(20 * time.Millisecond)

	if r.Upgraded() {
		t.Fatal("failed remote must not upgrade")
	}
	if r.Len() != 3 {
		t.Fatalf("fallback battery should continue, got %d questions", r.Len())
	}
}

func TestBatch_NilGeneratorRunsLocalOnly(t *testing.T) {
	svc := NewBatchService(nil)
	r := svc.Start(context.Background(), GenerateInput{Subject: "Science", Difficulty: 2, Count: 4})

	if r.Len() != 4 {
		t.Fatalf("expected 4 questions, got %d", r.Len())
	}
	if r.Upgraded() {
		t.Fatal("local-only round cannot be upgraded")
	}
}

func TestBatch_AdvanceExhaustsRound(t *testing.T) {
	svc := NewBatchService(nil)
	r := svc.Start(context.Background(), GenerateInput{Subject: "Science", Difficulty: 2, Count: 2})

	r.Advance()
	r.Advance()
	if _, ok := r.Current(); ok {
		t.Fatal("expected exhausted round")
	}
	r.Advance() // past the end is a no-op
	if _, ok := r.Current(); ok {
		t.Fatal("expected round to stay exhausted")
	}
}
