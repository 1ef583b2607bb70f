package mistakes

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/vidya/internal/store"
)

// Mistake is one question the student got wrong, kept until they revisit
// it and mark it resolved.
type Mistake struct {
	ID            string    `json:"id"`
	Question      string    `json:"question"`
	UserAnswer    string    `json:"userAnswer"`
	CorrectAnswer string    `json:"correctAnswer"`
	Subject       string    `json:"subject"`
	Topic         string    `json:"topic,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
	Attempts      int       `json:"attempts"`
}

// CaptureInput is the data recorded when an answer is missed.
type CaptureInput struct {
	Question      string
	UserAnswer    string
	CorrectAnswer string
	Subject       string
	Topic         string
}

// Ledger stores open mistakes, most recent miss first. Entries are
// deduplicated by question text: missing the same question again bumps its
// attempt counter instead of creating a duplicate. Resolution is a hard
// delete — there is no retained "resolved" state.
type Ledger struct {
	mu       sync.Mutex
	kv       store.KVRepo
	mistakes []Mistake
	now      func() time.Time
}

// NewLedger loads the ledger from storage. Absent or unreadable data
// degrades to an empty ledger.
func NewLedger(kv store.KVRepo) *Ledger {
	l := &Ledger{kv: kv, now: time.Now}

	blob, found, err := kv.Load(context.Background(), store.KeyMistakes)
	if err != nil || !found {
		return l
	}
	if err := json.Unmarshal(blob, &l.mistakes); err != nil {
		fmt.Fprintf(os.Stderr, "warning: unreadable mistake ledger, starting fresh: %v\n", err)
		l.mistakes = nil
	}
	return l
}

// Capture records a miss. If the same question text is already open, its
// entry is updated (attempts+1, fresh timestamp, latest wrong answer) and
// moved to the head; otherwise a new entry is prepended.
func (l *Ledger) Capture(in CaptureInput) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.mistakes {
		if l.mistakes[i].Question != in.Question {
			continue
		}
		m := l.mistakes[i]
		m.Attempts++
		m.Timestamp = l.now()
		m.UserAnswer = in.UserAnswer
		// Move to the head to keep most-recent-miss-first ordering.
		l.mistakes = append(l.mistakes[:i], l.mistakes[i+1:]...)
		l.mistakes = append([]Mistake{m}, l.mistakes...)
		l.persistLocked()
		return
	}

	m := Mistake{
		ID:            uuid.New().String(),
		Question:      in.Question,
		UserAnswer:    in.UserAnswer,
		CorrectAnswer: in.CorrectAnswer,
		Subject:       in.Subject,
		Topic:         in.Topic,
		Timestamp:     l.now(),
		Attempts:      1,
	}
	l.mistakes = append([]Mistake{m}, l.mistakes...)
	l.persistLocked()
}

// Resolve removes the entry with the given id. Unknown ids are a no-op.
func (l *Ledger) Resolve(id string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.mistakes {
		if l.mistakes[i].ID == id {
			l.mistakes = append(l.mistakes[:i], l.mistakes[i+1:]...)
			l.persistLocked()
			return
		}
	}
}

// ForRevision returns up to count mistakes in storage order
// (most-recent-miss-first).
func (l *Ledger) ForRevision(count int) []Mistake {
	l.mu.Lock()
	defer l.mu.Unlock()

	if count > len(l.mistakes) {
		count = len(l.mistakes)
	}
	out := make([]Mistake, count)
	copy(out, l.mistakes[:count])
	return out
}

// Count returns the number of open mistakes.
func (l *Ledger) Count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.mistakes)
}

func (l *Ledger) persistLocked() {
	blob, err := json.Marshal(l.mistakes)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to encode mistake ledger: %v\n", err)
		return
	}
	if err := l.kv.Save(context.Background(), store.KeyMistakes, blob); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to save mistake ledger: %v\n", err)
	}
}
