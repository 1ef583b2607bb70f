package progress

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/abhisek/vidya/internal/store"
)

// Status is the mastery label derived from a chapter's counters.
type Status string

const (
	StatusNotStarted Status = "Not Started"
	StatusWeak       Status = "Weak"
	StatusImproving  Status = "Improving"
	StatusStrong     Status = "Strong"
)

// minAttemptsForStatus is the attempt count below which a chapter stays
// "Not Started". Early answers are too noisy to label a chapter.
const minAttemptsForStatus = 20

// ChapterStats holds the cumulative counters for one (subject, chapter).
type ChapterStats struct {
	TotalAttempts  int    `json:"totalAttempts"`
	CorrectAnswers int    `json:"correctAnswers"`
	Status         Status `json:"status"`
}

// Map is the full progress state: subject -> chapter -> stats.
// The whole map is the unit of persistence.
type Map map[string]map[string]*ChapterStats

// deriveStatus computes the status from the counters. Pure function, no
// hysteresis: status can move in either direction as attempts accrue.
func deriveStatus(attempts, correct int) Status {
	if attempts < minAttemptsForStatus {
		return StatusNotStarted
	}
	accuracy := float64(correct) / float64(attempts)
	switch {
	case accuracy < 0.50:
		return StatusWeak
	case accuracy < 0.75:
		return StatusImproving
	default:
		return StatusStrong
	}
}

// Service owns the progress map. All mutations are serialized by a mutex
// and mirrored to storage on every recorded attempt.
type Service struct {
	mu       sync.Mutex
	kv       store.KVRepo
	progress Map
}

// NewService loads progress from storage. Absent or unreadable data
// degrades to an empty map, never an error.
func NewService(kv store.KVRepo) *Service {
	s := &Service{kv: kv, progress: make(Map)}

	blob, found, err := kv.Load(context.Background(), store.KeyProgress)
	if err != nil || !found {
		return s
	}
	if err := json.Unmarshal(blob, &s.progress); err != nil {
		fmt.Fprintf(os.Stderr, "warning: unreadable chapter progress, starting fresh: %v\n", err)
		s.progress = make(Map)
	}
	if s.progress == nil {
		s.progress = make(Map)
	}
	return s
}

// RecordAttempt adds one answer to a chapter's counters and recomputes its
// status. The (subject, chapter) entry is created on first reference.
func (s *Service) RecordAttempt(subject, chapter string, correct bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	chapters := s.progress[subject]
	if chapters == nil {
		chapters = make(map[string]*ChapterStats)
		s.progress[subject] = chapters
	}
	stats := chapters[chapter]
	if stats == nil {
		stats = &ChapterStats{Status: StatusNotStarted}
		chapters[chapter] = stats
	}

	stats.TotalAttempts++
	if correct {
		stats.CorrectAnswers++
	}
	// Counters are plain increments with no cross-field validation
	// upstream, so clamp rather than trust.
	if stats.CorrectAnswers > stats.TotalAttempts {
		stats.CorrectAnswers = stats.TotalAttempts
	}
	stats.Status = deriveStatus(stats.TotalAttempts, stats.CorrectAnswers)

	s.persistLocked()
}

// Stats returns the counters for a chapter, or the zero state when the
// pair has never been recorded. Never mutates the map.
func (s *Service) Stats(subject, chapter string) ChapterStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	if chapters := s.progress[subject]; chapters != nil {
		if stats := chapters[chapter]; stats != nil {
			return *stats
		}
	}
	return ChapterStats{Status: StatusNotStarted}
}

// Snapshot returns a deep copy of the whole progress map, for consumers
// that need to scan every chapter (mission planner, progress screen).
func (s *Service) Snapshot() Map {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(Map, len(s.progress))
	for subject, chapters := range s.progress {
		cc := make(map[string]*ChapterStats, len(chapters))
		for chapter, stats := range chapters {
			copied := *stats
			cc[chapter] = &copied
		}
		out[subject] = cc
	}
	return out
}

// ByStatus partitions all tracked (subject, chapter) pairs by status.
type ChapterRef struct {
	Subject string
	Chapter string
}

// ChaptersWithStatus returns every tracked pair currently carrying the
// given status, in unspecified order.
func (s *Service) ChaptersWithStatus(status Status) []ChapterRef {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []ChapterRef
	for subject, chapters := range s.progress {
		for chapter, stats := range chapters {
			if stats.Status == status {
				out = append(out, ChapterRef{Subject: subject, Chapter: chapter})
			}
		}
	}
	return out
}

func (s *Service) persistLocked() {
	blob, err := json.Marshal(s.progress)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to encode chapter progress: %v\n", err)
		return
	}
	if err := s.kv.Save(context.Background(), store.KeyProgress, blob); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to save chapter progress: %v\n", err)
	}
}
