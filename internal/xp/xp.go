package xp

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/abhisek/vidya/internal/store"
)

// xpPerLevel is the flat XP cost of each level.
const xpPerLevel = 500

// correctAnswerBase is the XP for a correct quiz answer before the
// difficulty bonus.
const correctAnswerBase = 10

// Streaks of streakBonusMinDays or more add streakBonus XP to every
// correct answer.
const (
	streakBonusMinDays = 3
	streakBonus        = 5
)

// State is the persisted player progression.
type State struct {
	XP     int `json:"xp"`
	Streak int `json:"streak"`

	// LastPlayed is the last local calendar day (2006-01-02) with any
	// activity; drives the streak.
	LastPlayed string `json:"lastPlayed"`
}

// Level derives the player level from total XP.
func (s State) Level() int {
	return s.XP/xpPerLevel + 1
}

// LevelProgress reports XP accumulated within the current level and the
// level's total size.
func (s State) LevelProgress() (current, needed int) {
	return s.XP % xpPerLevel, xpPerLevel
}

// Service owns the XP state and mirrors every change to storage.
type Service struct {
	mu    sync.Mutex
	kv    store.KVRepo
	state State

	now func() time.Time
}

// NewService loads XP state from storage, starting from zero when
// nothing is stored or the blob is unreadable.
func NewService(kv store.KVRepo) *Service {
	s := &Service{kv: kv, now: time.Now}

	blob, found, err := kv.Load(context.Background(), store.KeyXP)
	if err != nil || !found {
		return s
	}
	if err := json.Unmarshal(blob, &s.state); err != nil {
		fmt.Fprintf(os.Stderr, "warning: unreadable player XP, starting fresh: %v\n", err)
		s.state = State{}
	}
	return s
}

// Current returns a copy of the XP state.
func (s *Service) Current() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// AwardAnswer grants XP for a quiz answer. Correct answers earn a base
// amount plus a difficulty bonus, and a streak bonus once the daily
// streak reaches three days; wrong answers earn nothing. Returns the
// XP granted.
func (s *Service) AwardAnswer(ctx context.Context, correct bool, difficulty int) int {
	if !correct {
		return 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.touchLocked()

	earned := correctAnswerBase + difficulty*2
	if s.state.Streak >= streakBonusMinDays {
		earned += streakBonus
	}
	s.state.XP += earned
	s.persistLocked(ctx)
	return earned
}

// AwardGame grants XP earned in a mini-game.
func (s *Service) AwardGame(ctx context.Context, earned int) {
	if earned <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.XP += earned
	s.touchLocked()
	s.persistLocked(ctx)
}

// Reset clears all progression.
func (s *Service) Reset(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = State{}
	s.persistLocked(ctx)
}

// touchLocked updates the daily streak: consecutive days extend it, a
// gap resets it to 1, same-day activity leaves it alone.
func (s *Service) touchLocked() {
	today := s.now().Format("2006-01-02")
	if s.state.LastPlayed == today {
		return
	}

	yesterday := s.now().AddDate(0, 0, -1).Format("2006-01-02")
	if s.state.LastPlayed == yesterday {
		s.state.Streak++
	} else {
		s.state.Streak = 1
	}
	s.state.LastPlayed = today
}

func (s *Service) persistLocked(ctx context.Context) {
	blob, err := json.Marshal(s.state)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to encode player XP: %v\n", err)
		return
	}
	if err := s.kv.Save(ctx, store.KeyXP, blob); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to save player XP: %v\n", err)
	}
}
