package profile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/abhisek/vidya/internal/store"
)

// Grade is the student's class, "1" through "8". Empty until onboarding.
type Grade string

// Language is the preferred content language.
type Language string

const (
	LangEnglish Language = "en"
	LangHindi   Language = "hi"
	LangMarathi Language = "mr"
)

// DefaultBoard is the only board supported today.
const DefaultBoard = "maharashtra_state_board"

// Profile is the per-device student profile, filled in by the onboarding
// wizard and read by every AI-facing feature for context.
type Profile struct {
	Grade      Grade    `json:"grade"`
	Board      string   `json:"board"`
	Language   Language `json:"preferredLanguage"`
	Configured bool     `json:"isConfigured"`
	SetupStep  int      `json:"currentStep"` // onboarding resume pointer, 0 = not started
}

func defaultProfile() Profile {
	return Profile{
		Board:    DefaultBoard,
		Language: LangEnglish,
	}
}

// Service owns the student profile and mirrors every change to storage.
type Service struct {
	mu      sync.Mutex
	kv      store.KVRepo
	profile Profile
}

// NewService loads the profile from storage, falling back to defaults when
// nothing is stored or the blob is unreadable.
func NewService(kv store.KVRepo) *Service {
	s := &Service{kv: kv, profile: defaultProfile()}

	blob, found, err := kv.Load(context.Background(), store.KeyProfile)
	if err != nil || !found {
		return s
	}
	// Unmarshal over the defaults so partially-written profiles keep
	// sensible values for the missing fields.
	if err := json.Unmarshal(blob, &s.profile); err != nil {
		fmt.Fprintf(os.Stderr, "warning: unreadable student profile, starting fresh: %v\n", err)
		s.profile = defaultProfile()
	}
	return s
}

// Current returns a copy of the profile.
func (s *Service) Current() Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile
}

// SetGrade records the student's grade.
func (s *Service) SetGrade(g Grade) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile.Grade = g
	s.persistLocked()
}

// SetLanguage records the preferred content language.
func (s *Service) SetLanguage(l Language) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile.Language = l
	s.persistLocked()
}

// SetStep records how far the onboarding wizard has progressed, so a
// half-finished setup resumes at the right screen.
func (s *Service) SetStep(step int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile.SetupStep = step
	s.persistLocked()
}

// CompleteSetup marks onboarding finished and clears the resume pointer.
func (s *Service) CompleteSetup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile.Configured = true
	s.profile.SetupStep = 0
	s.persistLocked()
}

// Reset restores defaults and removes the stored profile.
func (s *Service) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = defaultProfile()
	if err := s.kv.Delete(context.Background(), store.KeyProfile); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to clear student profile: %v\n", err)
	}
}

// persistLocked writes the profile to storage. Best-effort: a failed save
// is logged and dropped, never surfaced to the caller.
func (s *Service) persistLocked() {
	blob, err := json.Marshal(s.profile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to encode student profile: %v\n", err)
		return
	}
	if err := s.kv.Save(context.Background(), store.KeyProfile, blob); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to save student profile: %v\n", err)
	}
}
