package welcome

import (
	"path/filepath"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/vidya/internal/profile"
	"github.com/abhisek/vidya/internal/router"
	"github.com/abhisek/vidya/internal/screen"
	"github.com/abhisek/vidya/internal/store"
)

// stubScreen is a minimal screen implementation for testing.
type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "home" }
func (s *stubScreen) Title() string                           { return "Home" }

func newTestWelcome(t *testing.T) (*WelcomeScreen, *profile.Service, *int) {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "vidya.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	profiles := profile.NewService(st.KV())

	callCount := 0
	factory := func() screen.Screen {
		callCount++
		return &stubScreen{}
	}
	return New(profiles, factory), profiles, &callCount
}

func pressKey(w *WelcomeScreen, key rune) tea.Cmd {
	_, cmd := w.Update(tea.KeyPressMsg{Code: key, Text: string(key)})
	return cmd
}

func pressEnter(w *WelcomeScreen) tea.Cmd {
	_, cmd := w.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	return cmd
}

func TestWizardCompletesProfile(t *testing.T) {
	w, profiles, callCount := newTestWelcome(t)

	pressEnter(w) // intro → grade

	// Pick the third grade in the list.
	pressKey(w, 'j')
	pressKey(w, 'j')
	pressEnter(w) // grade → language

	pressKey(w, 'j') // select Hindi
	cmd := pressEnter(w)
	if cmd == nil {
		t.Fatal("expected transition command after last step")
	}

	msg := cmd()
	if _, ok := msg.(router.ReplaceScreenMsg); !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", msg)
	}
	if *callCount != 1 {
		t.Errorf("factory should be called once, got %d", *callCount)
	}

	p := profiles.Current()
	if !p.Configured {
		t.Error("profile should be configured after wizard")
	}
	if p.Grade != "3" {
		t.Errorf("expected grade 3, got %q", p.Grade)
	}
	if p.Language != profile.LangHindi {
		t.Errorf("expected Hindi, got %q", p.Language)
	}
}

func TestWizardResumesAtStoredStep(t *testing.T) {
	w, profiles, _ := newTestWelcome(t)

	pressEnter(w) // intro → grade
	pressEnter(w) // grade → language; SetupStep now stepLanguage

	// A fresh wizard over the same profile skips straight to language.
	w2 := New(profiles, func() screen.Screen { return &stubScreen{} })
	if w2.step != stepLanguage {
		t.Errorf("expected resume at language step, got step %d", w2.step)
	}
}

func TestIntroViewShowsBanner(t *testing.T) {
	w, _, _ := newTestWelcome(t)

	view := w.View(80, 24)
	if !strings.Contains(view, "study buddy") {
		t.Error("intro view should show the tagline")
	}

	pressEnter(w)
	view = w.View(80, 24)
	if !strings.Contains(view, "Which class") {
		t.Error("grade step should ask for the class")
	}
}

func TestTransitionFiresOnce(t *testing.T) {
	w, _, callCount := newTestWelcome(t)

	pressEnter(w)
	pressEnter(w)
	pressEnter(w) // completes wizard

	// Another enter after completion must not rebuild home.
	cmd := pressEnter(w)
	if cmd != nil {
		t.Error("completed wizard should not produce further commands")
	}
	if *callCount != 1 {
		t.Errorf("factory should be called exactly once, got %d", *callCount)
	}
}

func TestTitleEmpty(t *testing.T) {
	w, _, _ := newTestWelcome(t)
	if w.Title() != "" {
		t.Errorf("expected empty title, got %q", w.Title())
	}
}
