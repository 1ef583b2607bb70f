package progressmap

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/abhisek/vidya/internal/progress"
	"github.com/abhisek/vidya/internal/store"
)

func newTestProgress(t *testing.T) *progress.Service {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "vidya.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	return progress.NewService(st.KV())
}

func record(prog *progress.Service, subject, chapter string, correct, wrong int) {
	for i := 0; i < correct; i++ {
		prog.RecordAttempt(subject, chapter, true)
	}
	for i := 0; i < wrong; i++ {
		prog.RecordAttempt(subject, chapter, false)
	}
}

func TestEmptyMapShowsInvitation(t *testing.T) {
	s := New(newTestProgress(t))

	if !strings.Contains(s.View(80, 24), "Nothing tracked yet") {
		t.Error("empty map should invite the student to play")
	}
}

func TestSubjectsSortedWithChapters(t *testing.T) {
	prog := newTestProgress(t)
	record(prog, "Science", "Plants", 3, 1)
	record(prog, "Mathematics", "Fractions", 2, 2)

	s := New(prog)
	if len(s.subjects) != 2 || s.subjects[0] != "Mathematics" {
		t.Fatalf("subjects not sorted: %v", s.subjects)
	}

	view := s.View(80, 24)
	for _, want := range []string{"Mathematics", "Fractions", "2/4", "Science", "Plants", "3/4"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestStatusLabelsRendered(t *testing.T) {
	prog := newTestProgress(t)
	record(prog, "Mathematics", "Fractions", 20, 0)
	record(prog, "Mathematics", "Decimals", 2, 18)

	view := New(prog).View(100, 30)
	if !strings.Contains(view, "Strong") {
		t.Error("high-accuracy chapter should read Strong")
	}
	if !strings.Contains(view, "Weak") {
		t.Error("low-accuracy chapter should read Weak")
	}
}
