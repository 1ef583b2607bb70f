package quiz

import (
	"path/filepath"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/vidya/internal/mistakes"
	"github.com/abhisek/vidya/internal/profile"
	"github.com/abhisek/vidya/internal/progress"
	quizcore "github.com/abhisek/vidya/internal/quiz"
	"github.com/abhisek/vidya/internal/store"
	"github.com/abhisek/vidya/internal/xp"
)

type testEnv struct {
	screen   *QuizScreen
	progress *progress.Service
	ledger   *mistakes.Ledger
	xp       *xp.Service
}

func newTestQuiz(t *testing.T) *testEnv {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "vidya.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	profiles := profile.NewService(st.KV())
	profiles.SetGrade("6")
	prog := progress.NewService(st.KV())
	ledger := mistakes.NewLedger(st.KV())
	xpSvc := xp.NewService(st.KV())

	// nil generator: rounds run purely on the local battery.
	batch := quizcore.NewBatchService(nil)

	return &testEnv{
		screen:   New(batch, profiles, prog, ledger, xpSvc),
		progress: prog,
		ledger:   ledger,
		xp:       xpSvc,
	}
}

func enter() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: tea.KeyEnter}
}

func (e *testEnv) startFirstSubject(t *testing.T) {
	t.Helper()
	e.screen.Update(enter())
	if e.screen.phase != phaseQuestion {
		t.Fatalf("expected question phase after subject pick, got %d", e.screen.phase)
	}
}

// answer submits the current question, correctly or not, and dismisses
// the feedback overlay.
func (e *testEnv) answer(t *testing.T, correctly bool) {
	t.Helper()
	if correctly {
		e.screen.mc.Selected = e.screen.question.CorrectIndex
	} else {
		e.screen.mc.Selected = (e.screen.question.CorrectIndex + 1) % len(e.screen.question.Options)
	}
	e.screen.Update(enter())
	if e.screen.phase != phaseFeedback {
		t.Fatalf("expected feedback phase after submit, got %d", e.screen.phase)
	}
	e.screen.Update(enter())
}

func TestSubjectPickerStartsRound(t *testing.T) {
	env := newTestQuiz(t)

	if len(env.screen.subjects) == 0 {
		t.Fatal("expected subjects for grade 6")
	}

	env.startFirstSubject(t)

	if env.screen.round == nil {
		t.Fatal("round should exist after subject pick")
	}
	if env.screen.round.Len() != questionsPerRound {
		t.Errorf("expected %d questions, got %d", questionsPerRound, env.screen.round.Len())
	}
	if env.screen.questionNum != 1 {
		t.Errorf("expected question 1, got %d", env.screen.questionNum)
	}
}

func TestCorrectAnswerFansOut(t *testing.T) {
	env := newTestQuiz(t)
	env.startFirstSubject(t)
	subject := env.screen.subject

	env.screen.mc.Selected = env.screen.question.CorrectIndex
	env.screen.Update(enter())

	if env.screen.phase != phaseFeedback {
		t.Fatalf("expected feedback phase, got %d", env.screen.phase)
	}
	if !env.screen.lastCorrect {
		t.Error("answer should be scored correct")
	}
	if env.screen.lastEarned <= 0 {
		t.Error("correct answer should earn XP")
	}
	if env.xp.Current().XP != env.screen.lastEarned {
		t.Errorf("XP service should hold %d, got %d", env.screen.lastEarned, env.xp.Current().XP)
	}

	stats := env.progress.Stats(subject, arcadeChapter)
	if stats.TotalAttempts != 1 || stats.CorrectAnswers != 1 {
		t.Errorf("expected 1/1 recorded, got %d/%d", stats.CorrectAnswers, stats.TotalAttempts)
	}
	if env.ledger.Count() != 0 {
		t.Errorf("correct answer must not reach the ledger, got %d", env.ledger.Count())
	}
}

func TestWrongAnswerCapturesMistake(t *testing.T) {
	env := newTestQuiz(t)
	env.startFirstSubject(t)

	env.screen.mc.Selected = (env.screen.question.CorrectIndex + 1) % len(env.screen.question.Options)
	env.screen.Update(enter())

	if env.screen.lastCorrect {
		t.Error("answer should be scored wrong")
	}
	if env.screen.lastEarned != 0 {
		t.Error("wrong answer should earn nothing")
	}
	if env.ledger.Count() != 1 {
		t.Fatalf("expected 1 ledger entry, got %d", env.ledger.Count())
	}

	m := env.ledger.ForRevision(1)[0]
	if m.Question != env.screen.question.Text {
		t.Errorf("ledger question mismatch: %q", m.Question)
	}
	if m.CorrectAnswer != env.screen.question.Options[env.screen.question.CorrectIndex] {
		t.Errorf("ledger correct answer mismatch: %q", m.CorrectAnswer)
	}
}

func TestRoundExhaustionShowsSummary(t *testing.T) {
	env := newTestQuiz(t)
	env.startFirstSubject(t)

	for i := 0; i < questionsPerRound; i++ {
		env.answer(t, true)
	}

	if env.screen.phase != phaseRoundDone {
		t.Fatalf("expected round-done phase, got %d", env.screen.phase)
	}
	if env.screen.roundCorrect != questionsPerRound {
		t.Errorf("expected %d correct, got %d", questionsPerRound, env.screen.roundCorrect)
	}
	// Adapted difficulty is carried forward for the next round.
	if env.screen.difficulty < 1 || env.screen.difficulty > 10 {
		t.Errorf("carried difficulty out of range: %d", env.screen.difficulty)
	}

	// Enter starts a fresh round on the same subject.
	env.screen.Update(enter())
	if env.screen.phase != phaseQuestion {
		t.Fatalf("expected new round after enter, got phase %d", env.screen.phase)
	}
	if env.screen.questionNum != 1 {
		t.Errorf("new round should restart numbering, got %d", env.screen.questionNum)
	}
}

func TestPerformanceWindowAccumulates(t *testing.T) {
	env := newTestQuiz(t)
	env.startFirstSubject(t)

	env.answer(t, true)
	env.answer(t, false)

	if env.screen.perf.TotalAnswers != 2 {
		t.Errorf("expected 2 answers in window, got %d", env.screen.perf.TotalAnswers)
	}
	if env.screen.perf.CorrectAnswers != 1 {
		t.Errorf("expected 1 correct in window, got %d", env.screen.perf.CorrectAnswers)
	}
}
