package quiz

import (
	"context"
	"strconv"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/vidya/internal/curriculum"
	"github.com/abhisek/vidya/internal/mistakes"
	"github.com/abhisek/vidya/internal/profile"
	"github.com/abhisek/vidya/internal/progress"
	quizcore "github.com/abhisek/vidya/internal/quiz"
	"github.com/abhisek/vidya/internal/screen"
	"github.com/abhisek/vidya/internal/ui/components"
	"github.com/abhisek/vidya/internal/ui/layout"
	"github.com/abhisek/vidya/internal/xp"
)

// questionsPerRound is how many questions one arcade round serves.
const questionsPerRound = 5

// arcadeChapter is the chapter arcade attempts are recorded under.
// Mission and progress views pick it up like any studied chapter.
const arcadeChapter = "General Practice"

type phase int

const (
	phaseSubject phase = iota
	phaseQuestion
	phaseFeedback
	phaseRoundDone
)

// QuizScreen runs adaptive quiz rounds for one subject.
type QuizScreen struct {
	batch    *quizcore.BatchService
	profiles *profile.Service
	progress *progress.Service
	ledger   *mistakes.Ledger
	xp       *xp.Service

	phase    phase
	menu     components.Menu
	subjects []string
	subject  string

	round         *quizcore.Round
	difficulty    int
	perf          quizcore.Performance
	mc            components.MultiChoice
	question      quizcore.Question
	questionStart time.Time
	questionNum   int

	roundCorrect int
	roundAnswers int
	xpEarned     int
	lastCorrect  bool
	lastEarned   int
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a QuizScreen starting at the subject picker.
func New(batch *quizcore.BatchService, profiles *profile.Service, prog *progress.Service, ledger *mistakes.Ledger, xpSvc *xp.Service) *QuizScreen {
	s := &QuizScreen{
		batch:      batch,
		profiles:   profiles,
		progress:   prog,
		ledger:     ledger,
		xp:         xpSvc,
		difficulty: 1,
	}

	p := profiles.Current()
	grade := 6
	if g, err := parseGrade(string(p.Grade)); err == nil {
		grade = g
	}
	s.subjects = curriculum.Subjects(curriculum.ResolveBoard(p.Board), grade)

	items := make([]components.MenuItem, 0, len(s.subjects))
	for _, subject := range s.subjects {
		subject := subject
		items = append(items, components.MenuItem{
			Label: subject,
			Action: func() tea.Cmd {
				return s.startRound(subject)
			},
		})
	}
	s.menu = components.NewMenu(items)

	return s
}

func (s *QuizScreen) Init() tea.Cmd {
	return nil
}

func (s *QuizScreen) Title() string {
	return "Quiz Arcade"
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseSubject:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Esc", Description: "Back"},
		}
	case phaseQuestion:
		return []layout.KeyHint{
			{Key: "1-4", Description: "Answer"},
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Quit round"},
		}
	case phaseFeedback:
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next round"},
			{Key: "Esc", Description: "Home"},
		}
	}
}

// startRound begins a round on the chosen subject, local battery first.
func (s *QuizScreen) startRound(subject string) tea.Cmd {
	p := s.profiles.Current()
	s.subject = subject
	s.round = s.batch.Start(context.Background(), quizcore.GenerateInput{
		Subject:     subject,
		Topic:       arcadeChapter,
		Difficulty:  s.difficulty,
		Performance: s.perf,
		Count:       questionsPerRound,
		Grade:       string(p.Grade),
		Board:       p.Board,
		Language:    string(p.Language),
	})
	s.roundCorrect = 0
	s.roundAnswers = 0
	s.xpEarned = 0
	s.questionNum = 0
	s.nextQuestion()
	return upgradeTick()
}

// nextQuestion pulls the round cursor into the screen state. Returns
// false when the round is exhausted.
func (s *QuizScreen) nextQuestion() bool {
	q, ok := s.round.Current()
	if !ok {
		s.phase = phaseRoundDone
		// Carry the adapted difficulty into the next round.
		s.difficulty = s.round.Difficulty()
		return false
	}
	s.question = q
	s.mc = components.NewMultiChoice(q.Text, q.Options, q.CorrectIndex)
	s.questionStart = time.Now()
	s.questionNum++
	s.phase = phaseQuestion
	return true
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case upgradeTickMsg:
		return s.handleUpgradeTick()
	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

// handleUpgradeTick re-syncs the displayed question if the remote batch
// replaced the fallback while the student is still on question one.
func (s *QuizScreen) handleUpgradeTick() (screen.Screen, tea.Cmd) {
	if s.phase != phaseQuestion || s.questionNum > 1 || s.mc.Submitted {
		return s, nil
	}
	if s.round.Upgraded() {
		if q, ok := s.round.Current(); ok {
			s.question = q
			s.mc = components.NewMultiChoice(q.Text, q.Options, q.CorrectIndex)
			s.questionStart = time.Now()
		}
		return s, nil
	}
	return s, upgradeTick()
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch s.phase {
	case phaseSubject:
		var cmd tea.Cmd
		s.menu, cmd = s.menu.Update(msg)
		return s, cmd

	case phaseQuestion:
		s.mc, _ = s.mc.Update(msg)
		if s.mc.Submitted {
			s.recordAnswer()
		}
		return s, nil

	case phaseFeedback:
		s.round.Advance()
		s.nextQuestion()
		return s, nil

	case phaseRoundDone:
		if msg.String() == "enter" {
			return s, s.startRound(s.subject)
		}
		return s, nil
	}
	return s, nil
}

// recordAnswer scores the submitted choice and fans the result out to
// progress, the mistake ledger and XP.
func (s *QuizScreen) recordAnswer() {
	ctx := context.Background()
	correct := s.mc.IsCorrect()
	elapsed := time.Since(s.questionStart).Seconds()

	// Rolling performance window for the difficulty adapter.
	total := float64(s.perf.TotalAnswers)
	s.perf.AverageResponseTime = (s.perf.AverageResponseTime*total + elapsed) / (total + 1)
	s.perf.TotalAnswers++
	if correct {
		s.perf.CorrectAnswers++
		s.roundCorrect++
	}
	s.roundAnswers++

	s.progress.RecordAttempt(s.subject, arcadeChapter, correct)

	if !correct {
		chosen := ""
		if s.mc.ChosenIndex >= 0 && s.mc.ChosenIndex < len(s.question.Options) {
			chosen = s.question.Options[s.mc.ChosenIndex]
		}
		s.ledger.Capture(mistakes.CaptureInput{
			Question:      s.question.Text,
			UserAnswer:    chosen,
			CorrectAnswer: s.question.Options[s.question.CorrectIndex],
			Subject:       s.subject,
			Topic:         arcadeChapter,
		})
	}

	s.lastCorrect = correct
	s.lastEarned = s.xp.AwardAnswer(ctx, correct, s.question.Difficulty)
	s.xpEarned += s.lastEarned

	s.phase = phaseFeedback
}

func upgradeTick() tea.Cmd {
	return tea.Tick(300*time.Millisecond, func(t time.Time) tea.Msg {
		return upgradeTickMsg(t)
	})
}

func parseGrade(s string) (int, error) {
	g, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if g < 1 {
		return 0, strconv.ErrRange
	}
	return g, nil
}
