package mission

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/abhisek/vidya/internal/curriculum"
	"github.com/abhisek/vidya/internal/profile"
	"github.com/abhisek/vidya/internal/progress"
	"github.com/abhisek/vidya/internal/store"
)

// TaskType categorizes a daily task.
type TaskType string

const (
	TaskChapter  TaskType = "chapter"
	TaskPractice TaskType = "practice"
	TaskRevision TaskType = "revision"
)

// Task is one item in the day's mission.
type Task struct {
	ID          string   `json:"id"`
	Type        TaskType `json:"type"`
	Description string   `json:"description"`
	Done        bool     `json:"isCompleted"`
}

// Mission is the day's two-task study plan. It is generated once per
// calendar day and persists for the rest of that day.
type Mission struct {
	// Date is the local calendar day, formatted 2006-01-02.
	Date      string `json:"date"`
	Title     string `json:"title"`
	Tasks     []Task `json:"tasks"`
	Completed bool   `json:"completed"`
}

var titles = []string{
	"Today's Brain Boost 🚀",
	"Your Daily Mission 🎯",
	"Level Up Plan ⚡",
	"Study Streak Goal 🔥",
}

// Planner produces and tracks the daily mission. The plan is biased
// toward the student's weak chapters; with nothing tracked yet it falls
// back to a random curriculum subject.
type Planner struct {
	mu       sync.Mutex
	kv       store.KVRepo
	progress *progress.Service
	profile  *profile.Service
	current  *Mission

	now  func() time.Time
	intn func(int) int
}

// NewPlanner creates a Planner backed by the given stores.
func NewPlanner(kv store.KVRepo, prog *progress.Service, prof *profile.Service) *Planner {
	return &Planner{
		kv:       kv,
		progress: prog,
		profile:  prof,
		now:      time.Now,
		intn:     rand.IntN,
	}
}

// Today returns the mission for the current calendar day, generating
// and persisting a fresh one when the stored mission is stale.
func (p *Planner) Today(ctx context.Context) Mission {
	p.mu.Lock()
	defer p.mu.Unlock()

	today := p.now().Format("2006-01-02")

	if p.current != nil && p.current.Date == today {
		return cloneMission(*p.current)
	}

	if stored := p.loadStored(ctx); stored != nil && stored.Date == today {
		p.current = stored
		return cloneMission(*stored)
	}

	m := p.generate(today)
	p.current = &m
	p.persistLocked(ctx)
	return cloneMission(m)
}

// CompleteTask marks a task done. The transition is one-way; completing
// an already-done or unknown task is a no-op. The mission's Completed
// flag flips exactly when both tasks are done.
func (p *Planner) CompleteTask(ctx context.Context, taskID string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.current == nil {
		return
	}

	changed := false
	allDone := true
	for i := range p.current.Tasks {
		if p.current.Tasks[i].ID == taskID && !p.current.Tasks[i].Done {
			p.current.Tasks[i].Done = true
			changed = true
		}
		if !p.current.Tasks[i].Done {
			allDone = false
		}
	}
	if !changed {
		return
	}

	p.current.Completed = allDone
	p.persistLocked(ctx)
}

func (p *Planner) loadStored(ctx context.Context) *Mission {
	blob, found, err := p.kv.Load(ctx, store.KeyMission)
	if err != nil || !found {
		return nil
	}
	var m Mission
	if err := json.Unmarshal(blob, &m); err != nil {
		fmt.Fprintf(os.Stderr, "warning: unreadable daily mission, regenerating: %v\n", err)
		return nil
	}
	return &m
}

// generate builds a fresh two-task mission for the given date.
func (p *Planner) generate(date string) Mission {
	var focus, practice Task

	weak := p.progress.ChaptersWithStatus(progress.StatusWeak)
	improving := p.progress.ChaptersWithStatus(progress.StatusImproving)

	switch {
	case len(weak) > 0:
		target := weak[p.intn(len(weak))]
		focus = Task{
			ID:          "task_1",
			Type:        TaskRevision,
			Description: fmt.Sprintf("Review %q in %s", target.Chapter, target.Subject),
		}
		practice = Task{
			ID:          "task_2",
			Type:        TaskPractice,
			Description: fmt.Sprintf("Complete a quiz for %q", target.Chapter),
		}

	case len(improving) > 0:
		target := improving[p.intn(len(improving))]
		focus = Task{
			ID:          "task_1",
			Type:        TaskChapter,
			Description: fmt.Sprintf("Master %q in %s", target.Chapter, target.Subject),
		}
		practice = Task{
			ID:          "task_2",
			Type:        TaskPractice,
			Description: fmt.Sprintf("Play a game in %s to boost XP", target.Subject),
		}

	default:
		subject := p.fallbackSubject()
		focus = Task{
			ID:          "task_1",
			Type:        TaskChapter,
			Description: fmt.Sprintf("Start a new chapter in %s", subject),
		}
		practice = Task{
			ID:          "task_2",
			Type:        TaskPractice,
			Description: fmt.Sprintf("Play a quick game in %s", subject),
		}
	}

	return Mission{
		Date:  date,
		Title: titles[p.intn(len(titles))],
		Tasks: []Task{focus, practice},
	}
}

// fallbackSubject picks a random subject from the student's curriculum,
// defaulting to the core pair when the profile is incomplete.
func (p *Planner) fallbackSubject() string {
	prof := p.profile.Current()

	grade, err := strconv.Atoi(string(prof.Grade))
	if err != nil {
		grade = 6
	}

	subjects := curriculum.Subjects(curriculum.ResolveBoard(prof.Board), grade)
	if len(subjects) == 0 {
		subjects = []string{"Mathematics", "Science"}
	}
	return subjects[p.intn(len(subjects))]
}

func (p *Planner) persistLocked(ctx context.Context) {
	blob, err := json.Marshal(p.current)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to encode daily mission: %v\n", err)
		return
	}
	if err := p.kv.Save(ctx, store.KeyMission, blob); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to save daily mission: %v\n", err)
	}
}

func cloneMission(m Mission) Mission {
	tasks := make([]Task, len(m.Tasks))
	copy(tasks, m.Tasks)
	m.Tasks = tasks
	return m
}
