package home

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/vidya/internal/mission"
	"github.com/abhisek/vidya/internal/mistakes"
	"github.com/abhisek/vidya/internal/profile"
	"github.com/abhisek/vidya/internal/progress"
	"github.com/abhisek/vidya/internal/quiz"
	"github.com/abhisek/vidya/internal/router"
	"github.com/abhisek/vidya/internal/screen"
	chatscreen "github.com/abhisek/vidya/internal/screens/chat"
	missionscreen "github.com/abhisek/vidya/internal/screens/mission"
	"github.com/abhisek/vidya/internal/screens/placeholder"
	"github.com/abhisek/vidya/internal/screens/progressmap"
	quizscreen "github.com/abhisek/vidya/internal/screens/quiz"
	"github.com/abhisek/vidya/internal/screens/vault"
	"github.com/abhisek/vidya/internal/tutor"
	"github.com/abhisek/vidya/internal/ui/components"
	"github.com/abhisek/vidya/internal/xp"
)

// Deps bundles the services the home screen and its children need.
type Deps struct {
	Profiles *profile.Service
	Progress *progress.Service
	Mistakes *mistakes.Ledger
	Missions *mission.Planner
	XP       *xp.Service

	// Quiz always works: without an LLM provider the batch service
	// serves curated fallback questions.
	Quiz *quiz.BatchService

	// Solver is nil when no LLM provider is configured; the tutor
	// entry then leads to a placeholder.
	Solver *tutor.Solver
}

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	deps          Deps
	menu          components.Menu
	menuLabels    []string
	level         int
	streak        int
	openMistakes  int
	mascotVariant MascotVariant
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(deps Deps) *HomeScreen {
	state := deps.XP.Current()
	openMistakes := deps.Mistakes.Count()

	mascotVariant := MascotIdle
	if openMistakes >= 5 {
		mascotVariant = MascotAlert
	} else if deps.Missions.Today(context.Background()).Completed {
		mascotVariant = MascotCelebrating
	}

	menuLabels := []string{"QUIZ ARCADE", "ASK TUTOR", "DAILY MISSION", "MISTAKE VAULT", "MY PROGRESS", "EXIT"}

	items := []components.MenuItem{
		{Label: menuLabels[0], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: quizscreen.New(deps.Quiz, deps.Profiles, deps.Progress, deps.Mistakes, deps.XP),
				}
			}
		}},
		{Label: menuLabels[1], Action: func() tea.Cmd {
			if deps.Solver == nil {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: placeholder.New("Ask Tutor")}
				}
			}
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: chatscreen.New(deps.Solver, deps.Profiles, deps.Progress),
				}
			}
		}},
		{Label: menuLabels[2], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: missionscreen.New(deps.Missions)}
			}
		}},
		{Label: menuLabels[3], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: vault.New(deps.Mistakes)}
			}
		}},
		{Label: menuLabels[4], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: progressmap.New(deps.Progress)}
			}
		}},
		{Label: menuLabels[5], Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		deps:          deps,
		menu:          components.NewMenu(items),
		menuLabels:    menuLabels,
		level:         state.Level(),
		streak:        state.Streak,
		openMistakes:  openMistakes,
		mascotVariant: mascotVariant,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)

	// Stats may have changed while a child screen was up.
	state := h.deps.XP.Current()
	h.level = state.Level()
	h.streak = state.Streak
	h.openMistakes = h.deps.Mistakes.Count()

	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := termHeight < 30 || width < 100

	// All sections share a uniform content width so they line up.
	cw := contentWidth(width)

	var sections []string

	// 1. Title
	sections = append(sections, renderTitle(cw, compact))

	// 2. Mascot (full mode only)
	if !compact {
		sections = append(sections, renderMascotBox(h.mascotVariant, cw))
	}

	// 3. Stats bar (double-bordered, same width)
	sections = append(sections, renderStatsBar(
		h.level, h.streak, h.openMistakes, cw, compact))

	// 4. Menu (same width box)
	if compact {
		sections = append(sections, renderArcadeMenuCompact(
			h.menuLabels, h.menu.Selected, cw, nil))
	} else {
		sections = append(sections, renderArcadeMenu(
			h.menuLabels, h.menu.Selected, cw, nil))
	}

	// 5. Missing-key banner
	if h.deps.Solver == nil {
		sections = append(sections, renderLLMBanner(cw))
	}

	content := strings.Join(sections, "\n\n")

	// Wrap in cabinet frame, centered in the full area
	return renderCabinetFrame(content, width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
