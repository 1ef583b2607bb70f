package welcome

import (
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/vidya/internal/curriculum"
	"github.com/abhisek/vidya/internal/profile"
	"github.com/abhisek/vidya/internal/router"
	"github.com/abhisek/vidya/internal/screen"
	"github.com/abhisek/vidya/internal/ui/theme"
)

// Onboarding steps. The profile's SetupStep lets an interrupted wizard
// resume where it left off.
const (
	stepIntro = iota
	stepGrade
	stepLanguage
)

type languageOption struct {
	code  profile.Language
	label string
}

var languageOptions = []languageOption{
	{profile.LangEnglish, "English"},
	{profile.LangHindi, "हिंदी (Hindi)"},
	{profile.LangMarathi, "मराठी (Marathi)"},
}

// WelcomeScreen walks a new student through grade and language setup,
// then hands off to the home screen.
type WelcomeScreen struct {
	profiles    *profile.Service
	homeFactory func() screen.Screen

	step         int
	grades       []int
	gradeIdx     int
	langIdx      int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that will transition to the screen
// produced by homeFactory once setup completes.
func New(profiles *profile.Service, homeFactory func() screen.Screen) *WelcomeScreen {
	w := &WelcomeScreen{
		profiles:    profiles,
		homeFactory: homeFactory,
		grades:      curriculum.Grades(curriculum.ResolveBoard(profile.DefaultBoard)),
	}

	if step := profiles.Current().SetupStep; step > stepIntro && step <= stepLanguage {
		w.step = step
	}
	return w
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return nil
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return w, nil
	}

	switch w.step {
	case stepIntro:
		if kmsg.String() == "enter" {
			w.step = stepGrade
			w.profiles.SetStep(stepGrade)
		}

	case stepGrade:
		switch kmsg.String() {
		case "up", "k":
			if w.gradeIdx > 0 {
				w.gradeIdx--
			}
		case "down", "j":
			if w.gradeIdx < len(w.grades)-1 {
				w.gradeIdx++
			}
		case "enter":
			w.profiles.SetGrade(profile.Grade(strconv.Itoa(w.grades[w.gradeIdx])))
			w.step = stepLanguage
			w.profiles.SetStep(stepLanguage)
		}

	case stepLanguage:
		switch kmsg.String() {
		case "up", "k":
			if w.langIdx > 0 {
				w.langIdx--
			}
		case "down", "j":
			if w.langIdx < len(languageOptions)-1 {
				w.langIdx++
			}
		case "enter":
			w.profiles.SetLanguage(languageOptions[w.langIdx].code)
			w.profiles.CompleteSetup()
			return w, w.transition()
		}
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	homeScreen := w.homeFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: homeScreen}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, RenderBanner(width))
	sections = append(sections, "")

	switch w.step {
	case stepIntro:
		tagline := lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true).
			Render("Your AI study buddy!")
		sections = append(sections, tagline, "")
		sections = append(sections, theme.Hint.Render("press enter to get started"))

	case stepGrade:
		sections = append(sections, theme.Body.Bold(true).Render("Which class are you in?"), "")
		for i, g := range w.grades {
			label := fmt.Sprintf("Class %d", g)
			sections = append(sections, renderChoice(label, i == w.gradeIdx))
		}

	case stepLanguage:
		sections = append(sections, theme.Body.Bold(true).Render("Pick your language"), "")
		for i, opt := range languageOptions {
			sections = append(sections, renderChoice(opt.label, i == w.langIdx))
		}
	}

	content := strings.Join(sections, "\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func renderChoice(label string, selected bool) string {
	if selected {
		return theme.Selected.Render("▸ " + label)
	}
	return theme.Unselected.Render("  " + label)
}
