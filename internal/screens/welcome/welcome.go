package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/syduan2016/space-math-adventure/internal/router"
	"github.com/syduan2016/space-math-adventure/internal/screen"
	"github.com/syduan2016/space-math-adventure/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	phase1End    = 500 * time.Millisecond
	phase2End    = 1500 * time.Millisecond
	totalDur     = 3000 * time.Millisecond
)

const rocketArt = `      ▲
     ╱█╲
    ╱███╲
    │███│
    │▓▓▓│
    │▓▓▓│
   ╱│███│╲
  ╱ │███│ ╲
 ╱__│███│__╲
     ▀▀▀
    ╱╱╲╲`

// twinkle frames cycle around the rocket
var twinkleFrames = []string{"★", "✦"}

type tickMsg time.Time

// WelcomeScreen shows a launch animation before transitioning to the
// home screen.
type WelcomeScreen struct {
	homeFactory  func() screen.Screen
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that will transition to the screen
// produced by homeFactory.
func New(homeFactory func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{
		homeFactory: homeFactory,
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.elapsed < totalDur {
			w.elapsed += tickInterval
		}
		w.tickCount++
		return w, tea.Tick(tickInterval, func(t time.Time) tea.Msg {
			return tickMsg(t)
		})

	case tea.KeyPressMsg:
		// Any key skips straight to the home screen.
		return w, w.transition()
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

	rocketStyle := lipgloss.NewStyle().Foreground(theme.Secondary)

	// Phase 1+: rocket
	rendered := rocketStyle.Render(rocketArt)

	// Phase 2+: stars twinkle beside the rocket
	if w.elapsed >= phase1End {
		frame := w.tickCount % len(twinkleFrames)
		twinkle := twinkleFrames[frame]

		starStyle := lipgloss.NewStyle().Foreground(theme.StarYellow)
		cometStyle := lipgloss.NewStyle().Foreground(theme.CometCyan)

		s1 := starStyle.Render(twinkle)
		s2 := cometStyle.Render(twinkle)

		lines := strings.Split(rendered, "\n")
		if len(lines) > 1 {
			lines[1] = s1 + "    " + lines[1] + "    " + s2
		}
		if len(lines) > 4 {
			lines[4] = s2 + "    " + lines[4] + "    " + s1
		}
		if len(lines) > 8 {
			lines[8] = s1 + "    " + lines[8] + "    " + s2
		}
		rendered = strings.Join(lines, "\n")
	}

	sections = append(sections, rendered)

	// Phase 3+: banner + tagline
	if w.elapsed >= phase2End {
		sections = append(sections, "")
		sections = append(sections, RenderBanner(width))
		sections = append(sections, "")

		tagline := lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true).
			Render("Blast off with arithmetic!")
		sections = append(sections, tagline)

		sections = append(sections, "")
		hint := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("press any key to launch")
		sections = append(sections, hint)
	}

	content := strings.Join(sections, "\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
