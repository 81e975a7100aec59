package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/syduan2016/space-math-adventure/internal/achievements"
	"github.com/syduan2016/space-math-adventure/internal/facts"
	"github.com/syduan2016/space-math-adventure/internal/game"
	"github.com/syduan2016/space-math-adventure/internal/hangar"
	"github.com/syduan2016/space-math-adventure/internal/progress"
	"github.com/syduan2016/space-math-adventure/internal/router"
	"github.com/syduan2016/space-math-adventure/internal/screen"
	achscreen "github.com/syduan2016/space-math-adventure/internal/screens/achievevault"
	"github.com/syduan2016/space-math-adventure/internal/screens/history"
	"github.com/syduan2016/space-math-adventure/internal/screens/levels"
	hangarscreen "github.com/syduan2016/space-math-adventure/internal/screens/shipyard"
	"github.com/syduan2016/space-math-adventure/internal/screens/stats"
	"github.com/syduan2016/space-math-adventure/internal/ui/components"
)

// HomeScreen is the main menu of the game.
type HomeScreen struct {
	menu       components.Menu
	menuLabels []string
	prog       *progress.Engine
	rocket     RocketVariant
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(ctrl *game.Controller, ledger *facts.Ledger, prog *progress.Engine, ach *achievements.Engine, hang *hangar.Hangar) *HomeScreen {
	menuLabels := []string{
		"START MISSION", "PRACTICE MODE", "PILOT STATS",
		"ACHIEVEMENTS", "HANGAR", "FLIGHT LOG", "EXIT GAME",
	}

	rocket := RocketIdle
	overall := prog.Stats()
	switch {
	case overall.LevelsMastered > 0:
		rocket = RocketCelebrating
	case len(prog.WeakAreas(ledger)) > 0:
		rocket = RocketAlert
	}

	items := []components.MenuItem{
		{Label: menuLabels[0], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: levels.New(ctrl, ledger, prog, ach, false)}
			}
		}},
		{Label: menuLabels[1], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: levels.New(ctrl, ledger, prog, ach, true)}
			}
		}},
		{Label: menuLabels[2], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: stats.New(ledger, prog)}
			}
		}},
		{Label: menuLabels[3], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: achscreen.New(ach)}
			}
		}},
		{Label: menuLabels[4], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: hangarscreen.New(hang, prog)}
			}
		}},
		{Label: menuLabels[5], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(prog)}
			}
		}},
		{Label: menuLabels[6], Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:       components.NewMenu(items),
		menuLabels: menuLabels,
		prog:       prog,
		rocket:     rocket,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := termHeight < 30 || width < 100

	// All sections share a uniform content width so they line up.
	cw := components.ContentWidth(width)

	var sections []string

	sections = append(sections, renderTitle(cw, compact))

	if !compact {
		sections = append(sections, renderRocketBox(h.rocket, cw))
	}

	profile := h.prog.Profile()
	sections = append(sections, renderStatsBar(
		profile.TotalStars, profile.TotalGamesPlayed, profile.OverallAccuracy, cw, compact))

	if compact {
		sections = append(sections, renderArcadeMenuCompact(
			h.menuLabels, h.menu.Selected, cw))
	} else {
		sections = append(sections, renderArcadeMenu(
			h.menuLabels, h.menu.Selected, cw))
	}

	content := strings.Join(sections, "\n\n")

	return components.CabinetFrame(content, width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
