package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/syduan2016/space-math-adventure/internal/ui/theme"
)

// Block-letter title (same art as welcome/banner.go, halved).
const arcadeTitleFull = ` ███████╗██████╗  █████╗  ██████╗███████╗
 ██╔════╝██╔══██╗██╔══██╗██╔════╝██╔════╝
 ███████╗██████╔╝███████║██║     █████╗
 ╚════██║██╔═══╝ ██╔══██║██║     ██╔══╝
 ███████║██║     ██║  ██║╚██████╗███████╗
 ╚══════╝╚═╝     ╚═╝  ╚═╝ ╚═════╝╚══════╝  M A T H`

const arcadeTitleCompact = "S P A C E · M A T H"

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.StarYellow).
		Bold(true)

	if compact {
		return lipgloss.NewStyle().
			Width(cw).
			Align(lipgloss.Center).
			Render(style.Render(arcadeTitleCompact))
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(arcadeTitleFull))
}

// renderStatsBar renders the pilot dashboard in a bordered box
// matching content width.
func renderStatsBar(stars, games, accuracy, cw int, compact bool) string {
	starStyle := lipgloss.NewStyle().Foreground(theme.StarYellow).Bold(true)
	gameStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	accStyle := lipgloss.NewStyle().Foreground(theme.CometCyan).Bold(true)

	var stats string
	if compact {
		stats = fmt.Sprintf("%s %s %s",
			starStyle.Render(fmt.Sprintf("★%d", stars)),
			gameStyle.Render(fmt.Sprintf("▶%d", games)),
			accStyle.Render(fmt.Sprintf("◎%d%%", accuracy)),
		)
	} else {
		stats = fmt.Sprintf("%s  %s  %s",
			starStyle.Render(fmt.Sprintf("★ %d STARS", stars)),
			gameStyle.Render(fmt.Sprintf("▶ %d GAMES", games)),
			accStyle.Render(fmt.Sprintf("◎ %d%% ACCURACY", accuracy)),
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.CometCyan).
		Width(cw - 2). // account for border chars
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 22

// renderArcadeMenu renders each menu item as a fixed-width button.
func renderArcadeMenu(items []string, selected int, cw int) string {
	selectedBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Bold(true).
		Foreground(theme.BgDark).
		Background(theme.StarYellow).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.StarYellow).
		Padding(0, 1)

	normalBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)

	var buttons []string
	for i, label := range items {
		if i == selected {
			buttons = append(buttons, selectedBtn.Render("▸ "+label))
		} else {
			buttons = append(buttons, normalBtn.Render(label))
		}
	}
	block := strings.Join(buttons, "\n")

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(block)
}

// renderArcadeMenuCompact renders menu items as simple text lines
// for small terminals where bordered buttons would overflow.
func renderArcadeMenuCompact(items []string, selected int, cw int) string {
	var lines []string
	for i, label := range items {
		var line string
		if i == selected {
			line = lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.StarYellow).
				Bold(true).
				Render(" ▸ " + label + " ")
		} else {
			line = lipgloss.NewStyle().
				Foreground(theme.Text).
				Render("   " + label)
		}
		lines = append(lines, line)
	}
	block := strings.Join(lines, "\n")

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(block)
}

// renderRocketBox renders the rocket centered in a box matching
// content width.
func renderRocketBox(variant RocketVariant, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(RenderRocket(variant))
}
