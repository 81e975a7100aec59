package home

import (
	"charm.land/lipgloss/v2"

	"github.com/syduan2016/space-math-adventure/internal/ui/theme"
)

// RocketVariant selects which rocket art to display.
type RocketVariant int

const (
	RocketIdle        RocketVariant = iota // Default cyan
	RocketCelebrating                      // gold flame after mastering a level
	RocketAlert                            // Orange, practice recommended
)

const rocketIdle = `   ▲
  ╱█╲
  │▓│
 ╱│█│╲
   ▀`

const rocketCelebrating = `   ▲
  ╱█╲
  │▓│
 ╱│█│╲
  ★▀★`

const rocketAlert = `   ▲
  ╱█╲ !
  │▓│
 ╱│█│╲
   ▀`

// RenderRocket returns the rocket ASCII art for the given variant.
func RenderRocket(variant ...RocketVariant) string {
	v := RocketIdle
	if len(variant) > 0 {
		v = variant[0]
	}

	var art string
	var fg = theme.Secondary

	switch v {
	case RocketCelebrating:
		art = rocketCelebrating
		fg = theme.StarYellow
	case RocketAlert:
		art = rocketAlert
		fg = theme.Accent
	default:
		art = rocketIdle
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}
