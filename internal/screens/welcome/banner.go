package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/syduan2016/space-math-adventure/internal/ui/theme"
)

const bannerArt = `
 ███████╗██████╗  █████╗  ██████╗███████╗    ███╗   ███╗ █████╗ ████████╗██╗  ██╗
 ██╔════╝██╔══██╗██╔══██╗██╔════╝██╔════╝    ████╗ ████║██╔══██╗╚══██╔══╝██║  ██║
 ███████╗██████╔╝███████║██║     █████╗      ██╔████╔██║███████║   ██║   ███████║
 ╚════██║██╔═══╝ ██╔══██║██║     ██╔══╝      ██║╚██╔╝██║██╔══██║   ██║   ██╔══██║
 ███████║██║     ██║  ██║╚██████╗███████╗    ██║ ╚═╝ ██║██║  ██║   ██║   ██║  ██║
 ╚══════╝╚═╝     ╚═╝  ╚═╝ ╚═════╝╚══════╝    ╚═╝     ╚═╝╚═╝  ╚═╝   ╚═╝   ╚═╝  ╚═╝`

const bannerCompact = "S P A C E  M A T H"

// RenderBanner returns the title banner styled in the primary color.
// Uses a compact fallback for terminals narrower than 84 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 84 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
