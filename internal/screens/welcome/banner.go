package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/vidya/internal/ui/theme"
)

const bannerArt = `
 ██╗   ██╗██╗██████╗ ██╗   ██╗ █████╗
 ██║   ██║██║██╔══██╗╚██╗ ██╔╝██╔══██╗
 ██║   ██║██║██║  ██║ ╚████╔╝ ███████║
 ╚██╗ ██╔╝██║██║  ██║  ╚██╔╝  ██╔══██║
  ╚████╔╝ ██║██████╔╝   ██║   ██║  ██║
   ╚═══╝  ╚═╝╚═════╝    ╚═╝   ╚═╝  ╚═╝`

const bannerCompact = "V I D Y A"

// RenderBanner returns the VIDYA banner styled in the primary color.
// Uses a compact fallback for terminals narrower than 42 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 42 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
