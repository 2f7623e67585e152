package home

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/RdoLimaJunior/cosmus/internal/ui/theme"
)

var bannerLines = []string{
	` ██████╗ ██████╗ ███████╗███╗   ███╗██╗   ██╗███████╗`,
	`██╔════╝██╔═══██╗██╔════╝████╗ ████║██║   ██║██╔════╝`,
	`██║     ██║   ██║███████╗██╔████╔██║██║   ██║███████╗`,
	`██║     ██║   ██║╚════██║██║╚██╔╝██║██║   ██║╚════██║`,
	`╚██████╗╚██████╔╝███████║██║ ╚═╝ ██║╚██████╔╝███████║`,
	` ╚═════╝ ╚═════╝ ╚══════╝╚═╝     ╚═╝ ╚═════╝ ╚══════╝`,
}

const tagline = "· your galaxy of knowledge ·"

func renderBanner() string {
	banner := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Render(strings.Join(bannerLines, "\n"))

	sub := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Align(lipgloss.Center).
		Width(lipgloss.Width(banner)).
		Render(tagline)

	return banner + "\n" + sub
}
