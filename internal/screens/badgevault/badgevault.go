package badgevault

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/RdoLimaJunior/cosmus/internal/badges"
	"github.com/RdoLimaJunior/cosmus/internal/progression"
	"github.com/RdoLimaJunior/cosmus/internal/screen"
	"github.com/RdoLimaJunior/cosmus/internal/ui/layout"
	"github.com/RdoLimaJunior/cosmus/internal/ui/theme"
)

// BadgeVaultScreen lists the badge catalog with earned state.
type BadgeVaultScreen struct {
	progress *progression.Store
	catalog  []badges.Badge
}

var _ screen.Screen = (*BadgeVaultScreen)(nil)
var _ screen.KeyHintProvider = (*BadgeVaultScreen)(nil)

// New creates a new BadgeVaultScreen.
func New(progress *progression.Store) *BadgeVaultScreen {
	return &BadgeVaultScreen{
		progress: progress,
		catalog:  badges.MustCatalog(),
	}
}

func (b *BadgeVaultScreen) Init() tea.Cmd {
	return nil
}

func (b *BadgeVaultScreen) Title() string {
	return "Badge Vault"
}

func (b *BadgeVaultScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (b *BadgeVaultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return b, nil
}

func (b *BadgeVaultScreen) View(width, height int) string {
	earned := 0
	var rows []string

	for _, badge := range b.catalog {
		if b.progress.HasBadge(badge.ID) {
			earned++
			rows = append(rows, theme.Correct.Render(
				fmt.Sprintf("%s %-22s", badge.Category.Icon(), badge.Title))+
				theme.Body.Render(badge.Description))
		} else {
			rows = append(rows, theme.Locked.Render(
				fmt.Sprintf("🔒 %-22s%s", badge.Title, badge.Description)))
		}
	}

	header := theme.Subtitle.Render(fmt.Sprintf("%d of %d badges earned", earned, len(b.catalog)))
	content := header + "\n\n" + theme.Card.Render(strings.Join(rows, "\n"))

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
