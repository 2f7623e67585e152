package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/RdoLimaJunior/cosmus/internal/assistant"
	"github.com/RdoLimaJunior/cosmus/internal/badges"
	"github.com/RdoLimaJunior/cosmus/internal/kvstore"
	"github.com/RdoLimaJunior/cosmus/internal/performance"
	"github.com/RdoLimaJunior/cosmus/internal/progression"
	"github.com/RdoLimaJunior/cosmus/internal/router"
	"github.com/RdoLimaJunior/cosmus/internal/screen"
	"github.com/RdoLimaJunior/cosmus/internal/screens/badgevault"
	"github.com/RdoLimaJunior/cosmus/internal/screens/dashboard"
	"github.com/RdoLimaJunior/cosmus/internal/screens/practice"
	"github.com/RdoLimaJunior/cosmus/internal/screens/starmap"
	"github.com/RdoLimaJunior/cosmus/internal/ui/components"
	"github.com/RdoLimaJunior/cosmus/internal/ui/theme"
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	menu     components.Menu
	progress *progression.Store
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen. The assistant may be nil when no LLM
// provider is configured; downstream screens degrade gracefully.
func New(progress *progression.Store, evaluator *badges.Evaluator, history *performance.History, asst *assistant.Assistant, kv kvstore.Store) *HomeScreen {
	items := []components.MenuItem{
		{Label: "EXPLORE GALAXY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: starmap.New(progress, evaluator, asst)}
			}
		}},
		{Label: "PRACTICE", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: practice.New(progress, evaluator, history)}
			}
		}},
		{Label: "MISSION LOG", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: dashboard.New(progress, history, asst, kv)}
			}
		}},
		{Label: "BADGE VAULT", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: badgevault.New(progress)}
			}
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:     components.NewMenu(items),
		progress: progress,
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
	var sections []string

	sections = append(sections, renderBanner())
	sections = append(sections, h.renderStats())
	sections = append(sections, h.menu.View())

	content := strings.Join(sections, "\n\n")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) renderStats() string {
	level := h.progress.Level()
	rank := h.progress.Rank()

	parts := []string{
		lipgloss.NewStyle().Foreground(theme.Secondary).Render(fmt.Sprintf("Level %d", level.Level)),
		lipgloss.NewStyle().Foreground(theme.Accent).Render(fmt.Sprintf("%s %s", rank.Icon, rank.Name)),
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("%d XP", h.progress.TotalXP())),
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("%d badges", len(h.progress.EarnedBadges()))),
	}

	return theme.Card.Render(strings.Join(parts, "   "))
}
