package starmap

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/RdoLimaJunior/cosmus/internal/assistant"
	"github.com/RdoLimaJunior/cosmus/internal/badges"
	"github.com/RdoLimaJunior/cosmus/internal/galaxy"
	"github.com/RdoLimaJunior/cosmus/internal/progression"
	"github.com/RdoLimaJunior/cosmus/internal/router"
	"github.com/RdoLimaJunior/cosmus/internal/screen"
	"github.com/RdoLimaJunior/cosmus/internal/screens/study"
	"github.com/RdoLimaJunior/cosmus/internal/ui/layout"
	"github.com/RdoLimaJunior/cosmus/internal/ui/theme"
)

// StarmapScreen lists every celestial body with its unlock and
// completion state. Selecting an unlocked body opens its study module.
type StarmapScreen struct {
	progress  *progression.Store
	evaluator *badges.Evaluator
	asst      *assistant.Assistant

	bodies   []galaxy.CelestialBody
	selected int
}

var _ screen.Screen = (*StarmapScreen)(nil)
var _ screen.KeyHintProvider = (*StarmapScreen)(nil)

// New creates a new StarmapScreen.
func New(progress *progression.Store, evaluator *badges.Evaluator, asst *assistant.Assistant) *StarmapScreen {
	return &StarmapScreen{
		progress:  progress,
		evaluator: evaluator,
		asst:      asst,
		bodies:    galaxy.All(),
	}
}

func (s *StarmapScreen) Init() tea.Cmd {
	return nil
}

func (s *StarmapScreen) Title() string {
	return "Star Map"
}

func (s *StarmapScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Study"},
		{Key: "F", Description: "Favorite"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *StarmapScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(s.bodies)-1 {
			s.selected++
		}
	case "f":
		body := s.bodies[s.selected]
		_, _ = s.progress.ToggleFavorite(body.ID)
	case "enter":
		body := s.bodies[s.selected]
		if !galaxy.IsUnlocked(body.ID, s.completedMap()) {
			return s, nil
		}
		return s, func() tea.Msg {
			return router.PushScreenMsg{
				Screen: study.New(body, s.progress, s.evaluator, s.asst),
			}
		}
	}

	return s, nil
}

func (s *StarmapScreen) View(width, height int) string {
	completed := s.completedMap()

	var b strings.Builder
	b.WriteString(theme.Subtitle.Render("Chart your course through the galaxy") + "\n\n")

	for i, body := range s.bodies {
		b.WriteString(s.renderBody(body, completed, i == s.selected) + "\n")
	}

	b.WriteString("\n" + theme.Hint.Render(s.statusLine(completed)))

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(b.String())
}

func (s *StarmapScreen) renderBody(body galaxy.CelestialBody, completed map[string]bool, selected bool) string {
	unlocked := galaxy.IsUnlocked(body.ID, completed)

	status := "◇"
	switch {
	case completed[body.ID]:
		status = "✓"
	case !unlocked:
		status = "🔒"
	}

	fav := " "
	if s.progress.IsFavorite(body.ID) {
		fav = "★"
	}

	cursor := "  "
	if selected {
		cursor = "▸ "
	}

	line := fmt.Sprintf("%s%s %s %-10s %-10s %s",
		cursor, status, body.Type.Icon(), body.Name,
		galaxy.SubjectDisplayName(body.Subject), fav)

	switch {
	case !unlocked:
		return theme.Locked.Render(line)
	case completed[body.ID]:
		return theme.Correct.Render(line)
	case selected:
		return theme.Selected.Render(line)
	default:
		return theme.Unselected.Render(line)
	}
}

func (s *StarmapScreen) statusLine(completed map[string]bool) string {
	done := 0
	for _, body := range s.bodies {
		if completed[body.ID] {
			done++
		}
	}
	return fmt.Sprintf("%d of %d worlds explored", done, len(s.bodies))
}

func (s *StarmapScreen) completedMap() map[string]bool {
	completed := make(map[string]bool, len(s.bodies))
	for _, body := range s.bodies {
		if s.progress.IsCompleted(body.ID) {
			completed[body.ID] = true
		}
	}
	return completed
}
