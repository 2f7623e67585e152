package study

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/RdoLimaJunior/cosmus/internal/assistant"
	"github.com/RdoLimaJunior/cosmus/internal/badges"
	"github.com/RdoLimaJunior/cosmus/internal/galaxy"
	"github.com/RdoLimaJunior/cosmus/internal/progression"
	"github.com/RdoLimaJunior/cosmus/internal/screen"
	"github.com/RdoLimaJunior/cosmus/internal/ui/components"
	"github.com/RdoLimaJunior/cosmus/internal/ui/layout"
	"github.com/RdoLimaJunior/cosmus/internal/ui/theme"
)

// StudyScreen presents one celestial body's learning content with an
// optional assistant chat pane. Time spent on the screen accrues XP
// when it is closed.
type StudyScreen struct {
	body      galaxy.CelestialBody
	progress  *progression.Store
	evaluator *badges.Evaluator
	asst      *assistant.Assistant

	startedAt time.Time
	scroll    int

	chatOpen    bool
	chatInput   components.TextInput
	chatHistory []assistant.ChatMessage
	streaming   bool
	events      chan chatEventMsg
}

var _ screen.Screen = (*StudyScreen)(nil)
var _ screen.KeyHintProvider = (*StudyScreen)(nil)
var _ screen.KeyCatcher = (*StudyScreen)(nil)
var _ screen.Closer = (*StudyScreen)(nil)

// New creates a StudyScreen for the given body. The assistant may be
// nil; the chat pane then shows an offline notice.
func New(body galaxy.CelestialBody, progress *progression.Store, evaluator *badges.Evaluator, asst *assistant.Assistant) *StudyScreen {
	return &StudyScreen{
		body:      body,
		progress:  progress,
		evaluator: evaluator,
		asst:      asst,
		chatInput: components.NewTextInput("Ask Cosmo anything...", 60),
	}
}

func (s *StudyScreen) Init() tea.Cmd {
	s.startedAt = progression.StartSession()
	return nil
}

func (s *StudyScreen) Title() string {
	return s.body.Name
}

func (s *StudyScreen) KeyHints() []layout.KeyHint {
	if s.chatOpen {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Send"},
			{Key: "Esc", Description: "Close chat"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "C", Description: "Chat"},
		{Key: "Esc", Description: "Back"},
	}
}

// WantsKey claims Esc while the chat pane is focused so closing the
// chat does not pop the screen.
func (s *StudyScreen) WantsKey(key string) bool {
	return s.chatOpen && key == "esc"
}

// Close converts the study time into XP, marks the module complete when
// the engagement qualified, and reports any badge or rank transitions.
func (s *StudyScreen) Close() tea.Cmd {
	already := s.progress.IsCompleted(s.body.ID)
	reward := progression.EndSession(s.startedAt, already)

	var cmds []tea.Cmd

	if xp := reward.TotalXP(); xp > 0 {
		rankUp, err := s.progress.AddXP(xp)
		if err == nil && rankUp != nil {
			to := rankUp.To
			cmds = append(cmds, func() tea.Msg { return screen.RankUpMsg{Rank: to} })
		}
	}

	if reward.CompletionBonus {
		_, _ = s.progress.CompleteModule(s.body.ID)

		stats := badges.Stats{ModulesCompleted: s.progress.CompletedModules()}
		if b := s.evaluator.Evaluate(stats, s.progress.EarnedBadges()); b != nil {
			_ = s.progress.EarnBadge(b.ID)
			earned := *b
			cmds = append(cmds, func() tea.Msg { return screen.BadgeEarnedMsg{Badge: earned} })
		}
	}

	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (s *StudyScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case chatEventMsg:
		return s.handleChatEvent(msg)
	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.chatOpen && !s.streaming {
		var cmd tea.Cmd
		s.chatInput, cmd = s.chatInput.Update(msg)
		return s, cmd
	}

	return s, nil
}

func (s *StudyScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.chatOpen {
		switch key {
		case "esc":
			s.chatOpen = false
			return s, nil
		case "enter":
			return s.sendPrompt()
		}
		if !s.streaming {
			var cmd tea.Cmd
			s.chatInput, cmd = s.chatInput.Update(msg)
			return s, cmd
		}
		return s, nil
	}

	switch key {
	case "up", "k":
		if s.scroll > 0 {
			s.scroll--
		}
	case "down", "j":
		s.scroll++
	case "c":
		s.chatOpen = true
		return s, s.chatInput.Init()
	}

	return s, nil
}

func (s *StudyScreen) View(width, height int) string {
	contentWidth := width - 8
	if contentWidth < 20 {
		contentWidth = 20
	}

	chatHeight := 0
	if s.chatOpen {
		chatHeight = height / 2
	}

	body := s.renderContent(contentWidth, height-chatHeight-3)

	header := fmt.Sprintf("%s  %s · %s",
		s.body.Type.Icon(), s.body.Name, galaxy.SubjectDisplayName(s.body.Subject))
	if s.progress.IsCompleted(s.body.ID) {
		header += "  " + theme.Correct.Render("✓ explored")
	}

	sections := []string{
		theme.Title.Render(header),
		body,
	}
	if s.chatOpen {
		sections = append(sections, s.renderChat(contentWidth, chatHeight))
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Padding(0, 4).
		Render(strings.Join(sections, "\n\n"))
}

// renderContent wraps the study text and shows a scroll window of it.
func (s *StudyScreen) renderContent(width, height int) string {
	if height < 3 {
		height = 3
	}

	text := s.body.Description + "\n\n" + s.body.Content
	wrapped := lipgloss.NewStyle().Width(width).Foreground(theme.Text).Render(text)
	lines := strings.Split(wrapped, "\n")

	maxScroll := len(lines) - height
	if maxScroll < 0 {
		maxScroll = 0
	}
	if s.scroll > maxScroll {
		s.scroll = maxScroll
	}

	end := s.scroll + height
	if end > len(lines) {
		end = len(lines)
	}
	window := strings.Join(lines[s.scroll:end], "\n")

	if maxScroll > 0 {
		window += "\n" + theme.Hint.Render(fmt.Sprintf("── %d/%d ──", s.scroll+height, len(lines)))
	}

	return window
}
