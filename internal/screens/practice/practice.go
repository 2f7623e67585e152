package practice

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/RdoLimaJunior/cosmus/internal/badges"
	"github.com/RdoLimaJunior/cosmus/internal/galaxy"
	"github.com/RdoLimaJunior/cosmus/internal/performance"
	"github.com/RdoLimaJunior/cosmus/internal/progression"
	"github.com/RdoLimaJunior/cosmus/internal/router"
	"github.com/RdoLimaJunior/cosmus/internal/screen"
	"github.com/RdoLimaJunior/cosmus/internal/session"
	"github.com/RdoLimaJunior/cosmus/internal/ui/components"
	"github.com/RdoLimaJunior/cosmus/internal/ui/layout"
	"github.com/RdoLimaJunior/cosmus/internal/ui/theme"
)

// PracticeScreen runs a quiz session: subject selection, questions with
// feedback, then a summary.
type PracticeScreen struct {
	engine *session.Engine

	menu   components.Menu
	state  *session.State
	choice components.MultiChoice

	summary     *session.Summary
	confirmQuit bool
	errMsg      string
}

var _ screen.Screen = (*PracticeScreen)(nil)
var _ screen.KeyHintProvider = (*PracticeScreen)(nil)
var _ screen.KeyCatcher = (*PracticeScreen)(nil)

// New creates a new PracticeScreen.
func New(progress *progression.Store, evaluator *badges.Evaluator, history *performance.History) *PracticeScreen {
	p := &PracticeScreen{
		engine: session.NewEngine(progress, evaluator, history),
	}

	items := make([]components.MenuItem, 0, len(galaxy.AllSubjects()))
	for _, subject := range galaxy.AllSubjects() {
		subject := subject
		items = append(items, components.MenuItem{
			Label: strings.ToUpper(galaxy.SubjectDisplayName(subject)),
			Action: func() tea.Cmd {
				return p.startSession(subject)
			},
		})
	}
	p.menu = components.NewMenu(items)

	return p
}

func (p *PracticeScreen) Init() tea.Cmd {
	return nil
}

func (p *PracticeScreen) Title() string {
	return "Practice"
}

// WantsKey claims Esc mid-quiz so abandoning a session goes through the
// confirmation dialog.
func (p *PracticeScreen) WantsKey(key string) bool {
	return key == "esc" && p.state != nil && p.summary == nil
}

func (p *PracticeScreen) KeyHints() []layout.KeyHint {
	switch {
	case p.confirmQuit:
		return []layout.KeyHint{
			{Key: "Y", Description: "Abandon"},
			{Key: "N", Description: "Keep going"},
		}
	case p.summary != nil:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Done"},
		}
	case p.state != nil && p.state.Phase == session.PhaseFeedback:
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	case p.state != nil:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "A-D", Description: "Answer"},
			{Key: "Enter", Description: "Answer"},
			{Key: "Esc", Description: "Quit"},
		}
	default:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Esc", Description: "Back"},
		}
	}
}

func (p *PracticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, isKey := msg.(tea.KeyMsg)

	// Subject menu phase.
	if p.state == nil && p.errMsg == "" {
		var cmd tea.Cmd
		p.menu, cmd = p.menu.Update(msg)
		return p, cmd
	}

	if !isKey {
		return p, nil
	}
	key := kmsg.String()

	if p.errMsg != "" {
		return p, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if p.confirmQuit {
		switch key {
		case "y", "Y":
			return p, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			p.confirmQuit = false
		}
		return p, nil
	}

	if p.summary != nil {
		if key == "enter" || key == "esc" {
			return p, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return p, nil
	}

	switch p.state.Phase {
	case session.PhaseQuestion:
		if key == "esc" {
			p.confirmQuit = true
			return p, nil
		}
		return p.handleQuestionKey(kmsg)

	case session.PhaseFeedback:
		return p.advance()
	}

	return p, nil
}

// startSession begins a quiz for the chosen subject.
func (p *PracticeScreen) startSession(subject galaxy.Subject) tea.Cmd {
	state, err := p.engine.Start(subject)
	if err != nil {
		p.errMsg = err.Error()
		return nil
	}
	p.state = state
	p.choice = p.newChoice()
	return nil
}

func (p *PracticeScreen) newChoice() components.MultiChoice {
	q := p.state.CurrentQuestion()
	return components.NewMultiChoice(q.Prompt, q.Options, q.CorrectIndex)
}

func (p *PracticeScreen) handleQuestionKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	p.choice, cmd = p.choice.Update(msg)

	if !p.choice.Submitted {
		return p, cmd
	}

	if err := p.engine.HandleAnswer(p.state, p.choice.ChosenIndex); err != nil {
		p.errMsg = err.Error()
		return p, nil
	}

	return p, tea.Batch(cmd, p.drainNotices())
}

// advance moves to the next question or the summary.
func (p *PracticeScreen) advance() (screen.Screen, tea.Cmd) {
	if err := p.engine.Advance(p.state); err != nil {
		p.errMsg = err.Error()
		return p, nil
	}

	if p.state.Phase == session.PhaseSummary {
		summary := session.BuildSummary(p.state)
		p.summary = &summary
		return p, p.drainNotices()
	}

	p.choice = p.newChoice()
	return p, nil
}

// drainNotices converts pending badge and rank transitions into app
// messages.
func (p *PracticeScreen) drainNotices() tea.Cmd {
	var cmds []tea.Cmd

	if b := p.state.TakePendingBadge(); b != nil {
		earned := *b
		cmds = append(cmds, func() tea.Msg { return screen.BadgeEarnedMsg{Badge: earned} })
	}
	if r := p.state.TakePendingRankUp(); r != nil {
		to := r.To
		cmds = append(cmds, func() tea.Msg { return screen.RankUpMsg{Rank: to} })
	}

	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (p *PracticeScreen) View(width, height int) string {
	var content string

	switch {
	case p.errMsg != "":
		content = theme.Incorrect.Render("Something went wrong: "+p.errMsg) +
			"\n\n" + theme.Hint.Render("Press any key to go back")
	case p.state == nil:
		content = theme.Subtitle.Render("Choose your mission") + "\n\n" + p.menu.View()
	case p.confirmQuit:
		content = theme.Title.Render("Abandon this session?") +
			"\n\n" + theme.Hint.Render("Progress so far is kept, but the run will not count.")
	case p.summary != nil:
		content = p.renderSummary()
	case p.state.Phase == session.PhaseFeedback:
		content = p.renderFeedback()
	default:
		content = p.renderQuestion()
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func (p *PracticeScreen) renderQuestion() string {
	progress := fmt.Sprintf("Question %d of %d", p.state.Index+1, len(p.state.Questions))

	header := theme.Subtitle.Render(progress)
	if p.state.Streak >= 2 {
		header += "   " + lipgloss.NewStyle().Foreground(theme.Accent).
			Render(fmt.Sprintf("🔥 %d streak", p.state.Streak))
	}

	return header + "\n\n" + p.choice.View()
}

func (p *PracticeScreen) renderFeedback() string {
	q := p.state.CurrentQuestion()

	var verdict string
	if p.state.LastCorrect {
		verdict = theme.Correct.Render(fmt.Sprintf("✓ Correct!  +%d XP", session.XPPerCorrectAnswer))
	} else {
		verdict = theme.Incorrect.Render("✗ Not quite.")
	}

	return p.choice.View() + "\n" + verdict +
		"\n\n" + lipgloss.NewStyle().Foreground(theme.TextDim).Width(60).Render(q.Explanation)
}

func (p *PracticeScreen) renderSummary() string {
	s := p.summary

	rows := []string{
		theme.Title.Render("Mission complete!"),
		"",
		fmt.Sprintf("Subject      %s", galaxy.SubjectDisplayName(galaxy.Subject(s.Subject))),
		fmt.Sprintf("Score        %d / %d  (%.0f%%)", s.Correct, s.TotalQuestions, s.ScorePercent),
		fmt.Sprintf("XP earned    %d", s.XPEarned),
		fmt.Sprintf("Duration     %s", s.Duration.Round(time.Second)),
	}

	return theme.Card.Render(strings.Join(rows, "\n"))
}
