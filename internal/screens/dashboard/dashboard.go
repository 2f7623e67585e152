package dashboard

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/RdoLimaJunior/cosmus/internal/assistant"
	"github.com/RdoLimaJunior/cosmus/internal/galaxy"
	"github.com/RdoLimaJunior/cosmus/internal/kvstore"
	"github.com/RdoLimaJunior/cosmus/internal/llm"
	"github.com/RdoLimaJunior/cosmus/internal/performance"
	"github.com/RdoLimaJunior/cosmus/internal/progression"
	"github.com/RdoLimaJunior/cosmus/internal/screen"
	"github.com/RdoLimaJunior/cosmus/internal/ui/components"
	"github.com/RdoLimaJunior/cosmus/internal/ui/layout"
	"github.com/RdoLimaJunior/cosmus/internal/ui/theme"
)

// summaryReadyMsg delivers the generated performance summary.
type summaryReadyMsg struct {
	text string
	err  error
}

// DashboardScreen shows progression, per-subject performance and an
// optional AI-written recap of recent sessions.
type DashboardScreen struct {
	progress *progression.Store
	history  *performance.History
	asst     *assistant.Assistant
	kv       kvstore.Store

	summary    string
	generating bool
}

var _ screen.Screen = (*DashboardScreen)(nil)
var _ screen.KeyHintProvider = (*DashboardScreen)(nil)

// New creates a new DashboardScreen.
func New(progress *progression.Store, history *performance.History, asst *assistant.Assistant, kv kvstore.Store) *DashboardScreen {
	return &DashboardScreen{
		progress: progress,
		history:  history,
		asst:     asst,
		kv:       kv,
	}
}

func (d *DashboardScreen) Init() tea.Cmd {
	return nil
}

func (d *DashboardScreen) Title() string {
	return "Mission Log"
}

func (d *DashboardScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "S", Description: "AI recap"},
		{Key: "Esc", Description: "Back"},
	}
}

func (d *DashboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case summaryReadyMsg:
		d.generating = false
		if msg.err != nil {
			d.summary = assistant.SummaryFallback
		} else {
			d.summary = msg.text
		}
		return d, nil

	case tea.KeyMsg:
		if msg.String() == "s" && !d.generating {
			return d, d.generateSummary()
		}
	}

	return d, nil
}

// generateSummary asks the assistant for a recap of recorded sessions.
func (d *DashboardScreen) generateSummary() tea.Cmd {
	if d.asst == nil || d.history.Count() == 0 {
		d.summary = assistant.SummaryFallback
		return nil
	}

	d.generating = true
	asst := d.asst
	records := d.history.All()

	return func() tea.Msg {
		text, err := asst.PerformanceSummary(context.Background(), records, "")
		return summaryReadyMsg{text: text, err: err}
	}
}

func (d *DashboardScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, d.renderProgression())
	sections = append(sections, d.renderPerformance())
	sections = append(sections, d.renderRecap())
	if usage := d.renderUsage(); usage != "" {
		sections = append(sections, usage)
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(strings.Join(sections, "\n\n"))
}

func (d *DashboardScreen) renderProgression() string {
	level := d.progress.Level()
	rank := d.progress.Rank()

	bar := components.NewProgressBar(
		fmt.Sprintf("Level %d", level.Level), level.Progress*100, false, 30,
	)

	lines := []string{
		fmt.Sprintf("%s %s    %d XP total", rank.Icon, rank.Name, d.progress.TotalXP()),
		bar.View() + theme.Hint.Render(fmt.Sprintf("  %d / %d XP", d.progress.TotalXP()-level.XPFloor, level.XPCeiling-level.XPFloor)),
		fmt.Sprintf("Worlds explored: %d    Badges: %d",
			d.progress.CompletedModules(), len(d.progress.EarnedBadges())),
	}

	return theme.Card.Render(strings.Join(lines, "\n"))
}

func (d *DashboardScreen) renderPerformance() string {
	if d.history.Count() == 0 {
		return theme.Card.Render(theme.Hint.Render("No practice sessions recorded yet. Complete a mission to see your stats."))
	}

	averages := d.history.AverageBySubject()

	var lines []string
	for _, subject := range galaxy.AllSubjects() {
		avg, ok := averages[subject]
		if !ok {
			continue
		}
		bar := components.NewProgressBar(
			fmt.Sprintf("%-10s", galaxy.SubjectDisplayName(subject)), avg, true, 24,
		)
		lines = append(lines, bar.View())
	}

	if strongest, ok := d.history.Strongest(); ok {
		lines = append(lines, "")
		lines = append(lines, fmt.Sprintf("Strongest subject: %s", galaxy.SubjectDisplayName(strongest)))
	}
	if trend, ok := d.history.Trend(); ok {
		arrow := "→"
		if trend > 0 {
			arrow = "↑"
		} else if trend < 0 {
			arrow = "↓"
		}
		lines = append(lines, fmt.Sprintf("Trend: %s %+.0f points over %d sessions", arrow, trend, d.history.Count()))
	}

	return theme.Card.Render(strings.Join(lines, "\n"))
}

func (d *DashboardScreen) renderRecap() string {
	switch {
	case d.generating:
		return theme.Card.Render(theme.Hint.Render("Cosmo is reviewing your missions..."))
	case d.summary != "":
		return theme.Card.Render(lipgloss.NewStyle().Width(60).Foreground(theme.Text).Render(d.summary))
	default:
		return theme.Hint.Render("Press S for an AI recap of your progress")
	}
}

// renderUsage surfaces accumulated LLM token and cost counters when any
// requests have been made.
func (d *DashboardScreen) renderUsage() string {
	stats := llm.LoadUsageStats(d.kv)
	if stats.Requests == 0 {
		return ""
	}

	return theme.Hint.Render(fmt.Sprintf(
		"Assistant usage: %d requests · %d in / %d out tokens · $%.4f",
		stats.Requests, stats.InputTokens, stats.OutputTokens, stats.CostUSD,
	))
}
