package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/RdoLimaJunior/cosmus/internal/assistant"
	"github.com/RdoLimaJunior/cosmus/internal/badges"
	"github.com/RdoLimaJunior/cosmus/internal/kvstore"
	"github.com/RdoLimaJunior/cosmus/internal/performance"
	"github.com/RdoLimaJunior/cosmus/internal/progression"
	"github.com/RdoLimaJunior/cosmus/internal/router"
	"github.com/RdoLimaJunior/cosmus/internal/screen"
	"github.com/RdoLimaJunior/cosmus/internal/screens/home"
	"github.com/RdoLimaJunior/cosmus/internal/screens/practice"
	"github.com/RdoLimaJunior/cosmus/internal/screens/starmap"
	"github.com/RdoLimaJunior/cosmus/internal/screens/welcome"
	"github.com/RdoLimaJunior/cosmus/internal/ui/components"
	"github.com/RdoLimaJunior/cosmus/internal/ui/layout"
)

// Launch targets for subcommands that skip the home menu.
const (
	LaunchHome     = ""
	LaunchStarmap  = "starmap"
	LaunchPractice = "practice"
)

// Options carries the services the UI runs on. Assistant may be nil
// when no LLM provider is configured.
type Options struct {
	Progress  *progression.Store
	Evaluator *badges.Evaluator
	History   *performance.History
	Assistant *assistant.Assistant
	KV        kvstore.Store

	// Launch selects the screen pushed on top of home at startup.
	Launch string
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router   *router.Router
	progress *progression.Store
	notice   components.Notice
	initCmd  tea.Cmd
	width    int
	height   int
}

// newAppModel creates a new AppModel. The default launch plays the
// welcome splash before home; subcommand launches skip the splash and
// push their target on top of home.
func newAppModel(opts Options) AppModel {
	homeFactory := func() screen.Screen {
		return home.New(opts.Progress, opts.Evaluator, opts.History, opts.Assistant, opts.KV)
	}

	var r *router.Router
	var initCmd tea.Cmd
	switch opts.Launch {
	case LaunchStarmap:
		r = router.New(homeFactory())
		initCmd = r.Push(starmap.New(opts.Progress, opts.Evaluator, opts.Assistant))
	case LaunchPractice:
		r = router.New(homeFactory())
		initCmd = r.Push(practice.New(opts.Progress, opts.Evaluator, opts.History))
	default:
		splash := welcome.New(homeFactory)
		r = router.New(splash)
		initCmd = splash.Init()
	}

	return AppModel{
		router:   r,
		progress: opts.Progress,
		initCmd:  initCmd,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.initCmd
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case screen.BadgeEarnedMsg:
		m.notice = components.NewBadgeNotice(
			msg.Badge.Category.Icon(), msg.Badge.Title, msg.Badge.Description)
		return m, m.notice.Init()

	case screen.RankUpMsg:
		m.notice = components.NewRankUpNotice(msg.Rank.Icon, msg.Rank.Name)
		return m, m.notice.Init()

	case components.NoticeExpiredMsg:
		var cmd tea.Cmd
		m.notice, cmd = m.notice.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		// A rank-up banner swallows the first key press.
		if m.notice.Visible() && m.notice.Kind == components.NoticeRankUp {
			var cmd tea.Cmd
			m.notice, cmd = m.notice.Update(msg)
			return m, cmd
		}

		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if c, ok := m.router.Active().(screen.KeyCatcher); ok && c.WantsKey("esc") {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	level := m.progress.Level()
	rank := m.progress.Rank()
	header := layout.RenderHeader(title, layout.HeaderStats{
		Level:    level.Level,
		RankName: rank.Name,
		RankIcon: rank.Icon,
		XP:       m.progress.TotalXP(),
	}, m.width)

	footer := layout.RenderFooter(m.footerHints(active), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)

	if m.notice.Visible() {
		banner := lipgloss.NewStyle().
			Width(m.width).
			Align(lipgloss.Center).
			Render(m.notice.View())
		bannerHeight := lipgloss.Height(banner)
		body := lipgloss.NewStyle().
			Width(m.width).
			Height(contentHeight - bannerHeight).
			Render(content)
		content = banner + "\n" + body
	}

	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if p, ok := active.(screen.KeyHintProvider); ok {
		if hints := p.KeyHints(); len(hints) > 0 {
			return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
		}
	}

	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
