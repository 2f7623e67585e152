package components

import (
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/RdoLimaJunior/cosmus/internal/ui/theme"
)

// badgeNoticeTTL is how long a badge toast stays on screen before
// dismissing itself.
const badgeNoticeTTL = 5 * time.Second

// NoticeKind distinguishes the two celebration overlays.
type NoticeKind int

const (
	NoticeBadge NoticeKind = iota
	NoticeRankUp
)

// NoticeExpiredMsg is emitted when a timed notice should be dismissed.
type NoticeExpiredMsg struct {
	ID int
}

// Notice is a transient celebration banner. Badge notices expire on a
// timer; rank-up notices stay until any key is pressed.
type Notice struct {
	Kind     NoticeKind
	Title    string
	Subtitle string
	Icon     string

	id      int
	visible bool
}

var noticeSeq int

// NewBadgeNotice creates a toast for a newly earned badge.
func NewBadgeNotice(icon, name, description string) Notice {
	noticeSeq++
	return Notice{
		Kind:     NoticeBadge,
		Title:    fmt.Sprintf("%s Badge earned: %s", icon, name),
		Subtitle: description,
		Icon:     icon,
		id:       noticeSeq,
		visible:  true,
	}
}

// NewRankUpNotice creates a banner for a rank promotion.
func NewRankUpNotice(icon, rankName string) Notice {
	noticeSeq++
	return Notice{
		Kind:     NoticeRankUp,
		Title:    fmt.Sprintf("%s Rank up! You are now a %s", icon, rankName),
		Subtitle: "Press any key to continue",
		Icon:     icon,
		id:       noticeSeq,
		visible:  true,
	}
}

// Init starts the expiry timer for badge notices.
func (n Notice) Init() tea.Cmd {
	if n.Kind != NoticeBadge {
		return nil
	}
	id := n.id
	return tea.Tick(badgeNoticeTTL, func(time.Time) tea.Msg {
		return NoticeExpiredMsg{ID: id}
	})
}

// Update dismisses the notice when its timer fires or, for rank-up
// banners, when any key is pressed.
func (n Notice) Update(msg tea.Msg) (Notice, tea.Cmd) {
	if !n.visible {
		return n, nil
	}

	switch msg := msg.(type) {
	case NoticeExpiredMsg:
		if msg.ID == n.id {
			n.visible = false
		}
	case tea.KeyMsg:
		if n.Kind == NoticeRankUp {
			n.visible = false
		}
	}

	return n, nil
}

// Visible reports whether the notice should still be rendered.
func (n Notice) Visible() bool {
	return n.visible
}

// View renders the notice banner.
func (n Notice) View() string {
	if !n.visible {
		return ""
	}

	content := n.Title
	if n.Subtitle != "" {
		content += "\n" + n.Subtitle
	}

	if n.Kind == NoticeRankUp {
		return theme.NoticeRank.Render(content)
	}
	return theme.NoticeBadge.Render(content)
}
