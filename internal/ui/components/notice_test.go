package components

import (
	"testing"

	tea "charm.land/bubbletea/v2"
)

func TestBadgeNoticeExpiresOnOwnTimer(t *testing.T) {
	n := NewBadgeNotice("🎯", "Hot Streak", "3 correct in a row")
	other := NewBadgeNotice("🎯", "On Fire", "5 correct in a row")

	if !n.Visible() {
		t.Fatal("new notice should be visible")
	}

	// A timer belonging to a different notice is ignored.
	n, _ = n.Update(NoticeExpiredMsg{ID: other.id})
	if !n.Visible() {
		t.Fatal("notice dismissed by another notice's timer")
	}

	n, _ = n.Update(NoticeExpiredMsg{ID: n.id})
	if n.Visible() {
		t.Fatal("notice should expire on its own timer")
	}
}

func TestBadgeNoticeIgnoresKeys(t *testing.T) {
	n := NewBadgeNotice("🎯", "Hot Streak", "3 correct in a row")
	n, _ = n.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !n.Visible() {
		t.Error("badge toasts should not dismiss on key press")
	}
}

func TestRankUpNoticeDismissedByAnyKey(t *testing.T) {
	n := NewRankUpNotice("⭐", "Pilot")

	if cmd := n.Init(); cmd != nil {
		t.Error("rank banners should not start a timer")
	}

	n, _ = n.Update(tea.KeyPressMsg{Code: 'x'})
	if n.Visible() {
		t.Error("rank banner should dismiss on any key")
	}
}
