package study

import (
	"path/filepath"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/RdoLimaJunior/cosmus/internal/badges"
	"github.com/RdoLimaJunior/cosmus/internal/galaxy"
	"github.com/RdoLimaJunior/cosmus/internal/kvstore"
	"github.com/RdoLimaJunior/cosmus/internal/progression"
)

func newTestStudy(t *testing.T) (*StudyScreen, *progression.Store) {
	t.Helper()
	kv, err := kvstore.OpenJSON(filepath.Join(t.TempDir(), "cosmus.json"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { kv.Close() })

	evaluator, err := badges.NewEvaluator()
	if err != nil {
		t.Fatal(err)
	}

	body := galaxy.All()[0]
	progress := progression.NewStore(kv)
	return New(body, progress, evaluator, nil), progress
}

func TestCloseAwardsTimeXP(t *testing.T) {
	s, progress := newTestStudy(t)
	s.Init()
	s.startedAt = time.Now().Add(-45 * time.Second)

	s.Close()

	// 45s of study plus the first-completion bonus.
	want := 45*progression.TimeXPPerSecond + progression.CompletionBonusXP
	if got := progress.TotalXP(); got != want {
		t.Errorf("TotalXP = %d, want %d", got, want)
	}
	if !progress.IsCompleted(s.body.ID) {
		t.Error("expected module to be marked completed")
	}
}

func TestShortCloseAwardsOnlyTimeXP(t *testing.T) {
	s, progress := newTestStudy(t)
	s.Init()
	s.startedAt = time.Now().Add(-5 * time.Second)

	s.Close()

	if got := progress.TotalXP(); got != 5*progression.TimeXPPerSecond {
		t.Errorf("TotalXP = %d, want %d", got, 5*progression.TimeXPPerSecond)
	}
	if progress.IsCompleted(s.body.ID) {
		t.Error("short engagement should not complete the module")
	}
}

func TestCompletionBonusOnlyOnce(t *testing.T) {
	s, progress := newTestStudy(t)
	s.Init()
	s.startedAt = time.Now().Add(-40 * time.Second)
	s.Close()

	first := progress.TotalXP()

	s.Init()
	s.startedAt = time.Now().Add(-40 * time.Second)
	s.Close()

	got := progress.TotalXP() - first
	if want := 40 * progression.TimeXPPerSecond; got != want {
		t.Errorf("second close awarded %d XP, want %d (no repeat bonus)", got, want)
	}
}

func TestEscClosesChatBeforeScreen(t *testing.T) {
	s, _ := newTestStudy(t)
	s.Init()

	if s.WantsKey("esc") {
		t.Error("screen should not claim esc while chat is closed")
	}

	s.Update(tea.KeyPressMsg{Code: 'c'})
	if !s.chatOpen {
		t.Fatal("expected c to open the chat pane")
	}
	if !s.WantsKey("esc") {
		t.Error("screen should claim esc while chat is open")
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if s.chatOpen {
		t.Error("expected esc to close the chat pane")
	}
}

func TestOfflineAssistantFallsBack(t *testing.T) {
	s, _ := newTestStudy(t)
	s.Init()

	s.Update(tea.KeyPressMsg{Code: 'c'})
	for _, r := range "why" {
		s.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	if len(s.chatHistory) != 2 {
		t.Fatalf("history length = %d, want 2", len(s.chatHistory))
	}
	if s.chatHistory[1].Content == "" {
		t.Error("expected a fallback answer when no assistant is configured")
	}
}
