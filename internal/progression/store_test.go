package progression

import (
	"path/filepath"
	"testing"

	"github.com/RdoLimaJunior/cosmus/internal/kvstore"
)

func newTestStore(t *testing.T) (*Store, kvstore.Store) {
	t.Helper()
	kv, err := kvstore.OpenJSON(filepath.Join(t.TempDir(), "store.json"))
	if err != nil {
		t.Fatalf("open kv store: %v", err)
	}
	t.Cleanup(func() { kv.Close() })
	return NewStore(kv), kv
}

func TestAddXPAccumulates(t *testing.T) {
	s, _ := newTestStore(t)

	if _, err := s.AddXP(100); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := s.AddXP(100); err != nil {
		t.Fatalf("add: %v", err)
	}
	// Not idempotent by design: each call is a distinct reward.
	if got := s.TotalXP(); got != 200 {
		t.Errorf("totalXP = %d, want 200", got)
	}
}

func TestAddXPPersists(t *testing.T) {
	s, kv := newTestStore(t)

	if _, err := s.AddXP(450); err != nil {
		t.Fatalf("add: %v", err)
	}

	reloaded := NewStore(kv)
	if got := reloaded.TotalXP(); got != 450 {
		t.Errorf("reloaded totalXP = %d, want 450", got)
	}
}

func TestAddXPZeroIsNoTransition(t *testing.T) {
	s, _ := newTestStore(t)

	up, err := s.AddXP(0)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if up != nil {
		t.Errorf("rank-up on zero XP: %+v", up)
	}
	if got := s.TotalXP(); got != 0 {
		t.Errorf("totalXP = %d, want 0", got)
	}
}

func TestAddXPRejectsNegative(t *testing.T) {
	s, _ := newTestStore(t)

	if _, err := s.AddXP(-10); err == nil {
		t.Error("expected error for negative amount")
	}
	if got := s.TotalXP(); got != 0 {
		t.Errorf("totalXP = %d after rejected add, want 0", got)
	}
}

func TestAddXPDetectsRankUp(t *testing.T) {
	s, _ := newTestStore(t)

	// Level 5 (Pilot) begins at cumulative 1500 XP.
	up, err := s.AddXP(1499)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if up != nil {
		t.Fatalf("unexpected rank-up below Pilot threshold: %+v", up)
	}

	up, err = s.AddXP(1)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if up == nil {
		t.Fatal("expected rank-up crossing level 5")
	}
	if up.From.Name != "Space Cadet" || up.To.Name != "Pilot" {
		t.Errorf("rank-up = %s → %s, want Space Cadet → Pilot", up.From.Name, up.To.Name)
	}

	// Further awards within the same rank do not re-fire.
	up, _ = s.AddXP(10)
	if up != nil {
		t.Errorf("rank-up re-fired within rank: %+v", up)
	}
}

func TestCorruptLedgerFallsBackToZero(t *testing.T) {
	kv, err := kvstore.OpenJSON(filepath.Join(t.TempDir(), "store.json"))
	if err != nil {
		t.Fatal(err)
	}
	defer kv.Close()

	// XP stored as a string is corrupt relative to the contract.
	if err := kv.Put(kvstore.KeyXP, "lots"); err != nil {
		t.Fatal(err)
	}

	s := NewStore(kv)
	if got := s.TotalXP(); got != 0 {
		t.Errorf("totalXP = %d on corrupt ledger, want 0", got)
	}
}

func TestEarnBadgeIdempotent(t *testing.T) {
	s, kv := newTestStore(t)

	if err := s.EarnBadge("streak-3"); err != nil {
		t.Fatalf("earn: %v", err)
	}
	if err := s.EarnBadge("streak-3"); err != nil {
		t.Fatalf("earn again: %v", err)
	}

	if got := s.EarnedBadges(); len(got) != 1 {
		t.Errorf("earned = %v, want exactly one entry", got)
	}
	if !s.HasBadge("streak-3") {
		t.Error("HasBadge(streak-3) = false")
	}

	reloaded := NewStore(kv)
	if !reloaded.HasBadge("streak-3") {
		t.Error("earned badge did not survive reload")
	}
}

func TestCompleteModuleFirstTimeOnly(t *testing.T) {
	s, _ := newTestStore(t)

	first, err := s.CompleteModule("sol")
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if !first {
		t.Error("first completion not reported")
	}

	first, err = s.CompleteModule("sol")
	if err != nil {
		t.Fatalf("complete again: %v", err)
	}
	if first {
		t.Error("repeat completion reported as first")
	}
	if got := s.CompletedModules(); got != 1 {
		t.Errorf("completed = %d, want 1", got)
	}
}

func TestToggleFavorite(t *testing.T) {
	s, _ := newTestStore(t)

	on, err := s.ToggleFavorite("mars")
	if err != nil || !on {
		t.Fatalf("toggle on = (%v, %v), want (true, nil)", on, err)
	}
	if !s.IsFavorite("mars") {
		t.Error("mars not favorited")
	}

	on, err = s.ToggleFavorite("mars")
	if err != nil || on {
		t.Fatalf("toggle off = (%v, %v), want (false, nil)", on, err)
	}
	if s.IsFavorite("mars") {
		t.Error("mars still favorited after toggle off")
	}
}

func TestReset(t *testing.T) {
	s, kv := newTestStore(t)

	_, _ = s.AddXP(500)
	_ = s.EarnBadge("streak-3")
	_, _ = s.CompleteModule("sol")

	if err := s.Reset(); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if s.TotalXP() != 0 || len(s.EarnedBadges()) != 0 || s.CompletedModules() != 0 {
		t.Error("state not cleared after reset")
	}

	reloaded := NewStore(kv)
	if reloaded.TotalXP() != 0 {
		t.Error("reset not persisted")
	}
}
