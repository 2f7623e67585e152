package progression

import (
	"testing"
	"time"
)

func TestEndSessionAwardsTimeXPAndBonus(t *testing.T) {
	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	got := endSessionAt(start, start.Add(45*time.Second), false)
	if got.TimeXP != 45 {
		t.Errorf("timeXP = %d, want 45", got.TimeXP)
	}
	if !got.CompletionBonus {
		t.Error("expected completion bonus at 45s on first completion")
	}
	if got.TotalXP() != 95 {
		t.Errorf("totalXP = %d, want 95", got.TotalXP())
	}
}

func TestEndSessionNoBonusWhenAlreadyCompleted(t *testing.T) {
	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	got := endSessionAt(start, start.Add(45*time.Second), true)
	if got.TimeXP != 45 {
		t.Errorf("timeXP = %d, want 45", got.TimeXP)
	}
	if got.CompletionBonus {
		t.Error("bonus re-awarded for an already-completed module")
	}
	if got.TotalXP() != 45 {
		t.Errorf("totalXP = %d, want 45", got.TotalXP())
	}
}

func TestEndSessionCapsTimeXP(t *testing.T) {
	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	for _, already := range []bool{false, true} {
		got := endSessionAt(start, start.Add(200*time.Second), already)
		if got.TimeXP != MaxTimeXP {
			t.Errorf("timeXP = %d (already=%v), want %d", got.TimeXP, already, MaxTimeXP)
		}
	}
}

func TestEndSessionBelowMinimumDuration(t *testing.T) {
	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	got := endSessionAt(start, start.Add(29*time.Second), false)
	if got.CompletionBonus {
		t.Error("bonus awarded below the minimum duration")
	}
	if got.TimeXP != 29 {
		t.Errorf("timeXP = %d, want 29", got.TimeXP)
	}
}

func TestEndSessionZeroStartIsNoOp(t *testing.T) {
	got := endSessionAt(time.Time{}, time.Now(), false)
	if got.TimeXP != 0 || got.CompletionBonus {
		t.Errorf("reward = %+v for unstarted session, want zero reward", got)
	}
}

func TestEndSessionClockSkew(t *testing.T) {
	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	got := endSessionAt(start, start.Add(-time.Minute), false)
	if got.TimeXP != 0 || got.CompletionBonus {
		t.Errorf("reward = %+v with end before start, want zero reward", got)
	}
}
