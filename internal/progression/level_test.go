package progression

import "testing"

func TestCalculateLevelThresholds(t *testing.T) {
	tests := []struct {
		xp          int
		wantLevel   int
		wantFloor   int
		wantCeiling int
	}{
		{0, 1, 0, 100},
		{99, 1, 0, 100},
		{100, 2, 100, 300},
		{299, 2, 100, 300},
		{300, 3, 300, 600},
		{599, 3, 300, 600},
		{600, 4, 600, 1000},
		{1000, 5, 1000, 1500},
	}

	for _, tt := range tests {
		got := CalculateLevel(tt.xp)
		if got.Level != tt.wantLevel || got.XPFloor != tt.wantFloor || got.XPCeiling != tt.wantCeiling {
			t.Errorf("CalculateLevel(%d) = {level %d, floor %d, ceiling %d}, want {%d, %d, %d}",
				tt.xp, got.Level, got.XPFloor, got.XPCeiling,
				tt.wantLevel, tt.wantFloor, tt.wantCeiling)
		}
	}
}

func TestCalculateLevelZeroXP(t *testing.T) {
	got := CalculateLevel(0)
	if got.Level != 1 {
		t.Errorf("level = %d, want 1", got.Level)
	}
	if got.Progress != 0 {
		t.Errorf("progress = %v, want 0", got.Progress)
	}
}

func TestCalculateLevelProgressBounds(t *testing.T) {
	for xp := 0; xp <= 5000; xp += 7 {
		got := CalculateLevel(xp)
		if got.Progress < 0 || got.Progress >= 1 {
			t.Fatalf("CalculateLevel(%d).Progress = %v, want [0,1)", xp, got.Progress)
		}
		if !(got.XPFloor <= xp && xp < got.XPCeiling) {
			t.Fatalf("CalculateLevel(%d): floor %d, ceiling %d violate floor <= xp < ceiling",
				xp, got.XPFloor, got.XPCeiling)
		}
	}
}

func TestCalculateLevelMonotonic(t *testing.T) {
	prev := CalculateLevel(0).Level
	for xp := 1; xp <= 10000; xp++ {
		level := CalculateLevel(xp).Level
		if level < prev {
			t.Fatalf("level decreased: CalculateLevel(%d) = %d, previous %d", xp, level, prev)
		}
		prev = level
	}
}

func TestCalculateLevelNegativeClamps(t *testing.T) {
	got := CalculateLevel(-50)
	if got.Level != 1 || got.Progress != 0 {
		t.Errorf("CalculateLevel(-50) = %+v, want level 1 progress 0", got)
	}
}
