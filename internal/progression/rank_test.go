package progression

import "testing"

func TestResolveRank(t *testing.T) {
	tests := []struct {
		level int
		want  string
	}{
		{0, "Space Cadet"},
		{1, "Space Cadet"},
		{4, "Space Cadet"},
		{5, "Pilot"},
		{9, "Pilot"},
		{10, "Captain"},
		{14, "Captain"},
		{15, "Star Commander"},
		{99, "Star Commander"},
	}

	for _, tt := range tests {
		got := ResolveRank(tt.level)
		if got.Name != tt.want {
			t.Errorf("ResolveRank(%d) = %q, want %q", tt.level, got.Name, tt.want)
		}
	}
}

func TestResolveRankMonotonic(t *testing.T) {
	prev := ResolveRank(0).MinLevel
	for level := 1; level <= 40; level++ {
		got := ResolveRank(level).MinLevel
		if got < prev {
			t.Fatalf("rank regressed at level %d: minLevel %d after %d", level, got, prev)
		}
		prev = got
	}
}

func TestRankTableCoversLevelZero(t *testing.T) {
	table := Ranks()
	if len(table) == 0 {
		t.Fatal("empty rank table")
	}
	if table[0].MinLevel > 1 {
		t.Errorf("lowest rank starts at level %d, want 0 or 1", table[0].MinLevel)
	}
	for i := 1; i < len(table); i++ {
		if table[i].MinLevel <= table[i-1].MinLevel {
			t.Errorf("rank table not ascending at %d: %d <= %d",
				i, table[i].MinLevel, table[i-1].MinLevel)
		}
	}
}
