package progression

// Level describes where an XP total sits on the leveling curve.
// It is derived, never stored: recompute it from the XP ledger on
// every read so a future curve change can't leave stale values behind.
type Level struct {
	Level     int     // 1-based
	XPFloor   int     // cumulative XP at which this level began
	XPCeiling int     // cumulative XP required to enter the next level
	Progress  float64 // position within the level, 0..1
}

// CalculateLevel maps accumulated XP to a Level.
//
// Level 1 starts at 0 XP. Entering level N+1 costs (N+1)*100 XP on top
// of the previous cumulative threshold, so the ceilings run
// 100, 300, 600, 1000, … (level*100 added per step).
func CalculateLevel(xp int) Level {
	if xp < 0 {
		xp = 0
	}

	level := 1
	ceiling := 100
	floor := 0

	for xp >= ceiling {
		floor = ceiling
		level++
		ceiling += level * 100
	}

	progress := 0.0
	if ceiling > floor {
		progress = float64(xp-floor) / float64(ceiling-floor)
	}

	return Level{
		Level:     level,
		XPFloor:   floor,
		XPCeiling: ceiling,
		Progress:  progress,
	}
}
