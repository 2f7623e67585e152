package progression

import "time"

// Study session XP tuning.
const (
	TimeXPPerSecond      = 1   // XP accrued per second of study
	MaxTimeXP            = 120 // cap on time-based XP per session
	CompletionBonusXP    = 50  // one-time bonus for finishing a module
	MinCompletionSeconds = 30  // minimum engagement for the bonus
)

// StudyReward is the XP outcome of one study session.
type StudyReward struct {
	TimeXP          int
	CompletionBonus bool
}

// TotalXP returns the full XP award for the session.
func (r StudyReward) TotalXP() int {
	if r.CompletionBonus {
		return r.TimeXP + CompletionBonusXP
	}
	return r.TimeXP
}

// StartSession records the start of a study engagement.
func StartSession() time.Time {
	return time.Now()
}

// EndSession converts a session's elapsed time into a reward. The
// completion bonus is awarded once per module: it requires at least
// MinCompletionSeconds of engagement and that the module was not
// completed before.
//
// A zero start time means the session never properly started (the view
// was closed before the timer was recorded); that yields an empty
// reward, not an error.
func EndSession(start time.Time, alreadyCompleted bool) StudyReward {
	return endSessionAt(start, time.Now(), alreadyCompleted)
}

func endSessionAt(start, now time.Time, alreadyCompleted bool) StudyReward {
	if start.IsZero() || now.Before(start) {
		return StudyReward{}
	}

	elapsed := int(now.Sub(start).Seconds())
	timeXP := elapsed * TimeXPPerSecond
	if timeXP > MaxTimeXP {
		timeXP = MaxTimeXP
	}

	return StudyReward{
		TimeXP:          timeXP,
		CompletionBonus: !alreadyCompleted && elapsed >= MinCompletionSeconds,
	}
}
