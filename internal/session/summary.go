package session

import "time"

// Summary holds the data displayed when a session ends.
type Summary struct {
	Subject        string
	Duration       time.Duration
	TotalQuestions int
	Correct        int
	ScorePercent   float64
	XPEarned       int
}

// BuildSummary creates a Summary from a finished session.
func BuildSummary(s *State) Summary {
	return Summary{
		Subject:        string(s.Subject),
		Duration:       time.Since(s.StartTime),
		TotalQuestions: len(s.Questions),
		Correct:        s.Correct,
		ScorePercent:   s.ScorePercent(),
		XPEarned:       s.XPAwarded,
	}
}
