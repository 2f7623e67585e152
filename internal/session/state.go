package session

import (
	"time"

	"github.com/RdoLimaJunior/cosmus/internal/badges"
	"github.com/RdoLimaJunior/cosmus/internal/galaxy"
	"github.com/RdoLimaJunior/cosmus/internal/progression"
)

// Phase is the current phase of a practice session.
type Phase int

const (
	PhaseQuestion Phase = iota // waiting for an answer
	PhaseFeedback              // showing answer feedback
	PhaseSummary               // session over, showing results
)

// State tracks one practice run through a subject's questions.
type State struct {
	ID      string
	Subject galaxy.Subject

	Questions []galaxy.Question
	Index     int

	Streak  int
	Correct int

	StartTime time.Time
	Phase     Phase

	// SelectedOption is the answer index chosen for the current
	// question, or -1 while unanswered.
	SelectedOption int
	LastCorrect    bool

	// XPAwarded accumulates all XP granted during the session,
	// including the finish bonus.
	XPAwarded int

	// PendingBadge is a badge earned by the latest answer (or the
	// finish), waiting for the UI to surface it.
	PendingBadge *badges.Badge

	// PendingRankUp is set when an XP award crossed a rank boundary.
	PendingRankUp *progression.RankUp
}

// CurrentQuestion returns the active question.
func (s *State) CurrentQuestion() galaxy.Question {
	return s.Questions[s.Index]
}

// ScorePercent is the share of questions answered correctly so far,
// as a percentage of the full session length.
func (s *State) ScorePercent() float64 {
	if len(s.Questions) == 0 {
		return 0
	}
	return float64(s.Correct) / float64(len(s.Questions)) * 100
}

// TakePendingBadge returns and clears the pending badge.
func (s *State) TakePendingBadge() *badges.Badge {
	b := s.PendingBadge
	s.PendingBadge = nil
	return b
}

// TakePendingRankUp returns and clears the pending rank-up.
func (s *State) TakePendingRankUp() *progression.RankUp {
	r := s.PendingRankUp
	s.PendingRankUp = nil
	return r
}
