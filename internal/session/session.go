package session

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/RdoLimaJunior/cosmus/internal/badges"
	"github.com/RdoLimaJunior/cosmus/internal/galaxy"
	"github.com/RdoLimaJunior/cosmus/internal/performance"
	"github.com/RdoLimaJunior/cosmus/internal/progression"
)

const (
	// XPPerCorrectAnswer is granted immediately for each correct answer.
	XPPerCorrectAnswer = 10
	// FinishBonusPerPoint multiplies the correct-answer count into the
	// end-of-session XP bonus.
	FinishBonusPerPoint = 5
)

// Engine runs practice sessions, wiring answers into XP, badges, and
// the performance history.
type Engine struct {
	progress  *progression.Store
	evaluator *badges.Evaluator
	history   *performance.History
}

// NewEngine creates a practice session engine.
func NewEngine(progress *progression.Store, evaluator *badges.Evaluator, history *performance.History) *Engine {
	return &Engine{progress: progress, evaluator: evaluator, history: history}
}

// Start begins a session over the subject's question bank, shuffled.
func (e *Engine) Start(subject galaxy.Subject) (*State, error) {
	questions := galaxy.QuestionsBySubject(subject)
	if len(questions) == 0 {
		return nil, fmt.Errorf("no practice questions for subject %q", subject)
	}

	rand.Shuffle(len(questions), func(i, j int) {
		questions[i], questions[j] = questions[j], questions[i]
	})

	return &State{
		ID:             uuid.NewString(),
		Subject:        subject,
		Questions:      questions,
		StartTime:      time.Now(),
		Phase:          PhaseQuestion,
		SelectedOption: -1,
	}, nil
}

// HandleAnswer scores the chosen option for the current question. A
// correct answer earns XP right away and may unlock a badge or rank-up;
// a wrong one resets the streak. Answers outside the question phase are
// ignored.
func (e *Engine) HandleAnswer(s *State, option int) error {
	if s.Phase != PhaseQuestion {
		return nil
	}
	q := s.CurrentQuestion()
	if option < 0 || option >= len(q.Options) {
		return fmt.Errorf("answer option %d out of range", option)
	}

	s.SelectedOption = option
	s.LastCorrect = option == q.CorrectIndex
	s.Phase = PhaseFeedback

	if !s.LastCorrect {
		s.Streak = 0
		return nil
	}

	s.Streak++
	s.Correct++

	rankUp, err := e.progress.AddXP(XPPerCorrectAnswer)
	if err != nil {
		return fmt.Errorf("award answer XP: %w", err)
	}
	s.XPAwarded += XPPerCorrectAnswer
	if rankUp != nil {
		s.PendingRankUp = rankUp
	}

	e.evaluate(s, badges.Stats{
		Streak:       s.Streak,
		CorrectCount: s.Correct,
	})

	return nil
}

// Advance moves to the next question, or finishes the session after the
// last one. Finishing grants the score bonus, records the session in the
// performance history, and runs the end-of-session badge checks.
func (e *Engine) Advance(s *State) error {
	if s.Phase != PhaseFeedback {
		return nil
	}
	if s.Index < len(s.Questions)-1 {
		s.Index++
		s.SelectedOption = -1
		s.Phase = PhaseQuestion
		return nil
	}
	return e.finish(s)
}

func (e *Engine) finish(s *State) error {
	s.Phase = PhaseSummary

	if bonus := s.Correct * FinishBonusPerPoint; bonus > 0 {
		rankUp, err := e.progress.AddXP(bonus)
		if err != nil {
			return fmt.Errorf("award finish bonus: %w", err)
		}
		s.XPAwarded += bonus
		if rankUp != nil {
			s.PendingRankUp = rankUp
		}
	}

	if err := e.history.Append(s.Subject, s.ScorePercent(), time.Now()); err != nil {
		return fmt.Errorf("record session score: %w", err)
	}

	stats := badges.Stats{
		Streak:         s.Streak,
		CorrectCount:   s.Correct,
		TotalQuestions: len(s.Questions),
		ScorePercent:   s.ScorePercent(),
		SessionEnded:   true,
	}
	if avg, ok := e.history.OverallAverage(); ok {
		stats.AverageScore = avg
		stats.RecordedSessions = e.history.Count()
	}
	e.evaluate(s, stats)

	return nil
}

// evaluate runs the badge check and persists any award. Persistence
// failures leave the badge pending for the UI but are not fatal.
func (e *Engine) evaluate(s *State, stats badges.Stats) {
	b := e.evaluator.Evaluate(stats, e.progress.EarnedBadges())
	if b == nil {
		return
	}
	_ = e.progress.EarnBadge(b.ID)
	s.PendingBadge = b
}
