package badges

// Stats is the activity snapshot a badge is judged against. Callers fill
// in whatever the current context knows; zero values simply fail the
// corresponding criteria.
type Stats struct {
	// Streak is the current run of consecutive correct answers.
	Streak int
	// CorrectCount is the number of correct answers in the session.
	CorrectCount int
	// TotalQuestions is how many questions the finished session had.
	TotalQuestions int
	// ScorePercent is the finished session's score as a percentage.
	ScorePercent float64
	// SessionEnded reports whether the practice session is over. Score
	// criteria are only judged on a finished session.
	SessionEnded bool
	// ModulesCompleted is the lifetime count of completed study modules.
	ModulesCompleted int
	// AverageScore is the rolling average across recorded sessions.
	AverageScore float64
	// RecordedSessions is how many sessions back the average.
	RecordedSessions int
}

// Evaluator awards badges against a fixed catalog.
type Evaluator struct {
	catalog []Badge
}

// NewEvaluator builds an evaluator over the embedded catalog.
func NewEvaluator() (*Evaluator, error) {
	c, err := Catalog()
	if err != nil {
		return nil, err
	}
	return &Evaluator{catalog: c}, nil
}

// NewEvaluatorWithCatalog is for tests and callers with a custom catalog.
func NewEvaluatorWithCatalog(catalog []Badge) *Evaluator {
	return &Evaluator{catalog: catalog}
}

// Evaluate returns the first badge in catalog order that the stats
// qualify for and that is not already earned, or nil when nothing new
// qualifies. At most one badge is awarded per call; if several qualify
// at once the rest are picked up on subsequent evaluations.
func (e *Evaluator) Evaluate(stats Stats, earned []string) *Badge {
	earnedSet := make(map[string]struct{}, len(earned))
	for _, id := range earned {
		earnedSet[id] = struct{}{}
	}
	for i := range e.catalog {
		b := &e.catalog[i]
		if _, ok := earnedSet[b.ID]; ok {
			continue
		}
		if qualifies(b, stats) {
			out := *b
			return &out
		}
	}
	return nil
}

// qualifies reports whether every criterion set on the badge holds.
func qualifies(b *Badge, s Stats) bool {
	c := b.Criteria
	if c.Streak > 0 && s.Streak < c.Streak {
		return false
	}
	if c.CorrectAnswers > 0 && s.CorrectCount < c.CorrectAnswers {
		return false
	}
	if c.ModulesCompleted > 0 && s.ModulesCompleted < c.ModulesCompleted {
		return false
	}
	if c.ScorePercentage > 0 {
		if b.Category == CategoryPerformance {
			// Judged against the rolling average; meaningless with no
			// recorded sessions.
			if s.RecordedSessions < 1 || s.AverageScore < float64(c.ScorePercentage) {
				return false
			}
		} else {
			// Session score is only known once the session is over.
			if !s.SessionEnded {
				return false
			}
			if c.MinQuestions > 0 && s.TotalQuestions < c.MinQuestions {
				return false
			}
			if s.ScorePercent < float64(c.ScorePercentage) {
				return false
			}
		}
	}
	return true
}
