package badges

import "testing"

func TestCatalogLoads(t *testing.T) {
	c, err := Catalog()
	if err != nil {
		t.Fatalf("Catalog() error: %v", err)
	}
	if len(c) != 7 {
		t.Fatalf("expected 7 badges, got %d", len(c))
	}
	if c[0].ID != "streak-3" {
		t.Errorf("first badge = %q, want streak-3", c[0].ID)
	}
}

func TestStreakBadgeFiresExactlyOnThirdCorrect(t *testing.T) {
	ev, err := NewEvaluator()
	if err != nil {
		t.Fatal(err)
	}
	var earned []string
	for streak := 1; streak <= 3; streak++ {
		got := ev.Evaluate(Stats{Streak: streak, CorrectCount: streak}, earned)
		if streak < 3 {
			if got != nil {
				t.Fatalf("streak %d: unexpected badge %q", streak, got.ID)
			}
			continue
		}
		if got == nil || got.ID != "streak-3" {
			t.Fatalf("streak 3: got %v, want streak-3", got)
		}
		earned = append(earned, got.ID)
	}
	// Same stats again must not re-award.
	if got := ev.Evaluate(Stats{Streak: 3, CorrectCount: 3}, earned); got != nil {
		t.Errorf("re-evaluation awarded %q again", got.ID)
	}
}

func TestEvaluateNeverReturnsEarned(t *testing.T) {
	ev, err := NewEvaluator()
	if err != nil {
		t.Fatal(err)
	}
	all, _ := Catalog()
	earned := make([]string, 0, len(all))
	for _, b := range all {
		earned = append(earned, b.ID)
	}
	got := ev.Evaluate(Stats{
		Streak:           100,
		CorrectCount:     100,
		TotalQuestions:   100,
		ScorePercent:     100,
		SessionEnded:     true,
		ModulesCompleted: 100,
		AverageScore:     100,
		RecordedSessions: 10,
	}, earned)
	if got != nil {
		t.Errorf("evaluate returned already earned badge %q", got.ID)
	}
}

func TestOneBadgePerInvocation(t *testing.T) {
	ev, err := NewEvaluator()
	if err != nil {
		t.Fatal(err)
	}
	// Stats qualifying for both streak badges at once.
	stats := Stats{Streak: 5, CorrectCount: 5}
	var earned []string

	first := ev.Evaluate(stats, earned)
	if first == nil || first.ID != "streak-3" {
		t.Fatalf("first award = %v, want streak-3", first)
	}
	earned = append(earned, first.ID)

	second := ev.Evaluate(stats, earned)
	if second == nil || second.ID != "streak-5" {
		t.Fatalf("second award = %v, want streak-5", second)
	}
}

func TestScoreBadgeOnlyAtSessionEnd(t *testing.T) {
	ev, err := NewEvaluator()
	if err != nil {
		t.Fatal(err)
	}
	earned := []string{"streak-3", "streak-5", "correct-5", "correct-20"}

	mid := Stats{ScorePercent: 100, TotalQuestions: 10, SessionEnded: false}
	if got := ev.Evaluate(mid, earned); got != nil {
		t.Errorf("mid-session score badge awarded: %q", got.ID)
	}

	end := mid
	end.SessionEnded = true
	if got := ev.Evaluate(end, earned); got == nil || got.ID != "score-100" {
		t.Errorf("end-of-session award = %v, want score-100", got)
	}
}

func TestScoreBadgeRequiresMinQuestions(t *testing.T) {
	ev, err := NewEvaluator()
	if err != nil {
		t.Fatal(err)
	}
	earned := []string{"streak-3", "streak-5", "correct-5", "correct-20"}

	// Perfect score on a short session must not count. The question
	// count is measured against minQuestions, not the percentage.
	short := Stats{ScorePercent: 100, TotalQuestions: 3, SessionEnded: true}
	if got := ev.Evaluate(short, earned); got != nil {
		t.Errorf("short session awarded %q", got.ID)
	}

	long := Stats{ScorePercent: 100, TotalQuestions: 5, SessionEnded: true}
	if got := ev.Evaluate(long, earned); got == nil || got.ID != "score-100" {
		t.Errorf("qualifying session award = %v, want score-100", got)
	}
}

func TestPerformanceBadgeNeedsRecordedSessions(t *testing.T) {
	ev, err := NewEvaluator()
	if err != nil {
		t.Fatal(err)
	}
	earned := []string{"streak-3", "streak-5", "correct-5", "correct-20", "score-100", "study-5"}

	if got := ev.Evaluate(Stats{AverageScore: 90}, earned); got != nil {
		t.Errorf("average badge awarded with no recorded sessions: %q", got.ID)
	}
	if got := ev.Evaluate(Stats{AverageScore: 79.9, RecordedSessions: 4}, earned); got != nil {
		t.Errorf("average badge awarded below threshold: %q", got.ID)
	}
	got := ev.Evaluate(Stats{AverageScore: 80, RecordedSessions: 1}, earned)
	if got == nil || got.ID != "perf-avg-80" {
		t.Errorf("average award = %v, want perf-avg-80", got)
	}
}

func TestStudyBadge(t *testing.T) {
	ev, err := NewEvaluator()
	if err != nil {
		t.Fatal(err)
	}
	if got := ev.Evaluate(Stats{ModulesCompleted: 4}, nil); got != nil {
		t.Errorf("study badge awarded early: %q", got.ID)
	}
	got := ev.Evaluate(Stats{ModulesCompleted: 5}, nil)
	if got == nil || got.ID != "study-5" {
		t.Errorf("study award = %v, want study-5", got)
	}
}

func TestCustomCatalogOrder(t *testing.T) {
	ev := NewEvaluatorWithCatalog([]Badge{
		{ID: "b", Criteria: Criteria{Streak: 1}},
		{ID: "a", Criteria: Criteria{Streak: 1}},
	})
	got := ev.Evaluate(Stats{Streak: 1}, nil)
	if got == nil || got.ID != "b" {
		t.Errorf("award = %v, want first catalog entry b", got)
	}
}
