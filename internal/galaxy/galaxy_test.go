package galaxy

import "testing"

func TestCatalogValid(t *testing.T) {
	if err := Validate(); err != nil {
		t.Fatalf("catalog validation failed: %v", err)
	}
}

func TestGet(t *testing.T) {
	b, err := Get("earth")
	if err != nil {
		t.Fatalf("Get(earth) error: %v", err)
	}
	if b.Subject != SubjectBiology {
		t.Errorf("earth subject = %q, want biology", b.Subject)
	}
	if _, err := Get("pluto"); err == nil {
		t.Error("Get(pluto) should fail")
	}
}

func TestUnlockChain(t *testing.T) {
	wantChain := []string{"sol", "mercury", "venus", "earth", "moon", "mars", "jupiter"}
	cur := wantChain[0]
	for i := 1; i < len(wantChain); i++ {
		next, ok := NextAfter(cur)
		if !ok {
			t.Fatalf("NextAfter(%q) = none, want %q", cur, wantChain[i])
		}
		if next.ID != wantChain[i] {
			t.Fatalf("NextAfter(%q) = %q, want %q", cur, next.ID, wantChain[i])
		}
		cur = next.ID
	}
	if _, ok := NextAfter("jupiter"); ok {
		t.Error("jupiter should end the chain")
	}
}

func TestIsUnlocked(t *testing.T) {
	completed := map[string]bool{}

	if !IsUnlocked("sol", completed) {
		t.Error("sol should be unlocked from the start")
	}
	if IsUnlocked("mercury", completed) {
		t.Error("mercury should be locked before sol is completed")
	}
	if !IsUnlocked("saturn", completed) {
		t.Error("saturn has no predecessor and should be available")
	}

	completed["sol"] = true
	if !IsUnlocked("mercury", completed) {
		t.Error("completing sol should unlock mercury")
	}
	if IsUnlocked("venus", completed) {
		t.Error("venus should stay locked until mercury is completed")
	}

	if IsUnlocked("pluto", completed) {
		t.Error("unknown bodies are never unlocked")
	}
}

func TestValidateBodiesRejectsBrokenCatalogs(t *testing.T) {
	tests := []struct {
		name   string
		bodies []CelestialBody
	}{
		{
			name: "duplicate id",
			bodies: []CelestialBody{
				{ID: "a", Subject: SubjectPhysics, Content: "x"},
				{ID: "a", Subject: SubjectChemistry, Content: "x"},
				{ID: "b", Subject: SubjectBiology, Content: "x"},
			},
		},
		{
			name: "dangling unlock",
			bodies: []CelestialBody{
				{ID: "a", Subject: SubjectPhysics, Content: "x", Unlocks: "ghost"},
				{ID: "b", Subject: SubjectChemistry, Content: "x"},
				{ID: "c", Subject: SubjectBiology, Content: "x"},
			},
		},
		{
			name: "unlock cycle",
			bodies: []CelestialBody{
				{ID: "a", Subject: SubjectPhysics, Content: "x", Unlocks: "b"},
				{ID: "b", Subject: SubjectChemistry, Content: "x", Unlocks: "a"},
				{ID: "c", Subject: SubjectBiology, Content: "x"},
			},
		},
		{
			name: "missing subject coverage",
			bodies: []CelestialBody{
				{ID: "a", Subject: SubjectPhysics, Content: "x"},
			},
		},
		{
			name: "empty content",
			bodies: []CelestialBody{
				{ID: "a", Subject: SubjectPhysics, Content: ""},
				{ID: "b", Subject: SubjectChemistry, Content: "x"},
				{ID: "c", Subject: SubjectBiology, Content: "x"},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := validateBodies(tt.bodies); err == nil {
				t.Errorf("validateBodies accepted an invalid catalog")
			}
		})
	}
}

func TestQuestionsBySubject(t *testing.T) {
	for _, s := range AllSubjects() {
		qs := QuestionsBySubject(s)
		if len(qs) == 0 {
			t.Errorf("subject %q has no practice questions", s)
		}
		for _, q := range qs {
			if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
				t.Errorf("question %q has out-of-range correct index %d", q.ID, q.CorrectIndex)
			}
			if q.Explanation == "" {
				t.Errorf("question %q has no explanation", q.ID)
			}
		}
	}
}
