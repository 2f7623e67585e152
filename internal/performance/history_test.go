package performance

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/RdoLimaJunior/cosmus/internal/galaxy"
	"github.com/RdoLimaJunior/cosmus/internal/kvstore"
)

func newTestStore(t *testing.T) kvstore.Store {
	t.Helper()
	kv, err := kvstore.OpenJSON(filepath.Join(t.TempDir(), "cosmus.json"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { kv.Close() })
	return kv
}

func TestAppendPersists(t *testing.T) {
	kv := newTestStore(t)
	h := NewHistory(kv)

	at := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	if err := h.Append(galaxy.SubjectBiology, 80, at); err != nil {
		t.Fatal(err)
	}

	reloaded := NewHistory(kv)
	recs := reloaded.All()
	if len(recs) != 1 {
		t.Fatalf("reloaded %d records, want 1", len(recs))
	}
	if recs[0].Date != "2026-03-14" || recs[0].Score != 80 {
		t.Errorf("record = %+v", recs[0])
	}
}

func TestAverages(t *testing.T) {
	h := NewHistory(newTestStore(t))
	now := time.Now()
	seed := []struct {
		subject galaxy.Subject
		score   float64
	}{
		{galaxy.SubjectBiology, 60},
		{galaxy.SubjectBiology, 100},
		{galaxy.SubjectPhysics, 90},
	}
	for _, s := range seed {
		if err := h.Append(s.subject, s.score, now); err != nil {
			t.Fatal(err)
		}
	}

	overall, ok := h.OverallAverage()
	if !ok {
		t.Fatal("OverallAverage reported no data")
	}
	if want := (60.0 + 100 + 90) / 3; overall != want {
		t.Errorf("overall = %v, want %v", overall, want)
	}

	avgs := h.AverageBySubject()
	if avgs[galaxy.SubjectBiology] != 80 {
		t.Errorf("biology average = %v, want 80", avgs[galaxy.SubjectBiology])
	}
	if avgs[galaxy.SubjectPhysics] != 90 {
		t.Errorf("physics average = %v, want 90", avgs[galaxy.SubjectPhysics])
	}
	if _, ok := avgs[galaxy.SubjectChemistry]; ok {
		t.Error("chemistry has no sessions and should be absent")
	}

	strongest, ok := h.Strongest()
	if !ok || strongest != galaxy.SubjectPhysics {
		t.Errorf("strongest = %v %v, want physics", strongest, ok)
	}
}

func TestEmptyHistory(t *testing.T) {
	h := NewHistory(newTestStore(t))
	if _, ok := h.OverallAverage(); ok {
		t.Error("empty history should report no average")
	}
	if _, ok := h.Strongest(); ok {
		t.Error("empty history should report no strongest subject")
	}
	if _, ok := h.Trend(); ok {
		t.Error("empty history should report no trend")
	}
	if h.Count() != 0 {
		t.Errorf("count = %d, want 0", h.Count())
	}
}

func TestTrend(t *testing.T) {
	h := NewHistory(newTestStore(t))
	now := time.Now()
	for _, score := range []float64{60, 70, 80, 90} {
		if err := h.Append(galaxy.SubjectPhysics, score, now); err != nil {
			t.Fatal(err)
		}
	}
	delta, ok := h.Trend()
	if !ok {
		t.Fatal("Trend reported no data")
	}
	// Early half averages 65, recent half 85.
	if delta != 20 {
		t.Errorf("trend = %v, want 20", delta)
	}
}
