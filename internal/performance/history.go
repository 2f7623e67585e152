package performance

import (
	"sync"
	"time"

	"github.com/RdoLimaJunior/cosmus/internal/galaxy"
	"github.com/RdoLimaJunior/cosmus/internal/kvstore"
)

// DateLayout is the day-resolution format used for session records.
const DateLayout = "2006-01-02"

// Record is one finished practice session's outcome.
type Record struct {
	Date    string         `json:"date"`
	Subject galaxy.Subject `json:"subject"`
	Score   float64        `json:"score"`
}

// History is the kv-backed log of practice session scores. A corrupt or
// missing ledger starts empty; every append persists immediately.
type History struct {
	mu      sync.Mutex
	kv      kvstore.Store
	records []Record
}

// NewHistory loads the recorded sessions from the store.
func NewHistory(kv kvstore.Store) *History {
	h := &History{kv: kv}
	// A missing or unreadable ledger is treated as a fresh start.
	_, _ = kv.Get(kvstore.KeyPerformance, &h.records)
	return h
}

// Append records a session score and persists the ledger.
func (h *History) Append(subject galaxy.Subject, score float64, at time.Time) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.records = append(h.records, Record{
		Date:    at.Format(DateLayout),
		Subject: subject,
		Score:   score,
	})
	return h.kv.Put(kvstore.KeyPerformance, h.records)
}

// All returns the recorded sessions in insertion order.
func (h *History) All() []Record {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]Record, len(h.records))
	copy(out, h.records)
	return out
}

// Count returns the number of recorded sessions.
func (h *History) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.records)
}

// OverallAverage returns the mean score across all recorded sessions,
// and false when nothing has been recorded.
func (h *History) OverallAverage() (float64, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.records) == 0 {
		return 0, false
	}
	var sum float64
	for _, r := range h.records {
		sum += r.Score
	}
	return sum / float64(len(h.records)), true
}

// AverageBySubject returns the mean score per subject. Subjects with no
// recorded sessions are absent from the map.
func (h *History) AverageBySubject() map[galaxy.Subject]float64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	sums := make(map[galaxy.Subject]float64)
	counts := make(map[galaxy.Subject]int)
	for _, r := range h.records {
		sums[r.Subject] += r.Score
		counts[r.Subject]++
	}
	out := make(map[galaxy.Subject]float64, len(sums))
	for s, sum := range sums {
		out[s] = sum / float64(counts[s])
	}
	return out
}

// Strongest returns the subject with the highest average score, and
// false when no sessions are recorded. Ties resolve to the subject
// earliest in display order.
func (h *History) Strongest() (galaxy.Subject, bool) {
	avgs := h.AverageBySubject()
	if len(avgs) == 0 {
		return "", false
	}
	var best galaxy.Subject
	bestAvg := -1.0
	for _, s := range galaxy.AllSubjects() {
		if avg, ok := avgs[s]; ok && avg > bestAvg {
			best, bestAvg = s, avg
		}
	}
	return best, true
}

// Trend compares the most recent half of the records against the
// earlier half and returns the change in average score. It returns
// false with fewer than two records.
func (h *History) Trend() (float64, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	n := len(h.records)
	if n < 2 {
		return 0, false
	}
	mid := n / 2
	var early, late float64
	for i := 0; i < mid; i++ {
		early += h.records[i].Score
	}
	for i := mid; i < n; i++ {
		late += h.records[i].Score
	}
	return late/float64(n-mid) - early/float64(mid), true
}
