package llm

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/RdoLimaJunior/cosmus/internal/kvstore"
)

// UsageStats aggregates LLM usage across program runs. It is persisted
// in the kv store and surfaced on the stats screen.
type UsageStats struct {
	Requests      int       `json:"requests"`
	Failures      int       `json:"failures"`
	InputTokens   int       `json:"inputTokens"`
	OutputTokens  int       `json:"outputTokens"`
	CostUSD       float64   `json:"costUsd"`
	LastModel     string    `json:"lastModel"`
	LastPurpose   string    `json:"lastPurpose"`
	LastLatencyMs int64     `json:"lastLatencyMs"`
	LastError     string    `json:"lastError,omitempty"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// LoggingProvider is a decorator that records every LLM request in the
// persisted usage ledger.
type LoggingProvider struct {
	inner Provider
	kv    kvstore.Store
}

// WithLogging wraps a Provider with usage recording.
func WithLogging(p Provider, kv kvstore.Store) Provider {
	return &LoggingProvider{inner: p, kv: kv}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := l.inner.Generate(ctx, req)
	l.record(ctx, resp, err, time.Since(start))
	return resp, err
}

func (l *LoggingProvider) GenerateStream(ctx context.Context, req Request, fn func(chunk string) error) (*Response, error) {
	start := time.Now()
	resp, err := l.inner.GenerateStream(ctx, req, fn)
	l.record(ctx, resp, err, time.Since(start))
	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}

// record folds one request into the persisted stats. Recording never
// fails the request itself.
func (l *LoggingProvider) record(ctx context.Context, resp *Response, reqErr error, latency time.Duration) {
	var stats UsageStats
	if _, err := l.kv.Get(kvstore.KeyLLMStats, &stats); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to load LLM usage stats: %v\n", err)
	}

	stats.Requests++
	stats.LastModel = l.inner.ModelID()
	stats.LastPurpose = PurposeFrom(ctx)
	stats.LastLatencyMs = latency.Milliseconds()
	stats.LastError = ""
	stats.UpdatedAt = time.Now()

	if reqErr != nil {
		stats.Failures++
		stats.LastError = reqErr.Error()
	}

	if resp != nil {
		stats.InputTokens += resp.Usage.InputTokens
		stats.OutputTokens += resp.Usage.OutputTokens
		if resp.Model != "" {
			stats.LastModel = resp.Model
		}
		if cost := LookupCost(stats.LastModel); cost != nil {
			stats.CostUSD += cost.Cost(resp.Usage.InputTokens, resp.Usage.OutputTokens)
		}
	}

	if err := l.kv.Put(kvstore.KeyLLMStats, stats); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to save LLM usage stats: %v\n", err)
	}
}

// LoadUsageStats reads the persisted usage ledger. A missing ledger
// returns zero stats.
func LoadUsageStats(kv kvstore.Store) UsageStats {
	var stats UsageStats
	_, _ = kv.Get(kvstore.KeyLLMStats, &stats)
	return stats
}
