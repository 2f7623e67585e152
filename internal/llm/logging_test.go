package llm

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/RdoLimaJunior/cosmus/internal/kvstore"
)

func newTestKV(t *testing.T) kvstore.Store {
	t.Helper()
	kv, err := kvstore.OpenJSON(filepath.Join(t.TempDir(), "cosmus.json"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { kv.Close() })
	return kv
}

func TestLogging_RecordsUsage(t *testing.T) {
	kv := newTestKV(t)
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{}`), Usage: Usage{InputTokens: 100, OutputTokens: 50, TotalTokens: 150}},
		MockResponse{Content: json.RawMessage(`{}`), Usage: Usage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15}},
	)
	p := WithLogging(mock, kv)

	ctx := WithPurpose(context.Background(), "chat")
	if _, err := p.Generate(ctx, Request{}); err != nil {
		t.Fatal(err)
	}
	if _, err := p.Generate(ctx, Request{}); err != nil {
		t.Fatal(err)
	}

	stats := LoadUsageStats(kv)
	if stats.Requests != 2 {
		t.Errorf("requests = %d, want 2", stats.Requests)
	}
	if stats.InputTokens != 110 || stats.OutputTokens != 55 {
		t.Errorf("tokens = %d/%d, want 110/55", stats.InputTokens, stats.OutputTokens)
	}
	if stats.Failures != 0 {
		t.Errorf("failures = %d, want 0", stats.Failures)
	}
	if stats.LastPurpose != "chat" {
		t.Errorf("last purpose = %q, want chat", stats.LastPurpose)
	}
}

func TestLogging_RecordsFailures(t *testing.T) {
	kv := newTestKV(t)
	mock := NewMockProvider() // empty queue fails every call
	p := WithLogging(mock, kv)

	if _, err := p.Generate(context.Background(), Request{}); err == nil {
		t.Fatal("expected error from empty queue")
	}

	stats := LoadUsageStats(kv)
	if stats.Requests != 1 || stats.Failures != 1 {
		t.Errorf("requests/failures = %d/%d, want 1/1", stats.Requests, stats.Failures)
	}
	if stats.LastError == "" {
		t.Error("last error should be recorded")
	}
}

func TestLogging_StreamRecordsUsage(t *testing.T) {
	kv := newTestKV(t)
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage("streamed answer"), Usage: Usage{InputTokens: 20, OutputTokens: 4}},
	)
	p := WithLogging(mock, kv)

	_, err := p.GenerateStream(context.Background(), Request{}, func(string) error { return nil })
	if err != nil {
		t.Fatal(err)
	}

	stats := LoadUsageStats(kv)
	if stats.Requests != 1 || stats.InputTokens != 20 {
		t.Errorf("stats = %+v", stats)
	}
}
