package llm

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestMockProvider_StreamReassembles(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage("The Moon raises Earth's tides through gravity.")},
	)

	var got strings.Builder
	var chunks int
	resp, err := mock.GenerateStream(context.Background(), Request{}, func(chunk string) error {
		chunks++
		got.WriteString(chunk)
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.String() != string(resp.Content) {
		t.Fatalf("chunks reassemble to %q, response content is %q", got.String(), resp.Content)
	}
	if chunks < 2 {
		t.Fatalf("expected multiple chunks, got %d", chunks)
	}
}

func TestMockProvider_StreamCallbackErrorAborts(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage("some streamed text")},
	)

	abort := errors.New("consumer gone")
	_, err := mock.GenerateStream(context.Background(), Request{}, func(string) error {
		return abort
	})
	if !errors.Is(err, abort) {
		t.Fatalf("expected callback error to surface, got: %v", err)
	}
}

// streamFailer delivers some chunks and then fails, to exercise the
// retry middleware's mid-stream behavior.
type streamFailer struct {
	chunksBeforeFail int
	err              error
	attempts         int
}

func (s *streamFailer) Generate(context.Context, Request) (*Response, error) {
	return nil, s.err
}

func (s *streamFailer) GenerateStream(_ context.Context, _ Request, fn func(string) error) (*Response, error) {
	s.attempts++
	for i := 0; i < s.chunksBeforeFail; i++ {
		if err := fn("chunk "); err != nil {
			return nil, err
		}
	}
	return nil, s.err
}

func (s *streamFailer) ModelID() string { return "stream-failer" }

func fastRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: time.Millisecond,
		MaxWait:     2 * time.Millisecond,
		Multiplier:  2.0,
	}
}

func TestRetry_StreamFailureBeforeFirstChunkIsRetried(t *testing.T) {
	inner := &streamFailer{
		chunksBeforeFail: 0,
		err:              &ErrProviderUnavailable{},
	}
	p := WithRetry(inner, fastRetryConfig())

	_, err := p.GenerateStream(context.Background(), Request{}, func(string) error { return nil })
	if err == nil {
		t.Fatal("expected error")
	}
	if inner.attempts != 3 {
		t.Fatalf("expected 3 attempts, got %d", inner.attempts)
	}
}

func TestRetry_StreamFailureAfterFirstChunkIsNotRetried(t *testing.T) {
	inner := &streamFailer{
		chunksBeforeFail: 2,
		err:              &ErrProviderUnavailable{},
	}
	p := WithRetry(inner, fastRetryConfig())

	var delivered int
	_, err := p.GenerateStream(context.Background(), Request{}, func(string) error {
		delivered++
		return nil
	})
	if err == nil {
		t.Fatal("expected error")
	}
	// Retrying after delivery would duplicate text the caller already saw.
	if inner.attempts != 1 {
		t.Fatalf("expected 1 attempt, got %d", inner.attempts)
	}
	if delivered != 2 {
		t.Fatalf("expected 2 delivered chunks, got %d", delivered)
	}
}
