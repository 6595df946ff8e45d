package llm

import (
	"context"
	"encoding/json"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

// flakyProvider fails a fixed number of times before succeeding.
type flakyProvider struct {
	failures int32
	err      error
	calls    atomic.Int32
}

func (f *flakyProvider) Generate(_ context.Context, _ Request) (*Response, error) {
	n := f.calls.Add(1)
	if n <= f.failures {
		return nil, f.err
	}
	return &Response{Content: json.RawMessage(`{}`), StopReason: "end"}, nil
}

func (f *flakyProvider) ModelID() string { return "flaky" }

func fastRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: time.Millisecond,
		MaxWait:     5 * time.Millisecond,
		Multiplier:  2.0,
	}
}

func TestRetry_TransientErrorRecovers(t *testing.T) {
	inner := &flakyProvider{failures: 2, err: &ErrProviderUnavailable{}}
	p := WithRetry(inner, fastRetryConfig())

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("expected recovery after retries: %v", err)
	}
	if resp == nil {
		t.Fatal("nil response")
	}
	if got := inner.calls.Load(); got != 3 {
		t.Errorf("calls = %d, want 3", got)
	}
}

func TestRetry_ExhaustsAttempts(t *testing.T) {
	inner := &flakyProvider{failures: 10, err: &ErrProviderUnavailable{}}
	p := WithRetry(inner, fastRetryConfig())

	_, err := p.Generate(context.Background(), Request{})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("err = %v, want ErrProviderUnavailable", err)
	}
	if got := inner.calls.Load(); got != 3 {
		t.Errorf("calls = %d, want 3", got)
	}
}

func TestRetry_MaxTokensNotRetried(t *testing.T) {
	inner := &flakyProvider{failures: 10, err: &ErrMaxTokensExceeded{}}
	p := WithRetry(inner, fastRetryConfig())

	_, err := p.Generate(context.Background(), Request{})
	var maxTok *ErrMaxTokensExceeded
	if !errors.As(err, &maxTok) {
		t.Fatalf("err = %v, want ErrMaxTokensExceeded", err)
	}
	if got := inner.calls.Load(); got != 1 {
		t.Errorf("calls = %d, want 1 (no retry)", got)
	}
}

func TestRetry_InvalidResponseRetriedOnce(t *testing.T) {
	inner := &flakyProvider{failures: 10, err: &ErrInvalidResponse{Err: errors.New("bad json")}}
	p := WithRetry(inner, fastRetryConfig())

	_, err := p.Generate(context.Background(), Request{})
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("err = %v, want ErrInvalidResponse", err)
	}
	if got := inner.calls.Load(); got != 2 {
		t.Errorf("calls = %d, want 2 (one retry)", got)
	}
}

func TestRetry_ContextCancelNotRetried(t *testing.T) {
	inner := &flakyProvider{failures: 10, err: context.Canceled}
	p := WithRetry(inner, fastRetryConfig())

	_, err := p.Generate(context.Background(), Request{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if got := inner.calls.Load(); got != 1 {
		t.Errorf("calls = %d, want 1", got)
	}
}
