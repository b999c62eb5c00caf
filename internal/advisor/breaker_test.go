package advisor

import (
	"context"
	"errors"
	"testing"
	"time"
)

type stubAdvisor struct {
	Disabled
	calls int
	err   error
}

func (s *stubAdvisor) SummarizeHistory(context.Context, []string) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return "summary", nil
}

type countingRecorder struct {
	ok, failed int
}

func (c *countingRecorder) RecordAdvisorCall(_ context.Context, _ string, success bool) {
	if success {
		c.ok++
	} else {
		c.failed++
	}
}

func TestBreaker_PassesThrough(t *testing.T) {
	stub := &stubAdvisor{}
	rec := &countingRecorder{}
	b := NewBreaker(stub, BreakerConfig{}, rec)

	got, err := b.SummarizeHistory(context.Background(), []string{"x"})
	if err != nil || got != "summary" {
		t.Fatalf("Expected summary, got %q, %v", got, err)
	}
	if rec.ok != 1 {
		t.Errorf("Expected one successful call recorded, got %d", rec.ok)
	}
}

func TestBreaker_OpensAfterConsecutiveFailures(t *testing.T) {
	stub := &stubAdvisor{err: errors.New("upstream down")}
	b := NewBreaker(stub, BreakerConfig{MaxFailures: 2, OpenTimeout: time.Hour}, nil)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if _, err := b.SummarizeHistory(ctx, nil); err == nil {
			t.Fatal("Expected upstream error")
		}
	}
	if stub.calls != 2 {
		t.Fatalf("Expected 2 upstream calls, got %d", stub.calls)
	}

	_, err := b.SummarizeHistory(ctx, nil)
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("Expected ErrUnavailable from open breaker, got %v", err)
	}
	if stub.calls != 2 {
		t.Errorf("Open breaker must not call upstream, got %d calls", stub.calls)
	}
	if b.State() != "open" {
		t.Errorf("Expected open state, got %s", b.State())
	}
}

func TestBreaker_DiagnosisError(t *testing.T) {
	b := NewBreaker(Disabled{}, BreakerConfig{}, nil)
	d, err := b.SuggestDiagnosis(context.Background(), "notes")
	if !errors.Is(err, ErrUnavailable) || d != nil {
		t.Errorf("Expected ErrUnavailable and nil diagnosis, got %v, %v", d, err)
	}
}
