package advisor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sony/gobreaker/v2"
)

// Recorder receives one observation per advisor call.
type Recorder interface {
	RecordAdvisorCall(ctx context.Context, operation string, success bool)
}

// BreakerConfig tunes when the breaker opens and how long it stays open.
type BreakerConfig struct {
	MaxFailures uint32
	OpenTimeout time.Duration
}

var _ Advisor = (*Breaker)(nil)

// Breaker wraps an Advisor in a circuit breaker. No retries: an open
// breaker answers ErrUnavailable immediately.
type Breaker struct {
	next     Advisor
	cb       *gobreaker.CircuitBreaker[any]
	recorder Recorder
}

func NewBreaker(next Advisor, cfg BreakerConfig, recorder Recorder) *Breaker {
	if cfg.MaxFailures == 0 {
		cfg.MaxFailures = 3
	}
	if cfg.OpenTimeout <= 0 {
		cfg.OpenTimeout = 30 * time.Second
	}
	cb := gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
		Name:        "advisor",
		MaxRequests: 1,
		Timeout:     cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.MaxFailures
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("advisor breaker state changed")
		},
	})
	return &Breaker{next: next, cb: cb, recorder: recorder}
}

// State exposes the breaker state for health reporting.
func (b *Breaker) State() string {
	return b.cb.State().String()
}

func (b *Breaker) run(ctx context.Context, op string, fn func() (any, error)) (any, error) {
	out, err := b.cb.Execute(fn)
	if b.recorder != nil {
		b.recorder.RecordAdvisorCall(ctx, op, err == nil)
	}
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return out, err
}

func (b *Breaker) text(ctx context.Context, op string, fn func() (string, error)) (string, error) {
	out, err := b.run(ctx, op, func() (any, error) { return fn() })
	if err != nil {
		return "", err
	}
	return out.(string), nil
}

func (b *Breaker) AnalyzeConflict(ctx context.Context, candidate, existing interface{}) (string, error) {
	return b.text(ctx, "analyze_conflict", func() (string, error) {
		return b.next.AnalyzeConflict(ctx, candidate, existing)
	})
}

func (b *Breaker) SuggestDiagnosis(ctx context.Context, notes string) (*Diagnosis, error) {
	out, err := b.run(ctx, "suggest_diagnosis", func() (any, error) {
		return b.next.SuggestDiagnosis(ctx, notes)
	})
	if err != nil {
		return nil, err
	}
	return out.(*Diagnosis), nil
}

func (b *Breaker) TranscribeVoiceNote(ctx context.Context, audioBase64, mimeType string) (string, error) {
	return b.text(ctx, "transcribe", func() (string, error) {
		return b.next.TranscribeVoiceNote(ctx, audioBase64, mimeType)
	})
}

func (b *Breaker) SummarizeHistory(ctx context.Context, history []string) (string, error) {
	return b.text(ctx, "summarize_history", func() (string, error) {
		return b.next.SummarizeHistory(ctx, history)
	})
}

func (b *Breaker) DraftReminder(ctx context.Context, patientName, doctorName, dateTime, channel string) (string, error) {
	return b.text(ctx, "draft_reminder", func() (string, error) {
		return b.next.DraftReminder(ctx, patientName, doctorName, dateTime, channel)
	})
}
