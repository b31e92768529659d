package translator

import (
	"context"
	"errors"
	"testing"
	"time"

	apperrors "github.com/shiroemons/go-romtext/internal/romtext/errors"
	"github.com/shiroemons/go-romtext/internal/romtext/mocks"
)

func newTestRetrier(next *mocks.MockTranslator, maxRetries int) (*Retrier, *[]time.Duration) {
	var delays []time.Duration
	r := NewRetrier(next, maxRetries, NewPacer(), nil)
	r.jitter = func() time.Duration { return 0 }
	r.sleep = func(ctx context.Context, d time.Duration) error {
		delays = append(delays, d)
		return ctx.Err()
	}
	return r, &delays
}

func transient() error {
	return apperrors.NewTransientError("test", errors.New("timeout"))
}

func TestRetrier_Translate(t *testing.T) {
	t.Run("一時的なエラーの後に成功", func(t *testing.T) {
		mock := &mocks.MockTranslator{
			Translations: map[string]string{"hola": "hallo"},
			Errors:       []error{transient(), transient()},
		}
		r, delays := newTestRetrier(mock, 5)

		out, err := r.Translate(context.Background(), "hola")
		if err != nil {
			t.Fatalf("Translate failed: %v", err)
		}
		if out != "hallo" {
			t.Errorf("Expected 'hallo', got '%s'", out)
		}
		if mock.CallCount() != 3 {
			t.Errorf("Expected 3 calls, got %d", mock.CallCount())
		}
		want := []time.Duration{500 * time.Millisecond, time.Second}
		if len(*delays) != len(want) {
			t.Fatalf("Expected delays %v, got %v", want, *delays)
		}
		for i := range want {
			if (*delays)[i] != want[i] {
				t.Errorf("Expected delay[%d] %v, got %v", i, want[i], (*delays)[i])
			}
		}
	})

	t.Run("再試行の上限", func(t *testing.T) {
		mock := &mocks.MockTranslator{
			Errors: []error{transient(), transient(), transient()},
		}
		r, delays := newTestRetrier(mock, 2)

		_, err := r.Translate(context.Background(), "hola")
		if !apperrors.IsFatal(err) {
			t.Fatalf("Expected fatal error, got %v", err)
		}
		if !errors.Is(err, apperrors.ErrRetriesExhausted) {
			t.Errorf("Expected ErrRetriesExhausted, got %v", err)
		}
		if mock.CallCount() != 3 {
			t.Errorf("Expected 3 calls, got %d", mock.CallCount())
		}
		if len(*delays) != 2 {
			t.Errorf("Expected 2 sleeps, got %d", len(*delays))
		}
	})

	t.Run("致命的なエラーは再試行しない", func(t *testing.T) {
		fatal := apperrors.NewFatalError("test", errors.New("forbidden"))
		mock := &mocks.MockTranslator{Errors: []error{fatal}}
		r, _ := newTestRetrier(mock, 5)

		_, err := r.Translate(context.Background(), "hola")
		if !errors.Is(err, fatal) {
			t.Errorf("Expected %v, got %v", fatal, err)
		}
		if mock.CallCount() != 1 {
			t.Errorf("Expected 1 call, got %d", mock.CallCount())
		}
	})

	t.Run("分類されていないエラーは致命的", func(t *testing.T) {
		plain := errors.New("boom")
		mock := &mocks.MockTranslator{Errors: []error{plain}}
		r, _ := newTestRetrier(mock, 5)

		_, err := r.Translate(context.Background(), "hola")
		if !apperrors.IsFatal(err) || !errors.Is(err, plain) {
			t.Errorf("Expected fatal wrapping %v, got %v", plain, err)
		}
		if mock.CallCount() != 1 {
			t.Errorf("Expected 1 call, got %d", mock.CallCount())
		}
	})

	t.Run("待機中のキャンセル", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		mock := &mocks.MockTranslator{Errors: []error{transient(), transient()}}
		r := NewRetrier(mock, 5, NewPacer(), nil)
		r.sleep = func(ctx context.Context, d time.Duration) error {
			cancel()
			return sleepContext(ctx, d)
		}

		_, err := r.Translate(ctx, "hola")
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Expected context.Canceled, got %v", err)
		}
		if mock.CallCount() != 1 {
			t.Errorf("Expected 1 call, got %d", mock.CallCount())
		}
	})
}

func TestRetrier_backoff(t *testing.T) {
	r := NewRetrier(&mocks.MockTranslator{}, 5, NewPacer(), nil)
	r.jitter = func() time.Duration { return 100 * time.Millisecond }

	tests := []struct {
		attempt int
		want    time.Duration
	}{
		{attempt: 0, want: 600 * time.Millisecond},
		{attempt: 1, want: 1100 * time.Millisecond},
		{attempt: 3, want: 4100 * time.Millisecond},
		{attempt: 4, want: MaxDelay},
		{attempt: 30, want: MaxDelay},
	}
	for _, tt := range tests {
		if got := r.backoff(tt.attempt); got != tt.want {
			t.Errorf("backoff(%d): Expected %v, got %v", tt.attempt, tt.want, got)
		}
	}
}

func TestSleepContext(t *testing.T) {
	if err := sleepContext(context.Background(), time.Millisecond); err != nil {
		t.Errorf("Expected nil, got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := sleepContext(ctx, time.Hour); !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}
