package translator

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	apperrors "github.com/shiroemons/go-romtext/internal/romtext/errors"
	"github.com/shiroemons/go-romtext/internal/romtext/interfaces"
)

// maxJitter は待ち時間に加える揺らぎの上限
const maxJitter = 200 * time.Millisecond

// Retrier は一時的なエラーを指数バックオフで再試行します
type Retrier struct {
	next       interfaces.Translator
	maxRetries int
	pacer      *Pacer
	logger     interfaces.Logger

	// テストで差し替えられるように関数にしている
	jitter func() time.Duration
	sleep  func(ctx context.Context, d time.Duration) error
	now    func() time.Time
}

// NewRetrier は新しいRetrierを作成します
func NewRetrier(next interfaces.Translator, maxRetries int, pacer *Pacer, logger interfaces.Logger) *Retrier {
	if pacer == nil {
		pacer = NewPacer()
	}
	if logger == nil {
		logger = nopLogger{}
	}
	return &Retrier{
		next:       next,
		maxRetries: max(maxRetries, 0),
		pacer:      pacer,
		logger:     logger,
		jitter:     func() time.Duration { return rand.N(maxJitter) },
		sleep:      sleepContext,
		now:        time.Now,
	}
}

// Translate はテキストを翻訳します。
// 再試行の上限に達した場合と、一時的でないエラーは FatalError として返します
func (r *Retrier) Translate(ctx context.Context, text string) (string, error) {
	start := r.now()
	for attempt := 0; ; attempt++ {
		out, err := r.next.Translate(ctx, text)
		if err == nil {
			r.pacer.Observe(r.now().Sub(start))
			return out, nil
		}
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		if apperrors.IsFatal(err) {
			return "", err
		}
		if !apperrors.IsTransient(err) {
			return "", apperrors.NewFatalError("translate", err)
		}
		if attempt >= r.maxRetries {
			return "", apperrors.NewFatalError("translate",
				fmt.Errorf("%w (%d回): %w", apperrors.ErrRetriesExhausted, r.maxRetries, err))
		}

		delay := r.backoff(attempt)
		r.logger.Printf("再試行 %d/%d（%v 後）: %v\n", attempt+1, r.maxRetries, delay, err)
		if err := r.sleep(ctx, delay); err != nil {
			return "", err
		}
	}
}

// backoff は attempt 回目の失敗後の待ち時間を返します
func (r *Retrier) backoff(attempt int) time.Duration {
	d := r.pacer.Delay()
	for range attempt {
		d *= 2
		if d >= MaxDelay {
			break
		}
	}
	return min(d+r.jitter(), MaxDelay)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

type nopLogger struct{}

func (nopLogger) Printf(string, ...any) {}
func (nopLogger) Infof(string, ...any)  {}
func (nopLogger) Warnf(string, ...any)  {}
