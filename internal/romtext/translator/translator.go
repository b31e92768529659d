// Package translator は機械翻訳エンジンとその再試行・キャッシュを提供します
package translator

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	apperrors "github.com/shiroemons/go-romtext/internal/romtext/errors"
	"github.com/shiroemons/go-romtext/internal/romtext/interfaces"
)

// 翻訳エンジン名
const (
	ProviderGoogle = "google"
	ProviderDeepL  = "deepl"
	ProviderLibre  = "libre"
)

// Options は翻訳エンジンの設定です
type Options struct {
	Provider   string
	SourceLang string
	TargetLang string
	APIKey     string
	Endpoint   string
	Timeout    time.Duration
	MaxRetries int
	CacheSize  int

	// Client が nil の場合は Timeout を設定した http.Client を使います
	Client *http.Client
	Logger interfaces.Logger
}

func (o Options) httpClient() *http.Client {
	if o.Client != nil {
		return o.Client
	}
	return &http.Client{Timeout: o.Timeout}
}

// NewBackend は翻訳エンジンを作成します
func NewBackend(ctx context.Context, opts Options) (interfaces.Translator, error) {
	switch strings.ToLower(opts.Provider) {
	case ProviderGoogle, "googletrans":
		return NewGoogle(opts), nil
	case ProviderDeepL:
		return NewDeepL(opts)
	case ProviderLibre, "argos":
		return NewLibre(ctx, opts)
	default:
		return nil, apperrors.NewFatalError("new", fmt.Errorf("%w: %s", ErrUnsupportedProvider, opts.Provider))
	}
}

// New は再試行とキャッシュを組み合わせた翻訳エンジンを作成します。
// 作成に失敗した場合は常に FatalError を返します
func New(ctx context.Context, opts Options) (interfaces.Translator, error) {
	backend, err := NewBackend(ctx, opts)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if !apperrors.IsFatal(err) {
			err = apperrors.NewFatalError("new", err)
		}
		return nil, err
	}

	var t interfaces.Translator = NewRetrier(backend, opts.MaxRetries, NewPacer(), opts.Logger)
	if opts.CacheSize > 0 {
		cached, err := NewCached(t, opts.CacheSize)
		if err != nil {
			return nil, apperrors.NewFatalError("new", err)
		}
		t = cached
	}
	return t, nil
}
