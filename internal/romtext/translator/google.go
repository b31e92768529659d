package translator

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	apperrors "github.com/shiroemons/go-romtext/internal/romtext/errors"
)

const googleEndpoint = "https://translate.googleapis.com"

// Google は Google 翻訳の公開エンドポイント (client=gtx) を使う翻訳エンジン
type Google struct {
	client   *http.Client
	endpoint string
	source   string
	target   string
}

// NewGoogle は新しいGoogleを作成します
func NewGoogle(opts Options) *Google {
	endpoint := opts.Endpoint
	if endpoint == "" {
		endpoint = googleEndpoint
	}
	source := opts.SourceLang
	if source == "" {
		source = "auto"
	}
	return &Google{
		client:   opts.httpClient(),
		endpoint: strings.TrimRight(endpoint, "/"),
		source:   source,
		target:   opts.TargetLang,
	}
}

// Translate はテキストを翻訳します
func (g *Google) Translate(ctx context.Context, text string) (string, error) {
	q := url.Values{}
	q.Set("client", "gtx")
	q.Set("sl", g.source)
	q.Set("tl", g.target)
	q.Set("dt", "t")
	q.Set("q", text)
	req, err := http.NewRequest(http.MethodGet, g.endpoint+"/translate_a/single?"+q.Encode(), nil)
	if err != nil {
		return "", apperrors.NewFatalError("google", err)
	}

	var payload []json.RawMessage
	if err := doJSON(ctx, g.client, "google", req, &payload); err != nil {
		return "", err
	}
	out, err := parseGoogleSentences(payload)
	if err != nil {
		return "", apperrors.NewTransientError("google", err)
	}
	return out, nil
}

// parseGoogleSentences は [[["訳文","原文",...],...],...] 形式の応答から訳文を連結します
func parseGoogleSentences(payload []json.RawMessage) (string, error) {
	if len(payload) == 0 {
		return "", fmt.Errorf("%w: empty payload", ErrUnexpectedResponse)
	}
	var sentences [][]json.RawMessage
	if err := json.Unmarshal(payload[0], &sentences); err != nil {
		return "", fmt.Errorf("%w: %w", ErrUnexpectedResponse, err)
	}

	var sb strings.Builder
	for _, s := range sentences {
		if len(s) == 0 {
			continue
		}
		var part *string
		if err := json.Unmarshal(s[0], &part); err != nil {
			return "", fmt.Errorf("%w: %w", ErrUnexpectedResponse, err)
		}
		if part != nil {
			sb.WriteString(*part)
		}
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("%w: no sentences", ErrUnexpectedResponse)
	}
	return sb.String(), nil
}
