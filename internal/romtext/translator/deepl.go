package translator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	apperrors "github.com/shiroemons/go-romtext/internal/romtext/errors"
)

const (
	deeplFreeEndpoint = "https://api-free.deepl.com"
	deeplProEndpoint  = "https://api.deepl.com"
)

// DeepL は DeepL API を使う翻訳エンジン
type DeepL struct {
	client   *http.Client
	endpoint string
	apiKey   string
	source   string
	target   string
}

// NewDeepL は新しいDeepLを作成します。
// ":fx" で終わるキーは無料版のエンドポイントを使います
func NewDeepL(opts Options) (*DeepL, error) {
	if opts.APIKey == "" {
		return nil, apperrors.NewFatalError("deepl", ErrMissingAPIKey)
	}
	endpoint := opts.Endpoint
	if endpoint == "" {
		endpoint = deeplProEndpoint
		if strings.HasSuffix(opts.APIKey, ":fx") {
			endpoint = deeplFreeEndpoint
		}
	}
	return &DeepL{
		client:   opts.httpClient(),
		endpoint: strings.TrimRight(endpoint, "/"),
		apiKey:   opts.APIKey,
		source:   strings.ToUpper(opts.SourceLang),
		target:   strings.ToUpper(opts.TargetLang),
	}, nil
}

type deeplRequest struct {
	Text       []string `json:"text"`
	SourceLang string   `json:"source_lang,omitempty"`
	TargetLang string   `json:"target_lang"`
}

type deeplResponse struct {
	Translations []struct {
		Text string `json:"text"`
	} `json:"translations"`
}

// Translate はテキストを翻訳します
func (d *DeepL) Translate(ctx context.Context, text string) (string, error) {
	body, err := json.Marshal(deeplRequest{Text: []string{text}, SourceLang: d.source, TargetLang: d.target})
	if err != nil {
		return "", apperrors.NewFatalError("deepl", err)
	}
	req, err := http.NewRequest(http.MethodPost, d.endpoint+"/v2/translate", bytes.NewReader(body))
	if err != nil {
		return "", apperrors.NewFatalError("deepl", err)
	}
	req.Header.Set("Authorization", "DeepL-Auth-Key "+d.apiKey)
	req.Header.Set("Content-Type", "application/json")

	var resp deeplResponse
	if err := doJSON(ctx, d.client, "deepl", req, &resp); err != nil {
		return "", err
	}
	if len(resp.Translations) == 0 {
		return "", apperrors.NewTransientError("deepl", fmt.Errorf("%w: translations is empty", ErrUnexpectedResponse))
	}
	return resp.Translations[0].Text, nil
}
