package translator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"slices"
	"strings"

	apperrors "github.com/shiroemons/go-romtext/internal/romtext/errors"
)

const libreEndpoint = "http://localhost:5000"

// Libre は LibreTranslate（Argos Translate のHTTPサーバ）を使う翻訳エンジン
type Libre struct {
	client   *http.Client
	endpoint string
	apiKey   string
	source   string
	target   string
}

// NewLibre は新しいLibreを作成し、サーバが言語の組み合わせに対応しているか確認します
func NewLibre(ctx context.Context, opts Options) (*Libre, error) {
	endpoint := opts.Endpoint
	if endpoint == "" {
		endpoint = libreEndpoint
	}
	l := &Libre{
		client:   opts.httpClient(),
		endpoint: strings.TrimRight(endpoint, "/"),
		apiKey:   opts.APIKey,
		source:   opts.SourceLang,
		target:   opts.TargetLang,
	}
	if err := l.checkLanguages(ctx); err != nil {
		return nil, err
	}
	return l, nil
}

type libreLanguage struct {
	Code    string   `json:"code"`
	Targets []string `json:"targets"`
}

// checkLanguages は /languages を取得して source→target の翻訳モデルがあるか確認します
func (l *Libre) checkLanguages(ctx context.Context) error {
	req, err := http.NewRequest(http.MethodGet, l.endpoint+"/languages", nil)
	if err != nil {
		return apperrors.NewFatalError("libre", err)
	}
	var langs []libreLanguage
	if err := doJSON(ctx, l.client, "libre", req, &langs); err != nil {
		if apperrors.IsTransient(err) {
			return apperrors.NewFatalError("libre", err)
		}
		return err
	}

	var src *libreLanguage
	hasTarget := false
	for i := range langs {
		switch langs[i].Code {
		case l.source:
			src = &langs[i]
		case l.target:
			hasTarget = true
		}
	}
	// 古いサーバは targets を返さない
	if src != nil && (slices.Contains(src.Targets, l.target) || (len(src.Targets) == 0 && hasTarget)) {
		return nil
	}
	return apperrors.NewFatalError("libre", fmt.Errorf("%w: %s→%s", ErrLanguagePair, l.source, l.target))
}

type libreRequest struct {
	Q      string `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
	Format string `json:"format"`
	APIKey string `json:"api_key,omitempty"`
}

type libreResponse struct {
	TranslatedText string `json:"translatedText"`
}

// Translate はテキストを翻訳します
func (l *Libre) Translate(ctx context.Context, text string) (string, error) {
	body, err := json.Marshal(libreRequest{Q: text, Source: l.source, Target: l.target, Format: "text", APIKey: l.apiKey})
	if err != nil {
		return "", apperrors.NewFatalError("libre", err)
	}
	req, err := http.NewRequest(http.MethodPost, l.endpoint+"/translate", bytes.NewReader(body))
	if err != nil {
		return "", apperrors.NewFatalError("libre", err)
	}
	req.Header.Set("Content-Type", "application/json")

	var resp libreResponse
	if err := doJSON(ctx, l.client, "libre", req, &resp); err != nil {
		return "", err
	}
	return resp.TranslatedText, nil
}
