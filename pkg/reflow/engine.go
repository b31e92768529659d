package reflow

import "github.com/shiroemons/go-romtext/pkg/romtext"

// Engine は整形と切り詰めをまとめて行います
type Engine struct {
	Formatter *Formatter
	Truncator *Truncator
	Codec     Codec
}

// NewEngine は新しい Engine を作成します
func NewEngine(sep rune, marker string, codec Codec) *Engine {
	return &Engine{
		Formatter: NewFormatter(sep),
		Truncator: NewTruncator(marker),
		Codec:     codec,
	}
}

// Reflow は原文と翻訳文から、length バイトに収まる最終テキストを作ります。
// 同じ入力に対しては常に同じ結果を返します。
func (e *Engine) Reflow(source, translated string, length int) (string, bool) {
	formatted := e.Formatter.Format(source, translated)
	return e.Truncator.Fit(formatted, length, e.Codec)
}

// Apply はレコードの翻訳文を整形して Text に設定します。
// 翻訳文がないレコードと、確認済み（review: false）のレコードは変更せず false を返します。
// 切り詰めが発生した場合は要確認フラグを立てます。
func (e *Engine) Apply(rec *romtext.Record, source string) bool {
	if rec.RawTranslation == "" || rec.ReviewCleared() {
		return false
	}
	text, truncated := e.Reflow(source, rec.RawTranslation, rec.Length)
	rec.Text = text
	if truncated {
		rec.SetReview(true)
	}
	return true
}
