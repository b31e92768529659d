package reflow

import (
	"strings"
	"unicode"
)

// DefaultMarker は切り詰めたことを示す文字
const DefaultMarker = "/"

// Encoder は文字列をROMのバイト列に変換します
type Encoder interface {
	Encode(s string) []byte
}

// Codec は字訳とエンコードを行います。*romcodec.Codec がこれを満たします
type Codec interface {
	Encoder
	Transliterate(s string) string
}

// Truncator はテキストを割り当てバイト数に収まるように切り詰めます
type Truncator struct {
	Marker string
}

// NewTruncator は切り詰め記号を指定して Truncator を作成します
func NewTruncator(marker string) *Truncator {
	return &Truncator{Marker: marker}
}

// Truncate は text を終端バイトを含めて limit バイトに収めます。
// 末尾の単語から順に削って切り詰め記号を付け、1語も残らない場合は記号なしで
// limit-1 文字に切り詰めます。切り詰めた場合は true を返します。
func (t *Truncator) Truncate(text string, limit int, enc Encoder) (string, bool) {
	fits := func(s string) bool {
		return len(enc.Encode(s))+1 <= limit
	}
	if fits(text) {
		return text, false
	}

	allowed := text
	for !fits(allowed + t.Marker) {
		allowed = dropLastWord(allowed)
		if allowed == "" {
			return hardTruncate(text, limit, fits), true
		}
	}
	return strings.TrimRightFunc(allowed, unicode.IsSpace) + t.Marker, true
}

// Fit は字訳を適用したテキストが limit に収まればそのまま返し、
// 収まらなければ切り詰めて true を返します。
func (t *Truncator) Fit(text string, limit int, codec Codec) (string, bool) {
	return t.Truncate(codec.Transliterate(text), limit, codec)
}

// dropLastWord は末尾の単語と、その直前の空白1文字を取り除きます
func dropLastWord(s string) string {
	s = strings.TrimRightFunc(s, unicode.IsSpace)
	i := strings.LastIndexFunc(s, unicode.IsSpace)
	if i < 0 {
		return ""
	}
	return s[:i]
}

func hardTruncate(text string, limit int, fits func(string) bool) string {
	runes := []rune(text)
	if n := max(limit-1, 0); len(runes) > n {
		runes = runes[:n]
	}
	// 2バイトで表現される文字が含まれていると文字数だけでは収まらない
	for len(runes) > 0 && !fits(string(runes)) {
		runes = runes[:len(runes)-1]
	}
	return string(runes)
}
