package romcodec

import "strings"

// Transliterator はROMで表示できない文字を近い綴りに置き換えます
type Transliterator interface {
	Transliterate(s string) string
}

// TransliteratorFunc は関数を Transliterator として使うためのアダプタです
type TransliteratorFunc func(string) string

// Transliterate は f(s) を返します
func (f TransliteratorFunc) Transliterate(s string) string {
	return f(s)
}

var germanReplacer = strings.NewReplacer(
	"ä", "ae", "ö", "oe", "ü", "ue",
	"Ä", "Ae", "Ö", "Oe", "Ü", "Ue",
	"ß", "ss",
)

// German はウムラウトとエスツェットを2文字の綴りに置き換えます
var German Transliterator = TransliteratorFunc(germanReplacer.Replace)

// LookupTransliterator は名前から Transliterator を返します。
// 空文字列と "none" は nil（無効）を返します。
func LookupTransliterator(name string) (Transliterator, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none", "off":
		return nil, true
	case "de", "german":
		return German, true
	default:
		return nil, false
	}
}
