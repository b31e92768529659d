package romcodec

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
)

// ReplacementByte はエンコードできない文字の代わりに出力するバイト（'?'）
const ReplacementByte = '?'

// ByteEncoding は1バイト文字コードのインターフェース。
// *charmap.Charmap はこのインターフェースを満たします。
type ByteEncoding interface {
	// DecodeByte はバイトを文字に変換します。未定義のバイトは utf8.RuneError を返します
	DecodeByte(b byte) rune

	// EncodeRune は文字をバイトに変換します
	EncodeRune(r rune) (b byte, ok bool)
}

type asciiEncoding struct{}

func (asciiEncoding) DecodeByte(b byte) rune {
	if b < utf8.RuneSelf {
		return rune(b)
	}
	return utf8.RuneError
}

func (asciiEncoding) EncodeRune(r rune) (byte, bool) {
	if r >= 0 && r < utf8.RuneSelf {
		return byte(r), true
	}
	return ReplacementByte, false
}

// ASCII は7ビットASCIIです
var ASCII ByteEncoding = asciiEncoding{}

var encodingAliases = map[string]ByteEncoding{
	"ascii":        ASCII,
	"us-ascii":     ASCII,
	"latin-1":      charmap.ISO8859_1,
	"latin1":       charmap.ISO8859_1,
	"iso-8859-1":   charmap.ISO8859_1,
	"iso8859-1":    charmap.ISO8859_1,
	"latin-9":      charmap.ISO8859_15,
	"iso-8859-15":  charmap.ISO8859_15,
	"cp1252":       charmap.Windows1252,
	"windows-1252": charmap.Windows1252,
	"cp850":        charmap.CodePage850,
}

// LookupEncoding は文字コード名から1バイト文字コードを返します。
// よく使う別名を優先し、それ以外はIANA名として解決します。
func LookupEncoding(name string) (ByteEncoding, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return charmap.ISO8859_1, nil
	}
	if enc, ok := encodingAliases[key]; ok {
		return enc, nil
	}

	enc, err := ianaindex.IANA.Encoding(key)
	if err != nil || enc == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEncoding, name)
	}
	cm, ok := enc.(*charmap.Charmap)
	if !ok {
		return nil, fmt.Errorf("%w: %s (1バイト文字コードではありません)", ErrUnknownEncoding, name)
	}
	return cm, nil
}
