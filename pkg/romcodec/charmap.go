// Package romcodec はROM内のテキストと表示用文字列を相互変換するコーデックを提供します。
//
// ROMのテキストは基本の1バイト文字コード（通常はLatin-1）で格納されていますが、
// アクセント付き文字などはエスケープバイト 0x81 に続く1バイトの
// 2バイト列で表現されます。
//
// 基本的な使い方:
//
//	codec, err := romcodec.New(romcodec.Traysia, "latin-1", nil)
//	if err != nil {
//	    return err
//	}
//	text := codec.Decode(rom[off : off+n])
//	raw := codec.Encode(text)
package romcodec

import "fmt"

// EscapeByte は特殊文字の2バイト列の先頭バイトです
const EscapeByte = 0x81

// Entry はエスケープ列と文字の対応を1件表します
type Entry struct {
	Code      byte // 0x81 に続く2バイト目
	Char      rune
	Canonical bool // エンコード時に採用する正規の対応かどうか
}

// CharacterMap はエスケープ列と文字の不変の対応表です。
// デコードは全エントリを使い、エンコードは正規エントリのみから逆引きします。
type CharacterMap struct {
	forward map[byte]rune
	reverse map[rune]byte
}

// NewCharacterMap はエントリから対応表を構築します。
// 同じ2バイト目が重複している場合や、同じ文字に正規エントリが複数ある場合はエラーになります。
func NewCharacterMap(entries []Entry) (*CharacterMap, error) {
	m := &CharacterMap{
		forward: make(map[byte]rune, len(entries)),
		reverse: make(map[rune]byte, len(entries)),
	}
	for _, e := range entries {
		if _, dup := m.forward[e.Code]; dup {
			return nil, fmt.Errorf("%w: 0x%02X 0x%02X", ErrDuplicateCode, EscapeByte, e.Code)
		}
		m.forward[e.Code] = e.Char
	}
	for _, e := range entries {
		if !e.Canonical {
			continue
		}
		if _, dup := m.reverse[e.Char]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateCanonical, e.Char)
		}
		m.reverse[e.Char] = e.Code
	}
	return m, nil
}

// MustCharacterMap は NewCharacterMap と同じですが、エラー時はpanicします
func MustCharacterMap(entries []Entry) *CharacterMap {
	m, err := NewCharacterMap(entries)
	if err != nil {
		panic(err)
	}
	return m
}

// Lookup はエスケープ列の2バイト目に対応する文字を返します
func (m *CharacterMap) Lookup(code byte) (rune, bool) {
	r, ok := m.forward[code]
	return r, ok
}

// Reverse は文字に対応する正規のエスケープ列を返します
func (m *CharacterMap) Reverse(r rune) ([2]byte, bool) {
	code, ok := m.reverse[r]
	if !ok {
		return [2]byte{}, false
	}
	return [2]byte{EscapeByte, code}, true
}

// Len はデコード可能なエスケープ列の数を返します
func (m *CharacterMap) Len() int {
	return len(m.forward)
}

// Traysia は Traysia（Shinyuden版）のスペイン語ROMで使われる対応表です。
// ドイツ語の拡張は各文字につき1つの列しか持たないため正規エントリとして扱います。
var Traysia = MustCharacterMap([]Entry{
	{'J', '¡', true},
	{'K', '¿', true},
	{'L', 'á', true},
	{'M', 'é', true},
	{'N', 'í', true},
	{'O', 'ó', true},
	{'P', 'ú', true},
	{'Q', 'ñ', true},
	{'R', 'Á', true},
	{'S', 'É', true},
	{'T', 'Í', true},
	{'U', 'Ó', true},
	{'V', 'Ú', true},
	{'W', 'Ñ', true},

	// 一部の別ブロックで使われる代替コード
	{'i', 'Á', false},
	{'j', 'Á', false},
	{'k', 'Í', false},
	{'l', 'Ó', false},
	{'m', 'Ú', false},
	{'n', 'Ñ', false},

	// ドイツ語
	{'a', 'ä', true},
	{'b', 'ö', true},
	{'c', 'ü', true},
	{'d', 'Ä', true},
	{'e', 'Ö', true},
	{'f', 'Ü', true},
	{'g', 'ß', true},
})
