package romcodec

import "strings"

// Codec はROMのバイト列と文字列を相互変換します
type Codec struct {
	table    *CharacterMap
	base     ByteEncoding
	translit Transliterator
}

// New は対応表と基本文字コード名から Codec を作成します。
// translit が nil の場合は字訳を行いません。
func New(table *CharacterMap, encodingName string, translit Transliterator) (*Codec, error) {
	base, err := LookupEncoding(encodingName)
	if err != nil {
		return nil, err
	}
	return NewWithEncoding(table, base, translit)
}

// NewWithEncoding は基本文字コードを直接指定して Codec を作成します
func NewWithEncoding(table *CharacterMap, base ByteEncoding, translit Transliterator) (*Codec, error) {
	if table == nil {
		return nil, ErrNilCharacterMap
	}
	return &Codec{table: table, base: base, translit: translit}, nil
}

// Table は対応表を返します
func (c *Codec) Table() *CharacterMap {
	return c.table
}

// Decode はバイト列を文字列に変換します。
// 不正な入力でも失敗せず、変換できないバイトは U+FFFD になります。
func (c *Codec) Decode(data []byte) string {
	var sb strings.Builder
	sb.Grow(len(data))
	for i := 0; i < len(data); {
		if data[i] == EscapeByte && i+1 < len(data) {
			if r, ok := c.table.Lookup(data[i+1]); ok {
				sb.WriteRune(r)
				i += 2
				continue
			}
		}
		sb.WriteRune(c.base.DecodeByte(data[i]))
		i++
	}
	return sb.String()
}

// Transliterate は設定された字訳を適用します。無効な場合はそのまま返します
func (c *Codec) Transliterate(s string) string {
	if c.translit == nil {
		return s
	}
	return c.translit.Transliterate(s)
}

// Encode は文字列をバイト列に変換します。
// 表現できない文字は ReplacementByte になります。
func (c *Codec) Encode(s string) []byte {
	s = c.Transliterate(s)
	out := make([]byte, 0, len(s))
	for _, r := range s {
		if pair, ok := c.table.Reverse(r); ok {
			out = append(out, pair[0], pair[1])
			continue
		}
		b, ok := c.base.EncodeRune(r)
		if !ok {
			b = ReplacementByte
		}
		out = append(out, b)
	}
	return out
}

// EncodedLen はエンコード後のバイト数を返します（終端バイトを含まない）
func (c *Codec) EncodedLen(s string) int {
	return len(c.Encode(s))
}

// Fits は終端バイトを含めて length バイトに収まるかを返します
func (c *Codec) Fits(s string, length int) bool {
	return c.EncodedLen(s)+1 <= length
}
