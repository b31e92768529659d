package romtext

import (
	"bytes"
	"cmp"
	"fmt"
	"slices"
)

// Decoder はROMのバイト列を文字列に変換します
type Decoder interface {
	Decode(data []byte) string
}

// Encoder は文字列をROMのバイト列に変換します
type Encoder interface {
	Encode(s string) []byte
}

// Range はテキストを走査するバイト範囲 [Start, End) です
type Range struct {
	Name  string `yaml:"name"`
	Start int    `yaml:"start"`
	End   int    `yaml:"end"`
}

// String は範囲を表示用に整形します
func (r Range) String() string {
	if r.Name != "" {
		return fmt.Sprintf("%s [0x%X-0x%X)", r.Name, r.Start, r.End)
	}
	return fmt.Sprintf("[0x%X-0x%X)", r.Start, r.End)
}

// Extract は各範囲からヌル終端文字列を抽出し、オフセット順に並べて返します。
// 空の文字列（連続した終端）と、範囲内に終端がない末尾の断片は含みません。
func Extract(rom []byte, ranges []Range, dec Decoder) ([]Record, error) {
	var records []Record
	for _, rg := range ranges {
		found, err := extractRange(rom, rg, dec)
		if err != nil {
			return nil, err
		}
		records = append(records, found...)
	}

	slices.SortStableFunc(records, func(a, b Record) int {
		return cmp.Compare(a.Offset, b.Offset)
	})
	return records, nil
}

func extractRange(rom []byte, rg Range, dec Decoder) ([]Record, error) {
	start, end := rg.Start, rg.End
	if start < 0 || start > end || start >= len(rom) {
		return nil, fmt.Errorf("%w: %s (ROMサイズ 0x%X)", ErrInvalidRange, rg, len(rom))
	}
	if end > len(rom) {
		end = len(rom)
	}

	var records []Record
	pos := start
	for pos < end {
		idx := bytes.IndexByte(rom[pos:end], 0x00)
		if idx < 0 {
			break
		}
		term := pos + idx
		if term > pos {
			text := dec.Decode(rom[pos:term])
			records = append(records, Record{
				Offset:     pos,
				Length:     term - pos + 1,
				Text:       text,
				SourceText: text,
			})
		}
		pos = term + 1
	}
	return records, nil
}
