// Package repoint はROM内のテキストブロックへの参照を別のブロックに付け替えます。
//
// 68000 のコードやポインタテーブルに現れるアドレスの表現（3/4バイトのビッグ/リトル
// エンディアン、8ビットシフト、上位/下位ワード、LEA 命令）を順に検索して置き換えます。
package repoint

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"strings"
)

// maxOffset は24ビットのアドレス空間の上限
const maxOffset = 0xFFFFFF

// leaOpcodeCount は LEA abs.L,An の An の数 (A0-A7)
const leaOpcodeCount = 8

// Pattern は置き換えるバイト列の組です
type Pattern struct {
	Name string
	Old  []byte
	New  []byte
}

// Options は付け替えの設定です
type Options struct {
	// From は参照を外すブロックの先頭
	From int `yaml:"from"`
	// To は新しく参照させるブロックの先頭
	To int `yaml:"to"`
	// ToEnd は To ブロックの終端。上書き時の既定の長さに使われます
	ToEnd int `yaml:"to_end"`

	SearchStart int `yaml:"search_start"`
	// SearchEnd が0の場合はROMの末尾まで検索します
	SearchEnd int `yaml:"search_end"`

	Overwrite bool `yaml:"overwrite"`
	// Length が0の場合は ToEnd-To バイトをコピーします
	Length       int  `yaml:"length"`
	SkipPointers bool `yaml:"skip_pointers"`

	Name string `yaml:"name"`
}

// Count はパターンごとの置換数です
type Count struct {
	Name string
	N    int
}

// Result は付け替えの結果です
type Result struct {
	Counts []Count
	// Overwritten は上書きでコピーしたバイト数
	Overwritten int
}

// Total は置き換えた参照の総数を返します
func (r *Result) Total() int {
	total := 0
	for _, c := range r.Counts {
		total += c.N
	}
	return total
}

// FewPointers は上書きせずに参照が1つ以下しか見つからなかった場合に true を返します
func (r *Result) FewPointers() bool {
	return r.Overwritten == 0 && r.Total() <= 1
}

// String は "Replaced N pointers (be3:1, ...)" 形式の要約を返します
func (r *Result) String() string {
	parts := make([]string, 0, len(r.Counts)+1)
	for _, c := range r.Counts {
		parts = append(parts, fmt.Sprintf("%s:%d", c.Name, c.N))
	}
	if r.Overwritten > 0 {
		parts = append(parts, fmt.Sprintf("overwrite:%d", r.Overwritten))
	}
	return fmt.Sprintf("Replaced %d pointers (%s)", r.Total(), strings.Join(parts, ", "))
}

// Patterns は from を to に置き換えるためのパターンを検索順に返します
func Patterns(from, to int) ([]Pattern, error) {
	if from < 0 || from > maxOffset || to < 0 || to > maxOffset {
		return nil, fmt.Errorf("%w: from=0x%X to=0x%X", ErrOffsetRange, from, to)
	}

	f, t := uint32(from), uint32(to)
	patterns := []Pattern{
		{"be3", be32(f)[1:], be32(t)[1:]},
		{"le3", le32(f)[:3], le32(t)[:3]},
		{"be4", be32(f), be32(t)},
		{"le4", le32(f), le32(t)},
		{"be4shift", be32(f << 8), be32(t << 8)},
		{"le4shift", le32(f << 8), le32(t << 8)},
		{"hilo", hilo(f), hilo(t)},
	}
	for n := range leaOpcodeCount {
		op := []byte{byte(0x41 + n*2), 0xF9}
		patterns = append(patterns, Pattern{
			Name: fmt.Sprintf("lea%d", n),
			Old:  append(append([]byte{}, op...), be32(f)...),
			New:  append(append([]byte{}, op...), be32(t)...),
		})
	}
	return patterns, nil
}

// Apply は rom 内の参照を opts.From から opts.To に付け替えます。
// パターンは順番に適用されるため、先に置き換えたバイト列は後のパターンに一致しません。
func Apply(rom []byte, opts Options) (*Result, error) {
	start, end := opts.SearchStart, opts.SearchEnd
	if end <= 0 || end > len(rom) {
		end = len(rom)
	}
	if start < 0 || start > end {
		return nil, fmt.Errorf("%w: 0x%X-0x%X", ErrSearchWindow, start, end)
	}

	result := &Result{}
	if !opts.SkipPointers {
		patterns, err := Patterns(opts.From, opts.To)
		if err != nil {
			return nil, err
		}
		for _, p := range patterns {
			n := ReplaceWithin(rom, p.Old, p.New, start, end)
			result.Counts = append(result.Counts, Count{Name: p.Name, N: n})
		}
	}

	if opts.Overwrite {
		n, err := overwrite(rom, opts)
		if err != nil {
			return nil, err
		}
		result.Overwritten = n
	}
	return result, nil
}

// ReplaceWithin は start 以降で先頭が end より前にある old をすべて repl に置き換え、
// 置換数を返します。old と repl は同じ長さでなければなりません。
func ReplaceWithin(buf, old, repl []byte, start, end int) int {
	if len(old) == 0 || len(old) != len(repl) {
		return 0
	}
	count := 0
	idx := index(buf, old, start)
	for idx != -1 && idx < end {
		copy(buf[idx:], repl)
		count++
		idx = index(buf, old, idx+len(repl))
	}
	return count
}

// Locate は mark が最初に現れるオフセットを返します。見つからない場合は -1
func Locate(rom []byte, mark string) int {
	if mark == "" {
		return -1
	}
	return bytes.Index(rom, []byte(mark))
}

func overwrite(rom []byte, opts Options) (int, error) {
	length := opts.Length
	if length <= 0 {
		length = opts.ToEnd - opts.To
	}
	if opts.To < 0 || opts.To >= len(rom) || opts.From < 0 || opts.From > len(rom) || length <= 0 {
		return 0, fmt.Errorf("%w: 0x%X+%d -> 0x%X", ErrOverwriteRange, opts.To, length, opts.From)
	}
	// コピー元はROMの末尾で切り詰める
	length = min(length, len(rom)-opts.To)
	if length > len(rom)-opts.From {
		return 0, fmt.Errorf("%w: 0x%X+%d -> 0x%X", ErrOverwriteRange, opts.To, length, opts.From)
	}
	copy(rom[opts.From:opts.From+length], rom[opts.To:opts.To+length])
	return length, nil
}

func index(buf, sub []byte, from int) int {
	if from >= len(buf) {
		return -1
	}
	i := bytes.Index(buf[from:], sub)
	if i < 0 {
		return -1
	}
	return from + i
}

func be32(v uint32) []byte {
	return binary.BigEndian.AppendUint32(nil, v)
}

func le32(v uint32) []byte {
	return binary.LittleEndian.AppendUint32(nil, v)
}

func hilo(v uint32) []byte {
	b := binary.BigEndian.AppendUint16(nil, uint16(v>>16))
	return binary.BigEndian.AppendUint16(b, uint16(v&0xFFFF))
}
