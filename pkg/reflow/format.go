// Package reflow は機械翻訳の結果を原文の区切り・大文字・パディングに合わせて整形し、
// ROMの割り当てバイト数に収めます。
package reflow

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	// DefaultSeparator はテキストボックスの区切りに使われる文字
	DefaultSeparator = '@'

	// maxTokenLen を超える空白なしの区間は、翻訳エンジンが単語を連結した兆候とみなす
	maxTokenLen = 20

	// upperRatio を超えて大文字が多い区間は全体を大文字にする
	upperRatio = 0.8
)

// Formatter は翻訳文を原文の区切り位置に合わせて再配置します
type Formatter struct {
	Separator rune
}

// NewFormatter は区切り文字を指定して Formatter を作成します
func NewFormatter(sep rune) *Formatter {
	if sep == 0 {
		sep = DefaultSeparator
	}
	return &Formatter{Separator: sep}
}

// Format は原文 source の区切りと大文字の使い方を翻訳文 translated に移します。
//
// 原文に区切りがない場合や翻訳文が1語以下の場合は、前後の空白を除いた翻訳文を返します。
// 翻訳文の単語は区切りの数に応じて各区間に配分され、区切りの後ろのパディングは
// 原文のものがそのまま使われます。
func (f *Formatter) Format(source, translated string) string {
	sep := string(f.Separator)
	translated = f.collapseSeparators(translated)
	words := strings.Fields(translated)
	if !strings.Contains(source, sep) || len(words) < 2 {
		return strings.TrimSpace(translated)
	}

	srcSegs := strings.Split(source, sep)
	pads := f.paddings(source)

	segs := make([]string, len(srcSegs))
	for i, chunk := range distribute(words, len(srcSegs)) {
		segs[i] = strings.Join(chunk, " ")
	}

	for _, seg := range segs {
		if utf8.RuneCountInString(seg) > maxTokenLen && !strings.Contains(seg, " ") {
			return strings.TrimSpace(translated)
		}
	}

	upper := cases.Upper(language.Und)
	for i, src := range srcSegs {
		if uppercaseRatio(src) > upperRatio {
			segs[i] = upper.String(segs[i])
		} else if startsUpper(src) {
			segs[i] = capitalizeFirst(upper, segs[i])
		}
	}

	rebuilt := strings.TrimSpace(segs[0])
	for i, pad := range pads {
		// 区切りの前には空白を1つだけ置く。空の区間が続いた場合は重ねない
		if !strings.HasSuffix(rebuilt, " ") {
			rebuilt += " "
		}
		rebuilt += sep + pad + " " + strings.TrimSpace(segs[i+1])
	}
	return rebuilt
}

// collapseSeparators は連続する区切り文字を空白1つに置き換えます
func (f *Formatter) collapseSeparators(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	prevSep := false
	for _, r := range s {
		if r == f.Separator {
			if !prevSep {
				sb.WriteByte(' ')
			}
			prevSep = true
			continue
		}
		prevSep = false
		sb.WriteRune(r)
	}
	return sb.String()
}

// paddings は各区切り文字の直後に続く空白を順に返します
func (f *Formatter) paddings(s string) []string {
	var pads []string
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		if runes[i] != f.Separator {
			continue
		}
		j := i + 1
		for j < len(runes) && runes[j] == ' ' {
			j++
		}
		pads = append(pads, string(runes[i+1:j]))
		i = j - 1
	}
	return pads
}

// distribute は words を n 個の区間に配分します。
// 先頭の n-1 区間には words/n 語ずつ割り当てますが、残りの区間に1語ずつ行き渡らなく
// なる場合はその区間を1語にします。最後の区間は残りをすべて受け取ります。
func distribute(words []string, n int) [][]string {
	chunks := make([][]string, 0, n)
	remaining := len(words)
	avg := remaining / n
	i := 0
	for k := 0; k < n-1; k++ {
		size := avg
		if remaining-size < n-1-k {
			size = 1
		}
		chunks = append(chunks, window(words, i, i+size))
		i += size
		remaining -= size
	}
	return append(chunks, window(words, i, len(words)))
}

// window は範囲外を切り詰めた words[from:to] を返します
func window(words []string, from, to int) []string {
	from = min(from, len(words))
	to = min(max(to, from), len(words))
	return words[from:to]
}

func uppercaseRatio(s string) float64 {
	letters, upper := 0, 0
	for _, r := range s {
		if !unicode.IsLetter(r) {
			continue
		}
		letters++
		if unicode.IsUpper(r) {
			upper++
		}
	}
	if letters == 0 {
		return 0
	}
	return float64(upper) / float64(letters)
}

func startsUpper(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return r != utf8.RuneError && unicode.IsUpper(r)
}

func capitalizeFirst(upper cases.Caser, s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return upper.String(string(r)) + s[size:]
}
