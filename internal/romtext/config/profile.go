package config

import (
	_ "embed"
	"errors"
	"fmt"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/shiroemons/go-romtext/pkg/reflow"
	"github.com/shiroemons/go-romtext/pkg/repoint"
	"github.com/shiroemons/go-romtext/pkg/romcodec"
	"github.com/shiroemons/go-romtext/pkg/rompatch"
	"github.com/shiroemons/go-romtext/pkg/romtext"
)

//go:embed profiles/traysia.yaml
var traysiaProfile []byte

var (
	// ErrInvalidProfile はプロファイルの内容が不正な場合のエラー
	ErrInvalidProfile = errors.New("無効なプロファイルです")

	// ErrUnknownTransliteration は不明な字訳名の場合のエラー
	ErrUnknownTransliteration = errors.New("不明な字訳です")
)

// CharEntry はプロファイルで定義する文字表の1エントリ
type CharEntry struct {
	Code      int    `yaml:"code"`
	Char      string `yaml:"char"`
	Canonical bool   `yaml:"canonical"`
}

// Marks はブロックの自動検出に使う目印の文字列
type Marks struct {
	Source string `yaml:"source"`
	Target string `yaml:"target"`
}

// Profile はROMごとの設定を保持します
type Profile struct {
	Name             string            `yaml:"name"`
	Encoding         string            `yaml:"encoding"`
	Transliteration  string            `yaml:"transliteration"`
	Separator        string            `yaml:"separator"`
	TruncationMarker string            `yaml:"truncation_marker"`
	CharacterMap     []CharEntry       `yaml:"character_map"`
	Marks            Marks             `yaml:"marks"`
	Ranges           []romtext.Range   `yaml:"ranges"`
	Repoint          []repoint.Options `yaml:"repoint"`
	Patches          []rompatch.Patch  `yaml:"patches"`
}

// DefaultProfile は組み込みのTraysiaプロファイルを返します
func DefaultProfile() (*Profile, error) {
	return ParseProfile(traysiaProfile)
}

// ParseProfile はYAMLからプロファイルを読み込みます
func ParseProfile(data []byte) (*Profile, error) {
	p := &Profile{}
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidProfile, err)
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Profile) validate() error {
	if p.Separator != "" && utf8.RuneCountInString(p.Separator) != 1 {
		return fmt.Errorf("%w: separator must be a single character: %q", ErrInvalidProfile, p.Separator)
	}
	for _, r := range p.Ranges {
		if r.Start < 0 || r.End <= r.Start {
			return fmt.Errorf("%w: range %s", ErrInvalidProfile, r)
		}
	}
	for _, e := range p.CharacterMap {
		if e.Code < 0 || e.Code > 0xFF || utf8.RuneCountInString(e.Char) != 1 {
			return fmt.Errorf("%w: character map entry 0x%X=%q", ErrInvalidProfile, e.Code, e.Char)
		}
	}
	return nil
}

// SeparatorRune はテキストボックスの区切り文字を返します
func (p *Profile) SeparatorRune() rune {
	if p.Separator == "" {
		return reflow.DefaultSeparator
	}
	r, _ := utf8.DecodeRuneInString(p.Separator)
	return r
}

// Marker は切り詰め記号を返します
func (p *Profile) Marker() string {
	if p.TruncationMarker == "" {
		return reflow.DefaultMarker
	}
	return p.TruncationMarker
}

// Table はプロファイルの文字表を返します。定義がない場合は組み込みの表を使います
func (p *Profile) Table() (*romcodec.CharacterMap, error) {
	if len(p.CharacterMap) == 0 {
		return romcodec.Traysia, nil
	}
	entries := make([]romcodec.Entry, 0, len(p.CharacterMap))
	for _, e := range p.CharacterMap {
		r, _ := utf8.DecodeRuneInString(e.Char)
		entries = append(entries, romcodec.Entry{Code: byte(e.Code), Char: r, Canonical: e.Canonical})
	}
	return romcodec.NewCharacterMap(entries)
}

// Codec はプロファイルからコーデックを作成します。
// encoding が空でない場合はプロファイルの設定より優先されます
func (p *Profile) Codec(encoding string) (*romcodec.Codec, error) {
	table, err := p.Table()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidProfile, err)
	}
	translit, ok := romcodec.LookupTransliterator(p.Transliteration)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTransliteration, p.Transliteration)
	}
	if encoding == "" {
		encoding = p.Encoding
	}
	return romcodec.New(table, encoding, translit)
}
