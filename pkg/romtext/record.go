// Package romtext はROMイメージからのヌル終端文字列の抽出と書き戻しを行います
package romtext

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Record はROMから抽出した文字列1件を表します
type Record struct {
	Offset         int    // ROM内の開始位置
	Length         int    // 終端の0x00を含むROM上のバイト数
	Text           string // 書き戻すテキスト
	SourceText     string // 抽出時の原文
	RawTranslation string // 翻訳エンジンの出力そのもの
	Review         *bool  // nil: 未設定、true: 要確認、false: 確認済み
}

// NewRecord は検証済みの Record を作成します。Text と SourceText はどちらも text になります
func NewRecord(offset, length int, text string) (Record, error) {
	r := Record{Offset: offset, Length: length, Text: text, SourceText: text}
	if err := r.Validate(); err != nil {
		return Record{}, err
	}
	return r, nil
}

// Validate はオフセットと長さを検証します
func (r Record) Validate() error {
	if r.Offset < 0 {
		return fmt.Errorf("%w: offset=%d", ErrInvalidRecord, r.Offset)
	}
	if r.Length <= 0 {
		return fmt.Errorf("%w: offset=0x%X length=%d", ErrInvalidRecord, r.Offset, r.Length)
	}
	return nil
}

// OffsetHex はオフセットを 0x 付きの16進数で返します
func (r Record) OffsetHex() string {
	return fmt.Sprintf("0x%X", r.Offset)
}

// NeedsReview は要確認フラグが立っているかを返します
func (r Record) NeedsReview() bool {
	return r.Review != nil && *r.Review
}

// ReviewCleared は人が確認済みにした（review: false）かを返します
func (r Record) ReviewCleared() bool {
	return r.Review != nil && !*r.Review
}

// SetReview は要確認フラグを設定します
func (r *Record) SetReview(v bool) {
	r.Review = &v
}

type recordJSON struct {
	Offset         int    `json:"offset"`
	OffsetHex      string `json:"offset_hex"`
	Length         int    `json:"length"`
	Text           string `json:"text"`
	RawTranslation string `json:"text_translator,omitempty"`
	SourceText     string `json:"text_source"`
	Review         *bool  `json:"review,omitempty"`
}

// MarshalJSON は既存の翻訳ファイルと同じフィールド名でJSONを出力します
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	err := enc.Encode(recordJSON{
		Offset:         r.Offset,
		OffsetHex:      r.OffsetHex(),
		Length:         r.Length,
		Text:           r.Text,
		RawTranslation: r.RawTranslation,
		SourceText:     r.SourceText,
		Review:         r.Review,
	})
	if err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// UnmarshalJSON はJSONを読み込み、検証します。offset_hex は無視します
func (r *Record) UnmarshalJSON(data []byte) error {
	var v recordJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	rec := Record{
		Offset:         v.Offset,
		Length:         v.Length,
		Text:           v.Text,
		SourceText:     v.SourceText,
		RawTranslation: v.RawTranslation,
		Review:         v.Review,
	}
	if err := rec.Validate(); err != nil {
		return err
	}
	*r = rec
	return nil
}
