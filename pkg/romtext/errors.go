package romtext

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRecord はオフセットまたは長さが不正な場合のエラー
	ErrInvalidRecord = errors.New("不正なレコードです")

	// ErrInvalidRange は走査範囲が不正な場合のエラー
	ErrInvalidRange = errors.New("不正な走査範囲です")

	// ErrTextTooLong はテキストが割り当てられたバイト数に収まらない場合のエラー
	ErrTextTooLong = errors.New("テキストが長すぎます")

	// ErrOutOfBounds はレコードがROMの範囲外を指している場合のエラー
	ErrOutOfBounds = errors.New("レコードがROMの範囲外です")
)

// RecordError はレコード単位の書き戻しエラー
type RecordError struct {
	Offset int   // レコードのオフセット
	Length int   // 割り当てられたバイト数
	Need   int   // 必要なバイト数（終端を含む）
	Err    error // 元のエラー
}

// Error はエラーメッセージを返します
func (e *RecordError) Error() string {
	if e.Need > 0 {
		return fmt.Sprintf("offset 0x%X: %v (必要=%d, 予約=%d)", e.Offset, e.Err, e.Need, e.Length)
	}
	return fmt.Sprintf("offset 0x%X: %v", e.Offset, e.Err)
}

// Unwrap は元のエラーを返します
func (e *RecordError) Unwrap() error {
	return e.Err
}
