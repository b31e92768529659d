package repoint

import "errors"

var (
	// ErrOffsetRange はオフセットが24ビットに収まらない場合のエラー
	ErrOffsetRange = errors.New("offset does not fit in 24 bits")
	// ErrSearchWindow は検索範囲が不正な場合のエラー
	ErrSearchWindow = errors.New("invalid search window")
	// ErrOverwriteRange は上書きする範囲がROMの外にはみ出す場合のエラー
	ErrOverwriteRange = errors.New("overwrite range exceeds rom size")
)
