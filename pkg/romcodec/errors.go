package romcodec

import "errors"

var (
	// ErrDuplicateCode は同じエスケープ列が複数回定義された場合のエラー
	ErrDuplicateCode = errors.New("エスケープ列が重複しています")

	// ErrDuplicateCanonical は同じ文字に正規のエスケープ列が複数ある場合のエラー
	ErrDuplicateCanonical = errors.New("正規のエスケープ列が重複しています")

	// ErrUnknownEncoding は文字コード名を解決できない場合のエラー
	ErrUnknownEncoding = errors.New("未対応の文字コードです")

	// ErrNilCharacterMap は対応表が指定されていない場合のエラー
	ErrNilCharacterMap = errors.New("文字対応表が指定されていません")
)
