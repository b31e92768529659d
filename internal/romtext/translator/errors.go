package translator

import "errors"

var (
	// ErrUnsupportedProvider は不明な翻訳エンジンの場合のエラー
	ErrUnsupportedProvider = errors.New("サポートされていない翻訳エンジンです")

	// ErrMissingAPIKey はAPIキーが必要なのに指定されていない場合のエラー
	ErrMissingAPIKey = errors.New("APIキーが指定されていません")

	// ErrLanguagePair は翻訳エンジンが言語の組み合わせに対応していない場合のエラー
	ErrLanguagePair = errors.New("言語の組み合わせに対応していません")

	// ErrHTTPStatus は翻訳エンジンがエラーのステータスを返した場合のエラー
	ErrHTTPStatus = errors.New("翻訳エンジンがエラーを返しました")

	// ErrUnexpectedResponse は応答の形式が想定と異なる場合のエラー
	ErrUnexpectedResponse = errors.New("翻訳エンジンの応答が不正です")
)
