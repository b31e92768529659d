package fileutil

import "errors"

var (
	// ErrCreateDirectory は出力先ディレクトリの作成に失敗した場合のエラー
	ErrCreateDirectory = errors.New("出力先ディレクトリの作成に失敗しました")

	// ErrCreateFile はファイルの作成に失敗した場合のエラー
	ErrCreateFile = errors.New("ファイルの作成に失敗しました")

	// ErrWriteContent は内容の書き込みに失敗した場合のエラー
	ErrWriteContent = errors.New("内容の書き込みに失敗しました")

	// ErrReplaceFile は一時ファイルの置き換えに失敗した場合のエラー
	ErrReplaceFile = errors.New("ファイルの置き換えに失敗しました")

	// ErrReadRecords はレコードファイルの読み込みに失敗した場合のエラー
	ErrReadRecords = errors.New("レコードファイルの読み込みに失敗しました")

	// ErrDecodeRecords はレコードファイルの解析に失敗した場合のエラー
	ErrDecodeRecords = errors.New("レコードファイルの解析に失敗しました")
)
