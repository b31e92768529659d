package archive

import "errors"

var (
	// ErrEmptyFile はファイルサイズが0の場合のエラー
	ErrEmptyFile = errors.New("ファイルサイズが0です")

	// ErrExtractFailed はファイルの展開に失敗した場合のエラー
	ErrExtractFailed = errors.New("ファイルの展開に失敗しました")

	// ErrNoFilesFound はアーカイブ内にファイルが見つからない場合のエラー
	ErrNoFilesFound = errors.New("アーカイブ内にファイルが見つかりません")

	// ErrTooLarge は展開後のサイズが上限を超える場合のエラー
	ErrTooLarge = errors.New("展開後のサイズが大きすぎます")

	// ErrInvalidSMD はSMD形式として不正な場合のエラー
	ErrInvalidSMD = errors.New("無効なSMDファイルです")

	// ErrSystemType はGenesisのシステム名が見つからない場合のエラー
	ErrSystemType = errors.New("Genesisのシステム名が見つかりません")
)
