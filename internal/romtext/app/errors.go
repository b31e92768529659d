package app

import "errors"

var (
	// ErrLoadProfile はプロファイルの読み込みに失敗した場合のエラー
	ErrLoadProfile = errors.New("プロファイルの読み込みに失敗しました")

	// ErrLoadROM はROMの読み込みに失敗した場合のエラー
	ErrLoadROM = errors.New("ROMの読み込みに失敗しました")

	// ErrSaveFile はファイルの保存に失敗した場合のエラー
	ErrSaveFile = errors.New("ファイルの保存に失敗しました")

	// ErrRecordCount は2つのレコードファイルの件数が一致しない場合のエラー
	ErrRecordCount = errors.New("レコードファイルの件数が一致しません")

	// ErrTooLong は割り当てに収まらない文字列がある場合のエラー
	ErrTooLong = errors.New("割り当てに収まらない文字列があります")

	// ErrRecordsSkipped はROMに書き込めなかったレコードがある場合のエラー
	ErrRecordsSkipped = errors.New("書き込めなかったレコードがあります")

	// ErrNoRepoint は付け替えるブロックが指定されていない場合のエラー
	ErrNoRepoint = errors.New("付け替えるブロックが指定されていません")

	// ErrNoPatches は適用するパッチが指定されていない場合のエラー
	ErrNoPatches = errors.New("適用するパッチが指定されていません")
)
