// Package errors はカスタムエラータイプを提供します
package errors

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// ErrFileNotFound はファイルが見つからない場合のエラー
	ErrFileNotFound = errors.New("ファイルが見つかりません")

	// ErrInvalidROM はROMが無効な場合のエラー
	ErrInvalidROM = errors.New("無効なROMファイルです")

	// ErrInterrupted はユーザーの中断で処理を終えた場合のエラー
	ErrInterrupted = errors.New("処理が中断されました")

	// ErrRetriesExhausted は再試行の上限に達した場合のエラー
	ErrRetriesExhausted = errors.New("再試行の上限に達しました")
)

// ROMError はROM関連のエラー
type ROMError struct {
	Op   string // 実行していた操作
	Path string // ファイルパス
	Err  error  // 元のエラー
}

// Error はエラーメッセージを返します
func (e *ROMError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap は元のエラーを返します
func (e *ROMError) Unwrap() error {
	return e.Err
}

// NewROMError は新しいROMErrorを作成します
func NewROMError(op, path string, err error) *ROMError {
	return &ROMError{
		Op:   op,
		Path: path,
		Err:  err,
	}
}

// TransientError は再試行で回復する可能性がある翻訳エラー
// （タイムアウト、通信エラー、レート制限、不正な応答など）
type TransientError struct {
	Op  string // 実行していた操作
	Err error  // 元のエラー
}

// Error はエラーメッセージを返します
func (e *TransientError) Error() string {
	return fmt.Sprintf("一時的なエラー: %s: %v", e.Op, e.Err)
}

// Unwrap は元のエラーを返します
func (e *TransientError) Unwrap() error {
	return e.Err
}

// NewTransientError は新しいTransientErrorを作成します
func NewTransientError(op string, err error) *TransientError {
	return &TransientError{
		Op:  op,
		Err: err,
	}
}

// FatalError は再試行しても回復しない翻訳エラー
// （認証エラー、言語ペアがない、再試行の上限など）
type FatalError struct {
	Op  string // 実行していた操作
	Err error  // 元のエラー
}

// Error はエラーメッセージを返します
func (e *FatalError) Error() string {
	return fmt.Sprintf("致命的なエラー: %s: %v", e.Op, e.Err)
}

// Unwrap は元のエラーを返します
func (e *FatalError) Unwrap() error {
	return e.Err
}

// NewFatalError は新しいFatalErrorを作成します
func NewFatalError(op string, err error) *FatalError {
	return &FatalError{
		Op:  op,
		Err: err,
	}
}

// IsTransient は err が一時的なエラーかどうかを返します
func IsTransient(err error) bool {
	var te *TransientError
	return errors.As(err, &te)
}

// IsFatal は err が致命的なエラーかどうかを返します
func IsFatal(err error) bool {
	var fe *FatalError
	return errors.As(err, &fe)
}
