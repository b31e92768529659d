// Package interfaces はromtextコマンドで使用するインターフェースを定義します
package interfaces

import (
	"context"
	"io"
)

// FileSystem はファイルシステム操作のインターフェース
type FileSystem interface {
	FileExists(filename string) bool
	ReadFile(filename string) ([]byte, error)
	WriteFile(filename string, data []byte, perm uint32) error
	MkdirAll(path string, perm uint32) error
	Rename(oldpath, newpath string) error
	Remove(name string) error
	CreateTemp(dir, pattern string) (File, error)
}

// File は書き込み用に開いたファイルのインターフェース
type File interface {
	io.WriteCloser
	Name() string
	Sync() error
}

// ROMLoader はROMイメージを読み込むインターフェースです
type ROMLoader interface {
	Load(ctx context.Context, path string) ([]byte, error)
}

// Translator はテキストを翻訳するインターフェースです。
// 返すエラーは errors.TransientError か errors.FatalError に分類されます
type Translator interface {
	Translate(ctx context.Context, text string) (string, error)
}

// Logger はログ出力のインターフェース
type Logger interface {
	Printf(format string, a ...any)
	Infof(format string, a ...any)
	Warnf(format string, a ...any)
}
