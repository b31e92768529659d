package fileutil

import (
	"os"

	"github.com/spf13/afero"

	"github.com/shiroemons/go-romtext/internal/romtext/interfaces"
)

// FileSystem は afero を使ったファイルシステムの実装
type FileSystem struct {
	fs afero.Fs
}

// NewOSFileSystem は実際のOSファイルシステムを使用する FileSystem を作成します
func NewOSFileSystem() *FileSystem {
	return &FileSystem{fs: afero.NewOsFs()}
}

// NewMemFileSystem はメモリ上のファイルシステムを作成します
func NewMemFileSystem() *FileSystem {
	return &FileSystem{fs: afero.NewMemMapFs()}
}

// NewFileSystem は任意の afero.Fs から FileSystem を作成します
func NewFileSystem(fs afero.Fs) *FileSystem {
	return &FileSystem{fs: fs}
}

// Fs は内部の afero.Fs を返します
func (f *FileSystem) Fs() afero.Fs {
	return f.fs
}

// FileExists はファイルが存在するか確認します
func (f *FileSystem) FileExists(filename string) bool {
	ok, err := afero.Exists(f.fs, filename)
	return err == nil && ok
}

// ReadFile はファイルを読み込みます
func (f *FileSystem) ReadFile(filename string) ([]byte, error) {
	return afero.ReadFile(f.fs, filename)
}

// WriteFile はファイルを書き込みます
func (f *FileSystem) WriteFile(filename string, data []byte, perm uint32) error {
	return afero.WriteFile(f.fs, filename, data, os.FileMode(perm))
}

// MkdirAll はディレクトリを作成します
func (f *FileSystem) MkdirAll(path string, perm uint32) error {
	return f.fs.MkdirAll(path, os.FileMode(perm))
}

// Rename はファイル名を変更します
func (f *FileSystem) Rename(oldpath, newpath string) error {
	return f.fs.Rename(oldpath, newpath)
}

// Remove はファイルを削除します
func (f *FileSystem) Remove(name string) error {
	return f.fs.Remove(name)
}

// CreateTemp は dir に一時ファイルを作成します
func (f *FileSystem) CreateTemp(dir, pattern string) (interfaces.File, error) {
	return afero.TempFile(f.fs, dir, pattern)
}
