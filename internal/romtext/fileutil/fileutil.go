// Package fileutil はファイル操作のユーティリティ関数を提供します
package fileutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/shiroemons/go-romtext/internal/romtext/interfaces"
	"github.com/shiroemons/go-romtext/pkg/romtext"
)

// MarshalRecords はレコードを2スペースのインデント付きJSONに変換します。
// ASCII以外の文字はエスケープしません
func MarshalRecords(records []romtext.Record) ([]byte, error) {
	if records == nil {
		records = []romtext.Record{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// LoadRecords はJSONファイルからレコードを読み込みます
func LoadRecords(fs interfaces.FileSystem, path string) ([]romtext.Record, error) {
	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrReadRecords, path, err)
	}
	var records []romtext.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDecodeRecords, path, err)
	}
	return records, nil
}

// SaveRecords はレコードをJSONファイルに保存します。
// 同じディレクトリの一時ファイルに書き込んでから置き換えるため、
// 途中で失敗しても以前の内容は壊れません
func SaveRecords(fs interfaces.FileSystem, path string, records []romtext.Record) error {
	data, err := MarshalRecords(records)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteContent, err)
	}
	return WriteFileAtomic(fs, path, data)
}

// WriteFileAtomic は一時ファイルを経由して path に data を書き込みます
func WriteFileAtomic(fs interfaces.FileSystem, path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := fs.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("%w: %w", ErrCreateDirectory, err)
	}

	tmp, err := fs.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCreateFile, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		fs.Remove(tmpName)
		return fmt.Errorf("%w: %w", ErrWriteContent, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		fs.Remove(tmpName)
		return fmt.Errorf("%w: %w", ErrWriteContent, err)
	}
	if err := tmp.Close(); err != nil {
		fs.Remove(tmpName)
		return fmt.Errorf("%w: %w", ErrWriteContent, err)
	}

	if err := fs.Rename(tmpName, path); err != nil {
		fs.Remove(tmpName)
		return fmt.Errorf("%w: %w", ErrReplaceFile, err)
	}
	return nil
}

// GenerateOutputFilename は入力ファイル名に接尾辞を付けた出力ファイル名を生成します。
// 圧縮ファイルの場合は中身のROMとして .bin を使います
func GenerateOutputFilename(inputPath, suffix string) string {
	dir := filepath.Dir(inputPath)
	base := filepath.Base(inputPath)
	ext := filepath.Ext(base)
	name := strings.TrimSuffix(base, ext)

	switch strings.ToLower(ext) {
	case ".zip", ".gz", ".7z", ".xz", ".smd":
		if inner := filepath.Ext(name); inner != "" && !strings.EqualFold(ext, ".smd") {
			name = strings.TrimSuffix(name, inner)
		}
		ext = ".bin"
	}
	return filepath.Join(dir, fmt.Sprintf("%s_%s%s", name, suffix, ext))
}

// JSONFilename はROMファイル名から既定のJSONファイル名を生成します
func JSONFilename(romPath string) string {
	base := filepath.Base(romPath)
	for _, ext := range []string{".gz", ".xz", ".zip", ".7z"} {
		if strings.EqualFold(filepath.Ext(base), ext) {
			base = strings.TrimSuffix(base, filepath.Ext(base))
		}
	}
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(filepath.Dir(romPath), base+".json")
}
