// Package archive はROMイメージの読み込みと圧縮ファイルの展開を行います
package archive

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bodgit/sevenzip"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zip"
	"github.com/ulikunitz/xz"

	apperrors "github.com/shiroemons/go-romtext/internal/romtext/errors"
	"github.com/shiroemons/go-romtext/internal/romtext/interfaces"
)

// MaxROMSize は展開後のROMサイズの上限
const MaxROMSize = 64 << 20

// romExtensions はアーカイブ内でROMとして優先するファイルの拡張子
var romExtensions = []string{".bin", ".md", ".gen", ".smd", ".68k"}

// Loader はROMファイルを読み込みます
type Loader struct {
	fs     interfaces.FileSystem
	logger interfaces.Logger
}

// NewLoader は新しいLoaderを作成します
func NewLoader(fs interfaces.FileSystem, logger interfaces.Logger) *Loader {
	return &Loader{
		fs:     fs,
		logger: logger,
	}
}

// Load はROMファイルを読み込み、必要であれば展開とSMD形式の変換を行います
func (l *Loader) Load(ctx context.Context, path string) ([]byte, error) {
	// コンテキストのキャンセルチェック
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	data, err := l.fs.ReadFile(path)
	if err != nil {
		return nil, apperrors.NewROMError("read", path, fmt.Errorf("%w: %w", apperrors.ErrFileNotFound, err))
	}
	if len(data) == 0 {
		return nil, apperrors.NewROMError("read", path, ErrEmptyFile)
	}

	format := Detect(data)
	name := filepath.Base(path)
	if format != FormatRaw {
		l.logger.Printf("%s を %s 形式として展開します\n", name, format)
		name, data, err = Unpack(ctx, format, name, data)
		if err != nil {
			return nil, apperrors.NewROMError("unpack", path, err)
		}
		l.logger.Printf("%s を展開しました（%d バイト）\n", name, len(data))
	}

	if IsSMD(name, data) {
		l.logger.Printf("%s をSMD形式から変換します\n", name)
		if data, err = DeinterleaveSMD(data); err != nil {
			return nil, apperrors.NewROMError("deinterleave", path, err)
		}
	}

	if err := ValidateSystemType(data); err != nil {
		l.logger.Warnf("警告: %s: %v", path, err)
	}
	return data, nil
}

// Unpack は圧縮ファイルからROMを取り出し、中身のファイル名とデータを返します
func Unpack(ctx context.Context, format Format, name string, data []byte) (string, []byte, error) {
	switch format {
	case FormatZip:
		return unpackZip(ctx, data)
	case FormatSevenZip:
		return unpack7z(ctx, data)
	case FormatGzip:
		zr, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return "", nil, fmt.Errorf("%w: %w", ErrExtractFailed, err)
		}
		defer zr.Close()
		inner := zr.Name
		if inner == "" {
			inner = strings.TrimSuffix(name, filepath.Ext(name))
		}
		out, err := readLimited(zr)
		return inner, out, err
	case FormatXZ:
		xr, err := xz.NewReader(bytes.NewReader(data))
		if err != nil {
			return "", nil, fmt.Errorf("%w: %w", ErrExtractFailed, err)
		}
		out, err := readLimited(xr)
		return strings.TrimSuffix(name, filepath.Ext(name)), out, err
	default:
		return name, data, nil
	}
}

// entry はアーカイブ内のファイル
type entry struct {
	name string
	size uint64
	open func() (io.ReadCloser, error)
}

func unpackZip(ctx context.Context, data []byte) (string, []byte, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrExtractFailed, err)
	}
	var entries []entry
	for _, f := range zr.File {
		if f.FileInfo().IsDir() {
			continue
		}
		entries = append(entries, entry{name: f.Name, size: f.UncompressedSize64, open: f.Open})
	}
	return extractEntry(ctx, entries)
}

func unpack7z(ctx context.Context, data []byte) (string, []byte, error) {
	sr, err := sevenzip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrExtractFailed, err)
	}
	var entries []entry
	for _, f := range sr.File {
		if f.FileInfo().IsDir() {
			continue
		}
		entries = append(entries, entry{name: f.Name, size: f.UncompressedSize, open: f.Open})
	}
	return extractEntry(ctx, entries)
}

// extractEntry はROMらしい拡張子のファイルを、なければ最大のファイルを展開します
func extractEntry(ctx context.Context, entries []entry) (string, []byte, error) {
	// コンテキストのキャンセルチェック
	select {
	case <-ctx.Done():
		return "", nil, ctx.Err()
	default:
	}

	e, ok := pickEntry(entries)
	if !ok {
		return "", nil, ErrNoFilesFound
	}
	rc, err := e.open()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %s: %w", ErrExtractFailed, e.name, err)
	}
	defer rc.Close()

	out, err := readLimited(rc)
	if err != nil {
		return "", nil, fmt.Errorf("%s: %w", e.name, err)
	}
	return filepath.Base(e.name), out, nil
}

func pickEntry(entries []entry) (entry, bool) {
	if len(entries) == 0 {
		return entry{}, false
	}
	for _, e := range entries {
		if slices.Contains(romExtensions, strings.ToLower(filepath.Ext(e.name))) {
			return e, true
		}
	}
	return slices.MaxFunc(entries, func(a, b entry) int {
		switch {
		case a.size < b.size:
			return -1
		case a.size > b.size:
			return 1
		}
		return 0
	}), true
}

func readLimited(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxROMSize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExtractFailed, err)
	}
	if len(data) > MaxROMSize {
		return nil, ErrTooLarge
	}
	if len(data) == 0 {
		return nil, ErrEmptyFile
	}
	return data, nil
}
