package archive

import (
	"github.com/gabriel-vasile/mimetype"
)

// Format はROMファイルの格納形式
type Format int

const (
	FormatRaw Format = iota
	FormatZip
	FormatGzip
	FormatSevenZip
	FormatXZ
)

// String は形式名を返します
func (f Format) String() string {
	switch f {
	case FormatZip:
		return "zip"
	case FormatGzip:
		return "gzip"
	case FormatSevenZip:
		return "7z"
	case FormatXZ:
		return "xz"
	default:
		return "raw"
	}
}

// MIMEタイプと形式の対応
var mimeFormats = []struct {
	mime   string
	format Format
}{
	{"application/zip", FormatZip},
	{"application/gzip", FormatGzip},
	{"application/x-7z-compressed", FormatSevenZip},
	{"application/x-xz", FormatXZ},
}

// Detect はデータの先頭から格納形式を判定します。
// zip を基にした形式でも zip として扱えるように親のMIMEタイプまで調べます
func Detect(data []byte) Format {
	for m := mimetype.Detect(data); m != nil; m = m.Parent() {
		for _, mf := range mimeFormats {
			if m.Is(mf.mime) {
				return mf.format
			}
		}
	}
	return FormatRaw
}
