package archive

import (
	"fmt"
	"path/filepath"
	"strings"
)

const (
	smdHeaderSize = 512
	smdBlockSize  = 16384
)

// IsSMD はデータがSMD形式（512バイトのヘッダと16KB単位のインターリーブ）かどうかを判定します
func IsSMD(name string, data []byte) bool {
	if len(data) <= smdHeaderSize || (len(data)-smdHeaderSize)%smdBlockSize != 0 {
		return false
	}
	if strings.EqualFold(filepath.Ext(name), ".smd") {
		return true
	}
	return data[8] == 0xAA && data[9] == 0xBB
}

// DeinterleaveSMD はSMD形式のデータを通常のROMイメージに変換します。
// 各16KBブロックの前半が奇数番地、後半が偶数番地のバイトです
func DeinterleaveSMD(data []byte) ([]byte, error) {
	if len(data) <= smdHeaderSize || (len(data)-smdHeaderSize)%smdBlockSize != 0 {
		return nil, fmt.Errorf("%w: %d バイト", ErrInvalidSMD, len(data))
	}

	body := data[smdHeaderSize:]
	rom := make([]byte, len(body))
	const half = smdBlockSize / 2
	for b := 0; b < len(body); b += smdBlockSize {
		block := body[b : b+smdBlockSize]
		for i := range half {
			rom[b+i*2] = block[half+i]
			rom[b+i*2+1] = block[i]
		}
	}
	return rom, nil
}
