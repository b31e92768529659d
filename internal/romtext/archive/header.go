package archive

import (
	"fmt"
	"strings"
)

// ValidateSystemType は $100-$10F にGenesisのシステム名があるかを確認します
func ValidateSystemType(rom []byte) error {
	if len(rom) < 0x110 {
		return fmt.Errorf("%w: ROMが短すぎます（%d バイト）", ErrSystemType, len(rom))
	}

	sysType := strings.TrimRight(string(rom[0x100:0x110]), " ")
	switch sysType {
	case "SEGA MEGA DRIVE", "SEGA GENESIS":
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrSystemType, sysType)
	}
}
