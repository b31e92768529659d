package romtext

// Block は表示可能なバイトが連続する領域です
type Block struct {
	Offset int
	Data   []byte
}

// ScanBlocks は start 以降で表示可能なバイトが minLen 以上続く領域を探します。
// latin1 が true の場合は 0x80-0xFF も表示可能とみなします。
func ScanBlocks(rom []byte, start, minLen int, latin1 bool) []Block {
	if start < 0 {
		start = 0
	}
	if minLen < 1 {
		minLen = 1
	}

	var blocks []Block
	runStart := -1
	flush := func(end int) {
		if runStart >= 0 && end-runStart >= minLen {
			blocks = append(blocks, Block{Offset: runStart, Data: rom[runStart:end]})
		}
		runStart = -1
	}

	for i := start; i < len(rom); i++ {
		if isPrintable(rom[i], latin1) {
			if runStart < 0 {
				runStart = i
			}
			continue
		}
		flush(i)
	}
	flush(len(rom))
	return blocks
}

func isPrintable(b byte, latin1 bool) bool {
	if b >= 0x20 && b <= 0x7E {
		return true
	}
	return latin1 && b >= 0x80
}
