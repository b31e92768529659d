// Package rompatch はROMのコード領域に小さなパッチを当てます
package rompatch

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// NOP は 68000 の NOP 命令
const NOP uint16 = 0x4E71

var (
	// ErrOddSize は命令単位で埋められないサイズの場合のエラー
	ErrOddSize = errors.New("size must be a multiple of 2")
	// ErrOutOfBounds はパッチ範囲がROMの外にはみ出す場合のエラー
	ErrOutOfBounds = errors.New("patch range out of bounds")
)

// Patch はNOPで埋める領域です
type Patch struct {
	Name   string `yaml:"name"`
	Offset int    `yaml:"offset"`
	Size   int    `yaml:"size"`
}

// FillNOP は rom[offset:offset+size] を NOP 命令で埋めます
func FillNOP(rom []byte, offset, size int) error {
	if size <= 0 || size%2 != 0 {
		return fmt.Errorf("%w: %d", ErrOddSize, size)
	}
	if offset < 0 || offset+size > len(rom) {
		return fmt.Errorf("%w: 0x%X+%d (rom size %d)", ErrOutOfBounds, offset, size, len(rom))
	}
	for i := offset; i < offset+size; i += 2 {
		binary.BigEndian.PutUint16(rom[i:], NOP)
	}
	return nil
}

// Apply はパッチを順に適用します
func Apply(rom []byte, patches []Patch) error {
	for _, p := range patches {
		if err := FillNOP(rom, p.Offset, p.Size); err != nil {
			return fmt.Errorf("%s: %w", p.Name, err)
		}
	}
	return nil
}
