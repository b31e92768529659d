package mocks

import (
	"context"
	"errors"
)

// MockROMLoader はテスト用のROMLoaderモック
type MockROMLoader struct {
	ROMs  map[string][]byte
	Error error
}

// NewMockROMLoader は新しいMockROMLoaderを作成します
func NewMockROMLoader() *MockROMLoader {
	return &MockROMLoader{ROMs: make(map[string][]byte)}
}

// Load はROMイメージを返します。返すのは登録されたデータのコピーです
func (l *MockROMLoader) Load(ctx context.Context, path string) ([]byte, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}
	if l.Error != nil {
		return nil, l.Error
	}
	data, ok := l.ROMs[path]
	if !ok {
		return nil, errors.New("rom not found")
	}
	return append([]byte(nil), data...), nil
}
