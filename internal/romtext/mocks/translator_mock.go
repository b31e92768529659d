// Package mocks はテスト用のモック実装を提供します
package mocks

import (
	"context"
	"sync"
)

// MockTranslator はTranslatorのモック実装です
type MockTranslator struct {
	mu sync.Mutex

	// Translations に登録された原文はその訳文を返します。
	// 登録がない場合は Prefix + 原文を返します
	Translations map[string]string
	Prefix       string

	// Errors は先頭から順に1回ずつ返されます
	Errors []error

	// OnTranslate が設定されている場合は訳文を返す前に呼ばれます
	OnTranslate func(call int, text string)

	Calls []string
}

// Translate はモック実装です
func (m *MockTranslator) Translate(ctx context.Context, text string) (string, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, text)
	call := len(m.Calls)
	var err error
	if len(m.Errors) > 0 {
		err, m.Errors = m.Errors[0], m.Errors[1:]
	}
	out, ok := m.Translations[text]
	if !ok {
		out = m.Prefix + text
	}
	hook := m.OnTranslate
	m.mu.Unlock()

	if err != nil {
		return "", err
	}
	if hook != nil {
		hook(call, text)
	}
	if ctx.Err() != nil {
		return "", ctx.Err()
	}
	return out, nil
}

// CallCount は呼び出し回数を返します
func (m *MockTranslator) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
