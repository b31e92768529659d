package translator

import (
	"context"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/shiroemons/go-romtext/internal/romtext/interfaces"
)

// Cached は原文をキーに翻訳結果をLRUキャッシュします。
// ROMには同じ文字列が何度も現れるため、翻訳エンジンへの問い合わせが減ります
type Cached struct {
	next   interfaces.Translator
	cache  *lru.Cache[string, string]
	hits   atomic.Int64
	misses atomic.Int64
}

// NewCached は新しいCachedを作成します
func NewCached(next interfaces.Translator, size int) (*Cached, error) {
	cache, err := lru.New[string, string](size)
	if err != nil {
		return nil, err
	}
	return &Cached{next: next, cache: cache}, nil
}

// Translate はキャッシュにあればそれを返し、なければ翻訳して保存します
func (c *Cached) Translate(ctx context.Context, text string) (string, error) {
	if out, ok := c.cache.Get(text); ok {
		c.hits.Add(1)
		return out, nil
	}
	c.misses.Add(1)
	out, err := c.next.Translate(ctx, text)
	if err != nil {
		return "", err
	}
	c.cache.Add(text, out)
	return out, nil
}

// Stats はキャッシュのヒット数とミス数を返します
func (c *Cached) Stats() (hits, misses int64) {
	return c.hits.Load(), c.misses.Load()
}
