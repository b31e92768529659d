package translator

import (
	"testing"
	"time"
)

func TestPacer_Observe(t *testing.T) {
	t.Run("速い応答で短くなる", func(t *testing.T) {
		p := NewPacer()
		p.Observe(100 * time.Millisecond)
		if got := p.Delay(); got != 250*time.Millisecond {
			t.Errorf("Expected 250ms, got %v", got)
		}
		p.Observe(100 * time.Millisecond)
		if got := p.Delay(); got != MinDelay {
			t.Errorf("Expected %v, got %v", MinDelay, got)
		}
	})

	t.Run("遅い応答で長くなる", func(t *testing.T) {
		p := NewPacer()
		p.Observe(3 * time.Second)
		if got := p.Delay(); got != 750*time.Millisecond {
			t.Errorf("Expected 750ms, got %v", got)
		}
		for range 20 {
			p.Observe(3 * time.Second)
		}
		if got := p.Delay(); got != MaxDelay {
			t.Errorf("Expected %v, got %v", MaxDelay, got)
		}
	})

	t.Run("中間の応答では変わらない", func(t *testing.T) {
		p := NewPacer()
		p.Observe(time.Second)
		if got := p.Delay(); got != InitialDelay {
			t.Errorf("Expected %v, got %v", InitialDelay, got)
		}
	})

	t.Run("直近20件の平均を使う", func(t *testing.T) {
		p := NewPacer()
		for range 20 {
			p.Observe(3 * time.Second)
		}
		for range 20 {
			p.Observe(100 * time.Millisecond)
		}
		// 16件目で平均が0.7秒を下回り、残り5回で8秒から半分ずつになる
		if got := p.Delay(); got != MinDelay {
			t.Errorf("Expected %v, got %v", MinDelay, got)
		}
	})
}
