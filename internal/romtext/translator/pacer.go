package translator

import (
	"sync"
	"time"
)

// 待ち時間の調整に使う値
const (
	InitialDelay  = 500 * time.Millisecond
	MinDelay      = 250 * time.Millisecond
	MaxDelay      = 8 * time.Second
	latencyWindow = 20
	fastLatency   = 700 * time.Millisecond
	slowLatency   = 2 * time.Second
)

// Pacer は直近の応答時間から再試行の基本待ち時間を調整します。
// 平均が速ければ半分に（下限 MinDelay）、遅ければ1.5倍に（上限 MaxDelay）します
type Pacer struct {
	mu        sync.Mutex
	delay     time.Duration
	latencies []time.Duration
	next      int
}

// NewPacer は新しいPacerを作成します
func NewPacer() *Pacer {
	return &Pacer{
		delay:     InitialDelay,
		latencies: make([]time.Duration, 0, latencyWindow),
	}
}

// Delay は現在の基本待ち時間を返します
func (p *Pacer) Delay() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.delay
}

// Observe は応答時間を記録して基本待ち時間を調整します
func (p *Pacer) Observe(latency time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.latencies) < latencyWindow {
		p.latencies = append(p.latencies, latency)
	} else {
		p.latencies[p.next] = latency
		p.next = (p.next + 1) % latencyWindow
	}

	var sum time.Duration
	for _, l := range p.latencies {
		sum += l
	}
	avg := sum / time.Duration(len(p.latencies))

	switch {
	case avg < fastLatency:
		p.delay = max(p.delay/2, MinDelay)
	case avg > slowLatency:
		p.delay = min(p.delay*3/2, MaxDelay)
	}
}
