package sink

import (
	"context"
	"sync"

	"github.com/gammazero/deque"

	"github.com/tradecore/matchsim/pkg/engine"
)

// Memory keeps the most recent trades in a bounded ring; the oldest trade is
// evicted once capacity is reached.
type Memory struct {
	mu       sync.Mutex
	buf      deque.Deque[engine.Trade]
	capacity int
}

func NewMemory(capacity int) *Memory {
	if capacity <= 0 {
		capacity = 1000
	}
	return &Memory{capacity: capacity}
}

func (m *Memory) Append(_ context.Context, trade engine.Trade) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.buf.PushBack(trade)
	if m.buf.Len() > m.capacity {
		m.buf.PopFront()
	}
	return nil
}

// Recent returns up to limit trades, newest first.
func (m *Memory) Recent(limit int) []engine.Trade {
	m.mu.Lock()
	defer m.mu.Unlock()

	if limit <= 0 || limit > m.buf.Len() {
		limit = m.buf.Len()
	}
	out := make([]engine.Trade, 0, limit)
	for i := 0; i < limit; i++ {
		out = append(out, m.buf.At(m.buf.Len()-1-i))
	}
	return out
}

func (m *Memory) Close() error {
	return nil
}
