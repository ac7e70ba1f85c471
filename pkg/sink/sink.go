// Package sink holds the collaborator side of the trade stream: the matcher
// produces trades, sinks persist or publish them. Implementations can be
// in-memory, file, Kafka, Redis, NATS or PostgreSQL; Composite fans out to
// several at once.
package sink

import (
	"context"

	"github.com/tradecore/matchsim/pkg/engine"
)

// TradeSink receives each trade as the matcher produces it. A sink failure
// must never invalidate the match itself; callers log and move on.
type TradeSink interface {
	Append(ctx context.Context, trade engine.Trade) error
	Close() error
}

// Composite fans every trade out to all child sinks. Append keeps going past
// failures and returns the first error seen.
type Composite struct {
	sinks []TradeSink
}

func NewComposite(sinks ...TradeSink) *Composite {
	return &Composite{sinks: sinks}
}

func (c *Composite) Append(ctx context.Context, trade engine.Trade) error {
	var firstErr error
	for _, s := range c.sinks {
		if err := s.Append(ctx, trade); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (c *Composite) Close() error {
	var firstErr error
	for _, s := range c.sinks {
		if err := s.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
