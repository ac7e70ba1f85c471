// Package worker consumes trade events from JetStream and persists them
// through the trade repo, decoupling database writes from the match run.
package worker

import (
	"context"
	"encoding/json"

	_ "github.com/lib/pq"
	"github.com/nats-io/nats.go"
	"go.uber.org/zap"

	"github.com/tradecore/matchsim/pkg/repo"
	"github.com/tradecore/matchsim/pkg/sink"
)

type Worker struct {
	trades repo.ITrade
}

func NewWorker(r repo.IRepo) *Worker {
	return &Worker{
		trades: r.Trade(),
	}
}

// StartConsumer pulls trade events from subject with a durable consumer and
// inserts one row per event. Runs until ctx is canceled.
func (w *Worker) StartConsumer(ctx context.Context, js nats.JetStreamContext, subject, durable string) error {
	cons, err := js.PullSubscribe(subject, durable)
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		msgs, err := cons.Fetch(10)
		if err != nil {
			if err != nats.ErrTimeout {
				zap.S().Warnw("fetch trade events", "err", err)
			}
			continue
		}

		for _, msg := range msgs {
			var ev sink.TradeEvent
			if err := json.Unmarshal(msg.Data, &ev); err != nil {
				zap.S().Warnw("unmarshal trade event", "err", err)
				_ = msg.Ack()
				continue
			}
			if err := w.handleEvent(ctx, ev); err != nil {
				zap.S().Warnw("persist trade event", "event_id", ev.EventID, "err", err)
				continue
			}
			_ = msg.Ack()
		}
	}
}

func (w *Worker) handleEvent(ctx context.Context, ev sink.TradeEvent) error {
	_, err := w.trades.Create(ctx, &repo.Trade{
		Buyer:  ev.Buyer,
		Seller: ev.Seller,
		Price:  ev.Price,
		Shares: ev.Shares,
	})
	return err
}
