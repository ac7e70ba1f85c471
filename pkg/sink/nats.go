package sink

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/shopspring/decimal"

	"github.com/tradecore/matchsim/pkg/engine"
)

// TradeEvent is the wire form published to JetStream and consumed by the
// persistence worker.
type TradeEvent struct {
	EventID string          `json:"event_id"`
	Buyer   string          `json:"buyer"`
	Seller  string          `json:"seller"`
	Price   decimal.Decimal `json:"price"`
	Shares  int64           `json:"shares"`
	Time    time.Time       `json:"time"`
}

// Nats publishes one TradeEvent per trade to a JetStream subject.
type Nats struct {
	js      nats.JetStreamContext
	subject string
}

// NewNats ensures the stream exists and returns the sink. Subject must belong
// to the stream, e.g. stream TRADES with subject TRADES.executed.
func NewNats(nc *nats.Conn, stream, subject string) (*Nats, error) {
	js, err := nc.JetStream()
	if err != nil {
		return nil, err
	}

	_, err = js.AddStream(&nats.StreamConfig{
		Name:     stream,
		Subjects: []string{stream + ".*"},
	})
	if err != nil && err != nats.ErrStreamNameAlreadyInUse {
		return nil, err
	}

	return &Nats{js: js, subject: subject}, nil
}

func (s *Nats) Append(_ context.Context, trade engine.Trade) error {
	ev := TradeEvent{
		EventID: uuid.New().String(),
		Buyer:   trade.Buyer,
		Seller:  trade.Seller,
		Price:   trade.Price,
		Shares:  trade.Shares,
		Time:    time.Now(),
	}
	b, err := json.Marshal(ev)
	if err != nil {
		return err
	}

	_, err = s.js.Publish(s.subject, b)
	return err
}

func (s *Nats) Close() error {
	return nil
}
