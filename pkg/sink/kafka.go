package sink

import (
	"context"

	kafkawrapper "github.com/tradecore/matchsim/pkg/kafka_wrapper"

	"github.com/tradecore/matchsim/pkg/engine"
)

// Kafka publishes each trade as JSON, keyed by buyer so one trader's fills
// stay on one partition.
type Kafka struct {
	producer *kafkawrapper.Producer
}

func NewKafka(cfg *kafkawrapper.ProducerConfig) *Kafka {
	return &Kafka{producer: kafkawrapper.NewProducer(cfg)}
}

func (s *Kafka) Append(ctx context.Context, trade engine.Trade) error {
	return s.producer.PublishJSON(ctx, trade.Buyer, trade)
}

func (s *Kafka) Close() error {
	return s.producer.Close()
}
