// Package kafkawrapper is a thin publish-side wrapper over segmentio/kafka-go.
package kafkawrapper

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	kafka "github.com/segmentio/kafka-go"
)

type ProducerConfig struct {
	Brokers        []string `yaml:"brokers"`
	Topic          string   `yaml:"topic"`
	BatchSize      int      `yaml:"batch_size"`
	BatchBytes     int64    `yaml:"batch_bytes"`
	BatchTimeoutMs int64    `yaml:"batch_timeout_ms"`
}

type Producer struct {
	w *kafka.Writer
}

func NewProducer(cfg *ProducerConfig) *Producer {
	if cfg.BatchSize == 0 {
		cfg.BatchSize = 100
	}
	if cfg.BatchBytes == 0 {
		cfg.BatchBytes = 1 << 20
	}
	if cfg.BatchTimeoutMs == 0 {
		cfg.BatchTimeoutMs = 50
	}

	wr := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Topic:                  cfg.Topic,
		Balancer:               &kafka.Hash{},
		BatchSize:              cfg.BatchSize,
		BatchBytes:             cfg.BatchBytes,
		BatchTimeout:           time.Duration(cfg.BatchTimeoutMs) * time.Millisecond,
		AllowAutoTopicCreation: true,
		RequiredAcks:           kafka.RequireNone,
		Async:                  true,
	}
	return &Producer{w: wr}
}

func (p *Producer) Publish(ctx context.Context, key []byte, value []byte) error {
	if p == nil || p.w == nil {
		return errors.New("producer not initialized")
	}
	return p.w.WriteMessages(ctx, kafka.Message{
		Key:   key,
		Value: value,
		Time:  time.Now(),
	})
}

func (p *Producer) PublishJSON(ctx context.Context, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return p.Publish(ctx, []byte(key), b)
}

func (p *Producer) Close() error {
	if p == nil || p.w == nil {
		return nil
	}
	return p.w.Close()
}
