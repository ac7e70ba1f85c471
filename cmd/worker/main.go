package main

import (
	"context"
	"flag"

	_ "github.com/lib/pq"
	"github.com/nats-io/nats.go"
	"go.uber.org/zap"

	"github.com/tradecore/matchsim/config"
	postgres_wrapper "github.com/tradecore/matchsim/pkg/infra/postgres"
	"github.com/tradecore/matchsim/pkg/logging"
	"github.com/tradecore/matchsim/pkg/repo"
	"github.com/tradecore/matchsim/pkg/worker"
)

func main() {
	var configFile string
	flag.StringVar(&configFile, "config-file", "", "Specify config file path")
	flag.Parse()

	cfg, err := config.Load(configFile)
	if err != nil {
		panic(err)
	}
	if err := logging.Init(cfg.LogLevel); err != nil {
		panic(err)
	}
	if cfg.Nats == nil || cfg.TradeDB == nil {
		zap.S().Fatal("worker needs both nats and trade_db config sections")
	}

	ctx := context.Background()

	nc, err := nats.Connect(cfg.Nats.URL)
	if err != nil {
		zap.S().Fatalf("connect nats fail: %v", err)
	}
	js, err := nc.JetStream()
	if err != nil {
		zap.S().Fatalf("jetstream fail: %v", err)
	}
	_, _ = js.AddStream(&nats.StreamConfig{
		Name:     cfg.Nats.Stream,
		Subjects: []string{cfg.Nats.Stream + ".*"},
	})

	db, err := postgres_wrapper.InitPostgres(cfg.TradeDB)
	if err != nil {
		zap.S().Fatalf("init db fail: %v", err)
	}

	w := worker.NewWorker(repo.NewRepo(db))
	if err := w.StartConsumer(ctx, js, cfg.Nats.Subject, cfg.Nats.Durable); err != nil {
		zap.S().Fatalf("consumer stopped: %v", err)
	}
}
