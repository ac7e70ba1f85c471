package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"

	"github.com/tradecore/matchsim/config"
	"github.com/tradecore/matchsim/pkg/engine"
	"github.com/tradecore/matchsim/pkg/feed"
	"github.com/tradecore/matchsim/pkg/infra"
	postgres_wrapper "github.com/tradecore/matchsim/pkg/infra/postgres"
	redis_wrapper "github.com/tradecore/matchsim/pkg/infra/redis"
	"github.com/tradecore/matchsim/pkg/logging"
	"github.com/tradecore/matchsim/pkg/report"
	"github.com/tradecore/matchsim/pkg/repo"
	"github.com/tradecore/matchsim/pkg/sink"
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

	ctx := context.Background()

	orders, err := feed.ReadOrdersFile(cfg.OrdersFile)
	if err != nil {
		zap.S().Errorf("read orders fail: %v", err)
		os.Exit(1)
	}
	zap.S().Infow("orders loaded", "count", len(orders))

	tradeLog := buildSinks(cfg)
	defer func() {
		if err := tradeLog.Close(); err != nil {
			zap.S().Warnw("close trade sinks", "err", err)
		}
	}()

	matcher := engine.NewMatcher()
	matcher.RegisterTradeCallback(func(t engine.Trade) {
		if err := tradeLog.Append(ctx, t); err != nil {
			zap.S().Warnw("trade sink append", "err", err)
		}
	})

	// The matcher decrements shares in place, so each order is cloned and the
	// original set stays intact for the auction pass.
	for _, o := range orders {
		matcher.Submit(o.Clone())
	}

	fmt.Println("\n--- Net Positions ---")
	if err := report.WritePositions(os.Stdout, matcher.Positions()); err != nil {
		zap.S().Errorf("render net positions: %v", err)
	}

	allocation, clearingPrice := engine.Clear(orders)
	fmt.Println("\n--- Auction Result ---")
	if err := report.WriteAuction(os.Stdout, clearingPrice, allocation); err != nil {
		zap.S().Errorf("render auction result: %v", err)
	}

	rep := engine.Analyze(matcher.Trades())
	statsOut, err := os.Create(cfg.StatsFile)
	if err != nil {
		zap.S().Errorf("open stats file: %v", err)
		os.Exit(1)
	}
	defer statsOut.Close()
	if err := report.WriteStats(statsOut, rep); err != nil {
		zap.S().Errorf("render stats: %v", err)
	}

	zap.S().Infow("run complete",
		"trades", len(matcher.Trades()),
		"clearing_price", clearingPrice,
		"total_cash", rep.TotalCash,
	)
}

// buildSinks wires the trade log fan-out from config: file log always, the
// rest only when their section is present.
func buildSinks(cfg *config.AppConfig) sink.TradeSink {
	var sinks []sink.TradeSink

	fileSink, err := sink.NewFile(cfg.TradeLogFile)
	if err != nil {
		zap.S().Errorf("open trade log fail: %v", err)
		os.Exit(1)
	}
	sinks = append(sinks, fileSink)
	sinks = append(sinks, sink.NewMemory(cfg.RecentTradeLimit))

	if cfg.TradeDB != nil {
		db := postgres_wrapper.InitPostgresWithBackoff(cfg.TradeDB)
		if cfg.TradeDB.MigrationConnURL != "" {
			infra.Migrate("file://migration/sql", cfg.TradeDB.MigrationConnURL)
		}
		sinks = append(sinks, sink.NewPostgres(repo.NewRepo(db)))
	}

	if cfg.Redis != nil {
		client, err := redis_wrapper.InitRedis(cfg.Redis)
		if err != nil {
			zap.S().Errorf("init redis fail: %v", err)
			os.Exit(1)
		}
		sinks = append(sinks, sink.NewRedis(client, cfg.Redis.TradeKey, cfg.Redis.TradeMaxLen))
	}

	if cfg.Kafka != nil {
		sinks = append(sinks, sink.NewKafka(cfg.Kafka))
	}

	if cfg.Nats != nil {
		nc, err := nats.Connect(cfg.Nats.URL)
		if err != nil {
			zap.S().Errorf("connect nats fail: %v", err)
			os.Exit(1)
		}
		natsSink, err := sink.NewNats(nc, cfg.Nats.Stream, cfg.Nats.Subject)
		if err != nil {
			zap.S().Errorf("init nats sink fail: %v", err)
			os.Exit(1)
		}
		sinks = append(sinks, natsSink)
	}

	return sink.NewComposite(sinks...)
}
