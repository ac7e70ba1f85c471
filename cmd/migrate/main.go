package main

import (
	"flag"

	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"go.uber.org/zap"

	"github.com/tradecore/matchsim/config"
	"github.com/tradecore/matchsim/pkg/infra"
	"github.com/tradecore/matchsim/pkg/logging"
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
	if cfg.TradeDB == nil {
		zap.S().Fatal("migrate needs the trade_db config section")
	}

	infra.Migrate("file://migration/sql", cfg.TradeDB.MigrationConnURL)
}
