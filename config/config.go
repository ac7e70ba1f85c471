package config

import (
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	postgres_wrapper "github.com/tradecore/matchsim/pkg/infra/postgres"
	redis_wrapper "github.com/tradecore/matchsim/pkg/infra/redis"
	kafkawrapper "github.com/tradecore/matchsim/pkg/kafka_wrapper"
)

type NatsConfig struct {
	URL     string `yaml:"url"`
	Stream  string `yaml:"stream"`
	Subject string `yaml:"subject"`
	Durable string `yaml:"durable"`
}

type AppConfig struct {
	ServiceName string `yaml:"service_name"`
	LogLevel    string `yaml:"log_level"`

	OrdersFile       string `yaml:"orders_file"`
	TradeLogFile     string `yaml:"trade_log_file"`
	StatsFile        string `yaml:"stats_file"`
	RecentTradeLimit int    `yaml:"recent_trade_limit"`

	// Optional collaborators; nil section means disabled.
	TradeDB *postgres_wrapper.PostgresConfig `yaml:"trade_db"`
	Redis   *redis_wrapper.RedisConfig       `yaml:"redis"`
	Kafka   *kafkawrapper.ProducerConfig     `yaml:"kafka"`
	Nats    *NatsConfig                      `yaml:"nats"`
}

// Load load config from file and environment variables.
func Load(filePath string) (*AppConfig, error) {
	if len(filePath) == 0 {
		filePath = os.Getenv("CONFIG_FILE")
	}

	sugar := zap.S().With("func", "config.Load", "filePath", filePath)
	sugar.Debug("Load config...")

	configBytes, err := os.ReadFile(filePath)
	if err != nil {
		sugar.Error("Failed to load config file")
		return nil, err
	}
	configBytes = []byte(os.ExpandEnv(string(configBytes)))

	cfg := &AppConfig{}
	if err := yaml.Unmarshal(configBytes, cfg); err != nil {
		sugar.Error("Failed to parse config file")
		return nil, err
	}

	if cfg.TradeLogFile == "" {
		cfg.TradeLogFile = "trade_log.csv"
	}
	if cfg.StatsFile == "" {
		cfg.StatsFile = "historical_data.txt"
	}

	zap.S().Debugf("config: %+v", cfg)

	return cfg, nil
}
