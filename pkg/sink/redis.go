package sink

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"

	"github.com/tradecore/matchsim/pkg/engine"
)

// Redis keeps a capped list of recent trades (LPUSH + LTRIM), newest first.
type Redis struct {
	client *redis.Client
	key    string
	maxLen int64
}

func NewRedis(client *redis.Client, key string, maxLen int64) *Redis {
	if key == "" {
		key = "trades:recent"
	}
	if maxLen <= 0 {
		maxLen = 1000
	}
	return &Redis{client: client, key: key, maxLen: maxLen}
}

func (s *Redis) Append(ctx context.Context, trade engine.Trade) error {
	b, err := json.Marshal(trade)
	if err != nil {
		return err
	}

	pipe := s.client.Pipeline()
	pipe.LPush(ctx, s.key, b)
	pipe.LTrim(ctx, s.key, 0, s.maxLen-1)
	_, err = pipe.Exec(ctx)
	return err
}

// Recent returns up to limit trades, newest first.
func (s *Redis) Recent(ctx context.Context, limit int64) ([]engine.Trade, error) {
	if limit <= 0 || limit > s.maxLen {
		limit = s.maxLen
	}
	raw, err := s.client.LRange(ctx, s.key, 0, limit-1).Result()
	if err != nil {
		return nil, err
	}

	trades := make([]engine.Trade, 0, len(raw))
	for _, r := range raw {
		var t engine.Trade
		if err := json.Unmarshal([]byte(r), &t); err != nil {
			return nil, err
		}
		trades = append(trades, t)
	}
	return trades, nil
}

func (s *Redis) Close() error {
	return s.client.Close()
}
