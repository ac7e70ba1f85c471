package sink

import (
	"context"

	"github.com/tradecore/matchsim/pkg/engine"
	"github.com/tradecore/matchsim/pkg/repo"
)

// Postgres persists trades through the gorm repo, one row per trade.
type Postgres struct {
	trades repo.ITrade
}

func NewPostgres(r repo.IRepo) *Postgres {
	return &Postgres{trades: r.Trade()}
}

func (s *Postgres) Append(ctx context.Context, trade engine.Trade) error {
	_, err := s.trades.Create(ctx, &repo.Trade{
		Buyer:  trade.Buyer,
		Seller: trade.Seller,
		Price:  trade.Price,
		Shares: trade.Shares,
	})
	return err
}

func (s *Postgres) Close() error {
	return nil
}
