package repo

import "context"

type ITrade interface {
	Create(ctx context.Context, record *Trade) (*Trade, error)
	BulkCreate(ctx context.Context, records []*Trade) ([]*Trade, error)
	Recent(ctx context.Context, limit int) ([]*Trade, error)
}
