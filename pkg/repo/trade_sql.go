package repo

import (
	"context"

	"gorm.io/gorm"
)

type TradeSQLRepo struct {
	db *gorm.DB
}

func NewTradeSQLRepo(db *gorm.DB) *TradeSQLRepo {
	return &TradeSQLRepo{
		db: db,
	}
}

func (s *TradeSQLRepo) dbWithContext(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx)
}

func (s *TradeSQLRepo) Create(ctx context.Context, record *Trade) (*Trade, error) {
	return record, s.dbWithContext(ctx).Create(record).Error
}

func (s *TradeSQLRepo) BulkCreate(ctx context.Context, records []*Trade) ([]*Trade, error) {
	return records, s.dbWithContext(ctx).Create(records).Error
}

func (s *TradeSQLRepo) Recent(ctx context.Context, limit int) ([]*Trade, error) {
	var records []*Trade
	err := s.dbWithContext(ctx).Order("id desc").Limit(limit).Find(&records).Error
	return records, err
}
