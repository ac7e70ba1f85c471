package repo

import (
	"time"

	"github.com/shopspring/decimal"
)

// Trade is the persisted form of one match event.
type Trade struct {
	ID        int64           `gorm:"primaryKey;autoIncrement"`
	Buyer     string          `gorm:"index"`
	Seller    string          `gorm:"index"`
	Price     decimal.Decimal `gorm:"type:numeric(18,6)"`
	Shares    int64
	CreatedAt time.Time
}

func (Trade) TableName() string {
	return "trades"
}
