package engine

import "github.com/shopspring/decimal"

type Side string

const (
	BUY  Side = "BUY"
	SELL Side = "SELL"
)

// Order is a single input record. Shares is the remaining unfilled quantity
// and is the only field mutated after creation.
type Order struct {
	ID        int64
	Trader    string
	Price     decimal.Decimal
	Shares    int64
	Timestamp int64
	Side      Side
}

// Clone returns a copy so matching can decrement Shares without touching the
// caller's order set.
func (o *Order) Clone() *Order {
	c := *o
	return &c
}

// Trade is one match event. Partial fills produce one Trade per matched slice.
type Trade struct {
	Buyer  string
	Seller string
	Price  decimal.Decimal
	Shares int64
}
