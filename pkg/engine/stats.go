package engine

import (
	"github.com/montanaflynn/stats"
	"github.com/shopspring/decimal"
)

// TraderStats is the per-trader result of one pass over the trade log.
// PnL is realized cash flow, identical to Cash: open positions are not
// marked to market.
type TraderStats struct {
	TotalVolume int64
	Cash        decimal.Decimal
	History     []int64 // running position after each of the trader's trades
	FinalPos    int64
	MinPos      int64
	MaxPos      int64
	AvgPos      float64
	PnL         decimal.Decimal
}

// Report covers every trader that traded at least once. TotalCash sums Cash
// over all traders and must be zero; it is exposed rather than asserted so a
// caller can surface a conservation bug.
type Report struct {
	Traders   map[string]*TraderStats
	TotalCash decimal.Decimal
}

// Analyze builds the per-trader report from the trade log, in log order.
func Analyze(trades []Trade) *Report {
	traders := make(map[string]*TraderStats)
	position := make(map[string]int64)

	get := func(name string) *TraderStats {
		s, ok := traders[name]
		if !ok {
			s = &TraderStats{Cash: decimal.Zero}
			traders[name] = s
		}
		return s
	}

	for _, t := range trades {
		amount := t.Price.Mul(decimal.NewFromInt(t.Shares))

		buyer := get(t.Buyer)
		position[t.Buyer] += t.Shares
		buyer.Cash = buyer.Cash.Sub(amount)
		buyer.TotalVolume += t.Shares
		buyer.History = append(buyer.History, position[t.Buyer])

		seller := get(t.Seller)
		position[t.Seller] -= t.Shares
		seller.Cash = seller.Cash.Add(amount)
		seller.TotalVolume += t.Shares
		seller.History = append(seller.History, position[t.Seller])
	}

	totalCash := decimal.Zero
	for _, s := range traders {
		hist := make([]float64, len(s.History))
		for i, p := range s.History {
			hist[i] = float64(p)
		}
		minPos, _ := stats.Min(hist)
		maxPos, _ := stats.Max(hist)
		avgPos, _ := stats.Mean(hist)

		s.FinalPos = s.History[len(s.History)-1]
		s.MinPos = int64(minPos)
		s.MaxPos = int64(maxPos)
		s.AvgPos = avgPos
		s.PnL = s.Cash

		totalCash = totalCash.Add(s.Cash)
	}

	return &Report{Traders: traders, TotalCash: totalCash}
}
