package engine

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Clear computes a single uniform clearing price for the whole order set and
// the allocation that price produces. Every distinct order price is tried as
// a candidate, fresh batch queues are built per candidate, and the candidate
// maximizing traded value (volume x price) wins; exact score ties go to the
// higher price. Brute force on purpose: P candidates times an N log N match
// pass keeps the search exhaustive and the result exact.
//
// Independent of any Matcher state. Returns (empty map, zero) for no orders.
func Clear(orders []*Order) (map[string]int64, decimal.Decimal) {
	result := make(map[string]int64)
	bestPrice := decimal.Zero
	if len(orders) == 0 {
		return result, bestPrice
	}

	prices := candidatePrices(orders)

	maxAmount := decimal.NewFromInt(-1)
	for _, p := range prices {
		buys := NewBook(AuctionBuy)
		sells := NewBook(AuctionSell)
		for _, o := range orders {
			switch {
			case o.Side == BUY && o.Price.Cmp(p) >= 0:
				buys.Push(o.Clone())
			case o.Side == SELL && o.Price.Cmp(p) <= 0:
				sells.Push(o.Clone())
			}
		}

		var volume int64
		positions := make(map[string]int64)
		for buys.Len() > 0 && sells.Len() > 0 {
			buy, _ := buys.Pop()
			sell, _ := sells.Pop()

			qty := min(buy.Shares, sell.Shares)
			volume += qty
			positions[buy.Trader] += qty
			positions[sell.Trader] -= qty

			buy.Shares -= qty
			sell.Shares -= qty
			if buy.Shares > 0 {
				buys.Push(buy)
			}
			if sell.Shares > 0 {
				sells.Push(sell)
			}
		}

		amount := p.Mul(decimal.NewFromInt(volume))
		if amount.Cmp(maxAmount) > 0 || (amount.Cmp(maxAmount) == 0 && p.Cmp(bestPrice) > 0) {
			maxAmount = amount
			bestPrice = p
			result = positions
		}
	}

	return result, bestPrice
}

// candidatePrices returns the distinct order prices in ascending order.
func candidatePrices(orders []*Order) []decimal.Decimal {
	seen := make(map[string]struct{}, len(orders))
	prices := make([]decimal.Decimal, 0, len(orders))
	for _, o := range orders {
		key := o.Price.String()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		prices = append(prices, o.Price)
	}
	sort.Slice(prices, func(i, j int) bool { return prices[i].Cmp(prices[j]) < 0 })
	return prices
}
