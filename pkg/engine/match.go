package engine

import "github.com/shopspring/decimal"

// Matcher runs continuous double-auction matching: each submitted order is
// crossed against the opposite resting book, trades are appended to the log
// and net positions updated, and any unfilled remainder rests on the order's
// own side. Single-threaded; the caller owns all sequencing.
type Matcher struct {
	buys  *Book
	sells *Book

	positions map[string]int64
	trades    []Trade

	callbacks []func(Trade)
}

func NewMatcher() *Matcher {
	return &Matcher{
		buys:      NewBook(ContinuousBuy),
		sells:     NewBook(ContinuousSell),
		positions: make(map[string]int64),
	}
}

// RegisterTradeCallback adds a callback invoked once per trade, in trade
// order, as each trade is produced. External log writes belong here, not in
// the matcher itself.
func (m *Matcher) RegisterTradeCallback(fn func(Trade)) {
	m.callbacks = append(m.callbacks, fn)
}

// Submit matches one incoming order against the opposite book. The order's
// Shares field is decremented in place; pass a Clone when the original set
// must stay intact. Returns the trades this order produced.
func (m *Matcher) Submit(order *Order) []Trade {
	var counter, own *Book
	var marketable func(incoming, best decimal.Decimal) bool

	if order.Side == BUY {
		own, counter = m.buys, m.sells
		marketable = func(incoming, best decimal.Decimal) bool { return incoming.Cmp(best) >= 0 }
	} else {
		own, counter = m.sells, m.buys
		marketable = func(incoming, best decimal.Decimal) bool { return incoming.Cmp(best) <= 0 }
	}

	var made []Trade
	for order.Shares > 0 {
		best, ok := counter.Peek()
		if !ok || !marketable(order.Price, best.Price) {
			break
		}
		counter.Pop()

		qty := min(order.Shares, best.Shares)

		// The earlier-submitted order sets the trade price; on equal
		// timestamps the prices are interchangeable and the resting one wins.
		price := best.Price
		if order.Timestamp < best.Timestamp {
			price = order.Price
		}

		t := Trade{Buyer: order.Trader, Seller: best.Trader, Price: price, Shares: qty}
		if order.Side == SELL {
			t.Buyer, t.Seller = best.Trader, order.Trader
		}

		order.Shares -= qty
		best.Shares -= qty
		m.positions[t.Buyer] += qty
		m.positions[t.Seller] -= qty

		m.trades = append(m.trades, t)
		made = append(made, t)
		for _, cb := range m.callbacks {
			cb(t)
		}

		if best.Shares > 0 {
			counter.Push(best)
		}
	}

	if order.Shares > 0 {
		own.Push(order)
	}

	return made
}

// Trades returns the full append-only trade log.
func (m *Matcher) Trades() []Trade {
	return m.trades
}

// Positions returns a copy of the net position per trader. Positions sum to
// zero across traders after every trade.
func (m *Matcher) Positions() map[string]int64 {
	out := make(map[string]int64, len(m.positions))
	for trader, net := range m.positions {
		out[trader] = net
	}
	return out
}
