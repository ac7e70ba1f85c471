package engine

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
)

func TestSimpleMatch(t *testing.T) {
	m := NewMatcher()
	m.Submit(ord(1, "A", "10", 100, 1, BUY))
	m.Submit(ord(2, "B", "10", 100, 2, SELL))

	trades := m.Trades()
	if len(trades) != 1 {
		t.Fatalf("expected 1 trade, got %d", len(trades))
	}
	tr := trades[0]
	if tr.Buyer != "A" || tr.Seller != "B" || tr.Shares != 100 || !tr.Price.Equal(decimal.NewFromInt(10)) {
		t.Errorf("incorrect trade: %+v", tr)
	}

	pos := m.Positions()
	if pos["A"] != 100 || pos["B"] != -100 {
		t.Errorf("incorrect positions: %+v", pos)
	}
}

func TestNoMatchDueToPrice(t *testing.T) {
	m := NewMatcher()
	m.Submit(ord(1, "A", "98", 10, 1, BUY))
	m.Submit(ord(2, "B", "100", 10, 2, SELL))

	if len(m.Trades()) != 0 {
		t.Fatalf("expected no trades, got %d", len(m.Trades()))
	}
	if m.buys.Len() != 1 || m.sells.Len() != 1 {
		t.Errorf("both orders should rest, buys=%d sells=%d", m.buys.Len(), m.sells.Len())
	}
}

func TestPricePriorityOverArrival(t *testing.T) {
	m := NewMatcher()
	m.Submit(ord(1, "A", "10", 100, 1, BUY))
	m.Submit(ord(2, "B", "12", 100, 2, BUY))
	m.Submit(ord(3, "C", "9", 150, 3, SELL))

	trades := m.Trades()
	if len(trades) != 2 {
		t.Fatalf("expected 2 trades, got %d", len(trades))
	}

	// The later-arriving but higher-priced buy fills first and sets the
	// price (it rests with the earlier timestamp than the incoming sell).
	if trades[0].Buyer != "B" || trades[0].Shares != 100 || !trades[0].Price.Equal(decimal.NewFromInt(12)) {
		t.Errorf("first trade incorrect: %+v", trades[0])
	}
	if trades[1].Buyer != "A" || trades[1].Shares != 50 || !trades[1].Price.Equal(decimal.NewFromInt(10)) {
		t.Errorf("second trade incorrect: %+v", trades[1])
	}

	pos := m.Positions()
	if pos["A"] != 50 || pos["B"] != 100 || pos["C"] != -150 {
		t.Errorf("incorrect positions: %+v", pos)
	}
}

func TestTradePriceFavorsEarlierTimestamp(t *testing.T) {
	// Resting sell has the larger timestamp, so the incoming buy's price wins.
	m := NewMatcher()
	m.Submit(ord(1, "S", "9", 10, 5, SELL))
	m.Submit(ord(2, "B", "10", 10, 1, BUY))

	trades := m.Trades()
	if len(trades) != 1 {
		t.Fatalf("expected 1 trade, got %d", len(trades))
	}
	if !trades[0].Price.Equal(decimal.NewFromInt(10)) {
		t.Errorf("expected trade at incoming price 10, got %s", trades[0].Price)
	}

	// Resting sell is earlier, so its price wins.
	m = NewMatcher()
	m.Submit(ord(1, "S", "9", 10, 1, SELL))
	m.Submit(ord(2, "B", "10", 10, 2, BUY))

	trades = m.Trades()
	if !trades[0].Price.Equal(decimal.NewFromInt(9)) {
		t.Errorf("expected trade at resting price 9, got %s", trades[0].Price)
	}
}

func TestLargerTimestampServedFirstAtEqualPrice(t *testing.T) {
	m := NewMatcher()
	m.Submit(ord(1, "X", "10", 10, 1, SELL))
	m.Submit(ord(2, "Y", "10", 10, 2, SELL))
	m.Submit(ord(3, "B", "10", 10, 3, BUY))

	trades := m.Trades()
	if len(trades) != 1 {
		t.Fatalf("expected 1 trade, got %d", len(trades))
	}
	if trades[0].Seller != "Y" {
		t.Errorf("expected the larger-timestamp sell to fill first, got seller %s", trades[0].Seller)
	}
}

func TestUnmatchedOrderRests(t *testing.T) {
	m := NewMatcher()
	m.Submit(ord(1, "A", "10", 100, 1, BUY))

	if len(m.Trades()) != 0 {
		t.Fatalf("expected no trades, got %d", len(m.Trades()))
	}
	if len(m.Positions()) != 0 {
		t.Errorf("trader without trades must not appear in positions: %+v", m.Positions())
	}
	if m.buys.Len() != 1 {
		t.Errorf("order should rest on the buy side, len=%d", m.buys.Len())
	}
}

func TestPartialFillReinserts(t *testing.T) {
	m := NewMatcher()
	m.Submit(ord(1, "A", "10", 100, 1, SELL))
	m.Submit(ord(2, "B", "10", 30, 2, BUY))
	m.Submit(ord(3, "C", "10", 30, 3, BUY))

	trades := m.Trades()
	if len(trades) != 2 {
		t.Fatalf("expected 2 trades, got %d", len(trades))
	}
	rest, ok := m.sells.Peek()
	if !ok || rest.Shares != 40 {
		t.Fatalf("expected 40 shares resting, got %+v", rest)
	}
}

func TestTradeCallbackSeesEveryTrade(t *testing.T) {
	m := NewMatcher()
	var seen []Trade
	m.RegisterTradeCallback(func(tr Trade) { seen = append(seen, tr) })

	m.Submit(ord(1, "A", "10", 100, 1, SELL))
	m.Submit(ord(2, "B", "10", 60, 2, BUY))
	m.Submit(ord(3, "C", "10", 60, 3, BUY))

	if len(seen) != len(m.Trades()) {
		t.Fatalf("callback saw %d trades, log has %d", len(seen), len(m.Trades()))
	}
	for i, tr := range m.Trades() {
		if seen[i] != tr {
			t.Errorf("trade %d: callback %+v != log %+v", i, seen[i], tr)
		}
	}
}

func TestZeroSumAndNoOversell(t *testing.T) {
	m := NewMatcher()
	for i := 0; i < 500; i++ {
		side := BUY
		if i%3 == 0 {
			side = SELL
		}
		price := fmt.Sprintf("%d", 95+(i*7)%10)
		m.Submit(ord(int64(i), fmt.Sprintf("T%d", i%7), price, int64(1+(i*13)%50), int64(i), side))

		var sum int64
		for _, net := range m.Positions() {
			sum += net
		}
		if sum != 0 {
			t.Fatalf("positions must sum to zero after every trade, got %d", sum)
		}
	}

	for _, o := range m.buys.h.orders {
		if o.Shares <= 0 {
			t.Errorf("resting buy with non-positive shares: %+v", o)
		}
	}
	for _, o := range m.sells.h.orders {
		if o.Shares <= 0 {
			t.Errorf("resting sell with non-positive shares: %+v", o)
		}
	}
}

func BenchmarkMatcherSubmit(b *testing.B) {
	m := NewMatcher()
	for i := 0; i < 10_000; i++ {
		m.Submit(ord(int64(i), "S", fmt.Sprintf("%d", 100+i%5), 10, int64(i), SELL))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Submit(ord(int64(100_000+i), "B", "101", 10, int64(100_000+i), BUY))
	}
}
