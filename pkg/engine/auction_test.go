package engine

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestAuctionSimpleScenario(t *testing.T) {
	orders := []*Order{
		ord(1, "A", "10", 100, 1, BUY),
		ord(2, "B", "10", 100, 2, SELL),
	}

	allocation, price := Clear(orders)
	if !price.Equal(decimal.NewFromInt(10)) {
		t.Fatalf("expected clearing price 10, got %s", price)
	}
	if allocation["A"] != 100 || allocation["B"] != -100 {
		t.Errorf("incorrect allocation: %+v", allocation)
	}
}

func TestAuctionEmptyInput(t *testing.T) {
	allocation, price := Clear(nil)
	if !price.IsZero() {
		t.Errorf("expected clearing price 0, got %s", price)
	}
	if len(allocation) != 0 {
		t.Errorf("expected empty allocation, got %+v", allocation)
	}
}

func TestAuctionTiePrefersHigherPrice(t *testing.T) {
	// Candidate 5 trades 20 shares, candidate 10 trades 10 shares; both score
	// 100, so the higher price must win.
	orders := []*Order{
		ord(1, "A", "10", 10, 1, BUY),
		ord(2, "B", "5", 10, 2, BUY),
		ord(3, "C", "5", 20, 3, SELL),
	}

	allocation, price := Clear(orders)
	if !price.Equal(decimal.NewFromInt(10)) {
		t.Fatalf("expected tie broken to price 10, got %s", price)
	}
	if allocation["A"] != 10 || allocation["C"] != -10 {
		t.Errorf("incorrect allocation: %+v", allocation)
	}
	if _, ok := allocation["B"]; ok {
		t.Errorf("B must not trade at price 10: %+v", allocation)
	}
}

func TestAuctionZeroVolumeWalksUpToHighestPrice(t *testing.T) {
	// One-sided input: every candidate scores 0 and the score tie walks the
	// clearing price up to the highest order price with an empty allocation.
	orders := []*Order{
		ord(1, "A", "5", 10, 1, BUY),
		ord(2, "B", "7", 10, 2, BUY),
	}

	allocation, price := Clear(orders)
	if !price.Equal(decimal.NewFromInt(7)) {
		t.Fatalf("expected clearing price 7, got %s", price)
	}
	if len(allocation) != 0 {
		t.Errorf("expected empty allocation, got %+v", allocation)
	}
}

func TestAuctionPriceIsAlwaysAnOrderPrice(t *testing.T) {
	orders := []*Order{
		ord(1, "A", "10.5", 40, 1, BUY),
		ord(2, "B", "9.25", 60, 2, BUY),
		ord(3, "C", "8.75", 30, 3, SELL),
		ord(4, "D", "10", 50, 4, SELL),
	}

	_, price := Clear(orders)
	found := false
	for _, o := range orders {
		if price.Equal(o.Price) {
			found = true
		}
	}
	if !found {
		t.Errorf("clearing price %s is not one of the order prices", price)
	}
}

func TestAuctionDoesNotMutateInput(t *testing.T) {
	orders := []*Order{
		ord(1, "A", "10", 100, 1, BUY),
		ord(2, "B", "9", 60, 2, SELL),
	}

	Clear(orders)
	if orders[0].Shares != 100 || orders[1].Shares != 60 {
		t.Errorf("input orders were mutated: %+v %+v", orders[0], orders[1])
	}
}

func TestAuctionZeroSumAllocation(t *testing.T) {
	orders := []*Order{
		ord(1, "A", "12", 80, 1, BUY),
		ord(2, "B", "11", 50, 2, BUY),
		ord(3, "C", "10", 70, 3, SELL),
		ord(4, "D", "11", 40, 4, SELL),
	}

	allocation, _ := Clear(orders)
	var sum int64
	for _, net := range allocation {
		sum += net
	}
	if sum != 0 {
		t.Errorf("allocation must sum to zero, got %d", sum)
	}
}
