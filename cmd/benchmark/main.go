package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tradecore/matchsim/pkg/engine"
)

const (
	numOrders = 200_000
	minPrice  = 100
	maxPrice  = 120
	minQty    = 1
	maxQty    = 100
)

func randomOrder(id int) *engine.Order {
	side := engine.BUY
	if rand.Intn(2) == 0 {
		side = engine.SELL
	}
	cents := minPrice*100 + rand.Intn((maxPrice-minPrice)*100)
	qty := int64(rand.Intn(maxQty-minQty+1) + minQty)

	return &engine.Order{
		ID:        int64(id),
		Trader:    fmt.Sprintf("T%02d", rand.Intn(50)),
		Price:     decimal.New(int64(cents), -2),
		Shares:    qty,
		Timestamp: int64(id),
		Side:      side,
	}
}

func main() {
	orders := make([]*engine.Order, 0, numOrders)
	for i := 0; i < numOrders; i++ {
		orders = append(orders, randomOrder(i + 1))
	}

	matcher := engine.NewMatcher()
	start := time.Now()
	for _, o := range orders {
		matcher.Submit(o.Clone())
	}
	continuous := time.Since(start)

	start = time.Now()
	_, clearingPrice := engine.Clear(orders)
	auction := time.Since(start)

	rep := engine.Analyze(matcher.Trades())

	fmt.Println("--------")
	fmt.Printf("Total Orders     : %d\n", numOrders)
	fmt.Printf("Total Trades     : %d\n", len(matcher.Trades()))
	fmt.Printf("Continuous Time  : %s\n", continuous)
	fmt.Printf("Clearing Price   : %s (%s)\n", clearingPrice, auction)
	fmt.Printf("Total Cash Check : %s\n", rep.TotalCash)
}
