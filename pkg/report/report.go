// Package report renders engine output as flat text for whatever consumes it
// (stdout, log files). The engine itself never formats anything.
package report

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/tradecore/matchsim/pkg/engine"
)

// WritePositions renders one line per trader: name, L (long) or S (short),
// absolute magnitude. Zero positions are omitted; traders sort by name so
// output is deterministic.
func WritePositions(w io.Writer, positions map[string]int64) error {
	for _, name := range sortedKeys(positions) {
		net := positions[name]
		if net == 0 {
			continue
		}
		side := "L"
		if net < 0 {
			side = "S"
			net = -net
		}
		if _, err := fmt.Fprintf(w, "%s %s %d\n", name, side, net); err != nil {
			return err
		}
	}
	return nil
}

// WriteTrades renders the trade log, one buyer,seller,price,shares line per
// trade in log order.
func WriteTrades(w io.Writer, trades []engine.Trade) error {
	for _, t := range trades {
		if _, err := fmt.Fprintf(w, "%s,%s,%s,%d\n", t.Buyer, t.Seller, t.Price, t.Shares); err != nil {
			return err
		}
	}
	return nil
}

// WriteAuction renders the clearing price and the auction allocation in the
// same listing format as WritePositions.
func WriteAuction(w io.Writer, price decimal.Decimal, positions map[string]int64) error {
	if _, err := fmt.Fprintf(w, "Clearing Price: %s\n", price); err != nil {
		return err
	}
	return WritePositions(w, positions)
}

// WriteStats renders the per-trader report plus the global total-cash check.
func WriteStats(w io.Writer, r *engine.Report) error {
	if _, err := fmt.Fprintf(w, "\n--- Position History & PnL ---\n"); err != nil {
		return err
	}

	for _, name := range sortedKeys(r.Traders) {
		s := r.Traders[name]
		_, err := fmt.Fprintf(w, "%s: total volume = %d, cash = %s, final pos = %d, min = %d, max = %d, avg = %s, PnL = %s\n",
			name, s.TotalVolume, s.Cash, s.FinalPos, s.MinPos, s.MaxPos,
			strconv.FormatFloat(s.AvgPos, 'g', -1, 64), s.PnL)
		if err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "\n[CHECK] Total Cash across all traders = %s\n", r.TotalCash)
	return err
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
