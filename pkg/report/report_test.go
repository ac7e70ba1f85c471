package report

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tradecore/matchsim/pkg/engine"
)

func TestWritePositions(t *testing.T) {
	var buf bytes.Buffer
	err := WritePositions(&buf, map[string]int64{
		"Carol": -30,
		"Alice": 100,
		"Bob":   0,
	})
	require.NoError(t, err)

	// Sorted by name, zero positions omitted, shorts rendered as magnitude.
	assert.Equal(t, "Alice L 100\nCarol S 30\n", buf.String())
}

func TestWriteTrades(t *testing.T) {
	var buf bytes.Buffer
	err := WriteTrades(&buf, []engine.Trade{
		{Buyer: "A", Seller: "B", Price: decimal.RequireFromString("10.5"), Shares: 100},
	})
	require.NoError(t, err)
	assert.Equal(t, "A,B,10.5,100\n", buf.String())
}

func TestWriteAuction(t *testing.T) {
	var buf bytes.Buffer
	err := WriteAuction(&buf, decimal.NewFromInt(10), map[string]int64{"A": 100, "B": -100})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Clearing Price: 10\n")
	assert.Contains(t, out, "A L 100\n")
	assert.Contains(t, out, "B S 100\n")
}

func TestWriteStats(t *testing.T) {
	r := engine.Analyze([]engine.Trade{
		{Buyer: "A", Seller: "B", Price: decimal.NewFromInt(10), Shares: 100},
	})

	var buf bytes.Buffer
	require.NoError(t, WriteStats(&buf, r))

	out := buf.String()
	assert.Contains(t, out, "--- Position History & PnL ---")
	assert.Contains(t, out, "A: total volume = 100, cash = -1000, final pos = 100, min = 100, max = 100, avg = 100, PnL = -1000")
	assert.Contains(t, out, "B: total volume = 100, cash = 1000, final pos = -100, min = -100, max = -100, avg = -100, PnL = 1000")
	assert.Contains(t, out, "[CHECK] Total Cash across all traders = 0")
}
