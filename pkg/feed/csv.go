// Package feed reads comma-delimited order records and hands the engine a
// clean, ordered slice. Malformed records are dropped, never fatal.
package feed

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/tradecore/matchsim/pkg/engine"
)

var (
	errMalformedRecord = errors.New("malformed order record")
	errInvalidSide     = errors.New("invalid order side")
)

// ParseOrder parses one record: id,trader,price,shares,timestamp,side.
func ParseOrder(line string) (*engine.Order, error) {
	fields := strings.Split(strings.TrimRight(line, "\r"), ",")
	if len(fields) != 6 {
		return nil, errMalformedRecord
	}

	id, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil {
		return nil, errMalformedRecord
	}
	price, err := decimal.NewFromString(fields[2])
	if err != nil {
		return nil, errMalformedRecord
	}
	shares, err := strconv.ParseInt(fields[3], 10, 64)
	if err != nil {
		return nil, errMalformedRecord
	}
	timestamp, err := strconv.ParseInt(fields[4], 10, 64)
	if err != nil {
		return nil, errMalformedRecord
	}

	side := engine.Side(fields[5])
	if side != engine.BUY && side != engine.SELL {
		return nil, errInvalidSide
	}

	return &engine.Order{
		ID:        id,
		Trader:    fields[1],
		Price:     price,
		Shares:    shares,
		Timestamp: timestamp,
		Side:      side,
	}, nil
}

// ReadOrders reads records line by line in input order, skipping the ones
// that fail to parse.
func ReadOrders(r io.Reader) ([]*engine.Order, error) {
	var orders []*engine.Order

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if line == "" {
			continue
		}

		order, err := ParseOrder(line)
		if err != nil {
			zap.S().Warnw("drop order record", "line", lineNo, "err", err)
			continue
		}
		orders = append(orders, order)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

// ReadOrdersFile opens path and reads all valid orders from it.
func ReadOrdersFile(path string) ([]*engine.Order, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadOrders(f)
}
