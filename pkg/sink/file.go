package sink

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/tradecore/matchsim/pkg/engine"
)

// File appends trades to a flat text log, one buyer,seller,price,shares line
// per trade.
type File struct {
	mu sync.Mutex
	f  *os.File
	w  *bufio.Writer
}

func NewFile(path string) (*File, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("open trade log: %w", err)
	}
	return &File{f: f, w: bufio.NewWriter(f)}, nil
}

func (s *File) Append(_ context.Context, trade engine.Trade) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := fmt.Fprintf(s.w, "%s,%s,%s,%d\n", trade.Buyer, trade.Seller, trade.Price, trade.Shares)
	return err
}

func (s *File) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.w.Flush(); err != nil {
		return err
	}
	return s.f.Close()
}
