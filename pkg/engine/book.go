package engine

import "container/heap"

// Ordering reports whether a is served before b.
type Ordering func(a, b *Order) bool

// ContinuousBuy orders the resting buy side: higher price first, then larger
// timestamp, then fewer remaining shares.
//
// Note: the timestamp tie-break favors the numerically larger value, which
// inverts textbook price-time priority (earliest first). The reference
// behavior reads this way and is reproduced here on purpose.
func ContinuousBuy(a, b *Order) bool {
	if c := a.Price.Cmp(b.Price); c != 0 {
		return c > 0
	}
	if a.Timestamp != b.Timestamp {
		return a.Timestamp > b.Timestamp
	}
	return a.Shares < b.Shares
}

// ContinuousSell orders the resting sell side: lower price first, then larger
// timestamp, then fewer remaining shares.
func ContinuousSell(a, b *Order) bool {
	if c := a.Price.Cmp(b.Price); c != 0 {
		return c < 0
	}
	if a.Timestamp != b.Timestamp {
		return a.Timestamp > b.Timestamp
	}
	return a.Shares < b.Shares
}

// AuctionBuy orders the batch-auction buy queue: higher price first, then
// fewer shares, then larger timestamp. The shares tie-break comes before the
// timestamp one, unlike the continuous orderings.
func AuctionBuy(a, b *Order) bool {
	if c := a.Price.Cmp(b.Price); c != 0 {
		return c > 0
	}
	if a.Shares != b.Shares {
		return a.Shares < b.Shares
	}
	return a.Timestamp > b.Timestamp
}

// AuctionSell orders the batch-auction sell queue: lower price first, then
// fewer shares, then larger timestamp.
func AuctionSell(a, b *Order) bool {
	if c := a.Price.Cmp(b.Price); c != 0 {
		return c < 0
	}
	if a.Shares != b.Shares {
		return a.Shares < b.Shares
	}
	return a.Timestamp > b.Timestamp
}

// Book is a best-first collection of resting orders. The ordering is fixed at
// construction; every order held has Shares > 0.
type Book struct {
	h *orderHeap
}

func NewBook(less Ordering) *Book {
	return &Book{h: &orderHeap{less: less}}
}

func (b *Book) Len() int {
	return b.h.Len()
}

func (b *Book) Push(o *Order) {
	heap.Push(b.h, o)
}

// Peek returns the best order without removing it.
func (b *Book) Peek() (*Order, bool) {
	if b.h.Len() == 0 {
		return nil, false
	}
	return b.h.orders[0], true
}

// Pop removes and returns the best order.
func (b *Book) Pop() (*Order, bool) {
	if b.h.Len() == 0 {
		return nil, false
	}
	return heap.Pop(b.h).(*Order), true
}

// orderHeap implements heap.Interface
type orderHeap struct {
	orders []*Order
	less   Ordering
}

func (h orderHeap) Len() int {
	return len(h.orders)
}

func (h orderHeap) Less(i, j int) bool {
	return h.less(h.orders[i], h.orders[j])
}

func (h orderHeap) Swap(i, j int) {
	h.orders[i], h.orders[j] = h.orders[j], h.orders[i]
}

func (h *orderHeap) Push(x any) {
	h.orders = append(h.orders, x.(*Order))
}

func (h *orderHeap) Pop() any {
	n := len(h.orders)
	o := h.orders[n-1]
	h.orders[n-1] = nil
	h.orders = h.orders[:n-1]
	return o
}
