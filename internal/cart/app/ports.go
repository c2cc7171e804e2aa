package app

import "context"

// Slot is the single string-keyed persistence slot holding the serialized
// cart. Read returns (nil, nil) when nothing has been persisted yet.
// Writes replace the whole payload; last write wins across contexts.
type Slot interface {
	Read(ctx context.Context) ([]byte, error)
	Write(ctx context.Context, data []byte) error
	Clear(ctx context.Context) error
}

// CartLine is one rendered row of the cart view.
type CartLine struct {
	ProductID int64
	Title     string
	Category  string
	UnitPrice float64
	Quantity  int64
	LineTotal float64
}

// CartView is the computed view state pushed into the presentation sink
// after every mutation.
type CartView struct {
	Lines     []CartLine
	Subtotal  float64
	Tax       float64
	Total     float64
	ItemCount int64
}

// Renderer is the presentation sink the store pushes view state into. The
// store never reads anything back out of it.
type Renderer interface {
	RenderCart(view CartView)
	RenderBadge(count int64)
}

// NopRenderer discards all view state. Useful for contexts that mutate the
// cart without presenting it.
type NopRenderer struct{}

func (NopRenderer) RenderCart(CartView) {}
func (NopRenderer) RenderBadge(int64)   {}
