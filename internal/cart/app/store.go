package app

import (
	"context"
	"log/slog"

	"github.com/dwikikusuma/storefront/internal/cart/domain"
	catalog "github.com/dwikikusuma/storefront/internal/catalog/domain"
)

// Store owns the canonical line-item list for one page context. Every
// mutation persists the full list to the slot and pushes fresh view state
// into the renderer.
type Store struct {
	slot Slot
	sink Renderer
	log  *slog.Logger

	cart domain.Cart
}

func NewStore(slot Slot, sink Renderer, log *slog.Logger) *Store {
	if sink == nil {
		sink = NopRenderer{}
	}
	if log == nil {
		log = slog.Default()
	}
	return &Store{
		slot: slot,
		sink: sink,
		log:  log,
	}
}

// Load reads the persisted cart into memory. An absent or malformed slot
// yields an empty cart; the caller never sees an error for either.
func (s *Store) Load(ctx context.Context) {
	data, err := s.slot.Read(ctx)
	if err != nil {
		s.log.Debug("cart slot unreadable, starting empty", slog.Any("err", err))
		s.cart = domain.Cart{}
		return
	}
	if len(data) == 0 {
		s.cart = domain.Cart{}
		return
	}

	cart, err := domain.Decode(data)
	if err != nil {
		s.log.Debug("cart slot malformed, starting empty", slog.Any("err", err))
		s.cart = domain.Cart{}
		return
	}
	s.cart = cart
}

// Add merges a product into the cart: an existing line for the same product
// id has its quantity incremented, otherwise a new line is appended.
// Quantities below 1 count as 1.
func (s *Store) Add(ctx context.Context, p catalog.Product, quantity int64) error {
	if quantity < 1 {
		quantity = 1
	}

	next := s.cloneCart()
	merged := false
	for i := range next.Items {
		if next.Items[i].ProductID == p.ID {
			next.Items[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		next.Items = append(next.Items, domain.LineItem{
			ProductID: p.ID,
			Title:     p.Title,
			Category:  p.Category,
			Price:     p.Price,
			Quantity:  quantity,
		})
	}

	return s.commit(ctx, next)
}

// Remove deletes the line item for productID. A missing id is a benign
// no-op: nothing is persisted or re-rendered.
func (s *Store) Remove(ctx context.Context, productID int64) error {
	kept := s.cart.Items[:0:0]
	for _, it := range s.cart.Items {
		if it.ProductID != productID {
			kept = append(kept, it)
		}
	}
	if len(kept) == len(s.cart.Items) {
		return nil
	}
	return s.commit(ctx, domain.Cart{Items: kept})
}

// SetQuantity replaces the quantity of the line item for productID, clamped
// to a minimum of 1. A missing id is a benign no-op.
func (s *Store) SetQuantity(ctx context.Context, productID int64, quantity int64) error {
	if quantity < 1 {
		quantity = 1
	}
	next := s.cloneCart()
	for i := range next.Items {
		if next.Items[i].ProductID == productID {
			next.Items[i].Quantity = quantity
			return s.commit(ctx, next)
		}
	}
	return nil
}

// Clear empties the persisted slot, then the in-memory cart.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.slot.Clear(ctx); err != nil {
		return err
	}
	s.cart = domain.Cart{}
	s.render()
	return nil
}

func (s *Store) Items() []domain.LineItem {
	out := make([]domain.LineItem, len(s.cart.Items))
	copy(out, s.cart.Items)
	return out
}

func (s *Store) Subtotal() float64   { return s.cart.Subtotal() }
func (s *Store) Tax() float64        { return s.cart.Tax() }
func (s *Store) GrandTotal() float64 { return s.cart.GrandTotal() }
func (s *Store) ItemCount() int64    { return s.cart.ItemCount() }
func (s *Store) Empty() bool         { return s.cart.Empty() }

// commit persists the candidate list, and only then adopts it as the
// in-memory cart and re-renders. A failed persist leaves memory, slot and
// rendered state exactly as they were.
func (s *Store) commit(ctx context.Context, next domain.Cart) error {
	data, err := next.Encode()
	if err != nil {
		return err
	}
	if err := s.slot.Write(ctx, data); err != nil {
		return err
	}
	s.cart = next
	s.render()
	return nil
}

func (s *Store) cloneCart() domain.Cart {
	items := make([]domain.LineItem, len(s.cart.Items))
	copy(items, s.cart.Items)
	return domain.Cart{Items: items}
}

func (s *Store) render() {
	s.sink.RenderCart(s.View())
	s.sink.RenderBadge(s.cart.ItemCount())
}

// View computes the presentation state for the current cart.
func (s *Store) View() CartView {
	lines := make([]CartLine, 0, len(s.cart.Items))
	for _, it := range s.cart.Items {
		lines = append(lines, CartLine{
			ProductID: it.ProductID,
			Title:     it.Title,
			Category:  it.Category.DisplayName(),
			UnitPrice: it.Price,
			Quantity:  it.Quantity,
			LineTotal: it.LineTotal(),
		})
	}
	return CartView{
		Lines:     lines,
		Subtotal:  s.cart.Subtotal(),
		Tax:       s.cart.Tax(),
		Total:     s.cart.GrandTotal(),
		ItemCount: s.cart.ItemCount(),
	}
}

// Badge re-derives the global item-count badge from the persisted slot.
// Pages that have not loaded a store use this to stay consistent with the
// last persisted state.
func Badge(ctx context.Context, slot Slot) int64 {
	data, err := slot.Read(ctx)
	if err != nil || len(data) == 0 {
		return 0
	}
	cart, err := domain.Decode(data)
	if err != nil {
		return 0
	}
	return cart.ItemCount()
}
