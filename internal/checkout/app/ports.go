package app

import (
	"context"

	"github.com/dwikikusuma/storefront/internal/checkout/domain"
)

// CartItem is the checkout-side view of one cart line.
type CartItem struct {
	ProductID int64
	Title     string
	Price     float64
	Quantity  int64
}

// CartAccess exposes the cart to the checkout flow: read the lines and clear
// the cart once the order is placed.
type CartAccess interface {
	Items(ctx context.Context) ([]CartItem, error)
	Clear(ctx context.Context) error
}

// Product is the checkout-side view of a catalog entry.
type Product struct {
	ID    int64
	Title string
	Price float64
}

// CatalogReader resolves current product data while pricing an order.
type CatalogReader interface {
	GetProduct(ctx context.Context, productID int64) (Product, error)
}

// Renderer is the presentation sink for checkout outcomes.
type Renderer interface {
	RenderFieldErrors(results []FieldError)
	RenderConfirmation(c domain.Confirmation)
}

// FieldError is one inline validation message for the form.
type FieldError struct {
	Field   string
	Message string
}

// NopRenderer discards checkout view state.
type NopRenderer struct{}

func (NopRenderer) RenderFieldErrors([]FieldError)         {}
func (NopRenderer) RenderConfirmation(domain.Confirmation) {}
