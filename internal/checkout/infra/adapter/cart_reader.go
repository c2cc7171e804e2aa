package adapter

import (
	"context"

	cartapp "github.com/dwikikusuma/storefront/internal/cart/app"
	checkoutapp "github.com/dwikikusuma/storefront/internal/checkout/app"
)

// CartStoreAccess adapts the cart store to the checkout CartAccess port.
type CartStoreAccess struct {
	store *cartapp.Store
}

func NewCartStoreAccess(store *cartapp.Store) *CartStoreAccess {
	return &CartStoreAccess{store: store}
}

func (a *CartStoreAccess) Items(ctx context.Context) ([]checkoutapp.CartItem, error) {
	lines := a.store.Items()
	items := make([]checkoutapp.CartItem, 0, len(lines))
	for _, it := range lines {
		items = append(items, checkoutapp.CartItem{
			ProductID: it.ProductID,
			Title:     it.Title,
			Price:     it.Price,
			Quantity:  it.Quantity,
		})
	}
	return items, nil
}

func (a *CartStoreAccess) Clear(ctx context.Context) error {
	return a.store.Clear(ctx)
}
