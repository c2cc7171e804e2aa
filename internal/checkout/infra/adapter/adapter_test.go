package adapter_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	cartapp "github.com/dwikikusuma/storefront/internal/cart/app"
	"github.com/dwikikusuma/storefront/internal/cart/infra/memslot"
	catalogapp "github.com/dwikikusuma/storefront/internal/catalog/app"
	"github.com/dwikikusuma/storefront/internal/catalog/infra/staticrepo"
	checkoutapp "github.com/dwikikusuma/storefront/internal/checkout/app"
	"github.com/dwikikusuma/storefront/internal/checkout/infra/adapter"
)

// Full storefront flow over real components: catalog, cart store on an
// in-memory slot, checkout service wired through the adapters.
func TestShoppingFlow(t *testing.T) {
	ctx := context.Background()

	slot := memslot.New()
	catalog := catalogapp.NewService(staticrepo.NewProductRepo())
	store := cartapp.NewStore(slot, nil, nil)
	store.Load(ctx)

	holster, err := catalog.GetProduct(ctx, 1)
	if err != nil {
		t.Fatalf("GetProduct failed: %v", err)
	}
	sight, err := catalog.GetProduct(ctx, 2)
	if err != nil {
		t.Fatalf("GetProduct failed: %v", err)
	}

	if err := store.Add(ctx, holster, 2); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := store.Add(ctx, sight, 1); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	svc := checkoutapp.NewService(
		adapter.NewCartStoreAccess(store),
		adapter.NewCatalogServiceReader(catalog),
		checkoutapp.NewCheckoutValidator(),
		nil,
		0,
	)

	form := map[string]string{
		"fullName":   "Jane Doe",
		"email":      "jane@example.com",
		"phone":      "555-123-4567",
		"address":    "1 Main Street",
		"city":       "Springfield",
		"zip":        "90210",
		"cardName":   "Jane Doe",
		"cardNumber": "4111 1111 1111 1111",
		"expiry":     "12/28",
		"cvv":        "123",
	}

	order, err := svc.PlaceOrder(ctx, form)
	if err != nil {
		t.Fatalf("PlaceOrder failed: %v", err)
	}

	if !regexp.MustCompile(`^[A-Z0-9]{8}$`).MatchString(order.Number) {
		t.Fatalf("bad order number %q", order.Number)
	}

	wantSubtotal := 49.99*2 + 189.99
	if order.Subtotal != wantSubtotal {
		t.Fatalf("subtotal: got %v, want %v", order.Subtotal, wantSubtotal)
	}
	if order.Total != wantSubtotal+wantSubtotal*0.08 {
		t.Fatalf("total: got %v, want %v", order.Total, wantSubtotal*1.08)
	}

	// The cart and its persisted slot are gone.
	if !store.Empty() {
		t.Fatal("cart must be empty after checkout")
	}
	data, err := slot.Read(ctx)
	if err != nil {
		t.Fatalf("slot read failed: %v", err)
	}
	if data != nil {
		t.Fatalf("slot must be cleared after checkout, got %q", data)
	}
	if got := cartapp.Badge(ctx, slot); got != 0 {
		t.Fatalf("badge after checkout: got %d, want 0", got)
	}

	// A second checkout hits the empty-cart gate.
	if _, err := svc.PlaceOrder(ctx, form); !errors.Is(err, checkoutapp.ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
}
