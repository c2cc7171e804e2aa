// Package render implements the presentation sinks on a terminal. The core
// services only push view state here; nothing is ever read back out.
package render

import (
	"fmt"
	"io"

	cartapp "github.com/dwikikusuma/storefront/internal/cart/app"
	catalog "github.com/dwikikusuma/storefront/internal/catalog/domain"
	checkoutapp "github.com/dwikikusuma/storefront/internal/checkout/app"
	checkout "github.com/dwikikusuma/storefront/internal/checkout/domain"
)

// Terminal renders storefront views as plain text. It satisfies both the
// cart and the checkout renderer ports.
type Terminal struct {
	w io.Writer
}

func NewTerminal(w io.Writer) *Terminal {
	return &Terminal{w: w}
}

func (t *Terminal) RenderCart(view cartapp.CartView) {
	if len(view.Lines) == 0 {
		fmt.Fprintln(t.w, "Your cart is empty. Add items to continue.")
		return
	}

	fmt.Fprintln(t.w, "Cart")
	fmt.Fprintln(t.w, "----")
	for _, ln := range view.Lines {
		fmt.Fprintf(t.w, "  [%d] %s (%s)  $%.2f x %d = $%.2f\n",
			ln.ProductID, ln.Title, ln.Category, ln.UnitPrice, ln.Quantity, ln.LineTotal)
	}
	fmt.Fprintf(t.w, "Subtotal: $%.2f\n", view.Subtotal)
	fmt.Fprintf(t.w, "Tax:      $%.2f\n", view.Tax)
	fmt.Fprintf(t.w, "Total:    $%.2f\n", view.Total)
}

func (t *Terminal) RenderBadge(count int64) {
	if count == 0 {
		return
	}
	fmt.Fprintf(t.w, "(cart: %d)\n", count)
}

func (t *Terminal) RenderProducts(products []catalog.Product) {
	fmt.Fprintf(t.w, "%d products\n", len(products))
	for _, p := range products {
		fmt.Fprintf(t.w, "  [%d] %-40s %-16s $%.2f  %.1f★ (%d reviews)\n",
			p.ID, p.Title, p.Category.DisplayName(), p.Price, p.Rating, p.Reviews)
	}
}

// RenderCategories prints the navigation entries: the category slug as typed
// into filters, next to its display name.
func (t *Terminal) RenderCategories(categories []catalog.Category) {
	fmt.Fprintln(t.w, "Categories")
	fmt.Fprintln(t.w, "----------")
	for _, c := range categories {
		fmt.Fprintf(t.w, "  %-16s %s\n", c, c.DisplayName())
	}
}

func (t *Terminal) RenderFieldErrors(errs []checkoutapp.FieldError) {
	fmt.Fprintln(t.w, "Please fix the following fields:")
	for _, e := range errs {
		fmt.Fprintf(t.w, "  %s: %s\n", e.Field, e.Message)
	}
}

func (t *Terminal) RenderConfirmation(c checkout.Confirmation) {
	fmt.Fprintln(t.w, "Order placed! This is a demo checkout with no actual charges.")
	fmt.Fprintf(t.w, "  Order number: %s\n", c.OrderNumber)
	fmt.Fprintf(t.w, "  Total:        $%.2f\n", c.Total)
	fmt.Fprintf(t.w, "  A confirmation was sent to %s\n", c.Email)
}

// Notice prints a transient notification, e.g. after an add-to-cart action.
func (t *Terminal) Notice(message string) {
	fmt.Fprintf(t.w, "* %s\n", message)
}
