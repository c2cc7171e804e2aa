package app

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/dwikikusuma/storefront/internal/cart/domain"
	checkout "github.com/dwikikusuma/storefront/internal/checkout/domain"
)

var (
	ErrEmptyCart   = errors.New("cart is empty")
	ErrInvalidForm = errors.New("form has invalid fields")
)

const (
	orderNumberLen      = 8
	orderNumberAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// Service runs the checkout flow: gate on form validation, price the cart
// against the catalog, produce the order and clear the cart.
type Service struct {
	cart      CartAccess
	catalog   CatalogReader
	validator *Validator
	sink      Renderer

	maxConcurrent int
}

func NewService(cart CartAccess, catalog CatalogReader, validator *Validator, sink Renderer, maxConcurrent int) *Service {
	if maxConcurrent <= 0 {
		maxConcurrent = 10
	}
	if validator == nil {
		validator = NewCheckoutValidator()
	}
	if sink == nil {
		sink = NopRenderer{}
	}
	return &Service{
		cart:          cart,
		catalog:       catalog,
		validator:     validator,
		sink:          sink,
		maxConcurrent: maxConcurrent,
	}
}

// PlaceOrder validates the form, prices the cart and completes the order.
// An empty cart or an invalid form leaves all state untouched.
func (s *Service) PlaceOrder(ctx context.Context, form map[string]string) (checkout.Order, error) {
	items, err := s.cart.Items(ctx)
	if err != nil {
		return checkout.Order{}, err
	}
	if len(items) == 0 {
		return checkout.Order{}, ErrEmptyCart
	}

	if results := s.validator.Results(form); len(results) > 0 {
		fieldErrs := make([]FieldError, 0, len(results))
		for _, r := range results {
			fieldErrs = append(fieldErrs, FieldError{Field: r.Name, Message: r.Message})
		}
		s.sink.RenderFieldErrors(fieldErrs)
		return checkout.Order{}, ErrInvalidForm
	}

	lines, err := s.priceLines(ctx, items)
	if err != nil {
		return checkout.Order{}, err
	}

	var subtotal float64
	for _, ln := range lines {
		subtotal += ln.LineTotal
	}
	tax := subtotal * domain.TaxRate

	order := checkout.Order{
		ID:        uuid.NewString(),
		Number:    newOrderNumber(),
		Email:     form["email"],
		Lines:     lines,
		Subtotal:  subtotal,
		Tax:       tax,
		Total:     subtotal + tax,
		CreatedAt: time.Now(),
	}

	if err := s.cart.Clear(ctx); err != nil {
		return checkout.Order{}, fmt.Errorf("clear cart after order %s: %w", order.Number, err)
	}

	s.sink.RenderConfirmation(checkout.Confirmation{
		Email:       order.Email,
		OrderNumber: order.Number,
		Total:       order.Total,
	})
	return order, nil
}

// priceLines resolves every cart line against the catalog concurrently. A
// product missing from the catalog keeps the price captured in the cart.
func (s *Service) priceLines(ctx context.Context, items []CartItem) ([]checkout.OrderLine, error) {
	lines := make([]checkout.OrderLine, len(items))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxConcurrent)

	for idx := range items {
		idx := idx
		g.Go(func() error {
			it := items[idx]
			if it.Quantity <= 0 {
				return fmt.Errorf("quantity must be greater than zero: %d", it.Quantity)
			}

			title, price := it.Title, it.Price
			if product, err := s.catalog.GetProduct(ctx, it.ProductID); err == nil {
				title, price = product.Title, product.Price
			}

			lines[idx] = checkout.OrderLine{
				ProductID: it.ProductID,
				Title:     title,
				Quantity:  it.Quantity,
				UnitPrice: price,
				LineTotal: price * float64(it.Quantity),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return lines, nil
}

// newOrderNumber draws 8 characters uniformly from A-Z0-9. Not crypto-grade;
// collisions are acceptable for a demo confirmation code.
func newOrderNumber() string {
	buf := make([]byte, orderNumberLen)
	for i := range buf {
		buf[i] = orderNumberAlphabet[rand.Intn(len(orderNumberAlphabet))]
	}
	return string(buf)
}
