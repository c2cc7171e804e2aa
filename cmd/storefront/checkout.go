package main

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	checkoutapp "github.com/dwikikusuma/storefront/internal/checkout/app"
	"github.com/dwikikusuma/storefront/internal/checkout/infra/adapter"
)

// formFieldFlags maps checkout form fields to their CLI flags.
var formFieldFlags = []struct {
	field string
	flag  string
	usage string
}{
	{"fullName", "name", "full name"},
	{"email", "email", "email address"},
	{"phone", "phone", "10-digit phone number"},
	{"address", "address", "street address"},
	{"city", "city", "city"},
	{"zip", "zip", "ZIP code"},
	{"cardName", "card-name", "name on card"},
	{"cardNumber", "card-number", "16-digit card number"},
	{"expiry", "expiry", "card expiry, MM/YY"},
	{"cvv", "cvv", "card CVV"},
}

func newCheckoutCmd() *cobra.Command {
	values := make(map[string]*string, len(formFieldFlags))

	cmd := &cobra.Command{
		Use:   "checkout",
		Short: "Validate the checkout form and place the order",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			form := make(map[string]string, len(values))
			for field, v := range values {
				form[field] = *v
			}
			return runCheckout(cmd.Context(), a, form)
		},
	}

	for _, f := range formFieldFlags {
		values[f.field] = cmd.Flags().String(f.flag, "", f.usage)
	}
	return cmd
}

func runCheckout(ctx context.Context, a *app, form map[string]string) error {
	store := a.cartStore(ctx)

	svc := checkoutapp.NewService(
		adapter.NewCartStoreAccess(store),
		adapter.NewCatalogServiceReader(a.catalog),
		checkoutapp.NewCheckoutValidator(),
		a.term,
		0,
	)

	_, err := svc.PlaceOrder(ctx, form)
	if errors.Is(err, checkoutapp.ErrEmptyCart) {
		a.term.Notice("Your cart is empty. Add items to continue.")
		return nil
	}
	if errors.Is(err, checkoutapp.ErrInvalidForm) {
		// Inline errors were already rendered.
		return err
	}
	return err
}
