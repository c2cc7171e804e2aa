package main

import (
	"context"
	"net/url"

	"github.com/spf13/cobra"

	cartapp "github.com/dwikikusuma/storefront/internal/cart/app"
	catalog "github.com/dwikikusuma/storefront/internal/catalog/domain"
)

func newProductsCmd() *cobra.Command {
	var (
		category  string
		maxPrice  float64
		minRating float64
	)

	cmd := &cobra.Command{
		Use:   "products",
		Short: "List catalog products, optionally filtered",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			// The category flag mirrors the ?category= navigation link.
			filter := catalog.FilterFromQuery(url.Values{"category": {category}})
			filter.PriceMax = maxPrice
			filter.MinRating = minRating

			return runProducts(ctx, a, filter)
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "category slug (holsters, scopes, cleaning-kits, targets, safety-gear)")
	cmd.Flags().Float64Var(&maxPrice, "max-price", 0, "maximum price, 0 for no limit")
	cmd.Flags().Float64Var(&minRating, "min-rating", 0, "minimum rating, 0 for no limit")
	return cmd
}

func runProducts(ctx context.Context, a *app, filter catalog.Filter) error {
	products, err := a.catalog.ListProducts(ctx, filter)
	if err != nil {
		return err
	}
	a.term.RenderProducts(products)
	a.term.RenderBadge(cartapp.Badge(ctx, a.slot))
	return nil
}
