package main

import (
	"context"

	"github.com/spf13/cobra"

	cartapp "github.com/dwikikusuma/storefront/internal/cart/app"
)

func newCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the catalog categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			return runCategories(cmd.Context(), a)
		},
	}
}

func runCategories(ctx context.Context, a *app) error {
	categories, err := a.catalog.Categories(ctx)
	if err != nil {
		return err
	}
	a.term.RenderCategories(categories)
	a.term.RenderBadge(cartapp.Badge(ctx, a.slot))
	return nil
}
