package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	catalogapp "github.com/dwikikusuma/storefront/internal/catalog/app"
)

func newCartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cart",
		Short: "Show the cart with line items and totals",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			store := a.cartStore(cmd.Context())
			a.term.RenderCart(store.View())
			return nil
		},
	}
}

func newAddCmd() *cobra.Command {
	var quantity int64

	cmd := &cobra.Command{
		Use:   "add <product-id>",
		Short: "Add a product to the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			id, err := parseProductID(args[0])
			if err != nil {
				return err
			}
			return runAdd(cmd.Context(), a, id, quantity)
		},
	}

	cmd.Flags().Int64VarP(&quantity, "quantity", "q", 1, "quantity to add")
	return cmd
}

func runAdd(ctx context.Context, a *app, id, quantity int64) error {
	product, err := a.catalog.GetProduct(ctx, id)
	if errors.Is(err, catalogapp.ErrNotFound) {
		return fmt.Errorf("no product with id %d", id)
	}
	if err != nil {
		return err
	}

	store := a.cartStore(ctx)
	if err := store.Add(ctx, product, quantity); err != nil {
		return err
	}
	a.term.Notice(product.Title + " added to cart!")
	return nil
}

func newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <product-id>",
		Short: "Remove a line item from the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			id, err := parseProductID(args[0])
			if err != nil {
				return err
			}
			store := a.cartStore(cmd.Context())
			return store.Remove(cmd.Context(), id)
		},
	}
}

func newQtyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "qty <product-id> <quantity>",
		Short: "Set the quantity of a line item",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			id, err := parseProductID(args[0])
			if err != nil {
				return err
			}
			qty, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid quantity %q", args[1])
			}
			store := a.cartStore(cmd.Context())
			return store.SetQuantity(cmd.Context(), id, qty)
		},
	}
}

func parseProductID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid product id %q", s)
	}
	return id, nil
}
