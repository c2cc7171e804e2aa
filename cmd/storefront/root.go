package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	cartapp "github.com/dwikikusuma/storefront/internal/cart/app"
	"github.com/dwikikusuma/storefront/internal/cart/infra/fileslot"
	catalogapp "github.com/dwikikusuma/storefront/internal/catalog/app"
	"github.com/dwikikusuma/storefront/internal/catalog/infra/staticrepo"
	"github.com/dwikikusuma/storefront/pkg/config"
	"github.com/dwikikusuma/storefront/pkg/logger"
	"github.com/dwikikusuma/storefront/pkg/render"
)

// app holds everything one page context needs: the persisted slot, the
// catalog and the terminal sink.
type app struct {
	cfg     config.Config
	log     *slog.Logger
	slot    cartapp.Slot
	catalog *catalogapp.Service
	term    *render.Terminal
}

func newApp() (*app, error) {
	cfg := config.Load()
	log := logger.New(logger.Options{
		Service: "storefront",
		Env:     cfg.AppEnv,
		Level:   cfg.LogLevel,
	})

	slot, err := fileslot.New(cfg.DataDir)
	if err != nil {
		return nil, err
	}

	return &app{
		cfg:     cfg,
		log:     log,
		slot:    slot,
		catalog: catalogapp.NewService(staticrepo.NewProductRepo()),
		term:    render.NewTerminal(os.Stdout),
	}, nil
}

// cartStore builds the cart store for this page context, loaded from the
// persisted slot.
func (a *app) cartStore(ctx context.Context) *cartapp.Store {
	store := cartapp.NewStore(a.slot, a.term, a.log)
	store.Load(ctx)
	return store
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "storefront",
		Short:         "A small e-commerce storefront demo",
		Long:          "Browse the catalog, manage a locally persisted cart and run a simulated checkout.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newProductsCmd(),
		newCategoriesCmd(),
		newCartCmd(),
		newAddCmd(),
		newRemoveCmd(),
		newQtyCmd(),
		newCheckoutCmd(),
		newBrowseCmd(),
	)
	return root
}
