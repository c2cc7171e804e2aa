// Package staticrepo provides the built-in product catalog. The storefront is
// a demo with no backend, so the catalog ships with the binary.
package staticrepo

import (
	"context"

	"github.com/dwikikusuma/storefront/internal/catalog/app"
	"github.com/dwikikusuma/storefront/internal/catalog/domain"
)

type ProductRepo struct {
	products []domain.Product
}

func NewProductRepo() *ProductRepo {
	return &ProductRepo{products: catalog}
}

func (r *ProductRepo) Get(ctx context.Context, id int64) (domain.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Product{}, app.ErrNotFound
}

func (r *ProductRepo) GetByTitle(ctx context.Context, title string) (domain.Product, error) {
	for _, p := range r.products {
		if p.Title == title {
			return p, nil
		}
	}
	return domain.Product{}, app.ErrNotFound
}

func (r *ProductRepo) List(ctx context.Context) ([]domain.Product, error) {
	out := make([]domain.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

var catalog = []domain.Product{
	{ID: 1, Title: "Tactical IWB Holster", Category: domain.CategoryHolsters, Price: 49.99, Rating: 4, Reviews: 434},
	{ID: 2, Title: "Red Dot Reflex Sight", Category: domain.CategoryScopes, Price: 189.99, Rating: 5, Reviews: 567},
	{ID: 3, Title: "Universal Cleaning Kit Pro", Category: domain.CategoryCleaningKits, Price: 39.99, Rating: 5, Reviews: 792},
	{ID: 4, Title: "Paper Target Pack - 100pcs", Category: domain.CategoryTargets, Price: 24.99, Rating: 4, Reviews: 331},
	{ID: 5, Title: "Tactical Ear Protection", Category: domain.CategorySafetyGear, Price: 79.99, Rating: 4, Reviews: 778},
	{ID: 6, Title: "OWB Paddle Holster", Category: domain.CategoryHolsters, Price: 59.99, Rating: 5, Reviews: 456},
	{ID: 7, Title: "Variable Magnification Scope 3-9x40", Category: domain.CategoryScopes, Price: 249.99, Rating: 4, Reviews: 352},
	{ID: 8, Title: "Bore Snake Cleaner", Category: domain.CategoryCleaningKits, Price: 14.99, Rating: 4, Reviews: 1234},
	{ID: 9, Title: "Steel Target Gong Set", Category: domain.CategoryTargets, Price: 149.99, Rating: 4, Reviews: 617},
	{ID: 10, Title: "Ballistic Safety Glasses", Category: domain.CategorySafetyGear, Price: 34.99, Rating: 5, Reviews: 567},
	{ID: 11, Title: "Chest Holster Rig", Category: domain.CategoryHolsters, Price: 89.99, Rating: 4, Reviews: 458},
	{ID: 12, Title: "Night Vision Scope", Category: domain.CategoryScopes, Price: 599.99, Rating: 4, Reviews: 156},
}
