package app

import (
	"context"
	"errors"
	"strings"

	"github.com/dwikikusuma/storefront/internal/catalog/domain"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

type Service struct {
	repo ProductRepo
}

func NewService(repo ProductRepo) *Service {
	return &Service{
		repo: repo,
	}
}

func (s *Service) GetProduct(ctx context.Context, id int64) (domain.Product, error) {
	if id <= 0 {
		return domain.Product{}, ErrInvalidInput
	}
	return s.repo.Get(ctx, id)
}

// FindByTitle resolves a product by its exact title. Titles are unique in the
// catalog, so this is a safe secondary key for add-to-cart flows.
func (s *Service) FindByTitle(ctx context.Context, title string) (domain.Product, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return domain.Product{}, ErrInvalidInput
	}
	return s.repo.GetByTitle(ctx, title)
}

// ListProducts returns the catalog entries passing the filter, preserving
// catalog order.
func (s *Service) ListProducts(ctx context.Context, filter domain.Filter) ([]domain.Product, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Product, 0, len(all))
	for _, p := range all {
		if filter.Matches(p) {
			out = append(out, p)
		}
	}
	return out, nil
}

// Categories returns the distinct categories present in the catalog, in
// catalog order.
func (s *Service) Categories(ctx context.Context) ([]domain.Category, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[domain.Category]struct{})
	var out []domain.Category
	for _, p := range all {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	return out, nil
}
