package repositories

import (
	"context"
	"errors"
	"strings"

	"valley-breezes/models"
)

var ErrProductNotFound = errors.New("product not found")

type ProductRepository interface {
	All(ctx context.Context) ([]models.Product, error)
	Get(ctx context.Context, id string) (models.Product, error)
	ByCategory(ctx context.Context, category models.Category) ([]models.Product, error)
	ByBrand(ctx context.Context, brand string) ([]models.Product, error)
	Search(ctx context.Context, query string) ([]models.Product, error)
}

// MemoryProductRepository is the catalog store. It is filled once at startup
// and never mutated, so reads need no locking. Products go in and come out as
// deep copies.
type MemoryProductRepository struct {
	products []models.Product
	byID     map[string]int
}

func NewMemoryProductRepository(products []models.Product) *MemoryProductRepository {
	r := &MemoryProductRepository{
		products: make([]models.Product, len(products)),
		byID:     make(map[string]int, len(products)),
	}
	for i, p := range products {
		r.products[i] = p.Clone()
		if _, dup := r.byID[p.ID]; !dup {
			r.byID[p.ID] = i
		}
	}
	return r
}

func (r *MemoryProductRepository) All(ctx context.Context) ([]models.Product, error) {
	return r.filter(func(models.Product) bool { return true }), nil
}

func (r *MemoryProductRepository) Get(ctx context.Context, id string) (models.Product, error) {
	i, ok := r.byID[id]
	if !ok {
		return models.Product{}, ErrProductNotFound
	}
	return r.products[i].Clone(), nil
}

func (r *MemoryProductRepository) ByCategory(ctx context.Context, category models.Category) ([]models.Product, error) {
	return r.filter(func(p models.Product) bool { return p.Category == category }), nil
}

func (r *MemoryProductRepository) ByBrand(ctx context.Context, brand string) ([]models.Product, error) {
	return r.filter(func(p models.Product) bool { return p.Brand == brand }), nil
}

func (r *MemoryProductRepository) Search(ctx context.Context, query string) ([]models.Product, error) {
	q := strings.ToLower(query)
	return r.filter(func(p models.Product) bool {
		return strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Description), q)
	}), nil
}

func (r *MemoryProductRepository) Len() int {
	return len(r.products)
}

func (r *MemoryProductRepository) filter(keep func(models.Product) bool) []models.Product {
	out := []models.Product{}
	for _, p := range r.products {
		if keep(p) {
			out = append(out, p.Clone())
		}
	}
	return out
}
