package services

import (
	"context"
	"errors"

	"valley-breezes/models"
	"valley-breezes/repositories"

	"github.com/shopspring/decimal"
)

func product(id, name, volume, price, rating string, category models.Category) models.Product {
	return models.Product{
		ID:       id,
		Name:     name,
		Category: category,
		Brand:    "rabdan",
		Volume:   volume,
		Price:    decimal.RequireFromString(price),
		Rating:   decimal.RequireFromString(rating),
		InStock:  true,
	}
}

func ids(products []models.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func catalogIDs(products []models.CatalogProduct) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

var errSourceDown = errors.New("connection refused")

type failingRepo struct{}

func (failingRepo) All(context.Context) ([]models.Product, error) { return nil, errSourceDown }
func (failingRepo) Get(context.Context, string) (models.Product, error) {
	return models.Product{}, errSourceDown
}
func (failingRepo) ByCategory(context.Context, models.Category) ([]models.Product, error) {
	return nil, errSourceDown
}
func (failingRepo) ByBrand(context.Context, string) ([]models.Product, error) {
	return nil, errSourceDown
}
func (failingRepo) Search(context.Context, string) ([]models.Product, error) {
	return nil, errSourceDown
}

var _ repositories.ProductRepository = failingRepo{}

func decimalInt(n int) decimal.Decimal {
	return decimal.NewFromInt(int64(n))
}
