package repositories

import (
	"context"
	"fmt"

	"valley-breezes/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const selectCatalogProducts = `
	SELECT id, name, description, price::text, category, brand, volume, rating::text,
	       image_url, COALESCE(mood_image_url, ''), images, COALESCE(in_stock, true),
	       top_notes, middle_notes, base_notes
	FROM products
	ORDER BY id`

// LoadProductsFromPostgres reads the products table once. The catalog is
// still served from memory afterwards.
func LoadProductsFromPostgres(ctx context.Context, pool *pgxpool.Pool) ([]models.Product, error) {
	rows, err := pool.Query(ctx, selectCatalogProducts)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}

	products, err := pgx.CollectRows(rows, scanCatalogProduct)
	if err != nil {
		return nil, fmt.Errorf("scan products: %w", err)
	}
	return products, nil
}

// catalogRow holds one products row as scanned, before type conversion.
type catalogRow struct {
	ID, Name, Description string
	Price, Rating         string
	Category, Brand       string
	Volume                string
	ImageURL, MoodImage   string
	Images                *string
	InStock               bool
	Top, Middle, Base     *string
}

func scanCatalogProduct(row pgx.CollectableRow) (models.Product, error) {
	var r catalogRow
	err := row.Scan(&r.ID, &r.Name, &r.Description, &r.Price, &r.Category, &r.Brand, &r.Volume, &r.Rating,
		&r.ImageURL, &r.MoodImage, &r.Images, &r.InStock, &r.Top, &r.Middle, &r.Base)
	if err != nil {
		return models.Product{}, err
	}
	return r.product()
}

// product converts text columns: decimals from their text cast, images and
// notes from JSON arrays or plain strings.
func (r catalogRow) product() (models.Product, error) {
	p := models.Product{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Category:    models.Category(r.Category),
		Brand:       r.Brand,
		Volume:      r.Volume,
		ImageURL:    r.ImageURL,
		InStock:     r.InStock,
	}

	var err error
	if p.Price, err = decimal.NewFromString(r.Price); err != nil {
		return models.Product{}, fmt.Errorf("product %s price: %w", p.ID, err)
	}
	if p.Rating, err = decimal.NewFromString(r.Rating); err != nil {
		return models.Product{}, fmt.Errorf("product %s rating: %w", p.ID, err)
	}
	if r.MoodImage != "" {
		mood := r.MoodImage
		p.MoodImageURL = &mood
	}

	if r.Images != nil {
		if p.Images, err = splitStringList(*r.Images, false); err != nil {
			return models.Product{}, fmt.Errorf("product %s images: %w", p.ID, err)
		}
	}

	var lists [3][]string
	for i, col := range []*string{r.Top, r.Middle, r.Base} {
		if col == nil {
			continue
		}
		if lists[i], err = splitStringList(*col, true); err != nil {
			return models.Product{}, fmt.Errorf("product %s notes: %w", p.ID, err)
		}
	}
	p.Notes = buildNotes(lists[0], lists[1], lists[2])

	return p, nil
}
