package repositories

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"valley-breezes/models"

	"github.com/shopspring/decimal"
)

// productRecord mirrors one entry of all-products.json. Images may be a JSON
// array or a JSON-encoded string holding an array; notes may be arrays or
// comma separated strings.
type productRecord struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	Category     string          `json:"category"`
	Brand        string          `json:"brand"`
	Volume       string          `json:"volume"`
	Rating       decimal.Decimal `json:"rating"`
	ImageURL     string          `json:"imageUrl"`
	MoodImageURL string          `json:"moodImageUrl"`
	Images       json.RawMessage `json:"images"`
	InStock      *bool           `json:"inStock"`
	TopNotes     json.RawMessage `json:"topNotes"`
	MiddleNotes  json.RawMessage `json:"middleNotes"`
	BaseNotes    json.RawMessage `json:"baseNotes"`
}

func LoadProductsFromFile(path string) ([]models.Product, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read products file: %w", err)
	}
	return ParseProducts(data)
}

func ParseProducts(data []byte) ([]models.Product, error) {
	var records []productRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}

	products := make([]models.Product, 0, len(records))
	for i, rec := range records {
		p, err := rec.toProduct()
		if err != nil {
			return nil, fmt.Errorf("product %d (%s): %w", i, rec.ID, err)
		}
		products = append(products, p)
	}
	return products, nil
}

func (rec productRecord) toProduct() (models.Product, error) {
	if rec.ID == "" || rec.Name == "" {
		return models.Product{}, fmt.Errorf("id and name are required")
	}

	images, err := decodeStringList(rec.Images, false)
	if err != nil {
		return models.Product{}, fmt.Errorf("images: %w", err)
	}

	p := models.Product{
		ID:          rec.ID,
		Name:        rec.Name,
		Description: rec.Description,
		Category:    models.Category(rec.Category),
		Brand:       rec.Brand,
		Volume:      rec.Volume,
		Price:       rec.Price,
		Rating:      rec.Rating,
		ImageURL:    rec.ImageURL,
		Images:      images,
		InStock:     rec.InStock == nil || *rec.InStock,
	}
	if rec.MoodImageURL != "" {
		mood := rec.MoodImageURL
		p.MoodImageURL = &mood
	}

	top, err := decodeStringList(rec.TopNotes, true)
	if err != nil {
		return models.Product{}, fmt.Errorf("topNotes: %w", err)
	}
	middle, err := decodeStringList(rec.MiddleNotes, true)
	if err != nil {
		return models.Product{}, fmt.Errorf("middleNotes: %w", err)
	}
	base, err := decodeStringList(rec.BaseNotes, true)
	if err != nil {
		return models.Product{}, fmt.Errorf("baseNotes: %w", err)
	}
	p.Notes = buildNotes(top, middle, base)

	return p, nil
}

func buildNotes(top, middle, base []string) *models.FragranceNotes {
	if len(top) == 0 && len(middle) == 0 && len(base) == 0 {
		return nil
	}
	return &models.FragranceNotes{Top: top, Middle: middle, Base: base}
}

// decodeStringList accepts null, a JSON array of strings, or a string. A
// string is either a JSON-encoded array or, when commaList is set, a comma
// separated list.
func decodeStringList(raw json.RawMessage, commaList bool) ([]string, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return list, nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, err
	}
	return splitStringList(s, commaList)
}

func splitStringList(s string, commaList bool) ([]string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if strings.HasPrefix(s, "[") {
		var list []string
		if err := json.Unmarshal([]byte(s), &list); err != nil {
			return nil, err
		}
		return list, nil
	}
	if !commaList {
		return []string{s}, nil
	}

	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out, nil
}
