package repositories

import (
	"os"
	"path/filepath"
	"testing"

	"valley-breezes/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleProducts = `[
  {"id": "1", "name": "Midnight Oud", "description": "Smoky oud.", "price": "650.00", "category": "unisex",
   "brand": "rabdan", "volume": "100ml", "rating": "4.8", "imageUrl": "/a.jpg", "moodImageUrl": "/mood.jpg",
   "images": "[\"/a.jpg\",\"/b.jpg\"]", "inStock": true,
   "topNotes": "Saffron, Pink Pepper", "middleNotes": "Rose", "baseNotes": ["Amber", "Musk"]},
  {"id": "2", "name": "Citrus Breeze", "price": "280", "category": "unisex", "brand": "pure-essence",
   "volume": "50ml", "rating": "4.3", "imageUrl": "/c.jpg", "images": ["/c.jpg"]},
  {"id": "3", "name": "Iris Poudre", "price": 540.5, "category": "women", "brand": "chanel",
   "volume": "100ml", "rating": 4, "imageUrl": "/d.jpg", "inStock": false, "images": null}
]`

func TestParseProducts(t *testing.T) {
	products, err := ParseProducts([]byte(sampleProducts))
	require.NoError(t, err)
	require.Len(t, products, 3)

	oud := products[0]
	assert.Equal(t, "650", oud.Price.String())
	assert.Equal(t, models.CategoryUnisex, oud.Category)
	assert.Equal(t, []string{"/a.jpg", "/b.jpg"}, oud.Images)
	require.NotNil(t, oud.MoodImageURL)
	assert.Equal(t, "/mood.jpg", *oud.MoodImageURL)
	require.NotNil(t, oud.Notes)
	assert.Equal(t, []string{"Saffron", "Pink Pepper"}, oud.Notes.Top)
	assert.Equal(t, []string{"Rose"}, oud.Notes.Middle)
	assert.Equal(t, []string{"Amber", "Musk"}, oud.Notes.Base)
	assert.True(t, oud.InStock)

	citrus := products[1]
	assert.Equal(t, []string{"/c.jpg"}, citrus.Images)
	assert.Nil(t, citrus.MoodImageURL)
	assert.Nil(t, citrus.Notes)
	assert.True(t, citrus.InStock, "missing inStock defaults to true")

	iris := products[2]
	assert.Equal(t, "540.5", iris.Price.String())
	assert.Equal(t, "4", iris.Rating.String())
	assert.False(t, iris.InStock)
	assert.Nil(t, iris.Images)
}

func TestParseProductsErrors(t *testing.T) {
	t.Run("not json", func(t *testing.T) {
		_, err := ParseProducts([]byte("{"))
		assert.Error(t, err)
	})

	t.Run("missing id", func(t *testing.T) {
		_, err := ParseProducts([]byte(`[{"name": "No Id", "price": "1", "rating": "1"}]`))
		assert.ErrorContains(t, err, "id and name are required")
	})

	t.Run("broken images string", func(t *testing.T) {
		_, err := ParseProducts([]byte(`[{"id": "1", "name": "X", "price": "1", "rating": "1", "images": "[oops"}]`))
		assert.ErrorContains(t, err, "images")
	})
}

func TestLoadProductsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "all-products.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleProducts), 0o600))

	products, err := LoadProductsFromFile(path)
	require.NoError(t, err)
	assert.Len(t, products, 3)

	_, err = LoadProductsFromFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestSeedDataset(t *testing.T) {
	products, err := LoadProductsFromFile(filepath.Join("..", "data", "all-products.json"))
	require.NoError(t, err)
	assert.NotEmpty(t, products)

	seen := map[string]bool{}
	for _, p := range products {
		assert.False(t, seen[p.ID], "duplicate id %s", p.ID)
		seen[p.ID] = true
		assert.True(t, p.Category.Valid(), "product %s category %q", p.ID, p.Category)
		assert.True(t, models.IsKnownBrand(p.Brand), "product %s brand %q", p.ID, p.Brand)
	}
	for _, id := range []string{"1", "2", "3", "4", "5", "6", "7", "8"} {
		assert.True(t, seen[id], "quiz recommends product %s", id)
	}
}

func TestSplitStringList(t *testing.T) {
	tests := []struct {
		in        string
		commaList bool
		want      []string
	}{
		{"", true, nil},
		{"Rose", true, []string{"Rose"}},
		{"Rose, Oud ,, Amber", true, []string{"Rose", "Oud", "Amber"}},
		{`["a","b"]`, false, []string{"a", "b"}},
		{"/single.jpg", false, []string{"/single.jpg"}},
	}
	for _, tt := range tests {
		got, err := splitStringList(tt.in, tt.commaList)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, tt.in)
	}
}
