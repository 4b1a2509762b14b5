package repositories

import (
	"testing"

	"valley-breezes/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogRowProduct(t *testing.T) {
	str := func(s string) *string { return &s }

	t.Run("json and comma columns", func(t *testing.T) {
		p, err := catalogRow{
			ID: "1", Name: "Midnight Oud", Price: "1250.00", Rating: "4.8",
			Category: "unisex", Brand: "rabdan", Volume: "100ml",
			ImageURL: "oud.jpg", MoodImage: "mood.jpg",
			Images:   str(`["a.jpg","b.jpg"]`),
			InStock:  true,
			Top:      str("Saffron, Bergamot"),
			Middle:   str(`["Rose"]`),
		}.product()
		require.NoError(t, err)

		assert.Equal(t, models.CategoryUnisex, p.Category)
		assert.Equal(t, "1250", p.Price.String())
		assert.Equal(t, "4.8", p.Rating.String())
		require.NotNil(t, p.MoodImageURL)
		assert.Equal(t, "mood.jpg", *p.MoodImageURL)
		assert.Equal(t, []string{"a.jpg", "b.jpg"}, p.Images)
		require.NotNil(t, p.Notes)
		assert.Equal(t, []string{"Saffron", "Bergamot"}, p.Notes.Top)
		assert.Equal(t, []string{"Rose"}, p.Notes.Middle)
		assert.Empty(t, p.Notes.Base)
		assert.True(t, p.InStock)
	})

	t.Run("null optional columns", func(t *testing.T) {
		p, err := catalogRow{ID: "2", Price: "10", Rating: "0", Images: str("single.jpg")}.product()
		require.NoError(t, err)

		assert.Nil(t, p.MoodImageURL)
		assert.Nil(t, p.Notes)
		assert.Equal(t, []string{"single.jpg"}, p.Images)
	})

	t.Run("bad columns", func(t *testing.T) {
		_, err := catalogRow{ID: "3", Price: "n/a", Rating: "4"}.product()
		assert.ErrorContains(t, err, "product 3 price")

		_, err = catalogRow{ID: "4", Price: "1", Rating: "4", Base: str(`["broken`)}.product()
		assert.ErrorContains(t, err, "product 4 notes")
	})
}
