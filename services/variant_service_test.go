package services

import (
	"testing"

	"valley-breezes/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVolume(t *testing.T) {
	tests := []struct {
		in   string
		want models.Volume
	}{
		{"50ml", models.Volume{Millilitres: 50, Valid: true}},
		{"100 ML", models.Volume{Millilitres: 100, Valid: true}},
		{" 75Ml ", models.Volume{Millilitres: 75, Valid: true}},
		{"30", models.Volume{Millilitres: 30, Valid: true}},
		{"set", models.Volume{}},
		{"", models.Volume{}},
		{"-5ml", models.Volume{}},
		{"7.5ml", models.Volume{}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseVolume(tt.in))
		})
	}
}

func TestResolveVariants(t *testing.T) {
	t.Run("midnight oud pair groups with 50ml canonical", func(t *testing.T) {
		products := []models.Product{
			product("1", "Midnight Oud", "100ml", "650", "4.8", models.CategoryUnisex),
			product("9", "Midnight Oud", "50ml", "420", "4.8", models.CategoryUnisex),
		}

		idx := ResolveVariants(products)

		require.Len(t, idx.Groups["Midnight Oud"], 2)
		assert.Equal(t, []string{"9", "1"}, ids(idx.Groups["Midnight Oud"]))
		require.Len(t, idx.Canonical, 1)
		assert.Equal(t, "9", idx.Canonical[0].ID)
	})

	t.Run("groups keep first-seen order", func(t *testing.T) {
		products := []models.Product{
			product("a", "Beta", "100ml", "1", "4", models.CategoryMen),
			product("b", "Alpha", "50ml", "1", "4", models.CategoryMen),
			product("c", "Beta", "30ml", "1", "4", models.CategoryMen),
		}

		idx := ResolveVariants(products)

		assert.Equal(t, []string{"Beta", "Alpha"}, idx.Order)
		assert.Equal(t, []string{"c", "b"}, ids(idx.Canonical))
	})

	t.Run("unparsable volumes sort last and stay stable", func(t *testing.T) {
		products := []models.Product{
			product("x1", "Oud", "set", "1", "4", models.CategoryMen),
			product("x2", "Oud", "100ml", "1", "4", models.CategoryMen),
			product("x3", "Oud", "mini", "1", "4", models.CategoryMen),
			product("x4", "Oud", "50ml", "1", "4", models.CategoryMen),
		}

		idx := ResolveVariants(products)

		assert.Equal(t, []string{"x4", "x2", "x1", "x3"}, ids(idx.Groups["Oud"]))
	})

	t.Run("equal volumes keep input order", func(t *testing.T) {
		products := []models.Product{
			product("p1", "Rose", "50ml", "1", "4", models.CategoryWomen),
			product("p2", "Rose", "50ml", "2", "4", models.CategoryWomen),
		}

		idx := ResolveVariants(products)

		assert.Equal(t, []string{"p1", "p2"}, ids(idx.Groups["Rose"]))
	})

	t.Run("canonical volume is never larger than a sibling", func(t *testing.T) {
		products := []models.Product{
			product("1", "A", "200ml", "1", "4", models.CategoryMen),
			product("2", "A", "75ml", "1", "4", models.CategoryMen),
			product("3", "B", "10ml", "1", "4", models.CategoryMen),
			product("4", "A", "125ml", "1", "4", models.CategoryMen),
			product("5", "B", "5ml", "1", "4", models.CategoryMen),
		}

		idx := ResolveVariants(products)

		for _, canon := range idx.Canonical {
			cv := ParseVolume(canon.Volume)
			for _, sib := range idx.Siblings(canon) {
				sv := ParseVolume(sib.Volume)
				assert.LessOrEqual(t, cv.Millilitres, sv.Millilitres, "group %s", canon.Name)
			}
		}
	})

	t.Run("siblings exclude the product itself", func(t *testing.T) {
		products := []models.Product{
			product("1", "Midnight Oud", "100ml", "650", "4.8", models.CategoryUnisex),
			product("9", "Midnight Oud", "50ml", "420", "4.8", models.CategoryUnisex),
			product("3", "Citrus Breeze", "50ml", "280", "4.3", models.CategoryUnisex),
		}

		idx := ResolveVariants(products)

		assert.Equal(t, []string{"1"}, ids(idx.Siblings(products[1])))
		assert.Empty(t, idx.Siblings(products[2]))
	})

	t.Run("empty input", func(t *testing.T) {
		idx := ResolveVariants(nil)
		assert.Empty(t, idx.Canonical)
		assert.Empty(t, idx.Groups)
	})
}
