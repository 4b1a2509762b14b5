package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatPrice(t *testing.T) {
	svc := NewCurrencyService()

	tests := []struct {
		price    string
		currency string
		want     string
	}{
		{"650", "AED", "AED 650.00"},
		{"650", "", "AED 650.00"},
		{"650", "usd", "$ 175.50"},
		{"280", "SAR", "SAR 282.80"},
		{"420", "BHD", "د.ب 42.00"},
		{"415", "OMR", "ر.ع 41.50"},
		{"250", "GBP", "£ 55.00"},
		{"0.05", "USD", "$ 0.01"},
		{"199.99", "AED", "AED 199.99"},
	}
	for _, tt := range tests {
		t.Run(tt.currency+" "+tt.price, func(t *testing.T) {
			got, err := svc.FormatPrice(decimal.RequireFromString(tt.price), tt.currency)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatPriceUnknownCurrency(t *testing.T) {
	_, err := NewCurrencyService().FormatPrice(decimal.NewFromInt(10), "JPY")

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "currency", ve.Field)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestConvert(t *testing.T) {
	got, err := NewCurrencyService().Convert(decimal.RequireFromString("333.33"), "USD")

	require.NoError(t, err)
	assert.Equal(t, "90", got.Round(0).String())
	assert.Equal(t, "90.00", got.StringFixed(2))
}

func TestCurrencyList(t *testing.T) {
	list := NewCurrencyService().List()

	require.Len(t, list, 6)
	assert.Equal(t, "AED", list[0].Code)
	assert.Equal(t, "1.00", list[0].Rate)
	assert.Equal(t, "£", list[5].Symbol)
}

func TestBulkFactor(t *testing.T) {
	tests := map[int]string{
		1:   "1.00",
		5:   "1.00",
		6:   "0.95",
		20:  "0.95",
		21:  "0.90",
		100: "0.90",
	}
	for qty, want := range tests {
		assert.Equal(t, want, BulkFactor(qty).StringFixed(2), "quantity %d", qty)
	}
}
