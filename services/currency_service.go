package services

import (
	"strings"

	"valley-breezes/models"

	"github.com/shopspring/decimal"
)

const BaseCurrency = "AED"

type currencyInfo struct {
	name   string
	symbol string
	rate   decimal.Decimal
}

// Static rates, AED as base.
var defaultCurrencies = map[string]currencyInfo{
	"AED": {name: "UAE Dirham", symbol: "AED", rate: decimal.NewFromInt(1)},
	"USD": {name: "US Dollar", symbol: "$", rate: decimal.RequireFromString("0.27")},
	"SAR": {name: "Saudi Riyal", symbol: "SAR", rate: decimal.RequireFromString("1.01")},
	"BHD": {name: "Bahraini Dinar", symbol: "د.ب", rate: decimal.RequireFromString("0.10")},
	"OMR": {name: "Omani Rial", symbol: "ر.ع", rate: decimal.RequireFromString("0.10")},
	"GBP": {name: "British Pound", symbol: "£", rate: decimal.RequireFromString("0.22")},
}

var currencyOrder = []string{"AED", "USD", "SAR", "BHD", "OMR", "GBP"}

type bulkTier struct {
	minQuantity int
	factor      decimal.Decimal
}

// Bulk pricing, highest threshold first.
var bulkTiers = []bulkTier{
	{minQuantity: 21, factor: decimal.RequireFromString("0.90")},
	{minQuantity: 6, factor: decimal.RequireFromString("0.95")},
	{minQuantity: 1, factor: decimal.NewFromInt(1)},
}

type CurrencyService struct {
	currencies map[string]currencyInfo
}

func NewCurrencyService() *CurrencyService {
	return &CurrencyService{currencies: defaultCurrencies}
}

func (s *CurrencyService) lookup(code string) (currencyInfo, string, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		code = BaseCurrency
	}
	info, ok := s.currencies[code]
	if !ok {
		return currencyInfo{}, "", invalid("currency", "oneof", "unsupported currency %q", code)
	}
	return info, code, nil
}

// Convert returns price in the target currency, rounded to 2 places.
func (s *CurrencyService) Convert(price decimal.Decimal, currency string) (decimal.Decimal, error) {
	info, _, err := s.lookup(currency)
	if err != nil {
		return decimal.Zero, err
	}
	return price.Mul(info.rate).Round(2), nil
}

// FormatPrice renders a stored AED price as "<symbol> <amount>" in currency.
func (s *CurrencyService) FormatPrice(price decimal.Decimal, currency string) (string, error) {
	info, _, err := s.lookup(currency)
	if err != nil {
		return "", err
	}
	amount, err := s.Convert(price, currency)
	if err != nil {
		return "", err
	}
	return info.symbol + " " + amount.StringFixed(2), nil
}

func (s *CurrencyService) Normalize(currency string) (string, error) {
	_, code, err := s.lookup(currency)
	return code, err
}

func (s *CurrencyService) List() []models.Currency {
	out := make([]models.Currency, 0, len(currencyOrder))
	for _, code := range currencyOrder {
		info, ok := s.currencies[code]
		if !ok {
			continue
		}
		out = append(out, models.Currency{
			Code:   code,
			Name:   info.name,
			Symbol: info.symbol,
			Rate:   info.rate.StringFixed(2),
		})
	}
	return out
}

// BulkFactor returns the unit price multiplier for a line quantity.
func BulkFactor(quantity int) decimal.Decimal {
	for _, t := range bulkTiers {
		if quantity >= t.minQuantity {
			return t.factor
		}
	}
	return decimal.NewFromInt(1)
}
