package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"valley-breezes/models"
	"valley-breezes/repositories"

	"github.com/shopspring/decimal"
)

type CartService struct {
	carts    repositories.CartRepository
	products repositories.ProductRepository
	currency *CurrencyService
	log      *slog.Logger
}

func NewCartService(carts repositories.CartRepository, products repositories.ProductRepository, currency *CurrencyService, log *slog.Logger) *CartService {
	if log == nil {
		log = slog.Default()
	}
	return &CartService{carts: carts, products: products, currency: currency, log: log}
}

func requireSession(sessionID string) error {
	if strings.TrimSpace(sessionID) == "" {
		return invalid("sessionId", "required", "session id is required")
	}
	return nil
}

func validQuantity(q int) error {
	if q <= 0 {
		return invalid("quantity", "gt", "quantity must be greater than 0")
	}
	return nil
}

func (s *CartService) product(ctx context.Context, id string) (models.Product, error) {
	p, err := s.products.Get(ctx, id)
	if errors.Is(err, repositories.ErrProductNotFound) {
		return models.Product{}, fmt.Errorf("product %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return models.Product{}, fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
	}
	return p, nil
}

// List returns the session's lines with their products embedded. Lines whose
// product has left the catalog carry a nil product.
func (s *CartService) List(ctx context.Context, sessionID string) ([]models.CartItemWithProduct, error) {
	if err := requireSession(sessionID); err != nil {
		return nil, err
	}
	items, err := s.carts.List(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	out := make([]models.CartItemWithProduct, 0, len(items))
	for _, it := range items {
		line := models.CartItemWithProduct{CartItem: it}
		if p, err := s.products.Get(ctx, it.ProductID); err == nil {
			line.Product = &p
		}
		out = append(out, line)
	}
	return out, nil
}

// Add appends a new line. Adding a product already in the cart creates a
// second line rather than merging. A nil quantity means 1.
func (s *CartService) Add(ctx context.Context, req models.AddToCartRequest) (models.CartItem, error) {
	if err := requireSession(req.SessionID); err != nil {
		return models.CartItem{}, err
	}
	if strings.TrimSpace(req.ProductID) == "" {
		return models.CartItem{}, invalid("productId", "required", "product id is required")
	}
	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}
	if err := validQuantity(quantity); err != nil {
		return models.CartItem{}, err
	}
	if _, err := s.product(ctx, req.ProductID); err != nil {
		return models.CartItem{}, err
	}

	item, err := s.carts.Add(ctx, models.CartItem{
		SessionID: req.SessionID,
		ProductID: req.ProductID,
		Quantity:  quantity,
	})
	if err != nil {
		return models.CartItem{}, fmt.Errorf("add cart item: %w", err)
	}
	s.log.Debug("cart item added", slog.String("session_id", item.SessionID), slog.String("product_id", item.ProductID), slog.Int("quantity", item.Quantity))
	return item, nil
}

func (s *CartService) Update(ctx context.Context, id string, quantity int) (models.CartItem, error) {
	if err := validQuantity(quantity); err != nil {
		return models.CartItem{}, err
	}
	item, err := s.carts.Update(ctx, id, quantity)
	if errors.Is(err, repositories.ErrCartItemNotFound) {
		return models.CartItem{}, fmt.Errorf("cart item %s: %w", id, ErrNotFound)
	}
	return item, err
}

func (s *CartService) Remove(ctx context.Context, id string) error {
	removed, err := s.carts.Remove(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return fmt.Errorf("cart item %s: %w", id, ErrNotFound)
	}
	return nil
}

// Clear empties the session's cart. Clearing an empty cart is not an error.
func (s *CartService) Clear(ctx context.Context, sessionID string) error {
	if err := requireSession(sessionID); err != nil {
		return err
	}
	_, err := s.carts.ClearSession(ctx, sessionID)
	return err
}

// Summary prices every line with its bulk tier and totals the cart in
// currency. Lines whose product is gone are skipped.
func (s *CartService) Summary(ctx context.Context, sessionID, currency string) (models.CartSummary, error) {
	if err := requireSession(sessionID); err != nil {
		return models.CartSummary{}, err
	}
	code, err := s.currency.Normalize(currency)
	if err != nil {
		return models.CartSummary{}, err
	}
	lines, err := s.List(ctx, sessionID)
	if err != nil {
		return models.CartSummary{}, err
	}

	summary := models.CartSummary{SessionID: sessionID, Currency: code, Lines: []models.CartLine{}}
	total := decimal.Zero
	for _, l := range lines {
		if l.Product == nil {
			continue
		}
		factor := BulkFactor(l.Quantity)
		lineTotal := l.Product.Price.Mul(factor).Mul(decimal.NewFromInt(int64(l.Quantity)))
		total = total.Add(lineTotal)

		unit, _ := s.currency.FormatPrice(l.Product.Price, code)
		formattedTotal, _ := s.currency.FormatPrice(lineTotal, code)
		summary.Lines = append(summary.Lines, models.CartLine{
			Item:           l.CartItem,
			Product:        *l.Product,
			UnitPrice:      unit,
			DiscountFactor: factor.StringFixed(2),
			LineTotal:      formattedTotal,
		})
		summary.ItemCount += l.Quantity
	}
	summary.Total, _ = s.currency.FormatPrice(total, code)
	return summary, nil
}
