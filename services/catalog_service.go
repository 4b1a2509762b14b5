package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"valley-breezes/models"
	"valley-breezes/repositories"

	"github.com/shopspring/decimal"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type CatalogService struct {
	repo     repositories.ProductRepository
	currency *CurrencyService
	log      *slog.Logger
}

func NewCatalogService(repo repositories.ProductRepository, currency *CurrencyService, log *slog.Logger) *CatalogService {
	if log == nil {
		log = slog.Default()
	}
	return &CatalogService{repo: repo, currency: currency, log: log}
}

// ListProducts is the raw product query: a non-empty search wins over brand,
// brand wins over category.
func (s *CatalogService) ListProducts(ctx context.Context, f models.FilterState) ([]models.Product, error) {
	var (
		products []models.Product
		err      error
	)
	search := strings.TrimSpace(f.Search)
	switch {
	case search != "":
		products, err = s.repo.Search(ctx, search)
	case f.Brand != "" && f.Brand != models.BrandAll:
		products, err = s.repo.ByBrand(ctx, f.Brand)
	case f.Category != "" && f.Category != models.CategoryAll:
		products, err = s.repo.ByCategory(ctx, f.Category)
	default:
		products, err = s.repo.All(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
	}
	return products, nil
}

func (s *CatalogService) GetProduct(ctx context.Context, id string) (models.Product, error) {
	if strings.TrimSpace(id) == "" {
		return models.Product{}, invalid("id", "required", "product id is required")
	}
	p, err := s.repo.Get(ctx, id)
	if errors.Is(err, repositories.ErrProductNotFound) {
		return models.Product{}, fmt.Errorf("product %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return models.Product{}, fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
	}
	return p, nil
}

// Variants returns the variant set of the product with the given id,
// smallest volume first.
func (s *CatalogService) Variants(ctx context.Context, id string) ([]models.Product, error) {
	p, err := s.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	all, err := s.repo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
	}
	return ResolveVariants(all).Groups[p.Name], nil
}

type BrowseOptions struct {
	Currency    string
	Recommended []string
}

// Browse runs the catalog pipeline: source selection, variant resolution,
// rating filter, sort. A failing source yields an empty view with Error set
// and ErrCatalogUnavailable; the view is always usable for rendering.
func (s *CatalogService) Browse(ctx context.Context, f models.FilterState, opts BrowseOptions) (models.CatalogView, error) {
	f = f.Normalize()
	view := models.CatalogView{Filter: f, Products: []models.CatalogProduct{}}

	currency := ""
	if opts.Currency != "" && s.currency != nil {
		code, err := s.currency.Normalize(opts.Currency)
		if err != nil {
			return view, err
		}
		currency = code
	}

	source, err := s.ListProducts(ctx, f)
	if err != nil {
		s.log.Warn("catalog source failed", slog.Any("err", err), slog.Any("filter", f))
		view.Error = err.Error()
		return view, err
	}

	idx := ResolveVariants(source)
	products := FilterByRating(idx.Canonical, f.MinRating)
	SortProducts(products, f.Sort)

	for _, p := range products {
		cp := models.CatalogProduct{
			Product:  p,
			Siblings: idx.Siblings(p),
		}
		if currency != "" {
			cp.DisplayPrice, _ = s.currency.FormatPrice(p.Price, currency)
		}
		view.Products = append(view.Products, cp)
	}

	MarkRecommended(&view, opts.Recommended)
	view.Counts = countStock(view.Products)
	view.Counts.Source = len(source)
	return view, nil
}

// MarkRecommended flags the displayed products whose id is in ids. Ids that
// did not survive the pipeline are ignored.
func MarkRecommended(view *models.CatalogView, ids []string) {
	if len(ids) == 0 {
		return
	}
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	for i := range view.Products {
		view.Products[i].Recommended = set[view.Products[i].ID]
	}
}

// ParseFilterState reads catalog query parameters. Unknown selector values
// fall back to all/default; an unreadable minRating means no threshold.
func ParseFilterState(q url.Values) models.FilterState {
	f := models.DefaultFilterState()
	if v := q.Get("category"); v != "" {
		f.Category = models.Category(strings.ToLower(v))
	}
	if v := q.Get("brand"); v != "" {
		f.Brand = strings.ToLower(v)
	}
	f.Search = q.Get("search")
	if v := q.Get("minRating"); v != "" {
		f.MinRating, _ = strconv.Atoi(v)
	}
	if v := q.Get("sort"); v != "" {
		f.Sort = models.SortKey(v)
	}
	return f.Normalize()
}

// FilterByRating keeps products rated at least minRating. A threshold of 0
// or less keeps everything.
func FilterByRating(products []models.Product, minRating int) []models.Product {
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if minRating > 0 && p.Rating.LessThan(decimal.NewFromInt(int64(minRating))) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// SortProducts orders products in place. The sort is stable and SortDefault
// leaves the order untouched. Collators are not safe for concurrent use, so
// each call builds its own.
func SortProducts(products []models.Product, key models.SortKey) {
	var less func(a, b models.Product) bool
	switch key {
	case models.SortPriceAsc:
		less = func(a, b models.Product) bool { return a.Price.LessThan(b.Price) }
	case models.SortPriceDesc:
		less = func(a, b models.Product) bool { return b.Price.LessThan(a.Price) }
	case models.SortNameAsc:
		cl := collate.New(language.English)
		less = func(a, b models.Product) bool { return cl.CompareString(a.Name, b.Name) < 0 }
	case models.SortNameDesc:
		cl := collate.New(language.English)
		less = func(a, b models.Product) bool { return cl.CompareString(b.Name, a.Name) < 0 }
	default:
		return
	}
	sort.SliceStable(products, func(i, j int) bool { return less(products[i], products[j]) })
}

func countStock(products []models.CatalogProduct) models.CatalogCounts {
	c := models.CatalogCounts{Total: len(products)}
	for _, p := range products {
		if p.InStock {
			c.InStock++
		} else {
			c.OutOfStock++
		}
	}
	return c
}
