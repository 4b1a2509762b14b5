package models

type SortKey string

const (
	SortDefault   SortKey = "default"
	SortPriceAsc  SortKey = "price-asc"
	SortPriceDesc SortKey = "price-desc"
	SortNameAsc   SortKey = "name-asc"
	SortNameDesc  SortKey = "name-desc"
)

func (s SortKey) Valid() bool {
	switch s {
	case SortDefault, SortPriceAsc, SortPriceDesc, SortNameAsc, SortNameDesc:
		return true
	}
	return false
}

// Rating thresholds offered by the catalog rating filter.
var RatingThresholds = []int{0, 3, 4}

type FilterState struct {
	Category  Category `json:"category" form:"category"`
	Brand     string   `json:"brand" form:"brand"`
	Search    string   `json:"search" form:"search"`
	MinRating int      `json:"minRating" form:"minRating"`
	Sort      SortKey  `json:"sort" form:"sort"`
}

func DefaultFilterState() FilterState {
	return FilterState{
		Category: CategoryAll,
		Brand:    BrandAll,
		Sort:     SortDefault,
	}
}

// Normalize replaces unsupported selector values with their "all"/"default"
// counterparts, the same way the catalog page treats unknown URL parameters.
func (f FilterState) Normalize() FilterState {
	if !f.Category.Valid() {
		f.Category = CategoryAll
	}
	if f.Brand != BrandAll && !IsKnownBrand(f.Brand) {
		f.Brand = BrandAll
	}
	ok := false
	for _, r := range RatingThresholds {
		if f.MinRating == r {
			ok = true
			break
		}
	}
	if !ok {
		f.MinRating = 0
	}
	if !f.Sort.Valid() {
		f.Sort = SortDefault
	}
	return f
}

type CatalogProduct struct {
	Product
	DisplayPrice string    `json:"displayPrice,omitempty"`
	Recommended  bool      `json:"recommended"`
	Siblings     []Product `json:"siblings,omitempty"`
}

type CatalogCounts struct {
	InStock    int `json:"inStock"`
	OutOfStock int `json:"outOfStock"`
	Total      int `json:"total"`
	Source     int `json:"source"`
}

type CatalogView struct {
	Filter   FilterState      `json:"filter"`
	Products []CatalogProduct `json:"products"`
	Counts   CatalogCounts    `json:"counts"`
	Error    string           `json:"error,omitempty"`
}
