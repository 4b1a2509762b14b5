package services

import (
	"sort"
	"strconv"
	"strings"

	"valley-breezes/models"
)

const volumeUnit = "ml"

// ParseVolume reads the millilitre value out of strings like "50ml" or
// "100 ML". Anything else yields an invalid Volume.
func ParseVolume(s string) models.Volume {
	v := strings.TrimSpace(strings.ToLower(s))
	v = strings.TrimSpace(strings.TrimSuffix(v, volumeUnit))
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return models.Volume{}
	}
	return models.Volume{Millilitres: n, Valid: true}
}

// VariantIndex groups catalog records that share a display name.
type VariantIndex struct {
	Groups    map[string][]models.Product
	Order     []string
	Canonical []models.Product
}

// ResolveVariants groups products by exact name and sorts each group by
// volume, smallest first. Unparsable volumes go last in their original order.
// Groups and canonical products keep first-seen order.
func ResolveVariants(products []models.Product) VariantIndex {
	idx := VariantIndex{Groups: make(map[string][]models.Product)}

	for _, p := range products {
		if _, seen := idx.Groups[p.Name]; !seen {
			idx.Order = append(idx.Order, p.Name)
		}
		idx.Groups[p.Name] = append(idx.Groups[p.Name], p)
	}

	idx.Canonical = make([]models.Product, 0, len(idx.Order))
	for _, name := range idx.Order {
		group := idx.Groups[name]
		sortByVolume(group)
		idx.Canonical = append(idx.Canonical, group[0])
	}
	return idx
}

func sortByVolume(group []models.Product) {
	type entry struct {
		product models.Product
		volume  models.Volume
	}
	entries := make([]entry, len(group))
	for i, p := range group {
		entries[i] = entry{product: p, volume: ParseVolume(p.Volume)}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].volume.Less(entries[j].volume)
	})
	for i, e := range entries {
		group[i] = e.product
	}
}

// Siblings returns the other members of p's variant set.
func (idx VariantIndex) Siblings(p models.Product) []models.Product {
	var out []models.Product
	for _, s := range idx.Groups[p.Name] {
		if s.ID != p.ID {
			out = append(out, s)
		}
	}
	return out
}
