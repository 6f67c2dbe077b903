package service

import (
	"sort"
	"strings"

	"github.com/tienda/inventory-system/internal/core/domain"
)

// Catalog sort keys.
const (
	SortByName      = "name"
	SortByPriceLow  = "price-low"
	SortByPriceHigh = "price-high"
	SortByNewest    = "newest"
)

// CatalogQuery captures the public catalog's search, filter and sort
// controls. Zero values mean "no constraint"; an empty or unknown sort
// key falls back to sorting by name.
type CatalogQuery struct {
	Search   string
	Category string
	Sort     string
}

// FilterCatalog applies the query to a product list and returns a new,
// ordered slice. The input is never modified.
func FilterCatalog(products []domain.Product, q CatalogQuery) []domain.Product {
	out := make([]domain.Product, 0, len(products))

	term := strings.ToLower(strings.TrimSpace(q.Search))
	for _, p := range products {
		if term != "" && !matchesSearch(p, term) {
			continue
		}
		if q.Category != "" && p.Category != q.Category {
			continue
		}
		out = append(out, p)
	}

	sortCatalog(out, q.Sort)
	return out
}

func matchesSearch(p domain.Product, term string) bool {
	return strings.Contains(strings.ToLower(p.Name), term) ||
		strings.Contains(strings.ToLower(p.Category), term) ||
		strings.Contains(strings.ToLower(p.Description), term)
}

func sortCatalog(products []domain.Product, key string) {
	switch key {
	case SortByPriceLow:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].SalePrice < products[j].SalePrice
		})
	case SortByPriceHigh:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].SalePrice > products[j].SalePrice
		})
	case SortByNewest:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].ReceivedAt.After(products[j].ReceivedAt)
		})
	default:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Name < products[j].Name
		})
	}
}
