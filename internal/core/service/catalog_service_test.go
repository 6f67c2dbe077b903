package service

import (
	"testing"
	"time"

	"github.com/tienda/inventory-system/internal/core/domain"
)

func catalogFixture() []domain.Product {
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	return []domain.Product{
		{ID: 1, Name: "Denim Jacket", Category: "Clothing", Description: "Classic denim", SalePrice: 39.99, ReceivedAt: base.AddDate(0, 0, -3)},
		{ID: 2, Name: "Running Shoes", Category: "Footwear", SalePrice: 59.99, ReceivedAt: base.AddDate(0, 0, -1)},
		{ID: 3, Name: "Leather Belt", Category: "Accessories", SalePrice: 14.99, ReceivedAt: base.AddDate(0, 0, -10)},
		{ID: 4, Name: "Wool Scarf", Category: "Accessories", Description: "Warm wool scarf", SalePrice: 12.5, ReceivedAt: base},
	}
}

func ids(products []domain.Product) []int {
	out := make([]int, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func equalIDs(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestFilterCatalog_DefaultSortsByName(t *testing.T) {
	got := FilterCatalog(catalogFixture(), CatalogQuery{})

	want := []int{1, 3, 2, 4}
	if !equalIDs(ids(got), want) {
		t.Fatalf("order = %v, want %v", ids(got), want)
	}
}

func TestFilterCatalog_SearchIsCaseInsensitive(t *testing.T) {
	got := FilterCatalog(catalogFixture(), CatalogQuery{Search: "  DENIM "})

	if len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("search result = %v", ids(got))
	}
}

func TestFilterCatalog_SearchCoversCategoryAndDescription(t *testing.T) {
	if got := FilterCatalog(catalogFixture(), CatalogQuery{Search: "footwear"}); len(got) != 1 || got[0].ID != 2 {
		t.Fatalf("category search = %v", ids(got))
	}
	if got := FilterCatalog(catalogFixture(), CatalogQuery{Search: "warm wool"}); len(got) != 1 || got[0].ID != 4 {
		t.Fatalf("description search = %v", ids(got))
	}
}

func TestFilterCatalog_CategoryIsExactMatch(t *testing.T) {
	got := FilterCatalog(catalogFixture(), CatalogQuery{Category: "Accessories"})

	want := []int{3, 4}
	if !equalIDs(ids(got), want) {
		t.Fatalf("category filter = %v, want %v", ids(got), want)
	}
}

func TestFilterCatalog_SortKeys(t *testing.T) {
	tests := []struct {
		sort string
		want []int
	}{
		{SortByPriceLow, []int{4, 3, 1, 2}},
		{SortByPriceHigh, []int{2, 1, 3, 4}},
		{SortByNewest, []int{4, 2, 1, 3}},
		{"bogus", []int{1, 3, 2, 4}},
	}

	for _, tt := range tests {
		got := FilterCatalog(catalogFixture(), CatalogQuery{Sort: tt.sort})
		if !equalIDs(ids(got), tt.want) {
			t.Fatalf("sort %q = %v, want %v", tt.sort, ids(got), tt.want)
		}
	}
}

func TestFilterCatalog_DoesNotMutateInput(t *testing.T) {
	in := catalogFixture()
	FilterCatalog(in, CatalogQuery{Sort: SortByPriceHigh})

	if !equalIDs(ids(in), []int{1, 2, 3, 4}) {
		t.Fatalf("input reordered: %v", ids(in))
	}
}

func TestFilterCatalog_SearchAndCategoryCombine(t *testing.T) {
	got := FilterCatalog(catalogFixture(), CatalogQuery{Search: "wool", Category: "Accessories"})

	if len(got) != 1 || got[0].ID != 4 {
		t.Fatalf("combined filter = %v", ids(got))
	}
}
