package service

import (
	"sort"

	"github.com/tienda/inventory-system/internal/core/domain"
)

const recentProductCount = 5

// DashboardStats are the aggregate figures shown on the dashboard.
type DashboardStats struct {
	TotalProducts    int `json:"total_products"`
	TotalSuppliers   int `json:"total_suppliers"`
	TotalClients     int `json:"total_clients"`
	ActiveProducts   int `json:"active_products"`
	LowStockProducts int `json:"low_stock_products"`
}

// ComputeDashboard aggregates the three resource lists into stats plus
// the five most recently received products. Any list may be nil when its
// fetch failed; the corresponding figures simply stay at zero.
func ComputeDashboard(products []domain.Product, suppliers []domain.Supplier, clients []domain.Client) (DashboardStats, []domain.Product) {
	stats := DashboardStats{
		TotalProducts:  len(products),
		TotalSuppliers: len(suppliers),
		TotalClients:   len(clients),
	}

	for _, p := range products {
		if p.Status == domain.ProductActive {
			stats.ActiveProducts++
		}
		if p.LowStock() {
			stats.LowStockProducts++
		}
	}

	recent := make([]domain.Product, len(products))
	copy(recent, products)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].ReceivedAt.After(recent[j].ReceivedAt)
	})
	if len(recent) > recentProductCount {
		recent = recent[:recentProductCount]
	}

	return stats, recent
}
