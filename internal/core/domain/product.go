package domain

import "time"

// Product status values.
const (
	ProductActive       = "active"
	ProductDiscontinued = "discontinued"
	ProductOutOfStock   = "out_of_stock"
)

// LowStockThreshold marks the stock level below which a product is
// reported as running low on the dashboard.
const LowStockThreshold = 10

// Product is an inventory item as returned by the backend.
type Product struct {
	ID            int       `json:"id"`
	Barcode       string    `json:"barcode,omitempty"`
	Name          string    `json:"name"`
	Category      string    `json:"category"`
	Subcategory   string    `json:"subcategory,omitempty"`
	Size          string    `json:"size,omitempty"`
	Color         string    `json:"color,omitempty"`
	Material      string    `json:"material,omitempty"`
	Stock         int       `json:"stock"`
	PurchasePrice float64   `json:"purchase_price"`
	SalePrice     float64   `json:"sale_price"`
	SupplierID    int       `json:"supplier_id,omitempty"`
	SupplierName  string    `json:"supplier_name,omitempty"`
	ReceivedAt    time.Time `json:"received_at"`
	Status        string    `json:"status"`
	Description   string    `json:"description,omitempty"`
}

// LowStock reports whether the product has stock but is below the
// low-stock threshold.
func (p Product) LowStock() bool {
	return p.Stock > 0 && p.Stock < LowStockThreshold
}

// ProductForm is the payload sent when creating or updating a product.
type ProductForm struct {
	Barcode       string  `json:"barcode,omitempty"`
	Name          string  `json:"name" validate:"required"`
	Category      string  `json:"category" validate:"required"`
	Subcategory   string  `json:"subcategory,omitempty"`
	Size          string  `json:"size,omitempty"`
	Color         string  `json:"color,omitempty"`
	Material      string  `json:"material,omitempty"`
	Stock         int     `json:"stock" validate:"gte=0"`
	PurchasePrice float64 `json:"purchase_price" validate:"gte=0"`
	SalePrice     float64 `json:"sale_price" validate:"gte=0"`
	SupplierID    int     `json:"supplier_id,omitempty"`
	Description   string  `json:"description,omitempty"`
}
