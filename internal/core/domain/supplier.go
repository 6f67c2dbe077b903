package domain

import "time"

// Supplier status values.
const (
	SupplierActive   = "active"
	SupplierInactive = "inactive"
)

// Supplier is a product supplier as returned by the backend.
type Supplier struct {
	ID           int       `json:"id"`
	CompanyName  string    `json:"company_name"`
	ContactName  string    `json:"contact_name"`
	Phone        string    `json:"phone,omitempty"`
	Email        string    `json:"email,omitempty"`
	Address      string    `json:"address,omitempty"`
	TaxID        string    `json:"tax_id,omitempty"`
	Status       string    `json:"status"`
	RegisteredAt time.Time `json:"registered_at"`
}

// SupplierForm is the payload sent when creating or updating a supplier.
type SupplierForm struct {
	CompanyName string `json:"company_name" validate:"required"`
	ContactName string `json:"contact_name" validate:"required"`
	Phone       string `json:"phone,omitempty"`
	Email       string `json:"email,omitempty" validate:"omitempty,email"`
	Address     string `json:"address,omitempty"`
	TaxID       string `json:"tax_id,omitempty"`
}
