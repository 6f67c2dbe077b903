package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/tienda/inventory-system/internal/core/domain"
)

// Typed wrappers over Invoke, one per backend endpoint the app uses.
// Each takes the call site's own CallState.

// Login exchanges credentials for a token and identity.
func (c *Client) Login(ctx context.Context, call *CallState, email, password string) Result[domain.LoginPayload] {
	body := map[string]string{"email": email, "password": password}
	return Invoke[domain.LoginPayload](ctx, c, call, http.MethodPost, "/auth/login", body, nil)
}

// ListProducts fetches the full product inventory.
func (c *Client) ListProducts(ctx context.Context, call *CallState) Result[[]domain.Product] {
	return Invoke[[]domain.Product](ctx, c, call, http.MethodGet, "/products", nil, nil)
}

// Catalog fetches the public product catalog.
func (c *Client) Catalog(ctx context.Context, call *CallState) Result[[]domain.Product] {
	return Invoke[[]domain.Product](ctx, c, call, http.MethodGet, "/products/catalog", nil, nil)
}

// CreateProduct adds a product to the inventory.
func (c *Client) CreateProduct(ctx context.Context, call *CallState, form domain.ProductForm) Result[domain.Product] {
	return Invoke[domain.Product](ctx, c, call, http.MethodPost, "/products", form, nil)
}

// UpdateProduct replaces the product with the given id.
func (c *Client) UpdateProduct(ctx context.Context, call *CallState, id int, form domain.ProductForm) Result[domain.Product] {
	return Invoke[domain.Product](ctx, c, call, http.MethodPut, fmt.Sprintf("/products/%d", id), form, nil)
}

// DeleteProduct removes the product with the given id.
func (c *Client) DeleteProduct(ctx context.Context, call *CallState, id int) Result[struct{}] {
	return Invoke[struct{}](ctx, c, call, http.MethodDelete, fmt.Sprintf("/products/%d", id), nil, nil)
}

// ListSuppliers fetches all suppliers.
func (c *Client) ListSuppliers(ctx context.Context, call *CallState) Result[[]domain.Supplier] {
	return Invoke[[]domain.Supplier](ctx, c, call, http.MethodGet, "/suppliers", nil, nil)
}

// CreateSupplier registers a supplier.
func (c *Client) CreateSupplier(ctx context.Context, call *CallState, form domain.SupplierForm) Result[domain.Supplier] {
	return Invoke[domain.Supplier](ctx, c, call, http.MethodPost, "/suppliers", form, nil)
}

// UpdateSupplier replaces the supplier with the given id.
func (c *Client) UpdateSupplier(ctx context.Context, call *CallState, id int, form domain.SupplierForm) Result[domain.Supplier] {
	return Invoke[domain.Supplier](ctx, c, call, http.MethodPut, fmt.Sprintf("/suppliers/%d", id), form, nil)
}

// DeleteSupplier removes the supplier with the given id.
func (c *Client) DeleteSupplier(ctx context.Context, call *CallState, id int) Result[struct{}] {
	return Invoke[struct{}](ctx, c, call, http.MethodDelete, fmt.Sprintf("/suppliers/%d", id), nil, nil)
}

// ListClients fetches the registered customer accounts.
func (c *Client) ListClients(ctx context.Context, call *CallState) Result[[]domain.Client] {
	return Invoke[[]domain.Client](ctx, c, call, http.MethodGet, "/clients", nil, nil)
}
