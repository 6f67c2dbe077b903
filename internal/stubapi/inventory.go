package stubapi

import (
	"net/http"
	"sort"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/tienda/inventory-system/internal/core/domain"
)

func (s *Server) listProducts(c echo.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return ok(c, http.StatusOK, s.productSlice(false))
}

func (s *Server) catalog(c echo.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return ok(c, http.StatusOK, s.productSlice(true))
}

// productSlice returns products ordered by id; activeOnly restricts the
// result to the public catalog view. Callers must hold the lock.
func (s *Server) productSlice(activeOnly bool) []domain.Product {
	out := make([]domain.Product, 0, len(s.products))
	for _, p := range s.products {
		if activeOnly && p.Status != domain.ProductActive {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Server) createProduct(c echo.Context) error {
	var form domain.ProductForm
	if err := c.Bind(&form); err != nil {
		return fail(c, http.StatusBadRequest, "invalid payload")
	}
	if form.Name == "" || form.Category == "" {
		return fail(c, http.StatusBadRequest, "name and category are required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextProductID++
	p := productFromForm(s.nextProductID, form)
	p.ReceivedAt = time.Now().UTC()
	s.products[p.ID] = p

	return ok(c, http.StatusCreated, p)
}

func (s *Server) updateProduct(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid id")
	}

	var form domain.ProductForm
	if err := c.Bind(&form); err != nil {
		return fail(c, http.StatusBadRequest, "invalid payload")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, found := s.products[id]
	if !found {
		return fail(c, http.StatusNotFound, domain.ErrProductNotFound.Error())
	}

	p := productFromForm(id, form)
	p.ReceivedAt = existing.ReceivedAt
	s.products[id] = p

	return ok(c, http.StatusOK, p)
}

func (s *Server) deleteProduct(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid id")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, found := s.products[id]; !found {
		return fail(c, http.StatusNotFound, domain.ErrProductNotFound.Error())
	}
	delete(s.products, id)

	return ok(c, http.StatusOK, nil)
}

func productFromForm(id int, form domain.ProductForm) domain.Product {
	status := domain.ProductActive
	if form.Stock == 0 {
		status = domain.ProductOutOfStock
	}
	return domain.Product{
		ID:            id,
		Barcode:       form.Barcode,
		Name:          form.Name,
		Category:      form.Category,
		Subcategory:   form.Subcategory,
		Size:          form.Size,
		Color:         form.Color,
		Material:      form.Material,
		Stock:         form.Stock,
		PurchasePrice: form.PurchasePrice,
		SalePrice:     form.SalePrice,
		SupplierID:    form.SupplierID,
		Status:        status,
		Description:   form.Description,
	}
}

func (s *Server) listSuppliers(c echo.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Supplier, 0, len(s.suppliers))
	for _, sp := range s.suppliers {
		out = append(out, sp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return ok(c, http.StatusOK, out)
}

func (s *Server) createSupplier(c echo.Context) error {
	var form domain.SupplierForm
	if err := c.Bind(&form); err != nil {
		return fail(c, http.StatusBadRequest, "invalid payload")
	}
	if form.CompanyName == "" || form.ContactName == "" {
		return fail(c, http.StatusBadRequest, "company_name and contact_name are required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextSupplierID++
	sp := supplierFromForm(s.nextSupplierID, form)
	sp.RegisteredAt = time.Now().UTC()
	s.suppliers[sp.ID] = sp

	return ok(c, http.StatusCreated, sp)
}

func (s *Server) updateSupplier(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid id")
	}

	var form domain.SupplierForm
	if err := c.Bind(&form); err != nil {
		return fail(c, http.StatusBadRequest, "invalid payload")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, found := s.suppliers[id]
	if !found {
		return fail(c, http.StatusNotFound, domain.ErrSupplierNotFound.Error())
	}

	sp := supplierFromForm(id, form)
	sp.RegisteredAt = existing.RegisteredAt
	s.suppliers[id] = sp

	return ok(c, http.StatusOK, sp)
}

func (s *Server) deleteSupplier(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid id")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, found := s.suppliers[id]; !found {
		return fail(c, http.StatusNotFound, domain.ErrSupplierNotFound.Error())
	}
	delete(s.suppliers, id)

	return ok(c, http.StatusOK, nil)
}

func supplierFromForm(id int, form domain.SupplierForm) domain.Supplier {
	return domain.Supplier{
		ID:          id,
		CompanyName: form.CompanyName,
		ContactName: form.ContactName,
		Phone:       form.Phone,
		Email:       form.Email,
		Address:     form.Address,
		TaxID:       form.TaxID,
		Status:      domain.SupplierActive,
	}
}

func (s *Server) listClients(c echo.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Client, len(s.clients))
	copy(out, s.clients)

	return ok(c, http.StatusOK, out)
}

func pathID(c echo.Context) (int, error) {
	var id int
	if err := echo.PathParamsBinder(c).Int("id", &id).BindError(); err != nil || id <= 0 {
		return 0, echo.ErrBadRequest
	}
	return id, nil
}
