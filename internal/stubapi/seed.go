package stubapi

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/tienda/inventory-system/internal/core/domain"
)

// Development accounts. The owner matches the credentials the login form
// ships with in its placeholder text.
const (
	SeedOwnerEmail    = "admin@tienda.com"
	SeedOwnerPassword = "admin123"

	SeedCustomerEmail    = "cliente@tienda.com"
	SeedCustomerPassword = "cliente123"
)

func (s *Server) seed() {
	s.addUser(domain.Identity{ID: 1, Email: SeedOwnerEmail, DisplayName: "Admin", Role: domain.RoleOwner}, SeedOwnerPassword)
	s.addUser(domain.Identity{ID: 2, Email: SeedCustomerEmail, DisplayName: "Cliente Demo", Role: domain.RoleCustomer}, SeedCustomerPassword)

	now := time.Now().UTC()

	s.clients = []domain.Client{
		{ID: 2, Email: SeedCustomerEmail, DisplayName: "Cliente Demo", RegisteredAt: now.AddDate(0, -2, 0)},
	}

	for _, p := range []domain.Product{
		{Name: "Denim Jacket", Category: "Clothing", Subcategory: "Jackets", Size: "M", Color: "Blue", Material: "Denim", Stock: 14, PurchasePrice: 18, SalePrice: 39.99, SupplierID: 1, Status: domain.ProductActive, ReceivedAt: now.AddDate(0, 0, -3), Description: "Classic denim jacket"},
		{Name: "Running Shoes", Category: "Footwear", Subcategory: "Sports", Size: "42", Color: "Black", Stock: 6, PurchasePrice: 25, SalePrice: 59.99, SupplierID: 2, Status: domain.ProductActive, ReceivedAt: now.AddDate(0, 0, -10)},
		{Name: "Leather Belt", Category: "Accessories", Color: "Brown", Material: "Leather", Stock: 0, PurchasePrice: 5, SalePrice: 14.99, SupplierID: 1, Status: domain.ProductOutOfStock, ReceivedAt: now.AddDate(0, -1, 0)},
		{Name: "Wool Scarf", Category: "Accessories", Color: "Gray", Material: "Wool", Stock: 30, PurchasePrice: 4, SalePrice: 12.5, SupplierID: 2, Status: domain.ProductDiscontinued, ReceivedAt: now.AddDate(0, -3, 0)},
	} {
		s.nextProductID++
		p.ID = s.nextProductID
		s.products[p.ID] = p
	}

	for _, sp := range []domain.Supplier{
		{CompanyName: "Textiles del Norte", ContactName: "María López", Phone: "555-0101", Email: "ventas@textilesnorte.example", Status: domain.SupplierActive, RegisteredAt: now.AddDate(-1, 0, 0)},
		{CompanyName: "Calzado Andino", ContactName: "Jorge Paz", Phone: "555-0202", Email: "contacto@calzadoandino.example", Status: domain.SupplierActive, RegisteredAt: now.AddDate(0, -6, 0)},
	} {
		s.nextSupplierID++
		sp.ID = s.nextSupplierID
		s.suppliers[sp.ID] = sp
	}
}

func (s *Server) addUser(id domain.Identity, password string) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(err) // static seed input, cannot fail
	}
	s.users[id.Email] = seededUser{identity: id, passwordHash: hash}
}
