package domain

const (
	RoleOwner    = "owner"
	RoleCustomer = "customer"
)

// Identity is the authenticated user as issued by the backend on login.
// It is owned by the session store and replaced wholesale on login; no
// field is ever mutated in place.
type Identity struct {
	ID          int    `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	Role        string `json:"role"`
}

// ValidRole reports whether role is one of the two roles the app knows.
func ValidRole(role string) bool {
	return role == RoleOwner || role == RoleCustomer
}

// LoginPayload is the data field of a successful /auth/login exchange.
type LoginPayload struct {
	Token string   `json:"token"`
	User  Identity `json:"user"`
}
