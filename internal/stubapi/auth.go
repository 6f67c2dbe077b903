package stubapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/tienda/inventory-system/internal/core/domain"
)

const tokenTTL = 24 * time.Hour

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid payload")
	}
	if req.Email == "" || req.Password == "" {
		return fail(c, http.StatusBadRequest, "email and password are required")
	}

	s.mu.RLock()
	u, found := s.users[req.Email]
	s.mu.RUnlock()

	if !found || bcrypt.CompareHashAndPassword(u.passwordHash, []byte(req.Password)) != nil {
		return fail(c, http.StatusUnauthorized, domain.ErrInvalidCredentials.Error())
	}

	token, err := s.generateToken(u.identity)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "could not issue token")
	}

	s.touchClientLogin(u.identity.ID)

	return ok(c, http.StatusOK, domain.LoginPayload{Token: token, User: u.identity})
}

func (s *Server) generateToken(id domain.Identity) (string, error) {
	claims := jwt.MapClaims{
		"sub":   id.ID,
		"email": id.Email,
		"name":  id.DisplayName,
		"role":  id.Role,
		"jti":   uuid.NewString(),
		"exp":   time.Now().Add(tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

// requireAuth validates the bearer token and injects the caller's
// identity into context.
func (s *Server) requireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return fail(c, http.StatusUnauthorized, "missing authorization header")
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			return fail(c, http.StatusUnauthorized, "invalid authorization header")
		}

		claims := jwt.MapClaims{}
		tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
			if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
				return nil, jwt.ErrTokenSignatureInvalid
			}
			return []byte(s.jwtSecret), nil
		})
		if err != nil || !tkn.Valid {
			return fail(c, http.StatusUnauthorized, "invalid token")
		}

		id := domain.Identity{}
		if sub, ok := claims["sub"].(float64); ok {
			id.ID = int(sub)
		}
		id.Email, _ = claims["email"].(string)
		id.DisplayName, _ = claims["name"].(string)
		id.Role, _ = claims["role"].(string)

		c.Set("identity", id)
		return next(c)
	}
}

// requireRole enforces role-based access on top of requireAuth.
func (s *Server) requireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id, _ := c.Get("identity").(domain.Identity)
			if id.Role != role {
				return fail(c, http.StatusForbidden, domain.ErrForbidden.Error())
			}
			return next(c)
		}
	}
}

func (s *Server) touchClientLogin(userID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now().UTC()
	for i := range s.clients {
		if s.clients[i].ID == userID {
			s.clients[i].LastLoginAt = &now
		}
	}
}
