package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/tienda/inventory-system/internal/auth"
	"github.com/tienda/inventory-system/internal/core/domain"
	"github.com/tienda/inventory-system/internal/core/ports"
	"github.com/tienda/inventory-system/internal/session"
)

type memRepo struct {
	rec ports.SessionRecord
}

func (m *memRepo) Load(context.Context) (ports.SessionRecord, error) { return m.rec, nil }
func (m *memRepo) Save(_ context.Context, rec ports.SessionRecord) error {
	m.rec = rec
	return nil
}
func (m *memRepo) Clear(context.Context) error {
	m.rec = ports.SessionRecord{}
	return nil
}
func (m *memRepo) Ping(context.Context) error { return nil }

func newGate(t *testing.T) *auth.Gate {
	t.Helper()
	return auth.NewGate(session.NewStore(&memRepo{}, zerolog.Nop()))
}

func invokeGuard(t *testing.T, gate *auth.Gate, role string) (*httptest.ResponseRecorder, bool) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	reached := false
	handler := Guard(gate, role)(func(c echo.Context) error {
		reached = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("guard returned error: %v", err)
	}
	return rec, reached
}

func TestGuard_InitializingAnswersStartingNotRedirect(t *testing.T) {
	gate := newGate(t)

	rec, reached := invokeGuard(t, gate, domain.RoleOwner)

	if reached {
		t.Fatalf("handler reached before session restore")
	}
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
	if rec.Header().Get("Retry-After") == "" {
		t.Fatalf("missing Retry-After header")
	}
	if !strings.Contains(rec.Body.String(), "starting") {
		t.Fatalf("body = %q", rec.Body.String())
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "" {
		t.Fatalf("initializing state must never redirect, got %q", loc)
	}
}

func TestGuard_AnonymousRedirectsToLogin(t *testing.T) {
	gate := newGate(t)
	if err := gate.Resolve(context.Background()); err != nil {
		t.Fatalf("resolve: %v", err)
	}

	rec, reached := invokeGuard(t, gate, domain.RoleOwner)

	if reached {
		t.Fatalf("handler reached without a session")
	}
	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/login" {
		t.Fatalf("location = %q, want /login", loc)
	}
}

func TestGuard_WrongRoleRedirectsToLogin(t *testing.T) {
	gate := newGate(t)
	customer := domain.Identity{ID: 2, Email: "cliente@tienda.com", Role: domain.RoleCustomer}
	if err := gate.Login(context.Background(), "tok", customer); err != nil {
		t.Fatalf("login: %v", err)
	}

	rec, reached := invokeGuard(t, gate, domain.RoleOwner)

	if reached {
		t.Fatalf("customer session reached an owner route")
	}
	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302", rec.Code)
	}
}

func TestGuard_AuthorizedPassesThrough(t *testing.T) {
	gate := newGate(t)
	ownerID := domain.Identity{ID: 1, Email: "admin@tienda.com", Role: domain.RoleOwner}
	if err := gate.Login(context.Background(), "tok", ownerID); err != nil {
		t.Fatalf("login: %v", err)
	}

	rec, reached := invokeGuard(t, gate, domain.RoleOwner)

	if !reached {
		t.Fatalf("owner session blocked")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}
