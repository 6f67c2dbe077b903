package api_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/tienda/inventory-system/internal/api"
	"github.com/tienda/inventory-system/internal/auth"
	"github.com/tienda/inventory-system/internal/client"
	filedb "github.com/tienda/inventory-system/internal/infrastructure/db/file"
	"github.com/tienda/inventory-system/internal/session"
	"github.com/tienda/inventory-system/internal/stubapi"
)

// newBackend starts the seeded stub backend.
func newBackend(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(stubapi.New("e2e-secret", zerolog.Nop()).Router())
	t.Cleanup(srv.Close)
	return srv
}

// newApp assembles the full app over the given backend and session file,
// the same wiring the main command performs.
func newApp(t *testing.T, backendURL, sessionPath string) (*echo.Echo, *auth.Gate) {
	t.Helper()

	sessions := filedb.NewSessionRepository(sessionPath)
	store := session.NewStore(sessions, zerolog.Nop())
	gate := auth.NewGate(store)
	backend := client.New(backendURL, store, zerolog.Nop())

	e := api.NewRouter(api.Deps{
		Gate:       gate,
		API:        backend,
		Sessions:   sessions,
		BackendURL: backendURL,
		Log:        zerolog.Nop(),
		Metrics:    prometheus.NewRegistry(),
	})
	return e, gate
}

func do(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func loginBody(email, password string) string {
	return fmt.Sprintf(`{"email":%q,"password":%q}`, email, password)
}

func TestApp_OwnerFlow(t *testing.T) {
	backend := newBackend(t)
	e, gate := newApp(t, backend.URL, filepath.Join(t.TempDir(), "session.json"))

	// Before the persisted session is restored, protected routes answer
	// "starting" and never redirect.
	rec := do(e, http.MethodGet, "/dashboard", "")
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("pre-restore status = %d, want 503", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "starting") {
		t.Fatalf("pre-restore body = %q", rec.Body.String())
	}

	if err := gate.Resolve(context.Background()); err != nil {
		t.Fatalf("resolve: %v", err)
	}

	// Anonymous after restore: redirect to login.
	rec = do(e, http.MethodGet, "/dashboard", "")
	if rec.Code != http.StatusFound || rec.Header().Get(echo.HeaderLocation) != "/login" {
		t.Fatalf("anonymous: status=%d location=%q", rec.Code, rec.Header().Get(echo.HeaderLocation))
	}

	// The public catalog works without a session.
	rec = do(e, http.MethodGet, "/catalog", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("catalog status = %d, body = %q", rec.Code, rec.Body.String())
	}

	// Owner login opens the dashboard.
	rec = do(e, http.MethodPost, "/login", loginBody(stubapi.SeedOwnerEmail, stubapi.SeedOwnerPassword))
	if rec.Code != http.StatusOK {
		t.Fatalf("login status = %d, body = %q", rec.Code, rec.Body.String())
	}

	rec = do(e, http.MethodGet, "/dashboard", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("dashboard status = %d, body = %q", rec.Code, rec.Body.String())
	}
	for _, want := range []string{`"stats"`, `"recent_products"`, `"welcome":"Admin"`} {
		if !strings.Contains(rec.Body.String(), want) {
			t.Fatalf("dashboard body missing %s: %q", want, rec.Body.String())
		}
	}

	// Full inventory list is reachable behind the gate.
	rec = do(e, http.MethodGet, "/dashboard/products", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("products status = %d, body = %q", rec.Code, rec.Body.String())
	}

	// Logout closes the session and the gate drops back to redirecting.
	rec = do(e, http.MethodPost, "/logout", "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("logout status = %d", rec.Code)
	}
	rec = do(e, http.MethodGet, "/dashboard", "")
	if rec.Code != http.StatusFound {
		t.Fatalf("post-logout status = %d, want 302", rec.Code)
	}
}

func TestApp_CustomerIsAuthenticatedButNotAuthorized(t *testing.T) {
	backend := newBackend(t)
	e, gate := newApp(t, backend.URL, filepath.Join(t.TempDir(), "session.json"))
	if err := gate.Resolve(context.Background()); err != nil {
		t.Fatalf("resolve: %v", err)
	}

	rec := do(e, http.MethodPost, "/login", loginBody(stubapi.SeedCustomerEmail, stubapi.SeedCustomerPassword))
	if rec.Code != http.StatusOK {
		t.Fatalf("customer login status = %d, body = %q", rec.Code, rec.Body.String())
	}
	if !gate.IsAuthenticated() {
		t.Fatalf("customer session not opened")
	}

	rec = do(e, http.MethodGet, "/dashboard", "")
	if rec.Code != http.StatusFound || rec.Header().Get(echo.HeaderLocation) != "/login" {
		t.Fatalf("customer on dashboard: status=%d location=%q", rec.Code, rec.Header().Get(echo.HeaderLocation))
	}
}

func TestApp_PersistedSessionSurvivesRestart(t *testing.T) {
	backend := newBackend(t)
	sessionPath := filepath.Join(t.TempDir(), "session.json")

	e, gate := newApp(t, backend.URL, sessionPath)
	if err := gate.Resolve(context.Background()); err != nil {
		t.Fatalf("resolve: %v", err)
	}
	rec := do(e, http.MethodPost, "/login", loginBody(stubapi.SeedOwnerEmail, stubapi.SeedOwnerPassword))
	if rec.Code != http.StatusOK {
		t.Fatalf("login status = %d", rec.Code)
	}

	// A fresh process over the same session file restores the session
	// without a new login.
	e2, gate2 := newApp(t, backend.URL, sessionPath)
	if err := gate2.Resolve(context.Background()); err != nil {
		t.Fatalf("resolve after restart: %v", err)
	}
	if gate2.Current() != auth.StateAuthenticated {
		t.Fatalf("state after restart = %s", gate2.Current())
	}

	rec = do(e2, http.MethodGet, "/dashboard", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("dashboard after restart = %d, body = %q", rec.Code, rec.Body.String())
	}
}

func TestApp_ProductCRUDThroughGateway(t *testing.T) {
	backend := newBackend(t)
	e, gate := newApp(t, backend.URL, filepath.Join(t.TempDir(), "session.json"))
	if err := gate.Resolve(context.Background()); err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if rec := do(e, http.MethodPost, "/login", loginBody(stubapi.SeedOwnerEmail, stubapi.SeedOwnerPassword)); rec.Code != http.StatusOK {
		t.Fatalf("login status = %d", rec.Code)
	}

	rec := do(e, http.MethodPost, "/dashboard/products", `{"name":"Silk Tie","category":"Accessories","stock":4,"purchase_price":6,"sale_price":19.9}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body = %q", rec.Code, rec.Body.String())
	}

	// Validation failures stay local.
	rec = do(e, http.MethodPost, "/dashboard/products", `{"category":"Accessories"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("invalid create status = %d, want 400", rec.Code)
	}

	// Backend-reported failures carry the backend's message through.
	rec = do(e, http.MethodDelete, "/dashboard/products/999", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("missing delete status = %d, body = %q", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "product not found") {
		t.Fatalf("missing delete body = %q", rec.Body.String())
	}
}

func TestApp_UnknownPathRedirectsHome(t *testing.T) {
	backend := newBackend(t)
	e, _ := newApp(t, backend.URL, filepath.Join(t.TempDir(), "session.json"))

	rec := do(e, http.MethodGet, "/no/such/screen", "")
	if rec.Code != http.StatusFound || rec.Header().Get(echo.HeaderLocation) != "/" {
		t.Fatalf("status=%d location=%q", rec.Code, rec.Header().Get(echo.HeaderLocation))
	}
}
