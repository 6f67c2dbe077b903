package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/tienda/inventory-system/internal/client"
	"github.com/tienda/inventory-system/internal/core/domain"
)

type fixedIdentity struct {
	id *domain.Identity
}

func (f fixedIdentity) Identity() *domain.Identity       { return f.id }
func (f fixedIdentity) Read() (string, *domain.Identity) { return "tok", f.id }

func getDashboard(t *testing.T, backend http.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()

	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)

	owner := &domain.Identity{ID: 1, DisplayName: "Admin", Role: domain.RoleOwner}
	src := fixedIdentity{id: owner}
	h := NewDashboardHandler(client.New(srv.URL, src, zerolog.Nop()), src, zerolog.Nop())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	rec := httptest.NewRecorder()

	if err := h.Overview(e.NewContext(req, rec)); err != nil {
		t.Fatalf("overview: %v", err)
	}
	return rec
}

func TestDashboard_JoinsAllThreeFetches(t *testing.T) {
	rec := getDashboard(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/products":
			_, _ = w.Write([]byte(`{"success":true,"data":[{"id":1,"status":"active","stock":3,"received_at":"2026-08-01T00:00:00Z"}]}`))
		case "/suppliers":
			_, _ = w.Write([]byte(`{"success":true,"data":[{"id":1},{"id":2}]}`))
		case "/clients":
			_, _ = w.Write([]byte(`{"success":true,"data":[{"id":5}]}`))
		default:
			http.NotFound(w, r)
		}
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{`"total_products":1`, `"total_suppliers":2`, `"total_clients":1`, `"low_stock_products":1`, `"welcome":"Admin"`} {
		if !strings.Contains(body, want) {
			t.Fatalf("body missing %s: %q", want, body)
		}
	}
	if strings.Contains(body, `"warnings"`) {
		t.Fatalf("unexpected warnings: %q", body)
	}
}

func TestDashboard_ToleratesPartialArrival(t *testing.T) {
	rec := getDashboard(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/products":
			_, _ = w.Write([]byte(`{"success":true,"data":[{"id":1,"status":"active","stock":20,"received_at":"2026-08-01T00:00:00Z"}]}`))
		case "/suppliers":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			_, _ = w.Write([]byte(`{"success":true,"data":[]}`))
		}
	})

	// One failed fetch degrades its figures to zero, with a warning; the
	// screen still renders.
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `"total_products":1`) || !strings.Contains(body, `"total_suppliers":0`) {
		t.Fatalf("body = %q", body)
	}
	if !strings.Contains(body, `"warnings"`) || !strings.Contains(body, "suppliers") {
		t.Fatalf("missing suppliers warning: %q", body)
	}
}
