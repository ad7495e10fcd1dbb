package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

func adminRequest(t *testing.T, path string) (*core.RequestEvent, *httptest.ResponseRecorder) {
	t.Helper()
	rec := httptest.NewRecorder()
	e := &core.RequestEvent{}
	e.Request = httptest.NewRequest(http.MethodGet, path, nil)
	e.Response = rec
	return e, rec
}

func TestRequireAdmin_UnauthenticatedAPI(t *testing.T) {
	mw := RequireAdmin(pocketbase.New())

	e, rec := adminRequest(t, "/api/admin/orders/stream")
	if err := mw(e); err != nil {
		t.Fatalf("middleware: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d; want %d", rec.Code, http.StatusUnauthorized)
	}
	if body := rec.Body.String(); !strings.Contains(body, "Admin authentication required") {
		t.Errorf("body = %q; want an auth error message", body)
	}
}

func TestRequireAdmin_UnauthenticatedPageRedirectsToDashboard(t *testing.T) {
	mw := RequireAdmin(pocketbase.New())

	e, rec := adminRequest(t, "/admin/orders")
	if err := mw(e); err != nil {
		t.Fatalf("middleware: %v", err)
	}
	if rec.Code != http.StatusSeeOther {
		t.Errorf("status = %d; want %d", rec.Code, http.StatusSeeOther)
	}
	if loc := rec.Header().Get("Location"); loc != "/_/" {
		t.Errorf("Location = %q; want the dashboard login at /_/", loc)
	}
}
