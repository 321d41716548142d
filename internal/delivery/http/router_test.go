package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pharmacare-api/internal/delivery/http/middleware"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	r := NewRouter(
		nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil,
		middleware.NewAuthMiddleware(nil, nil),
		middleware.NewCORSMiddleware(),
		t.TempDir(),
	)
	return r.Setup()
}

func TestPreflightCarriesCORSHeaders(t *testing.T) {
	h := newTestRouter(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/api/customers", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if rec.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("missing Access-Control-Allow-Origin on preflight")
	}
	if !strings.Contains(rec.Header().Get("Access-Control-Allow-Methods"), http.MethodOptions) {
		t.Errorf("Access-Control-Allow-Methods = %q", rec.Header().Get("Access-Control-Allow-Methods"))
	}
}

func TestHealthCheckCarriesCORSHeaders(t *testing.T) {
	h := newTestRouter(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if rec.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("missing Access-Control-Allow-Origin on matched route")
	}
}
