package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"pharmacare-api/internal/domain/entity"
	"pharmacare-api/pkg/jwt"
)

func requestWithRoles(roles ...string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/customers", nil)
	identity := jwt.Identity{ID: 1, Email: "admin@example.com", Roles: roles}
	ctx := context.WithValue(req.Context(), IdentityKey, identity)
	return req.WithContext(ctx)
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name       string
		middleware func(http.Handler) http.Handler
		request    *http.Request
		wantStatus int
	}{
		{
			name:       "admin passes admin gate",
			middleware: RequireAdmin,
			request:    requestWithRoles(entity.RoleAdmin),
			wantStatus: http.StatusOK,
		},
		{
			name:       "pharmacy admin blocked by admin gate",
			middleware: RequireAdmin,
			request:    requestWithRoles(entity.RoleAdminPharmacy),
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "pharmacy admin passes its own gate",
			middleware: RequireAdminPharmacy,
			request:    requestWithRoles(entity.RoleAdminPharmacy),
			wantStatus: http.StatusOK,
		},
		{
			name:       "customer blocked by pharmacy gate",
			middleware: RequireAdminPharmacy,
			request:    requestWithRoles(entity.RoleCustomer),
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "any-admin gate accepts either kind",
			middleware: RequireAnyAdmin,
			request:    requestWithRoles(entity.RoleAdminPharmacy),
			wantStatus: http.StatusOK,
		},
		{
			name:       "any-admin gate blocks delivery",
			middleware: RequireAnyAdmin,
			request:    requestWithRoles(entity.RoleDelivery),
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "no identity in context",
			middleware: RequireAdmin,
			request:    httptest.NewRequest(http.MethodGet, "/api/customers", nil),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "secondary role counts",
			middleware: RequireAdmin,
			request:    requestWithRoles(entity.RoleCustomer, entity.RoleAdmin),
			wantStatus: http.StatusOK,
		},
	}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tt.middleware(next).ServeHTTP(rec, tt.request)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}
