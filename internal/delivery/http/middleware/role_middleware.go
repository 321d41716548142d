package middleware

import (
	"net/http"

	"pharmacare-api/internal/domain/entity"
	"pharmacare-api/pkg/response"
)

// RequireRole checks that the authenticated identity carries at least
// one of the allowed roles. Roles are read from context, set by
// AuthMiddleware from the JWT claims.
func RequireRole(allowedRoles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := GetIdentityFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "Role information not found")
				return
			}

			allowed := false
		outer:
			for _, role := range identity.Roles {
				for _, allowedRole := range allowedRoles {
					if role == allowedRole {
						allowed = true
						break outer
					}
				}
			}

			if !allowed {
				response.Forbidden(w, "You don't have permission to access this resource")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin guards the platform administration endpoints
func RequireAdmin(next http.Handler) http.Handler {
	return RequireRole(entity.RoleAdmin)(next)
}

// RequireAdminPharmacy guards the pharmacy back-office endpoints
func RequireAdminPharmacy(next http.Handler) http.Handler {
	return RequireRole(entity.RoleAdminPharmacy)(next)
}

// RequireAnyAdmin allows both administrator kinds
func RequireAnyAdmin(next http.Handler) http.Handler {
	return RequireRole(entity.RoleAdmin, entity.RoleAdminPharmacy)(next)
}
