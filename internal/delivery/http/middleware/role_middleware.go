package middleware

import (
	"net/http"

	"hospital-admin-platform/internal/domain/entity"
	"hospital-admin-platform/pkg/response"
)

// RequireRole creates a middleware that checks if the actor has any of the
// required roles. This is a coarse route gate; per-record tenancy decisions
// live in the authz policy evaluator, not here.
func RequireRole(allowedRoles ...entity.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor, ok := GetActorFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "Actor information not found")
				return
			}

			allowed := false
			for _, role := range allowedRoles {
				if actor.Role == role {
					allowed = true
					break
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

// RequireElevated is a convenience middleware for admin/super_admin-only
// endpoints.
func RequireElevated(next http.Handler) http.Handler {
	return RequireRole(entity.RoleAdmin, entity.RoleSuperAdmin)(next)
}
