package middleware

import (
	"net/http"

	"psicoclinica-server/internal/domain/entity"
	"psicoclinica-server/pkg/response"
)

// RequireRole checks that the authenticated user carries one of the
// allowed roles. Role is read from context (set by AuthMiddleware from
// JWT claims). The API analog of the page-level redirects: missing
// identity is a 401, wrong role a 403.
func RequireRole(allowedRoles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := GetRoleFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "Role information not found")
				return
			}

			allowed := false
			for _, allowedRole := range allowedRoles {
				if role == allowedRole {
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

// RequirePsychologist gates the staff management endpoints.
func RequirePsychologist(next http.Handler) http.Handler {
	return RequireRole(entity.RolePsychologist)(next)
}
