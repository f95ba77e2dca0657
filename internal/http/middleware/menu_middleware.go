package middleware

import (
	"context"
	"net/http"

	"github.com/jameszjgao/vouchap-crm/internal/http/response"
	"github.com/jameszjgao/vouchap-crm/internal/menu"
	"github.com/jameszjgao/vouchap-crm/internal/observability"
	"github.com/jameszjgao/vouchap-crm/internal/rbac"
	"github.com/jameszjgao/vouchap-crm/internal/security"
)

// SessionSource yields the permission context for a set of claims,
// re-establishing it when the in-memory session was lost.
type SessionSource interface {
	Resume(ctx context.Context, claims *security.Claims) *rbac.PermissionContext
}

// RequireMenuKey gates a route on one catalog capability. No claims means
// 401; a session whose effective set lacks the key means 403. Absence of
// permission information always denies.
func RequireMenuKey(sessions SessionSource, key menu.Key) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				response.Error(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "missing auth context", nil)
				return
			}
			pc := sessions.Resume(r.Context(), claims)
			allowed := pc != nil && pc.Can(key)
			observability.RecordPermissionCheck(r.Context(), string(key), allowed)
			if !allowed {
				response.Error(w, r, http.StatusForbidden, "FORBIDDEN", "insufficient permission",
					map[string]string{"required": string(key)})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
