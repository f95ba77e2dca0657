package handler

import (
	"net/http"

	"github.com/jameszjgao/vouchap-crm/internal/domain"
	"github.com/jameszjgao/vouchap-crm/internal/http/middleware"
	"github.com/jameszjgao/vouchap-crm/internal/http/response"
	"github.com/jameszjgao/vouchap-crm/internal/repository"
)

// actorOpsUser resolves the signed-in caller to their operator record.
// Writes the error response itself and returns nil when the caller is not
// on the roster.
func actorOpsUser(w http.ResponseWriter, r *http.Request, opsUsers repository.OpsUserRepository) *domain.OpsUser {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		response.Error(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "missing auth context", nil)
		return nil
	}
	actor, err := opsUsers.FindByUserID(claims.Subject)
	if err != nil {
		response.Error(w, r, http.StatusForbidden, "FORBIDDEN", "not a team member", nil)
		return nil
	}
	return actor
}
