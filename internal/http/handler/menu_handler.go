package handler

import (
	"net/http"

	"github.com/jameszjgao/vouchap-crm/internal/http/middleware"
	"github.com/jameszjgao/vouchap-crm/internal/http/response"
	"github.com/jameszjgao/vouchap-crm/internal/menu"
	"github.com/jameszjgao/vouchap-crm/internal/service"
)

type MenuHandler struct {
	auth *service.AuthService
}

func NewMenuHandler(auth *service.AuthService) *MenuHandler {
	return &MenuHandler{auth: auth}
}

// Catalog returns the full grouped menu catalog. Used by the admin screen
// to render the permission matrix.
func (h *MenuHandler) Catalog(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, r, http.StatusOK, map[string]any{"groups": menu.Groups()})
}

// Mine returns the caller's navigable menu: the catalog groups filtered to
// the session's effective permission set, with empty groups dropped.
func (h *MenuHandler) Mine(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		response.Error(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "missing auth context", nil)
		return
	}
	allowed := h.auth.Resume(r.Context(), claims).Snapshot()

	type group struct {
		Label string     `json:"label"`
		Keys  []menu.Key `json:"keys"`
	}
	var groups []group
	for _, g := range menu.Groups() {
		var keys []menu.Key
		for _, k := range g.Keys {
			if allowed.Has(k) {
				keys = append(keys, k)
			}
		}
		if len(keys) > 0 {
			groups = append(groups, group{Label: g.Label, Keys: keys})
		}
	}
	response.JSON(w, r, http.StatusOK, map[string]any{"groups": groups})
}
