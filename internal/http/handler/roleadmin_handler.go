package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jameszjgao/vouchap-crm/internal/http/response"
	"github.com/jameszjgao/vouchap-crm/internal/menu"
	"github.com/jameszjgao/vouchap-crm/internal/observability"
	"github.com/jameszjgao/vouchap-crm/internal/service"
)

type RoleAdminHandler struct {
	svc *service.RoleAdminService
}

func NewRoleAdminHandler(svc *service.RoleAdminService) *RoleAdminHandler {
	return &RoleAdminHandler{svc: svc}
}

func (h *RoleAdminHandler) List(w http.ResponseWriter, r *http.Request) {
	rows, err := h.svc.LoadAll(r.Context())
	if err != nil {
		response.Error(w, r, http.StatusInternalServerError, "INTERNAL", "failed to load role matrix", nil)
		return
	}
	response.JSON(w, r, http.StatusOK, map[string]any{"roles": rows})
}

func (h *RoleAdminHandler) Save(w http.ResponseWriter, r *http.Request) {
	role := chi.URLParam(r, "role")
	var body struct {
		Keys []string `json:"keys"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid payload", nil)
		return
	}
	target := menu.Set{}
	for _, k := range body.Keys {
		target.Add(menu.Key(k))
	}

	res, err := h.svc.Save(r.Context(), role, target)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAdminLockedKey):
			response.Error(w, r, http.StatusConflict, "ADMIN_LOCKED", err.Error(), nil)
		case errors.Is(err, service.ErrUnknownMenuKey):
			response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", err.Error(), nil)
		default:
			response.Error(w, r, http.StatusInternalServerError, "INTERNAL", "failed to save permissions", nil)
		}
		return
	}

	observability.Audit(r, "roles.permissions.save",
		"role", role, "added", len(res.Added), "removed", len(res.Removed), "noop", res.Noop)
	response.JSON(w, r, http.StatusOK, res)
}

func (h *RoleAdminHandler) AddRole(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Code  string `json:"code"`
		Label string `json:"label"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid payload", nil)
		return
	}

	role, err := h.svc.AddRole(r.Context(), body.Code, body.Label)
	if err != nil {
		if errors.Is(err, service.ErrEmptyRoleCode) {
			response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", err.Error(), nil)
			return
		}
		response.Error(w, r, http.StatusInternalServerError, "INTERNAL", "failed to add role", nil)
		return
	}

	observability.Audit(r, "roles.add", "role", role)
	response.JSON(w, r, http.StatusCreated, map[string]string{"role": role})
}

func (h *RoleAdminHandler) MoveRole(w http.ResponseWriter, r *http.Request) {
	role := chi.URLParam(r, "role")
	var body struct {
		Direction string `json:"direction"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid payload", nil)
		return
	}
	var delta int
	switch body.Direction {
	case "up":
		delta = -1
	case "down":
		delta = 1
	default:
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "direction must be up or down", nil)
		return
	}

	order, err := h.svc.MoveRole(r.Context(), role, delta)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownRole):
			response.Error(w, r, http.StatusNotFound, "NOT_FOUND", err.Error(), nil)
		case errors.Is(err, service.ErrBadMove):
			response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", err.Error(), nil)
		default:
			response.Error(w, r, http.StatusInternalServerError, "INTERNAL", "failed to move role", nil)
		}
		return
	}
	response.JSON(w, r, http.StatusOK, map[string]any{"order": order})
}

func (h *RoleAdminHandler) SetLabel(w http.ResponseWriter, r *http.Request) {
	role := chi.URLParam(r, "role")
	var body struct {
		Label string `json:"label"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid payload", nil)
		return
	}

	if err := h.svc.SetRoleLabel(r.Context(), role, body.Label); err != nil {
		if errors.Is(err, service.ErrUnknownRole) {
			response.Error(w, r, http.StatusNotFound, "NOT_FOUND", err.Error(), nil)
			return
		}
		response.Error(w, r, http.StatusInternalServerError, "INTERNAL", "failed to set label", nil)
		return
	}
	response.JSON(w, r, http.StatusOK, map[string]string{"role": role, "label": body.Label})
}
