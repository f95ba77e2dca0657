package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/jameszjgao/vouchap-crm/internal/domain"
	"github.com/jameszjgao/vouchap-crm/internal/http/response"
	"github.com/jameszjgao/vouchap-crm/internal/observability"
	"github.com/jameszjgao/vouchap-crm/internal/repository"
	"github.com/jameszjgao/vouchap-crm/internal/service"
)

type SkuHandler struct {
	svc *service.SkuService
}

func NewSkuHandler(svc *service.SkuService) *SkuHandler {
	return &SkuHandler{svc: svc}
}

func parseSkuID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.New("invalid sku id")
	}
	return uint(id), nil
}

func (h *SkuHandler) ListEditions(w http.ResponseWriter, r *http.Request) {
	editions, err := h.svc.ListEditions(r.Context())
	if err != nil {
		response.Error(w, r, http.StatusInternalServerError, "INTERNAL", "failed to load editions", nil)
		return
	}
	response.JSON(w, r, http.StatusOK, map[string]any{"editions": editions})
}

func (h *SkuHandler) CreateEdition(w http.ResponseWriter, r *http.Request) {
	var body domain.SkuEdition
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid payload", nil)
		return
	}
	body.ID = 0

	if err := h.svc.CreateEdition(r.Context(), &body); err != nil {
		if errors.Is(err, service.ErrInvalidSkuInput) {
			response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", err.Error(), nil)
			return
		}
		response.Error(w, r, http.StatusInternalServerError, "INTERNAL", "failed to create edition", nil)
		return
	}
	observability.Audit(r, "sku.edition.create", "code", body.Code)
	response.JSON(w, r, http.StatusCreated, body)
}

func (h *SkuHandler) UpdateEdition(w http.ResponseWriter, r *http.Request) {
	id, err := parseSkuID(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", err.Error(), nil)
		return
	}
	fields, ok := decodeSkuFields(w, r)
	if !ok {
		return
	}

	if err := h.svc.UpdateEdition(r.Context(), id, fields); err != nil {
		writeSkuError(w, r, err, repository.ErrSkuEditionNotFound, "edition")
		return
	}
	observability.Audit(r, "sku.edition.update", "id", id)
	response.JSON(w, r, http.StatusOK, map[string]any{"id": id})
}

func (h *SkuHandler) DeleteEdition(w http.ResponseWriter, r *http.Request) {
	id, err := parseSkuID(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", err.Error(), nil)
		return
	}
	if err := h.svc.DeleteEdition(r.Context(), id); err != nil {
		writeSkuError(w, r, err, repository.ErrSkuEditionNotFound, "edition")
		return
	}
	observability.Audit(r, "sku.edition.delete", "id", id)
	response.JSON(w, r, http.StatusOK, map[string]any{"id": id})
}

func (h *SkuHandler) ListAddons(w http.ResponseWriter, r *http.Request) {
	addons, err := h.svc.ListAddons(r.Context())
	if err != nil {
		response.Error(w, r, http.StatusInternalServerError, "INTERNAL", "failed to load add-ons", nil)
		return
	}
	response.JSON(w, r, http.StatusOK, map[string]any{"addons": addons})
}

func (h *SkuHandler) CreateAddon(w http.ResponseWriter, r *http.Request) {
	var body domain.SkuAddon
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid payload", nil)
		return
	}
	body.ID = 0

	if err := h.svc.CreateAddon(r.Context(), &body); err != nil {
		if errors.Is(err, service.ErrInvalidSkuInput) {
			response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", err.Error(), nil)
			return
		}
		response.Error(w, r, http.StatusInternalServerError, "INTERNAL", "failed to create add-on", nil)
		return
	}
	observability.Audit(r, "sku.addon.create", "code", body.Code)
	response.JSON(w, r, http.StatusCreated, body)
}

func (h *SkuHandler) UpdateAddon(w http.ResponseWriter, r *http.Request) {
	id, err := parseSkuID(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", err.Error(), nil)
		return
	}
	fields, ok := decodeSkuFields(w, r)
	if !ok {
		return
	}

	if err := h.svc.UpdateAddon(r.Context(), id, fields); err != nil {
		writeSkuError(w, r, err, repository.ErrSkuAddonNotFound, "add-on")
		return
	}
	observability.Audit(r, "sku.addon.update", "id", id)
	response.JSON(w, r, http.StatusOK, map[string]any{"id": id})
}

func (h *SkuHandler) DeleteAddon(w http.ResponseWriter, r *http.Request) {
	id, err := parseSkuID(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", err.Error(), nil)
		return
	}
	if err := h.svc.DeleteAddon(r.Context(), id); err != nil {
		writeSkuError(w, r, err, repository.ErrSkuAddonNotFound, "add-on")
		return
	}
	observability.Audit(r, "sku.addon.delete", "id", id)
	response.JSON(w, r, http.StatusOK, map[string]any{"id": id})
}

// decodeSkuFields whitelists the patchable columns so callers cannot
// reach into gorm internals via arbitrary field names.
func decodeSkuFields(w http.ResponseWriter, r *http.Request) (map[string]any, bool) {
	var body struct {
		Name        *string `json:"name"`
		Description *string `json:"description"`
		PriceCents  *int64  `json:"price_cents"`
		SeatLimit   *int    `json:"seat_limit"`
		Unit        *string `json:"unit"`
		Active      *bool   `json:"active"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid payload", nil)
		return nil, false
	}
	fields := map[string]any{}
	if body.Name != nil {
		fields["name"] = *body.Name
	}
	if body.Description != nil {
		fields["description"] = *body.Description
	}
	if body.PriceCents != nil {
		fields["price_cents"] = *body.PriceCents
	}
	if body.SeatLimit != nil {
		fields["seat_limit"] = *body.SeatLimit
	}
	if body.Unit != nil {
		fields["unit"] = *body.Unit
	}
	if body.Active != nil {
		fields["active"] = *body.Active
	}
	if len(fields) == 0 {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "no fields to update", nil)
		return nil, false
	}
	return fields, true
}

func writeSkuError(w http.ResponseWriter, r *http.Request, err, notFound error, kind string) {
	switch {
	case errors.Is(err, notFound):
		response.Error(w, r, http.StatusNotFound, "NOT_FOUND", kind+" not found", nil)
	case errors.Is(err, service.ErrInvalidSkuInput):
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", err.Error(), nil)
	default:
		response.Error(w, r, http.StatusInternalServerError, "INTERNAL", "failed to update "+kind, nil)
	}
}
