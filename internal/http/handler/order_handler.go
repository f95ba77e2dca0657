package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jameszjgao/vouchap-crm/internal/http/response"
	"github.com/jameszjgao/vouchap-crm/internal/observability"
	"github.com/jameszjgao/vouchap-crm/internal/repository"
	"github.com/jameszjgao/vouchap-crm/internal/service"
)

type OrderHandler struct {
	svc      *service.OrderService
	opsUsers repository.OpsUserRepository
}

func NewOrderHandler(svc *service.OrderService, opsUsers repository.OpsUserRepository) *OrderHandler {
	return &OrderHandler{svc: svc, opsUsers: opsUsers}
}

func (h *OrderHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	orders, err := h.svc.ListAll(r.Context())
	if err != nil {
		response.Error(w, r, http.StatusInternalServerError, "INTERNAL", "failed to load orders", nil)
		return
	}
	response.JSON(w, r, http.StatusOK, map[string]any{"orders": orders})
}

func (h *OrderHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	actor := actorOpsUser(w, r, h.opsUsers)
	if actor == nil {
		return
	}
	orders, err := h.svc.ListMine(r.Context(), actor.ID)
	if err != nil {
		response.Error(w, r, http.StatusInternalServerError, "INTERNAL", "failed to load orders", nil)
		return
	}
	response.JSON(w, r, http.StatusOK, map[string]any{"orders": orders})
}

func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body struct {
		SpaceID      string     `json:"space_id"`
		SkuEditionID uint       `json:"sku_edition_id"`
		Seats        int        `json:"seats"`
		AmountCents  int64      `json:"amount_cents"`
		Status       string     `json:"status"`
		ExpiresAt    *time.Time `json:"expires_at"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid payload", nil)
		return
	}

	order, err := h.svc.Create(r.Context(), service.CreateOrderInput{
		SpaceID:      body.SpaceID,
		SkuEditionID: body.SkuEditionID,
		Seats:        body.Seats,
		AmountCents:  body.AmountCents,
		Status:       body.Status,
		ExpiresAt:    body.ExpiresAt,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidOrderInput), errors.Is(err, service.ErrInvalidOrderStatus):
			response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", err.Error(), nil)
		case errors.Is(err, repository.ErrSpaceNotFound):
			response.Error(w, r, http.StatusNotFound, "NOT_FOUND", "customer not found", nil)
		default:
			response.Error(w, r, http.StatusInternalServerError, "INTERNAL", "failed to create order", nil)
		}
		return
	}

	observability.Audit(r, "order.create", "order_id", order.ID, "space_id", order.SpaceID)
	response.JSON(w, r, http.StatusCreated, order)
}

func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "id")
	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid payload", nil)
		return
	}

	order, err := h.svc.UpdateStatus(r.Context(), orderID, body.Status)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidOrderStatus):
			response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", err.Error(), nil)
		case errors.Is(err, repository.ErrOrderNotFound):
			response.Error(w, r, http.StatusNotFound, "NOT_FOUND", "order not found", nil)
		default:
			response.Error(w, r, http.StatusInternalServerError, "INTERNAL", "failed to update order", nil)
		}
		return
	}

	observability.Audit(r, "order.status.update", "order_id", orderID, "status", body.Status)
	response.JSON(w, r, http.StatusOK, order)
}

func (h *OrderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "id")
	if err := h.svc.Delete(r.Context(), orderID); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			response.Error(w, r, http.StatusNotFound, "NOT_FOUND", "order not found", nil)
			return
		}
		response.Error(w, r, http.StatusInternalServerError, "INTERNAL", "failed to delete order", nil)
		return
	}
	observability.Audit(r, "order.delete", "order_id", orderID)
	response.JSON(w, r, http.StatusOK, map[string]string{"order_id": orderID})
}
