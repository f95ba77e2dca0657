package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jameszjgao/vouchap-crm/internal/http/response"
	"github.com/jameszjgao/vouchap-crm/internal/observability"
	"github.com/jameszjgao/vouchap-crm/internal/repository"
	"github.com/jameszjgao/vouchap-crm/internal/service"
)

type CustomerHandler struct {
	svc         *service.CustomerService
	opsUsers    repository.OpsUserRepository
	assignments repository.AssignmentRepository
}

func NewCustomerHandler(
	svc *service.CustomerService,
	opsUsers repository.OpsUserRepository,
	assignments repository.AssignmentRepository,
) *CustomerHandler {
	return &CustomerHandler{svc: svc, opsUsers: opsUsers, assignments: assignments}
}

// customerFilterFromQuery reads the optional list filters. Malformed
// numbers and dates are ignored rather than rejected.
func customerFilterFromQuery(r *http.Request) service.CustomerFilter {
	q := r.URL.Query()
	filter := service.CustomerFilter{
		Name:        strings.TrimSpace(q.Get("name")),
		SkuName:     strings.TrimSpace(q.Get("sku")),
		AssignedOps: strings.TrimSpace(q.Get("assigned_to")),
	}
	if n, err := strconv.Atoi(q.Get("min_members")); err == nil {
		filter.MinMembers = n
	}
	if n, err := strconv.Atoi(q.Get("max_members")); err == nil {
		filter.MaxMembers = n
	}
	if ts, err := time.Parse(time.RFC3339, q.Get("created_from")); err == nil {
		filter.CreatedFrom = &ts
	}
	if ts, err := time.Parse(time.RFC3339, q.Get("created_to")); err == nil {
		filter.CreatedTo = &ts
	}
	return filter
}

func (h *CustomerHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.ListAll(r.Context(), customerFilterFromQuery(r))
	if err != nil {
		response.Error(w, r, http.StatusInternalServerError, "INTERNAL", "failed to load customers", nil)
		return
	}
	response.JSON(w, r, http.StatusOK, list)
}

func (h *CustomerHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	actor := actorOpsUser(w, r, h.opsUsers)
	if actor == nil {
		return
	}
	list, err := h.svc.ListMine(r.Context(), actor.ID, customerFilterFromQuery(r))
	if err != nil {
		response.Error(w, r, http.StatusInternalServerError, "INTERNAL", "failed to load customers", nil)
		return
	}
	response.JSON(w, r, http.StatusOK, list)
}

func (h *CustomerHandler) AddFollowUp(w http.ResponseWriter, r *http.Request) {
	actor := actorOpsUser(w, r, h.opsUsers)
	if actor == nil {
		return
	}
	spaceID := chi.URLParam(r, "id")
	var body struct {
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || strings.TrimSpace(body.Content) == "" {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "content is required", nil)
		return
	}

	row, err := h.svc.AddFollowUp(r.Context(), spaceID, actor.ID, strings.TrimSpace(body.Content))
	if err != nil {
		if errors.Is(err, repository.ErrSpaceNotFound) {
			response.Error(w, r, http.StatusNotFound, "NOT_FOUND", "customer not found", nil)
			return
		}
		response.Error(w, r, http.StatusInternalServerError, "INTERNAL", "failed to add follow-up", nil)
		return
	}

	observability.Audit(r, "customer.followup.add", "space_id", spaceID, "ops_user", actor.ID)
	response.JSON(w, r, http.StatusCreated, row)
}

func (h *CustomerHandler) Assign(w http.ResponseWriter, r *http.Request) {
	spaceID := chi.URLParam(r, "id")
	var body struct {
		OpsUserID string `json:"ops_user_id"`
		Role      string `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.OpsUserID == "" {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "ops_user_id is required", nil)
		return
	}
	if body.Role == "" {
		body.Role = "owner"
	}
	if _, err := h.opsUsers.FindByID(body.OpsUserID); err != nil {
		response.Error(w, r, http.StatusNotFound, "NOT_FOUND", "team member not found", nil)
		return
	}

	if err := h.assignments.Assign(spaceID, body.OpsUserID, body.Role); err != nil {
		response.Error(w, r, http.StatusInternalServerError, "INTERNAL", "failed to assign customer", nil)
		return
	}

	observability.Audit(r, "customer.assign", "space_id", spaceID, "ops_user", body.OpsUserID)
	response.JSON(w, r, http.StatusOK, map[string]string{
		"space_id":    spaceID,
		"ops_user_id": body.OpsUserID,
		"role":        body.Role,
	})
}

func (h *CustomerHandler) Unassign(w http.ResponseWriter, r *http.Request) {
	spaceID := chi.URLParam(r, "id")
	if err := h.assignments.Unassign(spaceID); err != nil {
		if errors.Is(err, repository.ErrAssignmentNotFound) {
			response.Error(w, r, http.StatusNotFound, "NOT_FOUND", "no assignment for that customer", nil)
			return
		}
		response.Error(w, r, http.StatusInternalServerError, "INTERNAL", "failed to unassign customer", nil)
		return
	}
	observability.Audit(r, "customer.unassign", "space_id", spaceID)
	response.JSON(w, r, http.StatusOK, map[string]string{"space_id": spaceID})
}
