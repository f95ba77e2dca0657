package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jameszjgao/vouchap-crm/internal/http/response"
	"github.com/jameszjgao/vouchap-crm/internal/observability"
	"github.com/jameszjgao/vouchap-crm/internal/repository"
	"github.com/jameszjgao/vouchap-crm/internal/service"
)

type TeamHandler struct {
	svc      *service.TeamService
	sync     *service.RoleSyncService
	opsUsers repository.OpsUserRepository
}

func NewTeamHandler(
	svc *service.TeamService,
	sync *service.RoleSyncService,
	opsUsers repository.OpsUserRepository,
) *TeamHandler {
	return &TeamHandler{svc: svc, sync: sync, opsUsers: opsUsers}
}

func (h *TeamHandler) List(w http.ResponseWriter, r *http.Request) {
	members, err := h.svc.List(r.Context())
	if err != nil {
		response.Error(w, r, http.StatusInternalServerError, "INTERNAL", "failed to load team", nil)
		return
	}
	response.JSON(w, r, http.StatusOK, map[string]any{"members": members})
}

func (h *TeamHandler) Invite(w http.ResponseWriter, r *http.Request) {
	actor := actorOpsUser(w, r, h.opsUsers)
	if actor == nil {
		return
	}
	var body struct {
		Email string `json:"email"`
		Role  string `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Email == "" {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "email is required", nil)
		return
	}

	member, err := h.svc.Invite(r.Context(), actor.ID, body.Email, body.Role)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTeamForbidden):
			response.Error(w, r, http.StatusForbidden, "FORBIDDEN", err.Error(), nil)
		case errors.Is(err, service.ErrNoPlatformUser):
			response.Error(w, r, http.StatusNotFound, "NOT_FOUND", err.Error(), nil)
		case errors.Is(err, service.ErrAlreadyMember):
			response.Error(w, r, http.StatusConflict, "CONFLICT", err.Error(), nil)
		default:
			response.Error(w, r, http.StatusInternalServerError, "INTERNAL", "failed to invite member", nil)
		}
		return
	}

	observability.Audit(r, "team.invite", "actor", actor.ID, "member", member.ID, "role", member.Role)
	response.JSON(w, r, http.StatusCreated, member)
}

func (h *TeamHandler) ChangeRole(w http.ResponseWriter, r *http.Request) {
	actor := actorOpsUser(w, r, h.opsUsers)
	if actor == nil {
		return
	}
	targetID := chi.URLParam(r, "id")
	var body struct {
		Role string `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Role == "" {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "role is required", nil)
		return
	}

	updated, err := h.svc.ChangeRole(r.Context(), actor.ID, targetID, body.Role)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTeamForbidden):
			response.Error(w, r, http.StatusForbidden, "FORBIDDEN", err.Error(), nil)
		case errors.Is(err, service.ErrLastAdmin):
			response.Error(w, r, http.StatusConflict, "LAST_ADMIN", err.Error(), nil)
		case errors.Is(err, repository.ErrOpsUserNotFound):
			response.Error(w, r, http.StatusNotFound, "NOT_FOUND", "team member not found", nil)
		case errors.Is(err, service.ErrUnknownRole):
			response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", err.Error(), nil)
		default:
			response.Error(w, r, http.StatusInternalServerError, "INTERNAL", "failed to change role", nil)
		}
		return
	}

	observability.Audit(r, "team.role.change", "actor", actor.ID, "member", targetID, "role", updated.Role)
	response.JSON(w, r, http.StatusOK, updated)
}

func (h *TeamHandler) Remove(w http.ResponseWriter, r *http.Request) {
	actor := actorOpsUser(w, r, h.opsUsers)
	if actor == nil {
		return
	}
	targetID := chi.URLParam(r, "id")

	if err := h.svc.Remove(r.Context(), actor.ID, targetID); err != nil {
		switch {
		case errors.Is(err, service.ErrTeamForbidden):
			response.Error(w, r, http.StatusForbidden, "FORBIDDEN", err.Error(), nil)
		case errors.Is(err, service.ErrLastAdmin):
			response.Error(w, r, http.StatusConflict, "LAST_ADMIN", err.Error(), nil)
		case errors.Is(err, repository.ErrOpsUserNotFound):
			response.Error(w, r, http.StatusNotFound, "NOT_FOUND", "team member not found", nil)
		default:
			response.Error(w, r, http.StatusInternalServerError, "INTERNAL", "failed to remove member", nil)
		}
		return
	}

	observability.Audit(r, "team.remove", "actor", actor.ID, "member", targetID)
	response.JSON(w, r, http.StatusOK, map[string]string{"removed": targetID})
}

// SyncSelf mirrors the caller's own role into their platform record.
func (h *TeamHandler) SyncSelf(w http.ResponseWriter, r *http.Request) {
	actor := actorOpsUser(w, r, h.opsUsers)
	if actor == nil {
		return
	}
	if err := h.sync.SyncSelf(r.Context(), actor.ID); err != nil {
		response.Error(w, r, http.StatusInternalServerError, "INTERNAL", "failed to sync role", nil)
		return
	}
	observability.Audit(r, "team.role.sync", "scope", "self", "actor", actor.ID)
	response.JSON(w, r, http.StatusOK, map[string]string{"synced": actor.ID})
}

// SyncMember mirrors another member's role. Admin only.
func (h *TeamHandler) SyncMember(w http.ResponseWriter, r *http.Request) {
	actor := actorOpsUser(w, r, h.opsUsers)
	if actor == nil {
		return
	}
	targetID := chi.URLParam(r, "id")

	if err := h.sync.SyncUser(r.Context(), actor.ID, targetID); err != nil {
		switch {
		case errors.Is(err, service.ErrSyncForbidden):
			response.Error(w, r, http.StatusForbidden, "FORBIDDEN", err.Error(), nil)
		case errors.Is(err, repository.ErrOpsUserNotFound):
			response.Error(w, r, http.StatusNotFound, "NOT_FOUND", "team member not found", nil)
		default:
			response.Error(w, r, http.StatusInternalServerError, "INTERNAL", "failed to sync role", nil)
		}
		return
	}
	observability.Audit(r, "team.role.sync", "scope", "other", "actor", actor.ID, "member", targetID)
	response.JSON(w, r, http.StatusOK, map[string]string{"synced": targetID})
}

// SyncAll mirrors every member's role. Admin only.
func (h *TeamHandler) SyncAll(w http.ResponseWriter, r *http.Request) {
	actor := actorOpsUser(w, r, h.opsUsers)
	if actor == nil {
		return
	}
	out, err := h.sync.SyncAll(r.Context(), actor.ID)
	if err != nil {
		if errors.Is(err, service.ErrSyncForbidden) {
			response.Error(w, r, http.StatusForbidden, "FORBIDDEN", err.Error(), nil)
			return
		}
		response.Error(w, r, http.StatusInternalServerError, "INTERNAL", "failed to sync roles", nil)
		return
	}
	observability.Audit(r, "team.role.sync", "scope", "all", "actor", actor.ID,
		"synced", out.Synced, "skipped", out.Skipped)
	response.JSON(w, r, http.StatusOK, out)
}
