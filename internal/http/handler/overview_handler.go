package handler

import (
	"net/http"

	"github.com/jameszjgao/vouchap-crm/internal/http/response"
	"github.com/jameszjgao/vouchap-crm/internal/repository"
	"github.com/jameszjgao/vouchap-crm/internal/service"
)

type OverviewHandler struct {
	svc      *service.OverviewService
	opsUsers repository.OpsUserRepository
}

func NewOverviewHandler(svc *service.OverviewService, opsUsers repository.OpsUserRepository) *OverviewHandler {
	return &OverviewHandler{svc: svc, opsUsers: opsUsers}
}

func (h *OverviewHandler) Panorama(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, r, http.StatusOK, h.svc.Panorama(r.Context()))
}

func (h *OverviewHandler) Mine(w http.ResponseWriter, r *http.Request) {
	actor := actorOpsUser(w, r, h.opsUsers)
	if actor == nil {
		return
	}
	stats, err := h.svc.Mine(r.Context(), actor.ID)
	if err != nil {
		response.Error(w, r, http.StatusInternalServerError, "INTERNAL", "failed to load overview", nil)
		return
	}
	response.JSON(w, r, http.StatusOK, stats)
}
