package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jameszjgao/vouchap-crm/internal/http/middleware"
	"github.com/jameszjgao/vouchap-crm/internal/http/response"
	"github.com/jameszjgao/vouchap-crm/internal/observability"
	"github.com/jameszjgao/vouchap-crm/internal/service"
)

type AuthHandler struct {
	svc *service.AuthService
}

func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid payload", nil)
		return
	}
	if body.Email == "" || body.Password == "" {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "email and password are required", nil)
		return
	}

	sess, err := h.svc.Login(r.Context(), body.Email, body.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			observability.Audit(r, "auth.login.denied", "email", body.Email)
			response.Error(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "invalid credentials", nil)
			return
		}
		response.Error(w, r, http.StatusInternalServerError, "INTERNAL", "login failed", nil)
		return
	}

	observability.Audit(r, "auth.login", "user_id", sess.UserID, "crm_role", sess.CRMRole)
	response.JSON(w, r, http.StatusOK, sess)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		response.Error(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "missing auth context", nil)
		return
	}
	h.svc.Logout(r.Context(), claims)
	observability.Audit(r, "auth.logout", "user_id", claims.Subject)
	response.JSON(w, r, http.StatusOK, map[string]string{"status": "signed_out"})
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		response.Error(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "missing auth context", nil)
		return
	}
	pc := h.svc.Resume(r.Context(), claims)
	keys := pc.Snapshot().Sorted()
	menuKeys := make([]string, len(keys))
	for i, k := range keys {
		menuKeys[i] = string(k)
	}
	response.JSON(w, r, http.StatusOK, map[string]any{
		"user_id":   claims.Subject,
		"email":     claims.Email,
		"name":      claims.Name,
		"crm_role":  claims.CRMRole,
		"menu_keys": menuKeys,
	})
}
