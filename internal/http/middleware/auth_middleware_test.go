package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jameszjgao/vouchap-crm/internal/security"
)

func newTestJWTManager() *security.JWTManager {
	return security.NewJWTManager(
		"0123456789abcdef0123456789abcdef",
		"vouchap-crm-test",
		"vouchap-crm-test-api",
		time.Minute,
	)
}

func TestAuthMiddlewareMissingToken(t *testing.T) {
	mw := AuthMiddleware(newTestJWTManager())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()

	mw(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("expected middleware to block request")
	})).ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, rr.Code)
	}
}

func TestAuthMiddlewareGarbageToken(t *testing.T) {
	mw := AuthMiddleware(newTestJWTManager())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rr := httptest.NewRecorder()

	mw(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("expected middleware to block request")
	})).ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, rr.Code)
	}
}

func TestAuthMiddlewareValidTokenExposesClaims(t *testing.T) {
	mgr := newTestJWTManager()
	token, err := mgr.Mint("user-1", "op@example.com", "Op", "sales")
	if err != nil {
		t.Fatalf("mint: %v", err)
	}
	mw := AuthMiddleware(mgr)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()

	var seen *security.Claims
	mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = ClaimsFromContext(r.Context())
	})).ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
	if seen == nil || seen.CRMRole != "sales" || seen.Email != "op@example.com" {
		t.Fatalf("unexpected claims: %+v", seen)
	}
}

func TestAuthMiddlewareRejectsWrongSigningKey(t *testing.T) {
	other := security.NewJWTManager(
		"ffffffffffffffffffffffffffffffff",
		"vouchap-crm-test",
		"vouchap-crm-test-api",
		time.Minute,
	)
	token, err := other.Mint("user-1", "op@example.com", "Op", "sales")
	if err != nil {
		t.Fatalf("mint: %v", err)
	}
	mw := AuthMiddleware(newTestJWTManager())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()

	mw(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("expected middleware to block request")
	})).ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, rr.Code)
	}
}
