package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jameszjgao/vouchap-crm/internal/menu"
	"github.com/jameszjgao/vouchap-crm/internal/rbac"
	"github.com/jameszjgao/vouchap-crm/internal/security"
)

type staticSessions struct {
	pc *rbac.PermissionContext
}

func (s staticSessions) Resume(context.Context, *security.Claims) *rbac.PermissionContext {
	return s.pc
}

func contextWithClaims(r *http.Request) *http.Request {
	claims := &security.Claims{CRMRole: "sales"}
	return r.WithContext(context.WithValue(r.Context(), ClaimsContextKey, claims))
}

func TestRequireMenuKeyNoClaims(t *testing.T) {
	pc := rbac.NewPermissionContext()
	pc.Replace(menu.FullSet())
	mw := RequireMenuKey(staticSessions{pc: pc}, menu.OrdersAll)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()

	mw(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("expected middleware to block request")
	})).ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, rr.Code)
	}
}

func TestRequireMenuKeyDenied(t *testing.T) {
	pc := rbac.NewPermissionContext()
	pc.Replace(menu.NewSet(menu.OrdersMy))
	mw := RequireMenuKey(staticSessions{pc: pc}, menu.OrdersAll)

	req := contextWithClaims(httptest.NewRequest(http.MethodGet, "/", nil))
	rr := httptest.NewRecorder()

	mw(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("expected middleware to block request")
	})).ServeHTTP(rr, req)

	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected status %d, got %d", http.StatusForbidden, rr.Code)
	}
}

func TestRequireMenuKeyNilSessionDenies(t *testing.T) {
	mw := RequireMenuKey(staticSessions{pc: nil}, menu.OrdersAll)

	req := contextWithClaims(httptest.NewRequest(http.MethodGet, "/", nil))
	rr := httptest.NewRecorder()

	mw(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("expected middleware to block request")
	})).ServeHTTP(rr, req)

	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected status %d, got %d", http.StatusForbidden, rr.Code)
	}
}

func TestRequireMenuKeyAllowed(t *testing.T) {
	pc := rbac.NewPermissionContext()
	pc.Replace(menu.NewSet(menu.OrdersAll))
	mw := RequireMenuKey(staticSessions{pc: pc}, menu.OrdersAll)

	req := contextWithClaims(httptest.NewRequest(http.MethodGet, "/", nil))
	rr := httptest.NewRecorder()

	called := false
	mw(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		called = true
	})).ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
	if !called {
		t.Fatal("expected wrapped handler to be called")
	}
}
