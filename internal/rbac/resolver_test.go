package rbac

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/jameszjgao/vouchap-crm/internal/menu"
	repogomock "github.com/jameszjgao/vouchap-crm/internal/repository/gomock"
)

func TestResolveEffectiveUsesStoredRows(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := repogomock.NewMockPermissionRepository(ctrl)
	r := NewResolver(store)

	store.EXPECT().MenuKeysByRole(gomock.Any(), "sales").
		Return([]string{"customers_my", "orders_my"}, nil)

	set := r.ResolveEffective(context.Background(), "sales")
	if !set.Equal(menu.NewSet(menu.CustomersMy, menu.OrdersMy)) {
		t.Fatalf("unexpected set: %v", set.Sorted())
	}
}

func TestResolveEffectiveFallsBackOnStoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := repogomock.NewMockPermissionRepository(ctrl)
	r := NewResolver(store)

	store.EXPECT().MenuKeysByRole(gomock.Any(), "sales").
		Return(nil, errors.New("connection refused"))

	// Never an error: the default policy covers the outage.
	set := r.ResolveEffective(context.Background(), "sales")
	if !set.Equal(DefaultPermissions("sales")) {
		t.Fatalf("expected default policy, got %v", set.Sorted())
	}
}

func TestResolveEffectiveDefaultsWhenStoreEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := repogomock.NewMockPermissionRepository(ctrl)
	r := NewResolver(store)

	store.EXPECT().MenuKeysByRole(gomock.Any(), "admin").Return(nil, nil)

	set := r.ResolveEffective(context.Background(), "admin")
	if !set.Equal(menu.FullSet()) {
		t.Fatalf("admin default should be the full catalog, got %v", set.Sorted())
	}
}

func TestResolveEffectiveDropsUnknownKeys(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := repogomock.NewMockPermissionRepository(ctrl)
	r := NewResolver(store)

	store.EXPECT().MenuKeysByRole(gomock.Any(), "sales").
		Return([]string{"customers_my", "legacy_reports", "dashboard_v1"}, nil)

	set := r.ResolveEffective(context.Background(), "sales")
	if !set.Equal(menu.NewSet(menu.CustomersMy)) {
		t.Fatalf("unknown keys should be dropped, got %v", set.Sorted())
	}
}

func TestResolveEffectiveAllUnknownKeysMeansDefault(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := repogomock.NewMockPermissionRepository(ctrl)
	r := NewResolver(store)

	store.EXPECT().MenuKeysByRole(gomock.Any(), "sales").
		Return([]string{"legacy_reports"}, nil)

	set := r.ResolveEffective(context.Background(), "sales")
	if !set.Equal(DefaultPermissions("sales")) {
		t.Fatalf("expected default policy, got %v", set.Sorted())
	}
}

func TestDefaultPermissions(t *testing.T) {
	admin := DefaultPermissions(RoleAdmin)
	if !admin.Equal(menu.FullSet()) {
		t.Fatalf("admin default should cover the catalog, got %v", admin.Sorted())
	}

	for _, role := range []string{RoleOps, RoleSales, RoleSupport, "brand_new_role"} {
		set := DefaultPermissions(role)
		want := menu.NewSet(menu.OverviewMy, menu.CustomersMy, menu.OrdersMy,
			menu.SkuEdition, menu.SkuAddon, menu.TeamMembers)
		if !set.Equal(want) {
			t.Fatalf("role %s: unexpected default %v", role, set.Sorted())
		}
		if set.Has(menu.RolesPermissions) || set.Has(menu.CustomersAll) {
			t.Fatalf("role %s: default must not include admin-only views", role)
		}
	}
}

func TestNormalizeRole(t *testing.T) {
	cases := map[string]string{
		"  Account   Manager ": "account_manager",
		"SALES":                "sales",
		"ops":                  "ops",
		"   ":                  "",
		"a b\tc":               "a_b_c",
	}
	for in, want := range cases {
		if got := NormalizeRole(in); got != want {
			t.Fatalf("NormalizeRole(%q) = %q, want %q", in, got, want)
		}
	}
}
