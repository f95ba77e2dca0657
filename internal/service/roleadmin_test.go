package service

import (
	"context"
	"errors"
	"path/filepath"
	"slices"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/jameszjgao/vouchap-crm/internal/domain"
	"github.com/jameszjgao/vouchap-crm/internal/menu"
	"github.com/jameszjgao/vouchap-crm/internal/prefs"
	"github.com/jameszjgao/vouchap-crm/internal/rbac"
	repogomock "github.com/jameszjgao/vouchap-crm/internal/repository/gomock"
)

func newRoleAdminForTest(t *testing.T, perms *repogomock.MockPermissionRepository) (*RoleAdminService, *rbac.LocalBroadcaster) {
	t.Helper()
	b := rbac.NewLocalBroadcaster()
	p := prefs.NewStore(filepath.Join(t.TempDir(), "prefs.json"))
	return NewRoleAdminService(perms, b, p), b
}

func TestRoleAdminToggleRefusesAdminLockout(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newRoleAdminForTest(t, repogomock.NewMockPermissionRepository(ctrl))

	draft := menu.NewSet(menu.RolesPermissions, menu.TeamMembers)
	if _, err := svc.Toggle(rbac.RoleAdmin, draft, menu.RolesPermissions); !errors.Is(err, ErrAdminLockedKey) {
		t.Fatalf("expected ErrAdminLockedKey, got %v", err)
	}

	// The same key toggles freely on every other role.
	next, err := svc.Toggle(rbac.RoleSales, draft, menu.RolesPermissions)
	if err != nil {
		t.Fatalf("toggle on sales: %v", err)
	}
	if next.Has(menu.RolesPermissions) {
		t.Fatal("key not removed from sales draft")
	}
	// And the input draft is untouched.
	if !draft.Has(menu.RolesPermissions) {
		t.Fatal("toggle mutated the input draft")
	}
}

func TestRoleAdminToggleAddsAndRemoves(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newRoleAdminForTest(t, repogomock.NewMockPermissionRepository(ctrl))

	draft := menu.NewSet(menu.CustomersMy)
	next, err := svc.Toggle(rbac.RoleSales, draft, menu.OrdersMy)
	if err != nil {
		t.Fatalf("toggle add: %v", err)
	}
	if !next.Has(menu.OrdersMy) {
		t.Fatal("key not added")
	}
	next, err = svc.Toggle(rbac.RoleSales, next, menu.OrdersMy)
	if err != nil {
		t.Fatalf("toggle remove: %v", err)
	}
	if next.Has(menu.OrdersMy) {
		t.Fatal("key not removed")
	}

	if _, err := svc.Toggle(rbac.RoleSales, draft, menu.Key("bogus")); !errors.Is(err, ErrUnknownMenuKey) {
		t.Fatalf("expected ErrUnknownMenuKey, got %v", err)
	}
}

func TestRoleAdminSaveWritesDiffAndBroadcasts(t *testing.T) {
	ctrl := gomock.NewController(t)
	perms := repogomock.NewMockPermissionRepository(ctrl)
	svc, broadcaster := newRoleAdminForTest(t, perms)
	ctx := context.Background()

	refreshed := 0
	broadcaster.Subscribe(ctx, func(context.Context) { refreshed++ })

	perms.EXPECT().MenuKeysByRole(ctx, "sales").
		Return([]string{"customers_my", "orders_my"}, nil)
	perms.EXPECT().DeleteByRoleAndKeys(ctx, "sales", []string{"orders_my"}).Return(nil)
	perms.EXPECT().Insert(ctx, "sales", []string{"team_members"}).Return(nil)

	target := menu.NewSet(menu.CustomersMy, menu.TeamMembers)
	res, err := svc.Save(ctx, "sales", target)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if res.Noop {
		t.Fatal("expected a real save, got noop")
	}
	if len(res.Added) != 1 || res.Added[0] != menu.TeamMembers {
		t.Fatalf("unexpected added: %v", res.Added)
	}
	if len(res.Removed) != 1 || res.Removed[0] != menu.OrdersMy {
		t.Fatalf("unexpected removed: %v", res.Removed)
	}
	if refreshed != 1 {
		t.Fatalf("expected 1 refresh broadcast, got %d", refreshed)
	}
}

func TestRoleAdminSaveNoopSkipsWritesAndBroadcast(t *testing.T) {
	ctrl := gomock.NewController(t)
	perms := repogomock.NewMockPermissionRepository(ctrl)
	svc, broadcaster := newRoleAdminForTest(t, perms)
	ctx := context.Background()

	refreshed := 0
	broadcaster.Subscribe(ctx, func(context.Context) { refreshed++ })

	perms.EXPECT().MenuKeysByRole(ctx, "sales").
		Return([]string{"customers_my"}, nil)

	res, err := svc.Save(ctx, "sales", menu.NewSet(menu.CustomersMy))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if !res.Noop {
		t.Fatal("expected noop")
	}
	if refreshed != 0 {
		t.Fatalf("noop save broadcast %d times", refreshed)
	}
}

func TestRoleAdminSaveEmptyStoreInsertsOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	perms := repogomock.NewMockPermissionRepository(ctrl)
	svc, broadcaster := newRoleAdminForTest(t, perms)
	ctx := context.Background()

	refreshed := 0
	broadcaster.Subscribe(ctx, func(context.Context) { refreshed++ })

	// A role with no stored rows saves as pure inserts; keys shown by the
	// default policy but toggled off never turn into deletes.
	perms.EXPECT().MenuKeysByRole(ctx, "sales").Return(nil, nil)
	perms.EXPECT().Insert(ctx, "sales", []string{"customers_my", "orders_my"}).Return(nil)

	res, err := svc.Save(ctx, "sales", menu.NewSet(menu.CustomersMy, menu.OrdersMy))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if res.Noop {
		t.Fatal("expected a real save, got noop")
	}
	if len(res.Added) != 2 {
		t.Fatalf("unexpected added: %v", res.Added)
	}
	if len(res.Removed) != 0 {
		t.Fatalf("save against an empty store must not delete: %v", res.Removed)
	}
	if refreshed != 1 {
		t.Fatalf("expected 1 refresh broadcast, got %d", refreshed)
	}
}

func TestRoleAdminSaveAbortsOnDeleteFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	perms := repogomock.NewMockPermissionRepository(ctrl)
	svc, broadcaster := newRoleAdminForTest(t, perms)
	ctx := context.Background()

	refreshed := 0
	broadcaster.Subscribe(ctx, func(context.Context) { refreshed++ })

	perms.EXPECT().MenuKeysByRole(ctx, "sales").
		Return([]string{"customers_my", "orders_my"}, nil)
	perms.EXPECT().DeleteByRoleAndKeys(ctx, "sales", []string{"orders_my"}).
		Return(errors.New("connection reset"))
	// No Insert call expected: the save aborts on the first failure.

	_, err := svc.Save(ctx, "sales", menu.NewSet(menu.CustomersMy, menu.TeamMembers))
	if err == nil {
		t.Fatal("expected save to fail")
	}
	if refreshed != 0 {
		t.Fatal("failed save must not broadcast")
	}
}

func TestRoleAdminSaveRejectsAdminWithoutRolesKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	perms := repogomock.NewMockPermissionRepository(ctrl)
	svc, _ := newRoleAdminForTest(t, perms)

	target := menu.FullSet()
	target.Remove(menu.RolesPermissions)
	if _, err := svc.Save(context.Background(), rbac.RoleAdmin, target); !errors.Is(err, ErrAdminLockedKey) {
		t.Fatalf("expected ErrAdminLockedKey, got %v", err)
	}
}

func TestRoleAdminSaveRejectsUnknownKeys(t *testing.T) {
	ctrl := gomock.NewController(t)
	perms := repogomock.NewMockPermissionRepository(ctrl)
	svc, _ := newRoleAdminForTest(t, perms)

	target := menu.Set{"made_up_key": {}}
	if _, err := svc.Save(context.Background(), "sales", target); !errors.Is(err, ErrUnknownMenuKey) {
		t.Fatalf("expected ErrUnknownMenuKey, got %v", err)
	}
}

func TestRoleAdminAddRoleNormalizedAndIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	perms := repogomock.NewMockPermissionRepository(ctrl)
	svc, _ := newRoleAdminForTest(t, perms)
	ctx := context.Background()

	// AddRole touches only local display state, never the store.
	perms.EXPECT().ListAll(ctx).Return(nil, nil).Times(2)

	role, err := svc.AddRole(ctx, "  Account   Manager ", "Account Manager")
	if err != nil {
		t.Fatalf("add role: %v", err)
	}
	if role != "account_manager" {
		t.Fatalf("expected normalized code, got %q", role)
	}

	p := svc.prefs.Snapshot()
	if !slices.Contains(p.RoleOrder, "account_manager") {
		t.Fatalf("role missing from display order: %v", p.RoleOrder)
	}
	if p.RoleLabels["account_manager"] != "Account Manager" {
		t.Fatalf("label not recorded: %v", p.RoleLabels)
	}

	role, err = svc.AddRole(ctx, "account_manager", "")
	if err != nil {
		t.Fatalf("re-add role: %v", err)
	}
	if role != "account_manager" {
		t.Fatalf("unexpected role on re-add: %q", role)
	}
	if got := svc.prefs.Snapshot().RoleOrder; !slices.Equal(got, p.RoleOrder) {
		t.Fatalf("re-add changed the order: %v", got)
	}

	if _, err := svc.AddRole(ctx, "   ", ""); !errors.Is(err, ErrEmptyRoleCode) {
		t.Fatalf("expected ErrEmptyRoleCode, got %v", err)
	}
}

func TestRoleAdminMoveRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	perms := repogomock.NewMockPermissionRepository(ctrl)
	svc, _ := newRoleAdminForTest(t, perms)
	ctx := context.Background()

	perms.EXPECT().ListAll(ctx).Return(nil, nil).AnyTimes()

	// Built-in order is admin, ops, sales, support.
	order, err := svc.MoveRole(ctx, rbac.RoleSales, -1)
	if err != nil {
		t.Fatalf("move up: %v", err)
	}
	if !slices.Equal(order, []string{"admin", "sales", "ops", "support"}) {
		t.Fatalf("unexpected order: %v", order)
	}

	// Moves past either end leave the order alone.
	order, err = svc.MoveRole(ctx, rbac.RoleAdmin, -1)
	if err != nil {
		t.Fatalf("move past top: %v", err)
	}
	if !slices.Equal(order, []string{"admin", "sales", "ops", "support"}) {
		t.Fatalf("top no-op changed order: %v", order)
	}
	order, err = svc.MoveRole(ctx, "support", 1)
	if err != nil {
		t.Fatalf("move past bottom: %v", err)
	}
	if !slices.Equal(order, []string{"admin", "sales", "ops", "support"}) {
		t.Fatalf("bottom no-op changed order: %v", order)
	}
	if _, err := svc.MoveRole(ctx, "ghost", 1); !errors.Is(err, ErrUnknownRole) {
		t.Fatalf("expected ErrUnknownRole, got %v", err)
	}
	if _, err := svc.MoveRole(ctx, "sales", 3); !errors.Is(err, ErrBadMove) {
		t.Fatalf("expected ErrBadMove for wild delta, got %v", err)
	}
}

func TestRoleAdminLoadAllDefaultsForUnstoredRoles(t *testing.T) {
	ctrl := gomock.NewController(t)
	perms := repogomock.NewMockPermissionRepository(ctrl)
	svc, _ := newRoleAdminForTest(t, perms)
	ctx := context.Background()

	perms.EXPECT().ListAll(ctx).Return([]domain.RoleMenuPermission{
		{Role: "sales", MenuKey: "customers_my"},
		{Role: "sales", MenuKey: "not_in_catalog"},
	}, nil)

	rows, err := svc.LoadAll(ctx)
	if err != nil {
		t.Fatalf("load all: %v", err)
	}

	byRole := make(map[string]RolePermissions)
	for _, r := range rows {
		byRole[r.Role] = r
	}

	sales, ok := byRole["sales"]
	if !ok {
		t.Fatal("sales missing from matrix")
	}
	if !sales.Stored || len(sales.Keys) != 1 || sales.Keys[0] != menu.CustomersMy {
		t.Fatalf("unexpected sales row: %+v", sales)
	}

	admin := byRole["admin"]
	if admin.Stored {
		t.Fatal("admin should fall back to defaults")
	}
	if len(admin.Keys) != len(menu.AllKeys()) {
		t.Fatalf("admin default should be the full catalog, got %v", admin.Keys)
	}

	ops := byRole["ops"]
	if len(ops.Keys) != 6 {
		t.Fatalf("ops default should have 6 keys, got %v", ops.Keys)
	}
}

func TestRoleAdminLoadAllHealsAdminRow(t *testing.T) {
	ctrl := gomock.NewController(t)
	perms := repogomock.NewMockPermissionRepository(ctrl)
	svc, _ := newRoleAdminForTest(t, perms)
	ctx := context.Background()

	// Stored admin rows without the edit-roles grant would lock every
	// administrator out of the screen.
	perms.EXPECT().ListAll(ctx).Return([]domain.RoleMenuPermission{
		{Role: "admin", MenuKey: "customers_all"},
		{Role: "admin", MenuKey: "team_members"},
	}, nil)

	rows, err := svc.LoadAll(ctx)
	if err != nil {
		t.Fatalf("load all: %v", err)
	}
	for _, row := range rows {
		if row.Role != rbac.RoleAdmin {
			continue
		}
		if !slices.Contains(row.Keys, menu.RolesPermissions) {
			t.Fatalf("admin row not healed: %v", row.Keys)
		}
		return
	}
	t.Fatal("admin missing from matrix")
}
