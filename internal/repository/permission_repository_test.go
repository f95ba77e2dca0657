package repository

import (
	"context"
	"sort"
	"testing"
)

func TestPermissionRepositoryMenuKeysByRole(t *testing.T) {
	db := newRepositoryDBForTest(t)
	repo := NewPermissionRepository(db)
	ctx := context.Background()

	if err := repo.Insert(ctx, "sales", []string{"customers_my", "orders_my"}); err != nil {
		t.Fatalf("insert sales: %v", err)
	}
	if err := repo.Insert(ctx, "support", []string{"team_members"}); err != nil {
		t.Fatalf("insert support: %v", err)
	}

	keys, err := repo.MenuKeysByRole(ctx, "sales")
	if err != nil {
		t.Fatalf("menu keys by role: %v", err)
	}
	sort.Strings(keys)
	if len(keys) != 2 || keys[0] != "customers_my" || keys[1] != "orders_my" {
		t.Fatalf("unexpected keys for sales: %v", keys)
	}

	keys, err = repo.MenuKeysByRole(ctx, "unknown")
	if err != nil {
		t.Fatalf("menu keys for unknown role: %v", err)
	}
	if len(keys) != 0 {
		t.Fatalf("expected no keys for unknown role, got %v", keys)
	}
}

func TestPermissionRepositoryDeleteByRoleAndKeys(t *testing.T) {
	db := newRepositoryDBForTest(t)
	repo := NewPermissionRepository(db)
	ctx := context.Background()

	if err := repo.Insert(ctx, "ops", []string{"overview_my", "customers_my", "orders_my"}); err != nil {
		t.Fatalf("insert ops: %v", err)
	}
	if err := repo.Insert(ctx, "sales", []string{"customers_my"}); err != nil {
		t.Fatalf("insert sales: %v", err)
	}

	err := repo.DeleteByRoleAndKeys(ctx, "ops", []string{"customers_my", "orders_my"})
	if err != nil {
		t.Fatalf("delete: %v", err)
	}

	keys, err := repo.MenuKeysByRole(ctx, "ops")
	if err != nil {
		t.Fatalf("menu keys: %v", err)
	}
	if len(keys) != 1 || keys[0] != "overview_my" {
		t.Fatalf("unexpected keys after delete: %v", keys)
	}

	// Other roles are untouched.
	keys, err = repo.MenuKeysByRole(ctx, "sales")
	if err != nil {
		t.Fatalf("menu keys for sales: %v", err)
	}
	if len(keys) != 1 {
		t.Fatalf("sales keys affected by ops delete: %v", keys)
	}
}

func TestPermissionRepositoryListAll(t *testing.T) {
	db := newRepositoryDBForTest(t)
	repo := NewPermissionRepository(db)
	ctx := context.Background()

	if err := repo.Insert(ctx, "admin", []string{"roles_permissions"}); err != nil {
		t.Fatalf("insert admin: %v", err)
	}
	if err := repo.Insert(ctx, "sales", []string{"customers_my"}); err != nil {
		t.Fatalf("insert sales: %v", err)
	}

	all, err := repo.ListAll(ctx)
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(all))
	}
	if all[0].Role != "admin" || all[0].MenuKey != "roles_permissions" {
		t.Fatalf("unexpected first row: %+v", all[0])
	}
}

func TestPermissionRepositoryInsertEmptyIsNoop(t *testing.T) {
	db := newRepositoryDBForTest(t)
	repo := NewPermissionRepository(db)
	ctx := context.Background()

	if err := repo.Insert(ctx, "ops", nil); err != nil {
		t.Fatalf("insert empty: %v", err)
	}
	if err := repo.DeleteByRoleAndKeys(ctx, "ops", nil); err != nil {
		t.Fatalf("delete empty: %v", err)
	}

	all, err := repo.ListAll(ctx)
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 0 {
		t.Fatalf("expected empty table, got %d rows", len(all))
	}
}
