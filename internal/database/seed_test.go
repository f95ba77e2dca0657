package database

import (
	"fmt"
	"sync/atomic"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/jameszjgao/vouchap-crm/internal/domain"
	"github.com/jameszjgao/vouchap-crm/internal/menu"
	"github.com/jameszjgao/vouchap-crm/internal/rbac"
)

var seedDBCounter atomic.Int64

func newSeedDBForTest(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:seed_test_%d?mode=memory&cache=shared", seedDBCounter.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestSeedHealsAdminPermissionRow(t *testing.T) {
	db := newSeedDBForTest(t)

	row := domain.RoleMenuPermission{Role: rbac.RoleAdmin, MenuKey: string(menu.CustomersAll)}
	if err := db.Create(&row).Error; err != nil {
		t.Fatalf("seed admin row: %v", err)
	}

	report, err := Seed(db, "")
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if !report.HealedAdminPermission {
		t.Fatalf("expected the heal to fire: %+v", report)
	}

	var n int64
	err = db.Model(&domain.RoleMenuPermission{}).
		Where("role = ? AND menu_key = ?", rbac.RoleAdmin, string(menu.RolesPermissions)).
		Count(&n).Error
	if err != nil {
		t.Fatalf("count healed row: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected exactly one healed row, got %d", n)
	}

	// A second run finds the invariant satisfied.
	report, err = Seed(db, "")
	if err != nil {
		t.Fatalf("re-seed: %v", err)
	}
	if !report.Noop {
		t.Fatalf("expected noop on the second run: %+v", report)
	}
}

func TestSeedPromotesBootstrapAdmin(t *testing.T) {
	db := newSeedDBForTest(t)

	user := domain.User{ID: "u-1", Email: "boss@example.com", Name: "Boss"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}

	report, err := Seed(db, "Boss@Example.com")
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if report.CreatedOpsUsers != 1 {
		t.Fatalf("expected 1 created ops user: %+v", report)
	}

	var ops domain.OpsUser
	if err := db.Where("email = ?", "boss@example.com").First(&ops).Error; err != nil {
		t.Fatalf("find ops user: %v", err)
	}
	if ops.Role != rbac.RoleAdmin || ops.UserID != "u-1" {
		t.Fatalf("unexpected ops user: %+v", ops)
	}

	report, err = Seed(db, "boss@example.com")
	if err != nil {
		t.Fatalf("re-seed: %v", err)
	}
	if !report.Noop {
		t.Fatalf("expected noop on the second run: %+v", report)
	}
}

func TestSeedWaitsForPlatformAccount(t *testing.T) {
	db := newSeedDBForTest(t)

	// The operator has not signed up yet; seeding succeeds and does nothing.
	report, err := Seed(db, "nobody@example.com")
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if !report.Noop {
		t.Fatalf("expected noop: %+v", report)
	}

	var n int64
	if err := db.Model(&domain.OpsUser{}).Count(&n).Error; err != nil {
		t.Fatalf("count ops users: %v", err)
	}
	if n != 0 {
		t.Fatalf("expected no ops users, got %d", n)
	}
}
