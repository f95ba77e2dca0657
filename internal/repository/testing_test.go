package repository

import (
	"fmt"
	"sync/atomic"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/jameszjgao/vouchap-crm/internal/domain"
)

var testDBCounter atomic.Int64

// newRepositoryDBForTest opens a fresh in-memory sqlite database with the
// full schema migrated. Each call gets its own database so tests can run
// in parallel without sharing state.
func newRepositoryDBForTest(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:repo_test_%d?mode=memory&cache=shared", testDBCounter.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	err = db.AutoMigrate(
		&domain.User{},
		&domain.UserSpace{},
		&domain.OpsUser{},
		&domain.RoleMenuPermission{},
		&domain.Space{},
		&domain.OpsAssignment{},
		&domain.SpaceFollowUp{},
		&domain.SpaceOrder{},
		&domain.SkuEdition{},
		&domain.SkuAddon{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}
