package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/jameszjgao/vouchap-crm/internal/domain"
	repogomock "github.com/jameszjgao/vouchap-crm/internal/repository/gomock"
)

func TestRoleSyncSelf(t *testing.T) {
	ctrl := gomock.NewController(t)
	opsUsers := repogomock.NewMockOpsUserRepository(ctrl)
	users := repogomock.NewMockUserRepository(ctrl)
	svc := NewRoleSyncService(opsUsers, users)

	opsUsers.EXPECT().FindByID("ops-1").Return(&domain.OpsUser{
		ID: "ops-1", UserID: "user-1", Role: "sales",
	}, nil)
	users.EXPECT().SetCRMRole("user-1", "sales").Return(nil)

	if err := svc.SyncSelf(context.Background(), "ops-1"); err != nil {
		t.Fatalf("sync self: %v", err)
	}
}

func TestRoleSyncUserRequiresAdmin(t *testing.T) {
	ctrl := gomock.NewController(t)
	opsUsers := repogomock.NewMockOpsUserRepository(ctrl)
	users := repogomock.NewMockUserRepository(ctrl)
	svc := NewRoleSyncService(opsUsers, users)

	opsUsers.EXPECT().FindByID("ops-1").Return(&domain.OpsUser{
		ID: "ops-1", UserID: "user-1", Role: "sales",
	}, nil)

	err := svc.SyncUser(context.Background(), "ops-1", "ops-2")
	if !errors.Is(err, ErrSyncForbidden) {
		t.Fatalf("expected ErrSyncForbidden, got %v", err)
	}
}

func TestRoleSyncUserAsAdmin(t *testing.T) {
	ctrl := gomock.NewController(t)
	opsUsers := repogomock.NewMockOpsUserRepository(ctrl)
	users := repogomock.NewMockUserRepository(ctrl)
	svc := NewRoleSyncService(opsUsers, users)

	opsUsers.EXPECT().FindByID("ops-admin").Return(&domain.OpsUser{
		ID: "ops-admin", UserID: "user-admin", Role: "admin",
	}, nil)
	opsUsers.EXPECT().FindByID("ops-2").Return(&domain.OpsUser{
		ID: "ops-2", UserID: "user-2", Role: "support",
	}, nil)
	users.EXPECT().SetCRMRole("user-2", "support").Return(nil)

	if err := svc.SyncUser(context.Background(), "ops-admin", "ops-2"); err != nil {
		t.Fatalf("sync user: %v", err)
	}
}

func TestRoleSyncUserSelfTargetNeedsNoAdmin(t *testing.T) {
	ctrl := gomock.NewController(t)
	opsUsers := repogomock.NewMockOpsUserRepository(ctrl)
	users := repogomock.NewMockUserRepository(ctrl)
	svc := NewRoleSyncService(opsUsers, users)

	opsUsers.EXPECT().FindByID("ops-1").Return(&domain.OpsUser{
		ID: "ops-1", UserID: "user-1", Role: "support",
	}, nil)
	users.EXPECT().SetCRMRole("user-1", "support").Return(nil)

	if err := svc.SyncUser(context.Background(), "ops-1", "ops-1"); err != nil {
		t.Fatalf("sync own record: %v", err)
	}
}

func TestRoleSyncAllCountsSkips(t *testing.T) {
	ctrl := gomock.NewController(t)
	opsUsers := repogomock.NewMockOpsUserRepository(ctrl)
	users := repogomock.NewMockUserRepository(ctrl)
	svc := NewRoleSyncService(opsUsers, users)

	opsUsers.EXPECT().FindByID("ops-admin").Return(&domain.OpsUser{
		ID: "ops-admin", UserID: "user-admin", Role: "admin",
	}, nil)
	opsUsers.EXPECT().List().Return([]domain.OpsUser{
		{ID: "ops-admin", UserID: "user-admin", Role: "admin"},
		{ID: "ops-1", UserID: "user-1", Role: "sales"},
		{ID: "ops-2", UserID: "user-gone", Role: "support"},
	}, nil)
	users.EXPECT().SetCRMRole("user-admin", "admin").Return(nil)
	users.EXPECT().SetCRMRole("user-1", "sales").Return(nil)
	users.EXPECT().SetCRMRole("user-gone", "support").Return(errors.New("user not found"))

	out, err := svc.SyncAll(context.Background(), "ops-admin")
	if err != nil {
		t.Fatalf("sync all: %v", err)
	}
	if out.Synced != 2 || out.Skipped != 1 {
		t.Fatalf("unexpected outcome: %+v", out)
	}
}

func TestRoleSyncAllForbiddenForNonAdmin(t *testing.T) {
	ctrl := gomock.NewController(t)
	opsUsers := repogomock.NewMockOpsUserRepository(ctrl)
	users := repogomock.NewMockUserRepository(ctrl)
	svc := NewRoleSyncService(opsUsers, users)

	opsUsers.EXPECT().FindByID("ops-1").Return(&domain.OpsUser{
		ID: "ops-1", UserID: "user-1", Role: "ops",
	}, nil)

	if _, err := svc.SyncAll(context.Background(), "ops-1"); !errors.Is(err, ErrSyncForbidden) {
		t.Fatalf("expected ErrSyncForbidden, got %v", err)
	}
}
