package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/jameszjgao/vouchap-crm/internal/domain"
	"github.com/jameszjgao/vouchap-crm/internal/repository"
	repogomock "github.com/jameszjgao/vouchap-crm/internal/repository/gomock"
)

func newTeamFixture(t *testing.T) (*TeamService, *repogomock.MockOpsUserRepository, *repogomock.MockUserRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	opsUsers := repogomock.NewMockOpsUserRepository(ctrl)
	users := repogomock.NewMockUserRepository(ctrl)
	svc := NewTeamService(opsUsers, users, NewRoleSyncService(opsUsers, users))
	return svc, opsUsers, users
}

func adminActor() *domain.OpsUser {
	return &domain.OpsUser{ID: "ops-admin", UserID: "user-admin", Role: "admin"}
}

func TestTeamInvite(t *testing.T) {
	svc, opsUsers, users := newTeamFixture(t)
	ctx := context.Background()

	opsUsers.EXPECT().FindByID("ops-admin").Return(adminActor(), nil)
	users.EXPECT().FindByEmail("bob@example.com").Return(&domain.User{
		ID: "user-bob", Email: "bob@example.com", Name: "Bob",
	}, nil)
	opsUsers.EXPECT().FindByUserID("user-bob").Return(nil, repository.ErrOpsUserNotFound)
	opsUsers.EXPECT().Create(gomock.Any()).Return(nil)
	users.EXPECT().SetCRMRole("user-bob", "sales").Return(nil)

	member, err := svc.Invite(ctx, "ops-admin", "bob@example.com", "Sales")
	if err != nil {
		t.Fatalf("invite: %v", err)
	}
	if member.Role != "sales" || member.UserID != "user-bob" {
		t.Fatalf("unexpected member: %+v", member)
	}
}

func TestTeamInviteRejectsNonAdmin(t *testing.T) {
	svc, opsUsers, _ := newTeamFixture(t)

	opsUsers.EXPECT().FindByID("ops-1").Return(&domain.OpsUser{ID: "ops-1", Role: "sales"}, nil)

	if _, err := svc.Invite(context.Background(), "ops-1", "x@example.com", "ops"); !errors.Is(err, ErrTeamForbidden) {
		t.Fatalf("expected ErrTeamForbidden, got %v", err)
	}
}

func TestTeamInviteNoPlatformUser(t *testing.T) {
	svc, opsUsers, users := newTeamFixture(t)

	opsUsers.EXPECT().FindByID("ops-admin").Return(adminActor(), nil)
	users.EXPECT().FindByEmail("ghost@example.com").Return(nil, repository.ErrUserNotFound)

	if _, err := svc.Invite(context.Background(), "ops-admin", "ghost@example.com", "ops"); !errors.Is(err, ErrNoPlatformUser) {
		t.Fatalf("expected ErrNoPlatformUser, got %v", err)
	}
}

func TestTeamChangeRoleMirrors(t *testing.T) {
	svc, opsUsers, users := newTeamFixture(t)
	ctx := context.Background()

	opsUsers.EXPECT().FindByID("ops-admin").Return(adminActor(), nil).Times(2)
	opsUsers.EXPECT().FindByID("ops-1").Return(&domain.OpsUser{
		ID: "ops-1", UserID: "user-1", Role: "ops",
	}, nil)
	opsUsers.EXPECT().Update("ops-1", map[string]any{"role": "support"}).Return(nil)
	opsUsers.EXPECT().FindByID("ops-1").Return(&domain.OpsUser{
		ID: "ops-1", UserID: "user-1", Role: "support",
	}, nil).Times(2)
	users.EXPECT().SetCRMRole("user-1", "support").Return(nil)

	updated, err := svc.ChangeRole(ctx, "ops-admin", "ops-1", "Support")
	if err != nil {
		t.Fatalf("change role: %v", err)
	}
	if updated.Role != "support" {
		t.Fatalf("role not updated: %+v", updated)
	}
}

func TestTeamLastAdminProtected(t *testing.T) {
	svc, opsUsers, _ := newTeamFixture(t)
	ctx := context.Background()

	opsUsers.EXPECT().FindByID("ops-admin").Return(adminActor(), nil).Times(2)
	opsUsers.EXPECT().List().Return([]domain.OpsUser{
		*adminActor(),
		{ID: "ops-1", Role: "sales"},
	}, nil)

	_, err := svc.ChangeRole(ctx, "ops-admin", "ops-admin", "sales")
	if !errors.Is(err, ErrLastAdmin) {
		t.Fatalf("expected ErrLastAdmin on demote, got %v", err)
	}

	opsUsers.EXPECT().FindByID("ops-admin").Return(adminActor(), nil).Times(2)
	opsUsers.EXPECT().List().Return([]domain.OpsUser{
		*adminActor(),
	}, nil)
	if err := svc.Remove(ctx, "ops-admin", "ops-admin"); !errors.Is(err, ErrLastAdmin) {
		t.Fatalf("expected ErrLastAdmin on remove, got %v", err)
	}
}

func TestTeamRemove(t *testing.T) {
	svc, opsUsers, users := newTeamFixture(t)
	ctx := context.Background()

	opsUsers.EXPECT().FindByID("ops-admin").Return(adminActor(), nil)
	opsUsers.EXPECT().FindByID("ops-1").Return(&domain.OpsUser{
		ID: "ops-1", UserID: "user-1", Role: "sales",
	}, nil)
	opsUsers.EXPECT().DeleteByID("ops-1").Return(nil)
	users.EXPECT().SetCRMRole("user-1", "").Return(nil)

	if err := svc.Remove(ctx, "ops-admin", "ops-1"); err != nil {
		t.Fatalf("remove: %v", err)
	}
}
