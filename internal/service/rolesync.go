package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jameszjgao/vouchap-crm/internal/observability"
	"github.com/jameszjgao/vouchap-crm/internal/rbac"
	"github.com/jameszjgao/vouchap-crm/internal/repository"
)

var ErrSyncForbidden = errors.New("only admins may sync other users")

// SyncOutcome reports what a sync pass did.
type SyncOutcome struct {
	Synced  int `json:"synced"`
	Skipped int `json:"skipped"`
}

// RoleSyncService mirrors each operator's ops role into the platform user
// record, where it is minted into access token claims. A role change only
// reaches a token once the user signs in again, so syncing eagerly keeps
// that window small.
type RoleSyncService struct {
	opsUsers repository.OpsUserRepository
	users    repository.UserRepository
}

func NewRoleSyncService(opsUsers repository.OpsUserRepository, users repository.UserRepository) *RoleSyncService {
	return &RoleSyncService{opsUsers: opsUsers, users: users}
}

// SyncSelf mirrors the caller's own role. Any operator may do this.
func (s *RoleSyncService) SyncSelf(ctx context.Context, actorOpsUserID string) error {
	actor, err := s.opsUsers.FindByID(actorOpsUserID)
	if err != nil {
		observability.RecordRoleSync(ctx, "self", "error")
		return err
	}
	if err := s.mirror(ctx, actor.UserID, actor.Role); err != nil {
		observability.RecordRoleSync(ctx, "self", "error")
		return err
	}
	observability.RecordRoleSync(ctx, "self", "ok")
	return nil
}

// SyncUser mirrors another operator's role. Admin only.
func (s *RoleSyncService) SyncUser(ctx context.Context, actorOpsUserID, targetOpsUserID string) error {
	if actorOpsUserID == targetOpsUserID {
		return s.SyncSelf(ctx, actorOpsUserID)
	}
	if err := s.requireAdmin(actorOpsUserID); err != nil {
		observability.RecordRoleSync(ctx, "other", "forbidden")
		return err
	}
	target, err := s.opsUsers.FindByID(targetOpsUserID)
	if err != nil {
		observability.RecordRoleSync(ctx, "other", "error")
		return err
	}
	if err := s.mirror(ctx, target.UserID, target.Role); err != nil {
		observability.RecordRoleSync(ctx, "other", "error")
		return err
	}
	observability.RecordRoleSync(ctx, "other", "ok")
	return nil
}

// SyncAll mirrors every operator's role. Admin only. Individual failures
// are counted and logged but do not stop the pass.
func (s *RoleSyncService) SyncAll(ctx context.Context, actorOpsUserID string) (*SyncOutcome, error) {
	if err := s.requireAdmin(actorOpsUserID); err != nil {
		observability.RecordRoleSync(ctx, "all", "forbidden")
		return nil, err
	}
	all, err := s.opsUsers.List()
	if err != nil {
		observability.RecordRoleSync(ctx, "all", "error")
		return nil, fmt.Errorf("list operators: %w", err)
	}

	out := &SyncOutcome{}
	for _, u := range all {
		if err := s.mirror(ctx, u.UserID, u.Role); err != nil {
			slog.WarnContext(ctx, "role sync skipped", "ops_user", u.ID, "error", err)
			out.Skipped++
			continue
		}
		out.Synced++
	}
	observability.RecordRoleSync(ctx, "all", "ok")
	slog.InfoContext(ctx, "role sync pass complete", "synced", out.Synced, "skipped", out.Skipped)
	return out, nil
}

func (s *RoleSyncService) requireAdmin(actorOpsUserID string) error {
	actor, err := s.opsUsers.FindByID(actorOpsUserID)
	if err != nil {
		return err
	}
	if actor.Role != rbac.RoleAdmin {
		return ErrSyncForbidden
	}
	return nil
}

func (s *RoleSyncService) mirror(_ context.Context, userID, role string) error {
	return s.users.SetCRMRole(userID, role)
}
