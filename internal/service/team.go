package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/jameszjgao/vouchap-crm/internal/domain"
	"github.com/jameszjgao/vouchap-crm/internal/rbac"
	"github.com/jameszjgao/vouchap-crm/internal/repository"
)

var (
	ErrTeamForbidden  = errors.New("only admins may manage the team")
	ErrLastAdmin      = errors.New("cannot demote or remove the last admin")
	ErrAlreadyMember  = errors.New("user is already a team member")
	ErrNoPlatformUser = errors.New("no platform account for that email")
)

// TeamService manages the operator roster. Role changes are mirrored into
// the platform user record so freshly minted tokens carry the new role.
type TeamService struct {
	opsUsers repository.OpsUserRepository
	users    repository.UserRepository
	sync     *RoleSyncService
}

func NewTeamService(
	opsUsers repository.OpsUserRepository,
	users repository.UserRepository,
	sync *RoleSyncService,
) *TeamService {
	return &TeamService{opsUsers: opsUsers, users: users, sync: sync}
}

func (s *TeamService) List(_ context.Context) ([]domain.OpsUser, error) {
	return s.opsUsers.List()
}

// Invite promotes an existing platform user to the operator roster.
// Admin only.
func (s *TeamService) Invite(ctx context.Context, actorID, email, role string) (*domain.OpsUser, error) {
	if err := s.requireAdmin(actorID); err != nil {
		return nil, err
	}
	role = rbac.NormalizeRole(role)
	if role == "" {
		role = rbac.RoleOps
	}

	user, err := s.users.FindByEmail(email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrNoPlatformUser
		}
		return nil, err
	}
	if _, err := s.opsUsers.FindByUserID(user.ID); err == nil {
		return nil, ErrAlreadyMember
	} else if !errors.Is(err, repository.ErrOpsUserNotFound) {
		return nil, err
	}

	member := &domain.OpsUser{
		ID:     uuid.NewString(),
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
		Role:   role,
	}
	if err := s.opsUsers.Create(member); err != nil {
		return nil, err
	}
	if err := s.users.SetCRMRole(user.ID, role); err != nil {
		slog.WarnContext(ctx, "role mirror failed after invite", "user", user.ID, "error", err)
	}
	slog.InfoContext(ctx, "team member invited", "ops_user", member.ID, "role", role)
	return member, nil
}

// ChangeRole updates a member's role and mirrors it. Admin only. The new
// role reaches the member's token on their next sign-in; their live
// session keeps its current permission set until the refresh signal or
// re-login, which is why callers pair this with a permissions save when
// the role is new.
func (s *TeamService) ChangeRole(ctx context.Context, actorID, targetID, newRole string) (*domain.OpsUser, error) {
	if err := s.requireAdmin(actorID); err != nil {
		return nil, err
	}
	newRole = rbac.NormalizeRole(newRole)
	if newRole == "" {
		return nil, fmt.Errorf("%w: empty role", ErrUnknownRole)
	}

	target, err := s.opsUsers.FindByID(targetID)
	if err != nil {
		return nil, err
	}
	if target.Role == rbac.RoleAdmin && newRole != rbac.RoleAdmin {
		if err := s.ensureAnotherAdmin(targetID); err != nil {
			return nil, err
		}
	}

	if err := s.opsUsers.Update(targetID, map[string]any{"role": newRole}); err != nil {
		return nil, err
	}
	if err := s.sync.SyncUser(ctx, actorID, targetID); err != nil {
		slog.WarnContext(ctx, "role mirror failed after change", "ops_user", targetID, "error", err)
	}
	return s.opsUsers.FindByID(targetID)
}

// Remove takes a member off the roster. Admin only; the last admin stays.
func (s *TeamService) Remove(ctx context.Context, actorID, targetID string) error {
	if err := s.requireAdmin(actorID); err != nil {
		return err
	}
	target, err := s.opsUsers.FindByID(targetID)
	if err != nil {
		return err
	}
	if target.Role == rbac.RoleAdmin {
		if err := s.ensureAnotherAdmin(targetID); err != nil {
			return err
		}
	}
	if err := s.opsUsers.DeleteByID(targetID); err != nil {
		return err
	}
	if err := s.users.SetCRMRole(target.UserID, ""); err != nil {
		slog.WarnContext(ctx, "role mirror clear failed", "user", target.UserID, "error", err)
	}
	slog.InfoContext(ctx, "team member removed", "ops_user", targetID)
	return nil
}

func (s *TeamService) requireAdmin(actorID string) error {
	actor, err := s.opsUsers.FindByID(actorID)
	if err != nil {
		return err
	}
	if actor.Role != rbac.RoleAdmin {
		return ErrTeamForbidden
	}
	return nil
}

func (s *TeamService) ensureAnotherAdmin(excludeID string) error {
	all, err := s.opsUsers.List()
	if err != nil {
		return err
	}
	for _, u := range all {
		if u.ID != excludeID && u.Role == rbac.RoleAdmin {
			return nil
		}
	}
	return ErrLastAdmin
}
