package service

import (
	"context"
	"errors"
	"time"

	"github.com/jameszjgao/vouchap-crm/internal/rbac"
	"github.com/jameszjgao/vouchap-crm/internal/repository"
	"github.com/jameszjgao/vouchap-crm/internal/security"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// Session is what a successful login returns: the signed token plus the
// identity and permission snapshot the console needs to render itself.
type Session struct {
	Token     string   `json:"token"`
	UserID    string   `json:"user_id"`
	Email     string   `json:"email"`
	Name      string   `json:"name"`
	CRMRole   string   `json:"crm_role"`
	OpsUserID string   `json:"ops_user_id,omitempty"`
	MenuKeys  []string `json:"menu_keys"`
}

// AuthService handles console sign-in. On success it mints an access
// token and establishes the session's permission context keyed by the
// token id, so the permission layer can find it on every request.
type AuthService struct {
	users    repository.UserRepository
	opsUsers repository.OpsUserRepository
	jwt      *security.JWTManager
	registry *rbac.SessionRegistry
}

func NewAuthService(
	users repository.UserRepository,
	opsUsers repository.OpsUserRepository,
	jwtManager *security.JWTManager,
	registry *rbac.SessionRegistry,
) *AuthService {
	return &AuthService{users: users, opsUsers: opsUsers, jwt: jwtManager, registry: registry}
}

// Login verifies the credentials and opens a session. Lookups that fail
// and wrong passwords return the same error so callers cannot probe for
// account existence.
func (s *AuthService) Login(ctx context.Context, email, password string) (*Session, error) {
	user, err := s.users.FindByEmail(email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	ok, err := security.VerifyPassword(user.PasswordHash, password)
	if err != nil || !ok {
		return nil, ErrInvalidCredentials
	}

	role := user.CRMRole
	var opsUserID string
	if ops, err := s.opsUsers.FindByUserID(user.ID); err == nil {
		// The ops record is authoritative; the mirrored column may lag.
		role = ops.Role
		opsUserID = ops.ID
	}

	token, err := s.jwt.Mint(user.ID, user.Email, user.Name, role)
	if err != nil {
		return nil, err
	}
	claims, err := s.jwt.Parse(token)
	if err != nil {
		return nil, err
	}

	pc := s.registry.Establish(ctx, claims.ID, role, sessionExpiry(claims))

	keys := pc.Snapshot().Sorted()
	menuKeys := make([]string, len(keys))
	for i, k := range keys {
		menuKeys[i] = string(k)
	}
	return &Session{
		Token:     token,
		UserID:    user.ID,
		Email:     user.Email,
		Name:      user.Name,
		CRMRole:   role,
		OpsUserID: opsUserID,
		MenuKeys:  menuKeys,
	}, nil
}

// Logout drops the session's permission context.
func (s *AuthService) Logout(_ context.Context, claims *security.Claims) {
	s.registry.Drop(claims.ID)
}

// Resume re-establishes a permission context for a valid token whose
// session state was lost, e.g. after a process restart.
func (s *AuthService) Resume(ctx context.Context, claims *security.Claims) *rbac.PermissionContext {
	if pc := s.registry.Lookup(claims.ID); pc != nil {
		return pc
	}
	return s.registry.Establish(ctx, claims.ID, claims.CRMRole, sessionExpiry(claims))
}

// sessionExpiry bounds the registry entry by the token lifetime, so a
// session that never logs out still gets swept.
func sessionExpiry(claims *security.Claims) time.Time {
	if claims.ExpiresAt != nil {
		return claims.ExpiresAt.Time
	}
	return time.Time{}
}
