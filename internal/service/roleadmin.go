package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/jameszjgao/vouchap-crm/internal/menu"
	"github.com/jameszjgao/vouchap-crm/internal/observability"
	"github.com/jameszjgao/vouchap-crm/internal/prefs"
	"github.com/jameszjgao/vouchap-crm/internal/rbac"
	"github.com/jameszjgao/vouchap-crm/internal/repository"
)

var (
	// ErrAdminLockedKey guards the self-lockout invariant: the admin role
	// can never lose access to the role administration screen.
	ErrAdminLockedKey = errors.New("admin role cannot drop roles_permissions")
	ErrUnknownMenuKey = errors.New("unknown menu key")
	ErrEmptyRoleCode  = errors.New("role code is empty")
	ErrUnknownRole    = errors.New("unknown role")
	ErrBadMove        = errors.New("move out of range")
)

// RolePermissions is one row of the admin matrix: a role, its display
// label, and the permission set being edited.
type RolePermissions struct {
	Role   string     `json:"role"`
	Label  string     `json:"label"`
	Keys   []menu.Key `json:"keys"`
	Stored bool       `json:"stored"`
}

// SaveResult reports what a save actually changed in the store.
type SaveResult struct {
	Role    string     `json:"role"`
	Added   []menu.Key `json:"added"`
	Removed []menu.Key `json:"removed"`
	Noop    bool       `json:"noop"`
}

// RoleAdminService backs the roles & permissions screen. Saves write the
// diff against the store, then broadcast the refresh signal so every live
// session re-resolves.
type RoleAdminService struct {
	perms       repository.PermissionRepository
	broadcaster rbac.Broadcaster
	prefs       *prefs.Store
}

func NewRoleAdminService(
	perms repository.PermissionRepository,
	broadcaster rbac.Broadcaster,
	prefsStore *prefs.Store,
) *RoleAdminService {
	return &RoleAdminService{
		perms:       perms,
		broadcaster: broadcaster,
		prefs:       prefsStore,
	}
}

// LoadAll returns the editable matrix for every known role: the built-in
// roles, any role with stored rows, and any role the operator added. Roles
// without stored rows show their default policy so the operator edits from
// the effective baseline rather than an empty grid.
func (s *RoleAdminService) LoadAll(ctx context.Context) ([]RolePermissions, error) {
	rows, err := s.perms.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load role permissions: %w", err)
	}

	stored := make(map[string]menu.Set)
	for _, row := range rows {
		key := menu.Key(row.MenuKey)
		if !menu.IsValid(key) {
			continue
		}
		if stored[row.Role] == nil {
			stored[row.Role] = menu.Set{}
		}
		stored[row.Role].Add(key)
	}
	// Self-heal: a stored admin row set missing the edit-roles grant would
	// lock administrators out of this screen.
	if set, ok := stored[rbac.RoleAdmin]; ok && !set.Has(menu.RolesPermissions) {
		set.Add(menu.RolesPermissions)
	}

	p := s.prefs.Snapshot()
	order := s.roleOrder(stored, p.RoleOrder)

	out := make([]RolePermissions, 0, len(order))
	for _, role := range order {
		set, ok := stored[role]
		if !ok {
			set = rbac.DefaultPermissions(role)
		}
		label := p.RoleLabels[role]
		if label == "" {
			label = role
		}
		out = append(out, RolePermissions{
			Role:   role,
			Label:  label,
			Keys:   set.Sorted(),
			Stored: ok,
		})
	}
	return out, nil
}

// Toggle flips one key in a draft set and returns the updated draft. The
// admin role's roles_permissions key cannot be switched off.
func (s *RoleAdminService) Toggle(role string, draft menu.Set, key menu.Key) (menu.Set, error) {
	if !menu.IsValid(key) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownMenuKey, key)
	}
	next := draft.Clone()
	if next.Has(key) {
		if role == rbac.RoleAdmin && key == menu.RolesPermissions {
			return nil, ErrAdminLockedKey
		}
		next.Remove(key)
	} else {
		next.Add(key)
	}
	return next, nil
}

// Save persists the target set for a role. The current store state is
// re-read and diffed so only actual changes are written; deletes run
// before inserts, and any failure aborts without broadcasting. On success
// the refresh signal is published and live sessions re-resolve.
func (s *RoleAdminService) Save(ctx context.Context, role string, target menu.Set) (*SaveResult, error) {
	for k := range target {
		if !menu.IsValid(k) {
			observability.RecordAdminMutation(ctx, "save", "rejected")
			return nil, fmt.Errorf("%w: %s", ErrUnknownMenuKey, k)
		}
	}
	if role == rbac.RoleAdmin && !target.Has(menu.RolesPermissions) {
		observability.RecordAdminMutation(ctx, "save", "rejected")
		return nil, ErrAdminLockedKey
	}

	currentKeys, err := s.perms.MenuKeysByRole(ctx, role)
	if err != nil {
		observability.RecordAdminMutation(ctx, "save", "error")
		return nil, fmt.Errorf("read current permissions: %w", err)
	}
	current := menu.Set{}
	for _, k := range currentKeys {
		if key := menu.Key(k); menu.IsValid(key) {
			current.Add(key)
		}
	}

	toAdd, toRemove := current.Diff(target)
	if len(toAdd) == 0 && len(toRemove) == 0 {
		return &SaveResult{Role: role, Noop: true}, nil
	}

	if len(toRemove) > 0 {
		if err := s.perms.DeleteByRoleAndKeys(ctx, role, keysToStrings(toRemove)); err != nil {
			observability.RecordAdminMutation(ctx, "save", "error")
			return nil, fmt.Errorf("delete permissions: %w", err)
		}
	}
	if len(toAdd) > 0 {
		if err := s.perms.Insert(ctx, role, keysToStrings(toAdd)); err != nil {
			observability.RecordAdminMutation(ctx, "save", "error")
			return nil, fmt.Errorf("insert permissions: %w", err)
		}
	}

	observability.RecordAdminMutation(ctx, "save", "ok")
	slog.InfoContext(ctx, "role permissions saved",
		"role", role, "added", len(toAdd), "removed", len(toRemove))

	if err := s.broadcaster.Publish(ctx); err != nil {
		// The save itself succeeded; sessions catch up on next sign-in.
		slog.WarnContext(ctx, "refresh broadcast failed", "error", err)
	}

	return &SaveResult{Role: role, Added: toAdd, Removed: toRemove}, nil
}

// AddRole registers a new role in the local display order. The code is
// normalized before use and the operation is idempotent: adding an
// existing role changes nothing. No store rows are written; until an
// administrator saves a set for it, the role resolves by default policy.
func (s *RoleAdminService) AddRole(ctx context.Context, code, label string) (string, error) {
	role := rbac.NormalizeRole(code)
	if role == "" {
		return "", ErrEmptyRoleCode
	}

	known, err := s.knownRoles(ctx)
	if err != nil {
		return "", err
	}
	if slices.Contains(known, role) {
		return role, nil
	}

	if err := s.prefs.SetRoleOrder(append(known, role)); err != nil {
		observability.RecordAdminMutation(ctx, "add_role", "error")
		return "", fmt.Errorf("persist role order: %w", err)
	}
	if label != "" {
		if err := s.prefs.SetRoleLabel(role, label); err != nil {
			slog.WarnContext(ctx, "persist role label failed", "role", role, "error", err)
		}
	}

	observability.RecordAdminMutation(ctx, "add_role", "ok")
	slog.InfoContext(ctx, "role added", "role", role)
	return role, nil
}

// MoveRole shifts a role one step up or down in the display order. Moves
// past either end leave the order unchanged. The order is a local display
// preference; it never affects permissions.
func (s *RoleAdminService) MoveRole(ctx context.Context, role string, delta int) ([]string, error) {
	if delta != -1 && delta != 1 {
		return nil, ErrBadMove
	}
	known, err := s.knownRoles(ctx)
	if err != nil {
		return nil, err
	}
	idx := slices.Index(known, role)
	if idx < 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnknownRole, role)
	}
	target := idx + delta
	if target < 0 || target >= len(known) {
		return known, nil
	}
	known[idx], known[target] = known[target], known[idx]
	if err := s.prefs.SetRoleOrder(known); err != nil {
		return nil, fmt.Errorf("persist role order: %w", err)
	}
	return known, nil
}

// SetRoleLabel stores a display label override for a role.
func (s *RoleAdminService) SetRoleLabel(ctx context.Context, role, label string) error {
	known, err := s.knownRoles(ctx)
	if err != nil {
		return err
	}
	if !slices.Contains(known, role) {
		return fmt.Errorf("%w: %s", ErrUnknownRole, role)
	}
	return s.prefs.SetRoleLabel(role, label)
}

// knownRoles returns every role in display order: preference order first,
// then built-ins and stored roles not yet covered by it.
func (s *RoleAdminService) knownRoles(ctx context.Context) ([]string, error) {
	rows, err := s.perms.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list role permissions: %w", err)
	}
	stored := make(map[string]menu.Set)
	for _, row := range rows {
		if stored[row.Role] == nil {
			stored[row.Role] = menu.Set{}
		}
	}
	return s.roleOrder(stored, s.prefs.Snapshot().RoleOrder), nil
}

func (s *RoleAdminService) roleOrder(stored map[string]menu.Set, prefOrder []string) []string {
	seen := make(map[string]bool)
	order := make([]string, 0, len(stored)+4)

	appendRole := func(role string) {
		if !seen[role] {
			seen[role] = true
			order = append(order, role)
		}
	}

	for _, role := range prefOrder {
		appendRole(role)
	}
	for _, role := range rbac.BuiltinRoles() {
		appendRole(role)
	}
	extra := make([]string, 0, len(stored))
	for role := range stored {
		if !seen[role] {
			extra = append(extra, role)
		}
	}
	slices.Sort(extra)
	for _, role := range extra {
		appendRole(role)
	}
	return order
}

func keysToStrings(keys []menu.Key) []string {
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = string(k)
	}
	return out
}
