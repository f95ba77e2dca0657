package rbac

import (
	"context"
	"log/slog"

	"golang.org/x/sync/singleflight"

	"github.com/jameszjgao/vouchap-crm/internal/menu"
	"github.com/jameszjgao/vouchap-crm/internal/observability"
)

// PermissionStore reads the persisted (role, menu_key) rows.
type PermissionStore interface {
	MenuKeysByRole(ctx context.Context, role string) ([]string, error)
}

// Resolver computes the effective permission set for a role. Store lookups
// are deduplicated per role so a burst of sessions resolving the same role
// issues one query.
type Resolver struct {
	store PermissionStore
	sf    singleflight.Group
}

func NewResolver(store PermissionStore) *Resolver {
	return &Resolver{store: store}
}

// ResolveEffective returns the stored permission set for the role, or the
// default policy when the store has no rows or the lookup fails. It never
// returns an error: navigation must stay usable through backend outages.
func (r *Resolver) ResolveEffective(ctx context.Context, role string) menu.Set {
	v, _, _ := r.sf.Do(role, func() (interface{}, error) {
		keys, err := r.store.MenuKeysByRole(ctx, role)
		if err != nil {
			slog.WarnContext(ctx, "permission store unavailable, using default policy", "role", role, "error", err)
			observability.RecordResolverOutcome(ctx, role, "fallback")
			return DefaultPermissions(role), nil
		}
		set := make(menu.Set, len(keys))
		for _, k := range keys {
			key := menu.Key(k)
			// Rows with keys outside the catalog are dropped, not trusted.
			if menu.IsValid(key) {
				set.Add(key)
			}
		}
		if len(set) == 0 {
			observability.RecordResolverOutcome(ctx, role, "default")
			return DefaultPermissions(role), nil
		}
		observability.RecordResolverOutcome(ctx, role, "store")
		return set, nil
	})
	return v.(menu.Set)
}

// ResolveDefault returns the fallback policy without touching the store.
func (r *Resolver) ResolveDefault(role string) menu.Set {
	return DefaultPermissions(role)
}
