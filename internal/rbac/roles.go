// Package rbac implements per-role menu permission resolution: the remote
// role_menu_permissions table is authoritative, with a hard-coded default
// policy as the fallback when the store is empty or unreachable.
package rbac

import (
	"strings"

	"github.com/jameszjgao/vouchap-crm/internal/menu"
)

const (
	RoleAdmin   = "admin"
	RoleOps     = "ops"
	RoleSales   = "sales"
	RoleSupport = "support"
)

// BuiltinRoles returns the roles every deployment starts with, in display
// order.
func BuiltinRoles() []string {
	return []string{RoleAdmin, RoleOps, RoleSales, RoleSupport}
}

// DefaultPermissions is the bootstrap/fallback policy used when the store
// has no rows for a role: admin sees the full catalog, everyone else gets
// the "my" views plus SKU catalogs and the team list.
func DefaultPermissions(role string) menu.Set {
	if role == RoleAdmin {
		return menu.FullSet()
	}
	return menu.NewSet(
		menu.OverviewMy,
		menu.CustomersMy,
		menu.OrdersMy,
		menu.SkuEdition,
		menu.SkuAddon,
		menu.TeamMembers,
	)
}

// NormalizeRole canonicalizes a free-text role code: trimmed, lowercased,
// internal whitespace collapsed to single underscores.
func NormalizeRole(code string) string {
	return strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(code))), "_")
}
