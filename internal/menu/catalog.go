// Package menu defines the closed catalog of navigable capabilities. The
// catalog is the single source of truth for valid menu keys; rows arriving
// from the permission store with keys outside it are dropped at the boundary.
package menu

// Key identifies one navigable capability. Keys are stable and match the
// menu_key column of role_menu_permissions.
type Key string

const (
	OverviewPanorama Key = "overview_panorama"
	OverviewMy       Key = "overview_my"
	CustomersAll     Key = "customers_all"
	CustomersMy      Key = "customers_my"
	OrdersAll        Key = "orders_all"
	OrdersMy         Key = "orders_my"
	SkuEdition       Key = "sku_edition"
	SkuAddon         Key = "sku_addon"
	TeamMembers      Key = "team_members"
	RolesPermissions Key = "roles_permissions"
)

type Entry struct {
	Key   Key    `json:"key"`
	Label string `json:"label"`
}

type Group struct {
	Label string `json:"label"`
	Keys  []Key  `json:"keys"`
}

// catalog order is significant: it drives sidebar and admin table rendering.
var catalog = []Entry{
	{OverviewPanorama, "Panorama Dashboard"},
	{OverviewMy, "My Workbench"},
	{CustomersAll, "All Customers"},
	{CustomersMy, "My Customers"},
	{OrdersAll, "All Orders"},
	{OrdersMy, "My Customer Orders"},
	{SkuEdition, "Edition SKUs"},
	{SkuAddon, "Add-on SKUs"},
	{TeamMembers, "Team Members"},
	{RolesPermissions, "Roles & Permissions"},
}

var groups = []Group{
	{Label: "Overview", Keys: []Key{OverviewPanorama, OverviewMy}},
	{Label: "Customers", Keys: []Key{CustomersAll, CustomersMy}},
	{Label: "Orders", Keys: []Key{OrdersAll, OrdersMy}},
	{Label: "SKU", Keys: []Key{SkuEdition, SkuAddon}},
	{Label: "Team", Keys: []Key{TeamMembers, RolesPermissions}},
}

var valid = func() map[Key]struct{} {
	m := make(map[Key]struct{}, len(catalog))
	for _, e := range catalog {
		m[e.Key] = struct{}{}
	}
	return m
}()

// AllKeys returns every catalog entry in display order.
func AllKeys() []Entry {
	out := make([]Entry, len(catalog))
	copy(out, catalog)
	return out
}

// Groups returns the named sections in display order.
func Groups() []Group {
	out := make([]Group, len(groups))
	for i, g := range groups {
		keys := make([]Key, len(g.Keys))
		copy(keys, g.Keys)
		out[i] = Group{Label: g.Label, Keys: keys}
	}
	return out
}

func IsValid(k Key) bool {
	_, ok := valid[k]
	return ok
}

func Label(k Key) string {
	for _, e := range catalog {
		if e.Key == k {
			return e.Label
		}
	}
	return string(k)
}
