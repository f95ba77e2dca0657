package rbac

import (
	"sync"

	"github.com/jameszjgao/vouchap-crm/internal/menu"
)

// PermissionContext holds the effective permission set for one session.
// The set is only ever replaced wholesale, so readers always observe a
// complete resolution, never a partially-applied one.
type PermissionContext struct {
	mu      sync.RWMutex
	allowed menu.Set
}

// NewPermissionContext returns an empty context: every Can query answers
// false until the first Replace. Absence of permission information is never
// interpreted as access granted.
func NewPermissionContext() *PermissionContext {
	return &PermissionContext{}
}

func (c *PermissionContext) Can(key menu.Key) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.allowed == nil {
		return false
	}
	return c.allowed.Has(key)
}

// Replace swaps in a new effective set. The set is cloned so callers cannot
// mutate the published value afterwards.
func (c *PermissionContext) Replace(set menu.Set) {
	cloned := set.Clone()
	c.mu.Lock()
	c.allowed = cloned
	c.mu.Unlock()
}

// Reset empties the context, returning it to deny-by-default.
func (c *PermissionContext) Reset() {
	c.mu.Lock()
	c.allowed = nil
	c.mu.Unlock()
}

// Snapshot returns a copy of the current set for rendering menus.
func (c *PermissionContext) Snapshot() menu.Set {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.allowed == nil {
		return menu.Set{}
	}
	return c.allowed.Clone()
}
