// Package prefs persists operator display preferences for the role
// administration screen. Preferences are cosmetic only: they shape how
// roles are listed and labelled, never what a role is allowed to do.
package prefs

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// Preferences is the on-disk document. RoleOrder controls the listing
// order of roles in the admin screen; RoleLabels overrides the display
// label for a role without renaming it.
type Preferences struct {
	RoleOrder  []string          `json:"role_order"`
	RoleLabels map[string]string `json:"role_labels"`
}

// Store is a single-file JSON store. Reads and writes go through a
// mutex so concurrent admin requests do not interleave file writes.
type Store struct {
	mu    sync.Mutex
	path  string
	prefs Preferences
}

// NewStore loads the preferences file if it exists. A missing or
// unreadable file is not fatal: the store starts empty and the next
// save recreates it.
func NewStore(path string) *Store {
	s := &Store{path: path, prefs: Preferences{RoleLabels: map[string]string{}}}
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			slog.Warn("display preferences unreadable, starting empty", "path", path, "error", err)
		}
		return s
	}
	var p Preferences
	if err := json.Unmarshal(data, &p); err != nil {
		slog.Warn("display preferences corrupt, starting empty", "path", path, "error", err)
		return s
	}
	if p.RoleLabels == nil {
		p.RoleLabels = map[string]string{}
	}
	s.prefs = p
	return s
}

// Snapshot returns a copy of the current preferences.
func (s *Store) Snapshot() Preferences {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cloneLocked()
}

// SetRoleOrder replaces the stored ordering wholesale and persists it.
func (s *Store) SetRoleOrder(order []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prefs.RoleOrder = append([]string(nil), order...)
	return s.saveLocked()
}

// SetRoleLabel records a display label override for a role. An empty
// label removes the override.
func (s *Store) SetRoleLabel(role, label string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if label == "" {
		delete(s.prefs.RoleLabels, role)
	} else {
		s.prefs.RoleLabels[role] = label
	}
	return s.saveLocked()
}

func (s *Store) cloneLocked() Preferences {
	out := Preferences{
		RoleOrder:  append([]string(nil), s.prefs.RoleOrder...),
		RoleLabels: make(map[string]string, len(s.prefs.RoleLabels)),
	}
	for k, v := range s.prefs.RoleLabels {
		out.RoleLabels[k] = v
	}
	return out
}

func (s *Store) saveLocked() error {
	data, err := json.MarshalIndent(s.prefs, "", "  ")
	if err != nil {
		return fmt.Errorf("encode preferences: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create preferences dir: %w", err)
		}
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write preferences: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace preferences: %w", err)
	}
	return nil
}
