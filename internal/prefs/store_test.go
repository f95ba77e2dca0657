package prefs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")

	s := NewStore(path)
	if err := s.SetRoleOrder([]string{"admin", "sales", "ops"}); err != nil {
		t.Fatalf("set role order: %v", err)
	}
	if err := s.SetRoleLabel("sales", "Sales Team"); err != nil {
		t.Fatalf("set role label: %v", err)
	}

	// A fresh store reads back what the first one wrote.
	reloaded := NewStore(path)
	got := reloaded.Snapshot()
	if len(got.RoleOrder) != 3 || got.RoleOrder[0] != "admin" || got.RoleOrder[2] != "ops" {
		t.Fatalf("unexpected role order: %v", got.RoleOrder)
	}
	if got.RoleLabels["sales"] != "Sales Team" {
		t.Fatalf("unexpected labels: %v", got.RoleLabels)
	}
}

func TestStoreMissingFileStartsEmpty(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "absent.json"))
	got := s.Snapshot()
	if len(got.RoleOrder) != 0 || len(got.RoleLabels) != 0 {
		t.Fatalf("expected empty preferences, got %+v", got)
	}
}

func TestStoreCorruptFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write corrupt file: %v", err)
	}
	s := NewStore(path)
	got := s.Snapshot()
	if len(got.RoleOrder) != 0 {
		t.Fatalf("expected empty preferences, got %+v", got)
	}
	// Store is still usable after a corrupt load.
	if err := s.SetRoleOrder([]string{"ops"}); err != nil {
		t.Fatalf("set role order after corrupt load: %v", err)
	}
}

func TestStoreClearLabel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	s := NewStore(path)
	if err := s.SetRoleLabel("ops", "Operations"); err != nil {
		t.Fatalf("set label: %v", err)
	}
	if err := s.SetRoleLabel("ops", ""); err != nil {
		t.Fatalf("clear label: %v", err)
	}
	if _, ok := s.Snapshot().RoleLabels["ops"]; ok {
		t.Fatal("label override not removed")
	}
}

func TestStoreSnapshotIsCopy(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "prefs.json"))
	if err := s.SetRoleOrder([]string{"admin"}); err != nil {
		t.Fatalf("set role order: %v", err)
	}
	snap := s.Snapshot()
	snap.RoleOrder[0] = "mutated"
	snap.RoleLabels["x"] = "y"
	got := s.Snapshot()
	if got.RoleOrder[0] != "admin" || len(got.RoleLabels) != 0 {
		t.Fatalf("snapshot leaked internal state: %+v", got)
	}
}
