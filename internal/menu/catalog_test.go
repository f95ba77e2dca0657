package menu

import "testing"

func TestCatalogOrderIsStable(t *testing.T) {
	entries := AllKeys()
	if len(entries) != 10 {
		t.Fatalf("expected 10 catalog entries, got %d", len(entries))
	}
	if entries[0].Key != OverviewPanorama || entries[9].Key != RolesPermissions {
		t.Fatalf("unexpected catalog order: first=%s last=%s", entries[0].Key, entries[9].Key)
	}
}

func TestGroupsCoverCatalogExactlyOnce(t *testing.T) {
	seen := map[Key]int{}
	for _, g := range Groups() {
		if len(g.Keys) == 0 {
			t.Fatalf("group %q has no keys", g.Label)
		}
		for _, k := range g.Keys {
			seen[k]++
		}
	}
	for _, e := range AllKeys() {
		if seen[e.Key] != 1 {
			t.Fatalf("key %s appears %d times across groups", e.Key, seen[e.Key])
		}
	}
}

func TestIsValidRejectsUnknownKeys(t *testing.T) {
	if !IsValid(SkuEdition) {
		t.Fatal("expected sku_edition to be valid")
	}
	if IsValid(Key("dashboard_v2")) {
		t.Fatal("expected unknown key to be invalid")
	}
}

func TestSetDiff(t *testing.T) {
	stored := NewSet(OverviewMy, SkuEdition)
	target := NewSet(OverviewMy, CustomersAll)
	toAdd, toRemove := stored.Diff(target)
	if len(toAdd) != 1 || toAdd[0] != CustomersAll {
		t.Fatalf("unexpected toAdd: %v", toAdd)
	}
	if len(toRemove) != 1 || toRemove[0] != SkuEdition {
		t.Fatalf("unexpected toRemove: %v", toRemove)
	}

	toAdd, toRemove = stored.Diff(stored.Clone())
	if len(toAdd) != 0 || len(toRemove) != 0 {
		t.Fatalf("expected empty diff for equal sets, got add=%v remove=%v", toAdd, toRemove)
	}
}

func TestFullSetMatchesCatalog(t *testing.T) {
	full := FullSet()
	if len(full) != len(AllKeys()) {
		t.Fatalf("full set size %d != catalog size %d", len(full), len(AllKeys()))
	}
	for _, e := range AllKeys() {
		if !full.Has(e.Key) {
			t.Fatalf("full set missing %s", e.Key)
		}
	}
}
