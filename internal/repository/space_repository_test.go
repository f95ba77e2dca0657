package repository

import (
	"context"
	"testing"

	"github.com/jameszjgao/vouchap-crm/internal/domain"
)

func TestSpaceRepositoryCount(t *testing.T) {
	db := newRepositoryDBForTest(t)
	repo := NewSpaceRepository(db)
	ctx := context.Background()

	n, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("count empty: %v", err)
	}
	if n != 0 {
		t.Fatalf("expected 0 spaces, got %d", n)
	}

	for _, sp := range []domain.Space{{ID: "sp-1", Name: "Acme"}, {ID: "sp-2", Name: "Globex"}} {
		if err := db.Create(&sp).Error; err != nil {
			t.Fatalf("create space: %v", err)
		}
	}

	n, err = repo.Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 spaces, got %d", n)
	}
}
