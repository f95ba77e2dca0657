package service

import (
	"context"
	"errors"
	"slices"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/jameszjgao/vouchap-crm/internal/domain"
	repogomock "github.com/jameszjgao/vouchap-crm/internal/repository/gomock"
)

type overviewFixture struct {
	spaces      *repogomock.MockSpaceRepository
	orders      *repogomock.MockOrderRepository
	assignments *repogomock.MockAssignmentRepository
	skus        *repogomock.MockSkuRepository
	svc         *OverviewService
}

func newOverviewFixture(t *testing.T) *overviewFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &overviewFixture{
		spaces:      repogomock.NewMockSpaceRepository(ctrl),
		orders:      repogomock.NewMockOrderRepository(ctrl),
		assignments: repogomock.NewMockAssignmentRepository(ctrl),
		skus:        repogomock.NewMockSkuRepository(ctrl),
	}
	f.svc = NewOverviewService(f.spaces, f.orders, f.assignments, f.skus)
	return f
}

func TestOverviewPanoramaCounts(t *testing.T) {
	f := newOverviewFixture(t)
	ctx := context.Background()

	f.spaces.EXPECT().Count(ctx).Return(int64(12), nil)
	f.orders.EXPECT().Count(ctx).Return(int64(30), nil)
	f.skus.EXPECT().CountEditions().Return(int64(3), nil)
	f.assignments.EXPECT().Count(ctx).Return(int64(9), nil)

	stats := f.svc.Panorama(ctx)
	if stats.Spaces != 12 || stats.Orders != 30 || stats.Skus != 3 || stats.Assignments != 9 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
	if len(stats.PartialSources) != 0 {
		t.Fatalf("unexpected partial sources: %v", stats.PartialSources)
	}
}

func TestOverviewPanoramaDegradesPerSource(t *testing.T) {
	f := newOverviewFixture(t)
	ctx := context.Background()

	f.spaces.EXPECT().Count(ctx).Return(int64(12), nil)
	f.orders.EXPECT().Count(ctx).Return(int64(0), errors.New("timeout"))
	f.skus.EXPECT().CountEditions().Return(int64(0), errors.New("timeout"))
	f.assignments.EXPECT().Count(ctx).Return(int64(9), nil)

	stats := f.svc.Panorama(ctx)
	if stats.Spaces != 12 || stats.Assignments != 9 {
		t.Fatalf("healthy counts dropped: %+v", stats)
	}
	if stats.Orders != 0 || stats.Skus != 0 {
		t.Fatalf("failed counts should render zero: %+v", stats)
	}

	slices.Sort(stats.PartialSources)
	if !slices.Equal(stats.PartialSources, []string{"orders", "skus"}) {
		t.Fatalf("unexpected partial sources: %v", stats.PartialSources)
	}
}

func TestOverviewMineScopedToAssignments(t *testing.T) {
	f := newOverviewFixture(t)
	ctx := context.Background()

	f.assignments.EXPECT().ListByOpsUser(ctx, "ops-1").Return([]domain.OpsAssignment{
		{SpaceID: "sp-1", OpsUserID: "ops-1"},
		{SpaceID: "sp-3", OpsUserID: "ops-1"},
	}, nil)
	f.orders.EXPECT().CountBySpaceIDs(ctx, []string{"sp-1", "sp-3"}).Return(int64(5), nil)
	f.skus.EXPECT().CountEditions().Return(int64(3), nil)

	stats, err := f.svc.Mine(ctx, "ops-1")
	if err != nil {
		t.Fatalf("mine: %v", err)
	}
	if stats.Spaces != 2 || stats.Assignments != 2 {
		t.Fatalf("expected 2 assigned customers, got %+v", stats)
	}
	if stats.Orders != 5 || stats.Skus != 3 {
		t.Fatalf("unexpected counts: %+v", stats)
	}
}

func TestOverviewMineFailsWithoutAssignments(t *testing.T) {
	f := newOverviewFixture(t)
	ctx := context.Background()

	f.assignments.EXPECT().ListByOpsUser(ctx, "ops-1").Return(nil, errors.New("db down"))

	if _, err := f.svc.Mine(ctx, "ops-1"); err == nil {
		t.Fatal("expected error when the assignment list itself fails")
	}
}

func TestOverviewMineEmptyBook(t *testing.T) {
	f := newOverviewFixture(t)
	ctx := context.Background()

	f.assignments.EXPECT().ListByOpsUser(ctx, "ops-1").Return(nil, nil)
	f.orders.EXPECT().CountBySpaceIDs(ctx, []string{}).Return(int64(0), nil)
	f.skus.EXPECT().CountEditions().Return(int64(3), nil)

	stats, err := f.svc.Mine(ctx, "ops-1")
	if err != nil {
		t.Fatalf("mine: %v", err)
	}
	if stats.Spaces != 0 || stats.Orders != 0 || stats.Assignments != 0 {
		t.Fatalf("expected an empty workbench, got %+v", stats)
	}
}
