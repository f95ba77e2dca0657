package service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/jameszjgao/vouchap-crm/internal/observability"
	"github.com/jameszjgao/vouchap-crm/internal/repository"
)

// OverviewStats backs the dashboard cards: customer, order, SKU edition
// and assignment counts. PartialSources names the counts that failed and
// render as zero.
type OverviewStats struct {
	Spaces         int64    `json:"spaces"`
	Orders         int64    `json:"orders"`
	Skus           int64    `json:"skus"`
	Assignments    int64    `json:"assignments"`
	PartialSources []string `json:"partial_sources,omitempty"`
}

// OverviewService computes the dashboard in two flavors: panorama counts
// the whole book of business, the personal view counts only the caller's
// assigned customers. Counts fan out concurrently and degrade per source,
// same as the customer list.
type OverviewService struct {
	spaces      repository.SpaceRepository
	orders      repository.OrderRepository
	assignments repository.AssignmentRepository
	skus        repository.SkuRepository
}

func NewOverviewService(
	spaces repository.SpaceRepository,
	orders repository.OrderRepository,
	assignments repository.AssignmentRepository,
	skus repository.SkuRepository,
) *OverviewService {
	return &OverviewService{
		spaces:      spaces,
		orders:      orders,
		assignments: assignments,
		skus:        skus,
	}
}

// Panorama returns the global counts. Requires the overview_panorama
// capability at the transport layer.
func (s *OverviewService) Panorama(ctx context.Context) *OverviewStats {
	stats := &OverviewStats{}

	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)
	fail := func(source string, err error) {
		slog.WarnContext(ctx, "overview source degraded", "view", "panorama", "source", source, "error", err)
		observability.RecordOverviewPartial(ctx, "panorama", source)
		mu.Lock()
		stats.PartialSources = append(stats.PartialSources, source)
		mu.Unlock()
	}

	wg.Add(4)
	go func() {
		defer wg.Done()
		n, err := s.spaces.Count(ctx)
		if err != nil {
			fail("spaces", err)
			return
		}
		stats.Spaces = n
	}()
	go func() {
		defer wg.Done()
		n, err := s.orders.Count(ctx)
		if err != nil {
			fail("orders", err)
			return
		}
		stats.Orders = n
	}()
	go func() {
		defer wg.Done()
		n, err := s.skus.CountEditions()
		if err != nil {
			fail("skus", err)
			return
		}
		stats.Skus = n
	}()
	go func() {
		defer wg.Done()
		n, err := s.assignments.Count(ctx)
		if err != nil {
			fail("assignments", err)
			return
		}
		stats.Assignments = n
	}()
	wg.Wait()

	return stats
}

// Mine returns the workbench counts for one operator: assigned customers,
// the orders of those customers, and the SKU catalog size. The assignment
// list is the backbone; the remaining counts degrade per source.
func (s *OverviewService) Mine(ctx context.Context, opsUserID string) (*OverviewStats, error) {
	rows, err := s.assignments.ListByOpsUser(ctx, opsUserID)
	if err != nil {
		return nil, err
	}
	spaceIDs := make([]string, len(rows))
	for i, a := range rows {
		spaceIDs[i] = a.SpaceID
	}

	stats := &OverviewStats{
		Spaces:      int64(len(spaceIDs)),
		Assignments: int64(len(spaceIDs)),
	}

	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)
	fail := func(source string, err error) {
		slog.WarnContext(ctx, "overview source degraded", "view", "my", "source", source, "error", err)
		observability.RecordOverviewPartial(ctx, "my", source)
		mu.Lock()
		stats.PartialSources = append(stats.PartialSources, source)
		mu.Unlock()
	}

	wg.Add(2)
	go func() {
		defer wg.Done()
		n, err := s.orders.CountBySpaceIDs(ctx, spaceIDs)
		if err != nil {
			fail("orders", err)
			return
		}
		stats.Orders = n
	}()
	go func() {
		defer wg.Done()
		n, err := s.skus.CountEditions()
		if err != nil {
			fail("skus", err)
			return
		}
		stats.Skus = n
	}()
	wg.Wait()

	return stats, nil
}
