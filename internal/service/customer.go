package service

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/jameszjgao/vouchap-crm/internal/domain"
	"github.com/jameszjgao/vouchap-crm/internal/observability"
	"github.com/jameszjgao/vouchap-crm/internal/repository"
)

// CustomerOrder is the order slice of a customer row.
type CustomerOrder struct {
	OrderID     string     `json:"order_id"`
	SkuEdition  string     `json:"sku_edition,omitempty"`
	Seats       int        `json:"seats"`
	AmountCents int64      `json:"amount_cents"`
	Status      string     `json:"status"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
}

// CustomerFollowUp is the latest follow-up note on a customer.
type CustomerFollowUp struct {
	Content   string    `json:"content"`
	ByName    string    `json:"by_name,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Customer is one aggregated row of the customer list: a workspace joined
// with its membership count, creator, active order, assigned operator, and
// latest follow-up.
type Customer struct {
	SpaceID      string            `json:"space_id"`
	Name         string            `json:"name"`
	CreatedAt    time.Time         `json:"created_at"`
	MemberCount  int               `json:"member_count"`
	CreatorID    string            `json:"creator_id,omitempty"`
	Order        *CustomerOrder    `json:"order,omitempty"`
	AssignedOps  string            `json:"assigned_ops,omitempty"`
	AssignedName string            `json:"assigned_name,omitempty"`
	FollowUp     *CustomerFollowUp `json:"follow_up,omitempty"`
}

// CustomerFilter narrows the aggregated list. Zero values match everything;
// filters apply after aggregation so a degraded column simply stops
// matching instead of erroring.
type CustomerFilter struct {
	Name        string
	SkuName     string
	AssignedOps string
	MinMembers  int
	MaxMembers  int
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}

func (f CustomerFilter) matches(c Customer) bool {
	if f.Name != "" && !containsFold(c.Name, f.Name) {
		return false
	}
	if f.SkuName != "" {
		if c.Order == nil || !containsFold(c.Order.SkuEdition, f.SkuName) {
			return false
		}
	}
	if f.AssignedOps != "" && c.AssignedOps != f.AssignedOps {
		return false
	}
	if f.MinMembers > 0 && c.MemberCount < f.MinMembers {
		return false
	}
	if f.MaxMembers > 0 && c.MemberCount > f.MaxMembers {
		return false
	}
	if f.CreatedFrom != nil && c.CreatedAt.Before(*f.CreatedFrom) {
		return false
	}
	if f.CreatedTo != nil && c.CreatedAt.After(*f.CreatedTo) {
		return false
	}
	return true
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// CustomerList is the aggregation result. PartialSources names the data
// sources that failed; their columns render empty rather than failing the
// whole list.
type CustomerList struct {
	Customers      []Customer `json:"customers"`
	PartialSources []string   `json:"partial_sources,omitempty"`
}

// CustomerService builds the customer list by fanning out to the five
// backing tables concurrently. Each source degrades independently: a
// failed lookup drops its column, never the list.
type CustomerService struct {
	spaces      repository.SpaceRepository
	orders      repository.OrderRepository
	assignments repository.AssignmentRepository
	followUps   repository.FollowUpRepository
	listLimit   int
}

func NewCustomerService(
	spaces repository.SpaceRepository,
	orders repository.OrderRepository,
	assignments repository.AssignmentRepository,
	followUps repository.FollowUpRepository,
) *CustomerService {
	return &CustomerService{
		spaces:      spaces,
		orders:      orders,
		assignments: assignments,
		followUps:   followUps,
		listLimit:   200,
	}
}

// ListAll returns every customer. Requires the customers_all capability at
// the transport layer.
func (s *CustomerService) ListAll(ctx context.Context, filter CustomerFilter) (*CustomerList, error) {
	return s.list(ctx, "all", "", filter)
}

// ListMine returns the customers assigned to one operator.
func (s *CustomerService) ListMine(ctx context.Context, opsUserID string, filter CustomerFilter) (*CustomerList, error) {
	return s.list(ctx, "my", opsUserID, filter)
}

func (s *CustomerService) list(ctx context.Context, view, opsUserID string, filter CustomerFilter) (*CustomerList, error) {
	start := time.Now()
	defer func() {
		observability.RecordCustomerListDuration(ctx, view, time.Since(start))
	}()

	// The space list is the backbone; without it there is nothing to show.
	spaces, err := s.spaces.ListRecent(ctx, s.listLimit)
	if err != nil {
		return nil, err
	}

	var (
		wg          sync.WaitGroup
		memberships []domain.UserSpace
		orders      []domain.SpaceOrder
		assignments []domain.OpsAssignment
		followUps   []domain.SpaceFollowUp

		mu      sync.Mutex
		partial []string
	)
	fail := func(source string, err error) {
		slog.WarnContext(ctx, "customer list source degraded", "source", source, "error", err)
		observability.RecordCustomerListPartial(ctx, source)
		mu.Lock()
		partial = append(partial, source)
		mu.Unlock()
	}

	spaceIDs := make([]string, len(spaces))
	for i, sp := range spaces {
		spaceIDs[i] = sp.ID
	}

	wg.Add(4)
	go func() {
		defer wg.Done()
		rows, err := s.spaces.ListMemberships(ctx)
		if err != nil {
			fail("memberships", err)
			return
		}
		memberships = rows
	}()
	go func() {
		defer wg.Done()
		rows, err := s.orders.ListBySpaceIDs(ctx, spaceIDs)
		if err != nil {
			fail("orders", err)
			return
		}
		orders = rows
	}()
	go func() {
		defer wg.Done()
		rows, err := s.assignments.ListAll(ctx)
		if err != nil {
			fail("assignments", err)
			return
		}
		assignments = rows
	}()
	go func() {
		defer wg.Done()
		rows, err := s.followUps.ListBySpaceIDs(ctx, spaceIDs)
		if err != nil {
			fail("follow_ups", err)
			return
		}
		followUps = rows
	}()
	wg.Wait()

	memberCount := make(map[string]int)
	creator := make(map[string]string)
	for _, m := range memberships {
		memberCount[m.SpaceID]++
		if m.IsAdmin {
			creator[m.SpaceID] = m.UserID
		}
	}

	// Orders come back newest first; keep the first per space.
	latestOrder := make(map[string]*domain.SpaceOrder)
	for i := range orders {
		o := &orders[i]
		if _, ok := latestOrder[o.SpaceID]; !ok {
			latestOrder[o.SpaceID] = o
		}
	}

	assignedTo := make(map[string]*domain.OpsAssignment)
	for i := range assignments {
		a := &assignments[i]
		assignedTo[a.SpaceID] = a
	}

	// Follow-ups come back newest first; keep the first per space.
	latestNote := make(map[string]*domain.SpaceFollowUp)
	for i := range followUps {
		f := &followUps[i]
		if _, ok := latestNote[f.SpaceID]; !ok {
			latestNote[f.SpaceID] = f
		}
	}

	customers := make([]Customer, 0, len(spaces))
	for _, sp := range spaces {
		a := assignedTo[sp.ID]
		if view == "my" {
			if a == nil || a.OpsUserID != opsUserID {
				continue
			}
		}

		c := Customer{
			SpaceID:     sp.ID,
			Name:        sp.Name,
			CreatedAt:   sp.CreatedAt,
			MemberCount: memberCount[sp.ID],
			CreatorID:   creator[sp.ID],
		}
		if o := latestOrder[sp.ID]; o != nil {
			co := &CustomerOrder{
				OrderID:     o.ID,
				Seats:       o.Seats,
				AmountCents: o.AmountCents,
				Status:      o.Status,
				ExpiresAt:   o.ExpiresAt,
			}
			if o.SkuEdition != nil {
				co.SkuEdition = o.SkuEdition.Name
			}
			c.Order = co
		}
		if a != nil {
			c.AssignedOps = a.OpsUserID
			if a.OpsUser != nil {
				c.AssignedName = a.OpsUser.Name
			}
		}
		if f := latestNote[sp.ID]; f != nil {
			fu := &CustomerFollowUp{Content: f.Content, CreatedAt: f.CreatedAt}
			if f.OpsUser != nil {
				fu.ByName = f.OpsUser.Name
			}
			c.FollowUp = fu
		}
		if !filter.matches(c) {
			continue
		}
		customers = append(customers, c)
	}

	return &CustomerList{Customers: customers, PartialSources: partial}, nil
}

// AddFollowUp records a note against a customer.
func (s *CustomerService) AddFollowUp(ctx context.Context, spaceID, opsUserID, content string) (*domain.SpaceFollowUp, error) {
	if _, err := s.spaces.FindByID(spaceID); err != nil {
		return nil, err
	}
	row := &domain.SpaceFollowUp{
		SpaceID:   spaceID,
		OpsUserID: opsUserID,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.followUps.Create(row); err != nil {
		return nil, err
	}
	return row, nil
}
