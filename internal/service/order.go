package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jameszjgao/vouchap-crm/internal/domain"
	"github.com/jameszjgao/vouchap-crm/internal/repository"
)

var (
	ErrInvalidOrderStatus = errors.New("invalid order status")
	ErrInvalidOrderInput  = errors.New("invalid order input")
)

var orderStatuses = map[string]struct{}{
	domain.OrderStatusActive:   {},
	domain.OrderStatusPending:  {},
	domain.OrderStatusExpired:  {},
	domain.OrderStatusCanceled: {},
}

// CreateOrderInput is the payload for recording a subscription order.
type CreateOrderInput struct {
	SpaceID      string
	SkuEditionID uint
	Seats        int
	AmountCents  int64
	Status       string
	ExpiresAt    *time.Time
}

// OrderService manages subscription orders. The "my" view is scoped by
// operator assignment, mirroring the customer list.
type OrderService struct {
	orders      repository.OrderRepository
	spaces      repository.SpaceRepository
	assignments repository.AssignmentRepository
}

func NewOrderService(
	orders repository.OrderRepository,
	spaces repository.SpaceRepository,
	assignments repository.AssignmentRepository,
) *OrderService {
	return &OrderService{orders: orders, spaces: spaces, assignments: assignments}
}

func (s *OrderService) ListAll(ctx context.Context) ([]domain.SpaceOrder, error) {
	return s.orders.ListAll(ctx)
}

// ListMine returns orders for the spaces assigned to the operator.
func (s *OrderService) ListMine(ctx context.Context, opsUserID string) ([]domain.SpaceOrder, error) {
	assigned, err := s.assignments.ListByOpsUser(ctx, opsUserID)
	if err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}
	spaceIDs := make([]string, len(assigned))
	for i, a := range assigned {
		spaceIDs[i] = a.SpaceID
	}
	return s.orders.ListBySpaceIDs(ctx, spaceIDs)
}

func (s *OrderService) Create(ctx context.Context, in CreateOrderInput) (*domain.SpaceOrder, error) {
	if in.SpaceID == "" || in.SkuEditionID == 0 || in.Seats <= 0 || in.AmountCents < 0 {
		return nil, ErrInvalidOrderInput
	}
	status := in.Status
	if status == "" {
		status = domain.OrderStatusPending
	}
	if _, ok := orderStatuses[status]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrInvalidOrderStatus, status)
	}
	if _, err := s.spaces.FindByID(in.SpaceID); err != nil {
		return nil, err
	}

	order := &domain.SpaceOrder{
		ID:           uuid.NewString(),
		SpaceID:      in.SpaceID,
		SkuEditionID: in.SkuEditionID,
		Seats:        in.Seats,
		AmountCents:  in.AmountCents,
		Status:       status,
		ExpiresAt:    in.ExpiresAt,
	}
	if err := s.orders.Create(order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *OrderService) UpdateStatus(ctx context.Context, orderID, status string) (*domain.SpaceOrder, error) {
	if _, ok := orderStatuses[status]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrInvalidOrderStatus, status)
	}
	if err := s.orders.Update(orderID, map[string]any{"status": status}); err != nil {
		return nil, err
	}
	return s.orders.FindByID(orderID)
}

func (s *OrderService) Delete(_ context.Context, orderID string) error {
	return s.orders.DeleteByID(orderID)
}
