package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/jameszjgao/vouchap-crm/internal/domain"
	repogomock "github.com/jameszjgao/vouchap-crm/internal/repository/gomock"
)

func newOrderServiceForTest(t *testing.T) (*OrderService, *repogomock.MockOrderRepository, *repogomock.MockSpaceRepository, *repogomock.MockAssignmentRepository) {
	ctrl := gomock.NewController(t)
	orders := repogomock.NewMockOrderRepository(ctrl)
	spaces := repogomock.NewMockSpaceRepository(ctrl)
	assignments := repogomock.NewMockAssignmentRepository(ctrl)
	return NewOrderService(orders, spaces, assignments), orders, spaces, assignments
}

func TestOrderCreateDefaultsToPending(t *testing.T) {
	svc, orders, spaces, _ := newOrderServiceForTest(t)

	spaces.EXPECT().FindByID("space-1").Return(&domain.Space{ID: "space-1"}, nil)
	orders.EXPECT().Create(gomock.Any()).DoAndReturn(func(o *domain.SpaceOrder) error {
		if o.ID == "" {
			t.Fatal("expected generated order id")
		}
		if o.Status != domain.OrderStatusPending {
			t.Fatalf("expected pending status, got %s", o.Status)
		}
		return nil
	})

	order, err := svc.Create(context.Background(), CreateOrderInput{
		SpaceID:      "space-1",
		SkuEditionID: 2,
		Seats:        10,
		AmountCents:  9900,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if order.SpaceID != "space-1" || order.Seats != 10 {
		t.Fatalf("unexpected order: %+v", order)
	}
}

func TestOrderCreateRejectsBadInput(t *testing.T) {
	svc, _, _, _ := newOrderServiceForTest(t)

	cases := []CreateOrderInput{
		{SkuEditionID: 1, Seats: 1},
		{SpaceID: "space-1", Seats: 1},
		{SpaceID: "space-1", SkuEditionID: 1, Seats: 0},
		{SpaceID: "space-1", SkuEditionID: 1, Seats: 1, AmountCents: -1},
	}
	for i, in := range cases {
		if _, err := svc.Create(context.Background(), in); !errors.Is(err, ErrInvalidOrderInput) {
			t.Fatalf("case %d: expected ErrInvalidOrderInput, got %v", i, err)
		}
	}
}

func TestOrderCreateRejectsUnknownStatus(t *testing.T) {
	svc, _, _, _ := newOrderServiceForTest(t)

	_, err := svc.Create(context.Background(), CreateOrderInput{
		SpaceID:      "space-1",
		SkuEditionID: 1,
		Seats:        1,
		Status:       "refunded",
	})
	if !errors.Is(err, ErrInvalidOrderStatus) {
		t.Fatalf("expected ErrInvalidOrderStatus, got %v", err)
	}
}

func TestOrderListMineScopedByAssignment(t *testing.T) {
	svc, orders, _, assignments := newOrderServiceForTest(t)

	assignments.EXPECT().ListByOpsUser(gomock.Any(), "ops-1").Return([]domain.OpsAssignment{
		{SpaceID: "space-1", OpsUserID: "ops-1"},
		{SpaceID: "space-3", OpsUserID: "ops-1"},
	}, nil)
	orders.EXPECT().ListBySpaceIDs(gomock.Any(), []string{"space-1", "space-3"}).Return([]domain.SpaceOrder{
		{ID: "order-1", SpaceID: "space-3"},
	}, nil)

	got, err := svc.ListMine(context.Background(), "ops-1")
	if err != nil {
		t.Fatalf("list mine: %v", err)
	}
	if len(got) != 1 || got[0].ID != "order-1" {
		t.Fatalf("unexpected orders: %+v", got)
	}
}

func TestOrderUpdateStatusValidatesAndRereads(t *testing.T) {
	svc, orders, _, _ := newOrderServiceForTest(t)

	if _, err := svc.UpdateStatus(context.Background(), "order-1", "refunded"); !errors.Is(err, ErrInvalidOrderStatus) {
		t.Fatalf("expected ErrInvalidOrderStatus, got %v", err)
	}

	orders.EXPECT().Update("order-1", map[string]any{"status": domain.OrderStatusCanceled}).Return(nil)
	orders.EXPECT().FindByID("order-1").Return(&domain.SpaceOrder{ID: "order-1", Status: domain.OrderStatusCanceled}, nil)

	got, err := svc.UpdateStatus(context.Background(), "order-1", domain.OrderStatusCanceled)
	if err != nil {
		t.Fatalf("update status: %v", err)
	}
	if got.Status != domain.OrderStatusCanceled {
		t.Fatalf("expected canceled, got %s", got.Status)
	}
}
