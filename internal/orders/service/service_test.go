package service

import (
	"context"
	"testing"

	"varniya_crm_backend/internal/events"
	"varniya_crm_backend/internal/orders/repository"
	"varniya_crm_backend/internal/orders/transport"
	"varniya_crm_backend/platform/apperr"
	"varniya_crm_backend/platform/logger"
)

type testStore struct {
	leadExists bool
	createErr  error
	updateErr  error

	createCalls int
	createdWith repository.CreateOrderParams
}

func (s *testStore) LeadExists(context.Context, int64) (bool, error) {
	return s.leadExists, nil
}

// Create mirrors the repository contract: the three status axes always start
// at pending/pending/not_started regardless of input.
func (s *testStore) Create(_ context.Context, params repository.CreateOrderParams) (repository.Order, error) {
	s.createCalls++
	s.createdWith = params
	if s.createErr != nil {
		return repository.Order{}, s.createErr
	}
	return repository.Order{
		ID:             1,
		LeadID:         params.LeadID,
		ProductType:    params.ProductType,
		Price:          params.Price,
		Quantity:       params.Quantity,
		OrderStatus:    "pending",
		PaymentStatus:  "pending",
		DeliveryStatus: "not_started",
	}, nil
}

func (s *testStore) GetByID(context.Context, int64) (repository.Order, error) {
	return repository.Order{}, repository.ErrNotFound
}

func (s *testStore) Update(_ context.Context, _ int64, _ repository.UpdateOrderParams) (repository.Order, error) {
	if s.updateErr != nil {
		return repository.Order{}, s.updateErr
	}
	return repository.Order{ID: 1}, nil
}

func (s *testStore) List(context.Context, repository.ListParams) ([]repository.Order, int, error) {
	return nil, 0, nil
}

type testBus struct {
	published []events.Event
}

func (b *testBus) Publish(_ context.Context, event events.Event) {
	b.published = append(b.published, event)
}

func (b *testBus) PublishSync(context.Context, events.Event) error { return nil }

func (b *testBus) Subscribe(string, events.Handler) {}

func TestCreateMissingLead(t *testing.T) {
	store := &testStore{leadExists: false}
	bus := &testBus{}
	svc := New(store, bus, logger.New("development"))

	_, err := svc.Create(context.Background(), transport.CreateOrderRequest{
		LeadID:      99,
		ProductType: "engagement_ring",
		Price:       150000,
		Quantity:    1,
	})
	if err == nil {
		t.Fatal("expected error for missing lead, got nil")
	}
	if kind := apperr.GetKind(err); kind != apperr.KindNotFound {
		t.Errorf("kind = %v, want KindNotFound", kind)
	}
	if store.createCalls != 0 {
		t.Errorf("Create was called %d times for a missing lead, want 0", store.createCalls)
	}
	if len(bus.published) != 0 {
		t.Errorf("published %d events, want 0", len(bus.published))
	}
}

func TestCreateLeadDeletedMidFlight(t *testing.T) {
	store := &testStore{leadExists: true, createErr: repository.ErrLeadNotFound}
	svc := New(store, &testBus{}, logger.New("development"))

	_, err := svc.Create(context.Background(), transport.CreateOrderRequest{
		LeadID:      99,
		ProductType: "engagement_ring",
		Price:       150000,
		Quantity:    1,
	})
	if kind := apperr.GetKind(err); kind != apperr.KindNotFound {
		t.Errorf("kind = %v, want KindNotFound", kind)
	}
}

func TestCreateStartsAtInitialStatuses(t *testing.T) {
	store := &testStore{leadExists: true}
	bus := &testBus{}
	svc := New(store, bus, logger.New("development"))

	resp, err := svc.Create(context.Background(), transport.CreateOrderRequest{
		LeadID:      5,
		ProductType: "pendant",
		Price:       42000,
		Quantity:    2,
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if resp.OrderStatus != transport.OrderStatusPending {
		t.Errorf("order status = %q, want pending", resp.OrderStatus)
	}
	if resp.PaymentStatus != transport.PaymentStatusPending {
		t.Errorf("payment status = %q, want pending", resp.PaymentStatus)
	}
	if resp.DeliveryStatus != transport.DeliveryStatusNotStarted {
		t.Errorf("delivery status = %q, want not_started", resp.DeliveryStatus)
	}
	if store.createdWith.LeadID != 5 || store.createdWith.Quantity != 2 {
		t.Errorf("createdWith = %+v, want leadID 5 quantity 2", store.createdWith)
	}

	if len(bus.published) != 1 {
		t.Fatalf("published %d events, want 1 OrderCreated", len(bus.published))
	}
	created, ok := bus.published[0].(events.OrderCreated)
	if !ok {
		t.Fatalf("event = %T, want OrderCreated", bus.published[0])
	}
	if created.LeadID != 5 || created.Price != 42000 {
		t.Errorf("OrderCreated = %+v, want leadID 5 price 42000", created)
	}
}

func TestUpdateMissingOrder(t *testing.T) {
	store := &testStore{updateErr: repository.ErrNotFound}
	svc := New(store, &testBus{}, logger.New("development"))

	_, err := svc.Update(context.Background(), 99, transport.UpdateOrderRequest{})
	if kind := apperr.GetKind(err); kind != apperr.KindNotFound {
		t.Errorf("kind = %v, want KindNotFound", kind)
	}
}
