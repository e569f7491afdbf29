// Package service implements order creation and updates, including the
// lead follow_up_status side effect of order creation.
package service

import (
	"context"
	"errors"

	"varniya_crm_backend/internal/events"
	"varniya_crm_backend/internal/orders/repository"
	"varniya_crm_backend/internal/orders/transport"
	"varniya_crm_backend/platform/apperr"
	"varniya_crm_backend/platform/logger"
)

const defaultListLimit = 50

// Store is the persistence surface the service needs from the orders
// repository.
type Store interface {
	LeadExists(ctx context.Context, leadID int64) (bool, error)
	Create(ctx context.Context, params repository.CreateOrderParams) (repository.Order, error)
	GetByID(ctx context.Context, id int64) (repository.Order, error)
	Update(ctx context.Context, id int64, params repository.UpdateOrderParams) (repository.Order, error)
	List(ctx context.Context, params repository.ListParams) ([]repository.Order, int, error)
}

type Service struct {
	repo Store
	bus  events.Bus
	log  *logger.Logger
}

func New(repo Store, bus events.Bus, log *logger.Logger) *Service {
	return &Service{repo: repo, bus: bus, log: log}
}

// Create records an order for an existing lead. The three status axes always
// start at pending/pending/not_started, whatever the caller sends, and the
// owning lead is marked sale_completed in the same transaction.
func (s *Service) Create(ctx context.Context, req transport.CreateOrderRequest) (transport.OrderResponse, error) {
	// The lead check is explicit here rather than left to a constraint, so
	// the failure surfaces as NotFound before anything is written.
	exists, err := s.repo.LeadExists(ctx, req.LeadID)
	if err != nil {
		s.log.DatabaseError("orders.lead_exists", err)
		return transport.OrderResponse{}, apperr.Wrap(apperr.KindInternal, "failed to check lead", err)
	}
	if !exists {
		return transport.OrderResponse{}, apperr.NotFound("lead %d not found", req.LeadID)
	}

	order, err := s.repo.Create(ctx, repository.CreateOrderParams{
		LeadID:            req.LeadID,
		ProductType:       req.ProductType,
		Price:             req.Price,
		Quantity:          req.Quantity,
		SpecialNotes:      req.SpecialNotes,
		EstimatedDelivery: req.EstimatedDelivery,
	})
	if errors.Is(err, repository.ErrLeadNotFound) {
		return transport.OrderResponse{}, apperr.NotFound("lead %d not found", req.LeadID)
	}
	if err != nil {
		s.log.DatabaseError("orders.create", err)
		return transport.OrderResponse{}, apperr.Wrap(apperr.KindInternal, "failed to create order", err)
	}

	s.bus.Publish(ctx, events.OrderCreated{
		BaseEvent:   events.NewBaseEvent(),
		OrderID:     order.ID,
		LeadID:      order.LeadID,
		ProductType: order.ProductType,
		Price:       order.Price,
		Quantity:    order.Quantity,
	})

	return toOrderResponse(order), nil
}

// Update applies a partial update over the patchable fields. Statuses move
// independently; order_status=delivered does not require delivery_status to
// agree.
func (s *Service) Update(ctx context.Context, id int64, req transport.UpdateOrderRequest) (transport.OrderResponse, error) {
	order, err := s.repo.Update(ctx, id, repository.UpdateOrderParams{
		OrderStatus:          statusString(req.OrderStatus),
		PaymentStatus:        paymentString(req.PaymentStatus),
		DeliveryStatus:       deliveryString(req.DeliveryStatus),
		SpecialNotes:         req.SpecialNotes.Value,
		SpecialNotesSet:      req.SpecialNotes.Set,
		EstimatedDelivery:    req.EstimatedDelivery.Value,
		EstimatedDeliverySet: req.EstimatedDelivery.Set,
		ActualDelivery:       req.ActualDelivery.Value,
		ActualDeliverySet:    req.ActualDelivery.Set,
	})
	if errors.Is(err, repository.ErrNotFound) {
		return transport.OrderResponse{}, apperr.NotFound("order %d not found", id)
	}
	if err != nil {
		s.log.DatabaseError("orders.update", err)
		return transport.OrderResponse{}, apperr.Wrap(apperr.KindInternal, "failed to update order", err)
	}

	return toOrderResponse(order), nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (transport.OrderResponse, error) {
	order, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return transport.OrderResponse{}, apperr.NotFound("order %d not found", id)
	}
	if err != nil {
		s.log.DatabaseError("orders.get", err)
		return transport.OrderResponse{}, apperr.Wrap(apperr.KindInternal, "failed to load order", err)
	}
	return toOrderResponse(order), nil
}

func (s *Service) List(ctx context.Context, req transport.ListOrdersRequest) (transport.OrderListResponse, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	orders, total, err := s.repo.List(ctx, repository.ListParams{
		LeadID:         req.LeadID,
		OrderStatus:    statusString(req.OrderStatus),
		PaymentStatus:  paymentString(req.PaymentStatus),
		DeliveryStatus: deliveryString(req.DeliveryStatus),
		Limit:          limit,
		Offset:         req.Offset,
	})
	if err != nil {
		s.log.DatabaseError("orders.list", err)
		return transport.OrderListResponse{}, apperr.Wrap(apperr.KindInternal, "failed to list orders", err)
	}

	items := make([]transport.OrderResponse, 0, len(orders))
	for _, order := range orders {
		items = append(items, toOrderResponse(order))
	}

	return transport.OrderListResponse{
		Items:  items,
		Total:  total,
		Limit:  limit,
		Offset: req.Offset,
	}, nil
}

func statusString(s *transport.OrderStatus) *string {
	if s == nil {
		return nil
	}
	v := string(*s)
	return &v
}

func paymentString(s *transport.PaymentStatus) *string {
	if s == nil {
		return nil
	}
	v := string(*s)
	return &v
}

func deliveryString(s *transport.DeliveryStatus) *string {
	if s == nil {
		return nil
	}
	v := string(*s)
	return &v
}

func toOrderResponse(order repository.Order) transport.OrderResponse {
	return transport.OrderResponse{
		ID:                order.ID,
		LeadID:            order.LeadID,
		ProductType:       order.ProductType,
		Price:             order.Price,
		Quantity:          order.Quantity,
		SpecialNotes:      order.SpecialNotes,
		OrderStatus:       transport.OrderStatus(order.OrderStatus),
		PaymentStatus:     transport.PaymentStatus(order.PaymentStatus),
		DeliveryStatus:    transport.DeliveryStatus(order.DeliveryStatus),
		EstimatedDelivery: order.EstimatedDelivery,
		ActualDelivery:    order.ActualDelivery,
		CreatedAt:         order.CreatedAt,
		UpdatedAt:         order.UpdatedAt,
	}
}
