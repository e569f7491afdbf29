package transport

import "time"

// Enum values
type OrderStatus string

const (
	OrderStatusPending          OrderStatus = "pending"
	OrderStatusConfirmed        OrderStatus = "confirmed"
	OrderStatusInProduction     OrderStatus = "in_production"
	OrderStatusReadyForDelivery OrderStatus = "ready_for_delivery"
	OrderStatusDelivered        OrderStatus = "delivered"
	OrderStatusCancelled        OrderStatus = "cancelled"
)

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPartial  PaymentStatus = "partial"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

type DeliveryStatus string

const (
	DeliveryStatusNotStarted DeliveryStatus = "not_started"
	DeliveryStatusInTransit  DeliveryStatus = "in_transit"
	DeliveryStatusDelivered  DeliveryStatus = "delivered"
	DeliveryStatusFailed     DeliveryStatus = "failed"
)

// Request DTOs
type CreateOrderRequest struct {
	LeadID            int64      `json:"leadId" validate:"required,min=1"`
	ProductType       string     `json:"productType" validate:"required,min=1,max=200"`
	Price             float64    `json:"price" validate:"required,gt=0"`
	Quantity          int        `json:"quantity" validate:"required,min=1"`
	SpecialNotes      *string    `json:"specialNotes,omitempty" validate:"omitempty,max=2000"`
	EstimatedDelivery *time.Time `json:"estimatedDelivery,omitempty"`
}

// UpdateOrderRequest covers the six patchable fields. The three status axes
// are independent: no cross-axis validation is applied.
type UpdateOrderRequest struct {
	OrderStatus       *OrderStatus    `json:"orderStatus,omitempty" validate:"omitempty,oneof=pending confirmed in_production ready_for_delivery delivered cancelled"`
	PaymentStatus     *PaymentStatus  `json:"paymentStatus,omitempty" validate:"omitempty,oneof=pending partial paid refunded"`
	DeliveryStatus    *DeliveryStatus `json:"deliveryStatus,omitempty" validate:"omitempty,oneof=not_started in_transit delivered failed"`
	SpecialNotes      OptionalString  `json:"specialNotes,omitempty" validate:"-"`
	EstimatedDelivery OptionalTime    `json:"estimatedDelivery,omitempty" validate:"-"`
	ActualDelivery    OptionalTime    `json:"actualDelivery,omitempty" validate:"-"`
}

type ListOrdersRequest struct {
	LeadID         *int64          `form:"leadId" validate:"omitempty,min=1"`
	OrderStatus    *OrderStatus    `form:"orderStatus" validate:"omitempty,oneof=pending confirmed in_production ready_for_delivery delivered cancelled"`
	PaymentStatus  *PaymentStatus  `form:"paymentStatus" validate:"omitempty,oneof=pending partial paid refunded"`
	DeliveryStatus *DeliveryStatus `form:"deliveryStatus" validate:"omitempty,oneof=not_started in_transit delivered failed"`
	Limit          int             `form:"limit" validate:"omitempty,min=1,max=200"`
	Offset         int             `form:"offset" validate:"omitempty,min=0"`
}

// Response DTOs
type OrderResponse struct {
	ID                int64          `json:"id"`
	LeadID            int64          `json:"leadId"`
	ProductType       string         `json:"productType"`
	Price             float64        `json:"price"`
	Quantity          int            `json:"quantity"`
	SpecialNotes      *string        `json:"specialNotes,omitempty"`
	OrderStatus       OrderStatus    `json:"orderStatus"`
	PaymentStatus     PaymentStatus  `json:"paymentStatus"`
	DeliveryStatus    DeliveryStatus `json:"deliveryStatus"`
	EstimatedDelivery *time.Time     `json:"estimatedDelivery,omitempty"`
	ActualDelivery    *time.Time     `json:"actualDelivery,omitempty"`
	CreatedAt         time.Time      `json:"createdAt"`
	UpdatedAt         time.Time      `json:"updatedAt"`
}

type OrderListResponse struct {
	Items  []OrderResponse `json:"items"`
	Total  int             `json:"total"`
	Limit  int             `json:"limit"`
	Offset int             `json:"offset"`
}
