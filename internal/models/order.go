package models

import (
	"fmt"
	"time"
)

// OrderStatus represents the possible states of an order
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusReady     OrderStatus = "ready"
	OrderStatusServed    OrderStatus = "served"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// OrderItemStatus represents the per-item preparation state
type OrderItemStatus string

const (
	OrderItemStatusPending   OrderItemStatus = "pending"
	OrderItemStatusPreparing OrderItemStatus = "preparing"
	OrderItemStatusReady     OrderItemStatus = "ready"
)

// OrderType represents how the order is fulfilled
type OrderType string

const (
	OrderTypeDineIn   OrderType = "dine-in"
	OrderTypeTakeaway OrderType = "takeaway"
	OrderTypeDelivery OrderType = "delivery"
)

// PaymentStatus represents the payment state of an order
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
)

// PaymentMethod represents how an order is paid
type PaymentMethod string

const (
	PaymentMethodCash   PaymentMethod = "cash"
	PaymentMethodCard   PaymentMethod = "card"
	PaymentMethodOnline PaymentMethod = "online"
)

// OrderItem represents a line in an order. It references a menu item by
// id and is owned exclusively by its parent order.
type OrderItem struct {
	ID                  string          `json:"id"`
	MenuItemID          string          `json:"menuItemId"`
	Quantity            int             `json:"quantity"`
	SpecialInstructions string          `json:"specialInstructions,omitempty"`
	Status              OrderItemStatus `json:"status"`
}

// Order represents a customer order
type Order struct {
	ID                   string        `json:"id"`
	TableID              string        `json:"tableId,omitempty"`
	CustomerName         string        `json:"customerName"`
	Items                []OrderItem   `json:"items"`
	Status               OrderStatus   `json:"status"`
	OrderType            OrderType     `json:"orderType"`
	TotalAmount          float64       `json:"totalAmount"`
	PaymentMethod        PaymentMethod `json:"paymentMethod,omitempty"`
	PaymentStatus        PaymentStatus `json:"paymentStatus"`
	Notes                string        `json:"notes,omitempty"`
	CreatedAt            time.Time     `json:"createdAt"`
	UpdatedAt            time.Time     `json:"updatedAt"`
	PreparationStartedAt *time.Time    `json:"preparationStartedAt,omitempty"`
	CompletedAt          *time.Time    `json:"completedAt,omitempty"`
}

// orderTransitions defines the allowed status progression. Orders move
// monotonically through the kitchen; cancellation is possible from any
// state before the order is served.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:   {OrderStatusConfirmed, OrderStatusCancelled},
	OrderStatusConfirmed: {OrderStatusPreparing, OrderStatusCancelled},
	OrderStatusPreparing: {OrderStatusReady, OrderStatusCancelled},
	OrderStatusReady:     {OrderStatusServed, OrderStatusCancelled},
	OrderStatusServed:    {},
	OrderStatusCancelled: {},
}

// CanTransition reports whether an order may move from one status to another.
func CanTransition(from, to OrderStatus) bool {
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsActive reports whether the order is still in the kitchen pipeline.
func (o *Order) IsActive() bool {
	switch o.Status {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusPreparing, OrderStatusReady:
		return true
	}
	return false
}

// ValidateOrder validates a new order before it enters the store
func ValidateOrder(order *Order) error {
	if order.ID == "" {
		return fmt.Errorf("order id is required")
	}
	if order.CustomerName == "" {
		return fmt.Errorf("customer name is required")
	}
	if len(order.Items) == 0 {
		return fmt.Errorf("order must have at least one item")
	}
	for _, item := range order.Items {
		if item.Quantity <= 0 {
			return fmt.Errorf("invalid quantity for item %s", item.MenuItemID)
		}
	}
	switch order.OrderType {
	case OrderTypeDineIn, OrderTypeTakeaway, OrderTypeDelivery:
	default:
		return fmt.Errorf("invalid order type: %s", order.OrderType)
	}
	return nil
}
