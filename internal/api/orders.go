package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	qrcode "github.com/skip2/go-qrcode"

	"crescendo/internal/billing"
	"crescendo/internal/kitchen"
	"crescendo/internal/live"
	"crescendo/internal/models"
	"crescendo/internal/store"
)

// CreateOrderRequest is the staff order-entry payload.
type CreateOrderRequest struct {
	CustomerName string `json:"customerName"`
	OrderType    string `json:"orderType"`
	TableID      string `json:"tableId"`
	Notes        string `json:"notes"`
	Items        []struct {
		MenuItemID          string `json:"menuItemId"`
		Quantity            int    `json:"quantity"`
		SpecialInstructions string `json:"specialInstructions"`
	} `json:"items"`
}

// ListOrders returns all orders, optionally filtered by status.
func (s *Server) ListOrders(c *gin.Context) {
	if status := c.Query("status"); status != "" {
		c.JSON(http.StatusOK, s.store.OrdersByStatus(models.OrderStatus(status)))
		return
	}
	c.JSON(http.StatusOK, s.store.Orders())
}

// GetOrder returns a single order by id.
func (s *Server) GetOrder(c *gin.Context) {
	order, err := s.store.GetOrder(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	c.JSON(http.StatusOK, order)
}

// CreateOrder handles staff order entry. Customer name and at least one
// item are required; no partial order is created on validation failure.
func (s *Server) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	now := time.Now()
	orderID := fmt.Sprintf("O%d", now.UnixNano())

	items := make([]models.OrderItem, 0, len(req.Items))
	for i, line := range req.Items {
		items = append(items, models.OrderItem{
			ID:                  fmt.Sprintf("OI%d-%d", now.UnixNano(), i),
			MenuItemID:          line.MenuItemID,
			Quantity:            line.Quantity,
			SpecialInstructions: line.SpecialInstructions,
			Status:              models.OrderItemStatusPending,
		})
	}

	order := models.Order{
		ID:            orderID,
		TableID:       req.TableID,
		CustomerName:  req.CustomerName,
		Items:         items,
		Status:        models.OrderStatusPending,
		OrderType:     models.OrderType(req.OrderType),
		TotalAmount:   billing.ItemsTotal(items, s.menuLookup()),
		PaymentStatus: models.PaymentStatusPending,
		Notes:         req.Notes,
		CreatedAt:     now,
	}

	if err := s.store.AddOrder(order); err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, store.ErrDuplicateID) {
			status = http.StatusConflict
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	if order.OrderType == models.OrderTypeDineIn && order.TableID != "" {
		if _, err := s.store.AssignOrderToTable(order.TableID, order.ID); err != nil {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
	}

	s.collectors.OrdersCreated.WithLabelValues(string(order.OrderType)).Inc()
	s.monitor.IncrementMetric("orders_created")
	s.refreshGauges()

	c.JSON(http.StatusCreated, order)
}

// UpdateOrderStatus moves an order through its lifecycle and broadcasts
// the change to tracking clients.
func (s *Server) UpdateOrderStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := s.store.UpdateOrderStatus(c.Param("id"), models.OrderStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		case errors.Is(err, store.ErrInvalidTransition):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}

	s.broadcastOrder(&order)
	s.refreshGauges()

	c.JSON(http.StatusOK, order)
}

// CancelOrder cancels an order. Orders already served cannot be cancelled.
func (s *Server) CancelOrder(c *gin.Context) {
	order, err := s.store.UpdateOrderStatus(c.Param("id"), models.OrderStatusCancelled)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		case errors.Is(err, store.ErrInvalidTransition):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}

	s.broadcastOrder(&order)
	s.refreshGauges()

	c.JSON(http.StatusOK, gin.H{"message": "Order cancelled successfully"})
}

// GetOrderETA returns the projected minutes until the order is ready.
func (s *Server) GetOrderETA(c *gin.Context) {
	order, err := s.store.GetOrder(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	remaining := kitchen.RemainingMinutes(&order, s.menuLookup(), time.Now())
	c.JSON(http.StatusOK, gin.H{
		"orderId":          order.ID,
		"status":           order.Status,
		"remainingMinutes": remaining,
	})
}

// GetOrderQRCode renders a QR code pointing at the order tracking URL.
func (s *Server) GetOrderQRCode(c *gin.Context) {
	order, err := s.store.GetOrder(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	png, err := qrcode.Encode(fmt.Sprintf("/api/v1/orders/%s/eta", order.ID), qrcode.Medium, 256)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

// menuLookup adapts the store's menu getter to the lookup signature used
// by billing and the projector.
func (s *Server) menuLookup() func(id string) (models.MenuItem, bool) {
	return func(id string) (models.MenuItem, bool) {
		item, err := s.store.GetMenuItem(id)
		return item, err == nil
	}
}

func (s *Server) broadcastOrder(order *models.Order) {
	s.hub.Broadcast(live.OrderEvent{
		OrderID:          order.ID,
		Status:           string(order.Status),
		RemainingMinutes: kitchen.RemainingMinutes(order, s.menuLookup(), time.Now()),
		Timestamp:        time.Now(),
	})
}
