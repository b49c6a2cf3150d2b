package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"crescendo/internal/checkout"
	"crescendo/internal/models"
	"crescendo/internal/payment"
	"crescendo/internal/store"
)

// CheckoutRequest carries the customer's cart through the payment step.
// The cart itself lives client-side per session; it is only transmitted
// here, never stored, and the client keeps it when checkout fails.
type CheckoutRequest struct {
	CustomerName  string              `json:"customerName"`
	OrderType     string              `json:"orderType"`
	TableID       string              `json:"tableId"`
	PaymentMethod string              `json:"paymentMethod"`
	Items         []checkout.CartItem `json:"items"`
}

// Checkout runs the customer ordering flow: validation, simulated
// payment, order creation and table assignment for dine-in.
func (s *Server) Checkout(c *gin.Context) {
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cart := checkout.NewCart()
	for _, item := range req.Items {
		cart.Add(item)
	}

	receipt, err := s.checkout.Checkout(cart, req.CustomerName, models.OrderType(req.OrderType), req.TableID, models.PaymentMethod(req.PaymentMethod))
	if err != nil {
		switch {
		case errors.Is(err, checkout.ErrEmptyCart), errors.Is(err, checkout.ErrTableRequired):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, payment.ErrDeclined):
			s.collectors.PaymentOutcomes.WithLabelValues("declined").Inc()
			c.JSON(http.StatusPaymentRequired, gin.H{"error": "Payment failed. Please try a different card."})
		case errors.Is(err, store.ErrTableNotAssignable):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}

	s.collectors.PaymentOutcomes.WithLabelValues("completed").Inc()
	s.collectors.OrdersCreated.WithLabelValues(req.OrderType).Inc()
	s.monitor.IncrementMetric("orders_created")
	s.refreshGauges()

	c.JSON(http.StatusCreated, receipt)
}
