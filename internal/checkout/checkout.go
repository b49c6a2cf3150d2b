// Package checkout implements the customer-facing ordering flow: a
// per-session cart and the payment step that turns it into a tracked
// order.
package checkout

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"crescendo/internal/billing"
	"crescendo/internal/models"
	"crescendo/internal/payment"
	"crescendo/internal/store"
)

var (
	// ErrEmptyCart is returned when checkout is attempted with no items.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrTableRequired is returned for dine-in checkout without a table
	// selection. The cart is preserved so the customer can pick one.
	ErrTableRequired = errors.New("please select a table to continue")
)

// Receipt summarises a successfully placed order.
type Receipt struct {
	OrderID          string  `json:"orderId"`
	Total            float64 `json:"total"`
	EstimatedMinutes int     `json:"estimatedMinutes"`
	EstimatedSeconds int     `json:"estimatedSeconds"`
	TableID          string  `json:"tableId,omitempty"`
}

// Service runs the checkout flow against the shared store and the
// simulated payment processor.
type Service struct {
	store     *store.Store
	processor *payment.Processor
	rng       *rand.Rand
	now       func() time.Time
}

// NewService creates a checkout service. A nil rng falls back to a
// time-seeded source.
func NewService(st *store.Store, processor *payment.Processor, rng *rand.Rand) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Service{store: st, processor: processor, rng: rng, now: time.Now}
}

// Checkout validates the cart, charges the payable amount and records the
// order. On any failure the cart is left untouched so the customer can
// correct and retry; on success it is emptied and a receipt with a
// four-digit order number and an 18-29 minute estimate is returned.
func (s *Service) Checkout(cart *Cart, customerName string, orderType models.OrderType, tableID string, method models.PaymentMethod) (Receipt, error) {
	if cart.Len() == 0 {
		return Receipt{}, ErrEmptyCart
	}
	if orderType == models.OrderTypeDineIn {
		if tableID == "" {
			return Receipt{}, ErrTableRequired
		}
		// check the table before charging so a conflict never strands a
		// paid order
		table, err := s.store.GetTable(tableID)
		if err != nil {
			return Receipt{}, err
		}
		if !table.Assignable() {
			return Receipt{}, fmt.Errorf("table %s is %s: %w", tableID, table.Status, store.ErrTableNotAssignable)
		}
	}

	total := billing.PayableAmount(cart.Total())
	if err := s.processor.Process(total); err != nil {
		return Receipt{}, fmt.Errorf("payment failed: %w", err)
	}

	order, err := s.recordOrder(cart, customerName, orderType, tableID, method, total)
	if err != nil {
		return Receipt{}, err
	}

	if orderType == models.OrderTypeDineIn {
		if _, err := s.store.AssignOrderToTable(tableID, order.ID); err != nil {
			return Receipt{}, err
		}
	}

	estimatedMinutes := 18 + s.rng.Intn(12)
	cart.Clear()

	return Receipt{
		OrderID:          order.ID,
		Total:            total,
		EstimatedMinutes: estimatedMinutes,
		EstimatedSeconds: estimatedMinutes * 60,
		TableID:          tableID,
	}, nil
}

// recordOrder inserts the paid order, retrying the four-digit number on
// the rare collision.
func (s *Service) recordOrder(cart *Cart, customerName string, orderType models.OrderType, tableID string, method models.PaymentMethod, total float64) (models.Order, error) {
	if customerName == "" {
		customerName = "Customer"
	}

	items := make([]models.OrderItem, 0, cart.Len())
	for i, line := range cart.Items() {
		items = append(items, models.OrderItem{
			ID:         fmt.Sprintf("OI%d-%d", s.now().UnixNano(), i),
			MenuItemID: line.MenuItemID,
			Quantity:   line.Quantity,
			Status:     models.OrderItemStatusPending,
		})
	}

	var lastErr error
	for attempt := 0; attempt < 5; attempt++ {
		order := models.Order{
			ID:            fmt.Sprintf("%d", 1000+s.rng.Intn(9000)),
			TableID:       tableID,
			CustomerName:  customerName,
			Items:         items,
			Status:        models.OrderStatusPending,
			OrderType:     orderType,
			TotalAmount:   total,
			PaymentMethod: method,
			PaymentStatus: models.PaymentStatusCompleted,
			CreatedAt:     s.now(),
		}
		if err := s.store.AddOrder(order); err != nil {
			if errors.Is(err, store.ErrDuplicateID) {
				lastErr = err
				continue
			}
			return models.Order{}, err
		}
		return order, nil
	}
	return models.Order{}, fmt.Errorf("could not allocate order number: %w", lastErr)
}
