package store

import (
	"fmt"

	"crescendo/internal/billing"
	"crescendo/internal/models"
)

// AddOrder inserts a new order. The caller supplies the id; reusing an
// existing id is rejected since timestamp-derived ids can collide under
// rapid calls.
func (s *Store) AddOrder(order models.Order) error {
	if err := models.ValidateOrder(&order); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID == order.ID {
			return fmt.Errorf("order %s: %w", order.ID, ErrDuplicateID)
		}
	}

	now := s.now()
	if order.CreatedAt.IsZero() {
		order.CreatedAt = now
	}
	order.UpdatedAt = now
	if order.Status == "" {
		order.Status = models.OrderStatusPending
	}

	s.orders = append(s.orders, order)
	return nil
}

// GetOrder returns the order with the given id.
func (s *Store) GetOrder(id string) (models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.orders {
		if s.orders[i].ID == id {
			return s.orders[i], nil
		}
	}
	return models.Order{}, fmt.Errorf("order %s: %w", id, ErrNotFound)
}

// UpdateOrderStatus moves an order to a new status, refreshing its
// modification time. Transitions outside the lifecycle table are rejected.
// Moving to preparing stamps the preparation start time; moving to served
// stamps the completion time.
func (s *Store) UpdateOrderStatus(id string, status models.OrderStatus) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID != id {
			continue
		}
		if !models.CanTransition(s.orders[i].Status, status) {
			return models.Order{}, fmt.Errorf("order %s: %s -> %s: %w",
				id, s.orders[i].Status, status, ErrInvalidTransition)
		}

		now := s.now()
		s.orders[i].Status = status
		s.orders[i].UpdatedAt = now
		switch status {
		case models.OrderStatusPreparing:
			if s.orders[i].PreparationStartedAt == nil {
				t := now
				s.orders[i].PreparationStartedAt = &t
			}
		case models.OrderStatusServed:
			t := now
			s.orders[i].CompletedAt = &t
		}
		return s.orders[i], nil
	}
	return models.Order{}, fmt.Errorf("order %s: %w", id, ErrNotFound)
}

// SetOrderPayment records the payment outcome for an order.
func (s *Store) SetOrderPayment(id string, method models.PaymentMethod, status models.PaymentStatus) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID != id {
			continue
		}
		s.orders[i].PaymentMethod = method
		s.orders[i].PaymentStatus = status
		s.orders[i].UpdatedAt = s.now()
		return s.orders[i], nil
	}
	return models.Order{}, fmt.Errorf("order %s: %w", id, ErrNotFound)
}

// ReplaceOrderItems swaps the item list of an order and recomputes its
// total from current menu prices, so the stored total cannot drift from
// the items it covers.
func (s *Store) ReplaceOrderItems(id string, items []models.OrderItem) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID != id {
			continue
		}
		var lines []billing.Line
		for _, item := range items {
			if item.Quantity <= 0 {
				return models.Order{}, fmt.Errorf("invalid quantity for item %s", item.MenuItemID)
			}
			if menuItem, ok := s.menuItemByID(item.MenuItemID); ok {
				lines = append(lines, billing.Line{Price: menuItem.Price, Quantity: item.Quantity})
			}
		}
		s.orders[i].Items = items
		s.orders[i].TotalAmount = billing.OrderTotal(lines)
		s.orders[i].UpdatedAt = s.now()
		return s.orders[i], nil
	}
	return models.Order{}, fmt.Errorf("order %s: %w", id, ErrNotFound)
}

// OrdersByStatus returns orders matching the status, in insertion order.
func (s *Store) OrdersByStatus(status models.OrderStatus) []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matched []models.Order
	for i := range s.orders {
		if s.orders[i].Status == status {
			matched = append(matched, s.orders[i])
		}
	}
	return matched
}

// Orders returns a copy of all orders in insertion order.
func (s *Store) Orders() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	orders := make([]models.Order, len(s.orders))
	copy(orders, s.orders)
	return orders
}
