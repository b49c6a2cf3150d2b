package store

import (
	"fmt"

	"crescendo/internal/models"
)

// Inventory returns a copy of all inventory items.
func (s *Store) Inventory() []models.InventoryItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]models.InventoryItem, len(s.inventory))
	copy(items, s.inventory)
	return items
}

// SetInventoryQuantity overwrites the stock level of an item.
func (s *Store) SetInventoryQuantity(id string, quantity float64) (models.InventoryItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.inventory {
		if s.inventory[i].ID == id {
			s.inventory[i].Quantity = quantity
			return s.inventory[i], nil
		}
	}
	return models.InventoryItem{}, fmt.Errorf("inventory item %s: %w", id, ErrNotFound)
}

// RestockInventoryItem adds stock and stamps the restock time.
func (s *Store) RestockInventoryItem(id string, amount float64) (models.InventoryItem, error) {
	if amount <= 0 {
		return models.InventoryItem{}, fmt.Errorf("restock amount must be positive")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.inventory {
		if s.inventory[i].ID == id {
			s.inventory[i].Quantity += amount
			s.inventory[i].LastRestocked = s.now()
			return s.inventory[i], nil
		}
	}
	return models.InventoryItem{}, fmt.Errorf("inventory item %s: %w", id, ErrNotFound)
}

// LowStockItems returns every item at or below its reorder level. The set
// is derived on each call; inventory is small enough that a linear scan
// beats maintaining a cache.
func (s *Store) LowStockItems() []models.InventoryItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var low []models.InventoryItem
	for i := range s.inventory {
		if s.inventory[i].IsLowStock() {
			low = append(low, s.inventory[i])
		}
	}
	return low
}
