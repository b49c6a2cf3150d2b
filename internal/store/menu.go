package store

import (
	"fmt"

	"crescendo/internal/models"
)

// AddMenuItem registers a dish on the menu.
func (s *Store) AddMenuItem(item models.MenuItem) error {
	if err := models.ValidateMenuItem(&item); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.menuItemByID(item.ID); ok {
		return fmt.Errorf("menu item %s: %w", item.ID, ErrDuplicateID)
	}
	s.menuItems = append(s.menuItems, item)
	return nil
}

// menuItemByID looks up a menu item without locking; callers hold the lock.
func (s *Store) menuItemByID(id string) (models.MenuItem, bool) {
	for i := range s.menuItems {
		if s.menuItems[i].ID == id {
			return s.menuItems[i], true
		}
	}
	return models.MenuItem{}, false
}

// GetMenuItem returns the menu item with the given id.
func (s *Store) GetMenuItem(id string) (models.MenuItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if item, ok := s.menuItemByID(id); ok {
		return item, nil
	}
	return models.MenuItem{}, fmt.Errorf("menu item %s: %w", id, ErrNotFound)
}

// MenuItems returns a copy of the full menu.
func (s *Store) MenuItems() []models.MenuItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]models.MenuItem, len(s.menuItems))
	copy(items, s.menuItems)
	return items
}

// MenuByCategory returns menu items in the given category.
func (s *Store) MenuByCategory(category string) []models.MenuItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matched []models.MenuItem
	for i := range s.menuItems {
		if s.menuItems[i].Category == category {
			matched = append(matched, s.menuItems[i])
		}
	}
	return matched
}

// SetMenuItemAvailability toggles whether a dish can currently be ordered.
func (s *Store) SetMenuItemAvailability(id string, available bool) (models.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.menuItems {
		if s.menuItems[i].ID == id {
			s.menuItems[i].Available = available
			return s.menuItems[i], nil
		}
	}
	return models.MenuItem{}, fmt.Errorf("menu item %s: %w", id, ErrNotFound)
}
