package store

import (
	"fmt"

	"crescendo/internal/models"
)

// AddTable registers a table in the floor plan.
func (s *Store) AddTable(table models.Table) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tables {
		if s.tables[i].ID == table.ID {
			return fmt.Errorf("table %s: %w", table.ID, ErrDuplicateID)
		}
	}
	if table.Status == "" {
		table.Status = models.TableStatusAvailable
	}
	s.tables = append(s.tables, table)
	return nil
}

// GetTable returns the table with the given id.
func (s *Store) GetTable(id string) (models.Table, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.tables {
		if s.tables[i].ID == id {
			return s.tables[i], nil
		}
	}
	return models.Table{}, fmt.Errorf("table %s: %w", id, ErrNotFound)
}

// AssignOrderToTable couples an order to a table and marks it occupied.
// Occupied and dirty tables are refused: a table must be released and
// marked clean before it can seat a new party.
func (s *Store) AssignOrderToTable(tableID, orderID string) (models.Table, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tables {
		if s.tables[i].ID != tableID {
			continue
		}
		if !s.tables[i].Assignable() {
			return models.Table{}, fmt.Errorf("table %s is %s: %w",
				tableID, s.tables[i].Status, ErrTableNotAssignable)
		}
		s.tables[i].CurrentOrderID = orderID
		s.tables[i].Status = models.TableStatusOccupied
		return s.tables[i], nil
	}
	return models.Table{}, fmt.Errorf("table %s: %w", tableID, ErrNotFound)
}

// ReleaseTable decouples the current order and marks the table dirty.
// The table only becomes available again through an explicit clean via
// SetTableStatus.
func (s *Store) ReleaseTable(tableID string) (models.Table, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tables {
		if s.tables[i].ID != tableID {
			continue
		}
		s.tables[i].CurrentOrderID = ""
		s.tables[i].Status = models.TableStatusDirty
		return s.tables[i], nil
	}
	return models.Table{}, fmt.Errorf("table %s: %w", tableID, ErrNotFound)
}

// SetTableStatus overrides a table's status directly, used for manual
// cleaning (dirty -> available) and reservation check-in flows.
func (s *Store) SetTableStatus(tableID string, status models.TableStatus) (models.Table, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tables {
		if s.tables[i].ID != tableID {
			continue
		}
		s.tables[i].Status = status
		return s.tables[i], nil
	}
	return models.Table{}, fmt.Errorf("table %s: %w", tableID, ErrNotFound)
}

// Tables returns a copy of all tables.
func (s *Store) Tables() []models.Table {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tables := make([]models.Table, len(s.tables))
	copy(tables, s.tables)
	return tables
}
