package store

import (
	"fmt"

	"crescendo/internal/models"
)

// Staff returns a copy of all staff members.
func (s *Store) Staff() []models.Staff {
	s.mu.RLock()
	defer s.mu.RUnlock()

	staff := make([]models.Staff, len(s.staff))
	copy(staff, s.staff)
	return staff
}

// UpdateStaffStatus sets the working state of a staff member.
func (s *Store) UpdateStaffStatus(id string, status models.StaffStatus) (models.Staff, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.staff {
		if s.staff[i].ID == id {
			s.staff[i].Status = status
			return s.staff[i], nil
		}
	}
	return models.Staff{}, fmt.Errorf("staff %s: %w", id, ErrNotFound)
}
