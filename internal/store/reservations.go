package store

import (
	"fmt"

	"crescendo/internal/models"
)

// AddReservation inserts a new reservation.
func (s *Store) AddReservation(res models.Reservation) error {
	if res.ID == "" {
		return fmt.Errorf("reservation id is required")
	}
	if res.CustomerName == "" {
		return fmt.Errorf("customer name is required")
	}
	if res.NumberOfGuests <= 0 {
		return fmt.Errorf("number of guests must be positive")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.reservations {
		if s.reservations[i].ID == res.ID {
			return fmt.Errorf("reservation %s: %w", res.ID, ErrDuplicateID)
		}
	}
	if res.Status == "" {
		res.Status = models.ReservationStatusConfirmed
	}
	s.reservations = append(s.reservations, res)
	return nil
}

// UpdateReservationStatus sets the state of a reservation.
func (s *Store) UpdateReservationStatus(id string, status models.ReservationStatus) (models.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.reservations {
		if s.reservations[i].ID == id {
			s.reservations[i].Status = status
			return s.reservations[i], nil
		}
	}
	return models.Reservation{}, fmt.Errorf("reservation %s: %w", id, ErrNotFound)
}

// Reservations returns a copy of all reservations.
func (s *Store) Reservations() []models.Reservation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	reservations := make([]models.Reservation, len(s.reservations))
	copy(reservations, s.reservations)
	return reservations
}
