package models

import "time"

// ReservationStatus represents the state of a reservation
type ReservationStatus string

const (
	ReservationStatusConfirmed ReservationStatus = "confirmed"
	ReservationStatusCancelled ReservationStatus = "cancelled"
	ReservationStatusCompleted ReservationStatus = "completed"
)

// Reservation represents a booked table reservation
type Reservation struct {
	ID              string            `json:"id"`
	CustomerName    string            `json:"customerName"`
	CustomerPhone   string            `json:"customerPhone"`
	NumberOfGuests  int               `json:"numberOfGuests"`
	ReservedDate    time.Time         `json:"reservedDate"`
	ReservedTime    string            `json:"reservedTime"`
	SpecialRequests string            `json:"specialRequests,omitempty"`
	Status          ReservationStatus `json:"status"`
}
