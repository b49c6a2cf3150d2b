package models

import "time"

// TableStatus represents the occupancy state of a table
type TableStatus string

const (
	TableStatusAvailable TableStatus = "available"
	TableStatusOccupied  TableStatus = "occupied"
	TableStatusReserved  TableStatus = "reserved"
	TableStatusDirty     TableStatus = "dirty"
)

// Table represents a dining table. CurrentOrderID is a non-owning
// back-reference to at most one active order.
type Table struct {
	ID             string      `json:"id"`
	Number         int         `json:"number"`
	Capacity       int         `json:"capacity"`
	Status         TableStatus `json:"status"`
	CurrentOrderID string      `json:"currentOrderId,omitempty"`
	ReservedBy     string      `json:"reservedBy,omitempty"`
	ReservedUntil  *time.Time  `json:"reservedUntil,omitempty"`
	Location       string      `json:"location"`
}

// Assignable reports whether a table can take a new order. Dirty tables
// must be marked clean before they can be seated again.
func (t *Table) Assignable() bool {
	return t.Status == TableStatusAvailable || t.Status == TableStatusReserved
}
