package store

import "errors"

var (
	// ErrNotFound is returned when no entity matches the requested id.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateID is returned when an insert reuses an existing id.
	ErrDuplicateID = errors.New("duplicate id")

	// ErrInvalidTransition is returned when an order status update would
	// skip or reverse the lifecycle order.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrTableNotAssignable is returned when an order is assigned to a
	// table that is occupied or has not been cleaned since its last party.
	ErrTableNotAssignable = errors.New("table is not assignable")
)
