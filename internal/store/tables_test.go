package store

import (
	"errors"
	"testing"

	"crescendo/internal/models"
)

func tableFixture() *Store {
	s := New()
	s.mu.Lock()
	s.tables = []models.Table{
		{ID: "T001", Number: 1, Capacity: 2, Status: models.TableStatusAvailable, Location: "indoor"},
		{ID: "T002", Number: 2, Capacity: 4, Status: models.TableStatusReserved, Location: "indoor"},
	}
	s.mu.Unlock()
	return s
}

func TestAssignOrderToTable(t *testing.T) {
	s := tableFixture()

	table, err := s.AssignOrderToTable("T001", "O1")
	if err != nil {
		t.Fatalf("assign failed: %v", err)
	}
	if table.Status != models.TableStatusOccupied {
		t.Errorf("expected occupied, got %s", table.Status)
	}
	if table.CurrentOrderID != "O1" {
		t.Errorf("expected currentOrderId O1, got %q", table.CurrentOrderID)
	}
}

func TestAssignOrderToTable_ReservedIsAssignable(t *testing.T) {
	s := tableFixture()
	if _, err := s.AssignOrderToTable("T002", "O1"); err != nil {
		t.Errorf("reserved table should accept check-in, got %v", err)
	}
}

func TestAssignOrderToTable_ConflictOnOccupied(t *testing.T) {
	s := tableFixture()
	s.AssignOrderToTable("T001", "O1")

	_, err := s.AssignOrderToTable("T001", "O2")
	if !errors.Is(err, ErrTableNotAssignable) {
		t.Fatalf("expected ErrTableNotAssignable, got %v", err)
	}

	// the original association survives the rejected overwrite
	table, _ := s.GetTable("T001")
	if table.CurrentOrderID != "O1" {
		t.Errorf("expected currentOrderId O1 preserved, got %q", table.CurrentOrderID)
	}
}

func TestReleaseTable_MarksDirty(t *testing.T) {
	s := tableFixture()
	s.AssignOrderToTable("T001", "O1")

	table, err := s.ReleaseTable("T001")
	if err != nil {
		t.Fatalf("release failed: %v", err)
	}
	if table.Status != models.TableStatusDirty {
		t.Errorf("expected dirty, got %s", table.Status)
	}
	if table.CurrentOrderID != "" {
		t.Errorf("expected currentOrderId cleared, got %q", table.CurrentOrderID)
	}
}

func TestReleaseThenCleanBeforeReassign(t *testing.T) {
	s := tableFixture()
	s.AssignOrderToTable("T001", "O1")
	s.ReleaseTable("T001")

	// dirty is not directly assignable
	if _, err := s.AssignOrderToTable("T001", "O2"); !errors.Is(err, ErrTableNotAssignable) {
		t.Fatalf("expected dirty table to refuse assignment, got %v", err)
	}

	// manual clean makes it available again
	if _, err := s.SetTableStatus("T001", models.TableStatusAvailable); err != nil {
		t.Fatalf("clean failed: %v", err)
	}
	if _, err := s.AssignOrderToTable("T001", "O2"); err != nil {
		t.Errorf("expected cleaned table to accept assignment, got %v", err)
	}
}
