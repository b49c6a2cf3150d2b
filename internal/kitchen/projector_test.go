package kitchen

import (
	"testing"
	"time"

	"crescendo/internal/models"
)

var menu = map[string]models.MenuItem{
	"M001": {ID: "M001", Name: "Pizza", PrepTime: 18 * time.Minute},
	"M002": {ID: "M002", Name: "Salmon", PrepTime: 25 * time.Minute},
	"M003": {ID: "M003", Name: "Lemonade", PrepTime: 3 * time.Minute},
}

func lookup(id string) (models.MenuItem, bool) {
	item, ok := menu[id]
	return item, ok
}

func orderWithItems(ids ...string) *models.Order {
	order := &models.Order{ID: "O1", Status: models.OrderStatusPreparing}
	for _, id := range ids {
		order.Items = append(order.Items, models.OrderItem{MenuItemID: id, Quantity: 1})
	}
	return order
}

func TestRemainingMinutes_BeforePreparationStarts(t *testing.T) {
	order := orderWithItems("M001", "M002", "M003")
	// the slowest dish bounds the whole order
	if got := RemainingMinutes(order, lookup, time.Now()); got != 25 {
		t.Errorf("expected 25 minutes, got %d", got)
	}
}

func TestRemainingMinutes_AtPreparationStart(t *testing.T) {
	start := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	order := orderWithItems("M001", "M002")
	order.PreparationStartedAt = &start

	if got := RemainingMinutes(order, lookup, start); got != 25 {
		t.Errorf("expected full prep time at start, got %d", got)
	}
}

func TestRemainingMinutes_PartialElapsedRoundsUp(t *testing.T) {
	start := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	order := orderWithItems("M002")
	order.PreparationStartedAt = &start

	now := start.Add(10*time.Minute + 30*time.Second)
	if got := RemainingMinutes(order, lookup, now); got != 15 {
		t.Errorf("expected ceil(14.5) = 15, got %d", got)
	}
}

func TestRemainingMinutes_ClampedAtZero(t *testing.T) {
	start := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	order := orderWithItems("M001")
	order.PreparationStartedAt = &start

	now := start.Add(2 * time.Hour)
	if got := RemainingMinutes(order, lookup, now); got != 0 {
		t.Errorf("expected 0 for long-elapsed order, got %d", got)
	}
}

func TestRemainingMinutes_UnknownMenuItems(t *testing.T) {
	order := orderWithItems("missing")
	if got := RemainingMinutes(order, lookup, time.Now()); got != 0 {
		t.Errorf("expected unknown items to contribute zero, got %d", got)
	}
}
