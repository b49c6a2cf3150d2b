// Package kitchen derives preparation timing from order state: the
// remaining-minutes projection shown on the order board and the countdown
// driving the customer tracking view.
package kitchen

import (
	"math"
	"time"

	"crescendo/internal/models"
)

// MaxPrepTime returns the prep time of the slowest dish in the order.
// One pass expedites all items in parallel, so the slowest item bounds
// the whole order. Items referencing unknown menu ids contribute zero.
func MaxPrepTime(items []models.OrderItem, lookup func(id string) (models.MenuItem, bool)) time.Duration {
	var max time.Duration
	for _, item := range items {
		if menuItem, ok := lookup(item.MenuItemID); ok && menuItem.PrepTime > max {
			max = menuItem.PrepTime
		}
	}
	return max
}

// RemainingMinutes projects how many minutes remain until the order is
// ready. Before preparation starts the full prep time of the slowest item
// is reported; once started, elapsed time is subtracted and the result is
// rounded up and clamped at zero.
func RemainingMinutes(order *models.Order, lookup func(id string) (models.MenuItem, bool), now time.Time) int {
	maxPrep := MaxPrepTime(order.Items, lookup)
	if order.PreparationStartedAt == nil {
		return int(math.Ceil(maxPrep.Minutes()))
	}
	elapsed := now.Sub(*order.PreparationStartedAt)
	remaining := math.Ceil(maxPrep.Minutes() - elapsed.Minutes())
	if remaining < 0 {
		return 0
	}
	return int(remaining)
}
