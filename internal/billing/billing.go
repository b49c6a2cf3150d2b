// Package billing computes order totals and payable amounts. All
// functions are pure; currency formatting is applied by callers at the
// presentation edge.
package billing

import (
	"fmt"

	"crescendo/internal/models"
)

// DeliveryFee is the flat fee added on top of the cart total at checkout.
const DeliveryFee = 5.0

// Line is a priced order line.
type Line struct {
	Price    float64
	Quantity int
}

// OrderTotal sums price times quantity across lines. An empty input
// yields zero.
func OrderTotal(lines []Line) float64 {
	total := 0.0
	for _, line := range lines {
		total += line.Price * float64(line.Quantity)
	}
	return total
}

// ItemsTotal resolves an order's items against the menu and sums their
// prices. Items referencing unknown menu ids contribute nothing.
func ItemsTotal(items []models.OrderItem, lookup func(id string) (models.MenuItem, bool)) float64 {
	total := 0.0
	for _, item := range items {
		if menuItem, ok := lookup(item.MenuItemID); ok {
			total += menuItem.Price * float64(item.Quantity)
		}
	}
	return total
}

// PayableAmount returns the amount the customer is charged: the cart
// total plus the flat delivery fee.
func PayableAmount(total float64) float64 {
	return total + DeliveryFee
}

// FormatCurrency renders an amount as a USD string.
func FormatCurrency(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}
