package checkout

import "crescendo/internal/billing"

// CartItem is one line in a customer cart. Price is captured when the
// line is added so the cart total matches what the customer saw.
type CartItem struct {
	MenuItemID string  `json:"menuItemId"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
}

// Cart is the ephemeral per-session order draft of the customer ordering
// flow. It is discarded on successful payment or logout, never stored.
type Cart struct {
	items []CartItem
}

// NewCart creates an empty cart.
func NewCart() *Cart {
	return &Cart{}
}

// Add appends a line, or bumps the quantity if the item is already in
// the cart.
func (c *Cart) Add(item CartItem) {
	for i := range c.items {
		if c.items[i].MenuItemID == item.MenuItemID {
			c.items[i].Quantity += item.Quantity
			return
		}
	}
	if item.Quantity <= 0 {
		item.Quantity = 1
	}
	c.items = append(c.items, item)
}

// UpdateQuantity sets the quantity of a line. Zero or negative removes it.
func (c *Cart) UpdateQuantity(menuItemID string, quantity int) {
	if quantity <= 0 {
		c.Remove(menuItemID)
		return
	}
	for i := range c.items {
		if c.items[i].MenuItemID == menuItemID {
			c.items[i].Quantity = quantity
			return
		}
	}
}

// Remove drops a line from the cart.
func (c *Cart) Remove(menuItemID string) {
	for i := range c.items {
		if c.items[i].MenuItemID == menuItemID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// Items returns a copy of the cart lines.
func (c *Cart) Items() []CartItem {
	items := make([]CartItem, len(c.items))
	copy(items, c.items)
	return items
}

// Total sums price times quantity across the cart.
func (c *Cart) Total() float64 {
	lines := make([]billing.Line, 0, len(c.items))
	for _, item := range c.items {
		lines = append(lines, billing.Line{Price: item.Price, Quantity: item.Quantity})
	}
	return billing.OrderTotal(lines)
}

// Len returns the number of distinct lines.
func (c *Cart) Len() int {
	return len(c.items)
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.items = nil
}
