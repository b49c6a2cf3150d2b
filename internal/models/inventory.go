package models

import "time"

// InventoryItem represents an item in the restaurant inventory
type InventoryItem struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Category      string    `json:"category"`
	Quantity      float64   `json:"quantity"`
	Unit          string    `json:"unit"`
	ReorderLevel  float64   `json:"reorderLevel"`
	Cost          float64   `json:"cost"`
	Supplier      string    `json:"supplier,omitempty"`
	LastRestocked time.Time `json:"lastRestocked"`
}

// InventoryCategory represents the category of an inventory item
type InventoryCategory string

const (
	// Inventory categories
	CategoryProtein    InventoryCategory = "protein"
	CategoryProduce    InventoryCategory = "produce"
	CategoryDairy      InventoryCategory = "dairy"
	CategoryDryGoods   InventoryCategory = "dry_goods"
	CategorySpices     InventoryCategory = "spices"
	CategoryBeverages  InventoryCategory = "beverages"
	CategoryCondiments InventoryCategory = "condiments"
)

// IsLowStock reports whether the item is at or below its reorder level.
// The boundary is inclusive: quantity equal to the reorder level counts
// as low stock.
func (ii *InventoryItem) IsLowStock() bool {
	return ii.Quantity <= ii.ReorderLevel
}
