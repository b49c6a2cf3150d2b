package models

import (
	"fmt"
	"time"
)

// MenuItem represents a dish on the menu
type MenuItem struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Category    string        `json:"category"`
	Price       float64       `json:"price"`
	PrepTime    time.Duration `json:"prepTime"`
	Available   bool          `json:"available"`
	Spicy       bool          `json:"spicy"`
	Vegan       bool          `json:"vegan"`
	GlutenFree  bool          `json:"glutenFree"`
	Calories    int           `json:"calories,omitempty"`
}

// MenuCategory represents the category of a menu item
type MenuCategory string

const (
	// Menu categories
	MenuCategoryAppetizer  MenuCategory = "Appetizer"
	MenuCategoryMainCourse MenuCategory = "Main Course"
	MenuCategorySoup       MenuCategory = "Soup"
	MenuCategoryDessert    MenuCategory = "Dessert"
	MenuCategoryBeverage   MenuCategory = "Beverage"
)

// ValidateMenuItem validates a menu item
func ValidateMenuItem(item *MenuItem) error {
	if item.Name == "" {
		return fmt.Errorf("menu item name is required")
	}
	if item.Price < 0 {
		return fmt.Errorf("menu item price must not be negative")
	}
	if item.PrepTime <= 0 {
		return fmt.Errorf("menu item prep time must be greater than 0")
	}
	return nil
}

// IsInCategory checks if the item belongs to a specific category
func (mi *MenuItem) IsInCategory(category MenuCategory) bool {
	return mi.Category == string(category)
}
