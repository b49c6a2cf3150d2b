package store

import (
	"fmt"
	"time"

	"crescendo/internal/models"
)

// Seed installs the demo dataset the dashboard ships with: a small menu,
// a dozen tables, a team roster and a stocked pantry. Table availability
// is drawn from the store's random source so tests can pin the layout.
func (s *Store) Seed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()

	s.menuItems = []models.MenuItem{
		{ID: "M001", Name: "Margherita Pizza", Description: "Tomato, mozzarella, basil", Category: string(models.MenuCategoryMainCourse), Price: 12.50, PrepTime: 18 * time.Minute, Available: true, Vegan: false, GlutenFree: false},
		{ID: "M002", Name: "Pepperoni Pizza", Description: "Pepperoni, mozzarella", Category: string(models.MenuCategoryMainCourse), Price: 14.00, PrepTime: 20 * time.Minute, Available: true, Spicy: true},
		{ID: "M003", Name: "Grilled Salmon", Description: "Salmon fillet with lemon butter", Category: string(models.MenuCategoryMainCourse), Price: 22.00, PrepTime: 25 * time.Minute, Available: true, GlutenFree: true},
		{ID: "M004", Name: "Caesar Salad", Description: "Romaine, parmesan, croutons", Category: string(models.MenuCategoryAppetizer), Price: 9.50, PrepTime: 8 * time.Minute, Available: true},
		{ID: "M005", Name: "Bruschetta", Description: "Grilled bread, tomato, garlic", Category: string(models.MenuCategoryAppetizer), Price: 7.00, PrepTime: 10 * time.Minute, Available: true, Vegan: true},
		{ID: "M006", Name: "Tomato Soup", Description: "Roasted tomato, cream", Category: string(models.MenuCategorySoup), Price: 6.50, PrepTime: 12 * time.Minute, Available: true, GlutenFree: true},
		{ID: "M007", Name: "Tiramisu", Description: "Espresso-soaked ladyfingers", Category: string(models.MenuCategoryDessert), Price: 8.00, PrepTime: 5 * time.Minute, Available: true},
		{ID: "M008", Name: "Fresh Lemonade", Description: "House-made, lightly sweetened", Category: string(models.MenuCategoryBeverage), Price: 4.00, PrepTime: 3 * time.Minute, Available: true, Vegan: true, GlutenFree: true},
	}

	s.tables = make([]models.Table, 0, 12)
	for i := 1; i <= 12; i++ {
		status := models.TableStatusAvailable
		if s.rng.Float64() < 0.3 {
			status = models.TableStatusOccupied
		}
		capacity := 2
		if i%3 == 0 {
			capacity = 4
		}
		if i%5 == 0 {
			capacity = 6
		}
		location := "indoor"
		if i > 8 {
			location = "patio"
		}
		s.tables = append(s.tables, models.Table{
			ID:       fmt.Sprintf("T%03d", i),
			Number:   i,
			Capacity: capacity,
			Status:   status,
			Location: location,
		})
	}

	s.staff = []models.Staff{
		{ID: "S001", Name: "Muxlisa Solieva", Role: models.StaffRoleManager, Email: "muxlisa@crescendo.rest", Phone: "555-0101", Status: models.StaffStatusActive, JoinDate: now.AddDate(-3, 0, 0), Shift: models.ShiftMorning},
		{ID: "S002", Name: "Marco Bellini", Role: models.StaffRoleChef, Email: "marco@crescendo.rest", Phone: "555-0102", Status: models.StaffStatusActive, JoinDate: now.AddDate(-2, -4, 0), Shift: models.ShiftEvening},
		{ID: "S003", Name: "Aisha Karimova", Role: models.StaffRoleWaiter, Email: "aisha@crescendo.rest", Phone: "555-0103", Status: models.StaffStatusOnBreak, JoinDate: now.AddDate(-1, 0, 0), Shift: models.ShiftAfternoon},
		{ID: "S004", Name: "Tom Reyes", Role: models.StaffRoleCashier, Email: "tom@crescendo.rest", Phone: "555-0104", Status: models.StaffStatusActive, JoinDate: now.AddDate(0, -8, 0), Shift: models.ShiftEvening},
		{ID: "S005", Name: "Lena Park", Role: models.StaffRoleDelivery, Email: "lena@crescendo.rest", Phone: "555-0105", Status: models.StaffStatusInactive, JoinDate: now.AddDate(0, -2, 0)},
	}

	s.inventory = []models.InventoryItem{
		{ID: "I001", Name: "Mozzarella", Category: string(models.CategoryDairy), Quantity: 24, Unit: "kg", ReorderLevel: 10, Cost: 7.50, Supplier: "Caseificio Nord", LastRestocked: now.AddDate(0, 0, -2)},
		{ID: "I002", Name: "Tomatoes", Category: string(models.CategoryProduce), Quantity: 8, Unit: "kg", ReorderLevel: 12, Cost: 2.20, Supplier: "Green Valley", LastRestocked: now.AddDate(0, 0, -1)},
		{ID: "I003", Name: "Salmon Fillet", Category: string(models.CategoryProtein), Quantity: 6, Unit: "kg", ReorderLevel: 6, Cost: 18.00, Supplier: "North Catch", LastRestocked: now.AddDate(0, 0, -3)},
		{ID: "I004", Name: "Flour 00", Category: string(models.CategoryDryGoods), Quantity: 40, Unit: "kg", ReorderLevel: 15, Cost: 1.10, Supplier: "Molino Rossi", LastRestocked: now.AddDate(0, 0, -7)},
		{ID: "I005", Name: "Espresso Beans", Category: string(models.CategoryBeverages), Quantity: 3, Unit: "kg", ReorderLevel: 4, Cost: 14.00, Supplier: "Roastery 21", LastRestocked: now.AddDate(0, 0, -10)},
	}
}
