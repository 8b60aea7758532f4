package store

import "github.com/sakshidhaba/pos-api/internal/domain/entity"

// DefaultState returns the starter aggregate used when no primary
// record exists yet: the stock dhaba menu with no bills or customers.
func DefaultState() entity.AppState {
	return entity.AppState{
		Menu:      SeedMenu(),
		Bills:     []entity.Bill{},
		Customers: []entity.Customer{},
	}
}

// SeedMenu is the starter menu for a fresh installation.
func SeedMenu() []entity.MenuItem {
	items := []struct {
		id, name, category string
		price              float64
	}{
		{"1", "Dal Fry", "Veg", 120},
		{"2", "Shahi Paneer", "Veg", 220},
		{"3", "Mix Veg", "Veg", 180},
		{"4", "Jeera Rice", "Veg", 100},
		{"5", "Butter Naan", "Veg", 40},
		{"6", "Tandoori Roti", "Veg", 15},
		{"7", "Chicken Curry", "Non Veg", 280},
		{"8", "Egg Curry", "Non Veg", 150},
		{"9", "Chicken Biryani", "Non Veg", 250},
		{"10", "Coke (750ml)", "Cold Drink", 60},
		{"11", "Water Bottle", "Cold Drink", 20},
		{"12", "Lassi", "Cold Drink", 50},
	}

	menu := make([]entity.MenuItem, len(items))
	for i, it := range items {
		menu[i] = entity.MenuItem{
			ID:       it.id,
			Name:     it.name,
			Price:    entity.PaiseFromRupees(it.price),
			Category: it.category,
		}
	}
	return menu
}
