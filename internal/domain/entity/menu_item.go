package entity

// MenuItem is a sellable item on the restaurant's menu.
//
// Cart and bill line items hold a value snapshot of the MenuItem, not
// a reference, so later edits or deletes never retroactively change
// historical bills.
type MenuItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    Paise  `json:"price"`
	Category string `json:"category"`
}

// CartItem is a menu item snapshot plus the ordered quantity. It only
// exists while an order is being composed; quantity is always >= 1
// while the line is present (a line reaching zero is removed, never
// stored at zero).
type CartItem struct {
	MenuItem
	Quantity int `json:"quantity"`
}

// Total returns price x quantity for the line.
func (ci CartItem) Total() Paise {
	return ci.Price * Paise(ci.Quantity)
}
