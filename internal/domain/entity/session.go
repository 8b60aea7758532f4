package entity

// Session is the in-progress order state: the cart being composed plus
// the table/customer details typed so far. It is persisted separately
// from AppState so an interrupted order survives a restart, and it is
// cleared on successful checkout or an explicit reset.
type Session struct {
	Cart          []CartItem `json:"cart"`
	TableNo       string     `json:"table_no"`
	KitchenNote   string     `json:"kitchen_note"`
	CustomerName  string     `json:"customer_name"`
	CustomerPhone string     `json:"customer_phone"`
}

// CartSubTotal returns the running total of the cart.
func (s Session) CartSubTotal() Paise {
	var sum Paise
	for _, it := range s.Cart {
		sum += it.Total()
	}
	return sum
}
