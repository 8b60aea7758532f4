package request

// AddCartItemRequest adds a menu item to the working cart. Quantity
// defaults to one when omitted.
type AddCartItemRequest struct {
	MenuItemID string `json:"menu_item_id" binding:"required"`
	Quantity   int    `json:"quantity"`
}

// SetQuantityRequest replaces the quantity of an existing cart line.
// Zero or negative removes the line.
type SetQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// SessionDetailsRequest patches the order details attached to the
// working session. Nil fields are left untouched.
type SessionDetailsRequest struct {
	TableNo       *string `json:"table_no"`
	KitchenNote   *string `json:"kitchen_note"`
	CustomerName  *string `json:"customer_name"`
	CustomerPhone *string `json:"customer_phone"`
}
