package request

// MenuItemRequest is the payload for creating or updating a menu item.
// Field-level validation lives in the service so both verbs share it.
type MenuItemRequest struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
}

// MenuFilterRequest holds query parameters for listing the menu.
type MenuFilterRequest struct {
	Category string `form:"category"`
	Search   string `form:"search"`
}
