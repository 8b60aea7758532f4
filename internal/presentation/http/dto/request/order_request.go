package request

// CheckoutRequest finalizes the working cart into a bill. Customer and
// table details fall back to whatever the session already holds.
type CheckoutRequest struct {
	PaymentMode   string `json:"payment_mode" binding:"required"`
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
	TableNo       string `json:"table_no"`
	Notes         string `json:"notes"`
}

// BillFilterRequest holds query parameters for listing bills.
type BillFilterRequest struct {
	Range   string `form:"range"`
	Mode    string `form:"mode"`
	Search  string `form:"search"`
	Page    int    `form:"page"`
	PerPage int    `form:"per_page"`
}
