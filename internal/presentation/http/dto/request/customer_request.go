package request

// SettlePaymentRequest records a repayment against a customer's
// outstanding Udhari balance, in rupees.
type SettlePaymentRequest struct {
	Amount float64 `json:"amount" binding:"required"`
}

// CustomerFilterRequest holds query parameters for listing customers.
type CustomerFilterRequest struct {
	Search  string `form:"search"`
	Page    int    `form:"page"`
	PerPage int    `form:"per_page"`
}
