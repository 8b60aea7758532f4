package entity

// Customer is an entry in the Udhari (credit) registry.
//
// History holds only the Udhari bills attributed to this customer. It
// is a back-reference for statements, not the source of truth for
// money owed: TotalDue is maintained independently and can drift from
// the sum of History after partial settlements, by design.
type Customer struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	TotalDue Paise  `json:"total_due"`
	History  []Bill `json:"history"`
}
