package entity

import (
	"time"

	"github.com/sakshidhaba/pos-api/internal/domain/enum"
)

// Bill is an immutable record of a checked-out order. Once created,
// the only field that ever changes is IsCanceled, and that transition
// is one-way (false -> true, no un-cancel).
type Bill struct {
	ID            string           `json:"id"`
	Timestamp     time.Time        `json:"timestamp"`
	Items         []CartItem       `json:"items"`
	SubTotal      Paise            `json:"subtotal"`
	Tax           Paise            `json:"tax"` // always 0, tax support is disabled
	Total         Paise            `json:"total"`
	PaymentMode   enum.PaymentMode `json:"payment_mode"`
	CustomerName  string           `json:"customer_name,omitempty"`
	CustomerPhone string           `json:"customer_phone,omitempty"`
	IsPaid        bool             `json:"is_paid"`
	IsCanceled    bool             `json:"is_canceled"`
	TableNo       string           `json:"table_no,omitempty"`
	Notes         string           `json:"notes,omitempty"`
}

// ShortID returns the last six characters of the bill id, the form
// printed on receipts and shown in transaction lists.
func (b Bill) ShortID() string {
	if len(b.ID) <= 6 {
		return b.ID
	}
	return b.ID[len(b.ID)-6:]
}

// TotalQuantity returns the number of plates/units across all lines.
func (b Bill) TotalQuantity() int {
	n := 0
	for _, it := range b.Items {
		n += it.Quantity
	}
	return n
}
