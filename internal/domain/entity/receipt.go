package entity

// ReceiptHeader holds the restaurant header printed at the top of a
// receipt.
type ReceiptHeader struct {
	StoreName string `json:"store_name"`
	Address   string `json:"address,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// ReceiptItem represents a single line item on a receipt.
type ReceiptItem struct {
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Total     float64 `json:"total"`
}

// Receipt is a value object representing a printable receipt. It is
// composed from a bill at print time and is never stored.
type Receipt struct {
	Header      ReceiptHeader `json:"header"`
	BillNo      string        `json:"bill_no"`
	Date        string        `json:"date"`
	TableNo     string        `json:"table_no,omitempty"`
	Customer    string        `json:"customer,omitempty"`
	PaymentMode string        `json:"payment_mode"`
	Items       []ReceiptItem `json:"items"`
	SubTotal    float64       `json:"sub_total"`
	Total       float64       `json:"total"`
	Canceled    bool          `json:"canceled,omitempty"`
	Notes       string        `json:"notes,omitempty"`
}
