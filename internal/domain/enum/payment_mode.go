package enum

// PaymentMode identifies how a bill was settled at checkout.
// The wire values match the labels shown on printed receipts.
type PaymentMode string

const (
	PaymentModeCash   PaymentMode = "Cash"
	PaymentModeOnline PaymentMode = "Online Payment"
	PaymentModeUdhari PaymentMode = "Udhari"
)

// IsValid reports whether the mode is one of the known payment modes.
func (m PaymentMode) IsValid() bool {
	switch m {
	case PaymentModeCash, PaymentModeOnline, PaymentModeUdhari:
		return true
	}
	return false
}

// IsCredit reports whether the mode leaves an outstanding due on a
// customer instead of being collected at the till.
func (m PaymentMode) IsCredit() bool {
	return m == PaymentModeUdhari
}
