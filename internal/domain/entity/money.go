package entity

import (
	"encoding/json"
	"fmt"
	"math"
)

// Paise is a money amount stored in hundredths of a rupee to avoid
// floating point drift in ledger arithmetic. JSON marshals it as a
// decimal rupee number so the persisted records and API payloads read
// naturally (120.50, not 12050).
type Paise int64

// PaiseFromRupees converts a decimal rupee amount to Paise, rounding
// to the nearest paisa.
func PaiseFromRupees(r float64) Paise {
	return Paise(math.Round(r * 100))
}

// Rupees returns the amount as a decimal rupee value.
func (p Paise) Rupees() float64 {
	return float64(p) / 100
}

// Format renders the amount with two decimal places, e.g. "240.00".
func (p Paise) Format() string {
	return fmt.Sprintf("%.2f", p.Rupees())
}

// MarshalJSON writes the amount as a rupee decimal number.
func (p Paise) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Rupees())
}

// UnmarshalJSON reads a rupee decimal number.
func (p *Paise) UnmarshalJSON(data []byte) error {
	var r float64
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}
	*p = PaiseFromRupees(r)
	return nil
}
