// Package ledger holds the billing and credit-ledger state transitions.
//
// Every operation is a pure transform: it takes the current state (or
// the slice of customers) and returns an updated copy without mutating
// its input. The store applies these transforms under its own lock and
// persists the replacement aggregate wholesale, which is what makes
// the single-writer assumption safe to rely on.
package ledger

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/sakshidhaba/pos-api/internal/domain/entity"
	"github.com/sakshidhaba/pos-api/internal/domain/enum"
)

var (
	// ErrEmptyCart is returned when checkout is attempted with no items.
	ErrEmptyCart = errors.New("ledger: cart is empty")
	// ErrCustomerRequired is returned for an Udhari checkout without a
	// customer name. An unattributable credit bill can never be settled
	// or reversed, so it is rejected up front.
	ErrCustomerRequired = errors.New("ledger: customer name is required for udhari")
	// ErrInvalidAmount is returned for a settlement amount <= 0.
	ErrInvalidAmount = errors.New("ledger: settlement amount must be positive")
)

// CustomerDetails carries the name/phone typed at checkout. The phone
// may be empty; the name must not be for Udhari bills.
type CustomerDetails struct {
	Name  string
	Phone string
}

// OrderMeta carries optional table number and kitchen notes.
type OrderMeta struct {
	TableNo string
	Notes   string
}

// FinalizeOrder turns a finalized cart into an immutable bill.
//
// The subtotal is the sum of price x quantity across lines, tax is
// always zero (tax support is permanently disabled) and the total
// equals the subtotal. The bill id is derived from the checkout time,
// matching the id scheme used everywhere else in the ledger.
func FinalizeOrder(items []entity.CartItem, mode enum.PaymentMode, customer *CustomerDetails, meta *OrderMeta, now time.Time) (entity.Bill, error) {
	if len(items) == 0 {
		return entity.Bill{}, ErrEmptyCart
	}
	if mode.IsCredit() && (customer == nil || strings.TrimSpace(customer.Name) == "") {
		return entity.Bill{}, ErrCustomerRequired
	}

	var subtotal entity.Paise
	lines := make([]entity.CartItem, len(items))
	for i, it := range items {
		lines[i] = it
		subtotal += it.Total()
	}

	bill := entity.Bill{
		ID:          strconv.FormatInt(now.UnixMilli(), 10),
		Timestamp:   now,
		Items:       lines,
		SubTotal:    subtotal,
		Tax:         0,
		Total:       subtotal,
		PaymentMode: mode,
		IsPaid:      !mode.IsCredit(),
		IsCanceled:  false,
	}
	if customer != nil {
		bill.CustomerName = strings.TrimSpace(customer.Name)
		bill.CustomerPhone = strings.TrimSpace(customer.Phone)
	}
	if meta != nil {
		bill.TableNo = meta.TableNo
		bill.Notes = meta.Notes
	}
	return bill, nil
}

// RecordCreditSale folds a new Udhari bill into the customer registry
// and returns the updated registry.
//
// Matching precedence: first a customer whose stored phone is
// non-empty and equals the supplied phone; otherwise a customer with
// no phone on file whose name matches case-insensitively. The first
// match wins. On a match the stored name is overwritten with the
// freshly supplied one (absorbing typo fixes on repeat visits) and an
// empty stored phone is filled in. With no match a new customer is
// created; its id is derived from the bill id so the transform stays
// deterministic.
func RecordCreditSale(customers []entity.Customer, bill entity.Bill, details CustomerDetails) []entity.Customer {
	name := strings.TrimSpace(details.Name)
	phone := strings.TrimSpace(details.Phone)

	idx := -1
	if phone != "" {
		for i, c := range customers {
			if c.Phone != "" && c.Phone == phone {
				idx = i
				break
			}
		}
	}
	if idx < 0 {
		for i, c := range customers {
			if c.Phone == "" && strings.EqualFold(c.Name, name) {
				idx = i
				break
			}
		}
	}

	next := make([]entity.Customer, len(customers))
	copy(next, customers)

	if idx >= 0 {
		c := next[idx]
		c.Name = name
		if c.Phone == "" {
			c.Phone = phone
		}
		c.TotalDue += bill.Total
		history := make([]entity.Bill, len(c.History), len(c.History)+1)
		copy(history, c.History)
		c.History = append(history, bill)
		next[idx] = c
		return next
	}

	return append(next, entity.Customer{
		ID:       "C" + bill.ID,
		Name:     name,
		Phone:    phone,
		TotalDue: bill.Total,
		History:  []entity.Bill{bill},
	})
}

// CancelBill flags a bill as canceled and reverses its effect on the
// credit ledger. It is idempotent: an unknown or already-canceled bill
// id returns the state unchanged.
//
// The bill record itself is only flagged, never deleted. If the bill
// was Udhari and names a customer, the matching customer (by phone or
// exact name) has the bill's total deducted from their due, clamped at
// zero, and the bill removed from their history entirely. The history
// removal is intentionally asymmetric with the retained bill record.
// If no customer matches, only the flag changes.
func CancelBill(state entity.AppState, billID string) entity.AppState {
	idx := -1
	for i, b := range state.Bills {
		if b.ID == billID {
			idx = i
			break
		}
	}
	if idx < 0 || state.Bills[idx].IsCanceled {
		return state
	}
	canceled := state.Bills[idx]

	bills := make([]entity.Bill, len(state.Bills))
	copy(bills, state.Bills)
	bills[idx].IsCanceled = true

	customers := state.Customers
	if canceled.PaymentMode.IsCredit() && canceled.CustomerName != "" {
		customers = make([]entity.Customer, len(state.Customers))
		copy(customers, state.Customers)
		for i, c := range customers {
			match := (c.Phone != "" && c.Phone == canceled.CustomerPhone) || c.Name == canceled.CustomerName
			if !match {
				continue
			}
			c.TotalDue -= canceled.Total
			if c.TotalDue < 0 {
				c.TotalDue = 0
			}
			history := make([]entity.Bill, 0, len(c.History))
			for _, h := range c.History {
				if h.ID != billID {
					history = append(history, h)
				}
			}
			c.History = history
			customers[i] = c
			break
		}
	}

	return entity.AppState{
		Menu:      state.Menu,
		Bills:     bills,
		Customers: customers,
	}
}

// SettlePayment records a (possibly partial) repayment against a
// customer's outstanding due: totalDue = max(0, totalDue - amount).
// Paying more than the due silently clamps to zero. History is left
// untouched; the ledger tracks an aggregate balance, not per-bill paid
// status. An unknown customer id is a no-op.
func SettlePayment(customers []entity.Customer, customerID string, amount entity.Paise) ([]entity.Customer, error) {
	if amount <= 0 {
		return customers, ErrInvalidAmount
	}

	next := make([]entity.Customer, len(customers))
	copy(next, customers)
	for i, c := range next {
		if c.ID != customerID {
			continue
		}
		c.TotalDue -= amount
		if c.TotalDue < 0 {
			c.TotalDue = 0
		}
		next[i] = c
		break
	}
	return next, nil
}

// DeleteCustomer removes a customer entirely, including history and
// any outstanding balance. Deletion is permitted even with a positive
// due. Unknown ids are a no-op.
func DeleteCustomer(customers []entity.Customer, customerID string) []entity.Customer {
	next := make([]entity.Customer, 0, len(customers))
	for _, c := range customers {
		if c.ID != customerID {
			next = append(next, c)
		}
	}
	return next
}
