package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sakshidhaba/pos-api/internal/domain/entity"
	"github.com/sakshidhaba/pos-api/internal/domain/enum"
)

func menuItem(id, name string, rupees float64, category string) entity.MenuItem {
	return entity.MenuItem{ID: id, Name: name, Price: entity.PaiseFromRupees(rupees), Category: category}
}

func cartItem(id, name string, rupees float64, qty int) entity.CartItem {
	return entity.CartItem{MenuItem: menuItem(id, name, rupees, "Veg"), Quantity: qty}
}

func TestFinalizeOrder(t *testing.T) {
	now := time.Date(2024, 6, 1, 13, 30, 0, 0, time.Local)

	t.Run("cash bill totals and flags", func(t *testing.T) {
		items := []entity.CartItem{cartItem("1", "Dal Fry", 120, 2)}

		bill, err := FinalizeOrder(items, enum.PaymentModeCash, nil, nil, now)
		require.NoError(t, err)

		assert.Equal(t, entity.PaiseFromRupees(240), bill.Total)
		assert.Equal(t, bill.SubTotal, bill.Total)
		assert.Equal(t, entity.Paise(0), bill.Tax)
		assert.True(t, bill.IsPaid)
		assert.False(t, bill.IsCanceled)
		assert.Equal(t, now, bill.Timestamp)
		assert.NotEmpty(t, bill.ID)
	})

	t.Run("subtotal sums price times quantity across lines", func(t *testing.T) {
		items := []entity.CartItem{
			cartItem("1", "Dal Fry", 120, 2),
			cartItem("5", "Butter Naan", 40, 5),
			cartItem("6", "Tandoori Roti", 15, 3),
		}

		bill, err := FinalizeOrder(items, enum.PaymentModeOnline, nil, nil, now)
		require.NoError(t, err)
		assert.Equal(t, entity.PaiseFromRupees(240+200+45), bill.Total)
		assert.Equal(t, entity.Paise(0), bill.Tax)
	})

	t.Run("udhari bill is unpaid and carries the customer", func(t *testing.T) {
		items := []entity.CartItem{cartItem("2", "Shahi Paneer", 220, 1)}
		cust := &CustomerDetails{Name: "Ravi", Phone: "9000000001"}

		bill, err := FinalizeOrder(items, enum.PaymentModeUdhari, cust, &OrderMeta{TableNo: "4", Notes: "less spicy"}, now)
		require.NoError(t, err)

		assert.False(t, bill.IsPaid)
		assert.Equal(t, "Ravi", bill.CustomerName)
		assert.Equal(t, "9000000001", bill.CustomerPhone)
		assert.Equal(t, "4", bill.TableNo)
		assert.Equal(t, "less spicy", bill.Notes)
	})

	t.Run("empty cart is rejected", func(t *testing.T) {
		_, err := FinalizeOrder(nil, enum.PaymentModeCash, nil, nil, now)
		assert.ErrorIs(t, err, ErrEmptyCart)
	})

	t.Run("udhari without a customer name is rejected", func(t *testing.T) {
		items := []entity.CartItem{cartItem("1", "Dal Fry", 120, 1)}

		_, err := FinalizeOrder(items, enum.PaymentModeUdhari, nil, nil, now)
		assert.ErrorIs(t, err, ErrCustomerRequired)

		_, err = FinalizeOrder(items, enum.PaymentModeUdhari, &CustomerDetails{Name: "  "}, nil, now)
		assert.ErrorIs(t, err, ErrCustomerRequired)
	})

	t.Run("does not alias the caller's slice", func(t *testing.T) {
		items := []entity.CartItem{cartItem("1", "Dal Fry", 120, 1)}
		bill, err := FinalizeOrder(items, enum.PaymentModeCash, nil, nil, now)
		require.NoError(t, err)

		items[0].Quantity = 99
		assert.Equal(t, 1, bill.Items[0].Quantity)
	})
}

func udhariBill(t *testing.T, name, phone string, rupees float64, at time.Time) entity.Bill {
	t.Helper()
	bill, err := FinalizeOrder(
		[]entity.CartItem{cartItem("x", "Thali", rupees, 1)},
		enum.PaymentModeUdhari,
		&CustomerDetails{Name: name, Phone: phone},
		nil,
		at,
	)
	require.NoError(t, err)
	return bill
}

func TestRecordCreditSale(t *testing.T) {
	now := time.Date(2024, 6, 1, 19, 0, 0, 0, time.Local)

	t.Run("creates a customer on first udhari sale", func(t *testing.T) {
		bill := udhariBill(t, "Ravi", "", 100, now)

		customers := RecordCreditSale(nil, bill, CustomerDetails{Name: "Ravi", Phone: ""})

		require.Len(t, customers, 1)
		assert.Equal(t, "Ravi", customers[0].Name)
		assert.Equal(t, entity.PaiseFromRupees(100), customers[0].TotalDue)
		require.Len(t, customers[0].History, 1)
		assert.Equal(t, bill.ID, customers[0].History[0].ID)
		assert.NotEmpty(t, customers[0].ID)
	})

	t.Run("phone match dedupes and overwrites the stored name", func(t *testing.T) {
		first := udhariBill(t, "Ravi", "9000000001", 100, now)
		customers := RecordCreditSale(nil, first, CustomerDetails{Name: "Ravi", Phone: "9000000001"})

		second := udhariBill(t, "RAVI kumar", "9000000001", 50, now.Add(time.Minute))
		customers = RecordCreditSale(customers, second, CustomerDetails{Name: "RAVI kumar", Phone: "9000000001"})

		require.Len(t, customers, 1, "no duplicate customer")
		assert.Equal(t, "RAVI kumar", customers[0].Name)
		assert.Equal(t, entity.PaiseFromRupees(150), customers[0].TotalDue)
		assert.Len(t, customers[0].History, 2)
	})

	t.Run("case-insensitive name match when no phone on file", func(t *testing.T) {
		first := udhariBill(t, "Sunita", "", 80, now)
		customers := RecordCreditSale(nil, first, CustomerDetails{Name: "Sunita", Phone: ""})

		second := udhariBill(t, "sunita", "9111111111", 20, now.Add(time.Minute))
		customers = RecordCreditSale(customers, second, CustomerDetails{Name: "sunita", Phone: "9111111111"})

		require.Len(t, customers, 1)
		assert.Equal(t, "9111111111", customers[0].Phone, "empty phone is filled in")
		assert.Equal(t, entity.PaiseFromRupees(100), customers[0].TotalDue)
	})

	t.Run("different phone creates a distinct customer", func(t *testing.T) {
		first := udhariBill(t, "Ravi", "9000000001", 100, now)
		customers := RecordCreditSale(nil, first, CustomerDetails{Name: "Ravi", Phone: "9000000001"})

		second := udhariBill(t, "Ravi", "9222222222", 60, now.Add(time.Minute))
		customers = RecordCreditSale(customers, second, CustomerDetails{Name: "Ravi", Phone: "9222222222"})

		assert.Len(t, customers, 2)
	})

	t.Run("does not mutate its input", func(t *testing.T) {
		first := udhariBill(t, "Ravi", "9000000001", 100, now)
		original := RecordCreditSale(nil, first, CustomerDetails{Name: "Ravi", Phone: "9000000001"})
		before := original[0]

		second := udhariBill(t, "Someone Else", "9000000001", 50, now.Add(time.Minute))
		_ = RecordCreditSale(original, second, CustomerDetails{Name: "Someone Else", Phone: "9000000001"})

		assert.Equal(t, before.Name, original[0].Name)
		assert.Equal(t, before.TotalDue, original[0].TotalDue)
		assert.Len(t, original[0].History, 1)
	})
}

func TestCancelBill(t *testing.T) {
	now := time.Date(2024, 6, 2, 12, 0, 0, 0, time.Local)

	newState := func(t *testing.T) entity.AppState {
		t.Helper()
		bill := udhariBill(t, "Ravi", "", 100, now)
		customers := RecordCreditSale(nil, bill, CustomerDetails{Name: "Ravi", Phone: ""})
		return entity.AppState{Bills: []entity.Bill{bill}, Customers: customers}
	}

	t.Run("reverses an udhari bill", func(t *testing.T) {
		state := newState(t)
		billID := state.Bills[0].ID

		next := CancelBill(state, billID)

		require.Len(t, next.Bills, 1, "bill stays in the global list")
		assert.True(t, next.Bills[0].IsCanceled)
		assert.Equal(t, entity.Paise(0), next.Customers[0].TotalDue)
		assert.Empty(t, next.Customers[0].History, "bill is removed from history")
	})

	t.Run("is idempotent", func(t *testing.T) {
		state := newState(t)
		billID := state.Bills[0].ID

		once := CancelBill(state, billID)
		twice := CancelBill(once, billID)

		assert.Equal(t, once, twice)
	})

	t.Run("unknown bill id is a no-op", func(t *testing.T) {
		state := newState(t)
		next := CancelBill(state, "does-not-exist")
		assert.Equal(t, state, next)
	})

	t.Run("due never goes negative", func(t *testing.T) {
		state := newState(t)
		billID := state.Bills[0].ID

		// Settle the full due before canceling; the reversal must clamp.
		customers, err := SettlePayment(state.Customers, state.Customers[0].ID, entity.PaiseFromRupees(100))
		require.NoError(t, err)
		state.Customers = customers

		next := CancelBill(state, billID)
		assert.Equal(t, entity.Paise(0), next.Customers[0].TotalDue)
	})

	t.Run("cash bill cancellation leaves customers untouched", func(t *testing.T) {
		cash, err := FinalizeOrder([]entity.CartItem{cartItem("1", "Dal Fry", 120, 2)}, enum.PaymentModeCash, nil, nil, now)
		require.NoError(t, err)
		state := newState(t)
		state.Bills = append(state.Bills, cash)

		next := CancelBill(state, cash.ID)

		assert.True(t, next.Bills[1].IsCanceled)
		assert.Equal(t, state.Customers, next.Customers)
	})

	t.Run("no matching customer leaves the ledger untouched", func(t *testing.T) {
		state := newState(t)
		billID := state.Bills[0].ID
		state.Customers = DeleteCustomer(state.Customers, state.Customers[0].ID)

		next := CancelBill(state, billID)

		assert.True(t, next.Bills[0].IsCanceled)
		assert.Empty(t, next.Customers)
	})

	t.Run("does not mutate its input", func(t *testing.T) {
		state := newState(t)
		billID := state.Bills[0].ID

		_ = CancelBill(state, billID)

		assert.False(t, state.Bills[0].IsCanceled)
		assert.Equal(t, entity.PaiseFromRupees(100), state.Customers[0].TotalDue)
		assert.Len(t, state.Customers[0].History, 1)
	})
}

func TestSettlePayment(t *testing.T) {
	customers := []entity.Customer{{ID: "c1", Name: "Ravi", TotalDue: entity.PaiseFromRupees(150)}}

	t.Run("partial settlement reduces the due", func(t *testing.T) {
		next, err := SettlePayment(customers, "c1", entity.PaiseFromRupees(50))
		require.NoError(t, err)
		assert.Equal(t, entity.PaiseFromRupees(100), next[0].TotalDue)
	})

	t.Run("overpayment clamps at zero", func(t *testing.T) {
		next, err := SettlePayment(customers, "c1", entity.PaiseFromRupees(500))
		require.NoError(t, err)
		assert.Equal(t, entity.Paise(0), next[0].TotalDue)
	})

	t.Run("rejects non-positive amounts", func(t *testing.T) {
		_, err := SettlePayment(customers, "c1", 0)
		assert.ErrorIs(t, err, ErrInvalidAmount)

		_, err = SettlePayment(customers, "c1", entity.PaiseFromRupees(-10))
		assert.ErrorIs(t, err, ErrInvalidAmount)
	})

	t.Run("unknown customer is a no-op", func(t *testing.T) {
		next, err := SettlePayment(customers, "nope", entity.PaiseFromRupees(50))
		require.NoError(t, err)
		assert.Equal(t, customers, next)
	})

	t.Run("does not mutate its input", func(t *testing.T) {
		_, err := SettlePayment(customers, "c1", entity.PaiseFromRupees(50))
		require.NoError(t, err)
		assert.Equal(t, entity.PaiseFromRupees(150), customers[0].TotalDue)
	})
}

func TestDeleteCustomer(t *testing.T) {
	t.Run("removes the customer even with an outstanding due", func(t *testing.T) {
		customers := []entity.Customer{
			{ID: "c1", Name: "Ravi", TotalDue: entity.PaiseFromRupees(50)},
			{ID: "c2", Name: "Sunita"},
		}

		next := DeleteCustomer(customers, "c1")

		require.Len(t, next, 1)
		assert.Equal(t, "c2", next[0].ID)
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		customers := []entity.Customer{{ID: "c1"}}
		next := DeleteCustomer(customers, "nope")
		assert.Equal(t, customers, next)
	})
}
