package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sakshidhaba/pos-api/internal/domain/entity"
	"github.com/sakshidhaba/pos-api/internal/domain/enum"
	"github.com/sakshidhaba/pos-api/internal/domain/report"
	"github.com/sakshidhaba/pos-api/internal/infrastructure/store"
	"github.com/sakshidhaba/pos-api/pkg/apperror"
	"github.com/sakshidhaba/pos-api/pkg/pagination"
)

func newTill(t *testing.T) (*store.Store, *SessionService, *OrderService) {
	t.Helper()
	st, err := store.Open(t.TempDir())
	require.NoError(t, err)
	return st, NewSessionService(st), NewOrderService(st)
}

func addToCart(t *testing.T, sessions *SessionService, menuItemID string, qty int) {
	t.Helper()
	_, err := sessions.AddItem(menuItemID, qty)
	require.NoError(t, err)
}

func TestCheckoutCash(t *testing.T) {
	st, sessions, orders := newTill(t)
	addToCart(t, sessions, "1", 2) // Dal Fry, 120

	bill, err := orders.Checkout(&CheckoutInput{PaymentMode: "Cash", TableNo: "3"})
	require.NoError(t, err)

	assert.Equal(t, entity.PaiseFromRupees(240), bill.Total)
	assert.Equal(t, entity.Paise(0), bill.Tax)
	assert.True(t, bill.IsPaid)
	assert.False(t, bill.IsCanceled)
	assert.Equal(t, "3", bill.TableNo)

	state := st.State()
	require.Len(t, state.Bills, 1)
	assert.Empty(t, state.Customers, "cash sale creates no credit entry")
	assert.Empty(t, st.Session().Cart, "session cleared after checkout")
}

func TestCheckoutEmptyCart(t *testing.T) {
	st, _, orders := newTill(t)

	_, err := orders.Checkout(&CheckoutInput{PaymentMode: "Cash"})
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
	assert.Empty(t, st.State().Bills, "failed checkout leaves no bill behind")
}

func TestCheckoutUnknownMode(t *testing.T) {
	_, sessions, orders := newTill(t)
	addToCart(t, sessions, "1", 1)

	_, err := orders.Checkout(&CheckoutInput{PaymentMode: "IOU"})
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestCheckoutUdhari(t *testing.T) {
	st, sessions, orders := newTill(t)
	addToCart(t, sessions, "4", 1) // Jeera Rice, 100

	t.Run("requires a customer name", func(t *testing.T) {
		_, err := orders.Checkout(&CheckoutInput{PaymentMode: "Udhari"})
		require.Error(t, err)
		assert.Equal(t, 422, apperror.GetAppError(err).Code)
		assert.NotEmpty(t, st.Session().Cart, "cart survives a failed checkout")
	})

	t.Run("creates the customer with the bill on history", func(t *testing.T) {
		bill, err := orders.Checkout(&CheckoutInput{PaymentMode: "Udhari", CustomerName: "Ravi"})
		require.NoError(t, err)
		assert.False(t, bill.IsPaid)

		state := st.State()
		require.Len(t, state.Customers, 1)
		assert.Equal(t, "Ravi", state.Customers[0].Name)
		assert.Equal(t, entity.PaiseFromRupees(100), state.Customers[0].TotalDue)
		require.Len(t, state.Customers[0].History, 1)
		assert.Equal(t, bill.ID, state.Customers[0].History[0].ID)
	})
}

func TestCheckoutUsesSessionDetails(t *testing.T) {
	_, sessions, orders := newTill(t)
	addToCart(t, sessions, "2", 1)

	table, note, name, phone := "7", "less oil", "Sunita", "9111111111"
	sessions.UpdateDetails(&SessionDetailsInput{
		TableNo:       &table,
		KitchenNote:   &note,
		CustomerName:  &name,
		CustomerPhone: &phone,
	})

	bill, err := orders.Checkout(&CheckoutInput{PaymentMode: "Udhari"})
	require.NoError(t, err)

	assert.Equal(t, "7", bill.TableNo)
	assert.Equal(t, "less oil", bill.Notes)
	assert.Equal(t, "Sunita", bill.CustomerName)
	assert.Equal(t, "9111111111", bill.CustomerPhone)
}

func TestCancelBillRoundTrip(t *testing.T) {
	st, sessions, orders := newTill(t)
	addToCart(t, sessions, "4", 1) // 100

	bill, err := orders.Checkout(&CheckoutInput{PaymentMode: "Udhari", CustomerName: "Ravi"})
	require.NoError(t, err)

	canceled, err := orders.CancelBill(bill.ID)
	require.NoError(t, err)
	assert.True(t, canceled.IsCanceled)

	state := st.State()
	require.Len(t, state.Bills, 1, "bill stays in the global list")
	require.Len(t, state.Customers, 1)
	assert.Equal(t, entity.Paise(0), state.Customers[0].TotalDue)
	assert.Empty(t, state.Customers[0].History)

	t.Run("second cancel is a no-op", func(t *testing.T) {
		again, err := orders.CancelBill(bill.ID)
		require.NoError(t, err)
		assert.True(t, again.IsCanceled)
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		_, err := orders.CancelBill("does-not-exist")
		require.Error(t, err)
		assert.Equal(t, 404, apperror.GetAppError(err).Code)
	})
}

func TestSequentialCheckoutsGetDistinctBillIDs(t *testing.T) {
	_, sessions, orders := newTill(t)

	// Pin the clock so both checkouts land on the same millisecond.
	fixed := time.Date(2024, 6, 1, 13, 0, 0, 0, time.Local)
	orders.now = func() time.Time { return fixed }

	addToCart(t, sessions, "1", 1)
	first, err := orders.Checkout(&CheckoutInput{PaymentMode: "Cash"})
	require.NoError(t, err)

	addToCart(t, sessions, "1", 1)
	second, err := orders.Checkout(&CheckoutInput{PaymentMode: "Cash"})
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}

func TestListBills(t *testing.T) {
	_, sessions, orders := newTill(t)

	addToCart(t, sessions, "1", 1)
	_, err := orders.Checkout(&CheckoutInput{PaymentMode: "Cash"})
	require.NoError(t, err)

	addToCart(t, sessions, "2", 1)
	udhari, err := orders.Checkout(&CheckoutInput{PaymentMode: "Udhari", CustomerName: "Ravi"})
	require.NoError(t, err)

	t.Run("filters by payment mode", func(t *testing.T) {
		result := orders.ListBills(&BillFilterParams{
			Range:      report.RangeAll,
			Mode:       enum.PaymentModeUdhari,
			Pagination: pagination.DefaultPagination(),
		})
		require.Len(t, result.Items, 1)
		assert.Equal(t, udhari.ID, result.Items[0].ID)
	})

	t.Run("paginates newest first", func(t *testing.T) {
		result := orders.ListBills(&BillFilterParams{
			Range:      report.RangeAll,
			Pagination: &pagination.PaginationParams{Page: 1, PerPage: 1},
		})
		require.Len(t, result.Items, 1)
		assert.Equal(t, udhari.ID, result.Items[0].ID)
		assert.Equal(t, int64(2), result.Pagination.Total)
		assert.True(t, result.Pagination.HasNext)
	})
}
