package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sakshidhaba/pos-api/internal/config"
	"github.com/sakshidhaba/pos-api/internal/domain/entity"
	"github.com/sakshidhaba/pos-api/pkg/apperror"
	"github.com/sakshidhaba/pos-api/pkg/pagination"
)

func newRegistry(t *testing.T) (*CustomerService, *SessionService, *OrderService) {
	t.Helper()
	st, sessions, orders := newTill(t)
	receipt := config.ReceiptConfig{StoreName: "Sakshi Dhaba", Width: 32}
	customers := NewCustomerService(st, receipt, config.UdhariConfig{ReminderCountryCode: "91"})
	return customers, sessions, orders
}

func creditSale(t *testing.T, sessions *SessionService, orders *OrderService, name, phone string) entity.Bill {
	t.Helper()
	addToCart(t, sessions, "4", 1) // Jeera Rice, 100
	bill, err := orders.Checkout(&CheckoutInput{PaymentMode: "Udhari", CustomerName: name, CustomerPhone: phone})
	require.NoError(t, err)
	return bill
}

func TestSettlePayment(t *testing.T) {
	customers, sessions, orders := newRegistry(t)
	creditSale(t, sessions, orders, "Ravi", "9000000001")

	listed := customers.ListCustomers("", pagination.DefaultPagination())
	require.Len(t, listed.Items, 1)
	id := listed.Items[0].ID

	t.Run("partial payment reduces the due", func(t *testing.T) {
		c, err := customers.SettlePayment(id, 40)
		require.NoError(t, err)
		assert.Equal(t, entity.PaiseFromRupees(60), c.TotalDue)
		require.Len(t, c.History, 1, "settlement never touches history")
	})

	t.Run("overpayment clamps at zero", func(t *testing.T) {
		c, err := customers.SettlePayment(id, 500)
		require.NoError(t, err)
		assert.Equal(t, entity.Paise(0), c.TotalDue)
	})

	t.Run("non-positive amount is rejected", func(t *testing.T) {
		_, err := customers.SettlePayment(id, 0)
		require.Error(t, err)
		assert.Equal(t, 422, apperror.GetAppError(err).Code)
	})

	t.Run("unknown customer is not found", func(t *testing.T) {
		_, err := customers.SettlePayment("nope", 10)
		require.Error(t, err)
		assert.Equal(t, 404, apperror.GetAppError(err).Code)
	})
}

func TestListCustomersSearch(t *testing.T) {
	customers, sessions, orders := newRegistry(t)
	creditSale(t, sessions, orders, "Ravi", "9000000001")
	creditSale(t, sessions, orders, "Sunita", "9000000002")

	byName := customers.ListCustomers("sun", pagination.DefaultPagination())
	require.Len(t, byName.Items, 1)
	assert.Equal(t, "Sunita", byName.Items[0].Name)

	byPhone := customers.ListCustomers("0001", pagination.DefaultPagination())
	require.Len(t, byPhone.Items, 1)
	assert.Equal(t, "Ravi", byPhone.Items[0].Name)
}

func TestDeleteCustomer(t *testing.T) {
	customers, sessions, orders := newRegistry(t)
	creditSale(t, sessions, orders, "Ravi", "")

	listed := customers.ListCustomers("", pagination.DefaultPagination())
	require.Len(t, listed.Items, 1)

	// Deletion is allowed even with money still owed.
	require.NoError(t, customers.DeleteCustomer(listed.Items[0].ID))
	assert.Empty(t, customers.ListCustomers("", pagination.DefaultPagination()).Items)

	err := customers.DeleteCustomer(listed.Items[0].ID)
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestReminderLink(t *testing.T) {
	customers, sessions, orders := newRegistry(t)
	creditSale(t, sessions, orders, "Ravi", "9000000001")
	creditSale(t, sessions, orders, "Mohan", "")

	listed := customers.ListCustomers("", pagination.DefaultPagination())
	require.Len(t, listed.Items, 2)

	t.Run("builds a wa.me link with the country code", func(t *testing.T) {
		link, err := customers.ReminderLink(listed.Items[0].ID)
		require.NoError(t, err)
		assert.Contains(t, link, "https://wa.me/919000000001?text=")
		assert.Contains(t, link, "Ravi")
		assert.Contains(t, link, "Sakshi+Dhaba")
	})

	t.Run("fails without a phone number", func(t *testing.T) {
		_, err := customers.ReminderLink(listed.Items[1].ID)
		require.Error(t, err)
		assert.Equal(t, 400, apperror.GetAppError(err).Code)
	})
}
