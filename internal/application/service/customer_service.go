package service

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/sakshidhaba/pos-api/internal/config"
	"github.com/sakshidhaba/pos-api/internal/domain/entity"
	"github.com/sakshidhaba/pos-api/internal/domain/ledger"
	"github.com/sakshidhaba/pos-api/internal/infrastructure/store"
	"github.com/sakshidhaba/pos-api/pkg/apperror"
	"github.com/sakshidhaba/pos-api/pkg/pagination"
)

// CustomerService manages the Udhari (credit) registry: listing,
// settlements, deletion and payment reminders. Customers are only ever
// created by the ledger itself when an Udhari bill is recorded.
type CustomerService struct {
	store     *store.Store
	receipt   config.ReceiptConfig
	countryCd string
}

// NewCustomerService creates a new customer service.
func NewCustomerService(st *store.Store, receipt config.ReceiptConfig, udhari config.UdhariConfig) *CustomerService {
	return &CustomerService{store: st, receipt: receipt, countryCd: udhari.ReminderCountryCode}
}

// ListCustomers returns the registry filtered by a name/phone search,
// paginated.
func (s *CustomerService) ListCustomers(search string, params *pagination.PaginationParams) *pagination.PaginatedResult[entity.Customer] {
	customers := s.store.State().Customers
	if search != "" {
		q := strings.ToLower(search)
		filtered := make([]entity.Customer, 0, len(customers))
		for _, c := range customers {
			if strings.Contains(strings.ToLower(c.Name), q) || strings.Contains(c.Phone, search) {
				filtered = append(filtered, c)
			}
		}
		customers = filtered
	}
	return pagination.Page(customers, params)
}

// GetCustomer retrieves a customer by id.
func (s *CustomerService) GetCustomer(id string) (entity.Customer, error) {
	for _, c := range s.store.State().Customers {
		if c.ID == id {
			return c, nil
		}
	}
	return entity.Customer{}, apperror.NewNotFoundError("Customer")
}

// SettlePayment records a (possibly partial) repayment. The due is
// clamped at zero when the payment exceeds it; history is untouched.
func (s *CustomerService) SettlePayment(id string, amount float64) (entity.Customer, error) {
	if _, err := s.GetCustomer(id); err != nil {
		return entity.Customer{}, err
	}

	var lerr error
	s.store.Update(func(st entity.AppState) entity.AppState {
		customers, err := ledger.SettlePayment(st.Customers, id, entity.PaiseFromRupees(amount))
		if err != nil {
			lerr = err
			return st
		}
		return entity.AppState{Menu: st.Menu, Bills: st.Bills, Customers: customers}
	})
	if lerr != nil {
		return entity.Customer{}, translateLedgerErr(lerr)
	}
	return s.GetCustomer(id)
}

// DeleteCustomer removes a customer entirely, history and balance
// included. Permitted even with an outstanding due.
func (s *CustomerService) DeleteCustomer(id string) error {
	if _, err := s.GetCustomer(id); err != nil {
		return err
	}
	s.store.Update(func(st entity.AppState) entity.AppState {
		return entity.AppState{
			Menu:      st.Menu,
			Bills:     st.Bills,
			Customers: ledger.DeleteCustomer(st.Customers, id),
		}
	})
	return nil
}

// ReminderLink builds a WhatsApp deep link asking the customer to
// clear their pending balance.
func (s *CustomerService) ReminderLink(id string) (string, error) {
	c, err := s.GetCustomer(id)
	if err != nil {
		return "", err
	}
	if c.Phone == "" {
		return "", apperror.NewBadRequestError("Customer phone number not available")
	}

	message := fmt.Sprintf(
		"Hello %s, your total pending amount at %s is Rs %.0f. Please pay at your earliest convenience.",
		c.Name, s.receipt.StoreName, c.TotalDue.Rupees(),
	)
	return fmt.Sprintf("https://wa.me/%s%s?text=%s", s.countryCd, c.Phone, url.QueryEscape(message)), nil
}
