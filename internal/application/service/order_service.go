package service

import (
	"errors"
	"strings"
	"time"

	"github.com/sakshidhaba/pos-api/internal/domain/entity"
	"github.com/sakshidhaba/pos-api/internal/domain/enum"
	"github.com/sakshidhaba/pos-api/internal/domain/ledger"
	"github.com/sakshidhaba/pos-api/internal/domain/report"
	"github.com/sakshidhaba/pos-api/internal/infrastructure/store"
	"github.com/sakshidhaba/pos-api/pkg/apperror"
	"github.com/sakshidhaba/pos-api/pkg/pagination"
)

// OrderService handles checkout, bill listing and cancellation. It is
// the seam between the HTTP surface and the pure ledger transforms:
// all ledger mutations are applied through the store so they are
// serialized and persisted as a whole.
type OrderService struct {
	store *store.Store
	now   func() time.Time
}

// NewOrderService creates a new order service.
func NewOrderService(st *store.Store) *OrderService {
	return &OrderService{store: st, now: time.Now}
}

// CheckoutInput describes a checkout request. The cart always comes
// from the session; customer details and order meta default to the
// values typed into the session and can be overridden per request.
type CheckoutInput struct {
	PaymentMode   string
	CustomerName  string
	CustomerPhone string
	TableNo       string
	Notes         string
}

// Checkout finalizes the session cart into an immutable bill, folds an
// Udhari bill into the credit ledger, and clears the session.
func (s *OrderService) Checkout(input *CheckoutInput) (entity.Bill, error) {
	mode := enum.PaymentMode(input.PaymentMode)
	if !mode.IsValid() {
		return entity.Bill{}, apperror.NewBadRequestError("Unknown payment mode")
	}

	sess := s.store.Session()

	customer := ledger.CustomerDetails{
		Name:  firstNonEmpty(input.CustomerName, sess.CustomerName),
		Phone: firstNonEmpty(input.CustomerPhone, sess.CustomerPhone),
	}
	meta := ledger.OrderMeta{
		TableNo: firstNonEmpty(input.TableNo, sess.TableNo),
		Notes:   firstNonEmpty(input.Notes, sess.KitchenNote),
	}

	var (
		bill   entity.Bill
		billed bool
		lerr   error
	)
	s.store.Update(func(st entity.AppState) entity.AppState {
		// Bill ids are derived from the checkout time; nudge the clock
		// forward if two checkouts land on the same millisecond.
		now := s.now()
		for hasBill(st.Bills, now) {
			now = now.Add(time.Millisecond)
		}

		var custRef *ledger.CustomerDetails
		if customer.Name != "" || customer.Phone != "" {
			custRef = &customer
		}
		bill, lerr = ledger.FinalizeOrder(sess.Cart, mode, custRef, &meta, now)
		if lerr != nil {
			return st
		}

		bills := make([]entity.Bill, len(st.Bills), len(st.Bills)+1)
		copy(bills, st.Bills)
		bills = append(bills, bill)

		customers := st.Customers
		if mode.IsCredit() {
			customers = ledger.RecordCreditSale(st.Customers, bill, customer)
		}

		billed = true
		return entity.AppState{Menu: st.Menu, Bills: bills, Customers: customers}
	})

	if lerr != nil {
		return entity.Bill{}, translateLedgerErr(lerr)
	}
	if billed {
		s.store.ClearSession()
	}
	return bill, nil
}

func hasBill(bills []entity.Bill, now time.Time) bool {
	id := now.UnixMilli()
	for _, b := range bills {
		if b.Timestamp.UnixMilli() == id {
			return true
		}
	}
	return false
}

// BillFilterParams narrows the bill listing.
type BillFilterParams struct {
	Range      report.Range
	Mode       enum.PaymentMode
	Search     string
	Pagination *pagination.PaginationParams
}

// ListBills returns bills in the window, newest first, canceled bills
// included (flagged), filtered and paginated.
func (s *OrderService) ListBills(params *BillFilterParams) *pagination.PaginatedResult[entity.Bill] {
	bills := report.Filter(s.store.State().Bills, params.Range, s.now())
	bills = report.SearchBills(bills, params.Search, params.Mode)
	return pagination.Page(bills, params.Pagination)
}

// GetBill retrieves a bill by id.
func (s *OrderService) GetBill(id string) (entity.Bill, error) {
	for _, b := range s.store.State().Bills {
		if b.ID == id {
			return b, nil
		}
	}
	return entity.Bill{}, apperror.NewNotFoundError("Bill")
}

// CancelBill flags a bill as canceled and reverses its credit-ledger
// effect. Canceling an already-canceled bill is a harmless no-op; an
// unknown id is a 404 at this boundary even though the underlying
// transform treats it as a no-op.
func (s *OrderService) CancelBill(id string) (entity.Bill, error) {
	if _, err := s.GetBill(id); err != nil {
		return entity.Bill{}, err
	}

	next := s.store.Update(func(st entity.AppState) entity.AppState {
		return ledger.CancelBill(st, id)
	})
	for _, b := range next.Bills {
		if b.ID == id {
			return b, nil
		}
	}
	return entity.Bill{}, apperror.NewNotFoundError("Bill")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

func translateLedgerErr(err error) error {
	switch {
	case errors.Is(err, ledger.ErrEmptyCart):
		return apperror.NewBadRequestError("Cart is empty")
	case errors.Is(err, ledger.ErrCustomerRequired):
		return apperror.NewValidationError([]apperror.FieldError{
			{Field: "customer_name", Message: "Customer name is required for Udhari"},
		})
	case errors.Is(err, ledger.ErrInvalidAmount):
		return apperror.NewValidationError([]apperror.FieldError{
			{Field: "amount", Message: "Amount must be a positive number"},
		})
	default:
		return err
	}
}
