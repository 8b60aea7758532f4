package service

import (
	"github.com/sakshidhaba/pos-api/internal/domain/entity"
	"github.com/sakshidhaba/pos-api/internal/infrastructure/store"
	"github.com/sakshidhaba/pos-api/pkg/apperror"
)

// SessionService manages the in-progress order: the cart plus the
// table/customer details typed so far. The session is persisted on
// every change so an interrupted order survives a restart.
type SessionService struct {
	store *store.Store
}

// NewSessionService creates a new session service.
func NewSessionService(st *store.Store) *SessionService {
	return &SessionService{store: st}
}

// GetSession returns the current in-progress order.
func (s *SessionService) GetSession() entity.Session {
	return s.store.Session()
}

// SessionDetailsInput patches the non-cart session fields. Nil fields
// are left unchanged.
type SessionDetailsInput struct {
	TableNo       *string
	KitchenNote   *string
	CustomerName  *string
	CustomerPhone *string
}

// UpdateDetails applies a partial update to the session details.
func (s *SessionService) UpdateDetails(input *SessionDetailsInput) entity.Session {
	return s.store.UpdateSession(func(sess entity.Session) entity.Session {
		if input.TableNo != nil {
			sess.TableNo = *input.TableNo
		}
		if input.KitchenNote != nil {
			sess.KitchenNote = *input.KitchenNote
		}
		if input.CustomerName != nil {
			sess.CustomerName = *input.CustomerName
		}
		if input.CustomerPhone != nil {
			sess.CustomerPhone = *input.CustomerPhone
		}
		return sess
	})
}

// AddItem snapshots a menu item into the cart, incrementing the
// quantity if the item is already on the order.
func (s *SessionService) AddItem(menuItemID string, quantity int) (entity.Session, error) {
	if quantity < 1 {
		quantity = 1
	}

	var item *entity.MenuItem
	for _, it := range s.store.State().Menu {
		if it.ID == menuItemID {
			found := it
			item = &found
			break
		}
	}
	if item == nil {
		return entity.Session{}, apperror.NewNotFoundError("Menu item")
	}

	return s.store.UpdateSession(func(sess entity.Session) entity.Session {
		cart := make([]entity.CartItem, len(sess.Cart))
		copy(cart, sess.Cart)
		for i, line := range cart {
			if line.ID == menuItemID {
				cart[i].Quantity += quantity
				sess.Cart = cart
				return sess
			}
		}
		sess.Cart = append(cart, entity.CartItem{MenuItem: *item, Quantity: quantity})
		return sess
	}), nil
}

// SetQuantity sets a cart line's quantity. A quantity of zero or less
// removes the line; a line is never stored at quantity zero.
func (s *SessionService) SetQuantity(menuItemID string, quantity int) (entity.Session, error) {
	found := false
	next := s.store.UpdateSession(func(sess entity.Session) entity.Session {
		cart := make([]entity.CartItem, 0, len(sess.Cart))
		for _, line := range sess.Cart {
			if line.ID != menuItemID {
				cart = append(cart, line)
				continue
			}
			found = true
			if quantity > 0 {
				line.Quantity = quantity
				cart = append(cart, line)
			}
		}
		sess.Cart = cart
		return sess
	})
	if !found {
		return entity.Session{}, apperror.NewNotFoundError("Cart item")
	}
	return next, nil
}

// RemoveItem drops a line from the cart.
func (s *SessionService) RemoveItem(menuItemID string) (entity.Session, error) {
	return s.SetQuantity(menuItemID, 0)
}

// Reset discards the in-progress order entirely.
func (s *SessionService) Reset() entity.Session {
	s.store.ClearSession()
	return s.store.Session()
}
