package service

import (
	"strings"

	"github.com/google/uuid"

	"github.com/sakshidhaba/pos-api/internal/domain/entity"
	"github.com/sakshidhaba/pos-api/internal/infrastructure/store"
	"github.com/sakshidhaba/pos-api/pkg/apperror"
)

// MenuService handles menu catalog CRUD. Menu edits never touch
// historical bills: cart and bill lines carry value snapshots.
type MenuService struct {
	store *store.Store
}

// NewMenuService creates a new menu service.
func NewMenuService(st *store.Store) *MenuService {
	return &MenuService{store: st}
}

// ListMenu returns the catalog, optionally narrowed by category and a
// name search.
func (s *MenuService) ListMenu(category, search string) []entity.MenuItem {
	menu := s.store.State().Menu
	if category == "" && search == "" {
		return menu
	}

	q := strings.ToLower(search)
	out := make([]entity.MenuItem, 0, len(menu))
	for _, it := range menu {
		if category != "" && !strings.EqualFold(it.Category, category) {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(it.Name), q) {
			continue
		}
		out = append(out, it)
	}
	return out
}

// MenuItemInput carries the fields for creating or updating an item.
type MenuItemInput struct {
	Name     string
	Price    float64
	Category string
}

func (in *MenuItemInput) validate() error {
	var fields []apperror.FieldError
	if strings.TrimSpace(in.Name) == "" {
		fields = append(fields, apperror.FieldError{Field: "name", Message: "Name is required"})
	}
	if in.Price < 0 {
		fields = append(fields, apperror.FieldError{Field: "price", Message: "Price must not be negative"})
	}
	if strings.TrimSpace(in.Category) == "" {
		fields = append(fields, apperror.FieldError{Field: "category", Message: "Category is required"})
	}
	if len(fields) > 0 {
		return apperror.NewValidationError(fields)
	}
	return nil
}

// CreateMenuItem adds a new item to the catalog.
func (s *MenuService) CreateMenuItem(input *MenuItemInput) (entity.MenuItem, error) {
	if err := input.validate(); err != nil {
		return entity.MenuItem{}, err
	}

	item := entity.MenuItem{
		ID:       uuid.NewString(),
		Name:     strings.TrimSpace(input.Name),
		Price:    entity.PaiseFromRupees(input.Price),
		Category: strings.TrimSpace(input.Category),
	}
	s.store.Update(func(st entity.AppState) entity.AppState {
		menu := make([]entity.MenuItem, len(st.Menu), len(st.Menu)+1)
		copy(menu, st.Menu)
		st.Menu = append(menu, item)
		return st
	})
	return item, nil
}

// UpdateMenuItem replaces an existing item's fields.
func (s *MenuService) UpdateMenuItem(id string, input *MenuItemInput) (entity.MenuItem, error) {
	if err := input.validate(); err != nil {
		return entity.MenuItem{}, err
	}

	var updated *entity.MenuItem
	s.store.Update(func(st entity.AppState) entity.AppState {
		menu := make([]entity.MenuItem, len(st.Menu))
		copy(menu, st.Menu)
		for i, it := range menu {
			if it.ID != id {
				continue
			}
			menu[i] = entity.MenuItem{
				ID:       id,
				Name:     strings.TrimSpace(input.Name),
				Price:    entity.PaiseFromRupees(input.Price),
				Category: strings.TrimSpace(input.Category),
			}
			updated = &menu[i]
			break
		}
		st.Menu = menu
		return st
	})
	if updated == nil {
		return entity.MenuItem{}, apperror.NewNotFoundError("Menu item")
	}
	return *updated, nil
}

// DeleteMenuItem removes an item from the catalog. Bills that sold the
// item keep their snapshots.
func (s *MenuService) DeleteMenuItem(id string) error {
	found := false
	s.store.Update(func(st entity.AppState) entity.AppState {
		menu := make([]entity.MenuItem, 0, len(st.Menu))
		for _, it := range st.Menu {
			if it.ID == id {
				found = true
				continue
			}
			menu = append(menu, it)
		}
		st.Menu = menu
		return st
	})
	if !found {
		return apperror.NewNotFoundError("Menu item")
	}
	return nil
}
