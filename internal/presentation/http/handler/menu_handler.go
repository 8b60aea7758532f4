package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sakshidhaba/pos-api/internal/application/service"
	"github.com/sakshidhaba/pos-api/internal/presentation/http/dto/request"
	"github.com/sakshidhaba/pos-api/internal/presentation/http/dto/response"
)

// MenuHandler handles menu catalog HTTP requests
type MenuHandler struct {
	menuService *service.MenuService
}

// NewMenuHandler creates a new menu handler
func NewMenuHandler(menuService *service.MenuService) *MenuHandler {
	return &MenuHandler{menuService: menuService}
}

// List handles listing the menu catalog
func (h *MenuHandler) List(c *gin.Context) {
	var filter request.MenuFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	items := h.menuService.ListMenu(filter.Category, filter.Search)
	response.OK(c, "Menu retrieved successfully", items)
}

// Create handles adding a menu item
func (h *MenuHandler) Create(c *gin.Context) {
	var req request.MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	item, err := h.menuService.CreateMenuItem(&service.MenuItemInput{
		Name:     req.Name,
		Price:    req.Price,
		Category: req.Category,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Menu item created successfully", item)
}

// Update handles updating a menu item
func (h *MenuHandler) Update(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, "Menu item ID is required")
		return
	}

	var req request.MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	item, err := h.menuService.UpdateMenuItem(id, &service.MenuItemInput{
		Name:     req.Name,
		Price:    req.Price,
		Category: req.Category,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Menu item updated successfully", item)
}

// Delete handles removing a menu item
func (h *MenuHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, "Menu item ID is required")
		return
	}

	if err := h.menuService.DeleteMenuItem(id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
