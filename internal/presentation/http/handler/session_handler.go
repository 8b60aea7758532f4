package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sakshidhaba/pos-api/internal/application/service"
	"github.com/sakshidhaba/pos-api/internal/presentation/http/dto/request"
	"github.com/sakshidhaba/pos-api/internal/presentation/http/dto/response"
)

// SessionHandler handles the in-progress order HTTP requests
type SessionHandler struct {
	sessionService *service.SessionService
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessionService *service.SessionService) *SessionHandler {
	return &SessionHandler{sessionService: sessionService}
}

// Get handles reading the current session
func (h *SessionHandler) Get(c *gin.Context) {
	response.OK(c, "Session retrieved successfully", h.sessionService.GetSession())
}

// UpdateDetails handles patching table/customer details on the session
func (h *SessionHandler) UpdateDetails(c *gin.Context) {
	var req request.SessionDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	sess := h.sessionService.UpdateDetails(&service.SessionDetailsInput{
		TableNo:       req.TableNo,
		KitchenNote:   req.KitchenNote,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
	})
	response.OK(c, "Session updated successfully", sess)
}

// AddItem handles adding a menu item to the cart
func (h *SessionHandler) AddItem(c *gin.Context) {
	var req request.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	sess, err := h.sessionService.AddItem(req.MenuItemID, req.Quantity)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Item added to cart", sess)
}

// SetQuantity handles replacing a cart line's quantity
func (h *SessionHandler) SetQuantity(c *gin.Context) {
	itemID := c.Param("item_id")
	if itemID == "" {
		response.BadRequest(c, "Cart item ID is required")
		return
	}

	var req request.SetQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	sess, err := h.sessionService.SetQuantity(itemID, req.Quantity)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Cart updated successfully", sess)
}

// RemoveItem handles dropping a line from the cart
func (h *SessionHandler) RemoveItem(c *gin.Context) {
	itemID := c.Param("item_id")
	if itemID == "" {
		response.BadRequest(c, "Cart item ID is required")
		return
	}

	sess, err := h.sessionService.RemoveItem(itemID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Item removed from cart", sess)
}

// Reset handles discarding the in-progress order
func (h *SessionHandler) Reset(c *gin.Context) {
	response.OK(c, "Session cleared", h.sessionService.Reset())
}
