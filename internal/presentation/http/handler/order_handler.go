package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sakshidhaba/pos-api/internal/application/service"
	"github.com/sakshidhaba/pos-api/internal/domain/enum"
	"github.com/sakshidhaba/pos-api/internal/presentation/http/dto/request"
	"github.com/sakshidhaba/pos-api/internal/presentation/http/dto/response"
)

// OrderHandler handles checkout and bill HTTP requests
type OrderHandler struct {
	orderService   *service.OrderService
	printerService *service.PrinterService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService, printerService *service.PrinterService) *OrderHandler {
	return &OrderHandler{orderService: orderService, printerService: printerService}
}

// Checkout handles finalizing the session cart into a bill
func (h *OrderHandler) Checkout(c *gin.Context) {
	var req request.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	bill, err := h.orderService.Checkout(&service.CheckoutInput{
		PaymentMode:   req.PaymentMode,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		TableNo:       req.TableNo,
		Notes:         req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	// Best effort: a failed print never fails the checkout.
	receipt, _ := h.printerService.PrintBill(bill)

	response.Created(c, "Order placed successfully", gin.H{
		"bill":    bill,
		"receipt": receipt,
	})
}

// List handles listing bills with range/mode/search filters
func (h *OrderHandler) List(c *gin.Context) {
	var filter request.BillFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	result := h.orderService.ListBills(&service.BillFilterParams{
		Range:      rangeFromQuery(c),
		Mode:       enum.PaymentMode(filter.Mode),
		Search:     filter.Search,
		Pagination: paginationParams(filter.Page, filter.PerPage),
	})

	response.SuccessWithPagination(c, 200, "Bills retrieved successfully", result)
}

// Get handles getting a single bill
func (h *OrderHandler) Get(c *gin.Context) {
	bill, err := h.orderService.GetBill(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Bill retrieved successfully", bill)
}

// Cancel handles voiding a bill and reversing its credit effect
func (h *OrderHandler) Cancel(c *gin.Context) {
	bill, err := h.orderService.CancelBill(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Bill canceled successfully", bill)
}

// Receipt handles reprinting the receipt for an existing bill
func (h *OrderHandler) Receipt(c *gin.Context) {
	bill, err := h.orderService.GetBill(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	receipt, _ := h.printerService.PrintBill(bill)
	response.OK(c, "Receipt printed successfully", receipt)
}
