package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sakshidhaba/pos-api/internal/application/service"
	"github.com/sakshidhaba/pos-api/internal/presentation/http/dto/request"
	"github.com/sakshidhaba/pos-api/internal/presentation/http/dto/response"
)

// CustomerHandler handles Udhari registry HTTP requests
type CustomerHandler struct {
	customerService *service.CustomerService
	exportService   *service.ExportService
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(customerService *service.CustomerService, exportService *service.ExportService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService, exportService: exportService}
}

// List handles listing credit customers
func (h *CustomerHandler) List(c *gin.Context) {
	var filter request.CustomerFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	result := h.customerService.ListCustomers(filter.Search, paginationParams(filter.Page, filter.PerPage))
	response.SuccessWithPagination(c, 200, "Customers retrieved successfully", result)
}

// Get handles getting a single customer
func (h *CustomerHandler) Get(c *gin.Context) {
	customer, err := h.customerService.GetCustomer(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Customer retrieved successfully", customer)
}

// Settle handles recording a repayment against the customer's due
func (h *CustomerHandler) Settle(c *gin.Context) {
	var req request.SettlePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	customer, err := h.customerService.SettlePayment(c.Param("id"), req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Payment settled successfully", customer)
}

// Delete handles removing a customer and their history
func (h *CustomerHandler) Delete(c *gin.Context) {
	if err := h.customerService.DeleteCustomer(c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Reminder handles building a WhatsApp payment reminder link
func (h *CustomerHandler) Reminder(c *gin.Context) {
	link, err := h.customerService.ReminderLink(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Reminder link generated", gin.H{"url": link})
}

// Statement handles downloading the customer's Udhari statement as PDF
func (h *CustomerHandler) Statement(c *gin.Context) {
	customer, err := h.customerService.GetCustomer(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	data, filename, err := h.exportService.StatementPDF(customer)
	if err != nil {
		response.InternalServerError(c, "Failed to render statement")
		return
	}

	c.Header("Content-Disposition", "attachment; filename=\""+filename+"\"")
	c.Data(200, "application/pdf", data)
}
