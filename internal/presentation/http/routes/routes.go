package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sakshidhaba/pos-api/internal/config"
	"github.com/sakshidhaba/pos-api/internal/presentation/http/handler"
	"github.com/sakshidhaba/pos-api/internal/presentation/http/middleware"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Menu     *handler.MenuHandler
	Session  *handler.SessionHandler
	Order    *handler.OrderHandler
	Customer *handler.CustomerHandler
	Report   *handler.ReportHandler
	Printer  *handler.PrinterHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	Cfg *config.Config
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		v1.Use(rateLimiter.Middleware())

		registerMenuRoutes(v1, h)
		registerSessionRoutes(v1, h)
		registerOrderRoutes(v1, h)
		registerCustomerRoutes(v1, h)
		registerReportRoutes(v1, h)
		registerPrinterRoutes(v1, h)
	}

	return router
}

func registerMenuRoutes(v1 *gin.RouterGroup, h *Handlers) {
	menu := v1.Group("/menu")
	{
		menu.GET("", h.Menu.List)
		menu.POST("", h.Menu.Create)
		menu.PUT("/:id", h.Menu.Update)
		menu.DELETE("/:id", h.Menu.Delete)
	}
}

func registerSessionRoutes(v1 *gin.RouterGroup, h *Handlers) {
	session := v1.Group("/session")
	{
		session.GET("", h.Session.Get)
		session.PATCH("", h.Session.UpdateDetails)
		session.DELETE("", h.Session.Reset)
		session.POST("/items", h.Session.AddItem)
		session.PUT("/items/:item_id", h.Session.SetQuantity)
		session.DELETE("/items/:item_id", h.Session.RemoveItem)
	}
}

func registerOrderRoutes(v1 *gin.RouterGroup, h *Handlers) {
	orders := v1.Group("/orders")
	{
		orders.GET("", h.Order.List)
		orders.POST("", h.Order.Checkout)
		orders.GET("/:id", h.Order.Get)
		orders.POST("/:id/cancel", h.Order.Cancel)
		orders.POST("/:id/receipt", h.Order.Receipt)
	}
}

func registerCustomerRoutes(v1 *gin.RouterGroup, h *Handlers) {
	customers := v1.Group("/customers")
	{
		customers.GET("", h.Customer.List)
		customers.GET("/:id", h.Customer.Get)
		customers.POST("/:id/settle", h.Customer.Settle)
		customers.DELETE("/:id", h.Customer.Delete)
		customers.GET("/:id/reminder", h.Customer.Reminder)
		customers.GET("/:id/statement", h.Customer.Statement)
	}
}

func registerReportRoutes(v1 *gin.RouterGroup, h *Handlers) {
	reports := v1.Group("/reports")
	{
		reports.GET("/dashboard", h.Report.Dashboard)
		reports.GET("/export/csv", h.Report.ExportCSV)
		reports.GET("/export/pdf", h.Report.ExportPDF)
	}
}

func registerPrinterRoutes(v1 *gin.RouterGroup, h *Handlers) {
	printerGroup := v1.Group("/printer")
	{
		printerGroup.GET("/status", h.Printer.GetStatus)
	}
}
