package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/sakshidhaba/pos-api/internal/application/service"
	"github.com/sakshidhaba/pos-api/internal/config"
	"github.com/sakshidhaba/pos-api/internal/infrastructure/store"
	"github.com/sakshidhaba/pos-api/internal/presentation/http/handler"
	"github.com/sakshidhaba/pos-api/internal/presentation/http/routes"
	"github.com/sakshidhaba/pos-api/pkg/printer"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Open the local record store; a fresh install starts with the
	// seeded menu.
	st, err := store.Open(cfg.Store.DataDir)
	if err != nil {
		log.Fatalf("Failed to open data store: %v", err)
	}

	// Initialize thermal printer
	thermalPrinter, err := printer.NewPrinterFromConfig(
		cfg.Printer.Type,
		cfg.Printer.USBPath,
		cfg.Printer.Address,
	)
	if err != nil {
		log.Printf("Warning: Failed to initialize printer: %v", err)
		thermalPrinter = printer.NewNullPrinter()
	}

	// Initialize services
	menuService := service.NewMenuService(st)
	sessionService := service.NewSessionService(st)
	orderService := service.NewOrderService(st)
	customerService := service.NewCustomerService(st, cfg.Receipt, cfg.Udhari)
	reportService := service.NewReportService(st)
	exportService := service.NewExportService(reportService, cfg.Receipt)
	printerService := service.NewPrinterService(thermalPrinter, cfg.Receipt, cfg.Printer.Type)

	// Initialize handlers
	handlers := &routes.Handlers{
		Menu:     handler.NewMenuHandler(menuService),
		Session:  handler.NewSessionHandler(sessionService),
		Order:    handler.NewOrderHandler(orderService, printerService),
		Customer: handler.NewCustomerHandler(customerService, exportService),
		Report:   handler.NewReportHandler(reportService, exportService),
		Printer:  handler.NewPrinterHandler(printerService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{Cfg: cfg})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
