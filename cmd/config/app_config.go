package config

import (
	"Resto-Manager/internal/api/handlers"
	"Resto-Manager/internal/api/routes"
	"Resto-Manager/internal/logging"
	"Resto-Manager/internal/middleware"
	"Resto-Manager/internal/utils"
	"Resto-Manager/pkg/auth"
	"Resto-Manager/pkg/customer"
	"Resto-Manager/pkg/document"
	"Resto-Manager/pkg/inventory"
	"Resto-Manager/pkg/menu"
	"Resto-Manager/pkg/order"
	"Resto-Manager/pkg/sales"
	"log/slog"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	logging.Init("./logs/app.json")
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "America/Santiago",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// Repository
	authRepository := auth.NewAuthRepository(db)
	customerRepository := customer.NewCustomerRepository(db)
	inventoryRepository := inventory.NewInventoryRepository(db)
	menuRepository := menu.NewMenuRepository(db)
	orderRepository := order.NewOrderRepository(db, inventoryRepository)
	salesRepository := sales.NewSalesRepository(db)

	// Service
	jwtService := auth.NewJWTService()
	authService := auth.NewAuthService(authRepository, jwtService)
	customerService := customer.NewCustomerService(customerRepository)
	inventoryService := inventory.NewInventoryService(inventoryRepository)
	menuService := menu.NewMenuService(menuRepository, inventoryRepository)
	orderService := order.NewOrderService(
		orderRepository,
		menuRepository,
		customerRepository,
		inventoryRepository,
		slog.Default(),
	)
	salesService := sales.NewSalesService(salesRepository)
	documentService := document.NewDocumentService(orderRepository, inventoryRepository, salesService)

	// Handler
	authHandler := handlers.NewAuthHandler(authService, validator)
	customerHandler := handlers.NewCustomerHandler(customerService, validator)
	inventoryHandler := handlers.NewInventoryHandler(inventoryService, validator)
	menuHandler := handlers.NewMenuHandler(menuService, validator)
	orderHandler := handlers.NewOrderHandler(orderService, validator)
	salesHandler := handlers.NewSalesHandler(salesService)
	documentHandler := handlers.NewDocumentHandler(documentService, validator)

	// routes
	routesConfig := routes.Config{
		App:              app,
		AuthHandler:      authHandler,
		CustomerHandler:  customerHandler,
		InventoryHandler: inventoryHandler,
		MenuHandler:      menuHandler,
		OrderHandler:     orderHandler,
		SalesHandler:     salesHandler,
		DocumentHandler:  documentHandler,
		Middleware:       middlewares,
		JWTService:       jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
