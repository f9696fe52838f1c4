package routes

import (
	"Resto-Manager/internal/api/handlers"
	"Resto-Manager/internal/middleware"
	"Resto-Manager/pkg/auth"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App              *fiber.App
	AuthHandler      handlers.AuthHandler
	CustomerHandler  handlers.CustomerHandler
	InventoryHandler handlers.InventoryHandler
	MenuHandler      handlers.MenuHandler
	OrderHandler     handlers.OrderHandler
	SalesHandler     handlers.SalesHandler
	DocumentHandler  handlers.DocumentHandler
	Middleware       middleware.Middleware
	JWTService       auth.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Auth()
	c.Customers()
	c.Inventory()
	c.Menu()
	c.Orders()
	c.Sales()
	c.Documents()
	c.GuestRoute()
}

func (c *Config) Auth() {
	auth := c.App.Group("/api/v1/auth")
	{
		auth.Post("/register", c.AuthHandler.Register)
		auth.Post("/login", c.AuthHandler.Login)
	}
}

func (c *Config) Customers() {
	customers := c.App.Group("/api/v1/customers", c.Middleware.AuthMiddleware(c.JWTService))
	{
		customers.Post("", c.CustomerHandler.RegisterCustomer)
		customers.Get("", c.CustomerHandler.GetCustomers)
		customers.Get("/:email", c.CustomerHandler.GetCustomerDetails)
		customers.Patch("/:email", c.CustomerHandler.UpdateCustomer)
		customers.Delete("/:email", c.CustomerHandler.DeleteCustomer)
	}
}

func (c *Config) Inventory() {
	inventory := c.App.Group("/api/v1/inventory", c.Middleware.AuthMiddleware(c.JWTService))
	{
		inventory.Post("", c.InventoryHandler.AddIngredient)
		inventory.Get("", c.InventoryHandler.GetIngredients)
		inventory.Get("/low-stock", c.InventoryHandler.GetLowStock)
		inventory.Post("/import", c.InventoryHandler.ImportStock)
		inventory.Get("/:id", c.InventoryHandler.GetIngredientDetails)
		inventory.Patch("/:id", c.InventoryHandler.UpdateQuantity)
		inventory.Delete("/:id", c.InventoryHandler.DeleteIngredient)
	}
}

func (c *Config) Menu() {
	menu := c.App.Group("/api/v1/menu", c.Middleware.AuthMiddleware(c.JWTService))
	{
		menu.Post("", c.MenuHandler.AddMenuItem)
		menu.Get("", c.MenuHandler.GetMenuItems)
		menu.Get("/:id", c.MenuHandler.GetMenuItemDetails)
		menu.Get("/:id/availability", c.MenuHandler.CheckAvailability)
		menu.Patch("/:id", c.MenuHandler.UpdateMenuItem)
		menu.Delete("/:id", c.MenuHandler.DeleteMenuItem)
	}
}

func (c *Config) Orders() {
	orders := c.App.Group("/api/v1/orders", c.Middleware.AuthMiddleware(c.JWTService))
	{
		orders.Post("", c.OrderHandler.Checkout)
		orders.Get("", c.OrderHandler.GetOrders)
		orders.Get("/:id", c.OrderHandler.GetOrderDetails)
		orders.Delete("/:id", c.OrderHandler.CancelOrder)
	}
}

func (c *Config) Sales() {
	sales := c.App.Group("/api/v1/sales", c.Middleware.AuthMiddleware(c.JWTService))
	{
		sales.Get("/report", c.SalesHandler.GetSalesReport)
	}
}

func (c *Config) Documents() {
	documents := c.App.Group("/api/v1/documents", c.Middleware.AuthMiddleware(c.JWTService))
	{
		documents.Get("/receipts/:id", c.DocumentHandler.GetReceipt)
		documents.Post("/receipts/:id/send", c.DocumentHandler.SendReceipt)
		documents.Get("/charts/stock", c.DocumentHandler.GetStockChart)
		documents.Get("/charts/sales", c.DocumentHandler.GetSalesChart)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
