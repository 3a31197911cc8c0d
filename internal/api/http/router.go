package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mangostorage/inventory-service/internal/api/http/handlers"
	"github.com/mangostorage/inventory-service/internal/auth"
	"github.com/mangostorage/inventory-service/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Accounts       *handlers.AccountsHandler
	Products       *handlers.ProductsHandler
	Serials        *handlers.SerialsHandler
	Orders         *handlers.OrdersHandler
	Storage        *handlers.StorageHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes. Listings and the auth endpoints are open;
// mutations require a verified bearer token, deletes a Manager position.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Welcome to the Mango Storage System!")
	})

	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/login", cfg.Auth.Login)
	app.Post("/verify-token", cfg.Auth.VerifyToken)
	app.Post("/logout", cfg.Auth.Logout)

	app.Get("/UserAccount", cfg.Accounts.List)
	app.Get("/Product", cfg.Products.List)
	app.Get("/SerialNumber", cfg.Serials.List)
	app.Get("/Storage", cfg.Storage.List)
	app.Get("/Order", cfg.Orders.List)

	protected := app.Group("", cfg.AuthMiddleware.Handle)
	protected.Post("/createUserAccount", cfg.Accounts.Create)
	protected.Post("/createProduct", cfg.Products.Create)
	protected.Post("/createSerial", cfg.Serials.Create)

	protected.Put("/updateUserAccount", cfg.Accounts.Update)
	protected.Put("/updateProduct", cfg.Products.Update)
	protected.Put("/updateOrder", cfg.Orders.Update)
	protected.Put("/updateSerialNumber", cfg.Serials.Update)

	managers := protected.Group("", auth.RequirePosition(domain.PositionManager))
	managers.Delete("/deleteUser/:id", cfg.Accounts.Delete)
	managers.Delete("/deleteProduct/:P_ID", cfg.Products.Delete)
	managers.Delete("/deleteOrder/:OrderID", cfg.Orders.Delete)
	managers.Delete("/deleteItem/:Serial_No", cfg.Serials.Delete)
}
