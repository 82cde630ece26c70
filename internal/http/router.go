// Package http assembles the fiber application: middleware chain, route
// table, and the JSON error boundary. main and the HTTP tests build the same
// app through NewApp.
package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/jmoiron/sqlx"

	"driveline/internal/http/handlers"
	applog "driveline/internal/log"
)

func NewApp(db *sqlx.DB) *fiber.App {
	app := fiber.New(fiber.Config{
		BodyLimit: 1 << 20, // 1 MiB
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Error(c, "server.error", err, nil)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
		},
	})

	app.Use(requestid.New())
	app.Use(logger.New(logger.Config{
		Format: "${time} ${ip} ${method} ${path} ${status} ${latency}\n",
	}))
	app.Use(helmet.New())
	app.Use(cors.New()) // the storefront SPA is served from another origin

	deps := handlers.NewDeps(db)
	api := app.Group("/api")

	// Auth (login throttled)
	auth := api.Group("/auth")
	auth.Post("/signup", deps.AuthHandler.Signup)
	auth.Post("/login", limiter.New(limiter.Config{
		Max:        10,
		Expiration: 10 * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.login.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"message": "Too many attempts. Please try again later."})
		},
	}), deps.AuthHandler.Login)

	// Vehicles. Fixed segments are registered before /:id so "new" etc. don't
	// bind as ids.
	v := api.Group("/vehicle")
	v.Get("/", deps.VehicleHandler.List)
	v.Get("/new", deps.VehicleHandler.ListNew)
	v.Get("/used", deps.VehicleHandler.ListUsed)
	v.Get("/sold", deps.VehicleHandler.ListSold)
	v.Get("/featured", deps.VehicleHandler.ListFeatured)
	v.Get("/makes", deps.VehicleHandler.Makes)
	v.Get("/models/:make", deps.VehicleHandler.Models)
	v.Get("/make/:make", deps.VehicleHandler.ListByMake)
	v.Get("/status", deps.VehicleHandler.Status)
	v.Post("/search", deps.VehicleHandler.Search)
	v.Get("/:id", deps.VehicleHandler.Get)

	admin := handlers.RequireAdmin(deps.Auth)
	v.Post("/", admin, deps.VehicleHandler.Create)
	v.Put("/:id", admin, deps.VehicleHandler.Update)
	v.Delete("/:id", admin, deps.VehicleHandler.Delete)

	// Flat filtered inventory + grouped product listing
	api.Get("/inventory", deps.VehicleHandler.Inventory)
	api.Get("/product", deps.VehicleHandler.Grouped)

	// Categories (derived)
	cat := api.Group("/category")
	cat.Get("/", deps.CategoryHandler.List)
	cat.Get("/:id", deps.CategoryHandler.Get)
	cat.Post("/", deps.CategoryHandler.Create)
	cat.Put("/", deps.CategoryHandler.Update)

	// Orders
	o := api.Group("/order")
	o.Get("/", deps.OrderHandler.List)
	o.Get("/filter", deps.OrderHandler.Filter)
	o.Get("/customer/:customerId/total", deps.OrderHandler.TotalByCustomer)
	o.Get("/customer/:customerId", deps.OrderHandler.ListByCustomer)
	o.Get("/status/:status", deps.OrderHandler.ListByStatus)
	o.Get("/count/:status", deps.OrderHandler.CountByStatus)
	o.Post("/", deps.OrderHandler.Create)
	o.Get("/:id", deps.OrderHandler.Get)
	o.Delete("/:id", deps.OrderHandler.Delete)

	// Cart (order-item subset)
	cart := api.Group("/cart")
	cart.Get("/", deps.CartHandler.List)
	cart.Post("/", deps.CartHandler.Add)
	cart.Get("/:customerId", deps.CartHandler.ListByCustomer)
	cart.Put("/:id", deps.CartHandler.Update)
	cart.Delete("/:id", deps.CartHandler.Remove)

	// Customers
	cust := api.Group("/customer")
	cust.Get("/", deps.CustomerHandler.List)
	cust.Post("/", deps.CustomerHandler.Create)
	cust.Get("/:id", deps.CustomerHandler.Get)
	cust.Put("/:id", deps.CustomerHandler.Update)
	cust.Delete("/:id", deps.CustomerHandler.Delete)

	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })

	return app
}
