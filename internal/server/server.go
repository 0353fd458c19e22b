// Package server assembles the fiber app: middleware, public routes, the
// session guard, then the protected routes. Public handlers are registered
// before the JWT middleware so they stay reachable without a session.
package server

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/akbusiness/food-store-backend/internal/metrics"
	"github.com/akbusiness/food-store-backend/internal/middleware"
	"github.com/akbusiness/food-store-backend/internal/order"
	"github.com/akbusiness/food-store-backend/internal/product"
	"github.com/akbusiness/food-store-backend/internal/user"
)

type Deps struct {
	SessionSecret string
	Products      *product.Service
	Orders        *order.Service
	Users         *user.Service
}

func New(deps Deps) *fiber.App {
	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
	app.Use(middleware.RequestLogger())
	app.Use(metrics.Middleware())

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	productHandler := product.NewHandler(deps.Products)
	orderHandler := order.NewHandler(deps.Orders)
	userHandler := user.NewHandler(deps.Users, deps.SessionSecret)

	userHandler.RegisterPublicRoutes(app)
	productHandler.RegisterPublicRoutes(app)
	orderHandler.RegisterPublicRoutes(app)

	app.Use(middleware.Session(deps.SessionSecret))

	userHandler.RegisterProtectedRoutes(app)
	productHandler.RegisterProtectedRoutes(app)
	orderHandler.RegisterProtectedRoutes(app)

	return app
}
