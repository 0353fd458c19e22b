package main

import (
	"strings"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/akbusiness/food-store-backend/internal/config"
	"github.com/akbusiness/food-store-backend/internal/database"
	"github.com/akbusiness/food-store-backend/internal/mail"
	"github.com/akbusiness/food-store-backend/internal/order"
	"github.com/akbusiness/food-store-backend/internal/product"
	"github.com/akbusiness/food-store-backend/internal/server"
	"github.com/akbusiness/food-store-backend/internal/user"
)

// main wires dependencies and starts the HTTP server.
func main() {
	_ = godotenv.Load()

	log.SetFormatter(&log.JSONFormatter{})

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("configuration")
	}
	if level, err := log.ParseLevel(strings.ToLower(cfg.LogLevel)); err == nil {
		log.SetLevel(level)
	}

	db, err := database.Open(cfg.DatabaseURL)
	if err != nil {
		log.WithError(err).Fatal("database")
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.WithError(err).Fatal("migrate")
	}

	productService := product.NewService(product.NewPostgresRepository(db))
	userService := user.NewService(user.NewPostgresRepository(db))
	notifier := mail.New(cfg.SMTP)
	orderService := order.NewService(order.NewPostgresRepository(db), productService, notifier)

	if err := database.Seed(userService, productService, cfg.AdminUsername, cfg.AdminPassword); err != nil {
		log.WithError(err).Fatal("seed")
	}

	app := server.New(server.Deps{
		SessionSecret: cfg.SessionSecret,
		Products:      productService,
		Orders:        orderService,
		Users:         userService,
	})

	log.WithField("addr", cfg.Addr()).Info("starting server")
	if err := app.Listen(cfg.Addr()); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
