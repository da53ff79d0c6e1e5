package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"

	"storefront/internal/client"
	"storefront/internal/config"
	"storefront/internal/server"
	"storefront/internal/service"
	"storefront/internal/store"
)

func main() {
	// load .env into os.Environ
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found (ok in prod)")
	}

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		fmt.Printf("Failed to parse config: %v\n", err)
		os.Exit(1)
	}

	var storage store.Storage
	if cfg.DatabaseURL == "" {
		log.Println("DATABASE_URL not set, using in-memory storage (dev only)")
		storage = store.NewMemoryStorage()
	} else {
		s, err := store.NewGormStorage(cfg.DatabaseURL)
		if err != nil {
			log.Fatal("init storage: ", err)
		}
		storage = s
	}

	stripeClient := client.NewStripeClient(&cfg.Stripe)

	productService := service.NewProductService(storage)
	orderService := service.NewOrderService(storage)
	contactService := service.NewContactService(storage)
	checkoutService := service.NewCheckoutService(storage, orderService, stripeClient, cfg.Store.Currency)

	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port

	srv := server.NewServer(
		productService,
		orderService,
		contactService,
		checkoutService,
		cfg.Admin.Key,
		cfg.Stripe.PublishableKey,
	)

	log.Println("Starting HTTP server on", serverAddr)
	go func() {
		if err := srv.Start(serverAddr); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	log.Println("Signal received, starting graceful shutdown...")

	if err := srv.Shutdown(); err != nil {
		log.Fatal("HTTP server shutdown error")
	}
}
