package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"plateforge/internal/client"
	"plateforge/internal/config"
	"plateforge/internal/model"
	"plateforge/internal/repository"
	"plateforge/internal/server"
	"plateforge/internal/service"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
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

	db := client.InitSqliteClient(cfg.DatabaseURL)
	if err := repository.SeedCatalog(db); err != nil {
		log.Fatal("failed to seed catalog:", err)
	}

	catalogService := service.NewCatalogService(
		repository.NewOptionRepository[model.PlateSelection](db),
		repository.NewOptionRepository[model.PlateType](db),
		repository.NewOptionRepository[model.Badge](db),
		repository.NewOptionRepository[model.BadgeColor](db),
		repository.NewOptionRepository[model.TextStyle](db),
		repository.NewOptionRepository[model.BorderColor](db),
		repository.NewOptionRepository[model.PlateSurround](db),
	)

	var paypalClient client.PaypalClient
	if cfg.Paypal.ClientID != "" {
		paypalClient = client.NewPaypalClient(&cfg.Paypal)
	} else {
		log.Println("PAYPAL_CLIENT_ID not set, payment verification disabled")
	}

	orderService := service.NewOrderService(
		catalogService,
		repository.NewOrderRepository(db),
		paypalClient,
	)
	authService := service.NewAuthService(cfg.Admin)

	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port

	// Init HTTP server
	srv := server.NewServer(catalogService, orderService, authService)

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
