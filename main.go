package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"messageboard/internal/app"
	"messageboard/internal/config"
	"messageboard/internal/database"
	"messageboard/internal/services"
	"messageboard/pkg/rabbitmq"

	"github.com/spf13/viper"
)

func main() {
	// --- Configuration ---
	cfg, err := config.Load(viper.New())
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// --- Store ---
	connectCtx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	store, err := database.Open(connectCtx, cfg)
	cancel()
	if err != nil {
		log.Fatalf("Failed to open %s store: %v", cfg.StoreDriver, err)
	}
	defer func() {
		if err := store.Close(context.Background()); err != nil {
			log.Printf("Error closing store: %v", err)
		}
	}()

	// --- Events (optional) ---
	var publisher services.EventPublisher
	if cfg.RabbitMQURL != "" {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()
		publisher = mqClient

		// The consumer competes with downstream subscribers on the same queue.
		if cfg.LogEvents {
			if err := mqClient.ConsumeEvents(rabbitmq.LogEvent); err != nil {
				log.Printf("Failed to start RabbitMQ consumer: %v", err)
			}
		}
	} else {
		log.Println("RABBITMQ_URL is not set. Message events are disabled.")
	}

	// --- HTTP ---
	server := app.NewApp(store, app.Options{
		Publisher:      publisher,
		RequestTimeout: cfg.RequestTimeout,
		AccessLog:      true,
	})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("Starting server on %s using the %s store", cfg.AppPort, cfg.StoreDriver)
		if err := server.Listen(cfg.AppPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := server.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}
	log.Println("Server gracefully stopped")
}
