package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/lk16/othello/internal"
	"github.com/lk16/othello/internal/config"
	"github.com/lk16/othello/internal/services"
)

func main() {
	config.SetLogLevel()

	// Load configuration
	cfg := config.LoadServerConfig()

	// Initialize services
	services, err := services.InitServices(cfg.RedisURL, cfg.PostgresURL)
	if err != nil {
		slog.Error("Failed to initialize services", "error", err)
		os.Exit(1)
	}
	defer services.Close()

	// Setup app
	app := internal.SetupApp(cfg, services)

	// Start server
	address := cfg.ServerHost + ":" + cfg.ServerPort
	log.Fatal(app.Listen(address))
}
