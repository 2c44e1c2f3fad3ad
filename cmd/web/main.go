package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/godex-app/godex/internal/config"
	"github.com/godex-app/godex/internal/database"
	"github.com/godex-app/godex/internal/handler"
	"github.com/godex-app/godex/internal/pokeapi"
	"github.com/godex-app/godex/internal/repository"
	"github.com/godex-app/godex/internal/service"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables from OS")
	}

	logger := log.New(os.Stdout, "INFO: ", log.Ldate|log.Ltime|log.Lshortfile)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}

	// Local SQLite file caching raw upstream payloads.
	db, err := database.ConnectDB(cfg.Cache)
	if err != nil {
		logger.Fatalf("Failed to open cache database: %v", err)
	}
	defer db.Close()
	logger.Println("Cache database ready")

	repo := repository.NewRepository(db, cfg.Cache.TTL)
	client := pokeapi.NewClient(cfg.Pokeapi.BaseURL, cfg.Pokeapi.Timeout, repo.Cache(), logger)
	pokedexService := service.NewPokedexService(client, cfg.Pokeapi.SpriteURL, cfg.Pokeapi.ListLimit)
	router := handler.SetupRouter(pokedexService, db, logger)

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Printf("Server starting on port %s", cfg.Server.Port)
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Cannot run server on port %s: %v", cfg.Server.Port, err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Println("Shut down the server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err = server.Shutdown(ctx)
	if err != nil {
		logger.Fatalf("Server shutdown failed: %v", err)
	}
	logger.Println("Server successfully shut down")
}
