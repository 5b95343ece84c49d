package main

import (
	"log"
	"net/http"

	"go.uber.org/zap"

	"items-api/config"
	"items-api/controllers"
	"items-api/routes"
	"items-api/storage"
)

func main() {
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	// Pick the storage backend once; handlers only ever see the interface.
	store, kind, err := storage.Select(cfg, logger)
	if err != nil {
		logger.Fatal("failed to initialize storage", zap.Error(err))
	}

	controller := controllers.NewItemController(store, kind, logger)
	r := routes.SetupRoutes(controller, logger)

	logger.Info("listening", zap.String("addr", cfg.ListenAddr))
	log.Fatal(http.ListenAndServe(cfg.ListenAddr, r))
}
