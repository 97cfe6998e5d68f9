package main

import (
	"errors"
	"log/slog"
	"net/http"
	"os"

	"expenses/internal/api"
	"expenses/internal/config"
	"expenses/internal/storage/sqlite"
	"expenses/pkg/logging"
)

func main() {
	logging.Setup()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.DBPath)

	e := api.New(cfg, store)

	addr := ":" + cfg.Port
	slog.Info("Server starting", "address", addr)
	if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
