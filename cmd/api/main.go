package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	auditStore "github.com/diediegodie/inkledger/internal/audit/store"
	"github.com/diediegodie/inkledger/internal/backup"
	"github.com/diediegodie/inkledger/internal/config"
	"github.com/diediegodie/inkledger/internal/database"
	"github.com/diediegodie/inkledger/internal/extrato"
	extratoStore "github.com/diediegodie/inkledger/internal/extrato/store"
	inkHttp "github.com/diediegodie/inkledger/internal/http"
	backupHandler "github.com/diediegodie/inkledger/internal/http/backup"
	extratoHandler "github.com/diediegodie/inkledger/internal/http/extrato"
	"github.com/diediegodie/inkledger/internal/scheduler"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	provider := backup.NewHTTPProvider(cfg.Backup.BaseURL, cfg.Backup.Token)

	var (
		gate       = backup.NewGate(provider, cfg.Archive.RequireBackup)
		auditor    = auditStore.New(db)
		extratoSvc = extrato.NewService(extratoStore.New(db), gate, auditor, cfg.ArchiveBatchSize())
	)

	var (
		extratoH = extratoHandler.NewHandler(extratoSvc)
		backupH  = backupHandler.NewHandler(provider)
	)

	worker := scheduler.New(extratoSvc, cfg.Archive.CheckInterval)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go worker.Run(ctx)

	router := inkHttp.New(cfg.Server.AllowedOrigins, extratoH, backupH)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
