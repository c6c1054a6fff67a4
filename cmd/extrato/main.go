// Manual trigger for the archival engine: generate an extrato for an
// explicit period, or restore one from a stored snapshot.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	auditStore "github.com/diediegodie/inkledger/internal/audit/store"
	"github.com/diediegodie/inkledger/internal/backup"
	"github.com/diediegodie/inkledger/internal/config"
	"github.com/diediegodie/inkledger/internal/database"
	"github.com/diediegodie/inkledger/internal/extrato"
	extratoStore "github.com/diediegodie/inkledger/internal/extrato/store"
)

func main() {
	var (
		op            = flag.String("op", "generate", "operation: generate or restore")
		month         = flag.Int("month", 0, "target month (1-12); 0 means previous calendar month")
		year          = flag.Int("year", 0, "target year; 0 means previous calendar month")
		force         = flag.Bool("force", false, "overwrite an existing extrato for the period")
		snapshotID    = flag.String("snapshot", "", "snapshot id to restore; empty restores the latest for the period")
		correlationID = flag.String("correlation", "", "correlation id for restore tracing; generated when empty")
	)

	flag.Parse()

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
	gate := backup.NewGate(provider, cfg.Archive.RequireBackup)
	svc := extrato.NewService(extratoStore.New(db), gate, auditStore.New(db), cfg.ArchiveBatchSize())

	ctx := context.Background()

	switch *op {
	case "generate":
		snap, err := svc.Generate(ctx, extrato.GenerateParams{Month: *month, Year: *year, Force: *force})
		if err != nil {
			slog.Error("generate failed", "error", err)
			os.Exit(1)
		}

		fmt.Printf("extrato %s generated for %02d/%d (revenue %s, balance %s)\n",
			snap.ID, snap.Month, snap.Year, snap.Totals.Revenue, snap.Totals.Balance)

	case "restore":
		cid := *correlationID
		if cid == "" {
			cid = uuid.NewString()
		}

		if *snapshotID != "" {
			id, err := uuid.Parse(*snapshotID)
			if err != nil {
				slog.Error("invalid snapshot id", "error", err)
				os.Exit(1)
			}

			err = svc.RestoreFromSnapshot(ctx, id, cid)
			if err != nil {
				slog.Error("restore failed", "correlation_id", cid, "error", err)
				os.Exit(1)
			}
		} else {
			if err := svc.RestoreLatest(ctx, *month, *year, cid); err != nil {
				slog.Error("restore failed", "correlation_id", cid, "error", err)
				os.Exit(1)
			}
		}

		fmt.Printf("restore completed (correlation %s)\n", cid)

	default:
		slog.Error("unknown operation", "op", *op)
		os.Exit(1)
	}
}
