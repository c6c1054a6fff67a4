// Package backup gates destructive archival on the existence of a durable
// export for the target period. The engine never creates backups itself;
// the Provider is an external collaborator.
package backup

import (
	"context"
	"log/slog"
	"time"
)

// Info describes the durable export a provider holds for one period.
type Info struct {
	Exists      bool      `json:"exists"`
	FileSize    int64     `json:"file_size"`
	RecordCount int64     `json:"record_count"`
	CreatedAt   time.Time `json:"created_at"`
}

//go:generate mockgen -source=backup.go -destination=provider_mock.go -package=backup
type Provider interface {
	VerifyBackupExists(ctx context.Context, year, month int) (bool, error)
	GetBackupInfo(ctx context.Context, year, month int) (*Info, error)
}

// Gate enforces the backup-before-transfer policy. Strict (required=true)
// passes the provider's answer through and fails closed on provider errors.
// Flexible treats a missing backup or a provider error as a warning and
// lets the run proceed; it is meant for lower environments only.
type Gate struct {
	provider Provider
	required bool
}

func NewGate(provider Provider, required bool) *Gate {
	return &Gate{provider: provider, required: required}
}

// VerifyBeforeTransfer reports whether the archival run may proceed. It is
// called before any mutation; a false result aborts with no side effects.
func (g *Gate) VerifyBeforeTransfer(ctx context.Context, year, month int) bool {
	exists, err := g.provider.VerifyBackupExists(ctx, year, month)

	if g.required {
		if err != nil {
			slog.Error("backup verification failed, blocking archival", "year", year, "month", month, "error", err)
			return false
		}

		return exists
	}

	if err != nil {
		slog.Warn("backup verification failed, proceeding without backup", "year", year, "month", month, "error", err)
		return true
	}

	if !exists {
		slog.Warn("no backup found for period, proceeding without backup", "year", year, "month", month)
	}

	return true
}
