package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/diediegodie/inkledger/internal/audit"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Record(ctx context.Context, e audit.Entry) error {
	details, err := json.Marshal(e.Details)
	if err != nil {
		return fmt.Errorf("marshaling audit details: %w", err)
	}

	query := `
		INSERT INTO audit_log (entity_kind, entity_id, action, status, details, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
	`

	if _, err := s.db.ExecContext(ctx, query, e.EntityKind, e.EntityID, e.Action, e.Status, details); err != nil {
		return fmt.Errorf("recording audit entry: %w", err)
	}

	return nil
}
