// Package audit appends structured trail entries for archival operations.
// Entries are append-only and never deleted by the engine.
package audit

import (
	"context"
	"time"
)

// Entry is one audit row. Details holds arbitrary structured context and
// is persisted as jsonb.
type Entry struct {
	EntityKind string
	EntityID   string
	Action     string
	Status     string
	Details    map[string]any
	CreatedAt  time.Time
}

//go:generate mockgen -source=audit.go -destination=recorder_mock.go -package=audit
type Recorder interface {
	Record(ctx context.Context, e Entry) error
}
