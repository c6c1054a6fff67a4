// Package extrato implements the monthly financial archival engine: it
// compacts a month's live payments, sessions, commissions and expenses into
// one immutable snapshot, deletes the originals in dependency order inside
// a single transaction, and can reverse the whole operation from a stored
// snapshot.
package extrato

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/diediegodie/inkledger/internal/audit"
	"github.com/diediegodie/inkledger/internal/ledger"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=extrato
type Repository interface {
	FetchPeriodRecords(ctx context.Context, p Period) (ledger.PeriodRecords, error)

	GetSnapshot(ctx context.Context, id uuid.UUID) (*Snapshot, error)
	LatestSnapshot(ctx context.Context, month, year int) (*Snapshot, error)
	ListSnapshots(ctx context.Context, month, year int) ([]SnapshotInfo, error)

	HasSuccessfulRun(ctx context.Context, month, year int) (bool, error)
	RecordRun(ctx context.Context, run RunLog) error

	BeginArchive(ctx context.Context, p Period) (ArchiveTx, error)
	BeginRestore(ctx context.Context) (RestoreTx, error)
}

// ArchiveTx is the single atomic unit of a compaction. Every method runs
// inside one database transaction; Rollback after a failure restores the
// period exactly as it was.
type ArchiveTx interface {
	SnapshotExists(ctx context.Context, month, year int) (bool, error)
	DeleteSnapshot(ctx context.Context, month, year int) error
	InsertSnapshot(ctx context.Context, snap *Snapshot) error

	DeleteCommissions(ctx context.Context, p Period) (int64, error)
	UnlinkSessionPayments(ctx context.Context, p Period) error
	DeletePayments(ctx context.Context, p Period) (int64, error)
	DeleteSessions(ctx context.Context, p Period) (int64, error)
	DeleteExpenses(ctx context.Context, p Period) (int64, error)

	Commit() error
	Rollback() error
}

// RestoreTx re-inserts archived documents as live rows, all or nothing.
type RestoreTx interface {
	InsertPayment(ctx context.Context, doc PaymentDoc) (uuid.UUID, error)
	InsertSession(ctx context.Context, doc SessionDoc, paymentID *uuid.UUID) (uuid.UUID, error)
	LinkPaymentSession(ctx context.Context, paymentID, sessionID uuid.UUID) error
	InsertCommission(ctx context.Context, doc CommissionDoc, paymentID uuid.UUID) error
	InsertExpense(ctx context.Context, doc ExpenseDoc) error

	Commit() error
	Rollback() error
}

// BackupGate decides whether a durable export exists for the period. A
// false answer aborts the run before any mutation.
type BackupGate interface {
	VerifyBeforeTransfer(ctx context.Context, year, month int) bool
}

type Service struct {
	repo      Repository
	gate      BackupGate
	auditor   audit.Recorder
	batchSize int
}

func NewService(repo Repository, gate BackupGate, auditor audit.Recorder, batchSize int) *Service {
	return &Service{
		repo:      repo,
		gate:      gate,
		auditor:   auditor,
		batchSize: normalizeBatchSize(batchSize),
	}
}

type GenerateParams struct {
	Month int
	Year  int
	Force bool
}

// Generate runs the full compaction pipeline for one period: resolve,
// backup gate, fetch, serialize, aggregate, then snapshot write plus
// dependency-ordered delete as one transaction. The run-log write at the
// end is best effort and never masks the outcome.
func (s *Service) Generate(ctx context.Context, params GenerateParams) (*Snapshot, error) {
	period, err := ResolvePeriod(params.Month, params.Year, time.Now())
	if err != nil {
		return nil, err
	}

	if !s.gate.VerifyBeforeTransfer(ctx, period.Year, period.Month) {
		s.audit(ctx, "extrato", "", "generate", "blocked", map[string]any{
			"month": period.Month, "year": period.Year, "reason": "backup missing",
		})
		s.recordRun(ctx, period, RunError, ErrBackupMissing.Error())

		return nil, ErrBackupMissing
	}

	records, err := s.repo.FetchPeriodRecords(ctx, period)
	if err != nil {
		s.recordRun(ctx, period, RunError, err.Error())
		return nil, fmt.Errorf("fetching period records: %w", err)
	}

	snap := BuildSnapshot(records, s.batchSize)
	snap.Month = period.Month
	snap.Year = period.Year

	if err := s.archive(ctx, period, records, snap, params.Force); err != nil {
		s.recordRun(ctx, period, RunError, err.Error())
		return nil, err
	}

	s.recordRun(ctx, period, RunSuccess, fmt.Sprintf("archived %d records", records.Count()))
	s.audit(ctx, "extrato", snap.ID.String(), "generate", "success", map[string]any{
		"month": period.Month, "year": period.Year, "records": records.Count(),
	})
	slog.Info("extrato generated",
		"month", period.Month, "year", period.Year,
		"records", records.Count(), "revenue", snap.Totals.Revenue)

	return snap, nil
}

// archive is the atomic unit: snapshot insert and dependency-ordered delete
// commit together or not at all.
func (s *Service) archive(ctx context.Context, period Period, records ledger.PeriodRecords, snap *Snapshot, force bool) error {
	tx, err := s.repo.BeginArchive(ctx, period)
	if err != nil {
		return fmt.Errorf("beginning archive tx: %w", err)
	}
	defer tx.Rollback()

	exists, err := tx.SnapshotExists(ctx, period.Month, period.Year)
	if err != nil {
		return fmt.Errorf("checking existing extrato: %w", err)
	}

	if exists {
		if !force {
			s.audit(ctx, "extrato", "", "generate", "duplicate_blocked", map[string]any{
				"month": period.Month, "year": period.Year,
			})

			return ErrSnapshotExists
		}

		if err := tx.DeleteSnapshot(ctx, period.Month, period.Year); err != nil {
			return fmt.Errorf("deleting prior extrato: %w", err)
		}
	}

	if err := tx.InsertSnapshot(ctx, snap); err != nil {
		return fmt.Errorf("inserting extrato: %w", err)
	}

	// Commissions hold a hard reference to payments and must go first.
	// The session<->payment back-references are broken before either side
	// is removed.
	commissions, err := tx.DeleteCommissions(ctx, period)
	if err != nil {
		return fmt.Errorf("deleting commissions: %w", err)
	}

	if err := tx.UnlinkSessionPayments(ctx, period); err != nil {
		return fmt.Errorf("unlinking session payments: %w", err)
	}

	payments, err := tx.DeletePayments(ctx, period)
	if err != nil {
		return fmt.Errorf("deleting payments: %w", err)
	}

	sessions, err := tx.DeleteSessions(ctx, period)
	if err != nil {
		return fmt.Errorf("deleting sessions: %w", err)
	}

	expenses, err := tx.DeleteExpenses(ctx, period)
	if err != nil {
		return fmt.Errorf("deleting expenses: %w", err)
	}

	deleted := commissions + payments + sessions + expenses
	if deleted != int64(records.Count()) {
		return fmt.Errorf("%w: deleted %d, fetched %d", ErrCountMismatch, deleted, records.Count())
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing archive: %w", err)
	}

	return nil
}

// CheckAndGenerate is the scheduler entry point. It targets the previous
// calendar month and skips silently when a success run-log entry already
// exists for it.
func (s *Service) CheckAndGenerate(ctx context.Context) error {
	period, err := ResolvePeriod(0, 0, time.Now())
	if err != nil {
		return err
	}

	done, err := s.repo.HasSuccessfulRun(ctx, period.Month, period.Year)
	if err != nil {
		return fmt.Errorf("checking run log: %w", err)
	}

	if done {
		slog.Info("extrato already generated, skipping", "month", period.Month, "year", period.Year)
		return nil
	}

	if _, err := s.Generate(ctx, GenerateParams{Month: period.Month, Year: period.Year}); err != nil {
		return err
	}

	return nil
}

// ListSnapshots returns snapshot metadata newest-first, optionally filtered
// to one period (zero month and year mean no filter).
func (s *Service) ListSnapshots(ctx context.Context, month, year int) ([]SnapshotInfo, error) {
	return s.repo.ListSnapshots(ctx, month, year)
}

func (s *Service) GetSnapshot(ctx context.Context, id uuid.UUID) (*Snapshot, error) {
	return s.repo.GetSnapshot(ctx, id)
}

// RestoreFromSnapshot rehydrates the live rows from a stored snapshot in
// one transaction. Restored rows get new identifiers; the snapshot row
// itself is kept — the archival event stays in history even once undone.
func (s *Service) RestoreFromSnapshot(ctx context.Context, snapshotID uuid.UUID, correlationID string) error {
	snap, err := s.repo.GetSnapshot(ctx, snapshotID)
	if err != nil {
		return err
	}

	return s.restore(ctx, snap, correlationID)
}

// RestoreLatest restores the most recent snapshot for a period.
func (s *Service) RestoreLatest(ctx context.Context, month, year int, correlationID string) error {
	snap, err := s.repo.LatestSnapshot(ctx, month, year)
	if err != nil {
		return err
	}

	return s.restore(ctx, snap, correlationID)
}

func (s *Service) restore(ctx context.Context, snap *Snapshot, correlationID string) error {
	if err := s.applyRestore(ctx, snap, correlationID); err != nil {
		slog.Error("extrato restore failed",
			"snapshot_id", snap.ID, "month", snap.Month, "year", snap.Year,
			"correlation_id", correlationID, "error", err)

		return fmt.Errorf("restoring extrato %s (correlation %s): %w", snap.ID, correlationID, err)
	}

	s.audit(ctx, "extrato", snap.ID.String(), "restore", "success", map[string]any{
		"month": snap.Month, "year": snap.Year, "correlation_id": correlationID,
	})
	slog.Info("extrato restored",
		"snapshot_id", snap.ID, "month", snap.Month, "year", snap.Year,
		"payments", len(snap.Payments), "sessions", len(snap.Sessions),
		"commissions", len(snap.Commissions), "expenses", len(snap.Expenses),
		"correlation_id", correlationID)

	return nil
}

func (s *Service) applyRestore(ctx context.Context, snap *Snapshot, correlationID string) error {
	tx, err := s.repo.BeginRestore(ctx)
	if err != nil {
		return fmt.Errorf("beginning restore tx: %w", err)
	}
	defer tx.Rollback()

	paymentIDs := make(map[uuid.UUID]uuid.UUID, len(snap.Payments))

	for _, doc := range snap.Payments {
		newID, err := tx.InsertPayment(ctx, doc)
		if err != nil {
			return fmt.Errorf("restoring payment: %w", err)
		}

		paymentIDs[doc.ID] = newID
	}

	sessionIDs := make(map[uuid.UUID]uuid.UUID, len(snap.Sessions))

	for _, doc := range snap.Sessions {
		var paymentID *uuid.UUID

		if doc.PaymentID != nil {
			if mapped, ok := paymentIDs[*doc.PaymentID]; ok {
				paymentID = &mapped
			}
		}

		newID, err := tx.InsertSession(ctx, doc, paymentID)
		if err != nil {
			return fmt.Errorf("restoring session: %w", err)
		}

		sessionIDs[doc.ID] = newID
	}

	// Re-link the payment side of the session<->payment pair now that both
	// rows exist again.
	for _, doc := range snap.Payments {
		if doc.SessionID == nil {
			continue
		}

		sessionID, ok := sessionIDs[*doc.SessionID]
		if !ok {
			continue
		}

		if err := tx.LinkPaymentSession(ctx, paymentIDs[doc.ID], sessionID); err != nil {
			return fmt.Errorf("relinking payment to session: %w", err)
		}
	}

	for _, doc := range snap.Commissions {
		paymentID, ok := paymentIDs[doc.PaymentID]
		if !ok {
			slog.Warn("skipping commission without restored payment",
				"commission_id", doc.ID, "payment_id", doc.PaymentID, "correlation_id", correlationID)
			continue
		}

		if err := tx.InsertCommission(ctx, doc, paymentID); err != nil {
			return fmt.Errorf("restoring commission: %w", err)
		}
	}

	for _, doc := range snap.Expenses {
		if err := tx.InsertExpense(ctx, doc); err != nil {
			return fmt.Errorf("restoring expense: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing restore: %w", err)
	}

	return nil
}

// recordRun appends a run-log entry. Failures here are logged and
// swallowed: a broken run log must never change the operation's outcome.
func (s *Service) recordRun(ctx context.Context, period Period, status RunStatus, message string) {
	run := RunLog{
		Month:   period.Month,
		Year:    period.Year,
		RanAt:   time.Now().UTC(),
		Status:  status,
		Message: message,
	}

	if err := s.repo.RecordRun(ctx, run); err != nil {
		slog.Warn("recording run log", "month", period.Month, "year", period.Year, "error", err)
	}
}

func (s *Service) audit(ctx context.Context, kind, id, action, status string, details map[string]any) {
	if s.auditor == nil {
		return
	}

	entry := audit.Entry{
		EntityKind: kind,
		EntityID:   id,
		Action:     action,
		Status:     status,
		Details:    details,
	}

	if err := s.auditor.Record(ctx, entry); err != nil {
		slog.Warn("recording audit entry", "action", action, "error", err)
	}
}
