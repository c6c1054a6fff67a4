package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"time"

	"github.com/google/uuid"

	"github.com/diediegodie/inkledger/internal/extrato"
	"github.com/diediegodie/inkledger/internal/ledger"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanPayment(s scanner) (*ledger.Payment, error) {
	var p ledger.Payment

	var note sql.NullString

	if err := s.Scan(
		&p.ID, &p.Date, &p.Amount, &p.Method, &note,
		&p.ClientID, &p.ClientName, &p.ArtistID, &p.ArtistName,
		&p.SessionID, &p.CalendarEventID, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}

	p.Note = note.String

	return &p, nil
}

func scanSession(s scanner) (*ledger.Session, error) {
	var sess ledger.Session

	var note, startTime sql.NullString

	var status string

	if err := s.Scan(
		&sess.ID, &sess.Date, &startTime, &sess.Amount, &note,
		&sess.ClientID, &sess.ClientName, &sess.ArtistID, &sess.ArtistName,
		&status, &sess.CalendarEventID, &sess.PaymentID, &sess.CreatedAt, &sess.UpdatedAt,
	); err != nil {
		return nil, err
	}

	sess.Note = note.String
	sess.StartTime = startTime.String
	sess.Status = ledger.SessionStatus(status)

	return &sess, nil
}

func scanCommission(s scanner) (*ledger.Commission, error) {
	var c ledger.Commission

	var note sql.NullString

	if err := s.Scan(
		&c.ID, &c.PaymentID, &c.PaymentAmount, &c.SessionClientName,
		&c.ArtistID, &c.ArtistName, &c.Percentage, &c.Amount, &note, &c.CreatedAt,
	); err != nil {
		return nil, err
	}

	c.Note = note.String

	return &c, nil
}

func scanExpense(s scanner) (*ledger.Expense, error) {
	var e ledger.Expense

	var description sql.NullString

	if err := s.Scan(
		&e.ID, &e.Date, &e.Amount, &description, &e.Method,
		&e.Category, &e.CreatedBy, &e.CreatedByName, &e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		return nil, err
	}

	e.Description = description.String

	return &e, nil
}

// FetchPeriodRecords loads everything eligible for compaction, with the
// related display names resolved eagerly. Commissions are selected through
// their owning payment's date, not their own creation time, so commissions
// created slightly outside the window still travel with their payment.
func (s *Store) FetchPeriodRecords(ctx context.Context, p extrato.Period) (ledger.PeriodRecords, error) {
	var records ledger.PeriodRecords

	start, end := p.Start(), p.End()

	paymentsQuery := `
		SELECT p.id, p.date, p.amount, p.payment_method, p.note,
			p.client_id, c.name, p.artist_id, a.name,
			p.session_id, p.calendar_event_id, p.created_at, p.updated_at
		FROM payments p
		JOIN artists a ON p.artist_id = a.id
		LEFT JOIN clients c ON p.client_id = c.id
		WHERE p.date >= $1 AND p.date < $2
		ORDER BY p.date ASC
	`

	rows, err := s.db.QueryContext(ctx, paymentsQuery, start, end)
	if err != nil {
		return records, fmt.Errorf("listing payments: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		payment, err := scanPayment(rows)
		if err != nil {
			return records, fmt.Errorf("scanning payment: %w", err)
		}

		records.Payments = append(records.Payments, payment)
	}

	if err := rows.Err(); err != nil {
		return records, fmt.Errorf("iterating payment rows: %w", err)
	}

	sessionsQuery := `
		SELECT s.id, s.date, s.start_time, s.amount, s.note,
			s.client_id, c.name, s.artist_id, a.name,
			s.status, s.calendar_event_id, s.payment_id, s.created_at, s.updated_at
		FROM sessions s
		JOIN artists a ON s.artist_id = a.id
		LEFT JOIN clients c ON s.client_id = c.id
		WHERE s.date >= $1 AND s.date < $2
		ORDER BY s.date ASC
	`

	rows, err = s.db.QueryContext(ctx, sessionsQuery, start, end)
	if err != nil {
		return records, fmt.Errorf("listing sessions: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			return records, fmt.Errorf("scanning session: %w", err)
		}

		records.Sessions = append(records.Sessions, session)
	}

	if err := rows.Err(); err != nil {
		return records, fmt.Errorf("iterating session rows: %w", err)
	}

	commissionsQuery := `
		SELECT c.id, c.payment_id, p.amount, cl.name,
			c.artist_id, a.name, c.percentage, c.amount, c.note, c.created_at
		FROM commissions c
		JOIN payments p ON c.payment_id = p.id
		JOIN artists a ON c.artist_id = a.id
		LEFT JOIN sessions s ON p.session_id = s.id
		LEFT JOIN clients cl ON s.client_id = cl.id
		WHERE p.date >= $1 AND p.date < $2
		ORDER BY p.date ASC
	`

	rows, err = s.db.QueryContext(ctx, commissionsQuery, start, end)
	if err != nil {
		return records, fmt.Errorf("listing commissions: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		commission, err := scanCommission(rows)
		if err != nil {
			return records, fmt.Errorf("scanning commission: %w", err)
		}

		records.Commissions = append(records.Commissions, commission)
	}

	if err := rows.Err(); err != nil {
		return records, fmt.Errorf("iterating commission rows: %w", err)
	}

	expensesQuery := `
		SELECT e.id, e.date, e.amount, e.description, e.payment_method,
			e.category, e.created_by, u.name, e.created_at, e.updated_at
		FROM expenses e
		JOIN users u ON e.created_by = u.id
		WHERE e.date >= $1 AND e.date < $2
		ORDER BY e.date ASC
	`

	rows, err = s.db.QueryContext(ctx, expensesQuery, start, end)
	if err != nil {
		return records, fmt.Errorf("listing expenses: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		expense, err := scanExpense(rows)
		if err != nil {
			return records, fmt.Errorf("scanning expense: %w", err)
		}

		records.Expenses = append(records.Expenses, expense)
	}

	if err := rows.Err(); err != nil {
		return records, fmt.Errorf("iterating expense rows: %w", err)
	}

	return records, nil
}

const selectSnapshotColumns = `
	e.id, e.mes, e.ano, e.pagamentos, e.sessoes, e.comissoes, e.gastos, e.totais, e.created_at
`

// unmarshalDocs parses one serialized document column. An absent or empty
// column is an empty collection, never an error.
func unmarshalDocs[T any](raw sql.NullString) ([]T, error) {
	if !raw.Valid || raw.String == "" {
		return []T{}, nil
	}

	var docs []T
	if err := json.Unmarshal([]byte(raw.String), &docs); err != nil {
		return nil, err
	}

	if docs == nil {
		docs = []T{}
	}

	return docs, nil
}

func scanSnapshot(s scanner) (*extrato.Snapshot, error) {
	var snap extrato.Snapshot

	var pagamentos, sessoes, comissoes, gastos, totais sql.NullString

	if err := s.Scan(
		&snap.ID, &snap.Month, &snap.Year,
		&pagamentos, &sessoes, &comissoes, &gastos, &totais,
		&snap.CreatedAt,
	); err != nil {
		return nil, err
	}

	var err error

	if snap.Payments, err = unmarshalDocs[extrato.PaymentDoc](pagamentos); err != nil {
		return nil, fmt.Errorf("parsing pagamentos: %w", err)
	}

	if snap.Sessions, err = unmarshalDocs[extrato.SessionDoc](sessoes); err != nil {
		return nil, fmt.Errorf("parsing sessoes: %w", err)
	}

	if snap.Commissions, err = unmarshalDocs[extrato.CommissionDoc](comissoes); err != nil {
		return nil, fmt.Errorf("parsing comissoes: %w", err)
	}

	if snap.Expenses, err = unmarshalDocs[extrato.ExpenseDoc](gastos); err != nil {
		return nil, fmt.Errorf("parsing gastos: %w", err)
	}

	if totais.Valid && totais.String != "" {
		if err := json.Unmarshal([]byte(totais.String), &snap.Totals); err != nil {
			return nil, fmt.Errorf("parsing totais: %w", err)
		}
	}

	return &snap, nil
}

func (s *Store) GetSnapshot(ctx context.Context, id uuid.UUID) (*extrato.Snapshot, error) {
	query := `SELECT ` + selectSnapshotColumns + ` FROM extratos e WHERE e.id = $1`

	snap, err := scanSnapshot(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, extrato.ErrSnapshotNotFound
		}

		return nil, fmt.Errorf("getting extrato: %w", err)
	}

	return snap, nil
}

func (s *Store) LatestSnapshot(ctx context.Context, month, year int) (*extrato.Snapshot, error) {
	query := `SELECT ` + selectSnapshotColumns + `
		FROM extratos e
		WHERE e.mes = $1 AND e.ano = $2
		ORDER BY e.created_at DESC
		LIMIT 1`

	snap, err := scanSnapshot(s.db.QueryRowContext(ctx, query, month, year))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, extrato.ErrSnapshotNotFound
		}

		return nil, fmt.Errorf("getting latest extrato: %w", err)
	}

	return snap, nil
}

func (s *Store) ListSnapshots(ctx context.Context, month, year int) ([]extrato.SnapshotInfo, error) {
	query := `SELECT e.id, e.mes, e.ano, e.created_at FROM extratos e`

	var args []any

	argIdx := 1

	if month != 0 {
		query += fmt.Sprintf(" WHERE e.mes = $%d", argIdx)

		args = append(args, month)
		argIdx++
	}

	if year != 0 {
		if month != 0 {
			query += fmt.Sprintf(" AND e.ano = $%d", argIdx)
		} else {
			query += fmt.Sprintf(" WHERE e.ano = $%d", argIdx)
		}

		args = append(args, year)
	}

	query += " ORDER BY e.created_at DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing extratos: %w", err)
	}
	defer rows.Close()

	var infos []extrato.SnapshotInfo

	for rows.Next() {
		var info extrato.SnapshotInfo
		if err := rows.Scan(&info.ID, &info.Month, &info.Year, &info.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning extrato row: %w", err)
		}

		infos = append(infos, info)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating extrato rows: %w", err)
	}

	return infos, nil
}

func (s *Store) HasSuccessfulRun(ctx context.Context, month, year int) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM extrato_run_logs
			WHERE mes = $1 AND ano = $2 AND status = 'success'
		)
	`

	var exists bool
	if err := s.db.QueryRowContext(ctx, query, month, year).Scan(&exists); err != nil {
		return false, fmt.Errorf("checking run log: %w", err)
	}

	return exists, nil
}

func (s *Store) RecordRun(ctx context.Context, run extrato.RunLog) error {
	query := `
		INSERT INTO extrato_run_logs (mes, ano, ran_at, status, message)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := s.db.ExecContext(ctx, query, run.Month, run.Year, run.RanAt, run.Status, run.Message)
	if err != nil {
		return fmt.Errorf("recording run: %w", err)
	}

	return nil
}

// archiveLockKey derives the advisory-lock key for one period. The lock
// covers the whole check/serialize/delete sequence, not just the final
// insert that the (mes, ano) unique index protects.
func archiveLockKey(month, year int) int64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "extrato:%04d-%02d", year, month)

	return int64(h.Sum64())
}

type archiveTx struct {
	tx *sql.Tx
}

func (s *Store) BeginArchive(ctx context.Context, p extrato.Period) (extrato.ArchiveTx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning archive tx: %w", err)
	}

	lockKey := archiveLockKey(p.Month, p.Year)
	if _, err := dbTx.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", lockKey); err != nil {
		dbTx.Rollback()
		return nil, fmt.Errorf("acquiring archive lock: %w", err)
	}

	return &archiveTx{tx: dbTx}, nil
}

func (atx *archiveTx) Commit() error   { return atx.tx.Commit() }
func (atx *archiveTx) Rollback() error { return atx.tx.Rollback() }

func (atx *archiveTx) SnapshotExists(ctx context.Context, month, year int) (bool, error) {
	var exists bool

	err := atx.tx.QueryRowContext(ctx,
		"SELECT EXISTS (SELECT 1 FROM extratos WHERE mes = $1 AND ano = $2)", month, year,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("checking extrato existence: %w", err)
	}

	return exists, nil
}

func (atx *archiveTx) DeleteSnapshot(ctx context.Context, month, year int) error {
	_, err := atx.tx.ExecContext(ctx, "DELETE FROM extratos WHERE mes = $1 AND ano = $2", month, year)
	if err != nil {
		return fmt.Errorf("deleting extrato: %w", err)
	}

	return nil
}

func (atx *archiveTx) InsertSnapshot(ctx context.Context, snap *extrato.Snapshot) error {
	pagamentos, err := json.Marshal(snap.Payments)
	if err != nil {
		return fmt.Errorf("marshaling pagamentos: %w", err)
	}

	sessoes, err := json.Marshal(snap.Sessions)
	if err != nil {
		return fmt.Errorf("marshaling sessoes: %w", err)
	}

	comissoes, err := json.Marshal(snap.Commissions)
	if err != nil {
		return fmt.Errorf("marshaling comissoes: %w", err)
	}

	gastos, err := json.Marshal(snap.Expenses)
	if err != nil {
		return fmt.Errorf("marshaling gastos: %w", err)
	}

	totais, err := json.Marshal(snap.Totals)
	if err != nil {
		return fmt.Errorf("marshaling totais: %w", err)
	}

	query := `
		INSERT INTO extratos (mes, ano, pagamentos, sessoes, comissoes, gastos, totais, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING id, created_at
	`

	err = atx.tx.QueryRowContext(ctx, query,
		snap.Month, snap.Year,
		string(pagamentos), string(sessoes), string(comissoes), string(gastos), string(totais),
	).Scan(&snap.ID, &snap.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting extrato: %w", err)
	}

	return nil
}

func (atx *archiveTx) DeleteCommissions(ctx context.Context, p extrato.Period) (int64, error) {
	query := `
		DELETE FROM commissions c
		USING payments p
		WHERE c.payment_id = p.id AND p.date >= $1 AND p.date < $2
	`

	res, err := atx.tx.ExecContext(ctx, query, p.Start(), p.End())
	if err != nil {
		return 0, fmt.Errorf("deleting commissions: %w", err)
	}

	return res.RowsAffected()
}

func (atx *archiveTx) UnlinkSessionPayments(ctx context.Context, p extrato.Period) error {
	query := `
		UPDATE sessions
		SET payment_id = NULL
		WHERE date >= $1 AND date < $2 AND payment_id IS NOT NULL
	`

	if _, err := atx.tx.ExecContext(ctx, query, p.Start(), p.End()); err != nil {
		return fmt.Errorf("unlinking session payments: %w", err)
	}

	return nil
}

func (atx *archiveTx) DeletePayments(ctx context.Context, p extrato.Period) (int64, error) {
	res, err := atx.tx.ExecContext(ctx,
		"DELETE FROM payments WHERE date >= $1 AND date < $2", p.Start(), p.End())
	if err != nil {
		return 0, fmt.Errorf("deleting payments: %w", err)
	}

	return res.RowsAffected()
}

func (atx *archiveTx) DeleteSessions(ctx context.Context, p extrato.Period) (int64, error) {
	res, err := atx.tx.ExecContext(ctx,
		"DELETE FROM sessions WHERE date >= $1 AND date < $2", p.Start(), p.End())
	if err != nil {
		return 0, fmt.Errorf("deleting sessions: %w", err)
	}

	return res.RowsAffected()
}

func (atx *archiveTx) DeleteExpenses(ctx context.Context, p extrato.Period) (int64, error) {
	res, err := atx.tx.ExecContext(ctx,
		"DELETE FROM expenses WHERE date >= $1 AND date < $2", p.Start(), p.End())
	if err != nil {
		return 0, fmt.Errorf("deleting expenses: %w", err)
	}

	return res.RowsAffected()
}

type restoreTx struct {
	tx *sql.Tx
}

func (s *Store) BeginRestore(ctx context.Context) (extrato.RestoreTx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning restore tx: %w", err)
	}

	return &restoreTx{tx: dbTx}, nil
}

func (rtx *restoreTx) Commit() error   { return rtx.tx.Commit() }
func (rtx *restoreTx) Rollback() error { return rtx.tx.Rollback() }

func parseDocDate(value string) (time.Time, error) {
	t, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing document date %q: %w", value, err)
	}

	return t, nil
}

// Restored rows resolve their artist and client references by the display
// name captured at archival time. A name that no longer matches a row
// restores as NULL rather than failing.
func (rtx *restoreTx) InsertPayment(ctx context.Context, doc extrato.PaymentDoc) (uuid.UUID, error) {
	date, err := parseDocDate(doc.Date)
	if err != nil {
		return uuid.Nil, err
	}

	query := `
		INSERT INTO payments (date, amount, payment_method, note, client_id, artist_id, calendar_event_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4,
			(SELECT id FROM clients WHERE name = $5 LIMIT 1),
			(SELECT id FROM artists WHERE name = $6 LIMIT 1),
			$7, NOW(), NOW())
		RETURNING id
	`

	var id uuid.UUID

	err = rtx.tx.QueryRowContext(ctx, query,
		date, doc.Amount, doc.Method, doc.Note, doc.ClientName, doc.ArtistName, doc.CalendarEventID,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("inserting payment: %w", err)
	}

	return id, nil
}

func (rtx *restoreTx) InsertSession(ctx context.Context, doc extrato.SessionDoc, paymentID *uuid.UUID) (uuid.UUID, error) {
	date, err := parseDocDate(doc.Date)
	if err != nil {
		return uuid.Nil, err
	}

	query := `
		INSERT INTO sessions (date, start_time, amount, note, client_id, artist_id, status, payment_id, calendar_event_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4,
			(SELECT id FROM clients WHERE name = $5 LIMIT 1),
			(SELECT id FROM artists WHERE name = $6 LIMIT 1),
			$7, $8, $9, NOW(), NOW())
		RETURNING id
	`

	var id uuid.UUID

	err = rtx.tx.QueryRowContext(ctx, query,
		date, doc.StartTime, doc.Amount, doc.Note, doc.ClientName, doc.ArtistName, doc.Status, paymentID, doc.CalendarEventID,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("inserting session: %w", err)
	}

	return id, nil
}

func (rtx *restoreTx) LinkPaymentSession(ctx context.Context, paymentID, sessionID uuid.UUID) error {
	query := `UPDATE payments SET session_id = $1, updated_at = NOW() WHERE id = $2`

	if _, err := rtx.tx.ExecContext(ctx, query, sessionID, paymentID); err != nil {
		return fmt.Errorf("linking payment to session: %w", err)
	}

	return nil
}

func (rtx *restoreTx) InsertCommission(ctx context.Context, doc extrato.CommissionDoc, paymentID uuid.UUID) error {
	query := `
		INSERT INTO commissions (payment_id, artist_id, percentage, amount, note, created_at)
		VALUES ($1,
			(SELECT id FROM artists WHERE name = $2 LIMIT 1),
			$3, $4, $5, NOW())
	`

	_, err := rtx.tx.ExecContext(ctx, query,
		paymentID, doc.ArtistName, doc.Percentage, doc.Amount, doc.Note)
	if err != nil {
		return fmt.Errorf("inserting commission: %w", err)
	}

	return nil
}

func (rtx *restoreTx) InsertExpense(ctx context.Context, doc extrato.ExpenseDoc) error {
	date, err := parseDocDate(doc.Date)
	if err != nil {
		return err
	}

	var category *string
	if doc.Category != "" {
		category = &doc.Category
	}

	query := `
		INSERT INTO expenses (date, amount, description, payment_method, category, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5,
			(SELECT id FROM users WHERE name = $6 LIMIT 1),
			NOW(), NOW())
	`

	_, err = rtx.tx.ExecContext(ctx, query,
		date, doc.Amount, doc.Description, doc.Method, category, doc.CreatedBy)
	if err != nil {
		return fmt.Errorf("inserting expense: %w", err)
	}

	return nil
}
