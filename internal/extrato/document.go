package extrato

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Documents in an extrato are self-contained: dates are ISO-8601 strings,
// related entities appear as the display name captured at archival time,
// never as foreign keys. Once the live rows are gone these documents are
// all that remains of the period.

// PaymentDoc is the archived form of a ledger.Payment.
type PaymentDoc struct {
	ID              uuid.UUID       `json:"id"`
	Date            string          `json:"date"`
	Amount          decimal.Decimal `json:"amount"`
	Method          string          `json:"payment_method"`
	Note            string          `json:"note,omitempty"`
	ClientName      *string         `json:"client_name"`
	ArtistName      string          `json:"artist_name"`
	SessionID       *uuid.UUID      `json:"session_id,omitempty"`
	CalendarEventID *string         `json:"calendar_event_id,omitempty"`
}

// SessionDoc is the archived form of a ledger.Session.
type SessionDoc struct {
	ID         uuid.UUID       `json:"id"`
	Date       string          `json:"date"`
	StartTime  string          `json:"start_time,omitempty"`
	Amount     decimal.Decimal `json:"amount"`
	Note       string          `json:"note,omitempty"`
	ClientName *string         `json:"client_name"`
	ArtistName string          `json:"artist_name"`
	Status     string          `json:"status"`
	PaymentID  *uuid.UUID      `json:"payment_id,omitempty"`
	// CalendarEventID is kept verbatim so a restored session can be matched
	// back to its calendar entry.
	CalendarEventID *string `json:"calendar_event_id,omitempty"`
}

// CommissionDoc is the archived form of a ledger.Commission. It carries the
// owning payment's amount and, transitively, that payment's session client
// name, so the document stays meaningful after both rows are deleted.
type CommissionDoc struct {
	ID            uuid.UUID       `json:"id"`
	PaymentID     uuid.UUID       `json:"payment_id"`
	PaymentAmount decimal.Decimal `json:"payment_amount"`
	ClientName    *string         `json:"client_name"`
	ArtistName    string          `json:"artist_name"`
	Percentage    decimal.Decimal `json:"percentage"`
	Amount        decimal.Decimal `json:"amount"`
	Note          string          `json:"note,omitempty"`
	CreatedAt     string          `json:"created_at"`
}

// ExpenseDoc is the archived form of a ledger.Expense. CreatedBy is the
// creator's display name captured at archival time, like every other
// relation in a document.
type ExpenseDoc struct {
	ID          uuid.UUID       `json:"id"`
	Date        string          `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Method      string          `json:"payment_method"`
	Category    string          `json:"category,omitempty"`
	CreatedBy   string          `json:"created_by"`
}

// ArtistTotals is one by-artist breakdown entry. Only artists with a
// positive commission total appear in the breakdown.
type ArtistTotals struct {
	ArtistName string          `json:"artist_name"`
	Revenue    decimal.Decimal `json:"revenue"`
	Commission decimal.Decimal `json:"commission"`
}

// Totals is the aggregate document stored alongside the serialized records.
// It is always re-derivable from the snapshot's own documents.
type Totals struct {
	Revenue                 decimal.Decimal            `json:"revenue_total"`
	CommissionTotal         decimal.Decimal            `json:"commission_total"`
	ExpenseTotal            decimal.Decimal            `json:"expense_total"`
	Balance                 decimal.Decimal            `json:"balance"`
	NetRevenue              decimal.Decimal            `json:"net_revenue"`
	ByArtist                []ArtistTotals             `json:"by_artist"`
	ByPaymentMethod         map[string]decimal.Decimal `json:"by_payment_method"`
	ExpensesByPaymentMethod map[string]decimal.Decimal `json:"expenses_by_payment_method"`
	ExpensesByCategory      map[string]decimal.Decimal `json:"expenses_by_category"`
}

// Snapshot is the immutable monthly archival record ("extrato"). One row
// exists per (month, year); it is never mutated, only superseded via a
// forced regeneration or reversed via restore.
type Snapshot struct {
	ID          uuid.UUID
	Month       int
	Year        int
	Payments    []PaymentDoc
	Sessions    []SessionDoc
	Commissions []CommissionDoc
	Expenses    []ExpenseDoc
	Totals      Totals
	CreatedAt   time.Time
}

// SnapshotInfo is the listing projection of a Snapshot.
type SnapshotInfo struct {
	ID        uuid.UUID
	Month     int
	Year      int
	CreatedAt time.Time
}

// RunStatus is the outcome of one archival attempt.
type RunStatus string

const (
	RunSuccess RunStatus = "success"
	RunError   RunStatus = "error"
)

// RunLog is one append-only entry per archival attempt for a period. A
// success entry is what makes the scheduled job idempotent.
type RunLog struct {
	ID      uuid.UUID
	Month   int
	Year    int
	RanAt   time.Time
	Status  RunStatus
	Message string
}
