// Package ledger holds the live operational records of the studio: payments,
// tattoo sessions, artist commissions and expenses. These rows are created
// and mutated by the booking workflow; the archival engine only reads them
// and, at the end of a period, deletes them.
package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SessionStatus represents the lifecycle state of a tattoo session.
type SessionStatus string

const (
	SessionScheduled SessionStatus = "scheduled"
	SessionActive    SessionStatus = "active"
	SessionCompleted SessionStatus = "completed"
	SessionPaid      SessionStatus = "paid"
	SessionCancelled SessionStatus = "cancelled"
)

// Payment represents money received. ClientID is nil for walk-ins.
type Payment struct {
	ID              uuid.UUID
	Date            time.Time
	Amount          decimal.Decimal
	Method          string
	Note            string
	ClientID        *uuid.UUID
	ClientName      *string // Loaded via JOIN
	ArtistID        uuid.UUID
	ArtistName      string // Loaded via JOIN
	SessionID       *uuid.UUID
	CalendarEventID *string // Unique when present
	CreatedAt       time.Time
	UpdatedAt       *time.Time
}

// Session represents a booked tattoo session. A session carries an amount
// but represents no money received until a Payment is linked to it.
type Session struct {
	ID              uuid.UUID
	Date            time.Time
	StartTime       string
	Amount          decimal.Decimal
	Note            string
	ClientID        uuid.UUID
	ClientName      *string // Loaded via JOIN
	ArtistID        uuid.UUID
	ArtistName      string // Loaded via JOIN
	Status          SessionStatus
	CalendarEventID *string // Unique when present
	PaymentID       *uuid.UUID
	CreatedAt       time.Time
	UpdatedAt       *time.Time
}

// Commission is a percentage payout owed to an artist for one Payment.
// It always travels with its owning Payment: archival and restore treat
// the pair as a unit.
type Commission struct {
	ID                uuid.UUID
	PaymentID         uuid.UUID
	PaymentAmount     decimal.Decimal // Loaded via JOIN
	SessionClientName *string         // Loaded via JOIN through the payment's session
	ArtistID          uuid.UUID
	ArtistName        string // Loaded via JOIN
	Percentage        decimal.Decimal
	Amount            decimal.Decimal
	Note              string
	CreatedAt         time.Time
}

// Expense represents money spent by the studio.
type Expense struct {
	ID            uuid.UUID
	Date          time.Time
	Amount        decimal.Decimal
	Description   string
	Method        string
	Category      *string
	CreatedBy     uuid.UUID
	CreatedByName string // Loaded via JOIN
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}

// PeriodRecords bundles everything the query layer found for one period.
// Empty lists are valid: a period with no activity still archives cleanly.
type PeriodRecords struct {
	Payments    []*Payment
	Sessions    []*Session
	Commissions []*Commission
	Expenses    []*Expense
}

// Count returns the total number of live rows across the four kinds. The
// deleter checks its row counts against this before committing.
func (r PeriodRecords) Count() int {
	return len(r.Payments) + len(r.Sessions) + len(r.Commissions) + len(r.Expenses)
}
