package extrato_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diediegodie/inkledger/internal/extrato"
	"github.com/diediegodie/inkledger/internal/ledger"
)

func strptr(s string) *string { return &s }

func TestBuildSnapshot_SerializesSelfContainedDocuments(t *testing.T) {
	sessionID := uuid.New()
	paymentID := uuid.New()

	records := ledger.PeriodRecords{
		Payments: []*ledger.Payment{
			{
				ID:              paymentID,
				Date:            time.Date(2025, 7, 14, 0, 0, 0, 0, time.UTC),
				Amount:          decimal.NewFromInt(200),
				Method:          "pix",
				Note:            "sleeve session",
				ClientName:      strptr("Clara"),
				ArtistName:      "Artist A",
				SessionID:       &sessionID,
				CalendarEventID: strptr("gcal-evt-42"),
			},
			{
				// Walk-in: no client reference at all.
				ID:         uuid.New(),
				Date:       time.Date(2025, 7, 20, 0, 0, 0, 0, time.UTC),
				Amount:     decimal.NewFromInt(150),
				Method:     "cash",
				ArtistName: "Artist B",
			},
		},
		Commissions: []*ledger.Commission{
			{
				ID:                uuid.New(),
				PaymentID:         paymentID,
				PaymentAmount:     decimal.NewFromInt(200),
				SessionClientName: strptr("Clara"),
				ArtistName:        "Artist A",
				Percentage:        decimal.NewFromInt(30),
				Amount:            decimal.NewFromInt(60),
				CreatedAt:         time.Date(2025, 8, 1, 9, 0, 0, 0, time.UTC),
			},
		},
		Expenses: []*ledger.Expense{
			{
				ID:            uuid.New(),
				Date:          time.Date(2025, 7, 18, 0, 0, 0, 0, time.UTC),
				Amount:        decimal.NewFromInt(90),
				Description:   "needles",
				Method:        "card",
				CreatedBy:     uuid.New(),
				CreatedByName: "Dana",
			},
		},
	}

	snap := extrato.BuildSnapshot(records, 100)

	require.Len(t, snap.Payments, 2)
	assert.Equal(t, "2025-07-14", snap.Payments[0].Date)
	assert.Equal(t, "Artist A", snap.Payments[0].ArtistName)
	require.NotNil(t, snap.Payments[0].ClientName)
	assert.Equal(t, "Clara", *snap.Payments[0].ClientName)

	// Calendar-event ids are archived verbatim so a restored row can be
	// matched back to its calendar entry.
	require.NotNil(t, snap.Payments[0].CalendarEventID)
	assert.Equal(t, "gcal-evt-42", *snap.Payments[0].CalendarEventID)

	// Missing relations become nil, never an error.
	assert.Nil(t, snap.Payments[1].ClientName)
	assert.Nil(t, snap.Payments[1].SessionID)
	assert.Nil(t, snap.Payments[1].CalendarEventID)

	// Commission documents carry the owning payment's amount and the
	// transitively resolved client name.
	require.Len(t, snap.Commissions, 1)
	assert.True(t, snap.Commissions[0].PaymentAmount.Equal(decimal.NewFromInt(200)))
	require.NotNil(t, snap.Commissions[0].ClientName)
	assert.Equal(t, "Clara", *snap.Commissions[0].ClientName)
	assert.Equal(t, "2025-08-01T09:00:00Z", snap.Commissions[0].CreatedAt)

	// Expense creator is captured as a display name, not a foreign key.
	require.Len(t, snap.Expenses, 1)
	assert.Equal(t, "Dana", snap.Expenses[0].CreatedBy)

	assert.True(t, snap.Totals.Revenue.Equal(decimal.NewFromInt(350)))
	assert.True(t, snap.Totals.CommissionTotal.Equal(decimal.NewFromInt(60)))
	assert.True(t, snap.Totals.ExpenseTotal.Equal(decimal.NewFromInt(90)))
}

func TestBuildSnapshot_BatchedMatchesOneShot(t *testing.T) {
	var records ledger.PeriodRecords

	for i := 0; i < 350; i++ {
		artist := fmt.Sprintf("Artist %d", i%7)

		records.Payments = append(records.Payments, &ledger.Payment{
			ID:         uuid.New(),
			Date:       time.Date(2025, 7, 1+i%28, 0, 0, 0, 0, time.UTC),
			Amount:     decimal.NewFromInt(int64(50 + i)),
			Method:     fmt.Sprintf("method-%d", i%3),
			ArtistName: artist,
		})

		if i%7 < 3 {
			records.Commissions = append(records.Commissions, &ledger.Commission{
				ID:         uuid.New(),
				PaymentID:  records.Payments[i].ID,
				ArtistName: artist,
				Amount:     decimal.NewFromInt(int64(10 + i%5)),
			})
		}
	}

	for i := 0; i < 120; i++ {
		records.Expenses = append(records.Expenses, &ledger.Expense{
			ID:     uuid.New(),
			Date:   time.Date(2025, 7, 1+i%28, 0, 0, 0, 0, time.UTC),
			Amount: decimal.NewFromInt(int64(5 + i%9)),
			Method: "cash",
		})
	}

	batched := extrato.BuildSnapshot(records, 100)
	oneShot := extrato.BuildSnapshot(records, 1_000_000)

	assert.Equal(t, oneShot.Totals, batched.Totals)
	assert.Equal(t, oneShot.Payments, batched.Payments)
	assert.Equal(t, oneShot.Commissions, batched.Commissions)
	assert.Equal(t, oneShot.Expenses, batched.Expenses)
}

func TestBuildSnapshot_NormalizesBatchSize(t *testing.T) {
	records := ledger.PeriodRecords{
		Payments: []*ledger.Payment{
			{ID: uuid.New(), Date: time.Date(2025, 7, 3, 0, 0, 0, 0, time.UTC), Amount: decimal.NewFromInt(100), Method: "pix", ArtistName: "A"},
			{ID: uuid.New(), Date: time.Date(2025, 7, 4, 0, 0, 0, 0, time.UTC), Amount: decimal.NewFromInt(80), Method: "card", ArtistName: "B"},
		},
	}

	reference := extrato.BuildSnapshot(records, extrato.DefaultBatchSize)

	// Sub-minimum sizes are clamped up, never honored.
	for _, size := range []int{0, -1, 1, 99} {
		snap := extrato.BuildSnapshot(records, size)
		assert.Equal(t, reference.Payments, snap.Payments, "size %d", size)
		assert.Equal(t, reference.Totals, snap.Totals, "size %d", size)
	}
}

func TestBuildSnapshot_TotalsRederivableFromDocuments(t *testing.T) {
	records := ledger.PeriodRecords{
		Payments: []*ledger.Payment{
			{ID: uuid.New(), Date: time.Date(2025, 7, 3, 0, 0, 0, 0, time.UTC), Amount: decimal.NewFromInt(320), Method: "pix", ArtistName: "A"},
		},
		Expenses: []*ledger.Expense{
			{ID: uuid.New(), Date: time.Date(2025, 7, 9, 0, 0, 0, 0, time.UTC), Amount: decimal.NewFromInt(45), Method: "card"},
		},
	}

	snap := extrato.BuildSnapshot(records, 100)

	recomputed := extrato.ComputeTotals(snap.Payments, snap.Sessions, snap.Commissions, snap.Expenses)
	assert.Equal(t, snap.Totals, recomputed)
}
