package extrato_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diediegodie/inkledger/internal/extrato"
)

func dec(n int64) decimal.Decimal {
	return decimal.NewFromInt(n)
}

func TestComputeTotals_RevenueIgnoresSessionAmounts(t *testing.T) {
	payments := []extrato.PaymentDoc{
		{Amount: dec(200), Method: "pix", ArtistName: "Artist A"},
		{Amount: dec(150), Method: "cash", ArtistName: "Artist B"},
	}
	sessions := []extrato.SessionDoc{
		{Amount: dec(500), ArtistName: "Artist A"},
		{Amount: dec(999), ArtistName: "Artist B"},
	}

	totals := extrato.ComputeTotals(payments, sessions, nil, nil)

	assert.True(t, totals.Revenue.Equal(dec(350)), "revenue %s", totals.Revenue)
	assert.True(t, totals.Balance.Equal(dec(350)))
}

func TestComputeTotals_Scenario(t *testing.T) {
	// Payment R$200 for Artist A with a R$60 commission, payment R$150 for
	// Artist B with no commission, one R$50 expense.
	payments := []extrato.PaymentDoc{
		{Amount: dec(200), Method: "pix", ArtistName: "Artist A"},
		{Amount: dec(150), Method: "cash", ArtistName: "Artist B"},
	}
	commissions := []extrato.CommissionDoc{
		{Amount: dec(60), PaymentAmount: dec(200), ArtistName: "Artist A", Percentage: dec(30)},
	}
	expenses := []extrato.ExpenseDoc{
		{Amount: dec(50), Method: "cash", Description: "ink"},
	}

	totals := extrato.ComputeTotals(payments, nil, commissions, expenses)

	assert.True(t, totals.Revenue.Equal(dec(350)))
	assert.True(t, totals.CommissionTotal.Equal(dec(60)))
	assert.True(t, totals.ExpenseTotal.Equal(dec(50)))
	assert.True(t, totals.Balance.Equal(dec(300)))
	assert.True(t, totals.NetRevenue.Equal(dec(290)))

	// Artist B took payments but has no commission: absent from the
	// breakdown while still counted in revenue and per-method totals.
	require.Len(t, totals.ByArtist, 1)
	assert.Equal(t, "Artist A", totals.ByArtist[0].ArtistName)
	assert.True(t, totals.ByArtist[0].Revenue.Equal(dec(200)))
	assert.True(t, totals.ByArtist[0].Commission.Equal(dec(60)))

	assert.True(t, totals.ByPaymentMethod["pix"].Equal(dec(200)))
	assert.True(t, totals.ByPaymentMethod["cash"].Equal(dec(150)))
}

func TestComputeTotals_ZeroCommissionArtistExcluded(t *testing.T) {
	payments := []extrato.PaymentDoc{
		{Amount: dec(100), Method: "pix", ArtistName: "Owner"},
	}
	commissions := []extrato.CommissionDoc{
		{Amount: dec(0), ArtistName: "Owner"},
	}

	totals := extrato.ComputeTotals(payments, nil, commissions, nil)

	assert.Empty(t, totals.ByArtist)
	assert.True(t, totals.Revenue.Equal(dec(100)))
	assert.True(t, totals.ByPaymentMethod["pix"].Equal(dec(100)))
}

func TestComputeTotals_EmptyInputs(t *testing.T) {
	totals := extrato.ComputeTotals(nil, nil, nil, nil)

	assert.True(t, totals.Revenue.IsZero())
	assert.True(t, totals.CommissionTotal.IsZero())
	assert.True(t, totals.ExpenseTotal.IsZero())
	assert.True(t, totals.Balance.IsZero())
	assert.True(t, totals.NetRevenue.IsZero())
	assert.Empty(t, totals.ByArtist)
	assert.Empty(t, totals.ByPaymentMethod)
}

func TestComputeTotals_ExpenseCategoryDefaultsToOther(t *testing.T) {
	expenses := []extrato.ExpenseDoc{
		{Amount: dec(30), Method: "card", Category: "Supplies"},
		{Amount: dec(20), Method: "cash"},
		{Amount: dec(10), Method: "cash"},
	}

	totals := extrato.ComputeTotals(nil, nil, nil, expenses)

	assert.True(t, totals.ExpenseTotal.Equal(dec(60)))
	assert.True(t, totals.ExpensesByCategory["Supplies"].Equal(dec(30)))
	assert.True(t, totals.ExpensesByCategory["Other"].Equal(dec(30)))
	assert.True(t, totals.ExpensesByPaymentMethod["cash"].Equal(dec(30)))
	assert.True(t, totals.ExpensesByPaymentMethod["card"].Equal(dec(30)))
}

func TestComputeTotals_Idempotent(t *testing.T) {
	payments := []extrato.PaymentDoc{
		{Amount: dec(80), Method: "pix", ArtistName: "A"},
		{Amount: dec(20), Method: "pix", ArtistName: "B"},
	}
	commissions := []extrato.CommissionDoc{
		{Amount: dec(24), ArtistName: "A"},
	}

	first := extrato.ComputeTotals(payments, nil, commissions, nil)
	second := extrato.ComputeTotals(payments, nil, commissions, nil)

	assert.Equal(t, first, second)
}

func TestComputeTotals_ByArtistSorted(t *testing.T) {
	payments := []extrato.PaymentDoc{
		{Amount: dec(100), Method: "pix", ArtistName: "Zed"},
		{Amount: dec(100), Method: "pix", ArtistName: "Ana"},
	}
	commissions := []extrato.CommissionDoc{
		{Amount: dec(10), ArtistName: "Zed"},
		{Amount: dec(10), ArtistName: "Ana"},
	}

	totals := extrato.ComputeTotals(payments, nil, commissions, nil)

	require.Len(t, totals.ByArtist, 2)
	assert.Equal(t, "Ana", totals.ByArtist[0].ArtistName)
	assert.Equal(t, "Zed", totals.ByArtist[1].ArtistName)
}
