package extrato

import (
	"sort"

	"github.com/shopspring/decimal"
)

// totalsBuilder folds serialized documents into a running aggregate. Both
// the one-shot and the batched serialization paths feed the same builder,
// so their results are identical by construction.
type totalsBuilder struct {
	revenue     decimal.Decimal
	commissions decimal.Decimal
	expenses    decimal.Decimal

	artistRevenue    map[string]decimal.Decimal
	artistCommission map[string]decimal.Decimal

	byMethod      map[string]decimal.Decimal
	expByMethod   map[string]decimal.Decimal
	expByCategory map[string]decimal.Decimal
}

func newTotalsBuilder() *totalsBuilder {
	return &totalsBuilder{
		artistRevenue:    make(map[string]decimal.Decimal),
		artistCommission: make(map[string]decimal.Decimal),
		byMethod:         make(map[string]decimal.Decimal),
		expByMethod:      make(map[string]decimal.Decimal),
		expByCategory:    make(map[string]decimal.Decimal),
	}
}

func (b *totalsBuilder) addPayments(docs []PaymentDoc) {
	for _, d := range docs {
		b.revenue = b.revenue.Add(d.Amount)
		b.artistRevenue[d.ArtistName] = b.artistRevenue[d.ArtistName].Add(d.Amount)
		b.byMethod[d.Method] = b.byMethod[d.Method].Add(d.Amount)
	}
}

// addSessions exists so that every document kind passes through the builder.
// Session amounts are deliberately never added: a session without a linked
// payment represents no money received, and payments already carry theirs.
func (b *totalsBuilder) addSessions(docs []SessionDoc) {
	_ = docs
}

func (b *totalsBuilder) addCommissions(docs []CommissionDoc) {
	for _, d := range docs {
		b.commissions = b.commissions.Add(d.Amount)
		b.artistCommission[d.ArtistName] = b.artistCommission[d.ArtistName].Add(d.Amount)
	}
}

func (b *totalsBuilder) addExpenses(docs []ExpenseDoc) {
	for _, d := range docs {
		b.expenses = b.expenses.Add(d.Amount)
		b.expByMethod[d.Method] = b.expByMethod[d.Method].Add(d.Amount)

		category := d.Category
		if category == "" {
			category = "Other"
		}

		b.expByCategory[category] = b.expByCategory[category].Add(d.Amount)
	}
}

func (b *totalsBuilder) build() Totals {
	// Artists with zero recorded commission (apprentices, owners keeping
	// 100%) stay out of the breakdown; their payments still count toward
	// the revenue and per-method totals above.
	names := make([]string, 0, len(b.artistCommission))

	for name, total := range b.artistCommission {
		if total.IsPositive() {
			names = append(names, name)
		}
	}

	sort.Strings(names)

	byArtist := make([]ArtistTotals, len(names))
	for i, name := range names {
		byArtist[i] = ArtistTotals{
			ArtistName: name,
			Revenue:    b.artistRevenue[name],
			Commission: b.artistCommission[name],
		}
	}

	return Totals{
		Revenue:                 b.revenue,
		CommissionTotal:         b.commissions,
		ExpenseTotal:            b.expenses,
		Balance:                 b.revenue.Sub(b.expenses),
		NetRevenue:              b.revenue.Sub(b.commissions),
		ByArtist:                byArtist,
		ByPaymentMethod:         b.byMethod,
		ExpensesByPaymentMethod: b.expByMethod,
		ExpensesByCategory:      b.expByCategory,
	}
}

// ComputeTotals derives the aggregate document from serialized documents,
// never from live rows, so the same logic serves freshly generated and
// restored state alike.
func ComputeTotals(payments []PaymentDoc, sessions []SessionDoc, commissions []CommissionDoc, expenses []ExpenseDoc) Totals {
	b := newTotalsBuilder()
	b.addPayments(payments)
	b.addSessions(sessions)
	b.addCommissions(commissions)
	b.addExpenses(expenses)

	return b.build()
}
