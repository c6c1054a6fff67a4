package extrato

import "github.com/diediegodie/inkledger/internal/ledger"

// DefaultBatchSize bounds how many records one serialization batch holds.
// Configured sizes below this fall back to it.
const DefaultBatchSize = 100

func normalizeBatchSize(size int) int {
	if size < DefaultBatchSize {
		return DefaultBatchSize
	}

	return size
}

// BuildSnapshot serializes a period's records in fixed-size batches and
// folds each batch into the running totals. Batching only bounds the
// working set per fold; the output is identical to serializing everything
// at once.
func BuildSnapshot(records ledger.PeriodRecords, batchSize int) *Snapshot {
	batchSize = normalizeBatchSize(batchSize)
	builder := newTotalsBuilder()

	snap := &Snapshot{
		Payments:    make([]PaymentDoc, 0, len(records.Payments)),
		Sessions:    make([]SessionDoc, 0, len(records.Sessions)),
		Commissions: make([]CommissionDoc, 0, len(records.Commissions)),
		Expenses:    make([]ExpenseDoc, 0, len(records.Expenses)),
	}

	for start := 0; start < len(records.Payments); start += batchSize {
		end := min(start+batchSize, len(records.Payments))
		docs := serializePayments(records.Payments[start:end])
		builder.addPayments(docs)
		snap.Payments = append(snap.Payments, docs...)
	}

	for start := 0; start < len(records.Sessions); start += batchSize {
		end := min(start+batchSize, len(records.Sessions))
		docs := serializeSessions(records.Sessions[start:end])
		builder.addSessions(docs)
		snap.Sessions = append(snap.Sessions, docs...)
	}

	for start := 0; start < len(records.Commissions); start += batchSize {
		end := min(start+batchSize, len(records.Commissions))
		docs := serializeCommissions(records.Commissions[start:end])
		builder.addCommissions(docs)
		snap.Commissions = append(snap.Commissions, docs...)
	}

	for start := 0; start < len(records.Expenses); start += batchSize {
		end := min(start+batchSize, len(records.Expenses))
		docs := serializeExpenses(records.Expenses[start:end])
		builder.addExpenses(docs)
		snap.Expenses = append(snap.Expenses, docs...)
	}

	snap.Totals = builder.build()

	return snap
}
