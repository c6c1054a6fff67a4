package extrato

import (
	"time"

	"github.com/diediegodie/inkledger/internal/ledger"
)

// serializePayments maps live payments to self-contained documents. Display
// names are captured once, at archival time, and never refreshed.
func serializePayments(payments []*ledger.Payment) []PaymentDoc {
	docs := make([]PaymentDoc, len(payments))
	for i, p := range payments {
		docs[i] = PaymentDoc{
			ID:              p.ID,
			Date:            p.Date.Format(time.DateOnly),
			Amount:          p.Amount,
			Method:          p.Method,
			Note:            p.Note,
			ClientName:      p.ClientName,
			ArtistName:      p.ArtistName,
			SessionID:       p.SessionID,
			CalendarEventID: p.CalendarEventID,
		}
	}

	return docs
}

func serializeSessions(sessions []*ledger.Session) []SessionDoc {
	docs := make([]SessionDoc, len(sessions))
	for i, s := range sessions {
		docs[i] = SessionDoc{
			ID:              s.ID,
			Date:            s.Date.Format(time.DateOnly),
			StartTime:       s.StartTime,
			Amount:          s.Amount,
			Note:            s.Note,
			ClientName:      s.ClientName,
			ArtistName:      s.ArtistName,
			Status:          string(s.Status),
			PaymentID:       s.PaymentID,
			CalendarEventID: s.CalendarEventID,
		}
	}

	return docs
}

func serializeCommissions(commissions []*ledger.Commission) []CommissionDoc {
	docs := make([]CommissionDoc, len(commissions))
	for i, c := range commissions {
		docs[i] = CommissionDoc{
			ID:            c.ID,
			PaymentID:     c.PaymentID,
			PaymentAmount: c.PaymentAmount,
			ClientName:    c.SessionClientName,
			ArtistName:    c.ArtistName,
			Percentage:    c.Percentage,
			Amount:        c.Amount,
			Note:          c.Note,
			CreatedAt:     c.CreatedAt.UTC().Format(time.RFC3339),
		}
	}

	return docs
}

func serializeExpenses(expenses []*ledger.Expense) []ExpenseDoc {
	docs := make([]ExpenseDoc, len(expenses))
	for i, e := range expenses {
		doc := ExpenseDoc{
			ID:          e.ID,
			Date:        e.Date.Format(time.DateOnly),
			Amount:      e.Amount,
			Description: e.Description,
			Method:      e.Method,
			CreatedBy:   e.CreatedByName,
		}
		if e.Category != nil {
			doc.Category = *e.Category
		}

		docs[i] = doc
	}

	return docs
}
