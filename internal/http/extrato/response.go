package extrato

import (
	"time"

	"github.com/google/uuid"

	"github.com/diediegodie/inkledger/internal/extrato"
)

type generateResponse struct {
	SnapshotID uuid.UUID      `json:"snapshot_id"`
	Month      int            `json:"month"`
	Year       int            `json:"year"`
	Totals     extrato.Totals `json:"totals"`
	CreatedAt  time.Time      `json:"created_at"`
}

func toGenerateResponse(snap *extrato.Snapshot) generateResponse {
	return generateResponse{
		SnapshotID: snap.ID,
		Month:      snap.Month,
		Year:       snap.Year,
		Totals:     snap.Totals,
		CreatedAt:  snap.CreatedAt,
	}
}

type snapshotInfoResponse struct {
	SnapshotID uuid.UUID `json:"snapshot_id"`
	Mes        int       `json:"mes"`
	Ano        int       `json:"ano"`
	CreatedAt  time.Time `json:"created_at"`
}

func toInfoList(infos []extrato.SnapshotInfo) []snapshotInfoResponse {
	resp := make([]snapshotInfoResponse, len(infos))
	for i, info := range infos {
		resp[i] = snapshotInfoResponse{
			SnapshotID: info.ID,
			Mes:        info.Month,
			Ano:        info.Year,
			CreatedAt:  info.CreatedAt,
		}
	}

	return resp
}

type snapshotResponse struct {
	SnapshotID  uuid.UUID               `json:"snapshot_id"`
	Mes         int                     `json:"mes"`
	Ano         int                     `json:"ano"`
	Payments    []extrato.PaymentDoc    `json:"payments"`
	Sessions    []extrato.SessionDoc    `json:"sessions"`
	Commissions []extrato.CommissionDoc `json:"commissions"`
	Expenses    []extrato.ExpenseDoc    `json:"expenses"`
	Totals      extrato.Totals          `json:"totals"`
	CreatedAt   time.Time               `json:"created_at"`
}

func toSnapshotResponse(snap *extrato.Snapshot) snapshotResponse {
	return snapshotResponse{
		SnapshotID:  snap.ID,
		Mes:         snap.Month,
		Ano:         snap.Year,
		Payments:    snap.Payments,
		Sessions:    snap.Sessions,
		Commissions: snap.Commissions,
		Expenses:    snap.Expenses,
		Totals:      snap.Totals,
		CreatedAt:   snap.CreatedAt,
	}
}

type restoreResponse struct {
	CorrelationID string `json:"correlation_id"`
}
