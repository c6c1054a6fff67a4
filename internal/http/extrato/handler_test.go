package extrato_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/diediegodie/inkledger/internal/extrato"
	extratoHandler "github.com/diediegodie/inkledger/internal/http/extrato"
)

func newTestHandler(t *testing.T) (http.Handler, *extrato.MockRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := extrato.NewMockRepository(ctrl)
	gate := extrato.NewMockBackupGate(ctrl)

	svc := extrato.NewService(repo, gate, nil, 100)

	router := chi.NewRouter()
	extratoHandler.NewHandler(svc).Routes(router)

	return router, repo
}

func TestList_RejectsMalformedQueryParams(t *testing.T) {
	tests := []struct {
		name   string
		target string
	}{
		{name: "non-numeric month", target: "/?month=abc"},
		{name: "non-numeric year", target: "/?month=7&year=twenty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// No repository expectations: a malformed filter never reaches
			// the service.
			handler, _ := newTestHandler(t)

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.target, nil))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestList_FiltersByPeriod(t *testing.T) {
	handler, repo := newTestHandler(t)

	info := extrato.SnapshotInfo{
		ID:        uuid.New(),
		Month:     7,
		Year:      2025,
		CreatedAt: time.Date(2025, 8, 1, 2, 0, 0, 0, time.UTC),
	}
	repo.EXPECT().ListSnapshots(gomock.Any(), 7, 2025).Return([]extrato.SnapshotInfo{info}, nil)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/?month=7&year=2025", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp []struct {
		SnapshotID uuid.UUID `json:"snapshot_id"`
		Mes        int       `json:"mes"`
		Ano        int       `json:"ano"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, info.ID, resp[0].SnapshotID)
	assert.Equal(t, 7, resp[0].Mes)
	assert.Equal(t, 2025, resp[0].Ano)
}
