package extrato

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/diediegodie/inkledger/internal/extrato"
)

type Handler struct {
	svc *extrato.Service
}

func NewHandler(svc *extrato.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/generate", h.generate)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Post("/{id}/restore", h.restore)
	r.Post("/restore-latest", h.restoreLatest)
}

type generateRequest struct {
	Month int  `json:"month"`
	Year  int  `json:"year"`
	Force bool `json:"force"`
}

func (h *Handler) generate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	snap, err := h.svc.Generate(r.Context(), extrato.GenerateParams{
		Month: req.Month,
		Year:  req.Year,
		Force: req.Force,
	})
	if err != nil {
		status := http.StatusInternalServerError

		switch {
		case errors.Is(err, extrato.ErrInvalidMonth), errors.Is(err, extrato.ErrInvalidYear):
			status = http.StatusBadRequest
		case errors.Is(err, extrato.ErrSnapshotExists):
			status = http.StatusConflict
		case errors.Is(err, extrato.ErrBackupMissing):
			status = http.StatusPreconditionFailed
		}

		http.Error(w, err.Error(), status)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toGenerateResponse(snap)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// queryInt parses an optional integer query parameter; absent means zero.
func queryInt(r *http.Request, key string) (int, error) {
	s := r.URL.Query().Get(key)
	if s == "" {
		return 0, nil
	}

	return strconv.Atoi(s)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	month, err := queryInt(r, "month")
	if err != nil {
		http.Error(w, "invalid month", http.StatusBadRequest)
		return
	}

	year, err := queryInt(r, "year")
	if err != nil {
		http.Error(w, "invalid year", http.StatusBadRequest)
		return
	}

	infos, err := h.svc.ListSnapshots(r.Context(), month, year)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toInfoList(infos)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	snap, err := h.svc.GetSnapshot(r.Context(), id)
	if err != nil {
		if errors.Is(err, extrato.ErrSnapshotNotFound) {
			http.Error(w, "extrato not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toSnapshotResponse(snap)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type restoreRequest struct {
	CorrelationID string `json:"correlation_id"`
}

func (h *Handler) restore(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req restoreRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	if req.CorrelationID == "" {
		req.CorrelationID = uuid.NewString()
	}

	if err := h.svc.RestoreFromSnapshot(r.Context(), id, req.CorrelationID); err != nil {
		if errors.Is(err, extrato.ErrSnapshotNotFound) {
			http.Error(w, "extrato not found", http.StatusNotFound)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(restoreResponse{CorrelationID: req.CorrelationID}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type restoreLatestRequest struct {
	Month         int    `json:"month"`
	Year          int    `json:"year"`
	CorrelationID string `json:"correlation_id"`
}

func (h *Handler) restoreLatest(w http.ResponseWriter, r *http.Request) {
	var req restoreLatestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.CorrelationID == "" {
		req.CorrelationID = uuid.NewString()
	}

	if err := h.svc.RestoreLatest(r.Context(), req.Month, req.Year, req.CorrelationID); err != nil {
		if errors.Is(err, extrato.ErrSnapshotNotFound) {
			http.Error(w, "extrato not found", http.StatusNotFound)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(restoreResponse{CorrelationID: req.CorrelationID}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
