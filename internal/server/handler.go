package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"mannwallet/internal/analytics"
	"mannwallet/internal/engine"
	apperrors "mannwallet/internal/errors"
	"mannwallet/internal/models"
	"mannwallet/internal/store"
)

// Handler serves the engine's outputs over JSON.
type Handler struct {
	engine   *engine.Engine
	expenses store.ExpenseStore
}

// NewHandler creates a handler around the engine and expense store.
func NewHandler(eng *engine.Engine, expenses store.ExpenseStore) *Handler {
	return &Handler{engine: eng, expenses: expenses}
}

func windowParam(r *http.Request) analytics.Window {
	w := analytics.Window(r.URL.Query().Get("window"))
	if !w.IsValid() {
		return analytics.WindowMonth
	}
	return w
}

// GetSummary returns the aggregation result for the requested window.
func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	analysis, err := h.engine.Analyze(ctx, windowParam(r), time.Now())
	if err != nil {
		logger.Error().Err(err).Msg("analysis pass failed")
		writeError(w, http.StatusInternalServerError, "analysis failed")
		return
	}

	writeJSON(w, logger, analysis)
}

// GetInsights returns only the ranked insights for the requested window.
func (h *Handler) GetInsights(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	analysis, err := h.engine.Analyze(ctx, windowParam(r), time.Now())
	if err != nil {
		logger.Error().Err(err).Msg("analysis pass failed")
		writeError(w, http.StatusInternalServerError, "analysis failed")
		return
	}

	insights := analysis.Insights
	if insights == nil {
		insights = []models.Insight{}
	}
	writeJSON(w, logger, insights)
}

// GetAlerts returns the currently visible predictive alerts.
func (h *Handler) GetAlerts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	visible, err := h.engine.EvaluateAlerts(ctx, time.Now())
	if err != nil {
		logger.Error().Err(err).Msg("alert evaluation failed")
		writeError(w, http.StatusInternalServerError, "alert evaluation failed")
		return
	}

	if visible == nil {
		visible = []models.Alert{}
	}
	writeJSON(w, logger, visible)
}

// DismissAlert hides one alert for the rest of the session.
func (h *Handler) DismissAlert(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	h.engine.Dismiss(id)
	w.WriteHeader(http.StatusNoContent)
}

// DismissAllAlerts hides every alert from the latest evaluation pass.
func (h *Handler) DismissAllAlerts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	// Evaluate first so the full current set is known before dismissing.
	if _, err := h.engine.EvaluateAlerts(ctx, time.Now()); err != nil {
		logger.Error().Err(err).Msg("alert evaluation failed")
		writeError(w, http.StatusInternalServerError, "alert evaluation failed")
		return
	}
	h.engine.DismissAll()
	w.WriteHeader(http.StatusNoContent)
}

// RegenerateAlerts triggers a fresh rule pass and returns the visible set.
func (h *Handler) RegenerateAlerts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	visible, err := h.engine.Regenerate(ctx, time.Now())
	if err != nil {
		logger.Error().Err(err).Msg("alert regeneration failed")
		writeError(w, http.StatusInternalServerError, "alert regeneration failed")
		return
	}

	if visible == nil {
		visible = []models.Alert{}
	}
	writeJSON(w, logger, visible)
}

// ListExpenses returns all stored expense records.
func (h *Handler) ListExpenses(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	records, err := h.expenses.ListExpenses(ctx, store.ExpenseFilter{})
	if err != nil {
		logger.Error().Err(err).Msg("failed to list expenses")
		writeError(w, http.StatusInternalServerError, "failed to list expenses")
		return
	}

	if records == nil {
		records = []models.ExpenseRecord{}
	}
	writeJSON(w, logger, records)
}

type addExpenseRequest struct {
	ID          string `json:"id"`
	Amount      int64  `json:"amount"`
	Category    string `json:"category"`
	Emotion     string `json:"emotion"`
	Timestamp   string `json:"timestamp,omitempty"` // RFC 3339; defaults to now
	Description string `json:"description,omitempty"`
	VoiceNote   string `json:"voice_note,omitempty"`
}

// AddExpense stores a new expense record.
func (h *Handler) AddExpense(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	var req addExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	category, ok := models.ParseCategory(req.Category)
	if !ok {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown category %q", req.Category))
		return
	}
	emotion, ok := models.ParseEmotion(req.Emotion)
	if !ok {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown emotion %q", req.Emotion))
		return
	}

	ts := time.Now()
	if req.Timestamp != "" {
		parsed, err := time.Parse(time.RFC3339, req.Timestamp)
		if err != nil {
			writeError(w, http.StatusBadRequest, "timestamp must be RFC 3339")
			return
		}
		ts = parsed
	}

	id := req.ID
	if id == "" {
		id = fmt.Sprintf("exp_%d", time.Now().UnixNano())
	}

	record := &models.ExpenseRecord{
		ID:          id,
		Amount:      req.Amount,
		Category:    category,
		Emotion:     emotion,
		Timestamp:   ts,
		Description: req.Description,
		VoiceNote:   req.VoiceNote,
	}
	if err := h.expenses.SaveExpense(ctx, record); err != nil {
		logger.Error().Err(err).Msg("failed to save expense")
		status := http.StatusBadRequest
		if apperrors.Is(err, apperrors.ErrDuplicateID) {
			status = http.StatusConflict
		}
		writeError(w, status, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(record); err != nil {
		logger.Error().Err(err).Msg("failed to encode response")
	}
}

func writeJSON(w http.ResponseWriter, logger *zerolog.Logger, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error().Err(err).Msg("failed to encode response")
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
