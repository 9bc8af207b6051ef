package report

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/bullseye-app/bullseye/internal/alertview"
	"github.com/bullseye-app/bullseye/internal/budget"
	"github.com/bullseye-app/bullseye/internal/http/auth"
	"github.com/bullseye-app/bullseye/internal/report"
)

type Handler struct {
	reports *report.Service
	views   *alertview.Service
}

func NewHandler(reports *report.Service, views *alertview.Service) *Handler {
	return &Handler{reports: reports, views: views}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/monthly/{year}/{month}", h.monthly)
	r.Get("/accuracy", h.accuracy)
	r.Post("/alerts/{id}/viewed", h.markAlertViewed)
}

func (h *Handler) monthly(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		http.Error(w, "invalid year", http.StatusBadRequest)
		return
	}

	m, err := strconv.Atoi(chi.URLParam(r, "month"))
	if err != nil || m < 1 || m > 12 {
		http.Error(w, "invalid month", http.StatusBadRequest)
		return
	}

	a, err := h.reports.Monthly(r.Context(), year, time.Month(m))
	if err != nil {
		if errors.Is(err, budget.ErrNoActiveBudget) {
			http.Error(w, "no active budget", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	resp := toMonthlyResponse(a)

	// Viewed marks are per member; requests outside an authenticated
	// session get the alerts unannotated.
	if memberID := auth.MemberID(r.Context()); memberID != nil {
		annotated, fresh, err := h.views.Annotate(r.Context(), *memberID, a.Alerts)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		resp.Alerts = toAlertList(annotated)
		resp.NewAlerts = toAlertList(fresh)
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) accuracy(w http.ResponseWriter, r *http.Request) {
	start, err := time.Parse(time.DateOnly, r.URL.Query().Get("start"))
	if err != nil {
		http.Error(w, "start query parameter must be YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	end, err := time.Parse(time.DateOnly, r.URL.Query().Get("end"))
	if err != nil {
		http.Error(w, "end query parameter must be YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	if end.Before(start) {
		http.Error(w, "end must not be before start", http.StatusBadRequest)
		return
	}

	results, err := h.reports.Accuracy(r.Context(), start, end)
	if err != nil {
		if errors.Is(err, budget.ErrNoActiveBudget) {
			http.Error(w, "no active budget", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	writeJSON(w, http.StatusOK, toAccuracyList(results))
}

func (h *Handler) markAlertViewed(w http.ResponseWriter, r *http.Request) {
	memberID := auth.MemberID(r.Context())
	if memberID == nil {
		http.Error(w, "authentication required", http.StatusUnauthorized)
		return
	}

	alertID := chi.URLParam(r, "id")

	if err := h.views.MarkViewed(r.Context(), *memberID, alertID); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
