package budget

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/bullseye-app/bullseye/internal/budget"
)

type Handler struct {
	svc *budget.Service
}

func NewHandler(svc *budget.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Route("/versions", func(r chi.Router) {
		r.Post("/", h.createVersion)
		r.Get("/", h.listVersions)
		r.Get("/active", h.getActive)
		r.Get("/{version}", h.getVersion)
	})

	r.Route("/monthly/{year}/{month}", func(r chi.Router) {
		r.Get("/", h.getMonthly)
		r.Patch("/categories/{name}", h.updateCategoryLimit)
		r.Post("/lock", h.lockMonth)
	})

	r.Route("/adjustments", func(r chi.Router) {
		r.Post("/", h.scheduleAdjustment)
		r.Get("/", h.listAdjustments)
		r.Delete("/{id}", h.cancelAdjustment)
		r.Post("/apply", h.applyDue)
	})
}

type createVersionRequest struct {
	Categories map[string]budget.CategoryConfig `json:"categories"`
	Settings   budget.GlobalSettings            `json:"settings"`
}

func (h *Handler) createVersion(w http.ResponseWriter, r *http.Request) {
	var req createVersionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	b, err := h.svc.CreateVersion(r.Context(), req.Categories, req.Settings)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusCreated, toVersionResponse(b))
}

func (h *Handler) listVersions(w http.ResponseWriter, r *http.Request) {
	versions, err := h.svc.ListVersions(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := make([]versionResponse, len(versions))
	for i, b := range versions {
		resp[i] = toVersionResponse(b)
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) getActive(w http.ResponseWriter, r *http.Request) {
	b, err := h.svc.GetActive(r.Context())
	if err != nil {
		if errors.Is(err, budget.ErrNoActiveBudget) {
			http.Error(w, "no active budget", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	writeJSON(w, http.StatusOK, toVersionResponse(b))
}

func (h *Handler) getVersion(w http.ResponseWriter, r *http.Request) {
	version, err := strconv.Atoi(chi.URLParam(r, "version"))
	if err != nil {
		http.Error(w, "invalid version", http.StatusBadRequest)
		return
	}

	b, err := h.svc.GetVersion(r.Context(), version)
	if err != nil {
		if errors.Is(err, budget.ErrNotFound) {
			http.Error(w, "version not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	writeJSON(w, http.StatusOK, toVersionResponse(b))
}

// yearMonth parses the {year}/{month} URL segments.
func yearMonth(r *http.Request) (int, time.Month, error) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		return 0, 0, errors.New("invalid year")
	}

	m, err := strconv.Atoi(chi.URLParam(r, "month"))
	if err != nil || m < 1 || m > 12 {
		return 0, 0, errors.New("invalid month")
	}

	return year, time.Month(m), nil
}

// getMonthly returns the month's snapshot, taking it from the active budget
// first if the month has none yet.
func (h *Handler) getMonthly(w http.ResponseWriter, r *http.Request) {
	year, month, err := yearMonth(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	mb, err := h.svc.EnsureMonthly(r.Context(), year, month)
	if err != nil {
		if errors.Is(err, budget.ErrNoActiveBudget) {
			http.Error(w, "no active budget", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	writeJSON(w, http.StatusOK, toMonthlyResponse(mb))
}

type updateLimitRequest struct {
	MonthlyLimit int64 `json:"monthly_limit"`
}

func (h *Handler) updateCategoryLimit(w http.ResponseWriter, r *http.Request) {
	year, month, err := yearMonth(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	name := chi.URLParam(r, "name")

	var req updateLimitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	mb, err := h.svc.UpdateCategoryLimit(r.Context(), year, month, name, req.MonthlyLimit)
	if err != nil {
		switch {
		case errors.Is(err, budget.ErrLocked):
			http.Error(w, "monthly budget is locked", http.StatusConflict)
		case errors.Is(err, budget.ErrNotFound), errors.Is(err, budget.ErrNoActiveBudget):
			http.Error(w, err.Error(), http.StatusNotFound)
		default:
			http.Error(w, err.Error(), http.StatusBadRequest)
		}

		return
	}

	writeJSON(w, http.StatusOK, toMonthlyResponse(mb))
}

type lockRequest struct {
	Locked bool `json:"locked"`
}

func (h *Handler) lockMonth(w http.ResponseWriter, r *http.Request) {
	year, month, err := yearMonth(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var req lockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.svc.LockMonth(r.Context(), year, month, req.Locked); err != nil {
		if errors.Is(err, budget.ErrNotFound) {
			http.Error(w, "monthly budget not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type scheduleAdjustmentRequest struct {
	CategoryName   string                     `json:"category_name"`
	NewLimit       int64                      `json:"new_limit"`
	EffectiveYear  int                        `json:"effective_year"`
	EffectiveMonth time.Month                 `json:"effective_month"`
	Reason         string                     `json:"reason,omitempty"`
	NewCategory    *budget.NewCategoryPayload `json:"new_category,omitempty"`
}

func (h *Handler) scheduleAdjustment(w http.ResponseWriter, r *http.Request) {
	var req scheduleAdjustmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	adj, err := h.svc.ScheduleAdjustment(r.Context(), budget.ScheduleParams{
		CategoryName:   req.CategoryName,
		NewLimit:       req.NewLimit,
		EffectiveYear:  req.EffectiveYear,
		EffectiveMonth: req.EffectiveMonth,
		Reason:         req.Reason,
		NewCategory:    req.NewCategory,
	})
	if err != nil {
		if errors.Is(err, budget.ErrNotFound) || errors.Is(err, budget.ErrNoActiveBudget) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}

		http.Error(w, err.Error(), http.StatusBadRequest)

		return
	}

	writeJSON(w, http.StatusCreated, toAdjustmentResponse(adj))
}

func (h *Handler) listAdjustments(w http.ResponseWriter, r *http.Request) {
	pendingOnly := r.URL.Query().Get("pending") == "true"

	adjs, err := h.svc.ListAdjustments(r.Context(), pendingOnly)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, toAdjustmentList(adjs))
}

func (h *Handler) cancelAdjustment(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.CancelAdjustment(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, budget.ErrAlreadyApplied):
			http.Error(w, "adjustment already applied", http.StatusConflict)
		case errors.Is(err, budget.ErrNotFound):
			http.Error(w, "adjustment not found", http.StatusNotFound)
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
		}

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type applyDueResponse struct {
	Applied    int `json:"applied"`
	NewVersion int `json:"new_version,omitempty"`
}

// applyDue folds every adjustment due by now into a new budget version.
func (h *Handler) applyDue(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.ApplyDue(r.Context(), time.Now())
	if err != nil {
		if errors.Is(err, budget.ErrNoActiveBudget) {
			http.Error(w, "no active budget", http.StatusNotFound)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	writeJSON(w, http.StatusOK, applyDueResponse{
		Applied:    result.Applied,
		NewVersion: result.NewVersion,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
