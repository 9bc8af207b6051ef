package importcsv

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/bullseye-app/bullseye/internal/http/auth"
	"github.com/bullseye-app/bullseye/internal/importer"
	"github.com/bullseye-app/bullseye/internal/importer/statement"
	"github.com/bullseye-app/bullseye/internal/transaction"
)

type Handler struct {
	svc *importer.Service
}

func NewHandler(svc *importer.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.importStatement)
}

type entryDTO struct {
	Date        time.Time        `json:"date"`
	Description string           `json:"description"`
	Amount      int64            `json:"amount"`
	Type        transaction.Type `json:"type"`
	Category    string           `json:"category,omitempty"`
}

type createdDTO struct {
	ID          uuid.UUID        `json:"id"`
	Amount      int64            `json:"amount"`
	Type        transaction.Type `json:"type"`
	Description string           `json:"description"`
	Date        time.Time        `json:"date"`
}

type importResponse struct {
	Imported      int          `json:"imported"`
	Duplicates    int          `json:"duplicates"`
	Transactions  []createdDTO `json:"transactions"`
	NeedsCategory []entryDTO   `json:"needs_category,omitempty"`
}

func (h *Handler) importStatement(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	result, err := h.svc.Import(r.Context(), file, auth.MemberID(r.Context()))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	resp := importResponse{
		Imported:     len(result.Created),
		Duplicates:   result.Duplicates,
		Transactions: make([]createdDTO, 0, len(result.Created)),
	}

	for _, tx := range result.Created {
		resp.Transactions = append(resp.Transactions, createdDTO{
			ID:          tx.ID,
			Amount:      tx.Amount,
			Type:        tx.Type,
			Description: tx.Description,
			Date:        tx.Date,
		})
	}

	for _, e := range result.NeedsCategory {
		resp.NeedsCategory = append(resp.NeedsCategory, toEntryDTO(e))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func toEntryDTO(e statement.Entry) entryDTO {
	return entryDTO{
		Date:        e.Date,
		Description: e.Description,
		Amount:      e.Amount,
		Type:        e.Type,
		Category:    e.Category,
	}
}
