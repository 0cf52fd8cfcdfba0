package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/franznanni77/mkt-1/internal/core/domain"
	"github.com/franznanni77/mkt-1/internal/core/port"
)

// allocationRequest is the JSON body shared by the optimize and compare
// endpoints: the raw campaign records plus the run parameters. Strategy
// is only honored by optimize.
type allocationRequest struct {
	Campaigns       []domain.Campaign   `json:"campaigns"`
	TotalLeads      int                 `json:"total_leads"`
	CorpoPercent    float64             `json:"corpo_percent"`
	MinShare        float64             `json:"min_share"`
	BudgetMax       *float64            `json:"budget_max,omitempty"`
	WeightImmediate *float64            `json:"weight_immediate,omitempty"`
	ShareVariant    domain.ShareVariant `json:"share_variant,omitempty"`
	Strategy        port.Strategy       `json:"strategy,omitempty"`
}

func (req allocationRequest) params() domain.AllocationParams {
	return domain.AllocationParams{
		TotalLeads:      req.TotalLeads,
		CorpoPercent:    req.CorpoPercent,
		MinShare:        req.MinShare,
		BudgetMax:       req.BudgetMax,
		WeightImmediate: req.WeightImmediate,
		ShareVariant:    req.ShareVariant,
	}
}

type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// handleOptimize runs one allocation. The request body is decoded into an
// allocationRequest and normalized into a catalog. Every solver status is
// a 200: an infeasible model is a domain outcome the caller reacts to,
// not a transport failure. Configuration errors produce HTTP 400 naming
// the offending field, a model the chosen strategy cannot handle HTTP
// 422, anything internal HTTP 500. Parsing errors produce HTTP 400.
func (h *Handler) handleOptimize(w http.ResponseWriter, r *http.Request) {
	var req allocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	catalog, warnings, err := domain.NewCatalog(req.Campaigns)
	if err != nil {
		h.writeError(w, err)
		return
	}
	for _, warn := range warnings {
		h.logger.Warn("catalog warning", slog.String("warning", warn))
	}
	result, err := h.svc.Optimize(r.Context(), catalog, req.params(), req.Strategy)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, result)
}

// writeError maps engine errors onto HTTP statuses.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: ve.Reason, Field: ve.Field})
	case errors.Is(err, port.ErrUnsupportedModel):
		h.writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
	default:
		h.logger.Error("allocation error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// encoding should rarely fail; log and move on
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
