package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/franznanni77/mkt-1/internal/core/domain"
)

// handleCompare runs the two-scenario comparison. The body is the same as
// for optimize; budget_max is required here because scenario A is the
// budget-constrained run. Strategy is ignored, comparisons always use the
// exact solver. An infeasible scenario A still returns HTTP 200, the
// response then carries the diagnosis instead of a delta.
func (h *Handler) handleCompare(w http.ResponseWriter, r *http.Request) {
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
	comparison, err := h.svc.CompareScenarios(r.Context(), catalog, req.params())
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, comparison)
}
