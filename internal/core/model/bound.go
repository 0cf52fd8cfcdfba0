package model

import (
	"math"

	"github.com/franznanni77/mkt-1/internal/core/domain"
)

// MinSpendBound returns a lower bound on total spend for any assignment
// satisfying the lead total and the corpo floor: the floor leads are
// costed at the cheapest corpo campaign and every remaining lead at the
// cheapest campaign overall. It needs no solver, which lets the scenario
// comparator separate budget-driven infeasibility from everything else.
func MinSpendBound(catalog domain.Catalog, params domain.AllocationParams) float64 {
	total := params.TotalLeads
	if total <= 0 || catalog.Len() == 0 {
		return 0
	}

	cheapest := math.Inf(1)
	for _, c := range catalog.Campaigns() {
		cheapest = math.Min(cheapest, c.CostPerLead)
	}

	floor := 0
	cheapestCorpo := math.Inf(1)
	if params.CorpoPercent > 0 && catalog.HasCategory(domain.CategoryCorpo) {
		floor = int(math.Ceil(params.CorpoPercent * float64(total)))
		if floor > total {
			floor = total
		}
		for _, i := range catalog.Indices(domain.CategoryCorpo) {
			cheapestCorpo = math.Min(cheapestCorpo, catalog.Campaign(i).CostPerLead)
		}
	}

	if floor == 0 {
		return float64(total) * cheapest
	}
	return float64(floor)*cheapestCorpo + float64(total-floor)*cheapest
}
