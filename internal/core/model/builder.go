package model

import (
	"fmt"

	"github.com/franznanni77/mkt-1/internal/core/domain"
)

// Build translates a catalog and parameter set into a Model. Each
// constraint row is emitted only when its governing parameter is
// supplied: the lead total equality always, the corpo floor when
// CorpoPercent > 0 and a corpo campaign exists (an absent category is
// vacuous, not an error), share rows when MinShare > 0 and the budget
// ceiling when BudgetMax is set. Configuration errors, including a strong
// share variant no assignment can satisfy, are detected here and never
// reach a solver.
func Build(catalog domain.Catalog, params domain.AllocationParams) (Model, error) {
	if err := params.Validate(); err != nil {
		return Model{}, err
	}
	campaigns := catalog.Campaigns()
	n := len(campaigns)
	if n < 2 {
		return Model{}, domain.NewValidationError("campaigns", "at least two campaigns are required")
	}

	obj := make([]float64, n)
	if w := params.WeightImmediate; w != nil {
		for i, c := range campaigns {
			if c.RevenuePerLead60d == nil {
				return Model{}, domain.NewValidationError(
					fmt.Sprintf("campaigns[%d].revenue_per_lead_60d", i),
					"required when weight_immediate is set")
			}
			obj[i] = c.WeightedNetProfit(*w)
		}
	} else {
		for i, c := range campaigns {
			obj[i] = c.NetProfit()
		}
	}

	m := Model{Campaigns: campaigns, Params: params, Objective: obj}

	m.Rows = append(m.Rows, Row{
		Coeffs: ones(n),
		Sense:  EQ,
		RHS:    float64(params.TotalLeads),
		Label:  "total_leads",
	})

	if params.CorpoPercent > 0 && catalog.HasCategory(domain.CategoryCorpo) {
		coeffs := make([]float64, n)
		for _, i := range catalog.Indices(domain.CategoryCorpo) {
			coeffs[i] = 1
		}
		m.Rows = append(m.Rows, Row{
			Coeffs: coeffs,
			Sense:  GE,
			RHS:    params.CorpoPercent * float64(params.TotalLeads),
			Label:  "category_floor:" + domain.CategoryCorpo,
		})
	}

	if params.MinShare > 0 {
		if err := appendShareRows(&m, catalog, params); err != nil {
			return Model{}, err
		}
	}

	if params.BudgetMax != nil {
		coeffs := make([]float64, n)
		for i, c := range campaigns {
			coeffs[i] = c.CostPerLead
		}
		m.Rows = append(m.Rows, Row{Coeffs: coeffs, Sense: LE, RHS: *params.BudgetMax, Label: "budget"})
	}

	return m, nil
}

// appendShareRows emits the minimum-share constraints. A campaign's share
// is measured against its own category's lead total, which is itself a
// sum of variables: x_j >= s * sum(category) becomes
// (1-s)*x_j - s*sum(others) >= 0. Single-campaign categories trivially
// hold any share and get no row. Under the strong variant a share that
// claims more than 100% of a category's leads is a static property of the
// parameters and is rejected before any solver runs.
func appendShareRows(m *Model, catalog domain.Catalog, params domain.AllocationParams) error {
	s := params.MinShare
	for _, category := range catalog.Categories() {
		members := catalog.Indices(category)
		if len(members) < 2 {
			continue
		}
		if params.Variant() == domain.ShareStrong && s*float64(len(members)) > 1 {
			return domain.NewValidationError("min_share", fmt.Sprintf(
				"share %.3g with %d campaigns in category %q claims more than 100%% of its leads",
				s, len(members), category))
		}
		targets := members
		if params.Variant() == domain.ShareWeak {
			targets = []int{leastProfitable(m.Objective, members)}
		}
		for _, j := range targets {
			coeffs := make([]float64, len(m.Objective))
			for _, i := range members {
				coeffs[i] = -s
			}
			coeffs[j] = 1 - s
			m.Rows = append(m.Rows, Row{
				Coeffs: coeffs,
				Sense:  GE,
				RHS:    0,
				Label:  fmt.Sprintf("min_share:%s:%s", category, m.Campaigns[j].Name),
			})
		}
	}
	return nil
}

// leastProfitable returns the member with the smallest objective
// coefficient, ties broken by catalog order.
func leastProfitable(obj []float64, members []int) int {
	best := members[0]
	for _, i := range members[1:] {
		if obj[i] < obj[best] {
			best = i
		}
	}
	return best
}

func ones(n int) []float64 {
	v := make([]float64, n)
	for i := range v {
		v[i] = 1
	}
	return v
}
