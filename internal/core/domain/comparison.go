package domain

import "github.com/shopspring/decimal"

// InfeasibilityCause classifies why the budget-constrained scenario
// produced no assignment.
type InfeasibilityCause string

const (
	// CauseInsufficientBudget: the unlimited scenario found an assignment,
	// so the budget ceiling is what empties the feasible region.
	CauseInsufficientBudget InfeasibilityCause = "insufficient_budget"

	// CauseUnsatisfiableShares: even without a budget the share and floor
	// constraints admit no assignment.
	CauseUnsatisfiableShares InfeasibilityCause = "unsatisfiable_shares"

	// CauseUndetermined: the runs ended without enough evidence to blame
	// either constraint group.
	CauseUndetermined InfeasibilityCause = "undetermined"
)

// InfeasibilityDiagnosis explains a failed budget-constrained scenario so
// the caller knows which parameter to relax. MinSpendBound is a lower
// bound on spend computable without a solver; when it already exceeds the
// budget the verdict is immediate.
type InfeasibilityDiagnosis struct {
	Cause         InfeasibilityCause `json:"cause"`
	MinSpendBound decimal.Decimal    `json:"min_spend_bound"`
	BudgetMax     *decimal.Decimal   `json:"budget_max,omitempty"`
	Detail        string             `json:"detail"`
}

// ScenarioDelta is the incremental value of removing the budget ceiling,
// unlimited minus limited per column. ExtraLeads is zero whenever both
// scenarios are feasible since the lead total is identical across them.
type ScenarioDelta struct {
	ExtraLeads          int              `json:"extra_leads"`
	ExtraCost           decimal.Decimal  `json:"extra_cost"`
	ExtraMargin         decimal.Decimal  `json:"extra_margin"`
	ExtraMargin60       *decimal.Decimal `json:"extra_margin_60d,omitempty"`
	ExtraWeightedMargin *decimal.Decimal `json:"extra_weighted_margin,omitempty"`
}

// ScenarioComparison holds the budget-constrained run (scenario A), the
// unconstrained control run (scenario B) and their delta. Delta is nil
// when either scenario carries no assignment; Diagnosis is set when the
// limited scenario carries none.
type ScenarioComparison struct {
	ComparisonID string                  `json:"comparison_id"`
	Limited      AllocationResult        `json:"scenario_a"`
	Unlimited    AllocationResult        `json:"scenario_b"`
	Delta        *ScenarioDelta          `json:"delta,omitempty"`
	Diagnosis    *InfeasibilityDiagnosis `json:"diagnosis,omitempty"`
}
