package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/franznanni77/mkt-1/internal/core/domain"
	"github.com/franznanni77/mkt-1/internal/core/model"
	"github.com/franznanni77/mkt-1/internal/core/port"
	"github.com/franznanni77/mkt-1/internal/metrics"
)

// CompareScenarios quantifies the value of budget headroom: scenario A
// keeps the caller's budget ceiling, scenario B drops it entirely. Both
// models are built up front so configuration errors surface before any
// search starts; the two solves then run concurrently, they share no
// state. Both use the exact strategy.
func (u *AllocationUseCase) CompareScenarios(ctx context.Context, catalog domain.Catalog, params domain.AllocationParams) (domain.ScenarioComparison, error) {
	if params.BudgetMax == nil {
		return domain.ScenarioComparison{}, domain.NewValidationError("budget_max", "required for scenario comparison")
	}
	limited, err := model.Build(catalog, params)
	if err != nil {
		return domain.ScenarioComparison{}, err
	}
	openParams := params
	openParams.BudgetMax = nil
	unlimited, err := model.Build(catalog, openParams)
	if err != nil {
		return domain.ScenarioComparison{}, err
	}

	var outA, outB port.Outcome
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		outA, err = u.solve(gctx, u.exact, limited)
		return err
	})
	g.Go(func() error {
		var err error
		outB, err = u.solve(gctx, u.exact, unlimited)
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.ScenarioComparison{}, err
	}
	metrics.ObserveSolve(string(port.StrategyExact), string(outA.Status), outA.Elapsed, outA.Nodes)
	metrics.ObserveSolve(string(port.StrategyExact), string(outB.Status), outB.Elapsed, outB.Nodes)

	cmp := domain.ScenarioComparison{
		ComparisonID: uuid.NewString(),
		Limited:      assemble(limited, outA),
		Unlimited:    assemble(unlimited, outB),
	}
	if outA.Status.Feasible() && outB.Status.Feasible() {
		cmp.Delta = scenarioDelta(cmp.Limited, cmp.Unlimited)
	}
	if !outA.Status.Feasible() {
		cmp.Diagnosis = diagnose(catalog, params, outA, outB)
	}
	return cmp, nil
}

// scenarioDelta subtracts the limited totals from the unlimited ones.
func scenarioDelta(limited, unlimited domain.AllocationResult) *domain.ScenarioDelta {
	d := &domain.ScenarioDelta{
		ExtraLeads:  unlimited.Totals.Leads - limited.Totals.Leads,
		ExtraCost:   unlimited.Totals.Cost.Sub(limited.Totals.Cost),
		ExtraMargin: unlimited.Totals.Margin.Sub(limited.Totals.Margin),
	}
	if limited.Totals.Margin60 != nil && unlimited.Totals.Margin60 != nil {
		m60 := unlimited.Totals.Margin60.Sub(*limited.Totals.Margin60)
		d.ExtraMargin60 = &m60
	}
	if limited.Totals.WeightedMargin != nil && unlimited.Totals.WeightedMargin != nil {
		wm := unlimited.Totals.WeightedMargin.Sub(*limited.Totals.WeightedMargin)
		d.ExtraWeightedMargin = &wm
	}
	return d
}

// diagnose explains a budget-constrained scenario that carries no
// assignment. The unlimited run doubles as the control: if it found an
// assignment, only the budget ceiling can have emptied the feasible
// region; if it is infeasible too, the share and floor constraints are
// unsatisfiable at any spend. Without a usable control the static spend
// bound decides.
func diagnose(catalog domain.Catalog, params domain.AllocationParams, outA, outB port.Outcome) *domain.InfeasibilityDiagnosis {
	bound := decimal.NewFromFloat(model.MinSpendBound(catalog, params))
	budget := decimal.NewFromFloat(*params.BudgetMax)
	d := &domain.InfeasibilityDiagnosis{MinSpendBound: bound, BudgetMax: &budget}

	if outA.Status != domain.StatusInfeasible {
		d.Cause = domain.CauseUndetermined
		d.Detail = fmt.Sprintf("the budget-constrained run ended %s without a verdict", outA.Status)
		return d
	}
	switch {
	case outB.Status.Feasible():
		d.Cause = domain.CauseInsufficientBudget
		d.Detail = fmt.Sprintf(
			"the same model is feasible without the ceiling; spend is at least %s against a budget of %s",
			bound, budget)
	case outB.Status == domain.StatusInfeasible:
		d.Cause = domain.CauseUnsatisfiableShares
		d.Detail = "no assignment satisfies the share and floor constraints at any spend"
	case bound.GreaterThan(budget):
		d.Cause = domain.CauseInsufficientBudget
		d.Detail = fmt.Sprintf("minimum spend is at least %s against a budget of %s", bound, budget)
	default:
		d.Cause = domain.CauseUndetermined
		d.Detail = fmt.Sprintf("minimum spend bound %s does not exceed the budget %s", bound, budget)
	}
	return d
}
