package usecase

import (
	"context"
	"time"

	"github.com/franznanni77/mkt-1/internal/core/domain"
	"github.com/franznanni77/mkt-1/internal/core/model"
	"github.com/franznanni77/mkt-1/internal/core/port"
	"github.com/franznanni77/mkt-1/internal/metrics"
)

// Config tunes the usecase. SolveTimeout bounds each individual solve, 0
// leaves solves bounded only by the caller's context. DefaultStrategy is
// used when a call does not name one; empty falls back to exact.
type Config struct {
	SolveTimeout    time.Duration
	DefaultStrategy port.Strategy
}

// AllocationUseCase provides the business logic of the engine: building
// models, dispatching them to a solving strategy and assembling result
// tables. It orchestrates the core packages to implement the Allocator
// interface. All state is per call, instances are safe for concurrent
// use.
type AllocationUseCase struct {
	exact     port.Solver
	heuristic port.Solver
	cfg       Config
}

// NewAllocationUseCase creates a usecase with the two solving strategies.
func NewAllocationUseCase(exact, heuristic port.Solver, cfg Config) *AllocationUseCase {
	return &AllocationUseCase{exact: exact, heuristic: heuristic, cfg: cfg}
}

// Optimize builds the allocation model and solves it with the requested
// strategy. Configuration errors surface before any search starts; an
// infeasible model comes back as a result status, not an error.
func (u *AllocationUseCase) Optimize(ctx context.Context, catalog domain.Catalog, params domain.AllocationParams, strategy port.Strategy) (domain.AllocationResult, error) {
	m, err := model.Build(catalog, params)
	if err != nil {
		return domain.AllocationResult{}, err
	}
	solver, chosen, err := u.pick(strategy)
	if err != nil {
		return domain.AllocationResult{}, err
	}
	out, err := u.solve(ctx, solver, m)
	if err != nil {
		metrics.ObserveSolve(string(chosen), "error", out.Elapsed, out.Nodes)
		return domain.AllocationResult{}, err
	}
	metrics.ObserveSolve(string(chosen), string(out.Status), out.Elapsed, out.Nodes)
	return assemble(m, out), nil
}

// pick resolves the solving strategy for one call.
func (u *AllocationUseCase) pick(strategy port.Strategy) (port.Solver, port.Strategy, error) {
	if strategy == "" {
		strategy = u.cfg.DefaultStrategy
	}
	if strategy == "" {
		strategy = port.StrategyExact
	}
	switch strategy {
	case port.StrategyExact:
		return u.exact, strategy, nil
	case port.StrategyHeuristic:
		return u.heuristic, strategy, nil
	default:
		return nil, strategy, domain.NewValidationError("strategy", `must be "exact" or "heuristic"`)
	}
}

// solve runs one strategy under the configured per-solve time budget.
func (u *AllocationUseCase) solve(ctx context.Context, s port.Solver, m model.Model) (port.Outcome, error) {
	if u.cfg.SolveTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, u.cfg.SolveTimeout)
		defer cancel()
	}
	return s.Solve(ctx, m)
}
