package port

import (
	"context"

	"github.com/franznanni77/mkt-1/internal/core/domain"
)

// Strategy selects the solving path for one optimization call.
type Strategy string

const (
	StrategyExact     Strategy = "exact"
	StrategyHeuristic Strategy = "heuristic"
)

// Allocator defines the engine operations exposed to transports. This
// interface is the primary port into the application domain.
type Allocator interface {
	// Optimize builds the allocation model for the catalog and parameters,
	// solves it with the requested strategy (exact when empty) and returns
	// the assembled result table. Infeasibility is reported in the result
	// status, not as an error. Errors cover invalid configuration, models
	// the chosen strategy cannot handle, and internal solver failures.
	Optimize(ctx context.Context, catalog domain.Catalog, params domain.AllocationParams, strategy Strategy) (domain.AllocationResult, error)

	// CompareScenarios solves the model twice, once under the caller's
	// budget ceiling and once with the ceiling removed, and quantifies the
	// value of the extra spend. BudgetMax must be set. Both runs use the
	// exact strategy. When the budget-constrained run carries no
	// assignment the comparison includes a diagnosis of the likely cause.
	CompareScenarios(ctx context.Context, catalog domain.Catalog, params domain.AllocationParams) (domain.ScenarioComparison, error)
}
