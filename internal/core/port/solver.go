package port

import (
	"context"
	"errors"
	"time"

	"github.com/franznanni77/mkt-1/internal/core/domain"
	"github.com/franznanni77/mkt-1/internal/core/model"
)

// ErrUnsupportedModel is returned by a solving strategy handed a model it
// cannot honor, wrapped with the concrete reason. Callers can retry with
// a different strategy.
var ErrUnsupportedModel = errors.New("unsupported model")

// Outcome is the raw verdict of one solve. Leads is the per-campaign
// assignment in model order and is nil unless the status is feasible.
// Nodes counts the search steps taken, whatever the strategy calls a
// step. Proven marks an outcome the strategy certifies: an optimum, or an
// infeasibility established by exhausting the search.
type Outcome struct {
	Status    domain.Status
	Leads     []int
	Objective float64
	Proven    bool
	Nodes     int
	Elapsed   time.Duration
}

// Solver is a solving strategy for allocation models. It is an outbound
// port in hexagonal architecture. Implementations must not mutate the
// model and must return a repeatable objective value for the same model.
// Long searches honor the context deadline and return their best
// incumbent rather than block.
type Solver interface {
	Solve(ctx context.Context, m model.Model) (Outcome, error)
}
