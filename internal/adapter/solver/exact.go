package solver

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"

	"github.com/franznanni77/mkt-1/internal/core/domain"
	"github.com/franznanni77/mkt-1/internal/core/model"
	"github.com/franznanni77/mkt-1/internal/core/port"
)

const (
	// intTol is how far a relaxation value may sit from an integer and
	// still count as integral.
	intTol = 1e-6
	// pruneTol guards bound comparisons against float noise.
	pruneTol = 1e-9
)

// Config bounds the branch-and-bound search. MaxNodes 0 means no node
// limit; the time budget comes from the context deadline.
type Config struct {
	MaxNodes int
}

// Exact solves allocation models to proven integer optimality with a
// branch-and-bound search over LP relaxations, each relaxation solved by
// the gonum simplex. Branching picks the lowest-index fractional
// variable and explores the floor side first, so the search order and
// with it the reported objective value are deterministic. Rounding an
// integral-looking relaxation point is never trusted on its own: every
// candidate is re-verified against all model rows before it may become
// the incumbent.
type Exact struct {
	cfg Config
}

// NewExact creates the exact solving strategy.
func NewExact(cfg Config) *Exact {
	return &Exact{cfg: cfg}
}

// Solve implements port.Solver. On an exhausted search it returns the
// best incumbent as a feasible, non-proven outcome, or undetermined when
// none was found. Infeasibility and unboundedness established at the
// root are reported as their own statuses, not errors.
func (s *Exact) Solve(ctx context.Context, m model.Model) (port.Outcome, error) {
	start := time.Now()
	n := len(m.Objective)
	if n == 0 {
		return port.Outcome{Status: domain.StatusUndetermined}, fmt.Errorf("model has no campaigns")
	}

	root := newNode(n, float64(m.Params.TotalLeads))
	stack := []node{root}

	var (
		bestLeads []int
		bestObj   = math.Inf(-1)
		haveBest  bool
		nodes     int
		stopped   bool
		unbounded bool
		lpFailure error
	)

	for len(stack) > 0 {
		if ctx.Err() != nil {
			stopped = true
			break
		}
		if s.cfg.MaxNodes > 0 && nodes >= s.cfg.MaxNodes {
			stopped = true
			break
		}
		nd := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		nodes++

		x, bound, err := solveRelaxation(m, nd)
		if err != nil {
			switch {
			case errors.Is(err, lp.ErrInfeasible):
				// pruned: nothing feasible below this node
			case errors.Is(err, lp.ErrUnbounded):
				if nodes == 1 {
					unbounded = true
					stack = nil
				} else {
					lpFailure = err
				}
			default:
				lpFailure = err
			}
			continue
		}

		if bound <= bestObj+pruneTol {
			continue
		}

		branch := fractionalIndex(x)
		if branch < 0 {
			leads, ok := integerCandidate(m, x)
			if !ok {
				continue
			}
			if obj := integerObjective(m.Objective, leads); !haveBest || obj > bestObj {
				bestObj = obj
				bestLeads = leads
				haveBest = true
			}
			continue
		}

		// floor child on top of the stack so it is explored first
		ceil := nd.withLower(branch, math.Ceil(x[branch]))
		floor := nd.withUpper(branch, math.Floor(x[branch]))
		stack = append(stack, ceil, floor)
	}

	out := port.Outcome{Nodes: nodes, Elapsed: time.Since(start)}
	switch {
	case unbounded:
		out.Status = domain.StatusUnbounded
	case haveBest:
		out.Leads = bestLeads
		out.Objective = bestObj
		if stopped || lpFailure != nil {
			out.Status = domain.StatusFeasible
		} else {
			out.Status = domain.StatusOptimal
			out.Proven = true
		}
	case stopped || lpFailure != nil:
		out.Status = domain.StatusUndetermined
	default:
		// the whole tree was searched without one integer point
		out.Status = domain.StatusInfeasible
		out.Proven = true
	}
	if out.Status == domain.StatusUndetermined && lpFailure != nil {
		return out, fmt.Errorf("simplex: %w", lpFailure)
	}
	return out, nil
}

// node is one subproblem: the model under tightened per-variable bounds.
type node struct {
	lower []float64
	upper []float64
}

func newNode(n int, upper float64) node {
	nd := node{lower: make([]float64, n), upper: make([]float64, n)}
	for i := range nd.upper {
		nd.upper[i] = upper
	}
	return nd
}

func (nd node) withUpper(i int, v float64) node {
	child := nd.clone()
	if v < child.upper[i] {
		child.upper[i] = v
	}
	return child
}

func (nd node) withLower(i int, v float64) node {
	child := nd.clone()
	if v > child.lower[i] {
		child.lower[i] = v
	}
	return child
}

func (nd node) clone() node {
	return node{
		lower: append([]float64(nil), nd.lower...),
		upper: append([]float64(nil), nd.upper...),
	}
}

// solveRelaxation solves the LP relaxation of the model under the node's
// variable bounds. It returns the per-campaign point and the relaxation
// objective, an upper bound on anything integral below this node. The
// model's rows are translated into gonum's general form, minimize c.x
// subject to G.x <= h and A.x = b, with the maximization handled by
// negating the objective.
func solveRelaxation(m model.Model, nd node) ([]float64, float64, error) {
	n := len(m.Objective)

	var (
		gRows [][]float64
		h     []float64
		aRows [][]float64
		b     []float64
	)
	for _, row := range m.Rows {
		switch row.Sense {
		case model.LE:
			gRows = append(gRows, row.Coeffs)
			h = append(h, row.RHS)
		case model.GE:
			gRows = append(gRows, negate(row.Coeffs))
			h = append(h, -row.RHS)
		case model.EQ:
			aRows = append(aRows, row.Coeffs)
			b = append(b, row.RHS)
		}
	}
	if len(b) == 0 {
		return nil, 0, fmt.Errorf("model has no equality row")
	}
	// Convert treats variables as free, so the node bounds double as the
	// non-negativity constraints: -x_i <= -lower_i and x_i <= upper_i.
	for i := 0; i < n; i++ {
		gRows = append(gRows, unit(n, i, -1))
		h = append(h, -nd.lower[i])
		gRows = append(gRows, unit(n, i, 1))
		h = append(h, nd.upper[i])
	}

	c := negate(m.Objective)
	g := mat.NewDense(len(gRows), n, flatten(gRows))
	a := mat.NewDense(len(aRows), n, flatten(aRows))

	cStd, aStd, bStd := lp.Convert(c, g, h, a, b)
	optF, optX, err := lp.Simplex(cStd, aStd, bStd, 0, nil)
	if err != nil {
		return nil, 0, err
	}

	// standard-form columns are [x+, x-, slack]; recover x = x+ - x-
	x := make([]float64, n)
	for i := range x {
		x[i] = optX[i] - optX[n+i]
	}
	return x, -optF, nil
}

// fractionalIndex returns the lowest index whose value is further than
// intTol from an integer, or -1 for an integral point.
func fractionalIndex(x []float64) int {
	for i, v := range x {
		if math.Abs(v-math.Round(v)) > intTol {
			return i
		}
	}
	return -1
}

// integerCandidate rounds an integral relaxation point and re-verifies
// every model row at the rounded values. A point that no longer
// satisfies the lead total or any other row after rounding is discarded,
// never silently kept.
func integerCandidate(m model.Model, x []float64) ([]int, bool) {
	leads := make([]int, len(x))
	for i, v := range x {
		r := math.Round(v)
		if r < 0 {
			return nil, false
		}
		leads[i] = int(r)
	}
	if !m.Satisfied(leads) {
		return nil, false
	}
	return leads, true
}

func integerObjective(obj []float64, leads []int) float64 {
	var v float64
	for i, n := range leads {
		v += obj[i] * float64(n)
	}
	return v
}

func negate(v []float64) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = -x
	}
	return out
}

func unit(n, i int, v float64) []float64 {
	row := make([]float64, n)
	row[i] = v
	return row
}

func flatten(rows [][]float64) []float64 {
	if len(rows) == 0 {
		return nil
	}
	out := make([]float64, 0, len(rows)*len(rows[0]))
	for _, r := range rows {
		out = append(out, r...)
	}
	return out
}
