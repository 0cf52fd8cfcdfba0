package heuristic

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/franznanni77/mkt-1/internal/core/domain"
	"github.com/franznanni77/mkt-1/internal/core/model"
	"github.com/franznanni77/mkt-1/internal/core/port"
)

// splitShare is the fixed fraction handed to the least profitable
// campaign of a multi-campaign category. The 20/80 split is a historical
// simplification kept for parity testing against the exact solver, not a
// recommended strategy: with three or more campaigns in one category
// everything between the worst and the best earner receives nothing,
// which is knowingly suboptimal.
const splitShare = 0.2

// ctxCheckEvery is how many scanned splits pass between context checks.
const ctxCheckEvery = 1024

// Allocator is the legacy solving strategy: an exhaustive scan over the
// two-way category split with a closed-form assignment inside each
// category. It runs without any LP machinery, in O(total leads).
type Allocator struct{}

// NewAllocator creates the heuristic solving strategy.
func NewAllocator() *Allocator {
	return &Allocator{}
}

// Solve implements port.Solver. It scans every category split consistent
// with the corpo floor and keeps the most profitable one. Candidate
// assignments are re-verified against the model rows and splits the
// fixed share cannot make feasible are skipped, so a feasible outcome
// really satisfies the model. Results are reported feasible, never
// proven optimal. Models the strategy cannot honor are refused with
// ErrUnsupportedModel: more than two categories, any budget ceiling, a
// minimum share above the fixed 20% split, or the strong share variant
// over a category with three or more campaigns.
func (a *Allocator) Solve(ctx context.Context, m model.Model) (port.Outcome, error) {
	start := time.Now()
	if err := supported(m); err != nil {
		return port.Outcome{Status: domain.StatusUndetermined}, err
	}

	total := m.Params.TotalLeads
	cats := categories(m.Campaigns)
	leads := make([]int, len(m.Campaigns))

	if len(cats) == 1 {
		profit := assignGreedy(m.Objective, indicesOf(m.Campaigns, cats[0]), total, leads)
		out := port.Outcome{Nodes: 1, Elapsed: time.Since(start)}
		if !m.Satisfied(leads) {
			out.Status = domain.StatusUndetermined
			return out, nil
		}
		out.Status = domain.StatusFeasible
		out.Leads = leads
		out.Objective = profit
		return out, nil
	}

	// scan the split against the second category; with corpo present the
	// scanned side is corpo so the floor becomes the scan's lower limit
	first, second := cats[0], cats[1]
	if first == domain.CategoryCorpo {
		first, second = second, first
	}
	firstIdx := indicesOf(m.Campaigns, first)
	secondIdx := indicesOf(m.Campaigns, second)

	lo := 0
	if second == domain.CategoryCorpo && m.Params.CorpoPercent > 0 {
		lo = int(math.Ceil(m.Params.CorpoPercent * float64(total)))
		if lo > total {
			lo = total
		}
	}

	var (
		bestProfit = math.Inf(-1)
		bestLeads  []int
		splits     int
		buf        = make([]int, len(m.Campaigns))
	)
	for k := lo; k <= total; k++ {
		if splits%ctxCheckEvery == 0 && ctx.Err() != nil {
			break
		}
		splits++
		profit := assignGreedy(m.Objective, firstIdx, total-k, buf) +
			assignGreedy(m.Objective, secondIdx, k, buf)
		if profit <= bestProfit || !m.Satisfied(buf) {
			continue
		}
		bestProfit = profit
		bestLeads = append(bestLeads[:0], buf...)
	}

	out := port.Outcome{Nodes: splits, Elapsed: time.Since(start)}
	if bestLeads == nil {
		out.Status = domain.StatusUndetermined
		return out, nil
	}
	out.Status = domain.StatusFeasible
	out.Leads = bestLeads
	out.Objective = bestProfit
	return out, nil
}

// supported rejects models whose constraints the fixed split cannot
// honor.
func supported(m model.Model) error {
	cats := categories(m.Campaigns)
	if len(cats) > 2 {
		return fmt.Errorf("%w: %d categories, at most two supported", port.ErrUnsupportedModel, len(cats))
	}
	if m.Params.BudgetMax != nil {
		return fmt.Errorf("%w: budget ceiling not supported", port.ErrUnsupportedModel)
	}
	if m.Params.MinShare > splitShare {
		return fmt.Errorf("%w: min_share %.3g above the fixed %.0f%% split",
			port.ErrUnsupportedModel, m.Params.MinShare, splitShare*100)
	}
	if m.Params.MinShare > 0 && m.Params.Variant() == domain.ShareStrong {
		for _, cat := range cats {
			if n := len(indicesOf(m.Campaigns, cat)); n > 2 {
				return fmt.Errorf("%w: strong share variant with %d campaigns in category %q",
					port.ErrUnsupportedModel, n, cat)
			}
		}
	}
	return nil
}

// assignGreedy fills the leads of one category into out and returns their
// profit. A lone campaign takes everything. With two or more, the least
// profitable member takes the rounded 20% share, the most profitable the
// remainder and the rest zero; ties go to the earliest campaign, the same
// order the model builder uses. When every member earns the same the
// whole category goes to the first one so no lead is ever lost to the
// split bookkeeping.
func assignGreedy(obj []float64, members []int, leads int, out []int) float64 {
	for _, i := range members {
		out[i] = 0
	}
	if leads <= 0 || len(members) == 0 {
		return 0
	}
	if len(members) == 1 {
		out[members[0]] = leads
		return obj[members[0]] * float64(leads)
	}

	minIdx, maxIdx := members[0], members[0]
	for _, i := range members[1:] {
		if obj[i] < obj[minIdx] {
			minIdx = i
		}
		if obj[i] > obj[maxIdx] {
			maxIdx = i
		}
	}
	if minIdx == maxIdx {
		out[minIdx] = leads
		return obj[minIdx] * float64(leads)
	}

	minLeads := int(math.Round(splitShare * float64(leads)))
	out[minIdx] = minLeads
	out[maxIdx] = leads - minLeads
	return obj[minIdx]*float64(minLeads) + obj[maxIdx]*float64(leads-minLeads)
}

func categories(campaigns []domain.Campaign) []string {
	var out []string
	seen := make(map[string]bool)
	for _, c := range campaigns {
		if !seen[c.Category] {
			seen[c.Category] = true
			out = append(out, c.Category)
		}
	}
	return out
}

func indicesOf(campaigns []domain.Campaign, category string) []int {
	var out []int
	for i, c := range campaigns {
		if c.Category == category {
			out = append(out, i)
		}
	}
	return out
}
