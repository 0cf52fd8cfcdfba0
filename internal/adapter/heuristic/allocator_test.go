package heuristic

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/franznanni77/mkt-1/internal/adapter/solver"
	"github.com/franznanni77/mkt-1/internal/core/domain"
	"github.com/franznanni77/mkt-1/internal/core/model"
	"github.com/franznanni77/mkt-1/internal/core/port"
)

func fptr(v float64) *float64 { return &v }

func buildModel(t *testing.T, records []domain.Campaign, params domain.AllocationParams) model.Model {
	t.Helper()
	catalog, _, err := domain.NewCatalog(records)
	require.NoError(t, err)
	m, err := model.Build(catalog, params)
	require.NoError(t, err)
	return m
}

func sumLeads(leads []int) int {
	total := 0
	for _, n := range leads {
		total += n
	}
	return total
}

func TestSolveScansCorpoSplit(t *testing.T) {
	m := buildModel(t, []domain.Campaign{
		{Name: "laser", Category: "laser", CostPerLead: 10, RevenuePerLead: 30},
		{Name: "corpo", Category: "corpo", CostPerLead: 15, RevenuePerLead: 50},
	}, domain.AllocationParams{TotalLeads: 100, CorpoPercent: 0.3})

	out, err := NewAllocator().Solve(context.Background(), m)
	require.NoError(t, err)

	// corpo out-earns laser on every lead, the scan ends at a full corpo
	// allocation
	assert.Equal(t, domain.StatusFeasible, out.Status)
	assert.False(t, out.Proven)
	assert.Equal(t, []int{0, 100}, out.Leads)
	assert.InDelta(t, 3500, out.Objective, 1e-9)
	// splits 30..100 inclusive
	assert.Equal(t, 71, out.Nodes)
}

func TestSolveMatchesExactOnTwoCampaignCategories(t *testing.T) {
	exact := solver.NewExact(solver.Config{})
	heur := NewAllocator()

	tests := []struct {
		name    string
		records []domain.Campaign
		params  domain.AllocationParams
	}{
		{
			name: "one campaign per category",
			records: []domain.Campaign{
				{Name: "laser", Category: "laser", CostPerLead: 10, RevenuePerLead: 30},
				{Name: "corpo", Category: "corpo", CostPerLead: 15, RevenuePerLead: 50},
			},
			params: domain.AllocationParams{TotalLeads: 100, CorpoPercent: 0.3, MinShare: 0.2},
		},
		{
			name: "two campaigns in one category",
			records: []domain.Campaign{
				{Name: "big", Category: "laser", CostPerLead: 10, RevenuePerLead: 40},
				{Name: "small", Category: "laser", CostPerLead: 10, RevenuePerLead: 20},
			},
			params: domain.AllocationParams{TotalLeads: 100, MinShare: 0.2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exactOut, err := exact.Solve(context.Background(), buildModel(t, tt.records, tt.params))
			require.NoError(t, err)
			heurOut, err := heur.Solve(context.Background(), buildModel(t, tt.records, tt.params))
			require.NoError(t, err)

			require.True(t, exactOut.Status.Feasible())
			require.True(t, heurOut.Status.Feasible())
			assert.InDelta(t, exactOut.Objective, heurOut.Objective, 1e-6)
			assert.Equal(t, tt.params.TotalLeads, sumLeads(heurOut.Leads))
		})
	}
}

func TestSolveSuboptimalWithThreeCampaigns(t *testing.T) {
	// three laser campaigns: the 20/80 split starves the middle earner
	// and wastes the fixed 20% on the weakest
	records := []domain.Campaign{
		{Name: "l1", Category: "laser", CostPerLead: 10, RevenuePerLead: 40},
		{Name: "l2", Category: "laser", CostPerLead: 10, RevenuePerLead: 20},
		{Name: "l3", Category: "laser", CostPerLead: 10, RevenuePerLead: 15},
		{Name: "c1", Category: "corpo", CostPerLead: 15, RevenuePerLead: 23},
	}
	params := domain.AllocationParams{TotalLeads: 100, CorpoPercent: 0.3}

	exactOut, err := solver.NewExact(solver.Config{}).Solve(context.Background(), buildModel(t, records, params))
	require.NoError(t, err)
	heurOut, err := NewAllocator().Solve(context.Background(), buildModel(t, records, params))
	require.NoError(t, err)

	// exact sends the 70 non-floor leads to l1 for 2340; the heuristic
	// burns 14 of them on l3 and reaches only 1990
	assert.InDelta(t, 2340, exactOut.Objective, 1e-6)
	assert.InDelta(t, 1990, heurOut.Objective, 1e-9)
	assert.Less(t, heurOut.Objective, exactOut.Objective)
	assert.Equal(t, 100, sumLeads(heurOut.Leads))
}

func TestSolveSingleCategoryTakesAll(t *testing.T) {
	m := buildModel(t, []domain.Campaign{
		{Name: "big", Category: "laser", CostPerLead: 10, RevenuePerLead: 40},
		{Name: "small", Category: "laser", CostPerLead: 10, RevenuePerLead: 20},
	}, domain.AllocationParams{TotalLeads: 60})

	out, err := NewAllocator().Solve(context.Background(), m)
	require.NoError(t, err)

	assert.Equal(t, []int{48, 12}, out.Leads)
	assert.InDelta(t, 48*30+12*10, out.Objective, 1e-9)
}

func TestSolveEqualProfitsLoseNoLeads(t *testing.T) {
	m := buildModel(t, []domain.Campaign{
		{Name: "a", Category: "laser", CostPerLead: 10, RevenuePerLead: 30},
		{Name: "b", Category: "laser", CostPerLead: 10, RevenuePerLead: 30},
	}, domain.AllocationParams{TotalLeads: 77})

	out, err := NewAllocator().Solve(context.Background(), m)
	require.NoError(t, err)

	assert.Equal(t, 77, sumLeads(out.Leads))
	assert.InDelta(t, 77*20, out.Objective, 1e-9)
}

func TestSolveRoundedShareUndershoot(t *testing.T) {
	// 20% of 7 leads rounds to 1, below the 1.4 the share row demands,
	// so the fixed split has no feasible answer here
	m := buildModel(t, []domain.Campaign{
		{Name: "big", Category: "laser", CostPerLead: 10, RevenuePerLead: 40},
		{Name: "small", Category: "laser", CostPerLead: 10, RevenuePerLead: 20},
	}, domain.AllocationParams{TotalLeads: 7, MinShare: 0.2})

	out, err := NewAllocator().Solve(context.Background(), m)
	require.NoError(t, err)

	assert.Equal(t, domain.StatusUndetermined, out.Status)
	assert.Nil(t, out.Leads)
}

func TestSolveSkipsInfeasibleSplits(t *testing.T) {
	// equal laser profits send every laser lead to one campaign, which
	// violates the other's share row, so only the all-corpo split
	// survives verification
	m := buildModel(t, []domain.Campaign{
		{Name: "a", Category: "laser", CostPerLead: 10, RevenuePerLead: 30},
		{Name: "b", Category: "laser", CostPerLead: 10, RevenuePerLead: 30},
		{Name: "c", Category: "corpo", CostPerLead: 5, RevenuePerLead: 15},
	}, domain.AllocationParams{TotalLeads: 50, CorpoPercent: 0.2, MinShare: 0.2})

	out, err := NewAllocator().Solve(context.Background(), m)
	require.NoError(t, err)

	assert.Equal(t, domain.StatusFeasible, out.Status)
	assert.Equal(t, []int{0, 0, 50}, out.Leads)
	assert.InDelta(t, 500, out.Objective, 1e-9)
}

func TestSolveRefusesUnsupportedModels(t *testing.T) {
	two := []domain.Campaign{
		{Name: "laser", Category: "laser", CostPerLead: 10, RevenuePerLead: 30},
		{Name: "corpo", Category: "corpo", CostPerLead: 15, RevenuePerLead: 50},
	}

	tests := []struct {
		name    string
		records []domain.Campaign
		params  domain.AllocationParams
	}{
		{
			name:    "budget ceiling",
			records: two,
			params:  domain.AllocationParams{TotalLeads: 100, BudgetMax: fptr(2000)},
		},
		{
			name: "three categories",
			records: []domain.Campaign{
				{Name: "a", Category: "laser", CostPerLead: 1, RevenuePerLead: 2},
				{Name: "b", Category: "corpo", CostPerLead: 1, RevenuePerLead: 2},
				{Name: "c", Category: "premium", CostPerLead: 1, RevenuePerLead: 2},
			},
			params: domain.AllocationParams{TotalLeads: 100},
		},
		{
			name:    "share above the fixed split",
			records: two,
			params:  domain.AllocationParams{TotalLeads: 100, MinShare: 0.25},
		},
		{
			name: "strong shares over three campaigns",
			records: []domain.Campaign{
				{Name: "a", Category: "laser", CostPerLead: 1, RevenuePerLead: 5},
				{Name: "b", Category: "laser", CostPerLead: 1, RevenuePerLead: 4},
				{Name: "c", Category: "laser", CostPerLead: 1, RevenuePerLead: 3},
			},
			params: domain.AllocationParams{TotalLeads: 100, MinShare: 0.1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := buildModel(t, tt.records, tt.params)
			_, err := NewAllocator().Solve(context.Background(), m)
			assert.True(t, errors.Is(err, port.ErrUnsupportedModel), "got %v", err)
		})
	}
}
