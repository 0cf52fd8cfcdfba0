package usecase

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/franznanni77/mkt-1/internal/core/domain"
	"github.com/franznanni77/mkt-1/internal/core/model"
	"github.com/franznanni77/mkt-1/internal/core/port"
)

// assemble turns a raw solver outcome into the result table: one row per
// campaign in catalog order, category subtotals in first-appearance order
// and a grand total. Money becomes exact decimal here, float64 stays
// confined to solver coefficients. Outcomes without an assignment keep
// their status and search figures but carry no rows.
func assemble(m model.Model, out port.Outcome) domain.AllocationResult {
	res := domain.AllocationResult{
		RunID:        uuid.NewString(),
		Status:       out.Status,
		ShareVariant: m.Params.Variant(),
		Objective:    out.Objective,
		Proven:       out.Proven,
		Nodes:        out.Nodes,
		Elapsed:      out.Elapsed,
	}
	if !out.Status.Feasible() {
		return res
	}

	blended := m.Params.WeightImmediate != nil
	rows := make([]domain.CampaignAllocation, len(m.Campaigns))
	for i, c := range m.Campaigns {
		n := decimal.NewFromInt(int64(out.Leads[i]))
		cost := decimal.NewFromFloat(c.CostPerLead).Mul(n)
		revenue := decimal.NewFromFloat(c.RevenuePerLead).Mul(n)
		row := domain.CampaignAllocation{
			Name:          c.Name,
			Category:      c.Category,
			LeadsAssigned: out.Leads[i],
			Cost:          cost,
			Revenue:       revenue,
			Margin:        revenue.Sub(cost),
		}
		if blended && c.RevenuePerLead60d != nil {
			rev60 := decimal.NewFromFloat(*c.RevenuePerLead60d).Mul(n)
			margin60 := rev60.Sub(cost)
			row.Revenue60 = &rev60
			row.Margin60 = &margin60
		}
		rows[i] = row
	}
	res.Rows = rows
	res.CategoryTotals = categoryTotals(m, rows)
	res.Totals = grandTotal(m, rows)
	return res
}

func categoryTotals(m model.Model, rows []domain.CampaignAllocation) []domain.CategoryTotal {
	order := make([]string, 0, 2)
	byCat := make(map[string]*domain.CategoryTotal)
	for _, row := range rows {
		total, ok := byCat[row.Category]
		if !ok {
			order = append(order, row.Category)
			total = &domain.CategoryTotal{Category: row.Category}
			byCat[row.Category] = total
		}
		total.Leads += row.LeadsAssigned
		total.Cost = total.Cost.Add(row.Cost)
		total.Revenue = total.Revenue.Add(row.Revenue)
		total.Margin = total.Margin.Add(row.Margin)
		if row.Revenue60 != nil {
			total.Revenue60 = addOptional(total.Revenue60, *row.Revenue60)
			total.Margin60 = addOptional(total.Margin60, *row.Margin60)
		}
	}
	out := make([]domain.CategoryTotal, len(order))
	for i, cat := range order {
		out[i] = *byCat[cat]
	}
	return out
}

func grandTotal(m model.Model, rows []domain.CampaignAllocation) domain.GrandTotal {
	var total domain.GrandTotal
	for _, row := range rows {
		total.Leads += row.LeadsAssigned
		total.Cost = total.Cost.Add(row.Cost)
		total.Revenue = total.Revenue.Add(row.Revenue)
		total.Margin = total.Margin.Add(row.Margin)
		if row.Revenue60 != nil {
			total.Revenue60 = addOptional(total.Revenue60, *row.Revenue60)
			total.Margin60 = addOptional(total.Margin60, *row.Margin60)
		}
	}
	if w := m.Params.WeightImmediate; w != nil && total.Margin60 != nil {
		wd := decimal.NewFromFloat(*w)
		weighted := total.Margin.Mul(wd).Add(total.Margin60.Mul(decimal.NewFromInt(1).Sub(wd)))
		total.WeightedMargin = &weighted
	}
	return total
}

func addOptional(acc *decimal.Decimal, v decimal.Decimal) *decimal.Decimal {
	if acc == nil {
		return &v
	}
	sum := acc.Add(v)
	return &sum
}
