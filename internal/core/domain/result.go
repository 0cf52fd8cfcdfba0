package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CampaignAllocation is one result row: the leads assigned to a campaign
// and the money totals that follow from them. The 60-day columns are set
// only when the delayed-revenue blend is active for the run.
type CampaignAllocation struct {
	Name          string           `json:"name"`
	Category      string           `json:"category"`
	LeadsAssigned int              `json:"leads_assigned"`
	Cost          decimal.Decimal  `json:"cost_total"`
	Revenue       decimal.Decimal  `json:"revenue_total"`
	Margin        decimal.Decimal  `json:"margin_total"`
	Revenue60     *decimal.Decimal `json:"revenue_total_60d,omitempty"`
	Margin60      *decimal.Decimal `json:"margin_total_60d,omitempty"`
}

// CategoryTotal aggregates the rows of one category.
type CategoryTotal struct {
	Category  string           `json:"category"`
	Leads     int              `json:"leads"`
	Cost      decimal.Decimal  `json:"cost_total"`
	Revenue   decimal.Decimal  `json:"revenue_total"`
	Margin    decimal.Decimal  `json:"margin_total"`
	Revenue60 *decimal.Decimal `json:"revenue_total_60d,omitempty"`
	Margin60  *decimal.Decimal `json:"margin_total_60d,omitempty"`
}

// GrandTotal aggregates the whole assignment. WeightedMargin is present
// only when the delayed-revenue blend is active.
type GrandTotal struct {
	Leads          int              `json:"leads"`
	Cost           decimal.Decimal  `json:"cost_total"`
	Revenue        decimal.Decimal  `json:"revenue_total"`
	Margin         decimal.Decimal  `json:"margin_total"`
	Revenue60      *decimal.Decimal `json:"revenue_total_60d,omitempty"`
	Margin60       *decimal.Decimal `json:"margin_total_60d,omitempty"`
	WeightedMargin *decimal.Decimal `json:"weighted_margin_total,omitempty"`
}

// AllocationResult is the full outcome of one optimization run. Rows keep
// catalog order and are empty unless the status carries an assignment.
// For any feasible status the row leads sum to exactly the requested
// total.
type AllocationResult struct {
	RunID          string               `json:"run_id"`
	Status         Status               `json:"status"`
	ShareVariant   ShareVariant         `json:"share_variant"`
	Rows           []CampaignAllocation `json:"rows,omitempty"`
	CategoryTotals []CategoryTotal      `json:"category_totals,omitempty"`
	Totals         GrandTotal           `json:"totals"`
	Objective      float64              `json:"objective"`
	Proven         bool                 `json:"proven"`
	Nodes          int                  `json:"nodes"`
	Elapsed        time.Duration        `json:"elapsed_ns"`
}
