package domain

// Campaign categories referenced by name in share constraints. Categories
// are free-form strings; these are the two the corpo floor knows about.
const (
	CategoryLaser = "laser"
	CategoryCorpo = "corpo"
)

// Campaign is the unit of allocation. Unit economics are per lead.
// Net profit figures are derived on demand and never stored so they
// cannot drift from their inputs.
type Campaign struct {
	Name              string   `json:"name"`
	Category          string   `json:"category"`
	CostPerLead       float64  `json:"cost_per_lead"`
	RevenuePerLead    float64  `json:"revenue_per_lead"`
	RevenuePerLead60d *float64 `json:"revenue_per_lead_60d,omitempty"` // delayed revenue, optional
}

// NetProfit returns the immediate net profit of one lead.
func (c Campaign) NetProfit() float64 {
	return c.RevenuePerLead - c.CostPerLead
}

// NetProfit60 returns the 60-day net profit of one lead, or 0 when no
// delayed revenue figure is present.
func (c Campaign) NetProfit60() float64 {
	if c.RevenuePerLead60d == nil {
		return 0
	}
	return *c.RevenuePerLead60d - c.CostPerLead
}

// WeightedNetProfit blends immediate and 60-day profit. The weight is the
// fraction in [0,1] given to the immediate figure.
func (c Campaign) WeightedNetProfit(weightImmediate float64) float64 {
	return weightImmediate*c.NetProfit() + (1-weightImmediate)*c.NetProfit60()
}
