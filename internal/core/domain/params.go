package domain

import "math"

// ShareVariant selects how the minimum-share constraint applies inside a
// multi-campaign category. The two variants are incompatible historical
// readings of the same rule and are never merged; the active one is
// echoed in every result.
type ShareVariant string

const (
	// ShareStrong requires every campaign in a multi-campaign category to
	// receive at least MinShare of that category's leads.
	ShareStrong ShareVariant = "strong"

	// ShareWeak requires only the least profitable campaign of each
	// multi-campaign category to receive at least MinShare of its leads.
	ShareWeak ShareVariant = "weak"
)

// AllocationParams is the constraint configuration for one run. BudgetMax
// nil means the budget ceiling is absent entirely, there is no big-value
// sentinel. WeightImmediate nil leaves the 60-day revenue blend off.
type AllocationParams struct {
	TotalLeads      int          `json:"total_leads"`
	CorpoPercent    float64      `json:"corpo_percent"`
	MinShare        float64      `json:"min_share"`
	BudgetMax       *float64     `json:"budget_max,omitempty"`
	WeightImmediate *float64     `json:"weight_immediate,omitempty"`
	ShareVariant    ShareVariant `json:"share_variant,omitempty"`
}

// Variant returns the active share variant. An unset variant defaults to
// ShareStrong.
func (p AllocationParams) Variant() ShareVariant {
	if p.ShareVariant == "" {
		return ShareStrong
	}
	return p.ShareVariant
}

// Validate checks parameter ranges. It returns a ValidationError naming
// the offending field, or nil.
func (p AllocationParams) Validate() error {
	if p.TotalLeads <= 0 {
		return NewValidationError("total_leads", "must be a positive integer")
	}
	if !validFraction(p.CorpoPercent) {
		return NewValidationError("corpo_percent", "must be in [0,1]")
	}
	if !validFraction(p.MinShare) {
		return NewValidationError("min_share", "must be in [0,1]")
	}
	if p.BudgetMax != nil && !validMoney(*p.BudgetMax) {
		return NewValidationError("budget_max", "must be a finite number >= 0")
	}
	if p.WeightImmediate != nil && !validFraction(*p.WeightImmediate) {
		return NewValidationError("weight_immediate", "must be in [0,1]")
	}
	switch p.Variant() {
	case ShareStrong, ShareWeak:
	default:
		return NewValidationError("share_variant", `must be "strong" or "weak"`)
	}
	return nil
}

func validFraction(v float64) bool {
	return !math.IsNaN(v) && v >= 0 && v <= 1
}
