package domain

import (
	"fmt"
	"math"
	"strings"
)

// Catalog is the normalized, ordered campaign list one optimization run
// operates on. Campaigns keep their input order; every result table is
// reported in that order. Construct it with NewCatalog.
type Catalog struct {
	campaigns []Campaign
}

// NewCatalog normalizes raw campaign records into a catalog. Names are
// trimmed, categories trimmed and lowercased. Records with empty names or
// categories, or with negative or non-finite economics, are rejected as
// configuration errors. Name uniqueness is assumed by downstream grouping
// but not enforced; duplicates produce warnings instead of errors.
func NewCatalog(records []Campaign) (Catalog, []string, error) {
	if len(records) < 2 {
		return Catalog{}, nil, NewValidationError("campaigns", "at least two campaigns are required")
	}
	campaigns := make([]Campaign, 0, len(records))
	var warnings []string
	seen := make(map[string]bool, len(records))
	for i, rec := range records {
		c := rec
		c.Name = strings.TrimSpace(c.Name)
		c.Category = strings.ToLower(strings.TrimSpace(c.Category))
		if c.Name == "" {
			return Catalog{}, nil, NewValidationError(recordField(i, "name"), "must not be empty")
		}
		if c.Category == "" {
			return Catalog{}, nil, NewValidationError(recordField(i, "category"), "must not be empty")
		}
		if !validMoney(c.CostPerLead) {
			return Catalog{}, nil, NewValidationError(recordField(i, "cost_per_lead"), "must be a finite number >= 0")
		}
		if !validMoney(c.RevenuePerLead) {
			return Catalog{}, nil, NewValidationError(recordField(i, "revenue_per_lead"), "must be a finite number >= 0")
		}
		if c.RevenuePerLead60d != nil && !validMoney(*c.RevenuePerLead60d) {
			return Catalog{}, nil, NewValidationError(recordField(i, "revenue_per_lead_60d"), "must be a finite number >= 0")
		}
		if seen[c.Name] {
			warnings = append(warnings, fmt.Sprintf("duplicate campaign name %q", c.Name))
		}
		seen[c.Name] = true
		campaigns = append(campaigns, c)
	}
	return Catalog{campaigns: campaigns}, warnings, nil
}

func recordField(i int, name string) string {
	return fmt.Sprintf("campaigns[%d].%s", i, name)
}

func validMoney(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}

// Len returns the number of campaigns.
func (c Catalog) Len() int { return len(c.campaigns) }

// Campaigns returns the campaigns in input order. Callers must not modify
// the returned slice.
func (c Catalog) Campaigns() []Campaign { return c.campaigns }

// Campaign returns the campaign at index i.
func (c Catalog) Campaign(i int) Campaign { return c.campaigns[i] }

// Categories returns the distinct categories in first-appearance order.
func (c Catalog) Categories() []string {
	var out []string
	seen := make(map[string]bool)
	for _, m := range c.campaigns {
		if !seen[m.Category] {
			seen[m.Category] = true
			out = append(out, m.Category)
		}
	}
	return out
}

// Indices returns the positions of all campaigns in the given category.
func (c Catalog) Indices(category string) []int {
	var out []int
	for i, m := range c.campaigns {
		if m.Category == category {
			out = append(out, i)
		}
	}
	return out
}

// HasCategory reports whether any campaign belongs to the given category.
func (c Catalog) HasCategory(category string) bool {
	for _, m := range c.campaigns {
		if m.Category == category {
			return true
		}
	}
	return false
}
