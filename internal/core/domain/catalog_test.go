package domain

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCatalogNormalizes(t *testing.T) {
	records := []Campaign{
		{Name: "  Laser Promo ", Category: " LASER ", CostPerLead: 10, RevenuePerLead: 30},
		{Name: "Corpo Deal", Category: "Corpo", CostPerLead: 15, RevenuePerLead: 50},
	}

	catalog, warnings, err := NewCatalog(records)
	require.NoError(t, err)
	assert.Empty(t, warnings)

	require.Equal(t, 2, catalog.Len())
	assert.Equal(t, "Laser Promo", catalog.Campaign(0).Name)
	assert.Equal(t, CategoryLaser, catalog.Campaign(0).Category)
	assert.Equal(t, CategoryCorpo, catalog.Campaign(1).Category)
	assert.Equal(t, []string{"laser", "corpo"}, catalog.Categories())
	assert.Equal(t, []int{1}, catalog.Indices(CategoryCorpo))
	assert.True(t, catalog.HasCategory(CategoryLaser))
	assert.False(t, catalog.HasCategory("premium"))

	// the input slice stays untouched
	assert.Equal(t, "  Laser Promo ", records[0].Name)
}

func TestNewCatalogRejectsBadRecords(t *testing.T) {
	neg := -1.0
	valid := Campaign{Name: "ok", Category: "laser", CostPerLead: 10, RevenuePerLead: 30}

	tests := []struct {
		name    string
		records []Campaign
		field   string
	}{
		{
			name:    "too few campaigns",
			records: []Campaign{valid},
			field:   "campaigns",
		},
		{
			name:    "empty name",
			records: []Campaign{valid, {Name: "   ", Category: "corpo", CostPerLead: 1, RevenuePerLead: 2}},
			field:   "campaigns[1].name",
		},
		{
			name:    "empty category",
			records: []Campaign{valid, {Name: "x", Category: "", CostPerLead: 1, RevenuePerLead: 2}},
			field:   "campaigns[1].category",
		},
		{
			name:    "negative cost",
			records: []Campaign{valid, {Name: "x", Category: "corpo", CostPerLead: -5, RevenuePerLead: 2}},
			field:   "campaigns[1].cost_per_lead",
		},
		{
			name:    "NaN revenue",
			records: []Campaign{valid, {Name: "x", Category: "corpo", CostPerLead: 1, RevenuePerLead: math.NaN()}},
			field:   "campaigns[1].revenue_per_lead",
		},
		{
			name:    "negative delayed revenue",
			records: []Campaign{valid, {Name: "x", Category: "corpo", CostPerLead: 1, RevenuePerLead: 2, RevenuePerLead60d: &neg}},
			field:   "campaigns[1].revenue_per_lead_60d",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := NewCatalog(tt.records)
			var ve *ValidationError
			require.True(t, errors.As(err, &ve), "want ValidationError, got %v", err)
			assert.Equal(t, tt.field, ve.Field)
		})
	}
}

func TestNewCatalogWarnsOnDuplicates(t *testing.T) {
	_, warnings, err := NewCatalog([]Campaign{
		{Name: "twice", Category: "laser", CostPerLead: 1, RevenuePerLead: 2},
		{Name: "twice", Category: "corpo", CostPerLead: 1, RevenuePerLead: 2},
	})
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "twice")
}
