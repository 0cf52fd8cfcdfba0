package model

import (
	"math"

	"github.com/franznanni77/mkt-1/internal/core/domain"
)

// Sense is the direction of a constraint row.
type Sense int

const (
	LE Sense = iota // Coeffs . x <= RHS
	GE              // Coeffs . x >= RHS
	EQ              // Coeffs . x == RHS
)

// Row is one linear constraint over the per-campaign lead variables.
// Coeffs has one entry per campaign in catalog order. Label identifies
// the constraint for diagnostics.
type Row struct {
	Coeffs []float64
	Sense  Sense
	RHS    float64
	Label  string
}

// Model is the formal problem handed to a solver: maximize Objective . x
// over non-negative integer x subject to Rows. The objective is linear by
// construction, solvers rely on that. A model always carries the lead
// total as an equality row. Solvers must not mutate it.
type Model struct {
	Campaigns []domain.Campaign
	Params    domain.AllocationParams
	Objective []float64
	Rows      []Row
}

// rowTol is the feasibility tolerance when checking an integer
// assignment against a row, scaled by the row's RHS.
const rowTol = 1e-6

// Satisfied reports whether the integer assignment meets every row of
// the model within tolerance. Solvers re-verify their candidate
// assignments with it instead of trusting float arithmetic.
func (m Model) Satisfied(leads []int) bool {
	for _, row := range m.Rows {
		var lhs float64
		for i, c := range row.Coeffs {
			lhs += c * float64(leads[i])
		}
		tol := rowTol * (1 + math.Abs(row.RHS))
		switch row.Sense {
		case LE:
			if lhs > row.RHS+tol {
				return false
			}
		case GE:
			if lhs < row.RHS-tol {
				return false
			}
		case EQ:
			if math.Abs(lhs-row.RHS) > tol {
				return false
			}
		}
	}
	return true
}
