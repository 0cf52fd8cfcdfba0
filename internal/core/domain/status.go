package domain

// Status classifies the outcome of one solve. Infeasibility is a normal
// domain outcome, not an error: callers are expected to relax parameters
// and run again.
type Status string

const (
	// StatusOptimal is a proven optimal integer assignment.
	StatusOptimal Status = "optimal"

	// StatusFeasible is the best assignment found before the time or node
	// budget ran out. It satisfies every constraint but is not proven
	// optimal.
	StatusFeasible Status = "feasible"

	// StatusInfeasible means no integer assignment satisfies the
	// constraints.
	StatusInfeasible Status = "infeasible"

	// StatusUnbounded means the objective can grow without limit.
	StatusUnbounded Status = "unbounded"

	// StatusUndetermined covers solver failures and searches that ended
	// without a feasible point and without an infeasibility proof.
	StatusUndetermined Status = "undetermined"
)

// Feasible reports whether the status carries a usable assignment.
func (s Status) Feasible() bool {
	return s == StatusOptimal || s == StatusFeasible
}
