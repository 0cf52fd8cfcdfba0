package configs

import "time"

// Solver bounds the exact solver's search. MaxNodes caps the number of
// branch-and-bound nodes explored in one run and Timeout caps wall-clock
// time. When either budget is exhausted the solver returns the best
// feasible allocation found so far instead of a proven optimum. Zero
// disables the corresponding limit.
type Solver struct {
	// MaxNodes is the node budget per solve. Defaults to 200000.
	MaxNodes int `env:"MAX_NODES" envDefault:"200000"`
	// Timeout is the wall-clock budget per solve. Defaults to 10s.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"10s"`
}
