package configs

import "strings"

// Engine selects which allocation strategy handles requests that do not
// name one explicitly. Valid values are "exact" and "heuristic". Any
// other value falls back to "exact".
type Engine struct {
	DefaultStrategy string `env:"DEFAULT_STRATEGY" envDefault:"exact"`
}

// Strategy validates and normalises the configured default strategy.
func (c Engine) Strategy() string {
	switch strings.ToLower(c.DefaultStrategy) {
	case "heuristic":
		return "heuristic"
	default:
		return "exact"
	}
}
