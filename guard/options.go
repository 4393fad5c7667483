package guard

import "go.uber.org/zap"

// Option configures a guard at construction.
type Option func(*Guard)

// WithLogger sets the logger that receives the guard's debug entries.
// A nil logger is ignored.
func WithLogger(logger *zap.Logger) Option {
	return func(g *Guard) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithName attaches a human readable name to the guard's log entries.
func WithName(name string) Option {
	return func(g *Guard) {
		g.name = name
	}
}
