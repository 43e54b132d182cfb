package platform

import (
	"fmt"

	"go.uber.org/zap"
)

// Strategy selects how DivideConquer merges its sub-results.
type Strategy int

const (
	// BottomUp merges sorted runs pairwise with a linear merge, O(N log N).
	BottomUp Strategy = iota
	// Recursive splits top-down and re-sorts every merged half, O(N log² N).
	Recursive
)

func (s Strategy) String() string {
	switch s {
	case BottomUp:
		return "bottom-up"
	case Recursive:
		return "recursive"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

type Config struct {
	// Verbose narrates processed events and merge levels. It never changes results.
	Verbose  bool
	Logger   *zap.Logger
	Strategy Strategy
}

type Option func(*Config)

func newConfig(opts ...Option) *Config {
	cfg := &Config{
		Verbose:  true,
		Logger:   zap.NewNop(),
		Strategy: BottomUp,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return cfg
}

func WithVerbose(verbose bool) Option {
	return func(c *Config) {
		c.Verbose = verbose
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

func WithStrategy(s Strategy) Option {
	return func(c *Config) {
		c.Strategy = s
	}
}
