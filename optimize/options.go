package optimize

import (
	"github.com/ostrowskaew/logreg/pkg/log"
)

// Option configures an optimizer run.
type Option func(*config)

type config struct {
	logger log.Logger
}

func newConfig(opts []Option) *config {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = log.GetLoggerWithName("optimize")
	}
	return cfg
}

// WithLogger sets the logger receiving per-epoch cost records.
func WithLogger(logger log.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}
