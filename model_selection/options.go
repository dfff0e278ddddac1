package model_selection

import (
	"github.com/ostrowskaew/logreg/pkg/log"
)

// Option configures SelectModel.
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
		cfg.logger = log.GetLoggerWithName("model_selection")
	}
	return cfg
}

// WithLogger sets the logger for candidate and winner records. It is also
// handed to the optimizer.
func WithLogger(logger log.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}
