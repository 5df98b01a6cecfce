package dynfmt

import (
	"go.uber.org/zap"
)

// Option is a functional option for configuring the Engine.
type Option func(*engineConfig)

// engineConfig holds the internal configuration for an Engine.
type engineConfig struct {
	logger              *zap.Logger
	displayWidth        bool
	placeholderEstimate int
	cache               *CacheConfig
}

// defaultEngineConfig returns the default engine configuration.
func defaultEngineConfig() *engineConfig {
	return &engineConfig{
		logger:              nil,
		displayWidth:        false,
		placeholderEstimate: DefaultPlaceholderEstimate,
		cache:               nil,
	}
}

// WithLogger sets the logger for the engine.
// Default: nil (no logging)
func WithLogger(logger *zap.Logger) Option {
	return func(c *engineConfig) {
		c.logger = logger
	}
}

// WithDisplayWidth measures width and precision in terminal display cells
// instead of code points, so wide East Asian characters count as two columns.
// Default: off
func WithDisplayWidth() Option {
	return func(c *engineConfig) {
		c.displayWidth = true
	}
}

// WithPlaceholderEstimate sets the number of output bytes reserved per
// placeholder when sizing the render buffer. Non-positive values are ignored.
// Default: 16
func WithPlaceholderEstimate(n int) Option {
	return func(c *engineConfig) {
		if n > 0 {
			c.placeholderEstimate = n
		}
	}
}

// WithParseCache enables caching of parsed templates by source text.
// Default: disabled
func WithParseCache(config CacheConfig) Option {
	return func(c *engineConfig) {
		c.cache = &config
	}
}
