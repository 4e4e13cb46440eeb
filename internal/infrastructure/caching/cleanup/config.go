package cleanup

import (
	"time"

	"github.com/novamark/sitebridge-go/pkg/config"
)

// Config controls the cleanup worker cadence and reporting.
type Config struct {
	Interval time.Duration
	Verbose  bool
}

// NewConfig builds a cleanup configuration from the application config.
func NewConfig() *Config {
	return &Config{
		Interval: config.CacheCleanupInterval,
		Verbose:  config.CacheCleanupVerbose,
	}
}
