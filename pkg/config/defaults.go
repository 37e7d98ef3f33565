package config

import (
	"time"

	"github.com/xfumihiro/elixium-core/pkg/contract/limits"
	"github.com/xfumihiro/elixium-core/pkg/contract/parser"
	"github.com/xfumihiro/elixium-core/pkg/contract/sanitize"
)

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

// ApplyDefaults fills zero-valued fields with their defaults. It never
// overrides a value the user set.
func ApplyDefaults(cfg *Config) {
	if cfg.Sanitizer.Prefix == "" {
		cfg.Sanitizer.Prefix = sanitize.DefaultPrefix
	}
	if cfg.Sanitizer.HostNamespace == "" {
		cfg.Sanitizer.HostNamespace = sanitize.DefaultHostNamespace
	}

	if cfg.Limits.MaxSourceBytes <= 0 {
		cfg.Limits.MaxSourceBytes = parser.DefaultMaxSourceBytes
	}
	if cfg.Limits.MaxNodes <= 0 {
		cfg.Limits.MaxNodes = limits.DefaultMaxNodes
	}
	if cfg.Limits.MaxDepth <= 0 {
		cfg.Limits.MaxDepth = limits.DefaultMaxDepth
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "text"
	}

	if cfg.Metrics.Namespace == "" {
		cfg.Metrics.Namespace = "elixium"
	}
	if cfg.Metrics.Subsystem == "" {
		cfg.Metrics.Subsystem = "instrument"
	}

	if cfg.Audit.Backend == "" {
		cfg.Audit.Backend = "memory"
	}
	if cfg.Audit.Retention.Schedule == "" {
		cfg.Audit.Retention.Schedule = "0 3 * * *"
	}
	if cfg.Audit.Retention.MaxAge <= 0 {
		cfg.Audit.Retention.MaxAge = 90 * 24 * time.Hour
	}
}

// TreeLimits converts the limits section to the passes' ceiling type.
func (c *Config) TreeLimits() limits.Limits {
	return limits.Limits{MaxNodes: c.Limits.MaxNodes, MaxDepth: c.Limits.MaxDepth}
}
