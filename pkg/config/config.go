package config

import "time"

// Config is the root configuration for the contract instrumentation
// pipeline.
type Config struct {
	Sanitizer SanitizerConfig `yaml:"sanitizer"`
	Evaluator EvaluatorConfig `yaml:"evaluator"`
	Limits    LimitsConfig    `yaml:"limits"`
	Logging   LoggingConfig   `yaml:"logging"`
	Metrics   MetricsConfig   `yaml:"metrics"`
	Audit     AuditConfig     `yaml:"audit"`
}

// SanitizerConfig controls the identifier-sanitization pass.
type SanitizerConfig struct {
	// Prefix is prepended to every renamed identifier.
	Prefix string `yaml:"prefix"`

	// HostNamespace is the reserved identifier root for the runtime API.
	// Member accesses rooted at it are never renamed.
	HostNamespace string `yaml:"host_namespace"`

	// Exclusions are identifier names exempt from renaming, in addition to
	// the built-in contract lifecycle names.
	Exclusions []string `yaml:"exclusions"`
}

// EvaluatorConfig controls the gamma cost evaluator.
type EvaluatorConfig struct {
	// StrictKinds escalates unhandled node kinds from a priced-at-zero
	// diagnostic to a hard contract rejection. Hardened deployments should
	// enable this: an unpriced computation is free computation.
	StrictKinds bool `yaml:"strict_kinds"`
}

// LimitsConfig bounds untrusted contract input.
type LimitsConfig struct {
	// MaxSourceBytes caps the size of a single contract document.
	MaxSourceBytes int64 `yaml:"max_source_bytes"`

	// MaxNodes caps the total node count of a contract tree.
	MaxNodes int `yaml:"max_nodes"`

	// MaxDepth caps the nesting depth of a contract tree.
	MaxDepth int `yaml:"max_depth"`
}

// LoggingConfig controls structured logging output.
type LoggingConfig struct {
	// Level is the minimum log level ("debug", "info", "warn", "error").
	Level string `yaml:"level"`

	// Format is the output format ("json", "text").
	Format string `yaml:"format"`

	// AddSource includes file and line number in logs.
	AddSource bool `yaml:"add_source"`
}

// MetricsConfig controls Prometheus metrics.
type MetricsConfig struct {
	// Enabled toggles metrics collection.
	Enabled bool `yaml:"enabled"`

	// Namespace is the metric name prefix (default: "elixium").
	Namespace string `yaml:"namespace"`

	// Subsystem is the metric subsystem label (default: "instrument").
	Subsystem string `yaml:"subsystem"`
}

// AuditConfig controls the instrumentation audit trail.
type AuditConfig struct {
	// Enabled toggles audit recording.
	Enabled bool `yaml:"enabled"`

	// Backend selects the store: "memory" or "sqlite".
	Backend string `yaml:"backend"`

	// DBPath is the sqlite database path (sqlite backend only).
	DBPath string `yaml:"db_path"`

	Retention RetentionConfig `yaml:"retention"`
}

// RetentionConfig controls pruning of old audit records.
type RetentionConfig struct {
	// Enabled toggles scheduled pruning.
	Enabled bool `yaml:"enabled"`

	// Schedule is a cron expression for pruning runs (default: daily at 3
	// AM).
	Schedule string `yaml:"schedule"`

	// MaxAge is how long records are kept.
	MaxAge time.Duration `yaml:"max_age"`
}
