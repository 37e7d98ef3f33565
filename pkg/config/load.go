package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// LoadConfig loads configuration from a YAML file at the specified path,
// applies default values, and validates the result.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration file %q: %w", path, err)
	}

	ApplyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &cfg, nil
}

// LoadConfigWithEnvOverrides loads configuration from a YAML file and applies
// environment variable overrides. Variables follow the naming convention
// ELIXIUM_SECTION_FIELD (e.g. ELIXIUM_SANITIZER_PREFIX) and always take
// precedence over file-based configuration.
func LoadConfigWithEnvOverrides(path string) (*Config, error) {
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed after environment overrides: %w", err)
	}
	return cfg, nil
}

// applyEnvOverrides applies ELIXIUM_SECTION_FIELD environment overrides.
func applyEnvOverrides(cfg *Config) {
	if val := os.Getenv("ELIXIUM_SANITIZER_PREFIX"); val != "" {
		cfg.Sanitizer.Prefix = val
	}
	if val := os.Getenv("ELIXIUM_SANITIZER_HOST_NAMESPACE"); val != "" {
		cfg.Sanitizer.HostNamespace = val
	}
	if val := os.Getenv("ELIXIUM_EVALUATOR_STRICT_KINDS"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Evaluator.StrictKinds = b
		}
	}
	if val := os.Getenv("ELIXIUM_LIMITS_MAX_SOURCE_BYTES"); val != "" {
		if i, err := strconv.ParseInt(val, 10, 64); err == nil {
			cfg.Limits.MaxSourceBytes = i
		}
	}
	if val := os.Getenv("ELIXIUM_LIMITS_MAX_NODES"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			cfg.Limits.MaxNodes = i
		}
	}
	if val := os.Getenv("ELIXIUM_LIMITS_MAX_DEPTH"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			cfg.Limits.MaxDepth = i
		}
	}
	if val := os.Getenv("ELIXIUM_LOGGING_LEVEL"); val != "" {
		cfg.Logging.Level = val
	}
	if val := os.Getenv("ELIXIUM_LOGGING_FORMAT"); val != "" {
		cfg.Logging.Format = val
	}
	if val := os.Getenv("ELIXIUM_METRICS_ENABLED"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Metrics.Enabled = b
		}
	}
	if val := os.Getenv("ELIXIUM_AUDIT_ENABLED"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Audit.Enabled = b
		}
	}
	if val := os.Getenv("ELIXIUM_AUDIT_BACKEND"); val != "" {
		cfg.Audit.Backend = val
	}
	if val := os.Getenv("ELIXIUM_AUDIT_DB_PATH"); val != "" {
		cfg.Audit.DBPath = val
	}
	if val := os.Getenv("ELIXIUM_AUDIT_RETENTION_MAX_AGE"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.Audit.Retention.MaxAge = d
		}
	}
}
