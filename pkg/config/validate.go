package config

import (
	"fmt"
	"strings"

	"github.com/robfig/cron/v3"
)

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true,
}

var validLogFormats = map[string]bool{
	"json": true, "text": true,
}

var validAuditBackends = map[string]bool{
	"memory": true, "sqlite": true,
}

// Validate checks the configuration for invalid or inconsistent values.
// Call it after ApplyDefaults.
func Validate(cfg *Config) error {
	var problems []string

	if strings.ContainsAny(cfg.Sanitizer.Prefix, " \t\n") {
		problems = append(problems, "sanitizer.prefix must not contain whitespace")
	}
	if cfg.Sanitizer.HostNamespace == "" {
		problems = append(problems, "sanitizer.host_namespace must not be empty")
	}
	for _, name := range cfg.Sanitizer.Exclusions {
		if name == "" {
			problems = append(problems, "sanitizer.exclusions must not contain empty names")
			break
		}
	}

	if cfg.Limits.MaxSourceBytes <= 0 {
		problems = append(problems, "limits.max_source_bytes must be positive")
	}
	if cfg.Limits.MaxNodes <= 0 {
		problems = append(problems, "limits.max_nodes must be positive")
	}
	if cfg.Limits.MaxDepth <= 0 {
		problems = append(problems, "limits.max_depth must be positive")
	}

	if !validLogLevels[cfg.Logging.Level] {
		problems = append(problems, fmt.Sprintf("logging.level %q is not one of debug, info, warn, error", cfg.Logging.Level))
	}
	if !validLogFormats[cfg.Logging.Format] {
		problems = append(problems, fmt.Sprintf("logging.format %q is not one of json, text", cfg.Logging.Format))
	}

	if !validAuditBackends[cfg.Audit.Backend] {
		problems = append(problems, fmt.Sprintf("audit.backend %q is not one of memory, sqlite", cfg.Audit.Backend))
	}
	if cfg.Audit.Enabled && cfg.Audit.Backend == "sqlite" && cfg.Audit.DBPath == "" {
		problems = append(problems, "audit.db_path is required with the sqlite backend")
	}
	if cfg.Audit.Retention.Enabled {
		if _, err := cron.ParseStandard(cfg.Audit.Retention.Schedule); err != nil {
			problems = append(problems, fmt.Sprintf("audit.retention.schedule %q is not a valid cron expression", cfg.Audit.Retention.Schedule))
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration:\n  - %s", strings.Join(problems, "\n  - "))
	}
	return nil
}
