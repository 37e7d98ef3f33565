// Package config provides YAML-based configuration for the contract
// instrumentation pipeline.
//
// Configuration is loaded from a YAML file, filled with defaults, overridden
// by ELIXIUM_* environment variables, and validated. A Watcher can reload
// the file on change so exclusion lists and tree ceilings can be adjusted
// without a restart.
package config
