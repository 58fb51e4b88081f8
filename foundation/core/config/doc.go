// File: doc.go
// Title: Configuration Management Package Documentation
// Description: Package config loads TOML, YAML and JSON configuration files
//              into an order-preserving document with dot-notation access,
//              environment overrides, defaults, discovery and validation.
// Author: hellerve
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

/*
Package config provides configuration management for dandelion.

Key Features:
  - TOML, YAML and JSON files, detected by extension (TOML otherwise)
  - Key order of the file is kept, so Encode writes the document back in the
    same order
  - Dot-notation access: cfg.GetString("log.level")
  - Environment overrides: with prefix DANDELION, DANDELION_LOG_LEVEL
    overrides log.level
  - Defaults that never overwrite values from the file
  - Discovery of dandelion.{toml,yaml,yml,json} in standard locations
  - Declarative validation with structured errors

# Loading

	cfg, err := config.LoadWithOptions("dandelion.toml", config.LoadOptions{
		EnvPrefix: "DANDELION",
		Defaults: map[string]any{
			"log.level":     "info",
			"output.format": "json",
		},
	})

# Validation

	err := cfg.Validate(config.ValidationRules{
		"log.level":     {OneOf: []string{"trace", "debug", "info", "warn", "error"}},
		"output.color":  {Type: "bool"},
	})

Errors carry codes from the foundation error package: CodeMissingConfig when
no file exists, CodeInvalidConfig for parse or validation failures and
CodeConfigError for I/O problems.
*/
package config
