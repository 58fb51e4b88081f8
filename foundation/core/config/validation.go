// File: validation.go
// Title: Configuration Validation
// Description: Checks configuration values against declarative rules: presence,
//              type and a set of allowed values.
// Author: hellerve
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package config

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	dlerror "github.com/hellerve/dandelion/foundation/core/error"
)

// ValidationRule defines what a configuration value must look like
type ValidationRule struct {
	Required bool
	// Type is one of "string", "int", "bool", "float", "duration" or empty
	Type string
	// OneOf lists the allowed values, compared case-insensitively as strings
	OneOf []string
}

// ValidationRules maps dot-notation keys to their rules
type ValidationRules map[string]ValidationRule

// Validate checks every rule and reports all violations in one error with
// CodeInvalidConfig. Environment overrides count as present and are
// checked against OneOf only.
func (c *Config) Validate(rules ValidationRules) error {
	var problems []string
	for _, key := range slices.Sorted(maps.Keys(rules)) {
		if err := c.validateField(key, rules[key]); err != nil {
			problems = append(problems, err.Error())
		}
	}
	if len(problems) == 0 {
		return nil
	}
	return dlerror.New("invalid configuration: "+strings.Join(problems, "; ")).
		WithCode(dlerror.CodeInvalidConfig).
		WithOperation("config.Validate").
		WithDetail("problems", problems)
}

func (c *Config) validateField(key string, rule ValidationRule) error {
	env, fromEnv := c.lookupEnv(key)
	value, present := c.get(key)
	if fromEnv {
		value, present = env, true
	}

	if !present {
		if rule.Required {
			return fmt.Errorf("required field '%s' is missing", key)
		}
		return nil
	}

	if !fromEnv {
		if err := validateType(key, value, rule.Type); err != nil {
			return err
		}
	}

	if len(rule.OneOf) > 0 {
		s := fmt.Sprint(value)
		if !slices.ContainsFunc(rule.OneOf, func(allowed string) bool { return strings.EqualFold(allowed, s) }) {
			return fmt.Errorf("field '%s' must be one of %s, got %q", key, strings.Join(rule.OneOf, ", "), s)
		}
	}
	return nil
}

func validateType(key string, value any, want string) error {
	ok := true
	switch want {
	case "":
	case "string":
		_, ok = value.(string)
	case "int":
		switch v := value.(type) {
		case int, int64:
		case float64:
			ok = v == float64(int64(v))
		default:
			ok = false
		}
	case "float":
		switch value.(type) {
		case float64, int, int64:
		default:
			ok = false
		}
	case "bool":
		switch v := value.(type) {
		case bool:
		case string:
			ok = v == "true" || v == "false"
		default:
			ok = false
		}
	case "duration":
		s, isString := value.(string)
		if isString {
			_, err := time.ParseDuration(s)
			ok = err == nil
		} else {
			ok = false
		}
	default:
		return fmt.Errorf("field '%s' has unknown rule type %q", key, want)
	}
	if !ok {
		return fmt.Errorf("field '%s' must be a %s, got %T", key, want, value)
	}
	return nil
}
