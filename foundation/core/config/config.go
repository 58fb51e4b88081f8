// File: config.go
// Title: Core Configuration Management Implementation
// Description: Implements the Config type: loading TOML, YAML or JSON files
//              into an ordered Dict, dot-notation access with environment
//              variable overrides, defaults and runtime updates.
// Author: hellerve
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	dlerror "github.com/hellerve/dandelion/foundation/core/error"
	"github.com/hellerve/dandelion/foundation/utils/mapx"
)

// Config is a thread-safe view of a configuration document. Keys keep the
// order they have in the file.
type Config struct {
	mu        sync.RWMutex
	data      *mapx.Dict[string, any]
	filePath  string
	format    mapx.Format
	envPrefix string
}

// LoadOptions defines options for loading configuration
type LoadOptions struct {
	// Format of the file; FormatUnknown detects it from the extension and
	// falls back to TOML
	Format mapx.Format
	// EnvPrefix makes PREFIX_SECTION_KEY override section.key
	EnvPrefix string
	// Defaults maps dot-notation keys to values used when the file has none
	Defaults map[string]any
}

// New creates an empty configuration
func New(envPrefix string) *Config {
	return &Config{
		data:      mapx.New[string, any](),
		format:    mapx.FormatTOML,
		envPrefix: envPrefix,
	}
}

// Load loads configuration from a file with default options
func Load(filePath string) (*Config, error) {
	return LoadWithOptions(filePath, LoadOptions{})
}

// LoadWithOptions loads configuration from a file with custom options
func LoadWithOptions(filePath string, options LoadOptions) (*Config, error) {
	const op = "config.LoadWithOptions"

	if strings.TrimSpace(filePath) == "" {
		return nil, dlerror.New("config file path cannot be empty").
			WithCode(dlerror.CodeMissingConfig).
			WithOperation(op)
	}

	content, err := os.ReadFile(filePath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, dlerror.Newf("config file not found: %s", filePath).
			WithCode(dlerror.CodeMissingConfig).
			WithOperation(op).
			WithDetail("filePath", filePath)
	}
	if err != nil {
		return nil, dlerror.Wrap(err, "failed to read config file").
			WithCode(dlerror.CodeConfigError).
			WithOperation(op).
			WithDetail("filePath", filePath)
	}

	format := options.Format
	if format == mapx.FormatUnknown {
		format = mapx.FormatFromPath(filePath)
	}
	if format == mapx.FormatUnknown {
		format = mapx.FormatTOML
	}

	cfg, err := parse(content, format, options)
	if err != nil {
		return nil, dlerror.Wrap(err, "failed to parse config file").
			WithCode(dlerror.CodeInvalidConfig).
			WithSeverity(dlerror.SeverityHigh).
			WithOperation(op).
			WithDetail("filePath", filePath)
	}
	cfg.filePath = filePath
	return cfg, nil
}

// LoadFromString loads configuration from a string. FormatUnknown means TOML.
func LoadFromString(content string, format mapx.Format) (*Config, error) {
	if format == mapx.FormatUnknown {
		format = mapx.FormatTOML
	}
	cfg, err := parse([]byte(content), format, LoadOptions{})
	if err != nil {
		return nil, dlerror.Wrap(err, "failed to parse config from string").
			WithCode(dlerror.CodeInvalidConfig).
			WithSeverity(dlerror.SeverityHigh).
			WithOperation("config.LoadFromString")
	}
	return cfg, nil
}

func parse(content []byte, format mapx.Format, options LoadOptions) (*Config, error) {
	data, err := mapx.Decode(content, format)
	if err != nil {
		return nil, err
	}

	cfg := &Config{data: data, format: format, envPrefix: options.EnvPrefix}
	for _, key := range slices.Sorted(maps.Keys(options.Defaults)) {
		cfg.setPath(key, options.Defaults[key], false)
	}
	return cfg, nil
}

// GetString returns a string value. An environment override wins.
func (c *Config) GetString(key string, defaultValue ...string) string {
	if env, ok := c.lookupEnv(key); ok {
		return env
	}
	value, ok := c.get(key)
	if !ok || value == nil {
		return first(defaultValue, "")
	}
	switch v := value.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// GetInt returns an integer value, or the default if the value is missing or
// not a whole number
func (c *Config) GetInt(key string, defaultValue ...int) int {
	if env, ok := c.lookupEnv(key); ok {
		if n, err := strconv.Atoi(env); err == nil {
			return n
		}
	}
	value, _ := c.get(key)
	switch v := value.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case uint64:
		return int(v)
	case float64:
		if v == float64(int64(v)) {
			return int(v)
		}
	case string:
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return first(defaultValue, 0)
}

// GetBool returns a boolean value
func (c *Config) GetBool(key string, defaultValue ...bool) bool {
	if env, ok := c.lookupEnv(key); ok {
		if b, err := strconv.ParseBool(env); err == nil {
			return b
		}
	}
	value, _ := c.get(key)
	switch v := value.(type) {
	case bool:
		return v
	case string:
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return first(defaultValue, false)
}

// GetFloat returns a float value
func (c *Config) GetFloat(key string, defaultValue ...float64) float64 {
	if env, ok := c.lookupEnv(key); ok {
		if f, err := strconv.ParseFloat(env, 64); err == nil {
			return f
		}
	}
	value, _ := c.get(key)
	switch v := value.(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return first(defaultValue, 0)
}

// GetDuration returns a duration value written as "30s" or in nanoseconds
func (c *Config) GetDuration(key string, defaultValue ...time.Duration) time.Duration {
	if env, ok := c.lookupEnv(key); ok {
		if d, err := time.ParseDuration(env); err == nil {
			return d
		}
	}
	value, _ := c.get(key)
	switch v := value.(type) {
	case string:
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	case time.Duration:
		return v
	case int:
		return time.Duration(v)
	case int64:
		return time.Duration(v)
	}
	return first(defaultValue, 0)
}

// GetStringSlice returns a list value; a single string becomes a one-element
// list
func (c *Config) GetStringSlice(key string, defaultValue ...[]string) []string {
	value, _ := c.get(key)
	switch v := value.(type) {
	case []string:
		return v
	case []any:
		out := make([]string, len(v))
		for i, item := range v {
			out[i] = fmt.Sprint(item)
		}
		return out
	case string:
		return []string{v}
	}
	return first(defaultValue, nil)
}

// Has reports whether key is present in the document
func (c *Config) Has(key string) bool {
	_, ok := c.get(key)
	return ok
}

// Set stores value under a dot-notation key, creating sections as needed.
// The change is not persisted.
func (c *Config) Set(key string, value any) {
	c.setPath(key, value, true)
}

// SetDefault stores value under key unless the key is already present
func (c *Config) SetDefault(key string, value any) {
	c.setPath(key, value, false)
}

// Keys returns the top-level keys in document order
func (c *Config) Keys() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.data.Keys()
}

// All returns a copy of the top-level document
func (c *Config) All() *mapx.Dict[string, any] {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.data.Clone()
}

// Encode renders the configuration in the given format, keeping key order
func (c *Config) Encode(format mapx.Format) ([]byte, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return mapx.Encode(c.data, format)
}

// FilePath returns the path the configuration was loaded from
func (c *Config) FilePath() string {
	return c.filePath
}

// Format returns the format of the loaded document
func (c *Config) Format() mapx.Format {
	return c.format
}

// String provides a short description of the configuration
func (c *Config) String() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	parts := []string{"Config{format: " + c.format.String()}
	if c.filePath != "" {
		parts = append(parts, "path: "+c.filePath)
	}
	if c.envPrefix != "" {
		parts = append(parts, "envPrefix: "+c.envPrefix)
	}
	parts = append(parts, fmt.Sprintf("keys: %d}", c.data.Len()))
	return strings.Join(parts, ", ")
}

func (c *Config) get(key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var current any = c.data
	for _, k := range strings.Split(key, ".") {
		switch section := current.(type) {
		case *mapx.Dict[string, any]:
			v, ok := section.Get(k)
			if !ok {
				return nil, false
			}
			current = v
		case map[string]any:
			v, ok := section[k]
			if !ok {
				return nil, false
			}
			current = v
		default:
			return nil, false
		}
	}
	return current, true
}

func (c *Config) setPath(key string, value any, overwrite bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	keys := strings.Split(key, ".")
	current := c.data
	for _, k := range keys[:len(keys)-1] {
		switch next := current.Value(k).(type) {
		case *mapx.Dict[string, any]:
			current = next
		case map[string]any:
			section := sortedDict(next)
			current.Set(k, section)
			current = section
		default:
			if !overwrite && current.Has(k) {
				return
			}
			section := mapx.New[string, any]()
			current.Set(k, section)
			current = section
		}
	}

	last := keys[len(keys)-1]
	if overwrite {
		current.Set(last, value)
	} else {
		current.SetDefault(last, value)
	}
}

// lookupEnv reads the override for key: "output.format" with prefix
// "DANDELION" is DANDELION_OUTPUT_FORMAT
func (c *Config) lookupEnv(key string) (string, bool) {
	envKey := strings.ToUpper(strings.NewReplacer(".", "_", "-", "_").Replace(key))
	if c.envPrefix != "" {
		envKey = strings.ToUpper(c.envPrefix) + "_" + envKey
	}
	v, ok := os.LookupEnv(envKey)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// sortedDict turns a decoded section into a Dict; its keys come from a native
// map, so they are sorted
func sortedDict(m map[string]any) *mapx.Dict[string, any] {
	d := mapx.New[string, any]()
	for _, k := range slices.Sorted(maps.Keys(m)) {
		d.Set(k, m[k])
	}
	return d
}

func first[T any](values []T, fallback T) T {
	if len(values) > 0 {
		return values[0]
	}
	return fallback
}
