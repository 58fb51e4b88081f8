// File: discovery.go
// Title: Configuration File Discovery
// Description: Finds a configuration file by searching a list of directories
//              for known base names and extensions.
// Author: hellerve
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package config

import (
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	dlerror "github.com/hellerve/dandelion/foundation/core/error"
	"github.com/hellerve/dandelion/foundation/utils/filex"
)

// DiscoveryOptions defines where Discover looks for a configuration file
type DiscoveryOptions struct {
	Paths      []string // directories, searched in order
	Filenames  []string // base names without extension
	Extensions []string // extensions including the dot
	EnvPrefix  string
	Defaults   map[string]any
	Required   bool // fail when nothing is found
}

// DefaultDiscoveryOptions searches the working directory and the user config
// directory for dandelion.{toml,yaml,yml,json}
func DefaultDiscoveryOptions() DiscoveryOptions {
	paths := []string{"."}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "dandelion"))
	}
	return DiscoveryOptions{
		Paths:      paths,
		Filenames:  []string{"dandelion"},
		Extensions: []string{".toml", ".yaml", ".yml", ".json"},
		EnvPrefix:  "DANDELION",
	}
}

// Discover loads the first configuration file found. When none exists and
// the options do not require one, it returns an empty Config carrying the
// defaults.
func Discover(options DiscoveryOptions) (*Config, error) {
	path, err := FindConfigFile(options)
	if err == nil {
		return LoadWithOptions(path, LoadOptions{EnvPrefix: options.EnvPrefix, Defaults: options.Defaults})
	}
	if options.Required {
		return nil, err
	}

	cfg := New(options.EnvPrefix)
	for _, key := range slices.Sorted(maps.Keys(options.Defaults)) {
		cfg.SetDefault(key, options.Defaults[key])
	}
	return cfg, nil
}

// FindConfigFile returns the first candidate path that is a regular file
func FindConfigFile(options DiscoveryOptions) (string, error) {
	candidates := ListPossibleConfigFiles(options)
	if path, ok := filex.FirstFile(candidates...); ok {
		return path, nil
	}
	return "", dlerror.New("no configuration file found in: " + strings.Join(candidates, ", ")).
		WithCode(dlerror.CodeMissingConfig).
		WithOperation("config.FindConfigFile").
		WithDetail("searchPaths", candidates)
}

// ListPossibleConfigFiles returns every path Discover would try, in order
func ListPossibleConfigFiles(options DiscoveryOptions) []string {
	var paths []string
	for _, dir := range options.Paths {
		for _, name := range options.Filenames {
			for _, ext := range options.Extensions {
				paths = append(paths, filepath.Join(dir, name+ext))
			}
		}
	}
	return paths
}
