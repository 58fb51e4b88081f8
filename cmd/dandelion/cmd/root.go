// File: root.go
// Title: dandelion Root Command
// Description: Root cobra command. Loads the configuration, validates it and
//              builds the logger shared by all subcommands.
// Author: hellerve
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/hellerve/dandelion/foundation/core/config"
	"github.com/hellerve/dandelion/foundation/core/log"
)

const envPrefix = "DANDELION"

// configDefaults apply when neither the config file nor the environment set
// a key
var configDefaults = map[string]any{
	"log.level":     "warn",
	"log.format":    "console",
	"output.format": "",
	"output.color":  true,
}

var configRules = config.ValidationRules{
	"log.level":     {Type: "string", OneOf: []string{"trace", "debug", "info", "warn", "warning", "error", "fatal"}},
	"log.format":    {Type: "string", OneOf: []string{"json", "text", "console"}},
	"output.format": {Type: "string", OneOf: []string{"", "json", "yaml", "yml", "toml"}},
	"output.color":  {Type: "bool"},
}

// app holds the state shared by the subcommands of one invocation
type app struct {
	cfgFile string
	verbose bool

	cfg    *config.Config
	logger *log.Logger
}

// Execute runs the root command
func Execute() error {
	root, a := newRootCmd()
	err := root.Execute()
	if err != nil {
		if a.logger != nil {
			a.logger.LogError(err)
		}
		printError(root, err)
	}
	return err
}

func newRootCmd() (*cobra.Command, *app) {
	a := &app{}
	root := &cobra.Command{
		Use:   "dandelion",
		Short: "Ordered mapping toolkit",
		Long: `dandelion reads JSON, YAML and TOML documents as insertion-ordered
mappings and applies the chainable mapping operations to them: reset,
invert, filter, merge, setdefault, clear and reduce. Key order of the
input is kept in the output.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: dandelion.{toml,yaml,json} in . or the user config dir)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")

	root.AddCommand(
		newApplyCmd(a),
		newReduceCmd(a),
		newShowCmd(a),
		newConfigCmd(a),
		newVersionCmd(),
	)
	return root, a
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}
	if err := cfg.Validate(configRules); err != nil {
		return err
	}
	a.cfg = cfg

	level, err := log.ParseLevel(cfg.GetString("log.level"))
	if err != nil {
		return err
	}
	if a.verbose {
		level = log.LevelDebug
	}
	format, err := log.ParseFormat(cfg.GetString("log.format"))
	if err != nil {
		return err
	}

	a.logger = log.NewWithConfig(log.Config{
		Level:  level,
		Format: format,
		Output: cmd.ErrOrStderr(),
		Name:   "dandelion",
	}).WithCorrelationID(uuid.NewString())
	if format == log.FormatConsole && !cfg.GetBool("output.color") {
		a.logger = a.logger.WithFormatter(&log.ConsoleFormatter{
			DisableColors: true,
			TextFormatter: log.NewTextFormatter(),
		})
	}

	a.logger.Debug("configuration loaded", log.Fields{
		"command": cmd.Name(),
		"config":  cfg.FilePath(),
	})
	return nil
}

func (a *app) loadConfig() (*config.Config, error) {
	if a.cfgFile != "" {
		return config.LoadWithOptions(a.cfgFile, config.LoadOptions{
			EnvPrefix: envPrefix,
			Defaults:  configDefaults,
		})
	}
	options := config.DefaultDiscoveryOptions()
	options.EnvPrefix = envPrefix
	options.Defaults = configDefaults
	return config.Discover(options)
}

func printError(cmd *cobra.Command, err error) {
	fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
}
