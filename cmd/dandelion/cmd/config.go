// File: config.go
// Title: Config Command
// Description: Prints the effective configuration, defaults included.
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

	"github.com/spf13/cobra"

	"github.com/hellerve/dandelion/foundation/core/config"
	"github.com/hellerve/dandelion/foundation/utils/mapx"
)

func newConfigCmd(a *app) *cobra.Command {
	var format string
	var list bool
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if list {
				for _, path := range config.ListPossibleConfigFiles(config.DefaultDiscoveryOptions()) {
					fmt.Fprintln(cmd.OutOrStdout(), path)
				}
				return nil
			}

			f, err := parseFormatFlag("format", format)
			if err != nil {
				return err
			}
			if f == mapx.FormatUnknown {
				f = mapx.FormatTOML
			}
			if path := a.cfg.FilePath(); path != "" {
				fmt.Fprintf(cmd.ErrOrStderr(), "# loaded from %s\n", path)
			}
			data, err := a.cfg.Encode(f)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "toml", "output format: json, yaml or toml")
	cmd.Flags().BoolVar(&list, "paths", false, "list the files searched for configuration")
	return cmd
}
