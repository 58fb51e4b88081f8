// File: apply.go
// Title: Apply Command
// Description: Applies a chain of mapping operations to a document and
//              writes the result, keeping key order.
// Author: hellerve
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package cmd

import (
	"github.com/spf13/cobra"

	dlerror "github.com/hellerve/dandelion/foundation/core/error"
	"github.com/hellerve/dandelion/foundation/core/log"
	"github.com/hellerve/dandelion/foundation/utils/mapx"
)

type applyOptions struct {
	ops         []string
	format      string
	inputFormat string
	output      string
}

func newApplyCmd(a *app) *cobra.Command {
	opts := &applyOptions{}
	cmd := &cobra.Command{
		Use:   "apply FILE",
		Short: "Apply mapping operations to a document",
		Long: `Apply reads FILE ("-" for stdin), runs each --op in the given order and
writes the result. Operations:

` + operationHelp,
		Example: `  dandelion apply data.json --op filter --op merge=extra.yaml --format yaml
  cat data.json | dandelion apply - --op invert`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runApply(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringArrayVar(&opts.ops, "op", nil, "operation to apply, repeatable")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: json, yaml or toml (default: input format)")
	cmd.Flags().StringVar(&opts.inputFormat, "input-format", "", "format of documents without a known extension")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write the result to a file instead of stdout")
	return cmd
}

func (a *app) runApply(cmd *cobra.Command, path string, opts *applyOptions) error {
	timer := a.logger.StartTimer("apply").WithField("file", path)

	hint, err := parseFormatFlag("input-format", opts.inputFormat)
	if err != nil {
		timer.StopWithError(err)
		return err
	}
	d, inFormat, err := readDocument(cmd, path, hint)
	if err != nil {
		timer.StopWithError(err)
		return err
	}

	ops, err := parseOps(opts.ops, func(p string) (*mapx.Dict[string, any], error) {
		other, _, err := readDocument(cmd, p, hint)
		return other, err
	})
	if err != nil {
		timer.StopWithError(err)
		return err
	}

	for i, op := range ops {
		if err := op.run(d); err != nil {
			err = dlerror.Wrap(err, "operation "+op.name+" failed").
				WithOperation("cmd.apply").
				WithDetail("op", op.name).
				WithDetail("position", i+1)
			timer.StopWithError(err)
			return err
		}
		a.logger.Debug("applied operation", log.Fields{
			"op":      op.name,
			"arg":     op.arg,
			"entries": d.Len(),
		})
	}

	outFormat, err := a.outputFormat(opts.format, inFormat)
	if err != nil {
		timer.StopWithError(err)
		return err
	}
	if err := writeDocument(cmd, d, outFormat, opts.output); err != nil {
		timer.StopWithError(err)
		return err
	}

	timer.WithField("entries", d.Len()).WithField("ops", len(ops)).Stop()
	return nil
}
