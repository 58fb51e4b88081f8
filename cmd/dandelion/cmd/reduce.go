// File: reduce.go
// Title: Reduce Command
// Description: Folds the values of a document into a single result.
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
	"strconv"

	"github.com/spf13/cobra"

	dlerror "github.com/hellerve/dandelion/foundation/core/error"
	"github.com/hellerve/dandelion/foundation/core/log"
	"github.com/hellerve/dandelion/foundation/utils/mapx"
)

func newReduceCmd(a *app) *cobra.Command {
	var mode, inputFormat string
	cmd := &cobra.Command{
		Use:   "reduce FILE",
		Short: "Fold the values of a document into one result",
		Long: `Reduce folds the numeric values of FILE in key order.

  sum   adds all values, starting from 0
  max   prints the entry with the largest value
  min   prints the entry with the smallest value

max and min seed from the first entry and fail on an empty document.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hint, err := parseFormatFlag("input-format", inputFormat)
			if err != nil {
				return err
			}
			d, _, err := readDocument(cmd, args[0], hint)
			if err != nil {
				return err
			}
			result, err := reduceDocument(d, mode)
			if err != nil {
				return err
			}
			a.logger.Debug("reduced document", log.Fields{"mode": mode, "entries": d.Len()})
			fmt.Fprintln(cmd.OutOrStdout(), result)
			return nil
		},
	}

	cmd.Flags().StringVar(&mode, "mode", "sum", "reduction: sum, max or min")
	cmd.Flags().StringVar(&inputFormat, "input-format", "", "format of documents without a known extension")
	return cmd
}

// reduceDocument folds d according to mode and renders the result
func reduceDocument(d *mapx.Dict[string, any], mode string) (string, error) {
	for k, v := range d.All() {
		if _, ok := number(v); !ok {
			return "", dlerror.Newf("value of %q is not a number", k).
				WithCode(dlerror.CodeTypeMismatch).
				WithOperation("cmd.reduce").
				WithDetail("key", k).
				WithDetail("value_type", fmt.Sprintf("%T", v))
		}
	}

	switch mode {
	case "sum":
		total := mapx.Reduce(d, func(acc float64, _ string, v any) float64 {
			f, _ := number(v)
			return acc + f
		}, 0)
		return formatNumber(total), nil

	case "max", "min":
		better := func(a, b float64) bool { return a > b }
		if mode == "min" {
			better = func(a, b float64) bool { return a < b }
		}
		best, err := d.Reduce(func(acc mapx.Entry[string, any], k string, v any) mapx.Entry[string, any] {
			f, _ := number(v)
			g, _ := number(acc.Value)
			if better(f, g) {
				return mapx.Pair(k, v)
			}
			return acc
		})
		if err != nil {
			return "", err
		}
		f, _ := number(best.Value)
		return best.Key + ": " + formatNumber(f), nil

	default:
		return "", dlerror.Newf("unknown reduce mode %q", mode).
			WithCode(dlerror.CodeInvalidInput).
			WithDetail("mode", mode)
	}
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float64:
		return n, true
	case float32:
		return float64(n), true
	default:
		return 0, false
	}
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
