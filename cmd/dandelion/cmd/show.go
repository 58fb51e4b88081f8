// File: show.go
// Title: Show Command
// Description: Prints a document as a table in key order.
// Author: hellerve
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/hellerve/dandelion/foundation/utils/mapx"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	emptyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

func newShowCmd(a *app) *cobra.Command {
	var inputFormat string
	cmd := &cobra.Command{
		Use:   "show FILE",
		Short: "Print a document as a table in key order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hint, err := parseFormatFlag("input-format", inputFormat)
			if err != nil {
				return err
			}
			d, _, err := readDocument(cmd, args[0], hint)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(d, a.cfg.GetBool("output.color")))
			fmt.Fprintf(cmd.OutOrStdout(), "%d entries\n", d.Len())
			return nil
		},
	}
	cmd.Flags().StringVar(&inputFormat, "input-format", "", "format of documents without a known extension")
	return cmd
}

// renderTable lays out d with one row per entry. Empty values are dimmed
// when color is on.
func renderTable(d *mapx.Dict[string, any], color bool) string {
	rows := make([][]string, 0, d.Len())
	empty := make(map[int]bool)
	for k, v := range d.All() {
		if !mapx.Truthy(v) {
			empty[len(rows)] = true
		}
		rows = append(rows, []string{strconv.Itoa(len(rows) + 1), k, formatValue(v)})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("#", "KEY", "VALUE").
		Rows(rows...)
	if color {
		t = t.BorderStyle(borderStyle).StyleFunc(func(row, _ int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case empty[row]:
				return emptyStyle
			default:
				return cellStyle
			}
		})
	}
	return t.Render()
}

// formatValue renders nested values as compact JSON and scalars as text
func formatValue(v any) string {
	switch v.(type) {
	case map[string]any, []any, *mapx.Dict[string, any]:
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(data)
	case nil:
		return "null"
	default:
		return fmt.Sprint(v)
	}
}
