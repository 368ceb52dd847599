// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/katalvlaran/orgstat/dataset"
	"github.com/katalvlaran/orgstat/stats"
	"github.com/spf13/cobra"
)

// variableSummary is one row of the summary report.
type variableSummary struct {
	Variable dataset.Variable `json:"variable"`
	Summary  *stats.Summary   `json:"summary"` // null when no record has the variable
}

func newSummaryCommand(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Descriptive statistics per variable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat, vars, err := g.load()
			if err != nil {
				return err
			}
			rows := make([]variableSummary, len(vars))
			for i, v := range vars {
				rows[i] = variableSummary{
					Variable: v,
					Summary:  stats.SummarizeColumn(dataset.Column(cat.Records, v.Key)),
				}
			}

			if g.format == formatJSON {
				return writeJSON(cmd.OutOrStdout(), rows)
			}
			printSummaryTable(cmd.OutOrStdout(), rows)
			return nil
		},
	}
}

func printSummaryTable(w io.Writer, rows []variableSummary) {
	heading(w, "SUMMARY")
	t := newTable("Variable", "N", "Mean", "Median", "StdDev", "Min", "Max", "CV").alignRight(1, 2, 3, 4, 5, 6, 7)
	for _, r := range rows {
		s := r.Summary
		if s == nil {
			t.add(r.Variable.Name, "0", dataset.Absent, dataset.Absent, dataset.Absent, dataset.Absent, dataset.Absent, dataset.Absent)
			continue
		}
		f := r.Variable.Format
		t.add(r.Variable.Name, fmt.Sprint(s.Count),
			f(s.Mean), f(s.Median), f(s.StdDev), f(s.Min), f(s.Max),
			fmt.Sprintf("%.1f%%", s.CV))
	}
	t.write(w)
}
