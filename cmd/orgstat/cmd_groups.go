// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/katalvlaran/orgstat/dataset"
	"github.com/katalvlaran/orgstat/stats"
	"github.com/spf13/cobra"
)

// groupings maps --group-by values to record key functions.
var groupings = map[string]func(dataset.Record) string{
	"category":      dataset.ByCategory,
	"ai":            dataset.ByAIStatus,
	"profit-status": dataset.ByProfitStatus,
	"investment":    dataset.ByInvestment,
}

func newGroupsCommand(g *globalFlags) *cobra.Command {
	var by string
	cmd := &cobra.Command{
		Use:   "groups <variable>",
		Short: "Summarize one variable per record group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			keyFn, ok := groupings[by]
			if !ok {
				return fmt.Errorf("unsupported grouping %q: must be category, ai, profit-status or investment", by)
			}
			cat, err := g.catalogOnly()
			if err != nil {
				return err
			}
			v, ok := cat.Variable(args[0])
			if !ok {
				return fmt.Errorf("%w: %q", dataset.ErrUnknownVariable, args[0])
			}
			groups := stats.SummarizeGroups(cat.Records, v.Key, keyFn)

			if g.format == formatJSON {
				return writeJSON(cmd.OutOrStdout(), groups)
			}
			printGroupsTable(cmd.OutOrStdout(), v, by, groups)
			return nil
		},
	}
	cmd.Flags().StringVar(&by, "group-by", "category", "Grouping: category, ai, profit-status or investment")

	return cmd
}

func printGroupsTable(w io.Writer, v dataset.Variable, by string, groups []stats.GroupSummary) {
	heading(w, fmt.Sprintf("GROUPS: %s by %s", v.Name, by))
	t := newTable("Group", "Records", "N", "Mean", "Median", "Min", "Max").alignRight(1, 2, 3, 4, 5, 6)
	for _, gs := range groups {
		s := gs.Summary
		if s == nil {
			t.add(gs.Key, fmt.Sprint(gs.Records), "0", dataset.Absent, dataset.Absent, dataset.Absent, dataset.Absent)
			continue
		}
		t.add(gs.Key, fmt.Sprint(gs.Records), fmt.Sprint(s.Count),
			v.Format(s.Mean), v.Format(s.Median), v.Format(s.Min), v.Format(s.Max))
	}
	t.write(w)
}
