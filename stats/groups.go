// SPDX-License-Identifier: MIT

package stats

import "github.com/katalvlaran/orgstat/dataset"

// GroupSummary is the Summary of one variable within a group of records.
type GroupSummary struct {
	Key     string   `json:"key"`
	Records int      `json:"records"`
	Summary *Summary `json:"summary"` // nil when no record in the group has the variable
}

// SummarizeGroups partitions records with by and summarizes key per group.
// Groups appear in order of first occurrence.
func SummarizeGroups(records []dataset.Record, key string, by func(dataset.Record) string) []GroupSummary {
	groups := dataset.GroupBy(records, by)
	out := make([]GroupSummary, len(groups))
	for i, g := range groups {
		out[i] = GroupSummary{
			Key:     g.Key,
			Records: len(g.Records),
			Summary: SummarizeColumn(dataset.Column(g.Records, key)),
		}
	}

	return out
}
