// SPDX-License-Identifier: MIT

package stats_test

import (
	"testing"

	"github.com/katalvlaran/orgstat/dataset"
	"github.com/katalvlaran/orgstat/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRank_CompetitionAndOrder(t *testing.T) {
	recs := []dataset.Record{
		{ID: "a", Values: map[string]float64{"x": 10}},
		{ID: "b", Values: map[string]float64{"x": 30}},
		{ID: "c"},
		{ID: "d", Values: map[string]float64{"x": 10}},
		{ID: "e", Values: map[string]float64{"x": 5}},
	}

	desc := stats.Rank(recs, "x", stats.Descending)
	require.Len(t, desc, 4, "absent values are not ranked")
	ids := make([]string, len(desc))
	pos := make([]int, len(desc))
	for i, r := range desc {
		ids[i], pos[i] = r.Record.ID, r.Position
	}
	assert.Equal(t, []string{"b", "a", "d", "e"}, ids)
	assert.Equal(t, []int{1, 2, 2, 4}, pos)

	asc := stats.Rank(recs, "x", stats.Ascending)
	assert.Equal(t, "e", asc[0].Record.ID)
	assert.Equal(t, 5.0, asc[0].Value)
	assert.Equal(t, "b", asc[3].Record.ID)
}

func TestRank_Catalog(t *testing.T) {
	cat, err := dataset.Default()
	require.NoError(t, err)

	top := stats.Rank(cat.Records, "employees", stats.Descending)
	require.Len(t, top, 16)
	assert.Equal(t, "日本年金機構", top[0].Record.ID)
	assert.Equal(t, 12000.0, top[0].Value)
}

func TestSummarizeGroups(t *testing.T) {
	recs := []dataset.Record{
		{ID: "a", Category: "K", Values: map[string]float64{"x": 1}},
		{ID: "b", Category: "L"},
		{ID: "c", Category: "K", Values: map[string]float64{"x": 3}},
	}

	groups := stats.SummarizeGroups(recs, "x", dataset.ByCategory)
	require.Len(t, groups, 2)
	assert.Equal(t, "K", groups[0].Key)
	assert.Equal(t, 2, groups[0].Records)
	require.NotNil(t, groups[0].Summary)
	assert.Equal(t, 2.0, groups[0].Summary.Mean)

	assert.Equal(t, "L", groups[1].Key)
	assert.Nil(t, groups[1].Summary)
}
