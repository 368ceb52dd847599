// SPDX-License-Identifier: MIT

package dataset_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/orgstat/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestValue_Presence covers Some/None and the non-finite rule.
func TestValue_Presence(t *testing.T) {
	x, ok := dataset.Some(2.5).Get()
	assert.True(t, ok)
	assert.Equal(t, 2.5, x)

	assert.False(t, dataset.None().Present())
	assert.False(t, dataset.Value{}.Present(), "zero Value must be absent")
	assert.False(t, dataset.Some(math.NaN()).Present())
	assert.False(t, dataset.Some(math.Inf(-1)).Present())

	assert.Equal(t, 7.0, dataset.None().Or(7))
	assert.Equal(t, "—", dataset.None().String())
	assert.Equal(t, "0.5", dataset.Some(0.5).String())
}

// TestColumnAndPresent verifies per-field filtering keeps order.
func TestColumnAndPresent(t *testing.T) {
	recs := []dataset.Record{
		{ID: "a", Values: map[string]float64{"x": 1, "y": 10}},
		{ID: "b", Values: map[string]float64{"y": 20}},
		{ID: "c", Values: map[string]float64{"x": 3}},
	}

	col := dataset.Column(recs, "x")
	require.Len(t, col, 3)
	assert.False(t, col[1].Present())
	assert.Equal(t, []float64{1, 3}, dataset.Present(col))
	assert.Equal(t, []float64{10, 20}, dataset.Present(dataset.Column(recs, "y")))
	assert.Empty(t, dataset.Present(dataset.Column(recs, "z")))
}

// TestGroupBy keeps first-occurrence order.
func TestGroupBy(t *testing.T) {
	recs := []dataset.Record{
		{ID: "a", Category: "B"},
		{ID: "b", Category: "A"},
		{ID: "c", Category: "B"},
	}

	groups := dataset.GroupBy(recs, dataset.ByCategory)
	require.Len(t, groups, 2)
	assert.Equal(t, "B", groups[0].Key)
	assert.Equal(t, []string{"a", "c"}, []string{groups[0].Records[0].ID, groups[0].Records[1].ID})
	assert.Equal(t, "A", groups[1].Key)
}

// TestVariable_Format checks grouping, decimals and absent rendering.
func TestVariable_Format(t *testing.T) {
	assets := dataset.Variable{Key: "assets", Unit: "億円", Decimals: 0}
	assert.Equal(t, "2,540,000億円", assets.Format(2540000))
	assert.Equal(t, "-1,009億円", assets.Format(-1009))

	age := dataset.Variable{Key: "age", Unit: "歳", Decimals: 1}
	assert.Equal(t, "42.0歳", age.Format(42))
	assert.Equal(t, dataset.Absent, age.FormatValue(dataset.None()))
}

// TestDefaultCatalog loads the embedded organization table.
func TestDefaultCatalog(t *testing.T) {
	cat, err := dataset.Default()
	require.NoError(t, err)
	require.Len(t, cat.Records, 16)
	assert.Equal(t, []string{"employees", "age", "salary", "assets", "profit"}, dataset.Keys(cat.Variables))

	gpif := cat.Records[2]
	assert.Equal(t, "GPIF", gpif.ID)
	x, ok := gpif.Value("assets").Get()
	require.True(t, ok)
	assert.Equal(t, 2540000.0, x)
	assert.Equal(t, "黒字", gpif.ProfitStatus)
	assert.Equal(t, "極めて高い", gpif.Investment)
	assert.Equal(t, []string{"ソニーCSL", "野村総研", "アクセンチュア"}, gpif.Vendors)

	for _, r := range cat.Records {
		for _, v := range cat.Variables {
			assert.Truef(t, r.Value(v.Key).Present(), "%s.%s missing", r.ID, v.Key)
		}
	}
}

// TestCatalog_Lookup returns requested order and rejects unknown keys.
func TestCatalog_Lookup(t *testing.T) {
	cat, err := dataset.Default()
	require.NoError(t, err)

	vars, err := cat.Lookup("profit", "age")
	require.NoError(t, err)
	assert.Equal(t, []string{"profit", "age"}, dataset.Keys(vars))

	all, err := cat.Lookup()
	require.NoError(t, err)
	assert.Len(t, all, 5)

	_, err = cat.Lookup("age", "revenue")
	require.ErrorIs(t, err, dataset.ErrUnknownVariable)
}

// TestParse_Validation table-drives the structural checks.
func TestParse_Validation(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want error
	}{
		{"no variables", "variables: []\nrecords: []\n", dataset.ErrInvalidCatalog},
		{"duplicate variable", "variables:\n  - {key: a}\n  - {key: a}\n", dataset.ErrInvalidCatalog},
		{"duplicate record", "variables:\n  - {key: a}\nrecords:\n  - {id: r}\n  - {id: r}\n", dataset.ErrInvalidCatalog},
		{"undeclared value", "variables:\n  - {key: a}\nrecords:\n  - {id: r, values: {b: 1}}\n", dataset.ErrUnknownVariable},
		{"non-finite", "variables:\n  - {key: a}\nrecords:\n  - {id: r, values: {a: .nan}}\n", dataset.ErrInvalidCatalog},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := dataset.Parse([]byte(tc.yaml))
			require.ErrorIs(t, err, tc.want)
		})
	}

	_, err := dataset.Parse([]byte("variables:\n  - {key: a, colour: red}\n"))
	require.Error(t, err, "unknown fields must be rejected")
}
