// SPDX-License-Identifier: MIT

package dataset

// Column extracts the tagged values of key, index-aligned with records.
func Column(records []Record, key string) []Value {
	out := make([]Value, len(records))
	for i, r := range records {
		out[i] = r.Value(key)
	}

	return out
}

// Present returns the present numbers of values in order, dropping absent ones.
func Present(values []Value) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if x, ok := v.Get(); ok {
			out = append(out, x)
		}
	}

	return out
}

// Group is a labeled subset of records.
type Group struct {
	Key     string
	Records []Record
}

// GroupBy partitions records by keyFn. Groups appear in order of first
// occurrence and keep the input order of their records.
func GroupBy(records []Record, keyFn func(Record) string) []Group {
	index := make(map[string]int)
	var groups []Group
	for _, r := range records {
		k := keyFn(r)
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, Group{Key: k})
		}
		groups[i].Records = append(groups[i].Records, r)
	}

	return groups
}

// ByCategory groups by Record.Category.
func ByCategory(r Record) string { return r.Category }

// ByAIStatus groups by Record.AIStatus.
func ByAIStatus(r Record) string { return r.AIStatus }

// ByProfitStatus groups by Record.ProfitStatus.
func ByProfitStatus(r Record) string { return r.ProfitStatus }

// ByInvestment groups by Record.Investment.
func ByInvestment(r Record) string { return r.Investment }
