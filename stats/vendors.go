// SPDX-License-Identifier: MIT

package stats

import (
	"sort"

	"github.com/katalvlaran/orgstat/dataset"
)

// VendorCount is how many records list one vendor.
type VendorCount struct {
	Vendor  string   `json:"vendor"`
	Count   int      `json:"count"`
	Records []string `json:"records"` // record IDs in input order
}

// VendorFrequency counts, per vendor, the records naming it. A vendor listed
// twice by one record counts once. Rows are ordered by Count descending; ties
// keep first-occurrence order.
func VendorFrequency(records []dataset.Record) []VendorCount {
	index := make(map[string]int)
	var out []VendorCount
	for _, r := range records {
		seen := make(map[string]struct{}, len(r.Vendors))
		for _, v := range r.Vendors {
			if v == "" {
				continue
			}
			if _, dup := seen[v]; dup {
				continue
			}
			seen[v] = struct{}{}

			i, ok := index[v]
			if !ok {
				i = len(out)
				index[v] = i
				out = append(out, VendorCount{Vendor: v})
			}
			out[i].Count++
			out[i].Records = append(out[i].Records, r.ID)
		}
	}

	sort.SliceStable(out, func(a, b int) bool { return out[a].Count > out[b].Count })

	return out
}
