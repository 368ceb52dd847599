// SPDX-License-Identifier: MIT

package dataset

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// printer renders numbers with Japanese digit grouping ("1,234.5").
var printer = message.NewPrinter(language.Japanese)

// Variable is a named numeric field tracked across records.
type Variable struct {
	Key      string `yaml:"key" json:"key"`           // record value key, e.g. "assets"
	Name     string `yaml:"name" json:"name"`         // display name
	Unit     string `yaml:"unit" json:"unit"`         // display unit appended by Format
	Decimals int    `yaml:"decimals" json:"decimals"` // fraction digits shown by Format
}

// Format renders v with digit grouping, Decimals fraction digits and Unit.
func (vr Variable) Format(v float64) string {
	d := vr.Decimals
	if d < 0 {
		d = 0
	}

	return printer.Sprintf("%v%s", number.Decimal(v,
		number.MinFractionDigits(d),
		number.MaxFractionDigits(d),
	), vr.Unit)
}

// FormatValue is Format for a Value; absent values render as Absent.
func (vr Variable) FormatValue(v Value) string {
	x, ok := v.Get()
	if !ok {
		return Absent
	}

	return vr.Format(x)
}

// Keys returns the variable keys in order.
func Keys(vars []Variable) []string {
	out := make([]string, len(vars))
	for i, v := range vars {
		out[i] = v.Key
	}

	return out
}

// Record is one subject entity. A key missing from Values is absent.
type Record struct {
	ID           string             `yaml:"id" json:"id"`
	Name         string             `yaml:"name" json:"name"`
	Category     string             `yaml:"category" json:"category"`
	AIStatus     string             `yaml:"ai" json:"ai"`
	ProfitStatus string             `yaml:"profit_status" json:"profit_status"`
	Investment   string             `yaml:"investment" json:"investment"` // IT investment level
	Vendors      []string           `yaml:"vendors" json:"vendors"`       // system vendors, most significant first
	Values       map[string]float64 `yaml:"values" json:"values"`
}

// Value returns the tagged value of key.
func (r Record) Value(key string) Value {
	x, ok := r.Values[key]
	if !ok {
		return None()
	}

	return Some(x)
}

// Label returns the short display label of the record (ID, falling back to Name).
func (r Record) Label() string {
	if r.ID != "" {
		return r.ID
	}

	return r.Name
}
