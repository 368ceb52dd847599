// SPDX-License-Identifier: MIT

package dataset

import (
	"math"
	"strconv"
)

// Absent is how an absent value renders in text output.
const Absent = "—"

// Value is a float64 that is either present or absent.
// The zero Value is absent.
type Value struct {
	v  float64
	ok bool
}

// Some returns a present Value for finite x, and an absent one for NaN or ±Inf.
func Some(x float64) Value {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return Value{}
	}

	return Value{v: x, ok: true}
}

// None returns an absent Value.
func None() Value { return Value{} }

// Get returns the number and whether it is present.
func (v Value) Get() (float64, bool) { return v.v, v.ok }

// Present reports whether the value is present.
func (v Value) Present() bool { return v.ok }

// Or returns the value when present, def otherwise.
func (v Value) Or(def float64) float64 {
	if !v.ok {
		return def
	}

	return v.v
}

// String implements fmt.Stringer.
func (v Value) String() string {
	if !v.ok {
		return Absent
	}

	return strconv.FormatFloat(v.v, 'g', -1, 64)
}
