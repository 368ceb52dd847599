// SPDX-License-Identifier: MIT

// Package dataset describes the tabular input of the statistics core:
// an ordered list of numeric Variables and a list of Records whose values
// are individually present or absent.
//
// ✨ Key features:
//   - Value: a present/absent tagged float64; NaN and ±Inf are never present.
//   - Variable: key, display name, unit and decimal formatting rule.
//   - Catalog: the embedded organization table (YAML), validated on load.
//   - Column/Present/GroupBy: per-field extraction and filtering helpers.
//
// ⚙️ Usage:
//
//	cat, err := dataset.Default()
//	vars, err := cat.Lookup("employees", "assets")
//	col := dataset.Column(cat.Records, "assets")
//	xs := dataset.Present(col) // absent values dropped per field
//
// Variable order is significant: downstream correlation axes and eigenvector
// coefficients follow the order in which variables are supplied.
package dataset
