// SPDX-License-Identifier: MIT

package pca

import (
	"errors"
	"fmt"
)

var (
	// ErrInsufficientData is returned when fewer than MinRecords records have
	// every variable present. No eigen decomposition is attempted.
	ErrInsufficientData = errors.New("pca: insufficient data")

	// ErrNoVariables is returned for an empty variable list.
	ErrNoVariables = errors.New("pca: no variables")

	// ErrComponentCount is returned when more components are requested than
	// the matrix has dimensions, or fewer than one.
	ErrComponentCount = errors.New("pca: invalid component count")
)

// Operation name constants for unified error wrapping.
const (
	opStandardize = "Standardize"
	opCovariance  = "Covariance"
	opTopK        = "TopK"
	opProject     = "Project"
	opAnalyze     = "Analyze"
)

// pcaErrorf wraps err with an operation tag.
func pcaErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
