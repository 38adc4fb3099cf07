// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Single source of truth for shape checks used by the kernels.
//   - Return sentinel errors tagged with the validator name so call sites can
//     wrap uniformly.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
//
// Errors: ErrNilMatrix if nil, ErrNonSquare if not square.
// Complexity: O(1).
func ValidateSquare(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateSquare", ErrNilMatrix)
	}
	if m.r != m.c {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateSuccessors checks that next can hold one successor per cell of an
// n×n matrix. A nil buffer is accepted (distance-only closure).
// Complexity: O(1).
func ValidateSuccessors(n int, next []int) error {
	if next != nil && len(next) != n*n {
		return validatorErrorf("ValidateSuccessors", ErrSuccessorShape)
	}

	return nil
}
