// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every kernel returns these sentinels (optionally wrapped with call-site
// context via fmt.Errorf("ctx: %w", ErrX)); tests match them with errors.Is.
// No kernel panics on user-triggered conditions.

package matrix

import "errors"

var (
	// ErrBadShape is returned when requested dimensions are negative.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers (At/Set/Row) return this instead of panicking.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates that a nil *Dense was passed to a kernel.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNaN rejects NaN on Set. +Inf is the "no path" sentinel and is legal.
	ErrNaN = errors.New("matrix: NaN encountered")

	// ErrNegativeWeight is returned by the shortest-path kernel when a negative
	// entry is found; travel times are non-negative by contract.
	ErrNegativeWeight = errors.New("matrix: negative weight")

	// ErrSuccessorShape indicates that the successor buffer does not hold n*n entries.
	ErrSuccessorShape = errors.New("matrix: successor buffer length mismatch")
)
