// SPDX-License-Identifier: MIT
// Package boolmat: sentinel error set.
// Algorithms MUST return these sentinels (wrapped with fmt.Errorf("%w", ...)
// for context); tests match them via errors.Is.

package boolmat

import "errors"

var (
	// ErrBadShape is returned when requested dimensions are invalid (r<=0 or c<=0).
	ErrBadShape = errors.New("boolmat: invalid shape")

	// ErrOutOfRange indicates a row or column index outside valid bounds.
	ErrOutOfRange = errors.New("boolmat: index out of range")

	// ErrDimensionMismatch indicates incompatible shapes between operands,
	// e.g. Or/DiffPositive on different shapes, or MatMul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("boolmat: dimension mismatch")

	// ErrNonSquare signals a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("boolmat: matrix is not square")

	// ErrNilMatrix indicates a nil *Matrix was used as an operand.
	ErrNilMatrix = errors.New("boolmat: nil matrix")

	// ErrNegativeExponent indicates Power was called with a negative exponent.
	ErrNegativeExponent = errors.New("boolmat: negative exponent")
)
