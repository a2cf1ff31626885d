// SPDX-License-Identifier: MIT
// Package boolmat: shape validators shared by the semiring kernels in ops.go.

package boolmat

// validateNotNil ensures m is non-nil.
func validateNotNil(m *Matrix) error {
	if m == nil {
		return ErrNilMatrix
	}

	return nil
}

// validateSameShape ensures a and b have identical dimensions.
func validateSameShape(a, b *Matrix) error {
	if err := validateNotNil(a); err != nil {
		return err
	}
	if err := validateNotNil(b); err != nil {
		return err
	}
	if a.rows != b.rows || a.cols != b.cols {
		return ErrDimensionMismatch
	}

	return nil
}

// validateMatMulShape ensures a.Cols() == b.Rows().
func validateMatMulShape(a, b *Matrix) error {
	if err := validateNotNil(a); err != nil {
		return err
	}
	if err := validateNotNil(b); err != nil {
		return err
	}
	if a.cols != b.rows {
		return ErrDimensionMismatch
	}

	return nil
}

// validateSquare ensures m is square.
func validateSquare(m *Matrix) error {
	if err := validateNotNil(m); err != nil {
		return err
	}
	if m.rows != m.cols {
		return ErrNonSquare
	}

	return nil
}
