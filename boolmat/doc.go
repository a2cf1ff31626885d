// Package boolmat implements a sparse boolean matrix and the handful of
// semiring operations the RPQ engine is built from: element-wise OR,
// Boolean-semiring multiplication (AND-OR), Kronecker product, and repeated
// squaring for transitive-closure computation.
//
// Matrices are stored row-major as a slice of sets of true column indices,
// which keeps Set/Get/row iteration O(1)-ish and avoids paying for the
// R*C zero cells a dense []float64 buffer would allocate. Every operation
// is pure: it validates its operands and returns a freshly allocated
// result, never mutating an existing Matrix in place.
//
// See matrix.go for the type and accessors, ops.go for the semiring
// kernels, and validators.go for the shared shape checks.
package boolmat
