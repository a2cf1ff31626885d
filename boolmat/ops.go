// SPDX-License-Identifier: MIT
// Package boolmat: the boolean-semiring kernels the RPQ engine is built on.
//
// Semiring: (bool, OR, AND, false, true). Or is the additive operator,
// MatMul/Kron use AND for the multiplicative step and OR to accumulate.
// Every kernel allocates a fresh result; operands are never mutated.

package boolmat

// Or returns the element-wise OR of a and b.
// Requires identical shapes.
// Complexity: O(nnz(a) + nnz(b)).
func Or(a, b *Matrix) (*Matrix, error) {
	if err := validateSameShape(a, b); err != nil {
		return nil, matrixErrorf("Or", err)
	}
	res, err := Zeros(a.rows, a.cols)
	if err != nil {
		return nil, matrixErrorf("Or", err)
	}
	for i := 0; i < a.rows; i++ {
		for j := range a.row[i] {
			res.row[i][j] = struct{}{}
		}
		for j := range b.row[i] {
			res.row[i][j] = struct{}{}
		}
	}

	return res, nil
}

// MatMul computes the boolean-semiring product C = A x B:
// C[i,k] = OR over j of (A[i,j] AND B[j,k]).
// Requires a.Cols() == b.Rows().
//
// Implementation walks only the true cells of each operand row, so the
// cost is proportional to the number of (i,j,k) witnesses rather than
// a.Rows()*a.Cols()*b.Cols().
func MatMul(a, b *Matrix) (*Matrix, error) {
	if err := validateMatMulShape(a, b); err != nil {
		return nil, matrixErrorf("MatMul", err)
	}
	res, err := Zeros(a.rows, b.cols)
	if err != nil {
		return nil, matrixErrorf("MatMul", err)
	}
	for i := 0; i < a.rows; i++ {
		for j := range a.row[i] { // A[i,j] == true
			for k := range b.row[j] { // B[j,k] == true
				res.row[i][k] = struct{}{}
			}
		}
	}

	return res, nil
}

// Kron computes the Kronecker product C = A ⊗ B over booleans:
//
//	C[i*b.Rows()+p, j*b.Cols()+q] = A[i,j] AND B[p,q]
//
// so that C has shape (a.Rows()*b.Rows()) x (a.Cols()*b.Cols()). This
// layout is what makes idx((a,b)) = idxA(a)*M + idxB(b) line up with the
// per-symbol product matrices built by the automaton intersector.
// Complexity: O(nnz(a) * nnz(b)).
func Kron(a, b *Matrix) (*Matrix, error) {
	if err := validateNotNil(a); err != nil {
		return nil, matrixErrorf("Kron", err)
	}
	if err := validateNotNil(b); err != nil {
		return nil, matrixErrorf("Kron", err)
	}
	res, err := Zeros(a.rows*b.rows, a.cols*b.cols)
	if err != nil {
		return nil, matrixErrorf("Kron", err)
	}
	for i := 0; i < a.rows; i++ {
		for j := range a.row[i] {
			for p := 0; p < b.rows; p++ {
				for q := range b.row[p] {
					res.row[i*b.rows+p][j*b.cols+q] = struct{}{}
				}
			}
		}
	}

	return res, nil
}

// DiffPositive computes C[i,j] = A[i,j] AND NOT B[i,j].
// Requires identical shapes. Used by the multi-source BFS solver to keep
// only frontier cells not already visited.
func DiffPositive(a, b *Matrix) (*Matrix, error) {
	if err := validateSameShape(a, b); err != nil {
		return nil, matrixErrorf("DiffPositive", err)
	}
	res, err := Zeros(a.rows, a.cols)
	if err != nil {
		return nil, matrixErrorf("DiffPositive", err)
	}
	for i := 0; i < a.rows; i++ {
		for j := range a.row[i] {
			if _, blocked := b.row[i][j]; !blocked {
				res.row[i][j] = struct{}{}
			}
		}
	}

	return res, nil
}

// Power computes m^k (k-fold boolean-semiring self-multiply) by repeated
// squaring: O(log k) matrix multiplications instead of k-1.
// Requires m square. k == 0 yields the identity matrix.
func Power(m *Matrix, k int) (*Matrix, error) {
	if err := validateSquare(m); err != nil {
		return nil, matrixErrorf("Power", err)
	}
	if k < 0 {
		return nil, matrixErrorf("Power", ErrNegativeExponent)
	}

	result, err := Identity(m.rows)
	if err != nil {
		return nil, matrixErrorf("Power", err)
	}
	base := m.Clone()
	for e := k; e > 0; e >>= 1 {
		if e&1 == 1 {
			result, err = MatMul(result, base)
			if err != nil {
				return nil, matrixErrorf("Power", err)
			}
		}
		if e>>1 > 0 {
			base, err = MatMul(base, base)
			if err != nil {
				return nil, matrixErrorf("Power", err)
			}
		}
	}

	return result, nil
}
