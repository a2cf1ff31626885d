// SPDX-License-Identifier: MIT
// Package boolmat provides the sparse boolean Matrix type shared by the
// automaton and rpq packages.
package boolmat

import (
	"fmt"
	"sort"
)

// matrixErrorf wraps an underlying error with the given operation tag.
func matrixErrorf(op string, err error) error {
	return fmt.Errorf("boolmat.%s: %w", op, err)
}

// Matrix is a rows x cols sparse boolean matrix. Only true cells are
// stored, one set per row, so a row with k true cells costs O(k) instead
// of O(cols). Matrix is immutable once built outside of Zeros/Set: every
// package-level operation (Or, MatMul, Kron, Power, DiffPositive) returns
// a freshly allocated Matrix and never touches its operands.
type Matrix struct {
	rows, cols int
	row        []map[int]struct{} // row[i] = set of j such that M[i,j] == true
}

// Zeros returns an all-false rows x cols Matrix.
// Complexity: O(rows) to allocate the row slice.
func Zeros(rows, cols int) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf("Zeros", ErrBadShape)
	}
	m := &Matrix{rows: rows, cols: cols, row: make([]map[int]struct{}, rows)}
	for i := range m.row {
		m.row[i] = make(map[int]struct{})
	}

	return m, nil
}

// Identity returns the n x n boolean identity matrix (true on the diagonal).
func Identity(n int) (*Matrix, error) {
	m, err := Zeros(n, n)
	if err != nil {
		return nil, matrixErrorf("Identity", err)
	}
	for i := 0; i < n; i++ {
		m.row[i][i] = struct{}{}
	}

	return m, nil
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.cols }

// Set marks cell (i,j) true. Idempotent.
// Returns ErrOutOfRange if i or j is out of bounds.
func (m *Matrix) Set(i, j int) error {
	if m == nil {
		return matrixErrorf("Set", ErrNilMatrix)
	}
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return matrixErrorf("Set", ErrOutOfRange)
	}
	m.row[i][j] = struct{}{}

	return nil
}

// Get reports whether cell (i,j) is true.
// Returns ErrOutOfRange if i or j is out of bounds.
func (m *Matrix) Get(i, j int) (bool, error) {
	if m == nil {
		return false, matrixErrorf("Get", ErrNilMatrix)
	}
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return false, matrixErrorf("Get", ErrOutOfRange)
	}
	_, ok := m.row[i][j]

	return ok, nil
}

// RowTrueCols returns the column indices set true in row i, sorted
// ascending for deterministic iteration. Each column appears exactly once.
// Returns ErrOutOfRange if i is out of bounds.
func (m *Matrix) RowTrueCols(i int) ([]int, error) {
	if m == nil {
		return nil, matrixErrorf("RowTrueCols", ErrNilMatrix)
	}
	if i < 0 || i >= m.rows {
		return nil, matrixErrorf("RowTrueCols", ErrOutOfRange)
	}
	cols := make([]int, 0, len(m.row[i]))
	for j := range m.row[i] {
		cols = append(cols, j)
	}
	sort.Ints(cols)

	return cols, nil
}

// NNZ returns the number of true cells in m.
// Complexity: O(rows) (each row tracks its own cardinality via map length).
func NNZ(m *Matrix) (int, error) {
	if m == nil {
		return 0, matrixErrorf("NNZ", ErrNilMatrix)
	}
	n := 0
	for _, r := range m.row {
		n += len(r)
	}

	return n, nil
}

// Clone returns a deep copy of m.
func (m *Matrix) Clone() *Matrix {
	out := &Matrix{rows: m.rows, cols: m.cols, row: make([]map[int]struct{}, m.rows)}
	for i, r := range m.row {
		cp := make(map[int]struct{}, len(r))
		for j := range r {
			cp[j] = struct{}{}
		}
		out.row[i] = cp
	}

	return out
}
