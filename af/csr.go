package af

import "math"

// Matrix is a compressed-sparse-row matrix over the attack relation.
// Rows and columns are 0-indexed (argument a ↔ index a-1). Values are
// non-negative path counts; products saturate at MaxInt64 instead of
// wrapping, and saturation is reported to the caller.
type Matrix struct {
	n      int
	rowPtr []int
	colIdx []int
	vals   []int64
}

// AttackMatrix returns M with M[i][j] = 1 iff argument i+1 attacks j+1.
// Complexity: O(N + |R|).
func (f *AF) AttackMatrix() *Matrix {
	return f.buildCSR(f.attackees)
}

// AttackMatrixT returns Mᵀ: row i lists the attackers of argument i+1.
// (Mᵀ)ᵏ[i][j] counts the length-k attack paths from j+1 ending at i+1.
func (f *AF) AttackMatrixT() *Matrix {
	return f.buildCSR(f.attackers)
}

func (f *AF) buildCSR(adj [][]Argument) *Matrix {
	m := &Matrix{
		n:      f.n,
		rowPtr: make([]int, f.n+1),
		colIdx: make([]int, 0, f.m),
		vals:   make([]int64, 0, f.m),
	}
	for i := 1; i <= f.n; i++ {
		for _, b := range adj[i] {
			m.colIdx = append(m.colIdx, int(b)-1)
			m.vals = append(m.vals, 1)
		}
		m.rowPtr[i] = len(m.colIdx)
	}

	return m
}

// Dim returns the matrix order.
func (m *Matrix) Dim() int { return m.n }

// NNZ returns the number of stored non-zero entries.
func (m *Matrix) NNZ() int { return len(m.vals) }

// MulVec returns y = M·x, treating the integer entries as weights.
// Complexity: O(N + nnz).
func (m *Matrix) MulVec(x []float64) []float64 {
	y := make([]float64, m.n)
	for i := 0; i < m.n; i++ {
		var sum float64
		for p := m.rowPtr[i]; p < m.rowPtr[i+1]; p++ {
			sum += float64(m.vals[p]) * x[m.colIdx[p]]
		}
		y[i] = sum
	}

	return y
}

// RowSums returns the per-row entry sums and whether any sum saturated.
func (m *Matrix) RowSums() ([]int64, bool) {
	sums := make([]int64, m.n)
	saturated := false
	for i := 0; i < m.n; i++ {
		var s int64
		for p := m.rowPtr[i]; p < m.rowPtr[i+1]; p++ {
			var sat bool
			s, sat = satAdd(s, m.vals[p])
			saturated = saturated || sat
		}
		sums[i] = s
	}

	return sums, saturated
}

// Mul returns the product m·other using a sparse accumulator per row,
// and whether any entry saturated. Both operands must share one order.
// Complexity: O(N + Σ_i Σ_{k∈row i} nnz(other row k)).
func (m *Matrix) Mul(other *Matrix) (*Matrix, bool) {
	out := &Matrix{n: m.n, rowPtr: make([]int, m.n+1)}
	acc := make([]int64, m.n)
	marked := make([]bool, m.n)
	saturated := false

	var touched []int
	for i := 0; i < m.n; i++ {
		touched = touched[:0]
		for p := m.rowPtr[i]; p < m.rowPtr[i+1]; p++ {
			k, v := m.colIdx[p], m.vals[p]
			for q := other.rowPtr[k]; q < other.rowPtr[k+1]; q++ {
				j := other.colIdx[q]
				prod, satM := satMul(v, other.vals[q])
				sum, satA := satAdd(acc[j], prod)
				saturated = saturated || satM || satA
				acc[j] = sum
				if !marked[j] {
					marked[j] = true
					touched = append(touched, j)
				}
			}
		}
		// emit the row in ascending column order
		insertionSortInts(touched)
		for _, j := range touched {
			out.colIdx = append(out.colIdx, j)
			out.vals = append(out.vals, acc[j])
			acc[j] = 0
			marked[j] = false
		}
		out.rowPtr[i+1] = len(out.colIdx)
	}

	return out, saturated
}

// satAdd adds two non-negative counts, clamping at MaxInt64.
func satAdd(a, b int64) (int64, bool) {
	if a > math.MaxInt64-b {
		return math.MaxInt64, true
	}

	return a + b, false
}

// satMul multiplies two non-negative counts, clamping at MaxInt64.
func satMul(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, false
	}
	if a > math.MaxInt64/b {
		return math.MaxInt64, true
	}

	return a * b, false
}

// insertionSortInts keeps row emission deterministic without pulling
// sort into the hot loop; rows touched per product are short.
func insertionSortInts(xs []int) {
	for i := 1; i < len(xs); i++ {
		for j := i; j > 0 && xs[j] < xs[j-1]; j-- {
			xs[j], xs[j-1] = xs[j-1], xs[j]
		}
	}
}
