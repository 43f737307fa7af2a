package utils

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// CondLimit is the condition number above which a factorized system is
// treated as numerically singular.
const CondLimit = 1.e15

// LU holds a one-time LU decomposition of a square matrix, supporting
// repeated solves against the same factorization. The factorization cost
// is O(n^3) paid once; each Solve is O(n^2).
type LU struct {
	lu mat.LU
	n  int
}

func NewLU(A Matrix) (l *LU, err error) {
	var (
		nr, nc = A.Dims()
	)
	if nr != nc {
		err = fmt.Errorf("matrix must be square to factorize, dims = %v,%v", nr, nc)
		return
	}
	l = &LU{n: nr}
	l.lu.Factorize(A.M)
	if cond := l.lu.Cond(); math.IsInf(cond, 1) || math.IsNaN(cond) || cond > CondLimit {
		err = fmt.Errorf("matrix is singular to working precision, condition number = %8.5e", cond)
		l = nil
		return
	}
	return
}

func (l *LU) Solve(b Vector) (X Vector, err error) {
	if b.Len() != l.n {
		err = fmt.Errorf("dimension mismatch in solve: n = %v, len(b) = %v", l.n, b.Len())
		return
	}
	X = NewVector(l.n)
	if err = l.lu.SolveVecTo(X.V, false, b.V); err != nil {
		err = fmt.Errorf("linear solve failed: %v", err)
	}
	return
}
