package Heat1D

import (
	"fmt"

	"github.com/numlab/goheat/CD1D"
	"github.com/numlab/goheat/utils"
)

// CrankNicolson is the implicit time-step system
//
//	LHS * T^{n+1} = RHS * T^n
//	LHS = A - (alpha*dt/2) * B
//	RHS = A + (alpha*dt/2) * B
//
// LHS is factorized exactly once at construction; every Advance is then
// a matrix-vector product plus a back substitution against the stored
// factorization. The grid, alpha and dt are time invariant, so the
// factorization never needs refreshing.
type CrankNicolson struct {
	Alpha, Dt float64
	LHS, RHS  utils.Matrix
	solver    *utils.LU
}

func NewCrankNicolson(op *CD1D.CompactOperators, alpha, dt float64) (cn *CrankNicolson, err error) {
	if alpha < 0 {
		err = fmt.Errorf("invalid configuration: diffusivity must be non-negative, got %v", alpha)
		return
	}
	if dt <= 0 {
		err = fmt.Errorf("invalid configuration: time step must be positive, got %v", dt)
		return
	}
	var (
		factor = 0.5 * alpha * dt
		LHS    = op.A.Copy().Subtract(op.B.Copy().Scale(factor))
		RHS    = op.A.Copy().Add(op.B.Copy().Scale(factor))
	)
	cn = &CrankNicolson{
		Alpha: alpha,
		Dt:    dt,
		LHS:   LHS,
		RHS:   RHS,
	}
	if cn.solver, err = utils.NewLU(cn.LHS); err != nil {
		err = fmt.Errorf("singular time-step system: %v", err)
		cn = nil
		return
	}
	cn.LHS.SetReadOnly("LHS")
	cn.RHS.SetReadOnly("RHS")
	return
}

// Advance maps the field at one time level to the next. The result is a
// freshly allocated vector, never an alias of the input.
func (cn *CrankNicolson) Advance(T utils.Vector) (Tn utils.Vector, err error) {
	b := cn.RHS.MulVec(T)
	if Tn, err = cn.solver.Solve(b); err != nil {
		return
	}
	if utils.IsNan(Tn.RawVector().Data) {
		err = fmt.Errorf("solve produced NaN, system is too ill-conditioned")
	}
	return
}
