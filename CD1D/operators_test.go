package CD1D

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompactOperators(t *testing.T) {
	// Interior stencil coefficients
	{
		g, _ := NewGrid1D(1, 5)
		op := NewCompactOperators(g)
		dx2 := g.Dx * g.Dx
		for i := 1; i < g.N-1; i++ {
			assert.True(t, near(op.A.At(i, i-1), 1./6.))
			assert.True(t, near(op.A.At(i, i), 4./6.))
			assert.True(t, near(op.A.At(i, i+1), 1./6.))
			assert.True(t, near(op.B.At(i, i-1), 1./dx2))
			assert.True(t, near(op.B.At(i, i), -2./dx2))
			assert.True(t, near(op.B.At(i, i+1), 1./dx2))
		}
		// Entries outside the stencil stay zero
		assert.Equal(t, 0., op.A.At(0, 2))
		assert.Equal(t, 0., op.B.At(2, 0))
	}
	// Boundary rows encode the mirrored ghost nodes for every n >= 2
	for _, n := range []int{2, 3, 5, 17, 100} {
		g, _ := NewGrid1D(1, n)
		op := NewCompactOperators(g)
		dx2 := g.Dx * g.Dx
		assert.True(t, near(op.A.At(0, 0), 4./6.))
		assert.True(t, near(op.A.At(0, 1), 2./6.))
		assert.True(t, near(op.B.At(0, 0), -2./dx2))
		assert.True(t, near(op.B.At(0, 1), 2./dx2))
		assert.True(t, near(op.A.At(n-1, n-2), 2./6.))
		assert.True(t, near(op.A.At(n-1, n-1), 4./6.))
		assert.True(t, near(op.B.At(n-1, n-2), 2./dx2))
		assert.True(t, near(op.B.At(n-1, n-1), -2./dx2))
	}
	// Zero row sums in B: the discrete operator annihilates constant
	// fields, which is the zero-flux conservation property
	{
		g, _ := NewGrid1D(1, 8)
		op := NewCompactOperators(g)
		for i := 0; i < g.N; i++ {
			assert.True(t, near(op.B.Row(i).Sum(), 0))
		}
	}
	// Idempotent construction: identical grids produce bit-identical
	// operators
	{
		g1, _ := NewGrid1D(1, 7)
		g2, _ := NewGrid1D(1, 7)
		op1 := NewCompactOperators(g1)
		op2 := NewCompactOperators(g2)
		assert.Equal(t, op1.A.RawMatrix().Data, op2.A.RawMatrix().Data)
		assert.Equal(t, op1.B.RawMatrix().Data, op2.B.RawMatrix().Data)
	}
	// Degenerate single-node grid: identity coupling, zero derivative
	{
		g, _ := NewGrid1D(1, 1)
		op := NewCompactOperators(g)
		assert.Equal(t, 1., op.A.At(0, 0))
		assert.Equal(t, 0., op.B.At(0, 0))
	}
	// Operators are read only once built
	{
		g, _ := NewGrid1D(1, 4)
		op := NewCompactOperators(g)
		assert.Panics(t, func() { op.A.Set(0, 0, 1) })
		assert.Panics(t, func() { op.B.Set(0, 0, 1) })
	}
}
