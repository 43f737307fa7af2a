package CD1D

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGrid1D(t *testing.T) {
	// Reference scenario: 5 nodes on a unit rod
	{
		g, err := NewGrid1D(1, 5)
		assert.NoError(t, err)
		assert.True(t, near(g.Dx, 1./6.))
		for i, x := range []float64{1. / 6., 2. / 6., 0.5, 4. / 6., 5. / 6.} {
			assert.True(t, near(g.X.AtVec(i), x))
		}
	}
	// Invalid configurations are rejected before any matrix work
	{
		_, err := NewGrid1D(1, 0)
		assert.Error(t, err)
		_, err = NewGrid1D(1, -3)
		assert.Error(t, err)
		_, err = NewGrid1D(0, 10)
		assert.Error(t, err)
		_, err = NewGrid1D(-1, 10)
		assert.Error(t, err)
	}
}

func near(a, b float64) (l bool) {
	if math.Abs(a-b) < 1.e-08*math.Abs(a) || math.Abs(a-b) < 1.e-10 {
		l = true
	}
	return
}
