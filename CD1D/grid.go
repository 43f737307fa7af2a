package CD1D

import (
	"fmt"

	"github.com/numlab/goheat/utils"
)

// Grid1D is the uniform node layout for the rod. Nodes are 1-indexed
// against the domain: node i sits at i*Dx, with the ghost nodes at x=0
// and x=Length implied by the symmetry boundary treatment and never
// stored.
type Grid1D struct {
	Length float64 // Physical domain length
	N      int     // Number of interior nodes
	Dx     float64
	X      utils.Vector // Node coordinates, X[i] = (i+1)*Dx
}

func NewGrid1D(length float64, n int) (g *Grid1D, err error) {
	if n <= 0 {
		err = fmt.Errorf("invalid configuration: node count must be positive, got %d", n)
		return
	}
	if length <= 0 {
		err = fmt.Errorf("invalid configuration: domain length must be positive, got %v", length)
		return
	}
	var (
		dx = length / float64(n+1)
		x  = make([]float64, n)
	)
	for i := range x {
		x[i] = float64(i+1) * dx
	}
	g = &Grid1D{
		Length: length,
		N:      n,
		Dx:     dx,
		X:      utils.NewVector(n, x),
	}
	return
}
