package Heat1D

import (
	"fmt"
	"math"

	"github.com/numlab/goheat/CD1D"
	"github.com/numlab/goheat/utils"
)

// Hot-pulse initial condition of the reference case: 100 degrees on the
// band 0.4 <= x <= 0.6, zero elsewhere.
const (
	PulseLeft  = 0.4
	PulseRight = 0.6
	PulseTemp  = 100.
)

// Heat1D advances the temperature field on a rod with adiabatic ends,
// using the fourth-order compact spatial operators and Crank-Nicolson in
// time. Stepping is strictly sequential: the state at level k+1 is a
// pure function of the state at level k.
type Heat1D struct {
	// Input parameters
	Alpha, Dt, FinalTime float64
	Grid                 *CD1D.Grid1D
	Ops                  *CD1D.CompactOperators
	CN                   *CrankNicolson
	NSteps               int
	T                    utils.Vector   // Current field
	THistory             []utils.Vector // One entry per time level, THistory[0] is the IC
}

// NewHeat1D validates the configuration eagerly, builds the operators,
// factorizes the time-step system and seeds the history with the initial
// condition. ICO optionally overrides the default hot-pulse profile.
func NewHeat1D(alpha, dt, finalTime float64, g *CD1D.Grid1D, ICO ...utils.Vector) (c *Heat1D, err error) {
	if g == nil {
		err = fmt.Errorf("invalid configuration: grid is required")
		return
	}
	if finalTime < 0 {
		err = fmt.Errorf("invalid configuration: total time must be non-negative, got %v", finalTime)
		return
	}
	c = &Heat1D{
		Alpha:     alpha,
		Dt:        dt,
		FinalTime: finalTime,
		Grid:      g,
	}
	c.Ops = CD1D.NewCompactOperators(g)
	if c.CN, err = NewCrankNicolson(c.Ops, alpha, dt); err != nil {
		c = nil
		return
	}
	// The step count is fixed here, before stepping begins
	c.NSteps = int(math.Floor(finalTime / dt))
	if len(ICO) != 0 {
		if ICO[0].Len() != g.N {
			err = fmt.Errorf("invalid configuration: initial condition has %d nodes, grid has %d", ICO[0].Len(), g.N)
			c = nil
			return
		}
		c.T = ICO[0].Copy()
	} else {
		c.T = HotPulse(g)
	}
	c.THistory = append(c.THistory, c.T)
	return
}

// HotPulse builds the reference rectangular initial profile on g.
func HotPulse(g *CD1D.Grid1D) (T utils.Vector) {
	T = utils.NewVector(g.N, utils.ConstArray(g.N, 0))
	for i := 0; i < g.N; i++ {
		if x := g.X.AtVec(i); x >= PulseLeft && x <= PulseRight {
			T.Set(i, PulseTemp)
		}
	}
	return
}

// Run performs NSteps advances, appending each new field to the history.
// The optional progress callback is invoked after every completed step;
// console reporting cadence is the caller's concern. A numerically
// failing solve aborts the run with the failing step index.
func (c *Heat1D) Run(progress ...func(step, nsteps int)) (err error) {
	var (
		TNext utils.Vector
	)
	for tstep := 0; tstep < c.NSteps; tstep++ {
		if TNext, err = c.CN.Advance(c.T); err != nil {
			return fmt.Errorf("solve failed at step %d of %d: %v", tstep+1, c.NSteps, err)
		}
		c.T = TNext
		c.THistory = append(c.THistory, c.T)
		if len(progress) != 0 {
			progress[0](tstep+1, c.NSteps)
		}
	}
	return
}

// HeatContent is the dx-weighted sum of a field, the discrete invariant
// conserved by the zero-flux boundary rows.
func (c *Heat1D) HeatContent(T utils.Vector) float64 {
	return T.Sum() * c.Grid.Dx
}

// History returns the computed time levels in ascending time order, one
// vector per level in ascending node order.
func (c *Heat1D) History() []utils.Vector {
	return c.THistory
}
