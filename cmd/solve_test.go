package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunSolve(t *testing.T) {
	dir := t.TempDir()
	mh := &ModelHeat{
		N:            5,
		Alpha:        0.01,
		Dt:           0.1,
		FinalTime:    0.55,
		Length:       1.0,
		OutputPrefix: filepath.Join(dir, "temperature"),
	}
	assert.NoError(t, RunSolve(mh))
	_, err := os.Stat(filepath.Join(dir, "temperature_t_0.csv"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "temperature_t_5.csv"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "temperature_all_timesteps.csv"))
	assert.NoError(t, err)

	// Bad node count surfaces as a configuration error, not a panic
	mh.N = 0
	assert.Error(t, RunSolve(mh))
}

func TestRunSweep(t *testing.T) {
	dir := t.TempDir()
	assert.NoError(t, RunSweep([]float64{0.005, 0.02}, 5, 0.1, 0.35, 1.0, dir))
	stamps, err := os.ReadDir(dir)
	assert.NoError(t, err)
	assert.Equal(t, 1, len(stamps))
	for _, alphaDir := range []string{"alpha_0.005", "alpha_0.02"} {
		_, err = os.Stat(filepath.Join(dir, stamps[0].Name(), alphaDir, "temperature_all_timesteps.csv"))
		assert.NoError(t, err)
	}
	assert.Error(t, RunSweep(nil, 5, 0.1, 0.35, 1.0, dir))
}

func TestCourantNumber(t *testing.T) {
	assert.InDelta(t, 0.0036, CourantNumber(0.01, 0.01, 1./6.), 1.e-12)
}
