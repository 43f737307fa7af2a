package writefiles

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/numlab/goheat/CD1D"
	"github.com/numlab/goheat/model_problems/Heat1D"
)

func TestWriteFiles(t *testing.T) {
	var (
		dir    = t.TempDir()
		prefix = filepath.Join(dir, "results", "temperature")
	)
	g, err := CD1D.NewGrid1D(1, 5)
	assert.NoError(t, err)
	c, err := Heat1D.NewHeat1D(0.01, 0.1, 0.35, g)
	assert.NoError(t, err)
	assert.NoError(t, c.Run())
	assert.Equal(t, 4, len(c.History()))

	assert.NoError(t, WriteSnapshots(prefix, g, c.History()))
	assert.NoError(t, WriteAggregate(prefix, g, c.History(), c.Dt))

	// One snapshot per time level, header plus one line per node
	for k := 0; k < 4; k++ {
		data, err := os.ReadFile(fmt.Sprintf("%s_t_%d.csv", prefix, k))
		assert.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(string(data)), "\n")
		assert.Equal(t, 6, len(lines))
		assert.Equal(t, "x,Temperature", lines[0])
	}
	// The initial snapshot carries the hot pulse: only the midpoint node
	// x=0.5 lies in [0.4, 0.6] on this grid
	{
		data, _ := os.ReadFile(prefix + "_t_0.csv")
		lines := strings.Split(strings.TrimSpace(string(data)), "\n")
		assert.Equal(t, "0.5,100", lines[3])
		assert.True(t, strings.HasSuffix(lines[1], ",0"))
	}
	// Aggregate: header plus nodes*levels rows, time-major ordering
	{
		data, err := os.ReadFile(prefix + "_all_timesteps.csv")
		assert.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(string(data)), "\n")
		assert.Equal(t, 1+5*4, len(lines))
		assert.Equal(t, "t,x,Temperature", lines[0])
		assert.True(t, strings.HasPrefix(lines[1], "0,"))
		assert.True(t, strings.HasPrefix(lines[6], "0.1,"))
	}
}
