package InputParameters

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	fileInput := []byte(`
Title: Hot Pulse Reference Case
Alpha: 0.01
Dt: 0.002
FinalTime: 1.
NodeCount: 100
DomainLength: 1.
OutputPrefix: results/temperature
`)
	var input InputParameters1D
	assert.NoError(t, input.Parse(fileInput))
	assert.Equal(t, 0.01, input.Alpha)
	assert.Equal(t, 0.002, input.Dt)
	assert.Equal(t, 1., input.FinalTime)
	assert.Equal(t, 100, input.NodeCount)
	assert.Equal(t, 1., input.DomainLength)
	assert.Equal(t, "results/temperature", input.OutputPrefix)
	input.Print()
}
