package study

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func studyInput() Input {
	return Input{
		VoltageV:           11e3,
		ResistanceOhmPerKM: 0.3,
		ReactanceOhmPerKM:  0.4,
		LengthKM:           5,
		GenPowerW:          5e6,
		GenPowerFactor:     0.98,
		LoadPowerW:         3e6,
		LoadPowerFactor:    0.95,
		AmpacityA:          300,
	}
}

func TestRunRejectsOversizedPlant(t *testing.T) {
	res, err := Run(studyInput())
	require.NoError(t, err)

	// 5 MW on this feeder breaks both the +/-5% band and the 80% loading
	// limit.
	assert.InDelta(t, 7.877, res.VoltageRise.RisePercent, 0.01)
	assert.False(t, res.VoltageRise.Compliant)
	assert.InDelta(t, 89.26, res.Thermal.LoadingPercent, 0.01)
	assert.False(t, res.Thermal.Compliant)
	assert.False(t, res.CanConnect)
}

func TestRunAcceptsSmallPlant(t *testing.T) {
	in := studyInput()
	in.GenPowerW = 1e6
	res, err := Run(in)
	require.NoError(t, err)

	assert.True(t, res.VoltageRise.Compliant)
	assert.True(t, res.Thermal.Compliant)
	assert.True(t, res.CanConnect)
	// With the plant covering part of the load, feeder losses fall.
	assert.Negative(t, res.LoadFlow.LossChangePercent)
}

func TestRunInvalid(t *testing.T) {
	in := studyInput()
	in.GenPowerW = 0
	_, err := Run(in)
	assert.Error(t, err)

	in = studyInput()
	in.GenPowerFactor = 0
	_, err = Run(in)
	assert.Error(t, err)
}
