package loadflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func feederInput() Input {
	// 3 MW load and 5 MW plant on a 5 km 11 kV feeder (0.3 + j0.4 ohm/km).
	return Input{
		VoltageV:           11e3,
		LoadPowerW:         3e6,
		LoadPowerFactor:    0.95,
		GenPowerW:          5e6,
		GenPowerFactor:     0.98,
		ResistanceOhmPerKM: 0.3,
		ReactanceOhmPerKM:  0.4,
		LengthKM:           5,
	}
}

func TestCalculateExportingPlant(t *testing.T) {
	res, err := Calculate(feederInput())
	require.NoError(t, err)

	assert.InDelta(t, 165.75, res.WithoutGen.CurrentA, 0.01)
	assert.InDelta(t, 10660.3, res.WithoutGen.VoltageV, 0.5)
	assert.InDelta(t, 123.6e3, res.WithoutGen.LossesW, 50)

	// Plant exceeds the load by 2 MW, so the feeder exports.
	assert.InDelta(t, 107.11, res.WithGen.CurrentA, 0.01)
	assert.InDelta(t, 10836.2, res.WithGen.VoltageV, 0.5)
	assert.InDelta(t, 51.63e3, res.WithGen.LossesW, 20)
	assert.InDelta(t, 2e6, res.InjectedW, 1)

	assert.InDelta(t, 1.60, res.VoltageChangePercent, 0.01)
	assert.InDelta(t, -58.24, res.LossChangePercent, 0.05)
	assert.Less(t, res.WithGen.CurrentA, res.WithoutGen.CurrentA)
	assert.Greater(t, res.WithGen.VoltageV, res.WithoutGen.VoltageV)
}

func TestCalculateImportingPlant(t *testing.T) {
	in := feederInput()
	in.GenPowerW = 1e6
	res, err := Calculate(in)
	require.NoError(t, err)

	// Net flow still towards the load, voltage stays below nominal.
	assert.Less(t, res.WithGen.VoltageV, in.VoltageV)
	assert.Less(t, res.WithGen.CurrentA, res.WithoutGen.CurrentA)
	assert.InDelta(t, -2e6, res.InjectedW, 1)
}

func TestCalculateNoGeneration(t *testing.T) {
	in := feederInput()
	in.GenPowerW = 0
	in.GenPowerFactor = 0
	res, err := Calculate(in)
	require.NoError(t, err)
	assert.InDelta(t, res.WithoutGen.CurrentA, res.WithGen.CurrentA, 1e-9)
	assert.InDelta(t, res.WithoutGen.VoltageV, res.WithGen.VoltageV, 1e-9)
}

func TestCalculateInvalid(t *testing.T) {
	in := feederInput()
	in.LoadPowerFactor = 0
	_, err := Calculate(in)
	assert.Error(t, err)

	in = feederInput()
	in.LengthKM = 0
	_, err = Calculate(in)
	assert.Error(t, err)

	in = feederInput()
	in.GenPowerFactor = 1.3
	_, err = Calculate(in)
	assert.Error(t, err)
}
