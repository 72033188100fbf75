package cable

import (
	"testing"

	catalog "Gridline/internal/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 5 MW grid-connection feeder at 11 kV, the documented worked scenario.
func mvStudyInput() Input {
	return Input{
		PowerW:         5e6,
		VoltageV:       11000,
		PowerFactor:    0.98,
		LengthM:        500,
		System:         catalog.SystemMV,
		FaultCurrentKA: 15,
	}
}

func TestSelectMVStudyScenario(t *testing.T) {
	out, err := Select(mvStudyInput())
	require.NoError(t, err)
	require.Equal(t, StatusSelected, out.Status)
	require.NotNil(t, out.Evaluation)

	ev := out.Evaluation
	assert.InDelta(t, 267.79, ev.OperatingCurrentA, 0.01)
	// 267.79 A exceeds the 240 A rating of 95 mm², so 185 mm² is the
	// smallest compliant size.
	assert.Equal(t, 185.0, ev.Cable.CrossSectionMM2)
	assert.InDelta(t, 0.209, ev.VoltageDropPercent, 0.001)
	assert.InDelta(t, 46.67, ev.ThermalMarginPercent, 0.01)
	assert.Equal(t, ThermalPassed, ev.Thermal)
	assert.True(t, ev.Compliant)
	assert.Equal(t, 1, out.ParallelCount)
}

func TestSelectMinimality(t *testing.T) {
	in := mvStudyInput()
	out, err := Select(in)
	require.NoError(t, err)
	require.NotNil(t, out.Evaluation)

	cables, err := catalog.ForClass(in.System)
	require.NoError(t, err)
	for _, c := range cables {
		if c.CrossSectionMM2 >= out.Evaluation.Cable.CrossSectionMM2 {
			break
		}
		ev := Evaluate(in, c, catalog.DefaultDropLimit(in.System), out.ParallelCount)
		assert.False(t, ev.Compliant, "smaller size %v must not be compliant", c.CrossSectionMM2)
	}
}

func TestThermalSkipsUnderratedSizes(t *testing.T) {
	in := Input{
		PowerW:         1e6,
		VoltageV:       11000,
		PowerFactor:    0.95,
		LengthM:        200,
		System:         catalog.SystemMV,
		FaultCurrentKA: 16,
	}
	out, err := Select(in)
	require.NoError(t, err)
	require.Equal(t, StatusSelected, out.Status)
	// 50 and 95 mm² carry the current but their 1 s withstand (10, 15 kA)
	// is below the 16 kA fault level.
	assert.Equal(t, 185.0, out.Evaluation.Cable.CrossSectionMM2)
	assert.Equal(t, ThermalPassed, out.Evaluation.Thermal)
}

func TestThermalNotEvaluatedWithoutFaultCurrent(t *testing.T) {
	in := Input{
		PowerW:      1e6,
		VoltageV:    11000,
		PowerFactor: 0.95,
		LengthM:     200,
		System:      catalog.SystemMV,
	}
	out, err := Select(in)
	require.NoError(t, err)
	require.Equal(t, StatusSelected, out.Status)
	assert.Equal(t, 50.0, out.Evaluation.Cable.CrossSectionMM2)
	assert.Equal(t, ThermalNotEvaluated, out.Evaluation.Thermal)
	assert.Zero(t, out.Evaluation.ThermalMarginPercent)
	assert.True(t, out.Evaluation.Compliant)
}

func TestSelectRequiresParallel(t *testing.T) {
	in := Input{
		PowerW:      200e3,
		VoltageV:    400,
		PowerFactor: 0.9,
		LengthM:     20,
		System:      catalog.SystemLV,
	}
	out, err := Select(in)
	require.NoError(t, err)
	require.Equal(t, StatusRequiresParallel, out.Status)
	assert.Equal(t, 2, out.ParallelCount)
	assert.Equal(t, 70.0, out.Evaluation.Cable.CrossSectionMM2)
	assert.InDelta(t, 160.38, out.Evaluation.OperatingCurrentA, 0.01)
}

func TestSelectNoSolution(t *testing.T) {
	in := Input{
		PowerW:      2e6,
		VoltageV:    400,
		PowerFactor: 1,
		LengthM:     10,
		System:      catalog.SystemLV,
	}
	out, err := Select(in)
	require.NoError(t, err)
	assert.Equal(t, StatusNoSolution, out.Status)
	assert.Nil(t, out.Evaluation)
}

func TestSelectInvalidInput(t *testing.T) {
	base := mvStudyInput()

	cases := map[string]func(*Input){
		"zero power factor":      func(in *Input) { in.PowerFactor = 0 },
		"power factor above one": func(in *Input) { in.PowerFactor = 1.2 },
		"zero voltage":           func(in *Input) { in.VoltageV = 0 },
		"negative length":        func(in *Input) { in.LengthM = -1 },
		"negative fault current": func(in *Input) { in.FaultCurrentKA = -3 },
		"negative parallel":      func(in *Input) { in.ParallelCount = -1 },
		"unknown system":         func(in *Input) { in.System = "HV" },
	}
	for name, mutate := range cases {
		in := base
		mutate(&in)
		_, err := Select(in)
		assert.Error(t, err, name)
	}
}

func TestAmpacityBoundaryInclusive(t *testing.T) {
	in := Input{
		PowerW:      4.5e6,
		VoltageV:    11000,
		PowerFactor: 1,
		LengthM:     0,
		System:      catalog.SystemMV,
	}
	probe := Evaluate(in, catalog.Spec{CrossSectionMM2: 95, AmpacityA: 1, ResistanceOhmPerKM: 0.193}, 3, 1)

	// A rating exactly equal to the operating current is still compliant.
	c := catalog.Spec{CrossSectionMM2: 95, AmpacityA: probe.OperatingCurrentA, ResistanceOhmPerKM: 0.193}
	ev := Evaluate(in, c, 3, 1)
	assert.True(t, ev.AmpacityOK)
	assert.True(t, ev.Compliant)

	c.AmpacityA = probe.OperatingCurrentA * 0.999
	ev = Evaluate(in, c, 3, 1)
	assert.False(t, ev.AmpacityOK)
}

func TestVoltageDropBoundaryInclusive(t *testing.T) {
	in := mvStudyInput()
	cables, err := catalog.ForClass(in.System)
	require.NoError(t, err)
	ev := Evaluate(in, cables[2], 1, 1)
	limit := ev.VoltageDropPercent

	at := Evaluate(in, cables[2], limit, 1)
	assert.True(t, at.VoltageDropOK)
	below := Evaluate(in, cables[2], limit*0.999, 1)
	assert.False(t, below.VoltageDropOK)
}

func TestSelectMonotonicity(t *testing.T) {
	in := mvStudyInput()
	short := Evaluate(in, catalog.Spec{CrossSectionMM2: 95, AmpacityA: 240, ResistanceOhmPerKM: 0.193}, 3, 1)

	in.LengthM *= 2
	long := Evaluate(in, catalog.Spec{CrossSectionMM2: 95, AmpacityA: 240, ResistanceOhmPerKM: 0.193}, 3, 1)
	assert.Greater(t, long.VoltageDropPercent, short.VoltageDropPercent)

	double := Evaluate(in, catalog.Spec{CrossSectionMM2: 95, AmpacityA: 240, ResistanceOhmPerKM: 0.193}, 3, 2)
	assert.InDelta(t, long.OperatingCurrentA/2, double.OperatingCurrentA, 1e-9)
}

func TestSelectIdempotent(t *testing.T) {
	in := mvStudyInput()
	first, err := Select(in)
	require.NoError(t, err)
	second, err := Select(in)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
