package batch

import (
	"testing"

	cable "Gridline/internal/calc/cable"
	catalog "Gridline/internal/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateSizing(t *testing.T) {
	in := SizingBatchInput{Items: []cable.Input{
		{PowerW: 5e6, VoltageV: 11000, PowerFactor: 0.98, LengthM: 500, System: catalog.SystemMV},
		{PowerW: 50e3, VoltageV: 400, PowerFactor: 0.9, LengthM: 40, System: catalog.SystemLV},
	}}
	out, err := CalculateSizing(in)
	require.NoError(t, err)
	require.Len(t, out.Results, 2)
	assert.Equal(t, cable.StatusSelected, out.Results[0].Status)
	assert.Equal(t, 185.0, out.Results[0].Evaluation.Cable.CrossSectionMM2)
	assert.Equal(t, cable.StatusSelected, out.Results[1].Status)
}

func TestCalculateSizingEmpty(t *testing.T) {
	_, err := CalculateSizing(SizingBatchInput{})
	assert.Error(t, err)
}

func TestCalculateSizingBadItem(t *testing.T) {
	in := SizingBatchInput{Items: []cable.Input{
		{PowerW: 5e6, VoltageV: 11000, PowerFactor: 0, LengthM: 500, System: catalog.SystemMV},
	}}
	_, err := CalculateSizing(in)
	assert.Error(t, err)
}
