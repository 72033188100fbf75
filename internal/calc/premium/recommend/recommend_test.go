package recommend

import (
	"testing"

	catalog "Gridline/internal/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSection(t *testing.T) {
	res, err := Section(SectionRecommendInput{
		CurrentA: 200,
		LengthM:  1000,
		VoltageV: 11000,
		System:   catalog.SystemMV,
	})
	require.NoError(t, err)
	// 50 mm2 is ruled out by ampacity (150 A), 95 mm2 fits both criteria.
	assert.Equal(t, 95.0, res.CrossSectionMM2)
	assert.Equal(t, 0.193, res.ResistanceOhmPerKM)
	assert.InDelta(t, 0.9526, res.MaxResistanceOhmPerKM, 0.001)
}

func TestSectionTightBudget(t *testing.T) {
	_, err := Section(SectionRecommendInput{
		CurrentA:          200,
		LengthM:           1000,
		VoltageV:          11000,
		System:            catalog.SystemMV,
		DropBudgetPercent: 0.005,
	})
	assert.Error(t, err)
}

func TestSectionInvalid(t *testing.T) {
	_, err := Section(SectionRecommendInput{CurrentA: 0, LengthM: 100, VoltageV: 400, System: catalog.SystemLV})
	assert.Error(t, err)
	_, err = Section(SectionRecommendInput{CurrentA: 50, LengthM: 100, VoltageV: 400, System: "HV"})
	assert.Error(t, err)
}
