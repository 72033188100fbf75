package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForClass(t *testing.T) {
	lv, err := ForClass(SystemLV)
	require.NoError(t, err)
	assert.Len(t, lv, 5)
	assert.Equal(t, 16.0, lv[0].CrossSectionMM2)
	assert.Equal(t, 76.0, lv[0].AmpacityA)
	assert.Equal(t, 70.0, lv[4].CrossSectionMM2)

	mv, err := ForClass(SystemMV)
	require.NoError(t, err)
	assert.Len(t, mv, 4)
	assert.Equal(t, 95.0, mv[1].CrossSectionMM2)
	assert.Equal(t, 240.0, mv[1].AmpacityA)
	assert.Equal(t, 0.193, mv[1].ResistanceOhmPerKM)
	assert.Equal(t, 15.0, mv[1].ThermalWithstandKA)

	_, err = ForClass("HV")
	assert.Error(t, err)
}

func TestCatalogsAscending(t *testing.T) {
	for _, class := range []SystemClass{SystemLV, SystemMV} {
		cables, err := ForClass(class)
		require.NoError(t, err)
		for i := 1; i < len(cables); i++ {
			assert.Greater(t, cables[i].CrossSectionMM2, cables[i-1].CrossSectionMM2)
		}
	}
}

func TestDefaultDropLimit(t *testing.T) {
	assert.Equal(t, 5.0, DefaultDropLimit(SystemLV))
	assert.Equal(t, 3.0, DefaultDropLimit(SystemMV))
}

func TestParseClass(t *testing.T) {
	c, err := ParseClass(" lv ")
	require.NoError(t, err)
	assert.Equal(t, SystemLV, c)

	c, err = ParseClass("MV")
	require.NoError(t, err)
	assert.Equal(t, SystemMV, c)

	_, err = ParseClass("ehv")
	assert.Error(t, err)
}
