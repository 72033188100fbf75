package catalog

import (
	"fmt"
	"strings"
)

type SystemClass string

const (
	SystemLV SystemClass = "LV"
	SystemMV SystemClass = "MV"
)

// Spec is one row of a cable catalog. ThermalWithstandKA is the 1-second
// short-circuit rating; zero means the entry carries no thermal rating.
type Spec struct {
	CrossSectionMM2    float64 `json:"cross_section_mm2"`
	AmpacityA          float64 `json:"ampacity_a"`
	ResistanceOhmPerKM float64 `json:"resistance_ohm_per_km"`
	ThermalWithstandKA float64 `json:"thermal_withstand_ka"`
}

// Tables are ordered by ascending cross-section so a first-fit scan
// returns the smallest suitable size.
var lvCables = []Spec{
	{CrossSectionMM2: 16, AmpacityA: 76, ResistanceOhmPerKM: 1.15, ThermalWithstandKA: 5.0},
	{CrossSectionMM2: 25, AmpacityA: 101, ResistanceOhmPerKM: 0.727, ThermalWithstandKA: 7.5},
	{CrossSectionMM2: 35, AmpacityA: 125, ResistanceOhmPerKM: 0.524, ThermalWithstandKA: 10.0},
	{CrossSectionMM2: 50, AmpacityA: 150, ResistanceOhmPerKM: 0.387, ThermalWithstandKA: 13.0},
	{CrossSectionMM2: 70, AmpacityA: 195, ResistanceOhmPerKM: 0.268, ThermalWithstandKA: 18.0},
}

var mvCables = []Spec{
	{CrossSectionMM2: 50, AmpacityA: 150, ResistanceOhmPerKM: 0.39, ThermalWithstandKA: 10.0},
	{CrossSectionMM2: 95, AmpacityA: 240, ResistanceOhmPerKM: 0.193, ThermalWithstandKA: 15.0},
	{CrossSectionMM2: 185, AmpacityA: 355, ResistanceOhmPerKM: 0.099, ThermalWithstandKA: 22.0},
	{CrossSectionMM2: 300, AmpacityA: 460, ResistanceOhmPerKM: 0.060, ThermalWithstandKA: 30.0},
}

// ForClass returns the catalog for a system class. Callers must treat the
// returned slice as read-only.
func ForClass(class SystemClass) ([]Spec, error) {
	switch class {
	case SystemLV:
		return lvCables, nil
	case SystemMV:
		return mvCables, nil
	default:
		return nil, fmt.Errorf("unknown system class %q", class)
	}
}

// DefaultDropLimit is the voltage-drop limit in percent for a system class.
func DefaultDropLimit(class SystemClass) float64 {
	if class == SystemMV {
		return 3
	}
	return 5
}

func ParseClass(s string) (SystemClass, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "LV":
		return SystemLV, nil
	case "MV":
		return SystemMV, nil
	default:
		return "", fmt.Errorf("unknown system class %q", s)
	}
}
