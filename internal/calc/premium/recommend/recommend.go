package recommend

import (
	"fmt"
	"math"

	catalog "Gridline/internal/catalog"
)

type SectionRecommendInput struct {
	CurrentA float64             `json:"current_a"`
	LengthM  float64             `json:"length_m"`
	VoltageV float64             `json:"voltage_v"`
	System   catalog.SystemClass `json:"system"`
	// DropBudgetPercent defaults to the class limit (5% LV, 3% MV).
	DropBudgetPercent float64 `json:"drop_budget_percent"`
}

type SectionRecommendResult struct {
	CrossSectionMM2       float64 `json:"cross_section_mm2"`
	ResistanceOhmPerKM    float64 `json:"resistance_ohm_per_km"`
	MaxResistanceOhmPerKM float64 `json:"max_resistance_ohm_per_km"`
	Notes                 string  `json:"notes"`
}

// Section recommends the smallest catalog cross-section that both carries
// the current and keeps the run's voltage drop inside the budget. The
// resistance ceiling follows from inverting the drop formula.
func Section(in SectionRecommendInput) (SectionRecommendResult, error) {
	if in.CurrentA <= 0 || in.LengthM <= 0 || in.VoltageV <= 0 {
		return SectionRecommendResult{}, fmt.Errorf("invalid input")
	}
	class, err := catalog.ParseClass(string(in.System))
	if err != nil {
		return SectionRecommendResult{}, err
	}
	in.System = class
	cables, err := catalog.ForClass(class)
	if err != nil {
		return SectionRecommendResult{}, err
	}
	budget := in.DropBudgetPercent
	if budget <= 0 {
		budget = catalog.DefaultDropLimit(in.System)
	}

	maxR := budget / 100 * in.VoltageV / (math.Sqrt(3) * in.CurrentA * (in.LengthM / 1000))
	for _, c := range cables {
		if c.AmpacityA < in.CurrentA || c.ResistanceOhmPerKM > maxR {
			continue
		}
		return SectionRecommendResult{
			CrossSectionMM2:       c.CrossSectionMM2,
			ResistanceOhmPerKM:    c.ResistanceOhmPerKM,
			MaxResistanceOhmPerKM: maxR,
			Notes:                 "Smallest section meeting the ampacity and drop budget.",
		}, nil
	}
	return SectionRecommendResult{}, fmt.Errorf("no catalog section meets the drop budget")
}
