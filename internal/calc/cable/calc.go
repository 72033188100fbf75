package cable

import (
	"fmt"
	"math"

	catalog "Gridline/internal/catalog"
)

type Input struct {
	PowerW         float64             `json:"power_w"`
	VoltageV       float64             `json:"voltage_v"`
	PowerFactor    float64             `json:"power_factor"`
	LengthM        float64             `json:"length_m"`
	System         catalog.SystemClass `json:"system"`
	FaultCurrentKA float64             `json:"fault_current_ka"`
	ParallelCount  int                 `json:"parallel_count"`
	// DropLimitPercent overrides the class default (5% LV, 3% MV).
	DropLimitPercent float64 `json:"drop_limit_percent"`
	// MaxParallel bounds the parallel-cable fallback search, default 4.
	MaxParallel int `json:"max_parallel"`
}

type ThermalStatus string

const (
	ThermalPassed       ThermalStatus = "passed"
	ThermalFailed       ThermalStatus = "failed"
	ThermalNotEvaluated ThermalStatus = "not_evaluated"
)

// Evaluation is the result of checking one catalog entry against the
// requirements. Thermal stays not_evaluated when either the fault current or
// the cable's withstand rating is missing, so a skipped check is never
// reported as a pass.
type Evaluation struct {
	Cable                catalog.Spec  `json:"cable"`
	OperatingCurrentA    float64       `json:"operating_current_a"`
	VoltageDropPercent   float64       `json:"voltage_drop_percent"`
	ThermalMarginPercent float64       `json:"thermal_margin_percent"`
	AmpacityOK           bool          `json:"ampacity_ok"`
	VoltageDropOK        bool          `json:"voltage_drop_ok"`
	Thermal              ThermalStatus `json:"thermal"`
	Compliant            bool          `json:"compliant"`
}

type Status string

const (
	StatusSelected         Status = "selected"
	StatusRequiresParallel Status = "requires_parallel"
	StatusNoSolution       Status = "no_solution"
)

type Outcome struct {
	Status        Status      `json:"status"`
	ParallelCount int         `json:"parallel_count,omitempty"`
	Evaluation    *Evaluation `json:"evaluation,omitempty"`
	Notes         string      `json:"notes"`
}

const defaultMaxParallel = 4

func validate(in *Input) error {
	if in.PowerW <= 0 {
		return fmt.Errorf("invalid power")
	}
	if in.VoltageV <= 0 {
		return fmt.Errorf("invalid voltage")
	}
	if in.PowerFactor <= 0 || in.PowerFactor > 1 {
		return fmt.Errorf("invalid power factor")
	}
	if in.LengthM < 0 {
		return fmt.Errorf("invalid length")
	}
	if in.FaultCurrentKA < 0 {
		return fmt.Errorf("invalid fault current")
	}
	if in.ParallelCount < 0 {
		return fmt.Errorf("invalid parallel count")
	}
	if in.ParallelCount == 0 {
		in.ParallelCount = 1
	}
	if in.MaxParallel <= 0 {
		in.MaxParallel = defaultMaxParallel
	}
	return nil
}

// Evaluate checks a single catalog entry with the total current split across
// parallel conductors.
func Evaluate(in Input, cable catalog.Spec, limit float64, parallel int) Evaluation {
	current := in.PowerW / (math.Sqrt(3) * in.VoltageV * in.PowerFactor * float64(parallel))
	drop := math.Sqrt(3) * current * cable.ResistanceOhmPerKM * (in.LengthM / 1000) / in.VoltageV * 100

	ev := Evaluation{
		Cable:              cable,
		OperatingCurrentA:  current,
		VoltageDropPercent: drop,
		AmpacityOK:         current <= cable.AmpacityA,
		VoltageDropOK:      drop <= limit,
		Thermal:            ThermalNotEvaluated,
	}
	if in.FaultCurrentKA > 0 && cable.ThermalWithstandKA > 0 {
		ev.ThermalMarginPercent = cable.ThermalWithstandKA/in.FaultCurrentKA*100 - 100
		if ev.ThermalMarginPercent >= 0 {
			ev.Thermal = ThermalPassed
		} else {
			ev.Thermal = ThermalFailed
		}
	}
	ev.Compliant = ev.AmpacityOK && ev.VoltageDropOK && ev.Thermal != ThermalFailed
	return ev
}

// Select scans the catalog in ascending size order and returns the smallest
// compliant entry. When no single cable complies at the requested parallel
// count, the count is raised up to MaxParallel before declaring no solution.
// A no_solution outcome is a result, not an error.
func Select(in Input) (Outcome, error) {
	if err := validate(&in); err != nil {
		return Outcome{}, err
	}
	class, err := catalog.ParseClass(string(in.System))
	if err != nil {
		return Outcome{}, err
	}
	in.System = class
	cables, err := catalog.ForClass(class)
	if err != nil {
		return Outcome{}, err
	}
	limit := in.DropLimitPercent
	if limit <= 0 {
		limit = catalog.DefaultDropLimit(in.System)
	}

	if ev := scan(in, cables, limit, in.ParallelCount); ev != nil {
		return Outcome{
			Status:        StatusSelected,
			ParallelCount: in.ParallelCount,
			Evaluation:    ev,
			Notes:         "Smallest catalog size passing ampacity, voltage-drop and thermal checks.",
		}, nil
	}

	start := in.ParallelCount + 1
	if start < 2 {
		start = 2
	}
	for count := start; count <= in.MaxParallel; count++ {
		if ev := scan(in, cables, limit, count); ev != nil {
			return Outcome{
				Status:        StatusRequiresParallel,
				ParallelCount: count,
				Evaluation:    ev,
				Notes:         fmt.Sprintf("Requested run not compliant; %d parallel conductors per phase required.", count),
			}, nil
		}
	}
	return Outcome{
		Status: StatusNoSolution,
		Notes:  fmt.Sprintf("No suitable cable found up to %d parallel conductors.", in.MaxParallel),
	}, nil
}

func scan(in Input, cables []catalog.Spec, limit float64, parallel int) *Evaluation {
	for _, cable := range cables {
		ev := Evaluate(in, cable, limit, parallel)
		if ev.Compliant {
			return &ev
		}
	}
	return nil
}
