package study

import (
	"fmt"

	loadflow "Gridline/internal/calc/loadflow"
	thermal "Gridline/internal/calc/thermal"
	voltagerise "Gridline/internal/calc/voltagerise"
)

// Input holds the parameters of a full grid-connection study: one feeder,
// one existing load and one proposed generation plant.
type Input struct {
	VoltageV           float64 `json:"voltage_v"`
	ResistanceOhmPerKM float64 `json:"resistance_ohm_per_km"`
	ReactanceOhmPerKM  float64 `json:"reactance_ohm_per_km"`
	LengthKM           float64 `json:"length_km"`
	GenPowerW          float64 `json:"gen_power_w"`
	GenPowerFactor     float64 `json:"gen_power_factor"`
	LoadPowerW         float64 `json:"load_power_w"`
	LoadPowerFactor    float64 `json:"load_power_factor"`
	AmpacityA          float64 `json:"ampacity_a"`
	// Grid-code overrides; defaults are +/-5% voltage and 80% loading.
	VoltageLimitPercent float64 `json:"voltage_limit_percent"`
	LoadingLimitPercent float64 `json:"loading_limit_percent"`
}

type Result struct {
	VoltageRise voltagerise.Result `json:"voltage_rise"`
	Thermal     thermal.Result     `json:"thermal"`
	LoadFlow    loadflow.Result    `json:"load_flow"`
	CanConnect  bool               `json:"can_connect"`
	Notes       string             `json:"notes"`
}

// Run evaluates voltage rise, thermal loading and the load-flow comparison
// for the plant and combines them into one connection verdict.
func Run(in Input) (Result, error) {
	if in.GenPowerW <= 0 {
		return Result{}, fmt.Errorf("invalid generation power")
	}

	vr, err := voltagerise.Calculate(voltagerise.Input{
		PowerW:             in.GenPowerW,
		PowerFactor:        in.GenPowerFactor,
		VoltageV:           in.VoltageV,
		ResistanceOhmPerKM: in.ResistanceOhmPerKM,
		ReactanceOhmPerKM:  in.ReactanceOhmPerKM,
		LengthKM:           in.LengthKM,
		LimitPercent:       in.VoltageLimitPercent,
	})
	if err != nil {
		return Result{}, fmt.Errorf("voltage rise: %w", err)
	}

	th, err := thermal.Calculate(thermal.Input{
		PowerW:             in.GenPowerW,
		VoltageV:           in.VoltageV,
		PowerFactor:        in.GenPowerFactor,
		ResistanceOhmPerKM: in.ResistanceOhmPerKM,
		LengthKM:           in.LengthKM,
		AmpacityA:          in.AmpacityA,
		LimitPercent:       in.LoadingLimitPercent,
	})
	if err != nil {
		return Result{}, fmt.Errorf("thermal loading: %w", err)
	}

	lf, err := loadflow.Calculate(loadflow.Input{
		VoltageV:           in.VoltageV,
		LoadPowerW:         in.LoadPowerW,
		LoadPowerFactor:    in.LoadPowerFactor,
		GenPowerW:          in.GenPowerW,
		GenPowerFactor:     in.GenPowerFactor,
		ResistanceOhmPerKM: in.ResistanceOhmPerKM,
		ReactanceOhmPerKM:  in.ReactanceOhmPerKM,
		LengthKM:           in.LengthKM,
	})
	if err != nil {
		return Result{}, fmt.Errorf("load flow: %w", err)
	}

	res := Result{
		VoltageRise: vr,
		Thermal:     th,
		LoadFlow:    lf,
		CanConnect:  vr.Compliant && th.Compliant,
	}
	if res.CanConnect {
		res.Notes = "Plant complies with voltage-rise and thermal grid-code limits."
	} else {
		res.Notes = "Grid-code violation detected; reinforce the feeder or curtail the plant."
	}
	return res, nil
}
