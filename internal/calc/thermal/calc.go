package thermal

import (
	"fmt"
	"math"
)

type Input struct {
	PowerW             float64 `json:"power_w"`
	VoltageV           float64 `json:"voltage_v"`
	PowerFactor        float64 `json:"power_factor"`
	ResistanceOhmPerKM float64 `json:"resistance_ohm_per_km"`
	LengthKM           float64 `json:"length_km"`
	AmpacityA          float64 `json:"ampacity_a"`
	// LimitPercent is the allowed continuous loading, default 80%.
	LimitPercent float64 `json:"limit_percent"`
}

type Result struct {
	CurrentA       float64 `json:"current_a"`
	LossesW        float64 `json:"losses_w"`
	LossPercent    float64 `json:"loss_percent"`
	LoadingPercent float64 `json:"loading_percent"`
	MarginA        float64 `json:"margin_a"`
	Compliant      bool    `json:"compliant"`
	Notes          string  `json:"notes"`
}

// Current is the three-phase line current for a given power transfer.
func Current(powerW, voltageV, pf float64) float64 {
	return powerW / (math.Sqrt(3) * voltageV * pf)
}

// LineLosses is the resistive loss across all three phases.
func LineLosses(currentA, resistanceOhm float64) float64 {
	return 3 * currentA * currentA * resistanceOhm
}

func Calculate(in Input) (Result, error) {
	if in.PowerW <= 0 || in.VoltageV <= 0 || in.AmpacityA <= 0 {
		return Result{}, fmt.Errorf("invalid input")
	}
	if in.PowerFactor <= 0 || in.PowerFactor > 1 {
		return Result{}, fmt.Errorf("invalid power factor")
	}
	if in.LengthKM < 0 {
		return Result{}, fmt.Errorf("invalid length")
	}
	if in.LimitPercent <= 0 {
		in.LimitPercent = 80
	}

	current := Current(in.PowerW, in.VoltageV, in.PowerFactor)
	losses := LineLosses(current, in.ResistanceOhmPerKM*in.LengthKM)
	loading := current / in.AmpacityA * 100

	return Result{
		CurrentA:       current,
		LossesW:        losses,
		LossPercent:    losses / in.PowerW * 100,
		LoadingPercent: loading,
		MarginA:        in.AmpacityA - current,
		Compliant:      loading <= in.LimitPercent,
		Notes:          "Continuous thermal loading against line ampacity.",
	}, nil
}
