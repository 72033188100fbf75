package voltagerise

import (
	"fmt"
	"math"
)

type Input struct {
	PowerW             float64 `json:"power_w"`
	PowerFactor        float64 `json:"power_factor"`
	VoltageV           float64 `json:"voltage_v"`
	ResistanceOhmPerKM float64 `json:"resistance_ohm_per_km"`
	ReactanceOhmPerKM  float64 `json:"reactance_ohm_per_km"`
	LengthKM           float64 `json:"length_km"`
	LimitPercent       float64 `json:"limit_percent"`
}

type Result struct {
	ReactivePowerVAR float64 `json:"reactive_power_var"`
	RiseVolts        float64 `json:"rise_volts"`
	RisePercent      float64 `json:"rise_percent"`
	VoltageAfterV    float64 `json:"voltage_after_v"`
	VoltagePercent   float64 `json:"voltage_percent"`
	Compliant        bool    `json:"compliant"`
	Notes            string  `json:"notes"`
}

// ReactivePower derives Q from active power and a lagging power factor.
func ReactivePower(powerW, pf float64) float64 {
	if pf >= 1 {
		return 0
	}
	return powerW * math.Tan(math.Acos(pf))
}

// Calculate applies the approximate feeder voltage-rise formula
// dV = (P*R + Q*X) / V and checks the result against the grid-code band
// of nominal +/- limit.
func Calculate(in Input) (Result, error) {
	if in.PowerW <= 0 || in.VoltageV <= 0 || in.LengthKM <= 0 {
		return Result{}, fmt.Errorf("invalid input")
	}
	if in.PowerFactor <= 0 || in.PowerFactor > 1 {
		return Result{}, fmt.Errorf("invalid power factor")
	}
	if in.LimitPercent <= 0 {
		in.LimitPercent = 5
	}

	r := in.ResistanceOhmPerKM * in.LengthKM
	x := in.ReactanceOhmPerKM * in.LengthKM
	q := ReactivePower(in.PowerW, in.PowerFactor)

	riseV := (in.PowerW*r + q*x) / in.VoltageV
	risePct := riseV / in.VoltageV * 100
	after := in.VoltageV + riseV
	afterPct := after / in.VoltageV * 100

	return Result{
		ReactivePowerVAR: q,
		RiseVolts:        riseV,
		RisePercent:      risePct,
		VoltageAfterV:    after,
		VoltagePercent:   afterPct,
		Compliant:        afterPct >= 100-in.LimitPercent && afterPct <= 100+in.LimitPercent,
		Notes:            "Approximate voltage rise at the point of connection.",
	}, nil
}
