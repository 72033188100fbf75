package loadflow

import (
	"fmt"
	"math"
)

// Input describes a radial feeder with a load bus; the generation fields
// model a PV or wind plant injecting at the same bus.
type Input struct {
	VoltageV           float64 `json:"voltage_v"`
	LoadPowerW         float64 `json:"load_power_w"`
	LoadPowerFactor    float64 `json:"load_power_factor"`
	GenPowerW          float64 `json:"gen_power_w"`
	GenPowerFactor     float64 `json:"gen_power_factor"`
	ResistanceOhmPerKM float64 `json:"resistance_ohm_per_km"`
	ReactanceOhmPerKM  float64 `json:"reactance_ohm_per_km"`
	LengthKM           float64 `json:"length_km"`
}

// Case is the feeder state for one operating condition.
type Case struct {
	VoltageV float64 `json:"voltage_v"`
	CurrentA float64 `json:"current_a"`
	LossesW  float64 `json:"losses_w"`
}

type Result struct {
	WithoutGen           Case    `json:"without_gen"`
	WithGen              Case    `json:"with_gen"`
	InjectedW            float64 `json:"injected_w"`
	VoltageChangePercent float64 `json:"voltage_change_percent"`
	LossChangePercent    float64 `json:"loss_change_percent"`
	Notes                string  `json:"notes"`
}

func reactive(powerW, pf float64) float64 {
	if pf >= 1 {
		return 0
	}
	return powerW * math.Tan(math.Acos(pf))
}

// Calculate compares the feeder with and without the generation plant:
// load-bus voltage, line current and resistive losses for both cases.
func Calculate(in Input) (Result, error) {
	if in.VoltageV <= 0 || in.LoadPowerW <= 0 || in.GenPowerW < 0 || in.LengthKM <= 0 {
		return Result{}, fmt.Errorf("invalid input")
	}
	if in.LoadPowerFactor <= 0 || in.LoadPowerFactor > 1 {
		return Result{}, fmt.Errorf("invalid load power factor")
	}
	if in.GenPowerW > 0 && (in.GenPowerFactor <= 0 || in.GenPowerFactor > 1) {
		return Result{}, fmt.Errorf("invalid generation power factor")
	}

	r := in.ResistanceOhmPerKM * in.LengthKM
	x := in.ReactanceOhmPerKM * in.LengthKM
	z := math.Hypot(r, x)
	zAngle := math.Atan2(x, r)

	qLoad := reactive(in.LoadPowerW, in.LoadPowerFactor)

	// Base case, load only.
	i1 := in.LoadPowerW / (math.Sqrt(3) * in.VoltageV * in.LoadPowerFactor)
	drop1 := i1 * z * math.Cos(zAngle-math.Atan2(qLoad, in.LoadPowerW))
	without := Case{
		VoltageV: in.VoltageV - drop1,
		CurrentA: i1,
		LossesW:  3 * i1 * i1 * r,
	}

	// With injection at the load bus. A negative net power means the plant
	// exports to the grid and the bus voltage rises.
	qGen := reactive(in.GenPowerW, in.GenPowerFactor)
	pNet := in.LoadPowerW - in.GenPowerW
	qNet := qLoad - qGen

	var i2 float64
	if pNet >= 0 {
		i2 = pNet / (math.Sqrt(3) * in.VoltageV * in.LoadPowerFactor)
	} else {
		i2 = -pNet / (math.Sqrt(3) * in.VoltageV * in.GenPowerFactor)
	}
	change := i2 * z * math.Cos(zAngle-math.Atan2(qNet, pNet))
	v2 := in.VoltageV - change
	if pNet < 0 {
		v2 = in.VoltageV + change
	}
	with := Case{
		VoltageV: v2,
		CurrentA: i2,
		LossesW:  3 * i2 * i2 * r,
	}

	res := Result{
		WithoutGen:           without,
		WithGen:              with,
		InjectedW:            in.GenPowerW - in.LoadPowerW,
		VoltageChangePercent: (with.VoltageV - without.VoltageV) / in.VoltageV * 100,
		Notes:                "Two-bus radial comparison, approximate voltage drop.",
	}
	if without.LossesW > 0 {
		res.LossChangePercent = (with.LossesW - without.LossesW) / without.LossesW * 100
	}
	return res, nil
}
