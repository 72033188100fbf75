package report

import (
	"fmt"

	cable "Gridline/internal/calc/cable"
)

// Lines renders a sizing outcome as the report body, one line per entry.
// Currents and percentages are printed with two decimals.
func Lines(in cable.Input, out cable.Outcome) []string {
	lines := []string{
		fmt.Sprintf("System: %s", in.System),
		fmt.Sprintf("Power (MW): %.2f", in.PowerW/1e6),
		fmt.Sprintf("Voltage (V): %.0f", in.VoltageV),
		fmt.Sprintf("Power Factor: %.2f", in.PowerFactor),
		fmt.Sprintf("Length (m): %.0f", in.LengthM),
	}

	if out.Status == cable.StatusNoSolution {
		lines = append(lines,
			"Verdict: NOT SUITABLE",
			out.Notes,
		)
		return lines
	}

	ev := out.Evaluation
	lines = append(lines,
		fmt.Sprintf("Operating Current (A): %.2f", ev.OperatingCurrentA),
		fmt.Sprintf("Cable Size (mm2): %.0f", ev.Cable.CrossSectionMM2),
	)
	if out.ParallelCount > 1 {
		lines = append(lines, fmt.Sprintf("Parallel Conductors: %d", out.ParallelCount))
	}
	lines = append(lines,
		fmt.Sprintf("Ampacity (A): %.0f [%s]", ev.Cable.AmpacityA, passFail(ev.AmpacityOK)),
		fmt.Sprintf("Voltage Drop (%%): %.2f [%s]", ev.VoltageDropPercent, passFail(ev.VoltageDropOK)),
	)
	switch ev.Thermal {
	case cable.ThermalNotEvaluated:
		lines = append(lines, "Thermal Withstand: NOT EVALUATED (no fault current supplied)")
	default:
		lines = append(lines, fmt.Sprintf("Thermal Margin (%%): %.2f [%s]",
			ev.ThermalMarginPercent, passFail(ev.Thermal == cable.ThermalPassed)))
	}
	lines = append(lines, "Verdict: SUITABLE")
	return lines
}

func passFail(ok bool) string {
	if ok {
		return "PASS"
	}
	return "FAIL"
}
