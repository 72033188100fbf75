package main

import (
	"fmt"
	"os"

	cable "Gridline/internal/calc/cable"
	report "Gridline/internal/calc/report"
	catalog "Gridline/internal/catalog"

	"github.com/spf13/cobra"
)

func main() {
	var (
		powerMW  float64
		voltage  float64
		pf       float64
		length   float64
		system   string
		fault    float64
		parallel int
	)

	cmd := &cobra.Command{
		Use:   "sizer",
		Short: "Select the smallest compliant cable for a three-phase run",
		RunE: func(_ *cobra.Command, _ []string) error {
			class, err := catalog.ParseClass(system)
			if err != nil {
				return err
			}
			in := cable.Input{
				PowerW:         powerMW * 1e6,
				VoltageV:       voltage,
				PowerFactor:    pf,
				LengthM:        length,
				System:         class,
				FaultCurrentKA: fault,
				ParallelCount:  parallel,
			}
			out, err := cable.Select(in)
			if err != nil {
				return err
			}
			for _, line := range report.Lines(in, out) {
				fmt.Println(line)
			}
			if out.Status == cable.StatusNoSolution {
				os.Exit(2)
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&powerMW, "power-mw", 0, "three-phase power demand in MW")
	cmd.Flags().Float64Var(&voltage, "voltage", 0, "line-to-line voltage in V")
	cmd.Flags().Float64Var(&pf, "pf", 0.95, "power factor, lagging")
	cmd.Flags().Float64Var(&length, "length", 0, "one-way run length in m")
	cmd.Flags().StringVar(&system, "system", "MV", "system class, LV or MV")
	cmd.Flags().Float64Var(&fault, "fault-ka", 0, "short-circuit current in kA, 0 to skip the thermal check")
	cmd.Flags().IntVar(&parallel, "parallel", 0, "conductors per phase, 0 for single run")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
