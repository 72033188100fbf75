package importer

import (
	"encoding/json"
	"fmt"
	"net/http"

	cable "Gridline/internal/calc/cable"
	catalog "Gridline/internal/catalog"

	"github.com/xuri/excelize/v2"
)

type Handler struct{}

type SizingImportResult struct {
	Count   int             `json:"count"`
	Results []cable.Outcome `json:"results"`
}

// Sizing accepts an .xlsx upload with one sizing case per row and runs the
// selector for each parseable row. Bad rows are skipped, not reported.
func (h *Handler) Sizing(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	f, err := excelize.OpenReader(file)
	if err != nil {
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil || len(rows) < 2 {
		http.Error(w, "Empty sheet", http.StatusBadRequest)
		return
	}

	var results []cable.Outcome
	for i := 1; i < len(rows); i++ {
		input, err := parseSizingRow(rows[i])
		if err != nil {
			continue
		}
		res, err := cable.Select(input)
		if err != nil {
			continue
		}
		results = append(results, res)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(SizingImportResult{Count: len(results), Results: results})
}

// expected: power_mw, voltage_v, power_factor, length_m, system,
// fault_ka(optional), parallel(optional)
func parseSizingRow(row []string) (cable.Input, error) {
	if len(row) < 5 {
		return cable.Input{}, fmt.Errorf("bad row")
	}
	powerMW, err := toFloat(row[0])
	if err != nil {
		return cable.Input{}, err
	}
	voltage, err := toFloat(row[1])
	if err != nil {
		return cable.Input{}, err
	}
	pf, err := toFloat(row[2])
	if err != nil {
		return cable.Input{}, err
	}
	length, err := toFloat(row[3])
	if err != nil {
		return cable.Input{}, err
	}
	class, err := catalog.ParseClass(row[4])
	if err != nil {
		return cable.Input{}, err
	}
	fault := 0.0
	if len(row) > 5 && row[5] != "" {
		fault, _ = toFloat(row[5])
	}
	parallel := 0
	if len(row) > 6 && row[6] != "" {
		p, err := toFloat(row[6])
		if err == nil {
			parallel = int(p)
		}
	}
	return cable.Input{
		PowerW:         powerMW * 1e6,
		VoltageV:       voltage,
		PowerFactor:    pf,
		LengthM:        length,
		System:         class,
		FaultCurrentKA: fault,
		ParallelCount:  parallel,
	}, nil
}

func toFloat(s string) (float64, error) {
	var v float64
	_, err := fmt.Sscanf(s, "%f", &v)
	return v, err
}
