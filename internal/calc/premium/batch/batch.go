package batch

import (
	"fmt"

	cable "Gridline/internal/calc/cable"
)

type SizingBatchInput struct {
	Items []cable.Input `json:"items"`
}

type SizingBatchResult struct {
	Results []cable.Outcome `json:"results"`
}

func CalculateSizing(in SizingBatchInput) (SizingBatchResult, error) {
	if len(in.Items) == 0 {
		return SizingBatchResult{}, fmt.Errorf("no items")
	}
	out := SizingBatchResult{Results: make([]cable.Outcome, 0, len(in.Items))}
	for _, item := range in.Items {
		res, err := cable.Select(item)
		if err != nil {
			return SizingBatchResult{}, err
		}
		out.Results = append(out.Results, res)
	}
	return out, nil
}
