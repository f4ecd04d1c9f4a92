package importer

import (
	"sort"
)

// Result is the final report of one non-fatal import run. Invariants:
// Total == Success + Failed, Success == number of validated items,
// Failed == len(Errors), and Errors is sorted ascending by row.
type Result struct {
	Total   int        `json:"total"`
	Success int        `json:"success"`
	Failed  int        `json:"failed"`
	Errors  []RowError `json:"errors"`
}

// BuildResult merges decode-phase and validate-phase errors into one
// report. The two phases run over disjoint row subsets, so a stable sort
// by row position restores the single source order users expect.
func BuildResult(total int, validated []ValidatedItem, errs []RowError) Result {
	merged := make([]RowError, len(errs))
	copy(merged, errs)
	sort.SliceStable(merged, func(i, j int) bool { return merged[i].Row < merged[j].Row })

	return Result{
		Total:   total,
		Success: len(validated),
		Failed:  len(merged),
		Errors:  merged,
	}
}
