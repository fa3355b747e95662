package report

import (
	"fmt"
	"io"
	"strings"

	"fireapi/internal/service/classify"
	"fireapi/internal/service/estimate"
)

// WriteText prints a phase-grouped estimate to w in the classic console
// layout: labor lines, material lines, then the summary block.
func WriteText(w io.Writer, params classify.Params, est *estimate.Estimate) {
	fmt.Fprintf(w, "Parameters: size=%s scope=%s quality=%s\n", params.Size, params.Scope, params.Quality)
	fmt.Fprintln(w, strings.Repeat("=", 80))

	for _, phase := range phaseOrder(est.LineItems) {
		fmt.Fprintf(w, "\n%s\n", phase)
		fmt.Fprintln(w, strings.Repeat("-", 60))

		writeCategory(w, "Labor:", est.LineItems, phase, estimate.CategoryLabor)
		writeCategory(w, "Materials:", est.LineItems, phase, estimate.CategoryMaterial)
	}

	t := est.Totals
	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.Repeat("=", 80))
	fmt.Fprintln(w, "ESTIMATE SUMMARY")
	fmt.Fprintln(w, strings.Repeat("=", 80))
	fmt.Fprintf(w, "Base Labor Hours:      %8.0f\n", t.RawHours)
	fmt.Fprintf(w, "Complexity Multiplier: %8.1fx\n", t.Complexity)
	fmt.Fprintf(w, "Adjusted Labor Hours:  %8.0f\n", t.AdjustedHours)
	fmt.Fprintf(w, "Labor Cost (@$%.0f/hr): $%8.0f\n", t.LaborRate, t.LaborCost)
	fmt.Fprintln(w, strings.Repeat("-", 40))
	fmt.Fprintf(w, "Base Material Cost:    $%8.0f\n", t.RawMaterialCost)
	fmt.Fprintf(w, "Quality Multiplier:    %8.1fx\n", t.QualityMultiplier)
	fmt.Fprintf(w, "Adjusted Materials:    $%8.0f\n", t.MaterialCost)
	fmt.Fprintln(w, strings.Repeat("=", 40))
	fmt.Fprintf(w, "TOTAL PROJECT COST:    $%8.0f\n", t.TotalCost)
	fmt.Fprintln(w, strings.Repeat("=", 40))
}

func writeCategory(w io.Writer, header string, items []estimate.LineItem, phase, category string) {
	wrote := false
	for _, item := range items {
		if item.Phase != phase || item.Category != category {
			continue
		}
		if !wrote {
			fmt.Fprintln(w, header)
			wrote = true
		}
		if category == estimate.CategoryLabor {
			fmt.Fprintf(w, "  - %-40s %3.0f hrs @ $%2.0f/hr = $%6.0f\n",
				item.Description, item.Hours, item.Rate, item.Cost)
			continue
		}
		if item.Cost > 0 {
			fmt.Fprintf(w, "  - %-40s $%6.0f\n", item.Description, item.Cost)
		}
	}
}

// phaseOrder lists phase names in order of first appearance, which is
// template order because the calculator emits items that way.
func phaseOrder(items []estimate.LineItem) []string {
	seen := make(map[string]bool)
	var phases []string
	for _, item := range items {
		if !seen[item.Phase] {
			seen[item.Phase] = true
			phases = append(phases, item.Phase)
		}
	}
	return phases
}
