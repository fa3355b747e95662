package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"fireapi/internal/service/classify"
	"fireapi/internal/service/estimate"
	"fireapi/internal/service/report"
	"fireapi/internal/storage/jsonfile"
)

const defaultTemplate = "trade_library/multi_trade/kitchen_renovation_complete.json"

// Canonical demo inputs, used when no descriptions are given on the command
// line.
var defaultScenarios = []string{
	"I want to remodel my small kitchen with new cabinets, countertops and appliances",
	"Complete gut renovation of large luxury kitchen with custom everything",
	"Budget refresh of medium kitchen - just paint cabinets and new countertops",
}

func main() {
	templatePath := flag.String("template", defaultTemplate, "path to the trade template JSON")
	xlsxPath := flag.String("xlsx", "", "also write each estimate as an Excel workbook at this path")
	complexityMaterials := flag.Bool("complexity-materials", false, "apply the size x scope complexity multiplier to material costs")
	flag.Parse()

	tpl, err := jsonfile.Load(*templatePath)
	if err != nil {
		var schemaErr *jsonfile.SchemaError
		if errors.As(err, &schemaErr) {
			fmt.Fprintf(os.Stderr, "template %s failed validation:\n", *templatePath)
			for _, field := range schemaErr.Missing {
				fmt.Fprintf(os.Stderr, "  missing required field: %s\n", field)
			}
			os.Exit(1)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	scenarios := flag.Args()
	if len(scenarios) == 0 {
		scenarios = defaultScenarios
	}

	opts := estimate.Options{ComplexityAppliesToMaterials: *complexityMaterials}

	type result struct {
		params   classify.Params
		est      *estimate.Estimate
		rendered string
	}

	// Scenarios are independent, so they are computed in parallel and
	// printed in input order afterwards.
	results := make([]result, len(scenarios))
	var g errgroup.Group
	for i, description := range scenarios {
		i, description := i, description
		g.Go(func() error {
			params := classify.Classify(description)
			est, err := estimate.Compute(tpl, params, opts)
			if err != nil {
				return fmt.Errorf("scenario %d: %w", i+1, err)
			}

			var buf bytes.Buffer
			report.WriteText(&buf, params, est)
			results[i] = result{params: params, est: est, rendered: buf.String()}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	for i, res := range results {
		fmt.Printf("SCENARIO %d\n", i+1)
		fmt.Println(strings.Repeat("=", 80))
		fmt.Printf("Input: %s\n", scenarios[i])
		fmt.Print(res.rendered)
		fmt.Println()

		if *xlsxPath == "" {
			continue
		}

		workbook, err := report.Excel(res.params, res.est)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		path := workbookPath(*xlsxPath, i, len(scenarios))
		if err := os.WriteFile(path, workbook, 0644); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Printf("wrote %s\n\n", path)
	}
}

// workbookPath suffixes the scenario number before the extension when more
// than one workbook is written.
func workbookPath(base string, index, total int) string {
	if total == 1 {
		return base
	}
	ext := filepath.Ext(base)
	return fmt.Sprintf("%s_%d%s", strings.TrimSuffix(base, ext), index+1, ext)
}
