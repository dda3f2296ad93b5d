package main

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"

	"github.com/ChicagoDave/boardgen/pkg/analytics"
	"github.com/ChicagoDave/boardgen/pkg/config"
	"github.com/ChicagoDave/boardgen/pkg/validation"
)

func printValidationReport(r *validation.Report) {
	if len(r.Errors) > 0 {
		fmt.Printf("ERRORS (%d):\n", len(r.Errors))
		for _, e := range r.Errors {
			fmt.Printf("  [%s] %s\n", e.Level, e.Message)
			if e.Path != "" {
				fmt.Printf("    -> %s = %v\n", e.Path, e.ActualValue)
			}
			if e.Expected != "" {
				fmt.Printf("    expected: %s\n", e.Expected)
			}
			if e.ConflictWith != "" {
				fmt.Printf("    conflicts with: %s\n", e.ConflictWith)
			}
			for _, s := range e.Suggestions {
				fmt.Printf("    * %s\n", s)
			}
		}
		fmt.Println()
	}

	if len(r.Warnings) > 0 {
		fmt.Printf("WARNINGS (%d):\n", len(r.Warnings))
		for _, w := range r.Warnings {
			fmt.Printf("  [%s] %s\n", w.Level, w.Message)
			if w.Path != "" && w.ActualValue != nil {
				fmt.Printf("    -> %s = %v\n", w.Path, w.ActualValue)
			}
			if w.Expected != "" {
				fmt.Printf("    expected: %s\n", w.Expected)
			}
			for _, s := range w.Suggestions {
				fmt.Printf("    * %s\n", s)
			}
		}
		fmt.Println()
	}

	if len(r.Info) > 0 {
		fmt.Printf("INFO (%d):\n", len(r.Info))
		for _, i := range r.Info {
			fmt.Printf("  [%s] %s\n", i.Level, i.Message)
		}
		fmt.Println()
	}

	if r.Valid {
		fmt.Printf("Result: VALID (%s)\n", r.Summary)
	} else {
		fmt.Printf("Result: INVALID (%s)\n", r.Summary)
	}
}

// printSummary prints board statistics. Zero iteration budgets are omitted.
func printSummary(s *analytics.Summary, it config.Iterations) {
	fmt.Println("Summary")
	fmt.Println("-------")
	fmt.Printf("  Number score:     %s\n", formatScore(s.NumberScore, 4))
	fmt.Printf("  Resource score:   %s\n", formatScore(s.ResourceScore, 6))
	fmt.Printf("  Vertex pips:      [%g, %g] over %d vertices (variance %s)\n",
		s.Vertices.Min, s.Vertices.Max, s.Vertices.Vertices, formatScore(s.Vertices.Variance, 4))
	fmt.Printf("  Pips by ring:     %v\n", s.RingPips)
	fmt.Printf("  Number clashes:   %d\n", len(s.NumberClashes))
	fmt.Printf("  Resource clashes: %d\n", len(s.ResourceClashes))
	if it.Numbers > 0 || it.Resources > 0 {
		fmt.Printf("  Restarts:         %s numbers, %s resources\n",
			humanize.Comma(int64(it.Numbers)), humanize.Comma(int64(it.Resources)))
	}

	fmt.Println()
	fmt.Printf("%-10s %-4s %5s %5s %8s %8s\n", "Resource", "Code", "Tiles", "Pips", "Share", "Expected")
	fmt.Printf("%-10s %-4s %5s %5s %8s %8s\n", "----------", "----", "-----", "-----", "--------", "--------")
	for _, r := range s.Resources {
		fmt.Printf("%-10s %-4s %5d %5d %7.1f%% %8g\n", r.Resource, r.Code, r.Tiles, r.Pips, r.Share*100, r.Expected)
	}
	fmt.Printf("%-10s %-4s %5s %5d\n", "TOTAL", "", "", s.TotalPips)
}

// formatScore rounds v to at most digits decimals before grouping, since
// humanize truncates.
func formatScore(v float64, digits int) string {
	p := math.Pow10(digits)
	return humanize.Commaf(math.Round(v*p) / p)
}
