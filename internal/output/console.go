package output

import (
	"fmt"
	"sort"
	"strings"

	"github.com/GrzesiekP/tests-filestructure-linter/internal/analyzer"
)

// FormatReport renders results as a human-readable console report.
// checkedFiles is the number of test files the run examined.
func FormatReport(results []analyzer.AnalysisResult, checkedFiles int) string {
	var sb strings.Builder

	if len(results) == 0 {
		sb.WriteString(fmt.Sprintf("No issues found. Checked %d test files.\n", checkedFiles))
		return sb.String()
	}

	for _, result := range results {
		sb.WriteString(fmt.Sprintf("%s\n", result.TestFilePath))
		for _, err := range result.Errors {
			sb.WriteString(fmt.Sprintf("  [%s] %s\n", err.Type, err.Message))
			if err.SourceFilePath != "" {
				sb.WriteString(fmt.Sprintf("    Source:   %s\n", err.SourceFilePath))
			}
			if err.ActualTestPath != "" {
				sb.WriteString(fmt.Sprintf("    Actual:   %s\n", err.ActualTestPath))
			}
			if err.ExpectedTestPath != "" {
				sb.WriteString(fmt.Sprintf("    Expected: %s\n", err.ExpectedTestPath))
			}
		}
		sb.WriteString("\n")
	}

	summary := analyzer.Summarize(results)
	sb.WriteString(fmt.Sprintf("Found %d errors in %d files (checked %d test files):\n",
		summary.TotalErrors, summary.Results, checkedFiles))

	// Stable ordering for the per-kind breakdown.
	kinds := make([]string, 0, len(summary.ByType))
	for kind := range summary.ByType {
		kinds = append(kinds, string(kind))
	}
	sort.Strings(kinds)
	for _, kind := range kinds {
		sb.WriteString(fmt.Sprintf("  %s: %d\n", kind, summary.ByType[analyzer.ErrorType(kind)]))
	}

	return sb.String()
}
