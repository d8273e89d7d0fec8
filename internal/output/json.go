package output

import (
	"encoding/json"
	"io"

	"github.com/GrzesiekP/tests-filestructure-linter/internal/analyzer"
)

// Report is the JSON report shape consumed by editor integrations and CI
type Report struct {
	CheckedFiles int                        `json:"checkedFiles"`
	TotalErrors  int                        `json:"totalErrors"`
	ByType       map[analyzer.ErrorType]int `json:"byType"`
	Results      []analyzer.AnalysisResult  `json:"results"`
}

// NewReport builds a Report from analysis results
func NewReport(results []analyzer.AnalysisResult, checkedFiles int) Report {
	summary := analyzer.Summarize(results)
	if results == nil {
		results = []analyzer.AnalysisResult{}
	}
	return Report{
		CheckedFiles: checkedFiles,
		TotalErrors:  summary.TotalErrors,
		ByType:       summary.ByType,
		Results:      results,
	}
}

// WriteJSON writes the report to w as indented JSON
func WriteJSON(w io.Writer, report Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
