package analyzer

// Summary aggregates findings by kind. It is computed on demand as a pure
// reduction over the final results, never accumulated during iteration.
type Summary struct {
	Results     int               `json:"results"`
	TotalErrors int               `json:"totalErrors"`
	ByType      map[ErrorType]int `json:"byType"`
}

// Summarize reduces a result list to per-kind error counts
func Summarize(results []AnalysisResult) Summary {
	summary := Summary{
		Results: len(results),
		ByType:  make(map[ErrorType]int),
	}
	for _, result := range results {
		for _, err := range result.Errors {
			summary.TotalErrors++
			summary.ByType[err.Type]++
		}
	}
	return summary
}
