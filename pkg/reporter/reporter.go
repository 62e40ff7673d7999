package reporter

import (
	"sort"

	"memeval/pkg/core"
	"memeval/pkg/results"
)

// Reporter renders one metric's evaluation report for human consumption.
type Reporter interface {
	Report(metricName string, report core.EvaluationReport) error
}

const (
	FormatJSON     = "json"
	FormatTable    = "table"
	FormatMarkdown = "markdown"
	FormatCSV      = "csv"
)

// sortedRunIDs returns the run identifiers in natural numeric order.
func sortedRunIDs(report core.EvaluationReport) []string {
	ids := make([]string, 0, len(report.Runs))
	for id := range report.Runs {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return results.NaturalLess(ids[i], ids[j])
	})
	return ids
}
