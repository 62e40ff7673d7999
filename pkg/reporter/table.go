package reporter

import (
	"fmt"
	"io"

	"memeval/pkg/core"

	"github.com/olekukonko/tablewriter"
)

type TableReporter struct {
	Writer io.Writer
}

func (r TableReporter) Report(metricName string, report core.EvaluationReport) error {
	if _, err := fmt.Fprintf(r.Writer, "Metric: %s\n", metricName); err != nil {
		return err
	}

	table := tablewriter.NewWriter(r.Writer)
	table.Header([]string{"Run", "Val", "Test"})
	for _, id := range sortedRunIDs(report) {
		run := report.Runs[id]
		table.Append([]string{id, formatScore(run["val"]), formatScore(run["test"])})
	}
	table.Append([]string{"mean", formatScore(report.ValMean), formatScore(report.TestMean)})
	table.Append([]string{"std", formatScore(report.ValStd), formatScore(report.TestStd)})
	table.Render()
	return nil
}

func formatScore(v float64) string {
	return fmt.Sprintf("%.4f", v)
}
