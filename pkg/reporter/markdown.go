package reporter

import (
	"fmt"
	"io"

	"memeval/pkg/core"
)

type MarkdownReporter struct {
	Writer io.Writer
}

func (r MarkdownReporter) Report(metricName string, report core.EvaluationReport) error {
	if _, err := fmt.Fprintf(r.Writer, "## %s\n\n", metricName); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(r.Writer, "| Run | Val | Test |\n|---|---|---|\n"); err != nil {
		return err
	}
	for _, id := range sortedRunIDs(report) {
		run := report.Runs[id]
		if _, err := fmt.Fprintf(r.Writer, "| %s | %s | %s |\n", id, formatScore(run["val"]), formatScore(run["test"])); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(r.Writer, "| mean | %s | %s |\n", formatScore(report.ValMean), formatScore(report.TestMean)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(r.Writer, "| std | %s | %s |\n\n", formatScore(report.ValStd), formatScore(report.TestStd)); err != nil {
		return err
	}
	return nil
}
