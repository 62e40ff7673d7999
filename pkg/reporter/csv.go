package reporter

import (
	"encoding/csv"
	"io"
	"strconv"

	"memeval/pkg/core"
)

type CSVReporter struct {
	Writer io.Writer
}

func (r CSVReporter) Report(metricName string, report core.EvaluationReport) error {
	writer := csv.NewWriter(r.Writer)
	if err := writer.Write([]string{"metric", "run", "val", "test"}); err != nil {
		return err
	}
	for _, id := range sortedRunIDs(report) {
		run := report.Runs[id]
		record := []string{metricName, id, formatFloat(run["val"]), formatFloat(run["test"])}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	if err := writer.Write([]string{metricName, "mean", formatFloat(report.ValMean), formatFloat(report.TestMean)}); err != nil {
		return err
	}
	if err := writer.Write([]string{metricName, "std", formatFloat(report.ValStd), formatFloat(report.TestStd)}); err != nil {
		return err
	}
	writer.Flush()
	return writer.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
