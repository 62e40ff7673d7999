package reporter

import (
	"encoding/json"
	"io"

	"memeval/pkg/core"
)

type JSONReporter struct {
	Writer io.Writer
	Pretty bool
}

func (r JSONReporter) Report(metricName string, report core.EvaluationReport) error {
	encoder := json.NewEncoder(r.Writer)
	if r.Pretty {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(struct {
		Metric string                `json:"metric"`
		Report core.EvaluationReport `json:"report"`
	}{Metric: metricName, Report: report})
}
