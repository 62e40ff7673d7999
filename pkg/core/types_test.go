package core

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTrailingPromptTokens(t *testing.T) {
	ex := Example{PromptText: "is it on the mat"}
	secondLast, last, ok := ex.TrailingPromptTokens()
	require.True(t, ok)
	require.Equal(t, "the", secondLast)
	require.Equal(t, "mat", last)
}

func TestTrailingPromptTokensTooShort(t *testing.T) {
	ex := Example{PromptText: "mat"}
	_, _, ok := ex.TrailingPromptTokens()
	require.False(t, ok)

	ex = Example{}
	_, _, ok = ex.TrailingPromptTokens()
	require.False(t, ok)
}

func TestResultRecordSplit(t *testing.T) {
	record := ResultRecord{
		Val:  []Example{{Prediction: "a"}},
		Test: []Example{{Prediction: "b"}, {Prediction: "c"}},
	}
	require.Len(t, record.Split("val"), 1)
	require.Len(t, record.Split("test"), 2)
	require.Nil(t, record.Split("train"))
}

func TestEvaluationReportRoundTrip(t *testing.T) {
	report := EvaluationReport{
		Runs: map[string]RunResult{
			"run1":  {"val": 1.0, "test": 0.0},
			"run10": {"val": 0.5, "test": 0.25},
		},
		ValMean:  0.75,
		ValStd:   0.25,
		TestMean: 0.125,
		TestStd:  0.125,
	}

	data, err := json.Marshal(report)
	require.NoError(t, err)

	var decoded EvaluationReport
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, report, decoded)
}

func TestEvaluationReportFlatShape(t *testing.T) {
	report := EvaluationReport{
		Runs:    map[string]RunResult{"run1": {"val": 1.0, "test": 0.0}},
		ValMean: 1.0,
	}

	data, err := json.Marshal(report)
	require.NoError(t, err)

	var flat map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &flat))
	require.Contains(t, flat, "run1")
	require.Contains(t, flat, "val_mean")
	require.Contains(t, flat, "val_std")
	require.Contains(t, flat, "test_mean")
	require.Contains(t, flat, "test_std")
	require.Len(t, flat, 5)
}

func TestEvaluationReportSummaryKeyCollision(t *testing.T) {
	report := EvaluationReport{
		Runs: map[string]RunResult{"val_mean": {"val": 1.0}},
	}
	_, err := json.Marshal(report)
	require.Error(t, err)
}
