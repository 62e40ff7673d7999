package tests

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"memeval/pkg/core"
	"memeval/pkg/metric"
	"memeval/pkg/runner"

	"github.com/stretchr/testify/require"
)

const runRecord = `{
	"val": [
		{"prediction": "the cat sat", "correct_answer": "cat", "prompt_text": "is it on the mat"},
		{"prediction": "cat", "correct_answer": "cat", "prompt_text": "is it on the mat"}
	],
	"test": [
		{"prediction": "the dog ran", "correct_answer": "dog", "prompt_text": "is it in the house"}
	]
}`

func TestEndToEndEvaluation(t *testing.T) {
	base := t.TempDir()
	resultsDir := filepath.Join(base, "results_original")
	require.NoError(t, os.MkdirAll(resultsDir, 0o755))
	for _, name := range []string{"run1.json", "run2.json", "run10.json"} {
		require.NoError(t, os.WriteFile(filepath.Join(resultsDir, name), []byte(runRecord), 0o600))
	}

	var diag bytes.Buffer
	run := runner.Runner{
		ResultsPath: resultsDir,
		Kinds:       metric.Kinds,
		Diagnostics: &diag,
	}
	outcomes, err := run.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, outcomes, len(metric.Kinds))

	evalDir := filepath.Join(base, "evaluation_original")
	for _, outcome := range outcomes {
		require.FileExists(t, filepath.Join(evalDir, outcome.Kind.String()+".json"))
		require.Len(t, outcome.Report.Runs, 3)
		for _, scores := range outcome.Report.Runs {
			require.Contains(t, scores, "val")
			require.Contains(t, scores, "test")
		}
	}

	// Identical runs collapse to zero spread.
	for _, outcome := range outcomes {
		require.Equal(t, 0.0, outcome.Report.ValStd)
		require.Equal(t, 0.0, outcome.Report.TestStd)
	}

	// Per-example audit lines were emitted for the unigram metrics.
	require.Contains(t, diag.String(), "the cat sat")

	// A persisted report reads back with the summary intact.
	data, err := os.ReadFile(filepath.Join(evalDir, "global_accuracy.json"))
	require.NoError(t, err)
	var report core.EvaluationReport
	require.NoError(t, json.Unmarshal(data, &report))
	require.Equal(t, 1.0, report.ValMean)
	require.Equal(t, 1.0, report.TestMean)
}

func TestEndToEndRerunOverwrites(t *testing.T) {
	base := t.TempDir()
	resultsDir := filepath.Join(base, "results_ours")
	require.NoError(t, os.MkdirAll(resultsDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(resultsDir, "run1.json"), []byte(runRecord), 0o600))

	run := runner.Runner{ResultsPath: resultsDir, Kinds: []metric.Kind{metric.KindRouge}}
	first, err := run.Run(context.Background())
	require.NoError(t, err)

	second, err := run.Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, first[0].Report, second[0].Report)
	require.Equal(t, first[0].Path, second[0].Path)
}
