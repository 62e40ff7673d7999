package commands

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEvalRequiresResultsPath(t *testing.T) {
	root := NewRootCommand()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"eval"})

	err := root.Execute()
	require.ErrorContains(t, err, "results path is required")
}

func TestEvalRejectsUnmarkedPath(t *testing.T) {
	dir := t.TempDir()
	root := NewRootCommand()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"eval", "--results-path", dir})

	err := root.Execute()
	require.Error(t, err)
	require.ErrorContains(t, err, "results directory")
}

func TestEvalRejectsUnknownMetric(t *testing.T) {
	root := NewRootCommand()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"eval", "--results-path", "/tmp/results_ours", "--metrics", "meteor"})

	err := root.Execute()
	require.ErrorContains(t, err, "unknown metric")
}

func TestSplitMetricNames(t *testing.T) {
	require.Nil(t, splitMetricNames(""))
	require.Equal(t, []string{"bleu", "rouge"}, splitMetricNames("bleu, rouge"))
	require.Equal(t, []string{"f1"}, splitMetricNames("f1,"))
}
