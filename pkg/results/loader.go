package results

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"memeval/pkg/core"
)

// Discover lists the result files directly under dir, sorted in natural
// numeric order so run2.json comes before run10.json.
func Discover(dir string) ([]string, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, err
	}
	sort.Slice(paths, func(i, j int) bool {
		return NaturalLess(paths[i], paths[j])
	})
	return paths, nil
}

// Load reads one result file and checks that both splits are present.
func Load(path string) (core.ResultRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return core.ResultRecord{}, err
	}
	defer file.Close()

	var record core.ResultRecord
	if err := json.NewDecoder(file).Decode(&record); err != nil {
		return core.ResultRecord{}, fmt.Errorf("results: decode %s: %w", path, err)
	}
	for _, split := range core.SplitNames {
		if record.Split(split) == nil {
			return core.ResultRecord{}, fmt.Errorf("results: %s is missing the %q split", path, split)
		}
	}
	return record, nil
}

// RunID derives a run identifier from a result file path.
func RunID(path string) string {
	return strings.TrimSuffix(filepath.Base(path), ".json")
}

// EvaluationDir maps a results directory to the directory evaluation reports
// are written to. Every occurrence of "results" in the path is substituted.
func EvaluationDir(resultsPath string) string {
	return strings.ReplaceAll(resultsPath, "results", "evaluation")
}
