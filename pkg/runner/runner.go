package runner

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"memeval/pkg/core"
	"memeval/pkg/metric"
	"memeval/pkg/results"

	"go.uber.org/zap"
)

// MetricOutcome is one metric's finished report plus where it was written.
type MetricOutcome struct {
	Kind   metric.Kind
	Report core.EvaluationReport
	Path   string
}

// Runner applies a set of metrics to every result file under ResultsPath and
// persists one report per metric into the matching evaluation directory.
type Runner struct {
	ResultsPath string
	Kinds       []metric.Kind
	Logger      *zap.Logger
	Diagnostics io.Writer
	Progress    func(metric string, completed, total int)
}

// Run evaluates every metric independently, writing {metric}.json as each
// finishes. A failure aborts the current metric's run; reports already
// written stay on disk.
func (r *Runner) Run(ctx context.Context) ([]MetricOutcome, error) {
	logger := r.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	paths, err := results.Discover(r.ResultsPath)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("runner: no result files under %s", r.ResultsPath)
	}
	logger.Info("running evaluation", zap.Strings("paths", paths))

	outDir := results.EvaluationDir(r.ResultsPath)
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, err
	}

	outcomes := make([]MetricOutcome, 0, len(r.Kinds))
	for _, kind := range r.Kinds {
		outcome, err := r.runMetric(ctx, kind, paths, outDir, logger)
		if err != nil {
			return nil, fmt.Errorf("runner: %s: %w", kind, err)
		}
		outcomes = append(outcomes, outcome)
	}
	return outcomes, nil
}

func (r *Runner) runMetric(ctx context.Context, kind metric.Kind, paths []string, outDir string, logger *zap.Logger) (MetricOutcome, error) {
	scorer, err := metric.New(kind, metric.Options{Logger: logger, Diagnostics: r.Diagnostics})
	if err != nil {
		return MetricOutcome{}, err
	}
	logger.Info("running metric", zap.String("metric", kind.String()), zap.Int("files", len(paths)))

	report := core.EvaluationReport{Runs: make(map[string]core.RunResult, len(paths))}
	for i, path := range paths {
		if err := ctx.Err(); err != nil {
			return MetricOutcome{}, err
		}

		record, err := results.Load(path)
		if err != nil {
			return MetricOutcome{}, err
		}

		run := core.RunResult{}
		for _, split := range core.SplitNames {
			score, err := scorer.Score(ctx, record.Split(split))
			if err != nil {
				return MetricOutcome{}, fmt.Errorf("%s split of %s: %w", split, path, err)
			}
			if kind.RoundsPerRun() {
				score = core.Round4(score)
			}
			run[split] = score
		}
		report.Runs[results.RunID(path)] = run

		if r.Progress != nil {
			r.Progress(kind.String(), i+1, len(paths))
		}
	}

	if err := summarize(&report); err != nil {
		return MetricOutcome{}, err
	}

	outPath := filepath.Join(outDir, kind.String()+".json")
	if err := writeReport(outPath, report); err != nil {
		return MetricOutcome{}, err
	}
	logger.Info("wrote report", zap.String("path", outPath))

	return MetricOutcome{Kind: kind, Report: report, Path: outPath}, nil
}

// summarize attaches the four rounded summary scalars. Every run must carry
// both splits before this point; the loader and scoring loop guarantee it.
func summarize(report *core.EvaluationReport) error {
	val := make([]float64, 0, len(report.Runs))
	test := make([]float64, 0, len(report.Runs))
	for _, run := range report.Runs {
		val = append(val, run["val"])
		test = append(test, run["test"])
	}

	valMean, err := core.Mean(val)
	if err != nil {
		return err
	}
	valStd, err := core.Std(val)
	if err != nil {
		return err
	}
	testMean, err := core.Mean(test)
	if err != nil {
		return err
	}
	testStd, err := core.Std(test)
	if err != nil {
		return err
	}

	report.ValMean = core.Round4(valMean)
	report.ValStd = core.Round4(valStd)
	report.TestMean = core.Round4(testMean)
	report.TestStd = core.Round4(testStd)
	return nil
}

func writeReport(path string, report core.EvaluationReport) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	return encoder.Encode(report)
}
