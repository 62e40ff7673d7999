package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"memeval/pkg/metric"
	"memeval/pkg/reporter"
	"memeval/pkg/runner"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

func newEvalCommand() *cobra.Command {
	var (
		resultsPath string
		metricNames string
		format      string
		outputPath  string
		diagnostics bool
	)

	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Run metric evaluation over a results directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := resolveString(resultsPath, appConfig.ResultsPath)
			if path == "" {
				return errors.New("results path is required")
			}
			if !strings.Contains(path, "ours") && !strings.Contains(path, "original") {
				return fmt.Errorf("results path must name an %q or %q results directory: %s", "ours", "original", path)
			}

			names := splitMetricNames(metricNames)
			if len(names) == 0 {
				names = appConfig.Metrics
			}
			var kinds []metric.Kind
			if len(names) == 0 {
				kinds = metric.Kinds
			} else {
				parsed, err := metric.ParseKinds(names)
				if err != nil {
					return err
				}
				kinds = parsed
			}

			formatResolved := resolveString(format, appConfig.Format)
			if formatResolved == "" {
				formatResolved = reporter.FormatTable
			}
			outputResolved := resolveString(outputPath, appConfig.Output)

			var diagWriter io.Writer
			if diagnostics || appConfig.Diagnostics {
				diagWriter = cmd.OutOrStdout()
			}

			progress := newProgressBar(progressWriter(cmd))

			run := runner.Runner{
				ResultsPath: path,
				Kinds:       kinds,
				Logger:      logger,
				Diagnostics: diagWriter,
				Progress:    progress.Update,
			}

			outcomes, err := run.Run(context.Background())
			if err != nil {
				return err
			}
			progress.Finish()

			writer := cmd.OutOrStdout()
			if outputResolved != "" {
				file, err := os.Create(outputResolved)
				if err != nil {
					return err
				}
				defer file.Close()
				writer = file
			}

			rep, err := buildReporter(formatResolved, writer)
			if err != nil {
				return err
			}
			for _, outcome := range outcomes {
				if err := rep.Report(outcome.Kind.String(), outcome.Report); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&resultsPath, "results-path", "", "directory containing the result JSON files")
	cmd.Flags().StringVar(&metricNames, "metrics", "", "comma-separated metric names (global_accuracy, bleu, rouge, f1, nihed); default all")
	cmd.Flags().StringVar(&format, "format", "", "summary format (table, json, markdown, csv)")
	cmd.Flags().StringVar(&outputPath, "output", "", "summary output file (default stdout)")
	cmd.Flags().BoolVar(&diagnostics, "diagnostics", false, "print per-example scores for auditing")

	return cmd
}

func splitMetricNames(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	names := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			names = append(names, part)
		}
	}
	return names
}

func buildReporter(format string, writer io.Writer) (reporter.Reporter, error) {
	switch format {
	case reporter.FormatJSON:
		return reporter.JSONReporter{Writer: writer, Pretty: true}, nil
	case reporter.FormatTable:
		return reporter.TableReporter{Writer: writer}, nil
	case reporter.FormatMarkdown:
		return reporter.MarkdownReporter{Writer: writer}, nil
	case reporter.FormatCSV:
		return reporter.CSVReporter{Writer: writer}, nil
	default:
		return nil, fmt.Errorf("unknown format: %s", format)
	}
}

type progressBar struct {
	writer io.Writer
	start  time.Time
	isTTY  bool
}

func newProgressBar(writer io.Writer) *progressBar {
	return &progressBar{
		writer: writer,
		start:  time.Now(),
		isTTY:  isTerminal(writer),
	}
}

func (p *progressBar) Update(metricName string, completed, total int) {
	width := 30
	ratio := float64(completed) / float64(total)
	if ratio > 1 {
		ratio = 1
	}
	filled := int(ratio * float64(width))

	bar := strings.Repeat("=", filled) + strings.Repeat(".", width-filled)
	percent := int(ratio * 100)
	elapsed := time.Since(p.start).Truncate(time.Second)

	barStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("62"))
	line := fmt.Sprintf("%s [%s] %3d%% (%d/%d) %s", metricName, barStyle.Render(bar), percent, completed, total, elapsed)
	if p.isTTY {
		fmt.Fprintf(p.writer, "\r%s", line)
	} else {
		fmt.Fprintf(p.writer, "%s\n", line)
	}
}

func (p *progressBar) Finish() {
	if p.isTTY {
		fmt.Fprintln(p.writer)
	}
}

func isTerminal(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func progressWriter(cmd *cobra.Command) io.Writer {
	stderr := cmd.ErrOrStderr()
	stdout := cmd.OutOrStdout()

	if isTerminal(stderr) {
		return stderr
	}
	if isTerminal(stdout) {
		return stdout
	}
	return stderr
}

func resolveString(value string, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}
