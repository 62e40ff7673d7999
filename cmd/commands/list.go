package commands

import (
	"os"

	"memeval/pkg/metric"
	"memeval/pkg/reporter"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func newListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List available metrics and formats",
		RunE: func(cmd *cobra.Command, args []string) error {
			metrics := make([]string, 0, len(metric.Kinds))
			for _, kind := range metric.Kinds {
				metrics = append(metrics, kind.String())
			}
			writeList("Metrics", metrics)
			writeList("Formats", []string{
				reporter.FormatTable,
				reporter.FormatJSON,
				reporter.FormatMarkdown,
				reporter.FormatCSV,
			})
			return nil
		},
	}
	return cmd
}

func writeList(title string, items []string) {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header([]string{title})
	for _, item := range items {
		table.Append([]string{item})
	}
	table.Render()
}
