package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"tidy/internal/organize"
)

// renderSummary prints per-category counts in declaration order, as a
// rounded table on terminals and plain "category: count" lines otherwise.
func renderSummary(w io.Writer, summary *organize.Summary) {
	if summary.DryRun {
		fmt.Fprintln(w, "Dry run; nothing was moved.")
	}

	if stdoutIsTerminal() {
		fmt.Fprintln(w, renderSummaryTable(summary))
	} else {
		for _, name := range summary.Categories {
			fmt.Fprintf(w, "%s: %d\n", name, summary.Counts[name])
		}
	}

	fmt.Fprintf(w, "Processed %d file(s)", summary.Processed)
	if summary.Failed > 0 {
		fmt.Fprintf(w, ", %d failed (see log)", summary.Failed)
	}
	if summary.Partial {
		fmt.Fprint(w, ", stopped at preview limit")
	}
	fmt.Fprintln(w, ".")
}

func renderSummaryTable(summary *organize.Summary) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Category", "Files"})
	for _, name := range summary.Categories {
		tw.AppendRow(table.Row{name, strconv.Itoa(summary.Counts[name])})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}

func stdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// writeJSON encodes v as indented JSON to the command's stdout.
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
