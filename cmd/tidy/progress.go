package main

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
)

// newProgressBar returns an indeterminate bar on interactive runs, nil
// otherwise. The bar writes to stderr so it never mixes into the summary or
// JSON output on stdout.
func newProgressBar(params organizeParams) *progressbar.ProgressBar {
	if params.verbose || params.jsonOut || !stderrIsTerminal() {
		return nil
	}
	description := "Organizing..."
	if params.dryRun {
		description = "Previewing..."
	}
	return progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription(description),
	)
}

func stderrIsTerminal() bool {
	fd := os.Stderr.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
