package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var dryRun bool
	var verbose bool
	var jsonOut bool
	var undoCount int
	var previewLimit int

	ctx := newCommandContext(&configFlag)

	rootCmd := &cobra.Command{
		Use:   "tidy",
		Short: "Organize a folder's files into category subfolders",
		Long: `tidy sorts the direct-child files of a target directory into category
subfolders based on file extension. Every move is journaled so the most
recent actions can be undone with --undo.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			// Undo and organize are mutually exclusive per invocation.
			if undoCount > 0 {
				return runUndo(cmd, cfg, undoCount, verbose, jsonOut)
			}
			return runOrganize(cmd, cfg, organizeParams{
				dryRun:       dryRun,
				verbose:      verbose,
				previewLimit: previewLimit,
				jsonOut:      jsonOut,
			})
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Preview intended moves without changing anything")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.Flags().IntVarP(&undoCount, "undo", "u", 0, "Undo the last N moves instead of organizing")
	rootCmd.Flags().IntVar(&previewLimit, "preview-limit", 0, "Stop after processing this many files (0 = no limit)")
	rootCmd.Flags().BoolVar(&jsonOut, "json", false, "Emit the run summary as JSON")

	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
