package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	verbose   bool
	quiet     bool
	colorMode string
)

var rootCmd = &cobra.Command{
	Use:   "choice",
	Short: "Choice - parse and apply selection strings like \"1 3 5-8\"",
	Long: `Choice parses selection strings, the compact way of picking entries from a
numbered list: indices and inclusive ranges separated by spaces, commas or
semicolons (for example "1 3 5 6-8" or "1, 2; 4-5").

Selections are normalized into sorted, merged ranges. Use the subcommands to
inspect a selection, test membership, enumerate it, or pick lines of a file.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Quiet mode (errors only)")
	rootCmd.PersistentFlags().StringVar(&colorMode, "color", "auto", "Color output: auto, always, never")

	// Add subcommands
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(containsCmd)
	rootCmd.AddCommand(expandCmd)
	rootCmd.AddCommand(pickCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

// setup applies the global flags before any subcommand runs.
func setup(cmd *cobra.Command, args []string) error {
	if err := applyColorMode(colorMode); err != nil {
		return err
	}

	logger, err := newLogger(verbose, quiet)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	zlog = logger
	return nil
}

// Execute runs the root command.
func Execute() error {
	defer func() { _ = zlog.Sync() }()
	return rootCmd.Execute()
}
