package main

import (
	"bufio"
	"fmt"

	"github.com/praetorian-inc/choice/pkg/selection"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var expandLimit int

var expandCmd = &cobra.Command{
	Use:   "expand <selection>",
	Short: "List every selected index",
	Long: `Print each selected index on its own line in ascending order.

Ranges are expanded lazily, so --limit makes wide ranges such as 1-1000000000
cheap to sample.`,
	Example: `  choice expand "8 1-3"
  choice expand --limit 5 1-1000000`,
	Args: cobra.ExactArgs(1),
	RunE: runExpand,
}

func init() {
	expandCmd.Flags().IntVar(&expandLimit, "limit", 0, "Stop after this many indices (0 for no limit)")
}

func runExpand(cmd *cobra.Command, args []string) error {
	sel, err := selection.Parse(args[0])
	if err != nil {
		return fmt.Errorf("parsing selection: %w", err)
	}

	w := bufio.NewWriter(cmd.OutOrStdout())

	written := 0
	for n := range sel.Items() {
		if expandLimit > 0 && written == expandLimit {
			zlog.Debug("expand limit reached", zap.Int("limit", expandLimit), zap.Int("total", sel.Len()))
			break
		}
		if _, err := fmt.Fprintln(w, n); err != nil {
			return fmt.Errorf("writing indices: %w", err)
		}
		written++
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("writing indices: %w", err)
	}
	return nil
}
