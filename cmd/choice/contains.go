package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/praetorian-inc/choice/pkg/selection"
	"github.com/spf13/cobra"
)

var containsCmd = &cobra.Command{
	Use:     "contains <selection> <index>...",
	Short:   "Check whether indices are selected",
	Long:    "Print, for each index, whether the selection includes it",
	Example: `  choice contains "1 3 5 6-8" 7 4`,
	Args:    cobra.MinimumNArgs(2),
	RunE:    runContains,
}

func runContains(cmd *cobra.Command, args []string) error {
	sel, err := selection.Parse(args[0])
	if err != nil {
		return fmt.Errorf("parsing selection: %w", err)
	}

	// Validate every index before printing anything
	indices := make([]int, 0, len(args)-1)
	for _, arg := range args[1:] {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("invalid index %q: must be an integer", arg)
		}
		indices = append(indices, n)
	}

	out := cmd.OutOrStdout()
	s := newStyles(!color.NoColor)
	for _, n := range indices {
		if sel.ContainsItem(n) {
			fmt.Fprintf(out, "%d: %s\n", n, s.yes.Sprint("yes"))
		} else {
			fmt.Fprintf(out, "%d: %s\n", n, s.no.Sprint("no"))
		}
	}
	return nil
}
