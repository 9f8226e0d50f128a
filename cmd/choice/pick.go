package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/praetorian-inc/choice/pkg/selection"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	pickSelection selection.Selection
	pickSelect    = newSelectionValue(&pickSelection)
	pickNumbered  bool
)

var pickCmd = &cobra.Command{
	Use:   "pick [file]",
	Short: "Print the chosen lines of a list",
	Long: `Read a list of items, one per line, from a file or stdin and print the
items chosen by a selection string. Items are numbered from 1; blank lines
are skipped.

With --select the selection is taken from the flag. Without it, when items
come from a file and stdin is a terminal, the numbered list is shown on
stderr and the selection is read interactively.`,
	Example: `  git branch --format='%(refname:short)' | choice pick --select "1 3-4"
  choice pick hosts.txt`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPick,
}

func init() {
	pickCmd.Flags().VarP(pickSelect, "select", "s", "Selection string, e.g. \"1 3 5-8\" (repeatable)")
	pickCmd.Flags().BoolVarP(&pickNumbered, "numbered", "n", false, "Prefix each chosen item with its index")
}

func runPick(cmd *cobra.Command, args []string) error {
	items, fromFile, err := readItems(cmd, args)
	if err != nil {
		return err
	}
	zlog.Debug("read items", zap.Int("count", len(items)), zap.Bool("from_file", fromFile))

	sel := pickSelection
	if !pickSelect.changed {
		if !fromFile || !isTerminal(cmd.InOrStdin()) {
			return errors.New("--select is required unless items are read from a file and stdin is a terminal")
		}
		sel, err = promptSelection(cmd, items)
		if err != nil {
			return err
		}
	} else if err := checkBounds(sel, len(items)); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for n := range sel.Items() {
		if pickNumbered {
			fmt.Fprintf(out, "%d\t%s\n", n, items[n-1])
		} else {
			fmt.Fprintln(out, items[n-1])
		}
	}
	return nil
}

// readItems returns the non-blank lines of the named file, or of stdin when
// no file is given.
func readItems(cmd *cobra.Command, args []string) ([]string, bool, error) {
	if len(args) == 0 {
		items, err := scanItems(cmd.InOrStdin())
		if err != nil {
			return nil, false, fmt.Errorf("reading items from stdin: %w", err)
		}
		return items, false, nil
	}

	f, err := os.Open(args[0])
	if err != nil {
		return nil, true, fmt.Errorf("opening items file: %w", err)
	}
	defer f.Close()

	items, err := scanItems(f)
	if err != nil {
		return nil, true, fmt.Errorf("reading items from %s: %w", args[0], err)
	}
	return items, true, nil
}

func scanItems(r io.Reader) ([]string, error) {
	var items []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		items = append(items, line)
	}
	return items, scanner.Err()
}

// checkBounds rejects selections that name an index past the last item.
func checkBounds(sel selection.Selection, count int) error {
	if hi, ok := sel.Max(); ok && hi > count {
		return fmt.Errorf("index %d is out of range: there are %d items", hi, count)
	}
	return nil
}

// promptSelection shows the numbered menu on stderr and reads selection
// strings from stdin until one parses and fits the list.
func promptSelection(cmd *cobra.Command, items []string) (selection.Selection, error) {
	errOut := cmd.ErrOrStderr()
	s := newStyles(!color.NoColor)

	width := len(fmt.Sprint(len(items)))
	for i, item := range items {
		fmt.Fprintf(errOut, "%s  %s\n", s.index.Sprintf("%*d", width, i+1), item)
	}

	reader := bufio.NewReader(cmd.InOrStdin())
	for {
		fmt.Fprint(errOut, "Select items (e.g. 1 3 5-8): ")

		line, readErr := reader.ReadString('\n')
		if line == "" && readErr != nil {
			if readErr == io.EOF {
				return selection.Selection{}, errors.New("no selection entered")
			}
			return selection.Selection{}, fmt.Errorf("reading selection: %w", readErr)
		}

		sel, err := selection.Parse(strings.TrimRight(line, "\r\n"))
		if err == nil {
			err = checkBounds(sel, len(items))
		}
		if err == nil {
			return sel, nil
		}

		zlog.Debug("rejected selection", zap.String("input", line), zap.Error(err))
		fmt.Fprintln(errOut, s.problem.Sprint(err.Error()))
		if readErr != nil {
			return selection.Selection{}, errors.New("no valid selection entered")
		}
	}
}
