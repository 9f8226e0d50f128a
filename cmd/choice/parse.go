package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/praetorian-inc/choice/pkg/ranges"
	"github.com/praetorian-inc/choice/pkg/selection"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

var parseFormat string

var parseCmd = &cobra.Command{
	Use:   "parse <selection>...",
	Short: "Parse and normalize a selection string",
	Long: `Parse a selection string and print its normalized form.

Arguments are joined with spaces, so "choice parse 1 3 5-8" and
"choice parse '1 3 5-8'" are equivalent. Overlapping and adjacent parts are
merged: "6-8 5 1 3" prints "1 3 5-8".`,
	Example: `  choice parse "1, 2, 3, 4-5, 11"
  choice parse --format json 1-8 11 12`,
	RunE: runParse,
}

func init() {
	parseCmd.Flags().StringVar(&parseFormat, "format", "human", "Output format: human, json, yaml, table")
}

// parseOutput is the structured form of a parsed selection.
type parseOutput struct {
	Input     string         `json:"input" yaml:"input"`
	Canonical string         `json:"canonical" yaml:"canonical"`
	Count     int            `json:"count" yaml:"count"`
	Ranges    []ranges.Range `json:"ranges" yaml:"ranges"`
}

func runParse(cmd *cobra.Command, args []string) error {
	input := strings.Join(args, " ")

	sel, err := selection.Parse(input)
	if err != nil {
		return fmt.Errorf("parsing selection: %w", err)
	}
	zlog.Debug("parsed selection",
		zap.String("input", input),
		zap.Stringer("canonical", sel),
		zap.Int("ranges", len(sel.Ranges())))

	result := parseOutput{
		Input:     input,
		Canonical: sel.String(),
		Count:     sel.Len(),
		Ranges:    sel.Ranges(),
	}
	if result.Ranges == nil {
		result.Ranges = []ranges.Range{}
	}

	// Output based on format
	switch parseFormat {
	case "human":
		return outputParseHuman(cmd, result)
	case "json":
		return outputParseJSON(cmd, result)
	case "yaml":
		return outputParseYAML(cmd, result)
	case "table":
		return outputParseTable(cmd, result)
	default:
		return fmt.Errorf("unknown output format: %s", parseFormat)
	}
}

// =============================================================================
// HELPERS
// =============================================================================

func outputParseHuman(cmd *cobra.Command, result parseOutput) error {
	out := cmd.OutOrStdout()
	s := newStyles(!color.NoColor)

	if result.Count == 0 {
		fmt.Fprintln(out, "Nothing selected")
		return nil
	}

	fmt.Fprintf(out, "Selection: %s\n", s.canonical.Sprint(result.Canonical))
	fmt.Fprintf(out, "Items: %s in %s\n",
		s.count.Sprint(humanize.Comma(int64(result.Count))),
		pluralize(len(result.Ranges), "range", "ranges"))
	return nil
}

func outputParseJSON(cmd *cobra.Command, result parseOutput) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

func outputParseYAML(cmd *cobra.Command, result parseOutput) error {
	encoder := yaml.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent(2)
	if err := encoder.Encode(result); err != nil {
		return err
	}
	return encoder.Close()
}

func outputParseTable(cmd *cobra.Command, result parseOutput) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintf(w, "Start\tEnd\tCount\n")
	fmt.Fprintf(w, "-----\t---\t-----\n")

	for _, r := range result.Ranges {
		fmt.Fprintf(w, "%d\t%d\t%s\n", r.Start, r.End, humanize.Comma(int64(r.Len())))
	}

	return nil
}

func pluralize(n int, one, many string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, one)
	}
	return fmt.Sprintf("%s %s", humanize.Comma(int64(n)), many)
}
