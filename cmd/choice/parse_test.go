package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/praetorian-inc/choice/pkg/parser"
	"github.com/praetorian-inc/choice/pkg/ranges"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func runParseWithFormat(t *testing.T, format string, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	parseFormat = format
	t.Cleanup(func() { parseFormat = "human" })

	err := runParse(cmd, args)
	return buf.String(), err
}

func TestRunParse_Human(t *testing.T) {
	output, err := runParseWithFormat(t, "human", "6-8", "1,", "5;", "3")
	require.NoError(t, err)

	assert.Contains(t, output, "Selection: 1 3 5-8")
	assert.Contains(t, output, "Items: 6 in 3 ranges")
}

func TestRunParse_HumanLargeCount(t *testing.T) {
	output, err := runParseWithFormat(t, "human", "1-1500000")
	require.NoError(t, err)

	assert.Contains(t, output, "Items: 1,500,000 in 1 range")
}

func TestRunParse_HumanEmpty(t *testing.T) {
	output, err := runParseWithFormat(t, "human")
	require.NoError(t, err)

	assert.Equal(t, "Nothing selected\n", output)
}

func TestRunParse_JSON(t *testing.T) {
	output, err := runParseWithFormat(t, "json", "1, 2, 3, 4-5, 11")
	require.NoError(t, err)

	var got parseOutput
	require.NoError(t, json.Unmarshal([]byte(output), &got))
	assert.Equal(t, "1, 2, 3, 4-5, 11", got.Input)
	assert.Equal(t, "1-5 11", got.Canonical)
	assert.Equal(t, 6, got.Count)
	assert.Equal(t, []ranges.Range{{Start: 1, End: 5}, {Start: 11, End: 11}}, got.Ranges)
}

func TestRunParse_JSONEmptyRanges(t *testing.T) {
	output, err := runParseWithFormat(t, "json", "")
	require.NoError(t, err)

	assert.Contains(t, output, `"ranges": []`)
}

func TestRunParse_YAML(t *testing.T) {
	output, err := runParseWithFormat(t, "yaml", "1-8 11, 12")
	require.NoError(t, err)

	var got parseOutput
	require.NoError(t, yaml.Unmarshal([]byte(output), &got))
	assert.Equal(t, "1-8 11-12", got.Canonical)
	assert.Equal(t, 10, got.Count)
	assert.Equal(t, []ranges.Range{{Start: 1, End: 8}, {Start: 11, End: 12}}, got.Ranges)
}

func TestRunParse_Table(t *testing.T) {
	output, err := runParseWithFormat(t, "table", "1 3 5 6-8")
	require.NoError(t, err)

	assert.Contains(t, output, "Start")
	assert.Contains(t, output, "Count")
	assert.Regexp(t, `(?m)^5\s+8\s+4$`, output)
}

func TestRunParse_UnknownFormat(t *testing.T) {
	_, err := runParseWithFormat(t, "xml", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}

func TestRunParse_InvalidSelection(t *testing.T) {
	_, err := runParseWithFormat(t, "human", "5-3")
	require.Error(t, err)
	assert.ErrorIs(t, err, parser.ErrReversedRange)
	assert.Contains(t, err.Error(), "parsing selection")
	assert.Contains(t, err.Error(), `"5-3"`)
}
