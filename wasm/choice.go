//go:build wasm

package main

import (
	"encoding/json"
	"errors"
	"syscall/js"

	"github.com/praetorian-inc/choice/pkg/parser"
	"github.com/praetorian-inc/choice/pkg/ranges"
	"github.com/praetorian-inc/choice/pkg/selection"
)

// parseResult is the JSON shape returned by ChoiceParse on success.
type parseResult struct {
	Ranges    []ranges.Range `json:"ranges"`
	Canonical string         `json:"canonical"`
	Count     int            `json:"count"`
}

// parse parses a selection string.
// JS: ChoiceParse(input) -> JSON {ranges, canonical, count} or error object
func parse(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return map[string]interface{}{"error": "input argument required"}
	}

	sel, err := selection.Parse(args[0].String())
	if err != nil {
		return errorResult(err)
	}

	rs := sel.Ranges()
	if rs == nil {
		rs = []ranges.Range{}
	}
	jsonBytes, err := json.Marshal(parseResult{
		Ranges:    rs,
		Canonical: sel.String(),
		Count:     sel.Len(),
	})
	if err != nil {
		return map[string]interface{}{"error": "failed to marshal result: " + err.Error()}
	}

	return string(jsonBytes)
}

// contains reports whether an index is selected.
// JS: ChoiceContains(input, n) -> bool or error object
func contains(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return map[string]interface{}{"error": "input and index arguments required"}
	}

	sel, err := selection.Parse(args[0].String())
	if err != nil {
		return errorResult(err)
	}

	if args[1].Type() != js.TypeNumber {
		return map[string]interface{}{"error": "index must be a number"}
	}

	return sel.ContainsItem(args[1].Int())
}

// errorResult converts a parse failure into a JS object. Token details are
// included for *parser.ParseError so callers can highlight the input.
func errorResult(err error) map[string]interface{} {
	result := map[string]interface{}{"error": err.Error()}

	var perr *parser.ParseError
	if errors.As(err, &perr) {
		result["kind"] = perr.Kind.String()
		result["token"] = perr.Token
		result["offset"] = perr.Offset
	}
	return result
}
