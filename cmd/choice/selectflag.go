package main

import (
	"github.com/praetorian-inc/choice/pkg/selection"
	"github.com/spf13/pflag"
)

// selectionValue is a pflag.Value that parses its argument as a selection
// string. Repeating the flag adds to the selection: "--select 1-3 --select 7".
type selectionValue struct {
	sel     *selection.Selection
	changed bool
}

var _ pflag.Value = (*selectionValue)(nil)

func newSelectionValue(sel *selection.Selection) *selectionValue {
	return &selectionValue{sel: sel}
}

func (v *selectionValue) String() string {
	if v.sel == nil {
		return ""
	}
	return v.sel.String()
}

func (v *selectionValue) Set(s string) error {
	sel, err := selection.Parse(s)
	if err != nil {
		return err
	}
	if v.changed {
		sel = selection.New(append(v.sel.Ranges(), sel.Ranges()...)...)
	}
	*v.sel = sel
	v.changed = true
	return nil
}

func (v *selectionValue) Type() string {
	return "selection"
}

// reset restores the empty selection; used between test runs.
func (v *selectionValue) reset() {
	*v.sel = selection.Selection{}
	v.changed = false
}
