// Package ranges holds the inclusive integer range type and the normalizer
// that reduces raw ranges to the canonical disjoint form used by selections.
package ranges

import "strconv"

// Range is an inclusive [Start, End] span of positive indices.
// A single index N is Range{Start: N, End: N}.
type Range struct {
	Start int `json:"start" yaml:"start"`
	End   int `json:"end" yaml:"end"`
}

// Single returns the range covering exactly n.
func Single(n int) Range {
	return Range{Start: n, End: n}
}

// Contains reports whether n lies within the range.
func (r Range) Contains(n int) bool {
	return r.Start <= n && n <= r.End
}

// Len returns the number of integers covered by the range.
func (r Range) Len() int {
	return r.End - r.Start + 1
}

// IsSingle reports whether the range covers one index.
func (r Range) IsSingle() bool {
	return r.Start == r.End
}

// String formats the range the way it is typed: "5" or "5-8".
func (r Range) String() string {
	if r.IsSingle() {
		return strconv.Itoa(r.Start)
	}
	return strconv.Itoa(r.Start) + "-" + strconv.Itoa(r.End)
}
