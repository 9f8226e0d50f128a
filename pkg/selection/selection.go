// Package selection provides Selection, the canonical and immutable set of
// indices chosen by a selection string.
package selection

import (
	"encoding/json"
	"iter"
	"slices"
	"sort"
	"strings"

	"github.com/praetorian-inc/choice/pkg/parser"
	"github.com/praetorian-inc/choice/pkg/ranges"
)

// Selection is a finite set of positive integers stored as sorted, disjoint,
// non-touching inclusive ranges. The zero value is the empty selection.
// A Selection is never modified after construction and is safe to share
// between goroutines.
type Selection struct {
	ranges []ranges.Range
}

// New builds a Selection from raw ranges in any order. Overlapping,
// touching and duplicate ranges are merged.
func New(raw ...ranges.Range) Selection {
	return Selection{ranges: ranges.Merge(raw)}
}

// Parse parses a selection string such as "1 3 5 6-8" into a Selection.
// Errors are *parser.ParseError values.
func Parse(input string) (Selection, error) {
	raw, err := parser.Parse(input)
	if err != nil {
		return Selection{}, err
	}
	return New(raw...), nil
}

// ContainsItem reports whether n is selected.
func (s Selection) ContainsItem(n int) bool {
	// First range whose end reaches n; n is selected iff that range starts at or before it.
	i := sort.Search(len(s.ranges), func(i int) bool { return s.ranges[i].End >= n })
	return i < len(s.ranges) && s.ranges[i].Start <= n
}

// Ranges returns a copy of the canonical ranges in ascending order.
func (s Selection) Ranges() []ranges.Range {
	return slices.Clone(s.ranges)
}

// Items yields every selected index in ascending order. Ranges are expanded
// as the sequence is consumed, so taking a prefix of "1-1000000" is cheap.
func (s Selection) Items() iter.Seq[int] {
	return func(yield func(int) bool) {
		for _, r := range s.ranges {
			for n := r.Start; ; n++ {
				if !yield(n) {
					return
				}
				if n == r.End {
					break
				}
			}
		}
	}
}

// Len returns the number of selected indices.
func (s Selection) Len() int {
	total := 0
	for _, r := range s.ranges {
		total += r.Len()
	}
	return total
}

// IsEmpty reports whether nothing is selected.
func (s Selection) IsEmpty() bool {
	return len(s.ranges) == 0
}

// Min returns the smallest selected index.
func (s Selection) Min() (int, bool) {
	if s.IsEmpty() {
		return 0, false
	}
	return s.ranges[0].Start, true
}

// Max returns the largest selected index.
func (s Selection) Max() (int, bool) {
	if s.IsEmpty() {
		return 0, false
	}
	return s.ranges[len(s.ranges)-1].End, true
}

// Equal reports whether both selections hold the same indices.
func (s Selection) Equal(other Selection) bool {
	return slices.Equal(s.ranges, other.ranges)
}

// String returns the canonical selection string, e.g. "1 3 5-8".
// Parsing the result yields an equal Selection.
func (s Selection) String() string {
	parts := make([]string, len(s.ranges))
	for i, r := range s.ranges {
		parts[i] = r.String()
	}
	return strings.Join(parts, " ")
}

// MarshalJSON encodes the selection as its list of ranges.
func (s Selection) MarshalJSON() ([]byte, error) {
	if s.ranges == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(s.ranges)
}

// MarshalYAML implements yaml.Marshaler with the same shape as MarshalJSON.
func (s Selection) MarshalYAML() (interface{}, error) {
	if s.ranges == nil {
		return []ranges.Range{}, nil
	}
	return s.ranges, nil
}
