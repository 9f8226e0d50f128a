// Package choice parses selection strings, the compact way users pick items
// from a numbered list, into an immutable set of indices.
//
// A selection string is a list of indices and inclusive ranges separated by
// any mix of spaces, commas and semicolons:
//
//	1 3 5 6-8
//	1, 2; 3,4-5 11
//
// # Basic Usage
//
//	sel, err := choice.Parse("1 3 5 6-8")
//	if err != nil {
//	    log.Fatal(err) // e.g. reversed range "5-3" at offset 6: start 5 is greater than end 3
//	}
//
//	for i, item := range items {
//	    if sel.ContainsItem(i + 1) {
//	        fmt.Println(item)
//	    }
//	}
//
// # Normalization
//
// Overlapping, touching, duplicated and unordered parts are merged, so
// "6-8 5 1 3" and "1 3 5-8" produce equal selections:
//
//	sel.Ranges() // [{1 1} {3 3} {5 8}]
//	sel.String() // "1 3 5-8"
//
// # Errors
//
// Parse stops at the first malformed token and returns a *ParseError that
// carries the token and its byte offset. Use errors.Is with ErrInvalidToken,
// ErrReversedRange or ErrNonPositiveIndex to branch on the kind:
//
//	_, err := choice.Parse("0")
//	errors.Is(err, choice.ErrNonPositiveIndex) // true
package choice

import (
	"github.com/praetorian-inc/choice/pkg/parser"
	"github.com/praetorian-inc/choice/pkg/ranges"
	"github.com/praetorian-inc/choice/pkg/selection"
)

// Re-export commonly used types for convenience.
// Users can import just "github.com/praetorian-inc/choice" without subpackages.
type (
	// Selection is the canonical set of chosen indices.
	Selection = selection.Selection

	// Range is an inclusive span of indices.
	Range = ranges.Range

	// ParseError describes the first malformed token of an input.
	ParseError = parser.ParseError

	// ErrorKind classifies a ParseError.
	ErrorKind = parser.ErrorKind

	// Reason explains an invalid token.
	Reason = parser.Reason
)

// Re-export error kinds.
const (
	KindInvalidToken     = parser.KindInvalidToken
	KindReversedRange    = parser.KindReversedRange
	KindNonPositiveIndex = parser.KindNonPositiveIndex
)

// Re-export sentinel errors.
var (
	ErrInvalidToken     = parser.ErrInvalidToken
	ErrReversedRange    = parser.ErrReversedRange
	ErrNonPositiveIndex = parser.ErrNonPositiveIndex
)

// Parse parses a selection string into a normalized Selection.
//
// Empty input, input made only of separators, and the single word "none"
// select nothing and are not errors.
func Parse(input string) (Selection, error) {
	return selection.Parse(input)
}

// MustParse is like Parse but panics on error. Use only for constants/tests.
func MustParse(input string) Selection {
	sel, err := Parse(input)
	if err != nil {
		panic(err)
	}
	return sel
}

// New builds a Selection directly from ranges, merging them as Parse does.
func New(rs ...Range) Selection {
	return selection.New(rs...)
}
