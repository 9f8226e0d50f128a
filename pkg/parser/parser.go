// Package parser turns selection strings like "1 3 5 6-8" into raw ranges.
//
// Tokens are separated by any run of spaces, tabs, commas or semicolons.
// Each token is either a positive index ("7") or an inclusive range ("5-8").
// Parsing stops at the first malformed token and reports it as a *ParseError.
// The ranges returned are in input order and are not merged; see package
// ranges for normalization.
package parser

import (
	"errors"
	"strconv"
	"strings"

	"github.com/praetorian-inc/choice/pkg/ranges"
)

// noneKeyword selects nothing when it is the whole input.
const noneKeyword = "none"

// Parse returns one raw range per token of input, in input order.
// Empty input, separator-only input and the lone keyword "none" yield no ranges.
func Parse(input string) ([]ranges.Range, error) {
	tokens := Tokenize(input)
	if len(tokens) == 1 && strings.EqualFold(tokens[0].Text, noneKeyword) {
		return nil, nil
	}

	out := make([]ranges.Range, 0, len(tokens))
	for _, tok := range tokens {
		r, err := ParseToken(tok)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

// ParseToken classifies a single token as an index or an N-M range.
func ParseToken(tok Token) (ranges.Range, error) {
	text := tok.Text
	if text == "" {
		return ranges.Range{}, invalid(tok, ReasonEmptyToken, nil)
	}

	lo, hi, isRange := strings.Cut(text, "-")
	if !isRange {
		n, err := parseIndex(tok, text)
		if err != nil {
			return ranges.Range{}, err
		}
		return ranges.Single(n), nil
	}

	// "-5" names a negative index rather than a range with a missing start.
	if lo == "" && isDigits(hi) {
		return ranges.Range{}, nonPositive(tok)
	}
	if strings.Contains(hi, "-") {
		return ranges.Range{}, invalid(tok, ReasonTooManyHyphens, nil)
	}
	if lo == "" || hi == "" {
		return ranges.Range{}, invalid(tok, ReasonEmptySide, nil)
	}

	start, err := parseIndex(tok, lo)
	if err != nil {
		return ranges.Range{}, err
	}
	end, err := parseIndex(tok, hi)
	if err != nil {
		return ranges.Range{}, err
	}
	if start > end {
		return ranges.Range{}, reversed(tok, start, end)
	}
	return ranges.Range{Start: start, End: end}, nil
}

// parseIndex converts one digit run of tok into a positive index.
func parseIndex(tok Token, digits string) (int, error) {
	if !isDigits(digits) {
		return 0, invalid(tok, ReasonNotANumber, nil)
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, invalid(tok, ReasonOverflow, err)
		}
		return 0, invalid(tok, ReasonNotANumber, err)
	}
	if n < 1 {
		return 0, nonPositive(tok)
	}
	return n, nil
}

// isDigits reports whether s is a non-empty run of ASCII digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
