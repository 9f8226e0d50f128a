package parser

import (
	"errors"
	"fmt"
)

// Sentinel errors for the three kinds of malformed token. A *ParseError
// matches the sentinel of its kind under errors.Is.
var (
	// ErrInvalidToken indicates a token that is neither an index nor an N-M range.
	ErrInvalidToken = errors.New("invalid token")

	// ErrReversedRange indicates an N-M range with N greater than M.
	ErrReversedRange = errors.New("reversed range")

	// ErrNonPositiveIndex indicates an index of zero or a negative index.
	ErrNonPositiveIndex = errors.New("non-positive index")
)

// ErrorKind classifies a ParseError.
type ErrorKind int

const (
	// KindInvalidToken is a token that is neither an index nor an N-M range.
	KindInvalidToken ErrorKind = iota
	// KindReversedRange is an N-M range whose start exceeds its end.
	KindReversedRange
	// KindNonPositiveIndex is an index of zero or below.
	KindNonPositiveIndex
)

// String returns the kind name used in messages and JSON output.
func (k ErrorKind) String() string {
	switch k {
	case KindInvalidToken:
		return "invalid_token"
	case KindReversedRange:
		return "reversed_range"
	case KindNonPositiveIndex:
		return "non_positive_index"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

func (k ErrorKind) sentinel() error {
	switch k {
	case KindReversedRange:
		return ErrReversedRange
	case KindNonPositiveIndex:
		return ErrNonPositiveIndex
	default:
		return ErrInvalidToken
	}
}

// Reason narrows down why a token was rejected as KindInvalidToken.
type Reason int

const (
	// ReasonNone is used for kinds other than KindInvalidToken.
	ReasonNone Reason = iota
	// ReasonNotANumber means a side contains something other than ASCII digits.
	ReasonNotANumber
	// ReasonEmptySide means a range like "1-" or "-" lacks a bound.
	ReasonEmptySide
	// ReasonTooManyHyphens means the token contains more than one '-'.
	ReasonTooManyHyphens
	// ReasonOverflow means a digit run does not fit in an int.
	ReasonOverflow
	// ReasonEmptyToken means the token has no text.
	ReasonEmptyToken
)

// String returns the human-readable reason used in error messages.
func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return ""
	case ReasonNotANumber:
		return "not a number"
	case ReasonEmptySide:
		return "range is missing a bound"
	case ReasonTooManyHyphens:
		return "more than one '-'"
	case ReasonOverflow:
		return "number too large"
	case ReasonEmptyToken:
		return "empty token"
	default:
		return fmt.Sprintf("Reason(%d)", int(r))
	}
}

// ParseError describes the first malformed token of an input.
type ParseError struct {
	Kind   ErrorKind
	Token  string
	Offset int // byte offset of Token within the input
	Reason Reason
	Err    error // underlying conversion error, if any

	// start and end are set for KindReversedRange.
	start, end int
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case KindReversedRange:
		return fmt.Sprintf("reversed range %q at offset %d: start %d is greater than end %d",
			e.Token, e.Offset, e.start, e.end)
	case KindNonPositiveIndex:
		return fmt.Sprintf("non-positive index %q at offset %d: indices start at 1", e.Token, e.Offset)
	default:
		return fmt.Sprintf("invalid token %q at offset %d: %s", e.Token, e.Offset, e.Reason)
	}
}

// Is matches the sentinel error for the kind.
func (e *ParseError) Is(target error) bool {
	return target == e.Kind.sentinel()
}

// Unwrap returns the underlying conversion error, if any.
func (e *ParseError) Unwrap() error {
	return e.Err
}

func invalid(tok Token, reason Reason, err error) *ParseError {
	return &ParseError{Kind: KindInvalidToken, Token: tok.Text, Offset: tok.Offset, Reason: reason, Err: err}
}

func nonPositive(tok Token) *ParseError {
	return &ParseError{Kind: KindNonPositiveIndex, Token: tok.Text, Offset: tok.Offset}
}

func reversed(tok Token, start, end int) *ParseError {
	return &ParseError{Kind: KindReversedRange, Token: tok.Text, Offset: tok.Offset, start: start, end: end}
}
