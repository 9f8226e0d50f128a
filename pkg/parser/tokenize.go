package parser

// Token is one separator-delimited unit of a selection string.
type Token struct {
	Text   string
	Offset int
}

// IsSeparator reports whether c splits tokens: space, tab, comma or semicolon.
func IsSeparator(c byte) bool {
	switch c {
	case ' ', '\t', ',', ';':
		return true
	}
	return false
}

// Tokenize splits input on runs of separators. Leading and trailing runs
// produce no tokens, so the result never contains an empty Text.
func Tokenize(input string) []Token {
	var tokens []Token
	start := -1
	for i := 0; i < len(input); i++ {
		if IsSeparator(input[i]) {
			if start >= 0 {
				tokens = append(tokens, Token{Text: input[start:i], Offset: start})
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		tokens = append(tokens, Token{Text: input[start:], Offset: start})
	}
	return tokens
}
