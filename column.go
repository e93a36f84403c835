package swiftcols

import (
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// rangeSep separates the bounds of a range literal such as "3..5".
const rangeSep = ".."

// MaxRangeSpan is the largest number of columns a single range may expand to.
const MaxRangeSpan = 1 << 16

// TokenKind tags the variant held by a ColumnToken.
type TokenKind uint8

const (
	// IndexToken selects a single column.
	IndexToken TokenKind = iota
	// RangeToken selects an inclusive run of columns, walking down when From > To.
	RangeToken
)

// ColumnToken is one parsed unit of a column selection: a single index or an inclusive range.
type ColumnToken struct {
	Kind TokenKind
	From int
	To   int
}

// Index returns a token selecting column n.
func Index(n int) ColumnToken {
	return ColumnToken{Kind: IndexToken, From: n, To: n}
}

// Range returns a token selecting columns a through b inclusive.
func Range(a, b int) ColumnToken {
	return ColumnToken{Kind: RangeToken, From: a, To: b}
}

// String renders the token in command-line notation.
func (t ColumnToken) String() string {
	if t.Kind == RangeToken {
		return strconv.Itoa(t.From) + rangeSep + strconv.Itoa(t.To)
	}
	return strconv.Itoa(t.From)
}

// ParseColumnToken parses "n" or "a..b". Bounds must be positive decimal integers without sign.
func ParseColumnToken(s string) (ColumnToken, error) {
	if from, to, ok := strings.Cut(s, rangeSep); ok {
		a, okA := parsePosition(from)
		b, okB := parsePosition(to)
		if !okA || !okB {
			return ColumnToken{}, &InvalidColumnTokenError{Token: s}
		}
		return Range(a, b), nil
	}
	n, ok := parsePosition(s)
	if !ok {
		return ColumnToken{}, &InvalidColumnTokenError{Token: s}
	}
	return Index(n), nil
}

// ParseColumnTokens parses every argument in order. All invalid arguments are reported together.
func ParseColumnTokens(args []string) ([]ColumnToken, error) {
	tokens := make([]ColumnToken, 0, len(args))
	var merr *multierror.Error
	for _, arg := range args {
		tok, err := ParseColumnToken(arg)
		if err != nil {
			merr = multierror.Append(merr, err)
			continue
		}
		tokens = append(tokens, tok)
	}
	if merr != nil {
		merr.ErrorFormat = joinErrors
		return nil, merr
	}
	return tokens, nil
}

// Resolve flattens tokens into 1-based column positions, preserving token order and duplicates.
// A range covering more than MaxRangeSpan columns is rejected.
func Resolve(tokens []ColumnToken) ([]int, error) {
	indexes := make([]int, 0, len(tokens))
	for _, tok := range tokens {
		if tok.From < 1 || tok.To < 1 || (tok.Kind == IndexToken && tok.From != tok.To) {
			return nil, &InvalidColumnTokenError{Token: tok.String()}
		}
		if span(tok.From, tok.To) > MaxRangeSpan {
			return nil, &InvalidColumnTokenError{Token: tok.String()}
		}
		switch tok.Kind {
		case IndexToken:
			indexes = append(indexes, tok.From)
		case RangeToken:
			step := 1
			if tok.From > tok.To {
				step = -1
			}
			for i := tok.From; ; i += step {
				indexes = append(indexes, i)
				if i == tok.To {
					break
				}
			}
		default:
			return nil, &InvalidColumnTokenError{Token: tok.String()}
		}
	}
	return indexes, nil
}

// ResolveArgs parses and resolves raw column arguments in one step.
func ResolveArgs(args []string) ([]int, error) {
	tokens, err := ParseColumnTokens(args)
	if err != nil {
		return nil, err
	}
	if len(tokens) == 0 {
		return nil, ErrNoColumnsSpecified
	}
	return Resolve(tokens)
}

// span is the number of columns covered by the inclusive range a..b.
func span(a, b int) int {
	if a > b {
		return a - b + 1
	}
	return b - a + 1
}

func parsePosition(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

func joinErrors(errs []error) string {
	msgs := make([]string, len(errs))
	for i, err := range errs {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}
