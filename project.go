package swiftcols

import (
	"regexp"
	"strings"
)

// DefaultPattern splits on runs of whitespace.
const DefaultPattern = `\s+`

var whitespace = regexp.MustCompile(DefaultPattern)

// Field is one projected value. Present is false when the line had no such column,
// which is distinct from a present empty string.
type Field struct {
	Value   string
	Present bool
}

// Row holds the projected fields of one line in requested order.
type Row []Field

// Present returns the values of the fields that exist, in order.
func (r Row) Present() []string {
	out := make([]string, 0, len(r))
	for _, f := range r {
		if f.Present {
			out = append(out, f.Value)
		}
	}
	return out
}

// Separator splits lines into fields. Consecutive matches of the pattern collapse into one boundary.
type Separator struct {
	pattern string
	re      *regexp.Regexp
	// trimEdges drops empty leading and trailing fields, as awk does for its default FS.
	trimEdges bool
}

// DefaultSeparator returns the whitespace separator used when no pattern is given.
func DefaultSeparator() *Separator {
	return &Separator{
		pattern:   DefaultPattern,
		re:        whitespace,
		trimEdges: true,
	}
}

// NewSeparator compiles pattern so that a run of consecutive matches counts as a single separator.
// DefaultPattern itself yields DefaultSeparator, edge trimming included.
func NewSeparator(pattern string) (*Separator, error) {
	if pattern == DefaultPattern {
		return DefaultSeparator(), nil
	}
	re, err := regexp.Compile("(?:" + pattern + ")+")
	if err != nil {
		return nil, &InvalidSeparatorError{Pattern: pattern, Err: err}
	}
	return &Separator{pattern: pattern, re: re}, nil
}

// String returns the pattern as supplied.
func (s *Separator) String() string {
	if s == nil {
		return DefaultPattern
	}
	return s.pattern
}

// Split breaks line into fields. An empty line has no fields.
func (s *Separator) Split(line string) []string {
	if line == "" {
		return nil
	}
	fields := s.re.Split(line, -1)
	if s.trimEdges {
		if len(fields) > 0 && fields[0] == "" {
			fields = fields[1:]
		}
		if len(fields) > 0 && fields[len(fields)-1] == "" {
			fields = fields[:len(fields)-1]
		}
	}
	return fields
}

// Project splits line with sep and picks the 1-based columns listed in indexes.
// Columns past the end of the line come back absent. A nil sep means DefaultSeparator.
func Project(line string, sep *Separator, indexes []int) Row {
	if sep == nil {
		sep = DefaultSeparator()
	}
	return projectFields(sep.Split(trimTerminator(line)), indexes)
}

func projectFields(fields []string, indexes []int) Row {
	row := make(Row, len(indexes))
	for i, idx := range indexes {
		if idx >= 1 && idx <= len(fields) {
			row[i] = Field{Value: fields[idx-1], Present: true}
		}
	}
	return row
}

// trimTerminator removes one trailing "\n", "\r\n" or "\r".
func trimTerminator(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}
