package swiftcols

import (
	"errors"
	"fmt"
)

// ErrNoColumnsSpecified is returned when no column tokens were supplied.
var ErrNoColumnsSpecified = errors.New("swiftcols: at least one column is required")

// MissingSeparatorValueError is returned when a separator flag has no following value.
type MissingSeparatorValueError struct {
	Flag string
}

// Error names the flag that is missing its value.
func (e *MissingSeparatorValueError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("swiftcols: flag %s requires a separator value", e.Flag)
}

// InvalidColumnTokenError is returned when a column argument is neither an integer nor a range.
type InvalidColumnTokenError struct {
	Token string
}

// Error reports the offending literal.
func (e *InvalidColumnTokenError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("swiftcols: invalid column %q", e.Token)
}

// InvalidSeparatorError wraps a field separator pattern that failed to compile.
type InvalidSeparatorError struct {
	Pattern string
	Err     error
}

// Error formats the pattern together with the compile error.
func (e *InvalidSeparatorError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("swiftcols: invalid field separator %q: %v", e.Pattern, e.Err)
}

// Unwrap returns the underlying compile error.
func (e *InvalidSeparatorError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
