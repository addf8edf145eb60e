package dialect

import (
	"errors"
	"fmt"
	"strings"
)

// ErrDialectRequired is returned when a dialect is required but not provided.
var ErrDialectRequired = errors.New("dialect is required")

// ErrUnsupported matches every *UnsupportedError via errors.Is.
var ErrUnsupported = errors.New("unsupported by dialect")

// UnsupportedError reports a construct outside a dialect's coverage.
// Rendering stops at the first one; no partial SQL is produced.
type UnsupportedError struct {
	Dialect   string // dialect name
	Construct string // e.g. "FLOOR", "interval unit"
	Value     string // offending value, e.g. "QUARTER"; may be empty
}

func (e *UnsupportedError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%s: unsupported %s", e.Dialect, e.Construct)
	}
	return fmt.Sprintf("%s: unsupported %s: %s", e.Dialect, e.Construct, e.Value)
}

// Is makes errors.Is(err, ErrUnsupported) true.
func (e *UnsupportedError) Is(target error) bool {
	return target == ErrUnsupported
}

// Unsupported is shorthand for building an *UnsupportedError.
func Unsupported(dialect, construct, value string) error {
	return &UnsupportedError{Dialect: dialect, Construct: construct, Value: value}
}

// UnknownDialectError is returned when an unregistered dialect is requested.
type UnknownDialectError struct {
	Name      string
	Available []string
}

func (e *UnknownDialectError) Error() string {
	return fmt.Sprintf("unknown dialect %q\nAvailable dialects: %s", e.Name, strings.Join(e.Available, ", "))
}
