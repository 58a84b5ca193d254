package theme

import "fmt"

// InvalidColorFormatError reports a base color that is not a #rgb or #rrggbb hex string
type InvalidColorFormatError struct {
	Input  string
	Reason string
}

func (e *InvalidColorFormatError) Error() string {
	return fmt.Sprintf("invalid color %q: %s", e.Input, e.Reason)
}

// BaseColorError names the base color that failed to parse
type BaseColorError struct {
	Role  string
	Cause error
}

func (e *BaseColorError) Error() string {
	return fmt.Sprintf("%s color: %v", e.Role, e.Cause)
}

func (e *BaseColorError) Unwrap() error {
	return e.Cause
}
