package adapter

import "fmt"

// SchemaMismatchError reports a raw document that does not match the version 3 shape
type SchemaMismatchError struct {
	Version string
	Path    string
	Message string
	Cause   error
}

func (e *SchemaMismatchError) Error() string {
	msg := fmt.Sprintf("schema mismatch (version %q)", e.Version)
	if e.Path != "" {
		msg += " at " + e.Path
	}
	msg += ": " + e.Message
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *SchemaMismatchError) Unwrap() error {
	return e.Cause
}

// DecodeError represents a document that could not be read or parsed
type DecodeError struct {
	Message string
	Cause   error
}

func (e *DecodeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("decode error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("decode error: %s", e.Message)
}

func (e *DecodeError) Unwrap() error {
	return e.Cause
}
