package markup

import (
	"errors"
	"fmt"
)

// DeserializationError is the error type for all tokenization failures.
// Offset, Line and Column describe the stream position where the failure
// was detected; Line and Column are 1-based. Err holds a wrapped
// lower-layer cause, if any.
type DeserializationError struct {
	Msg    string
	Offset int
	Line   int
	Column int
	Err    error
}

func (e *DeserializationError) Error() string {
	msg := e.Msg
	if e.Err != nil {
		if msg == "" {
			msg = e.Err.Error()
		} else {
			msg += ": " + e.Err.Error()
		}
	}
	if e.Line > 0 {
		return fmt.Sprintf("%s at line %d, column %d (offset %d)", msg, e.Line, e.Column, e.Offset)
	}
	return msg
}

func (e *DeserializationError) Unwrap() error {
	return e.Err
}

func (e *DeserializationError) Is(target error) bool {
	var de *DeserializationError
	if errors.As(target, &de) {
		return e.Msg == de.Msg
	}
	return false
}

// deserializationError stamps msg with the current stream position.
func deserializationError(s TextStream, msg string) error {
	return &DeserializationError{
		Msg:    msg,
		Offset: s.Index(),
		Line:   s.Line(),
		Column: s.Column(),
	}
}

// wrapStreamError wraps a lower-layer error with the current stream
// position. Domain errors propagate unchanged.
func wrapStreamError(s TextStream, err error) error {
	if err == nil {
		return nil
	}
	var de *DeserializationError
	if errors.As(err, &de) {
		return err
	}
	return &DeserializationError{
		Offset: s.Index(),
		Line:   s.Line(),
		Column: s.Column(),
		Err:    err,
	}
}
