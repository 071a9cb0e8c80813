package subtitle

import (
	"errors"
	"fmt"
)

// sentinels for errors.Is checks against the typed errors below
var (
	ErrParse = errors.New("subtitle parse error")
	ErrIO    = errors.New("subtitle i/o error")
	ErrRange = errors.New("subtitle offset out of range")
)

// ParseError reports a malformed subtitle block. Block and Line are
// 1-based; Index is the cue number read from the block, or -1 when the
// block failed before its index line was understood.
type ParseError struct {
	Block  int
	Index  int
	Line   int
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	msg := "parse error"
	if e.Block > 0 {
		msg += fmt.Sprintf(" in block %d", e.Block)
	}
	if e.Index >= 0 {
		msg += fmt.Sprintf(" (cue %d)", e.Index)
	}
	if e.Line > 0 {
		msg += fmt.Sprintf(" at line %d", e.Line)
	}
	msg += ": " + e.Reason
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is allows for error checking with errors.Is().
func (e *ParseError) Is(target error) bool {
	if target == ErrParse {
		return true
	}
	_, ok := target.(*ParseError)
	return ok
}

func newParseError(block, index, line int, reason string) *ParseError {
	return &ParseError{Block: block, Index: index, Line: line, Reason: reason}
}

// IOError wraps a failure to read the input or write the output file.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// Is allows for error checking with errors.Is().
func (e *IOError) Is(target error) bool {
	if target == ErrIO {
		return true
	}
	_, ok := target.(*IOError)
	return ok
}

// RangeError is not fatal: it flags an offset so negative that every cue
// collapsed onto 00:00:00,000.
type RangeError struct {
	Offset int64
	Cues   int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf(
		"offset %dms clamps all %d cues to 00:00:00,000",
		e.Offset,
		e.Cues,
	)
}

// Is allows for error checking with errors.Is().
func (e *RangeError) Is(target error) bool {
	if target == ErrRange {
		return true
	}
	_, ok := target.(*RangeError)
	return ok
}
