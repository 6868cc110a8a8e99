package evaluator

import (
	"errors"
	"fmt"
)

// Errors of expression evaluation.
var (
	ErrUnexpectedNodeKind      = errors.New("unexpected node in expression")
	ErrUnknownOperator         = errors.New("unknown operator")
	ErrMalformedNumericLiteral = errors.New("malformed numeric literal")
)

// Errors of the LET statement.
var (
	ErrMissingLetKeyword = errors.New("LET expected")
	ErrMissingVariable   = errors.New("variable expected")
	ErrMissingValue      = errors.New("value expected")
	ErrMissingEquals     = errors.New("'=' expected")
)

// Errors of statement dispatch and program handling.
var (
	ErrUnknownStatement   = errors.New("unknown statement")
	ErrNoProgramToExecute = errors.New("no program to execute")
	ErrLineNumber         = errors.New("invalid line number")
)

// LineNumberError is returned for a line number which does not fit into
// 16 bits. It wraps ErrLineNumber.
type LineNumberError struct {
	Text string // line number as written
	Err  error  // underlying conversion error
}

func (e *LineNumberError) Error() string {
	return fmt.Sprintf("%s: %s", ErrLineNumber.Error(), e.Text)
}

// Is makes errors.Is(err, ErrLineNumber) work.
func (e *LineNumberError) Is(target error) bool {
	return target == ErrLineNumber
}

func (e *LineNumberError) Unwrap() error {
	return e.Err
}

// RuntimeError reports an error during execution of a program line.
type RuntimeError struct {
	Line uint16
	Err  error
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Err.Error())
}

func (e *RuntimeError) Unwrap() error {
	return e.Err
}
