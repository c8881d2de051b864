package processor

import (
	"errors"

	"github.com/ezrec/isasim/translate"
)

var f = translate.From

var (
	// Engine errors
	ErrNotLoaded = errors.New(f("program not loaded"))

	// Preprocessor errors
	ErrEquateSyntax    = errors.New(f(".equ syntax"))
	ErrEquateDuplicate = errors.New(f(".equ duplicated"))
)

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

// ErrRun indicates the location of a runtime error.
type ErrRun struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrRun) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrRun) Unwrap() error {
	return err.Err
}
