package isa

import (
	"errors"

	"github.com/ezrec/isasim/translate"
)

var f = translate.From

var (
	// Evaluation errors
	ErrOperandMissing = errors.New(f("source operand missing"))

	// Table construction errors
	ErrTargetInvalid = errors.New(f("target invalid"))
)

type ErrIllegal string

func (err ErrIllegal) Error() string {
	return f("illegal instruction '%v'", string(err))
}

func (err ErrIllegal) Is(target error) (ok bool) {
	_, ok = target.(ErrIllegal)
	return
}

type ErrNotSupported string

func (err ErrNotSupported) Error() string {
	return f("instruction '%v' not supported", string(err))
}

func (err ErrNotSupported) Is(target error) (ok bool) {
	_, ok = target.(ErrNotSupported)
	return
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseMemory string

func (err ErrParseMemory) Error() string {
	return f("'%v' is not a memory descriptor", string(err))
}
