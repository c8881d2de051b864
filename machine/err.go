package machine

import (
	"errors"

	"github.com/ezrec/isasim/translate"
)

var f = translate.From

var (
	// Storage error kinds
	ErrRegisterFile = errors.New(f("register file"))
	ErrMemory       = errors.New(f("memory"))
)

type ErrRegisterRange int

func (err ErrRegisterRange) Error() string {
	return f("register %d out of range", int(err))
}

type ErrRegisterDescriptor string

func (err ErrRegisterDescriptor) Error() string {
	return f("'%v' is not a register descriptor", string(err))
}

type ErrMemoryRange int

func (err ErrMemoryRange) Error() string {
	return f("memory cell %d out of range", int(err))
}
