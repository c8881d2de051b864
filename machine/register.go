package machine

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

// Word is the single value kind stored in registers and memory cells.
type Word int64

// Register is one named storage cell. Its identity is its index within
// the owning RegisterFile.
type Register struct {
	index int
	word  Word
}

// Index returns the register's position within its RegisterFile.
func (reg *Register) Index() int {
	return reg.index
}

// Read returns the register's current value.
func (reg *Register) Read() Word {
	return reg.word
}

// Write replaces the register's value.
func (reg *Register) Write(word Word) {
	reg.word = word
}

// RegisterFile is a fixed-size ordered collection of Registers.
// The size is fixed at construction.
type RegisterFile struct {
	regs []Register
}

// NewRegisterFile creates a register file with count registers,
// all holding zero.
func NewRegisterFile(count int) (rf *RegisterFile) {
	rf = &RegisterFile{
		regs: make([]Register, count),
	}
	for n := range rf.regs {
		rf.regs[n].index = n
	}

	return
}

// Size returns the number of registers.
func (rf *RegisterFile) Size() int {
	return len(rf.regs)
}

// ByIndex returns the register at index.
func (rf *RegisterFile) ByIndex(index int) (reg *Register, err error) {
	if index < 0 || index >= len(rf.regs) {
		err = errors.Join(ErrRegisterFile, ErrRegisterRange(index))
		return
	}

	reg = &rf.regs[index]
	return
}

// reDescriptor matches a register descriptor, r[<digits>].
// Surrounding whitespace is tolerated.
var reDescriptor = regexp.MustCompile(`^r\[([0-9]+)\]$`)

// ByDescriptor returns the register named by a textual descriptor of
// the form r[<non-negative integer>].
func (rf *RegisterFile) ByDescriptor(descriptor string) (reg *Register, err error) {
	match := reDescriptor.FindStringSubmatch(strings.TrimSpace(descriptor))
	if match == nil {
		err = errors.Join(ErrRegisterFile, ErrRegisterDescriptor(descriptor))
		return
	}

	index, err := strconv.Atoi(match[1])
	if err != nil {
		// Digit run too long for an int.
		err = errors.Join(ErrRegisterFile, ErrRegisterDescriptor(descriptor))
		return
	}

	return rf.ByIndex(index)
}

// Snapshot returns a copy of all register values, in register order.
// Read access only; writing the slice does not alter the file.
func (rf *RegisterFile) Snapshot() (words []Word) {
	words = make([]Word, len(rf.regs))
	for n := range rf.regs {
		words[n] = rf.regs[n].word
	}

	return
}

// Reset zeroes every register.
func (rf *RegisterFile) Reset() {
	for n := range rf.regs {
		rf.regs[n].word = 0
	}
}
